package domain_test

import (
	"testing"

	"pitwall/internal/modules/records/domain"
)

func TestAddFavoriteCapsAtFive(t *testing.T) {
	t.Parallel()
	var favorites []string
	for _, id := range []string{"monaco", "spa", "monza", "suzuka", "cota"} {
		next, added := domain.AddFavorite(favorites, id)
		if !added {
			t.Fatalf("expected %s to be added", id)
		}
		favorites = next
	}
	next, added := domain.AddFavorite(favorites, "silverstone")
	if added || len(next) != domain.MaxFavorites {
		t.Fatalf("sixth favorite must be a no-op, got %v added=%v", next, added)
	}
	if _, added := domain.AddFavorite(favorites[:2], "monaco"); added {
		t.Fatalf("duplicate favorite must be a no-op")
	}
	if _, added := domain.AddFavorite(nil, "  "); added {
		t.Fatalf("blank favorite must be a no-op")
	}
}

func TestRemoveFavoriteDoesNotAliasInput(t *testing.T) {
	t.Parallel()
	original := []string{"monaco", "spa", "monza"}
	next, removed := domain.RemoveFavorite(original, "spa")
	if !removed || len(next) != 2 || next[1] != "monza" {
		t.Fatalf("unexpected result %v removed=%v", next, removed)
	}
	if original[1] != "spa" {
		t.Fatalf("input slice was modified: %v", original)
	}
	if _, removed := domain.RemoveFavorite(original, "cota"); removed {
		t.Fatalf("missing favorite should report false")
	}
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()
	if err := domain.DefaultSettings().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}
	bad := domain.DefaultSettings()
	bad.WindSpeedUnit = "knots"
	if err := bad.Validate(); err == nil {
		t.Fatalf("knots should be rejected")
	}
}

func TestWeekendDates(t *testing.T) {
	t.Parallel()
	dates, err := domain.WeekendDates("2026-05-22", "2026-05-24")
	if err != nil {
		t.Fatalf("weekend dates: %v", err)
	}
	if len(dates) != 3 || dates[0].Weekday().String() != "Friday" {
		t.Fatalf("unexpected dates %v", dates)
	}
	if _, err := domain.WeekendDates("2026-05-24", "2026-05-22"); err == nil {
		t.Fatalf("reversed range should fail")
	}
	if _, err := domain.WeekendDates("2026-05-01", "2026-06-01"); err == nil {
		t.Fatalf("month long weekend should fail")
	}
	if _, err := domain.WeekendDates("friday", "2026-05-22"); err == nil {
		t.Fatalf("bad date should fail")
	}
}

func TestNoteValidate(t *testing.T) {
	t.Parallel()
	note := domain.TrackNote{ID: "n1", Title: "Wet line forming", Type: domain.NoteTypeCondition}
	if err := note.Validate(); err != nil {
		t.Fatalf("note should be valid: %v", err)
	}
	note.Type = "gossip"
	if err := note.Validate(); err == nil {
		t.Fatalf("unknown type should fail")
	}
}
