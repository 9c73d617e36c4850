package domain_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"pitwall/internal/modules/session/domain"
)

func TestImportedName(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"":                                     "Imported Session",
		"   ":                                  "Imported Session",
		"abc":                                  "Imported from abc",
		"0190f3c2-8d3b-7c1e-9a2f-123456789abc": "Imported from 0190f3c2",
		"séssiön-ïd-ñ":                         "Imported from séssiön-",
		"🏁🏁🏁🏁🏁🏁🏁🏁🏁🏁":                           "Imported from 🏁🏁🏁🏁🏁🏁🏁🏁",
	}
	for in, want := range cases {
		got := domain.ImportedName(in)
		if got != want {
			t.Fatalf("ImportedName(%q) = %q, want %q", in, got, want)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("ImportedName(%q) is not valid UTF-8", in)
		}
	}
}

func TestTeamMarker(t *testing.T) {
	t.Parallel()
	marker := domain.TeamMarker("team-a", "sess-b")
	team, session, ok := domain.ParseTeamMarker(marker)
	if !ok || team != "team-a" || session != "sess-b" {
		t.Fatalf("marker round trip failed: %s %s %v", team, session, ok)
	}
	if _, _, ok := domain.ParseTeamMarker(domain.DemoSessionID); ok {
		t.Fatalf("demo session id must not parse as team marker")
	}
}

func TestDemoAppDataIsValidAndStable(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 20, 8, 0, 0, 0, time.UTC)
	data := domain.DemoAppData(now)
	if data.SessionID != domain.DemoSessionID || data.Version != domain.SnapshotVersion {
		t.Fatalf("unexpected header: %+v", data)
	}
	notes, _ := data.Notes.Get()
	for _, n := range notes {
		if err := n.Validate(); err != nil {
			t.Fatalf("demo note %s invalid: %v", n.ID, err)
		}
	}
	weekends, _ := data.RaceWeekends.Get()
	for _, w := range weekends {
		for _, d := range w.Days {
			for _, item := range d.Items {
				if err := item.Validate(); err != nil {
					t.Fatalf("demo item %s invalid: %v", item.ID, err)
				}
			}
		}
	}
	favs, _ := data.Favorites.Get()
	if len(favs) > 5 {
		t.Fatalf("demo favorites exceed cap: %v", favs)
	}

	again := domain.DemoAppData(now)
	a, _ := json.Marshal(data)
	b, _ := json.Marshal(again)
	if string(a) != string(b) {
		t.Fatalf("demo seed must be deterministic")
	}
}

func TestAppDataJSONShape(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 20, 8, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(domain.DemoAppData(now))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(payload)
	for _, field := range []string{`"notes"`, `"setups"`, `"raceWeekends"`, `"settings"`, `"favorites"`, `"sessionId":"demo-session"`, `"exportedAt"`, `"version":"1.0.0"`} {
		if !strings.Contains(text, field) {
			t.Fatalf("expected %s in %s", field, text)
		}
	}
	if strings.Contains(text, `"user"`) {
		t.Fatalf("absent user must be omitted: %s", text)
	}
}

func TestExportFileName(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 5, 24, 14, 3, 9, 0, time.FixedZone("CEST", 2*3600))
	if got, want := domain.ExportFileName("Monaco GP 🏁", at), "pitwall-monaco-gp-20260524-120309.json"; got != want {
		t.Fatalf("ExportFileName = %q, want %q", got, want)
	}
	if got := domain.ExportFileName("", at); !strings.HasPrefix(got, "pitwall-export-") {
		t.Fatalf("empty name should fall back: %q", got)
	}
}
