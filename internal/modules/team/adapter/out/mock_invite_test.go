package out

import (
	"context"
	"errors"
	"testing"
	"time"

	"pitwall/internal/modules/team/domain"
)

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

type fixedID string

func (f fixedID) New() string { return string(f) }

func TestMockInviteReturnsProfile(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	client := NewMockInviteClient(fixedClock{now}, fixedID("member-1"), 0)
	member, err := client.Invite(context.Background(), "team-1", "Jane.Doe@Team.com", domain.RoleDriver)
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if member.ID != "member-1" || member.Name != "Jane Doe" || member.Email != "jane.doe@team.com" || member.Role != domain.RoleDriver || !member.JoinedAt.Equal(now) {
		t.Fatalf("unexpected member: %+v", member)
	}
}

func TestMockInviteHonoursCancellation(t *testing.T) {
	t.Parallel()
	client := NewMockInviteClient(fixedClock{time.Now()}, fixedID("member-1"), time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := client.Invite(ctx, "team-1", "a@b.c", domain.RoleMember); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestNameFromEmail(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"sam@x.io":         "Sam",
		"max_verstap@x.io": "Max Verstap",
		"@x.io":            "@x.io",
	}
	for in, want := range cases {
		if got := nameFromEmail(in); got != want {
			t.Fatalf("nameFromEmail(%q) = %q, want %q", in, got, want)
		}
	}
}
