package keys_test

import (
	"testing"

	"pitwall/internal/platform/keys"
)

func TestTeamSlotIDRoundTrip(t *testing.T) {
	t.Parallel()
	slot := keys.TeamSlotID("demo-team", "demo-team-session-1")
	if slot != "demo-team_demo-team-session-1" {
		t.Fatalf("unexpected slot id %s", slot)
	}
	team, session, ok := keys.SplitTeamSlotID(slot)
	if !ok || team != "demo-team" || session != "demo-team-session-1" {
		t.Fatalf("split mismatch: %s %s %v", team, session, ok)
	}
	for _, plain := range []string{"demo-session", "0190f3c2-8d3b-7c1e-9a2f-123456789abc", "_x", "x_"} {
		if _, _, ok := keys.SplitTeamSlotID(plain); ok {
			t.Fatalf("%q should not parse as a team slot", plain)
		}
	}
}
