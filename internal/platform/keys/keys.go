// Package keys names every key pitwall writes to the kv store.
package keys

import "strings"

const (
	Prefix = "@pitwall/"

	Sessions          = Prefix + "sessions"
	ActiveSessionID   = Prefix + "active_session_id"
	SessionData       = Prefix + "session_data_"
	Teams             = Prefix + "teams"
	TeamSessionData   = Prefix + "team_session_data_"
	HiddenDemoSession = Prefix + "hidden_demo_session"
	Theme             = Prefix + "theme"
)

// Record collection names, relative to a buffer prefix.
const (
	User         = "user"
	Notes        = "notes"
	Setups       = "setups"
	RaceWeekends = "race_weekends"
	Settings     = "settings"
	Favorites    = "favorites"
)

var RecordNames = []string{User, Notes, Setups, RaceWeekends, Settings, Favorites}

const teamSlotSep = "_"

// TeamSlotID joins a team and one of its sessions into the id used both for
// the team vault slot and for the active-session marker.
func TeamSlotID(teamID, sessionID string) string {
	return teamID + teamSlotSep + sessionID
}

// SplitTeamSlotID reverses TeamSlotID. Generated ids never contain the
// separator, so a plain session id reports false.
func SplitTeamSlotID(slotID string) (teamID, sessionID string, ok bool) {
	teamID, sessionID, ok = strings.Cut(slotID, teamSlotSep)
	if !ok || teamID == "" || sessionID == "" {
		return "", "", false
	}
	return teamID, sessionID, true
}
