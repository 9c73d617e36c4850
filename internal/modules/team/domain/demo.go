package domain

import (
	"time"

	recordsdto "pitwall/internal/modules/records/dto"
	sessiondto "pitwall/internal/modules/session/dto"
	"pitwall/internal/platform/opt"
)

const DemoTeamID = "demo-team"

// DemoTeam is rebuilt for the current identity, who is always its admin.
func DemoTeam(now time.Time, me Identity) Team {
	session := func(id, name, emoji, trackID string) TeamSession {
		return TeamSession{
			SessionMetadata: sessiondto.SessionMetadata{
				ID: id, Name: name, Emoji: emoji, CreatedAt: now, LastAccessedAt: now, IsDemo: true,
			},
			TrackID:   trackID,
			CreatedBy: "demo-crew-chief",
		}
	}
	return Team{
		ID:          DemoTeamID,
		Name:        "Demo Racing Team",
		Description: "A sample team to try roles and shared sessions",
		Members: []TeamMember{
			{ID: me.ID, Name: me.Name, Role: RoleAdmin, JoinedAt: now},
			{ID: "demo-crew-chief", Name: "Alex Rivera", Email: "alex@example.com", Role: RoleCrewChief, JoinedAt: now},
			{ID: "demo-driver", Name: "Sam Chen", Email: "sam@example.com", Role: RoleDriver, JoinedAt: now},
		},
		Sessions: []TeamSession{
			session("demo-team-session-1", "Qualifying Prep", "⏱️", "monaco"),
			session("demo-team-session-2", "Race Day Strategy", "🏆", "spa"),
		},
		CreatedAt: now,
		UpdatedAt: now,
		IsDemo:    true,
	}
}

// DemoTeamSessionData seeds one demo team session slot.
func DemoTeamSessionData(now time.Time, s TeamSession) sessiondto.AppData {
	snap := recordsdto.EmptySnapshot()
	snap.Notes = opt.Of([]recordsdto.TrackNote{{
		ID:        s.ID + "-note",
		TrackID:   s.TrackID,
		Title:     s.Name + " briefing",
		Content:   "Shared with the whole crew. Check the forecast an hour before the session.",
		Type:      "strategy",
		CreatedAt: now,
		UpdatedAt: now,
	}})
	snap.Favorites = opt.Of([]string{s.TrackID})
	return sessiondto.AppData{Snapshot: snap, SessionID: s.ID, ExportedAt: now, Version: sessiondto.SnapshotVersion}
}
