package domain

import (
	"strings"
	"time"

	recordsdto "pitwall/internal/modules/records/dto"
	"pitwall/internal/platform/keys"
	"pitwall/internal/platform/slug"
)

// SnapshotVersion is stamped on every snapshot written to a vault slot or an
// export file.
const SnapshotVersion = "1.0.0"

const (
	DemoSessionID    = "demo-session"
	DemoSessionName  = "Demo Session"
	DemoSessionEmoji = "🏁"
)

type SessionMetadata struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Emoji          string    `json:"emoji,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
	IsDemo         bool      `json:"isDemo,omitempty"`
}

// AppData is one session's complete snapshot as stored in its vault slot and
// as written to export files.
type AppData struct {
	recordsdto.Snapshot
	SessionID  string    `json:"sessionId"`
	ExportedAt time.Time `json:"exportedAt"`
	Version    string    `json:"version"`
}

func NewAppData(sessionID string, snap recordsdto.Snapshot, at time.Time) AppData {
	return AppData{Snapshot: snap, SessionID: sessionID, ExportedAt: at, Version: SnapshotVersion}
}

func IsDemo(id string) bool {
	return id == DemoSessionID
}

// TeamMarker is the value the active pointer holds while a team session is
// loaded.
func TeamMarker(teamID, sessionID string) string {
	return keys.TeamSlotID(teamID, sessionID)
}

func ParseTeamMarker(id string) (teamID, sessionID string, ok bool) {
	return keys.SplitTeamSlotID(id)
}

// ImportedName names a session created from an import payload.
func ImportedName(priorSessionID string) string {
	prior := strings.TrimSpace(priorSessionID)
	if prior == "" {
		return "Imported Session"
	}
	if r := []rune(prior); len(r) > 8 {
		prior = string(r[:8])
	}
	return "Imported from " + prior
}

func FindSession(list []SessionMetadata, id string) int {
	for idx, meta := range list {
		if meta.ID == id {
			return idx
		}
	}
	return -1
}

// ExportFileName is where an export of the named session goes when no path is
// given, e.g. pitwall-monaco-gp-20260520-090000.json.
func ExportFileName(name string, at time.Time) string {
	return "pitwall-" + slug.Make(name, "export") + "-" + at.UTC().Format("20060102-150405") + ".json"
}
