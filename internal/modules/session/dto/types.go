package dto

import "pitwall/internal/modules/session/domain"

type (
	SessionMetadata = domain.SessionMetadata
	AppData         = domain.AppData
)

const (
	DemoSessionID   = domain.DemoSessionID
	SnapshotVersion = domain.SnapshotVersion
)

type CreateInput struct {
	Name        string
	Description string
	Emoji       string
}

// MetadataPatch changes only the fields that are non-nil.
type MetadataPatch struct {
	Name        *string
	Description *string
	Emoji       *string
}

// SessionView is a directory entry annotated for listing.
type SessionView struct {
	SessionMetadata
	Active bool
}

type MigrateOutput struct {
	SessionID string
	Migrated  bool
}

type ActiveOutput struct {
	SessionID string
	// TeamID and TeamSessionID are set when the active pointer holds a team
	// marker rather than a plain session id.
	TeamID        string
	TeamSessionID string
}
