package in

import (
	"context"

	"pitwall/internal/modules/session/dto"
)

type Usecase interface {
	ListSessions(ctx context.Context) ([]dto.SessionMetadata, error)
	// ListVisibleSessions omits the demo entry while it is hidden and marks
	// the active session.
	ListVisibleSessions(ctx context.Context) ([]dto.SessionView, error)
	GetSession(ctx context.Context, id string) (dto.SessionMetadata, bool, error)
	CreateSession(ctx context.Context, input dto.CreateInput) (dto.SessionMetadata, error)
	UpdateSessionMetadata(ctx context.Context, id string, patch dto.MetadataPatch) (bool, error)
	DeleteSession(ctx context.Context, id string) (bool, error)
	HideDemo(ctx context.Context) error
	ShowDemo(ctx context.Context) error

	GetActiveSessionID(ctx context.Context) (string, bool, error)
	SetActiveSessionID(ctx context.Context, id string) error
	ClearActiveSessionID(ctx context.Context) error
	ActiveSession(ctx context.Context) (dto.ActiveOutput, bool, error)

	LoadSession(ctx context.Context, id string) (bool, error)
	SaveActiveSession(ctx context.Context) error
	// FlushActive writes the working buffer into the active session's slot
	// unless nextID is already the active session.
	FlushActive(ctx context.Context, nextID string) error
	// MarkTeamSessionActive points the active pointer at a team session slot.
	MarkTeamSessionActive(ctx context.Context, teamID, sessionID string) error
	ClearAllSessions(ctx context.Context) error
	MigrateExistingData(ctx context.Context) (dto.MigrateOutput, error)

	ExportData(ctx context.Context) (dto.AppData, error)
	ExportToFile(ctx context.Context, path string) (dto.AppData, error)
	DefaultExportPath(ctx context.Context) (string, error)
	ValidateImport(data dto.AppData) error
	CreateSessionFromImport(ctx context.Context, data dto.AppData) (dto.SessionMetadata, error)
	ImportFromFile(ctx context.Context, path string) (dto.SessionMetadata, error)
}
