package in

import (
	"context"

	sessiondto "pitwall/internal/modules/session/dto"
	sessionin "pitwall/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]sessiondto.SessionView, error) {
	return h.usecase.ListVisibleSessions(ctx)
}

func (h CLIHandler) Create(ctx context.Context, name, description, emoji string) (sessiondto.SessionMetadata, error) {
	return h.usecase.CreateSession(ctx, sessiondto.CreateInput{Name: name, Description: description, Emoji: emoji})
}

// CreateAndLoad creates a session and switches to it, as the new-session
// screen does.
func (h CLIHandler) CreateAndLoad(ctx context.Context, name, description, emoji string) (sessiondto.SessionMetadata, bool, error) {
	meta, err := h.Create(ctx, name, description, emoji)
	if err != nil {
		return sessiondto.SessionMetadata{}, false, err
	}
	loaded, err := h.usecase.LoadSession(ctx, meta.ID)
	return meta, loaded, err
}

func (h CLIHandler) Load(ctx context.Context, id string) (bool, error) {
	return h.usecase.LoadSession(ctx, id)
}

func (h CLIHandler) Save(ctx context.Context) error {
	return h.usecase.SaveActiveSession(ctx)
}

func (h CLIHandler) Delete(ctx context.Context, id string) (bool, error) {
	return h.usecase.DeleteSession(ctx, id)
}

func (h CLIHandler) Update(ctx context.Context, id string, patch sessiondto.MetadataPatch) (bool, error) {
	return h.usecase.UpdateSessionMetadata(ctx, id, patch)
}

func (h CLIHandler) Active(ctx context.Context) (sessiondto.ActiveOutput, bool, error) {
	return h.usecase.ActiveSession(ctx)
}

// Export writes the working data to path, or to a file named after the active
// session in the current directory when path is empty. It returns the path used.
func (h CLIHandler) Export(ctx context.Context, path string) (string, sessiondto.AppData, error) {
	if path == "" {
		var err error
		if path, err = h.usecase.DefaultExportPath(ctx); err != nil {
			return "", sessiondto.AppData{}, err
		}
	}
	data, err := h.usecase.ExportToFile(ctx, path)
	return path, data, err
}

func (h CLIHandler) Import(ctx context.Context, path string) (sessiondto.SessionMetadata, error) {
	return h.usecase.ImportFromFile(ctx, path)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.ClearAllSessions(ctx)
}

func (h CLIHandler) Migrate(ctx context.Context) (sessiondto.MigrateOutput, error) {
	return h.usecase.MigrateExistingData(ctx)
}

func (h CLIHandler) SetDemoHidden(ctx context.Context, hidden bool) error {
	if hidden {
		return h.usecase.HideDemo(ctx)
	}
	return h.usecase.ShowDemo(ctx)
}
