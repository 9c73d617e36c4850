package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
	multierror "github.com/hashicorp/go-multierror"

	recordsdto "pitwall/internal/modules/records/dto"
	recordsin "pitwall/internal/modules/records/port/in"
	"pitwall/internal/modules/session/domain"
	sessiondto "pitwall/internal/modules/session/dto"
	sessionin "pitwall/internal/modules/session/port/in"
	sessionout "pitwall/internal/modules/session/port/out"
	"pitwall/internal/modules/session/service"
	"pitwall/internal/platform/clock"
	apperrors "pitwall/internal/platform/errors"
	"pitwall/internal/platform/logging"
	"pitwall/internal/platform/tx"
)

const (
	migratedName        = "Migrated Data"
	migratedDescription = "Data from before sessions existed"
	migratedEmoji       = "📦"
)

// Interactor moves whole snapshots between the working buffer and the vault.
// Every operation that touches the working buffer and the active pointer runs
// inside tx so two switches never interleave.
type Interactor struct {
	dir     *service.DirectoryService
	vault   sessionout.VaultStore
	files   sessionout.SnapshotFile
	records recordsin.Usecase
	clock   clock.Clock
	tx      tx.Manager
	log     hclog.Logger
}

func NewInteractor(
	dir *service.DirectoryService,
	vault sessionout.VaultStore,
	files sessionout.SnapshotFile,
	records recordsin.Usecase,
	clock clock.Clock,
	txm tx.Manager,
	log hclog.Logger,
) sessionin.Usecase {
	return &Interactor{
		dir:     dir,
		vault:   vault,
		files:   files,
		records: records,
		clock:   clock,
		tx:      tx.OrNoop(txm),
		log:     logging.OrDiscard(log).Named("session"),
	}
}

func (i *Interactor) ListSessions(ctx context.Context) ([]sessiondto.SessionMetadata, error) {
	return i.dir.List(ctx)
}

func (i *Interactor) ListVisibleSessions(ctx context.Context) ([]sessiondto.SessionView, error) {
	list, err := i.dir.Visible(ctx)
	if err != nil {
		return nil, err
	}
	active, _ := i.dir.Active(ctx)
	views := make([]sessiondto.SessionView, 0, len(list))
	for _, meta := range list {
		views = append(views, sessiondto.SessionView{SessionMetadata: meta, Active: meta.ID == active})
	}
	return views, nil
}

func (i *Interactor) GetSession(ctx context.Context, id string) (sessiondto.SessionMetadata, bool, error) {
	return i.dir.Get(ctx, id)
}

func (i *Interactor) CreateSession(ctx context.Context, input sessiondto.CreateInput) (sessiondto.SessionMetadata, error) {
	meta, err := i.dir.Create(ctx, input)
	if err != nil {
		return sessiondto.SessionMetadata{}, err
	}
	i.log.Info("session created", "session_id", meta.ID, "name", meta.Name)
	return meta, nil
}

func (i *Interactor) UpdateSessionMetadata(ctx context.Context, id string, patch sessiondto.MetadataPatch) (bool, error) {
	_, ok, err := i.dir.Update(ctx, id, patch)
	return ok, err
}

func (i *Interactor) DeleteSession(ctx context.Context, id string) (bool, error) {
	ok, err := tx.Do(ctx, i.tx, func(ctx context.Context) (bool, error) {
		return i.dir.Delete(ctx, id)
	})
	if ok {
		i.log.Info("session deleted", "session_id", id)
	}
	return ok, err
}

func (i *Interactor) HideDemo(ctx context.Context) error {
	return i.dir.SetDemoHidden(ctx, true)
}

func (i *Interactor) ShowDemo(ctx context.Context) error {
	return i.dir.SetDemoHidden(ctx, false)
}

func (i *Interactor) GetActiveSessionID(ctx context.Context) (string, bool, error) {
	id, ok := i.dir.Active(ctx)
	return id, ok, nil
}

func (i *Interactor) SetActiveSessionID(ctx context.Context, id string) error {
	return i.dir.SetActive(ctx, id)
}

func (i *Interactor) ClearActiveSessionID(ctx context.Context) error {
	return i.dir.ClearActive(ctx)
}

func (i *Interactor) ActiveSession(ctx context.Context) (sessiondto.ActiveOutput, bool, error) {
	id, ok := i.dir.Active(ctx)
	if !ok {
		return sessiondto.ActiveOutput{}, false, nil
	}
	out := sessiondto.ActiveOutput{SessionID: id}
	if teamID, sessionID, isTeam := domain.ParseTeamMarker(id); isTeam {
		out.TeamID, out.TeamSessionID = teamID, sessionID
	}
	return out, true, nil
}

// LoadSession makes id the active session. The outgoing session is flushed
// first; if id has no readable slot nothing else changes and false is
// returned.
func (i *Interactor) LoadSession(ctx context.Context, id string) (bool, error) {
	return tx.Do(ctx, i.tx, func(ctx context.Context) (bool, error) {
		return i.loadSession(ctx, id)
	})
}

func (i *Interactor) loadSession(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	}
	if domain.IsDemo(id) {
		if _, err := i.dir.List(ctx); err != nil {
			return false, err
		}
	}
	if err := i.flushActive(ctx, id); err != nil {
		return false, err
	}
	data, ok := i.vault.Get(ctx, id)
	if !ok {
		i.log.Warn("no data for session", "session_id", id)
		return false, nil
	}
	if err := i.replaceWorking(ctx, data.Snapshot); err != nil {
		return false, err
	}
	if err := i.dir.Touch(ctx, id); err != nil {
		return false, err
	}
	if err := i.dir.SetActive(ctx, id); err != nil {
		return false, err
	}
	i.log.Debug("session loaded", "session_id", id)
	return true, nil
}

func (i *Interactor) SaveActiveSession(ctx context.Context) error {
	return i.tx.Within(ctx, i.saveActiveSession)
}

func (i *Interactor) saveActiveSession(ctx context.Context) error {
	active, ok := i.dir.Active(ctx)
	if !ok {
		return apperrors.ErrNoActiveSession
	}
	return i.flush(ctx, active)
}

// FlushActive writes the working buffer back to the active slot unless the
// active session is nextID.
func (i *Interactor) FlushActive(ctx context.Context, nextID string) error {
	return i.tx.Within(ctx, func(ctx context.Context) error {
		return i.flushActive(ctx, nextID)
	})
}

func (i *Interactor) flushActive(ctx context.Context, nextID string) error {
	active, ok := i.dir.Active(ctx)
	if !ok || active == nextID {
		return nil
	}
	return i.flush(ctx, active)
}

func (i *Interactor) MarkTeamSessionActive(ctx context.Context, teamID, sessionID string) error {
	return i.tx.Within(ctx, func(ctx context.Context) error {
		return i.markTeamSessionActive(ctx, teamID, sessionID)
	})
}

func (i *Interactor) markTeamSessionActive(ctx context.Context, teamID, sessionID string) error {
	if strings.TrimSpace(teamID) == "" || strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("%w: team and session ids are required", apperrors.ErrInvalidInput)
	}
	return i.dir.SetActive(ctx, domain.TeamMarker(teamID, sessionID))
}

// ClearAllSessions drops every session except the demo, empties the working
// buffer and restores the demo entry. Slot removal failures are collected
// and returned together after the remaining steps have run.
func (i *Interactor) ClearAllSessions(ctx context.Context) error {
	return i.tx.Within(ctx, i.clearAllSessions)
}

func (i *Interactor) clearAllSessions(ctx context.Context) error {
	var result *multierror.Error
	ids, err := i.vault.IDs(ctx)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("list session data: %w", err))
	}
	for _, id := range ids {
		if domain.IsDemo(id) {
			continue
		}
		if err := i.vault.Remove(ctx, id); err != nil {
			result = multierror.Append(result, fmt.Errorf("remove session data %s: %w", id, err))
		}
	}
	if err := i.dir.Reset(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := i.records.Reset(ctx, recordsdto.WorkingBuffer); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := i.dir.List(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	i.log.Info("all sessions cleared", "removed", len(ids))
	return result.ErrorOrNil()
}

// MigrateExistingData adopts records written before sessions existed. It
// runs only on a store whose directory was never written and that has no
// active session.
func (i *Interactor) MigrateExistingData(ctx context.Context) (sessiondto.MigrateOutput, error) {
	return tx.Do(ctx, i.tx, i.migrateExistingData)
}

func (i *Interactor) migrateExistingData(ctx context.Context) (sessiondto.MigrateOutput, error) {
	initialized, err := i.dir.Initialized(ctx)
	if err != nil {
		return sessiondto.MigrateOutput{}, err
	}
	if initialized {
		return sessiondto.MigrateOutput{}, nil
	}
	if _, ok := i.dir.Active(ctx); ok {
		return sessiondto.MigrateOutput{}, nil
	}
	snap, err := i.records.Snapshot(ctx, recordsdto.WorkingBuffer)
	if err != nil {
		return sessiondto.MigrateOutput{}, err
	}
	if !snap.HasUserRecords() {
		return sessiondto.MigrateOutput{}, nil
	}
	meta, err := i.dir.Register(ctx, sessiondto.CreateInput{Name: migratedName, Description: migratedDescription, Emoji: migratedEmoji})
	if err != nil {
		return sessiondto.MigrateOutput{}, err
	}
	if err := i.vault.Set(ctx, meta.ID, domain.NewAppData(meta.ID, snap, i.clock.Now())); err != nil {
		return sessiondto.MigrateOutput{}, fmt.Errorf("save migrated data: %w", err)
	}
	if err := i.dir.SetActive(ctx, meta.ID); err != nil {
		return sessiondto.MigrateOutput{}, err
	}
	i.log.Info("migrated existing data", "session_id", meta.ID)
	return sessiondto.MigrateOutput{SessionID: meta.ID, Migrated: true}, nil
}

func (i *Interactor) ExportData(ctx context.Context) (sessiondto.AppData, error) {
	snap, err := i.records.Snapshot(ctx, recordsdto.WorkingBuffer)
	if err != nil {
		return sessiondto.AppData{}, err
	}
	active, _ := i.dir.Active(ctx)
	return domain.NewAppData(active, snap, i.clock.Now()), nil
}

// DefaultExportPath names an export file after the active session.
func (i *Interactor) DefaultExportPath(ctx context.Context) (string, error) {
	name := ""
	if active, ok := i.dir.Active(ctx); ok {
		if teamID, sessionID, isTeam := domain.ParseTeamMarker(active); isTeam {
			name = teamID + " " + sessionID
		} else {
			meta, found, err := i.dir.Get(ctx, active)
			if err != nil {
				return "", err
			}
			if found {
				name = meta.Name
			}
		}
	}
	return domain.ExportFileName(name, i.clock.Now()), nil
}

func (i *Interactor) ExportToFile(ctx context.Context, path string) (sessiondto.AppData, error) {
	if strings.TrimSpace(path) == "" {
		return sessiondto.AppData{}, fmt.Errorf("%w: export path is required", apperrors.ErrInvalidInput)
	}
	data, err := i.ExportData(ctx)
	if err != nil {
		return sessiondto.AppData{}, err
	}
	if err := i.files.Write(ctx, path, data); err != nil {
		return sessiondto.AppData{}, err
	}
	return data, nil
}

func (i *Interactor) ValidateImport(data sessiondto.AppData) error {
	var problems []string
	if strings.TrimSpace(data.Version) == "" {
		problems = append(problems, "version is missing")
	}
	if data.ExportedAt.IsZero() {
		problems = append(problems, "exportedAt is missing")
	}
	if !data.Notes.Present() {
		problems = append(problems, "notes are missing")
	}
	if !data.Setups.Present() {
		problems = append(problems, "setups are missing")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidImport, strings.Join(problems, ", "))
	}
	return nil
}

// CreateSessionFromImport stores data as a new session without loading it.
func (i *Interactor) CreateSessionFromImport(ctx context.Context, data sessiondto.AppData) (sessiondto.SessionMetadata, error) {
	now := i.clock.Now()
	meta, err := i.dir.Register(ctx, sessiondto.CreateInput{
		Name:        domain.ImportedName(data.SessionID),
		Description: "Imported " + now.Format("2006-01-02 15:04"),
		Emoji:       "📥",
	})
	if err != nil {
		return sessiondto.SessionMetadata{}, err
	}
	data.SessionID = meta.ID
	data.ExportedAt = now
	if err := i.vault.Set(ctx, meta.ID, data); err != nil {
		return sessiondto.SessionMetadata{}, fmt.Errorf("save imported data: %w", err)
	}
	i.log.Info("session imported", "session_id", meta.ID)
	return meta, nil
}

func (i *Interactor) ImportFromFile(ctx context.Context, path string) (sessiondto.SessionMetadata, error) {
	data, err := i.files.Read(ctx, path)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidImport) {
			return sessiondto.SessionMetadata{}, err
		}
		return sessiondto.SessionMetadata{}, fmt.Errorf("read import %s: %w", path, err)
	}
	if err := i.ValidateImport(data); err != nil {
		return sessiondto.SessionMetadata{}, err
	}
	return i.CreateSessionFromImport(ctx, data)
}

func (i *Interactor) flush(ctx context.Context, id string) error {
	snap, err := i.records.Snapshot(ctx, recordsdto.WorkingBuffer)
	if err != nil {
		return err
	}
	if err := i.vault.Set(ctx, id, domain.NewAppData(id, snap, i.clock.Now())); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

func (i *Interactor) replaceWorking(ctx context.Context, snap recordsdto.Snapshot) error {
	if err := i.records.Reset(ctx, recordsdto.WorkingBuffer); err != nil {
		return err
	}
	return i.records.Hydrate(ctx, recordsdto.WorkingBuffer, snap)
}
