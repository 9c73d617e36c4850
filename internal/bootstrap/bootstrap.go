package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	recordsinadapter "pitwall/internal/modules/records/adapter/in"
	recordsoutadapter "pitwall/internal/modules/records/adapter/out"
	recordsservice "pitwall/internal/modules/records/service"
	recordsusecase "pitwall/internal/modules/records/usecase"
	sessioninadapter "pitwall/internal/modules/session/adapter/in"
	sessionoutadapter "pitwall/internal/modules/session/adapter/out"
	sessionservice "pitwall/internal/modules/session/service"
	sessionusecase "pitwall/internal/modules/session/usecase"
	teaminadapter "pitwall/internal/modules/team/adapter/in"
	teamoutadapter "pitwall/internal/modules/team/adapter/out"
	teamdomain "pitwall/internal/modules/team/domain"
	teamservice "pitwall/internal/modules/team/service"
	teamusecase "pitwall/internal/modules/team/usecase"
	"pitwall/internal/platform/clock"
	"pitwall/internal/platform/config"
	"pitwall/internal/platform/id"
	"pitwall/internal/platform/kv"
	"pitwall/internal/platform/logging"
	"pitwall/internal/platform/tx"
	uiapp "pitwall/internal/ui/app"
	"pitwall/internal/ui/theme"
)

type App struct {
	RecordsCLI recordsinadapter.CLIHandler
	SessionCLI sessioninadapter.CLIHandler
	TeamCLI    teaminadapter.CLIHandler
	Log        hclog.Logger

	store kv.Store
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func OpenStore(cfg config.Config) (kv.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return kv.NewSQLiteStore(cfg.Storage.SQLitePath)
	case config.BackendRedis:
		return kv.NewRedisStore(cfg.Storage.RedisURL)
	case config.BackendMemory:
		return kv.NewMemStore()
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}

// New opens the configured store and wires every module on top of it. logOut
// defaults to stderr.
func New(ctx context.Context, cfg config.Config, logOut io.Writer) (*App, error) {
	if logOut == nil {
		logOut = os.Stderr
	}
	log := logging.New(cfg.Log.Level, logOut)

	store, err := OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}

	clk := clock.SystemClock{}
	ids := id.UUID{}
	txm := tx.NewSerial()

	buffers := recordsoutadapter.NewKVBufferStore(store, log)
	recordsUC := recordsusecase.NewInteractor(recordsusecase.Services{
		Notes:       recordsservice.NewNoteService(clk, ids, buffers),
		Setups:      recordsservice.NewSetupService(clk, ids, buffers),
		Itinerary:   recordsservice.NewItineraryService(clk, ids, buffers),
		Preferences: recordsservice.NewPreferenceService(buffers, recordsoutadapter.NewKVThemeStore(store, log)),
		Buffers:     recordsservice.NewBufferService(buffers),
	}, recordsoutadapter.NewStaticTrackCatalog())

	vault := sessionoutadapter.NewKVVault(store, log)
	directory := sessionservice.NewDirectoryService(clk, ids,
		sessionoutadapter.NewKVDirectoryStore(store, log),
		sessionoutadapter.NewKVActivePointer(store, log),
		vault,
		sessionoutadapter.NewKVDemoVisibility(store, log),
	)
	sessionUC := sessionusecase.NewInteractor(directory, vault, sessionoutadapter.NewJSONSnapshotFile(), recordsUC, clk, txm, log)

	me := teamdomain.Identity{ID: cfg.User.ID, Name: cfg.User.Name}
	teamSvc := teamservice.NewTeamService(clk, ids,
		teamoutadapter.NewKVTeamStore(store, log),
		teamoutadapter.NewKVTeamVault(store, log),
		me,
	)
	teamUC := teamusecase.NewInteractor(teamSvc,
		teamoutadapter.NewMockInviteClient(clk, ids, cfg.Team.InviteLatency),
		sessionUC, recordsUC, txm, log)

	migrated, err := sessionUC.MigrateExistingData(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("migrate existing data: %w", err)
	}
	if migrated.Migrated {
		log.Info("migrated pre-session data", "session", migrated.SessionID)
	}

	return &App{
		RecordsCLI: recordsinadapter.NewCLIHandler(recordsUC),
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		TeamCLI:    teaminadapter.NewCLIHandler(teamUC),
		Log:        log,
		store:      store,
	}, nil
}

func RunTUI(ctx context.Context, app *App) error {
	if mode, err := app.RecordsCLI.Theme(ctx); err == nil {
		theme.Use(string(mode))
	} else {
		app.Log.Warn("read theme preference", "error", err)
	}
	model := uiapp.NewModel(app.SessionCLI, app.RecordsCLI, app.TeamCLI)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
