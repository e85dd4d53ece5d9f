package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tarotvn/tarot-client/internal/client/config"
	"github.com/tarotvn/tarot-client/internal/client/controller"
	"github.com/tarotvn/tarot-client/internal/client/gateway"
	"github.com/tarotvn/tarot-client/internal/client/persistence"
	"github.com/tarotvn/tarot-client/internal/client/session"
	"github.com/tarotvn/tarot-client/internal/client/storage"
	"github.com/tarotvn/tarot-client/internal/client/storage/redisstore"
	"github.com/tarotvn/tarot-client/internal/client/storage/sqlite"
	"github.com/tarotvn/tarot-client/internal/logging"
)

// App wires the authentication core together for the interactive shell.
type App struct {
	config     *config.Config
	store      *session.Store
	controller *controller.Controller
	persist    *persistence.Manager
	gw         gateway.Identity
	storage    storage.Store
	logger     logging.Logger
	reader     *bufio.Reader
}

// NewApp builds the full stack from configuration: storage backend,
// gateway, session store, persistence manager and controller.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	st, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gw := gateway.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, logger)
	store := session.New()
	persist := persistence.NewManager(store, gw, st, logger)
	ctrl := controller.New(store, gw, persist, logger)

	return &App{
		config:     cfg,
		store:      store,
		controller: ctrl,
		persist:    persist,
		gw:         gw,
		storage:    st,
		logger:     logger,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return storage.NewMemory(), nil
	case config.StorageSQLite:
		return sqlite.Open(ctx, cfg.SQLitePath)
	case config.StorageRedis:
		return redisstore.Open(ctx, cfg.RedisAddr, cfg.RedisPassword)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// Run rehydrates the session from durable storage and enters the REPL.
// A failed rehydration is reported but not fatal: the user can log in
// again or retry.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.persist.Rehydrate(ctx); err != nil {
		a.logger.Warn(ctx, "session rehydration failed", "error", err)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close releases gateway and storage resources.
func (a *App) Close() {
	_ = a.gw.Close()
	_ = a.storage.Close()
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().Status == session.StatusAuthenticated
}

// getStatus renders the prompt segment: the user's name when logged in,
// plus any pending auth error.
func (a *App) getStatus() string {
	snap := a.store.Snapshot()
	switch snap.Status {
	case session.StatusAuthenticated:
		return fmt.Sprintf("(%s)", snap.User.DisplayName())
	case session.StatusAuthenticating:
		return "(...)"
	case session.StatusError:
		return "(error)"
	default:
		return ""
	}
}
