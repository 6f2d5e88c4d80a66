package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/kcdforg/parentsclub-sub003/internal/portal/http"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store/drivers/sqlite"
	"github.com/kcdforg/parentsclub-sub003/pkg/cryptox"
	"github.com/kcdforg/parentsclub-sub003/pkg/jwtx"
	"github.com/kcdforg/parentsclub-sub003/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	tokens *jwtx.HS256

	authService         *service.AuthService
	invitationService   *service.InvitationService
	registrationService *service.RegistrationService
	userService         *service.UserService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router

	housekeepingCtx    context.Context
	housekeepingCancel context.CancelFunc
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initTokens(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	app.initServices()
	app.initHTTP()

	// Seed the first admin so a fresh deployment is operable immediately.
	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := app.bootstrapService.EnsureSeedAdmin(ctx); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingCtx, app.housekeepingCancel = context.WithCancel(
		slogx.WithContext(context.Background(), app.logger),
	)
	app.housekeepingService.Start(app.housekeepingCtx)

	app.logger.Info("portal starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portal...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()
	if app.housekeepingCancel != nil {
		app.housekeepingCancel()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("portal stopped")
	return nil
}

// initTokens sets up the session-token signer. Deployments without a
// configured secret get an ephemeral one: sessions then die with the
// process, which is fine for dev and wrong for prod, so it is logged.
func (app *Application) initTokens() error {
	secret := []byte(app.cfg.SessionSecret)
	if len(secret) == 0 {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = []byte(hex.EncodeToString(buf))
		app.logger.Warn("PORTAL_SESSION_SECRET not set, using an ephemeral secret; sessions will not survive restarts")
	}
	app.tokens = jwtx.NewHS256(secret, app.cfg.Issuer)
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Tokens:     app.tokens,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.invitationService = &service.InvitationService{
		Store:   app.db,
		BaseURL: app.cfg.BaseURL,
		TTL:     app.cfg.InvitationTTL,
	}
	app.registrationService = &service.RegistrationService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store:    app.db,
		Username: app.cfg.SeedAdminUsername,
		Password: app.cfg.SeedAdminPassword,
	}
	app.housekeepingService = &service.HousekeepingService{
		Store:    app.db,
		Interval: app.cfg.HousekeepingInterval,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.InvitationService = app.invitationService
	router.RegistrationService = app.registrationService
	router.UserService = app.userService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
