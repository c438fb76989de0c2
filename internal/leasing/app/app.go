package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/havenlet/leasing/internal/leasing/blob"
	"github.com/havenlet/leasing/internal/leasing/contract"
	httpapi "github.com/havenlet/leasing/internal/leasing/http"
	"github.com/havenlet/leasing/internal/leasing/notify"
	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/internal/leasing/store"
	"github.com/havenlet/leasing/internal/leasing/store/drivers/sqlite"
	"github.com/havenlet/leasing/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the leasing service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	// External collaborators
	renderer contract.Renderer
	notifier notify.Notifier
	blobs    blob.Gateway

	// Services
	userService        *service.UserService
	listingService     *service.ListingService
	applicationService *service.ApplicationService
	leaseService       *service.LeaseService
	inviteService      *service.InviteService
	signingService     *service.SigningService
	maintenanceService *service.MaintenanceService
	invoiceService     *service.InvoiceService
	documentService    *service.DocumentService
	sweeperService     *service.SweeperService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "leasing-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("LEASING_JWT_SECRET is required")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initCollaborators()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.sweeperService.Start()

	app.logger.Info("leasing service starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down leasing service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.sweeperService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("leasing service stopped")
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

// initCollaborators wires the external service clients. Each collaborator is
// optional; a missing URL disables the feature rather than failing startup.
func (app *Application) initCollaborators() {
	if app.cfg.ContractRendererURL != "" {
		app.renderer = contract.NewClient(app.cfg.ContractRendererURL)
	} else {
		app.logger.Warn("contract renderer not configured, document rendering disabled")
	}

	if app.cfg.NotifierURL != "" {
		app.notifier = notify.NewClient(app.cfg.NotifierURL)
	} else {
		app.notifier = notify.Noop{}
		app.logger.Warn("notifier not configured, notifications disabled")
	}

	if app.cfg.BlobGatewayURL != "" {
		app.blobs = blob.NewClient(app.cfg.BlobGatewayURL)
	} else {
		app.logger.Warn("blob gateway not configured, document uploads disabled")
	}
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.listingService = &service.ListingService{Store: app.db}
	app.applicationService = &service.ApplicationService{
		Store:    app.db,
		Notifier: app.notifier,
	}
	app.leaseService = &service.LeaseService{Store: app.db}
	app.inviteService = &service.InviteService{
		Store:         app.db,
		Notifier:      app.notifier,
		PublicBaseURL: app.cfg.PublicBaseURL,
	}
	app.signingService = &service.SigningService{
		Store:    app.db,
		Renderer: app.renderer,
		Notifier: app.notifier,
	}
	app.maintenanceService = &service.MaintenanceService{Store: app.db}
	app.invoiceService = &service.InvoiceService{
		Store:    app.db,
		Notifier: app.notifier,
	}
	app.documentService = &service.DocumentService{Blob: app.blobs}

	app.sweeperService = service.NewSweeperService(
		app.db,
		app.logger,
		app.cfg.SweepInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		[]byte(app.cfg.JWTSecret),
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.ListingService = app.listingService
	router.ApplicationService = app.applicationService
	router.LeaseService = app.leaseService
	router.InviteService = app.inviteService
	router.SigningService = app.signingService
	router.MaintenanceService = app.maintenanceService
	router.InvoiceService = app.invoiceService
	router.DocumentService = app.documentService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
