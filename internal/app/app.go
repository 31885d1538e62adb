package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"listingadmin/internal/config"
	"listingadmin/internal/logger"
	"listingadmin/internal/routes"
	"listingadmin/internal/services/auth"
	"listingadmin/internal/services/feedback"
	"listingadmin/internal/services/listing"
	"listingadmin/internal/services/websocket"
	"listingadmin/internal/web"
)

type App struct {
	config      *config.Config
	logger      *logger.Logger
	stores      *stores
	authService *auth.Service
	hubService  *websocket.HubService
	handler     http.Handler
}

// NewApp validates cfg, opens the configured store and wires the services
// and routes. The caller must Close the app if Run is never called.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Close()
		return nil, err
	}

	password := auth.NewPasswordChecker(cfg.AdminPasswordHash, cfg.AdminPassword)
	if !password.Hashed() && cfg.AdminPassword == config.DefaultAdminPassword {
		log.Warning("Using the default admin password; set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	if cfg.SessionSecret == "" {
		log.Warning("SESSION_SECRET is not set; sessions will not survive a restart")
	}

	authService, err := auth.NewService(st.sessions, password, []byte(cfg.SessionSecret), cfg.SessionTTL)
	if err != nil {
		st.close()
		log.Close()
		return nil, err
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		st.close()
		log.Close()
		return nil, err
	}

	hub := websocket.NewHubService(log)
	svc := routes.Services{
		Auth:     authService,
		Listings: listing.NewService(st.listings),
		Notifier: feedback.NewNotifier(cfg.FeedbackTTL, hub, log),
		Hub:      hub,
		Renderer: renderer,
	}

	return &App{
		config:      cfg,
		logger:      log,
		stores:      st,
		authService: authService,
		hubService:  hub,
		handler:     routes.SetupRoutes(svc, cfg, log),
	}, nil
}

// Handler is the fully wired router.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run serves HTTP until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then shuts down gracefully and closes the app.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start background services
	go a.hubService.Run(ctx)
	go a.authService.RunSweeper(ctx, a.config.SessionSweepInterval, a.logger)

	listener, err := net.Listen("tcp", a.config.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.Addr(), err)
	}

	server := &http.Server{
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.logger.Info("Listing admin listening on http://localhost:%d (store: %s)", a.config.Port, a.config.StoreDriver)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Close releases the store and the log file.
func (a *App) Close() error {
	return errors.Join(a.stores.close(), a.logger.Close())
}
