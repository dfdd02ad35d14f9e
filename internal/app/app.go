package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gridview/internal/config"
	apierrors "gridview/internal/errors"
	"gridview/internal/infrastructure"
	custommiddleware "gridview/internal/middleware"
	"gridview/internal/services"
	handlers "gridview/internal/transport/http"
)

// Application is the main application container
type Application struct {
	Config     *config.Config
	Logger     *slog.Logger
	Router     *chi.Mux
	Server     *http.Server
	Views      *services.ViewService
	Production *services.ProductionService
}

// NewApplication creates a new application instance with dependency injection
func NewApplication(configFile string) (*Application, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	app := &Application{
		Config:     cfg,
		Logger:     logger,
		Views:      services.NewViewService(logger, cfg),
		Production: services.NewProductionService(logger, cfg.Data.ProductionPath),
	}
	app.Router = app.setupRouter()
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

// setupRouter assembles the middleware chain and mounts all routes
func (app *Application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := custommiddleware.NewHTTPMetrics(registry)

	r.Use(custommiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.StructuredLogger(app.Logger))
	r.Use(custommiddleware.Recoverer(app.Logger))
	r.Use(metrics.Handler)
	if app.Config.RateLimit.Enabled {
		r.Use(custommiddleware.RateLimit(app.Config.RateLimit.RPS, app.Config.RateLimit.Burst))
	}

	errorHandler := apierrors.NewErrorHandler(app.Logger)
	r.Route("/api", func(r chi.Router) {
		r.Mount("/", handlers.NewViewHandler(app.Views, app.Logger, errorHandler).Routes())
		r.Mount("/production", handlers.NewProductionHandler(app.Production, app.Logger, errorHandler).Routes())
	})

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]string{"status": "ok"})
	})

	return r
}

// Run starts the HTTP server and blocks until shutdown completes
func (app *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("server starting",
			slog.String("addr", app.Server.Addr),
			slog.String("source", app.Config.Data.SourcePath))
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.Logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
	defer cancel()
	defer infrastructure.CloseLogFile()

	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
