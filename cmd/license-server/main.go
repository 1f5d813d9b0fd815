package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dlviewer/dlviewer/internal/config"
	"github.com/dlviewer/dlviewer/internal/domain/license"
	"github.com/dlviewer/dlviewer/internal/platform/barcode"
	"github.com/dlviewer/dlviewer/internal/platform/metrics"
	"github.com/dlviewer/dlviewer/internal/platform/middleware"
	"github.com/dlviewer/dlviewer/internal/platform/sheets"
	"github.com/dlviewer/dlviewer/internal/platform/web"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "license-server",
		Short: "Driver's license records viewer API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(fetchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the viewer API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Load the record set once and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			primary, fallback := buildSources(cmd.Context(), cfg, logger)
			repo := license.NewRepository(primary, fallback, cfg.CacheTTL(), nil, logger)
			snap := repo.Licenses(cmd.Context(), true)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source: %s\nrecords: %d\n", snap.Source, len(snap.Value))
			if len(snap.Value) > 0 {
				first, err := json.MarshalIndent(snap.Value[0], "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "first record:\n%s\n", first)
			}
			return nil
		},
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	if cfg.Debug {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.InfoLevel)
}

// buildSources returns the spreadsheet source, or nil when no sheet is
// configured or authentication failed, and the local fallback file.
func buildSources(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (license.Source, license.Source) {
	opts := license.MapOptions{Extended: cfg.MapExtendedColumns}
	fallback := license.NewFileSource(cfg.FallbackFile, opts)
	if !fallback.Available() {
		logger.Warn().Str("file", cfg.FallbackFile).Msg("fallback file not found")
	}

	if !cfg.SheetConfigured() {
		logger.Warn().Msg("GOOGLE_SHEET_ID not configured; using fallback data only")
		return nil, fallback
	}
	conn := sheets.Connect(ctx, sheets.Credentials{File: cfg.CredentialsFile, JSON: cfg.CredentialsJSON}, logger)
	if !conn.Connected() {
		return nil, fallback
	}
	return sheets.NewLicenseSource(conn, cfg.SheetID, cfg.SheetRange, opts), fallback
}

func newServer(cfg *config.Config, logger zerolog.Logger, svc *license.Service, renderer barcode.Renderer, reg *prometheus.Registry, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = web.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Metrics(m))
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.SecurityHeaders("/api"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	license.NewHandler(svc, renderer, m).RegisterRoutes(api)

	web.RegisterStatic(e, cfg.StaticDir, cfg.IndexFile)
	return e
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := zerolog.New(os.Stdout).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}
	logger := newLogger(cfg)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Record sources and cache
	ctx := context.Background()
	primary, fallback := buildSources(ctx, cfg, logger)
	repo := license.NewRepository(primary, fallback, cfg.CacheTTL(), nil, logger)
	repo.SetMetrics(m)
	svc := license.NewService(repo, nil)

	var renderer barcode.Renderer
	if cfg.BarcodeEnabled {
		renderer = barcode.NewPDF417()
	} else {
		logger.Warn().Msg("barcode rendering disabled")
	}

	e := newServer(cfg, logger, svc, renderer, reg, m)

	// Graceful shutdown
	go func() {
		addr := cfg.Addr()
		logger.Info().
			Str("addr", addr).
			Str("sheet_source", repo.PrimaryName()).
			Dur("cache_timeout", cfg.CacheTTL()).
			Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
