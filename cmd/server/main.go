package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelshowcase/internal/app"
	"travelshowcase/internal/config"
	"travelshowcase/internal/destinations"
	"travelshowcase/internal/httpx"
	mcpserver "travelshowcase/internal/mcp"
	"travelshowcase/internal/observability"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
)

//go:embed static
var staticFS embed.FS

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logger
	logger := cfg.Logger()

	// Context for startup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.TracingEnabled, cfg.TracingEndpoint, logger)
	if err != nil {
		log.Fatalf("failed to init tracer: %v", err)
	}
	defer shutdownTracer()

	// Load destinations
	showcase, err := app.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open showcase: %v", err)
	}
	defer showcase.Close(context.Background())

	// Wire dependencies
	handler := destinations.NewHandler(showcase.Service, logger)

	// Create MCP server
	mcpSrv := mcpserver.NewServer(showcase.Service)

	// HTTP router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.Tracing)
	r.Use(httpx.AccessLog(logger))
	r.Use(middleware.Recoverer)

	// Static files
	static, err := staticHandler()
	if err != nil {
		log.Fatalf("failed to get static fs: %v", err)
	}
	r.With(middleware.Compress(5)).Handle("/static/*", static)

	// Pages, fragments and REST API
	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))
		r.Use(middleware.Timeout(15 * time.Second))
		handler.Register(r)
	})

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	mcpHTTP := server.NewStreamableHTTPServer(mcpSrv)
	r.Method(http.MethodPost, "/mcp", mcpHTTP)
	r.Method(http.MethodGet, "/mcp", mcpHTTP)
	r.Method(http.MethodDelete, "/mcp", mcpHTTP)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("server starting", "port", cfg.Port, "source", cfg.Source)
	logger.Info("endpoints available",
		"web", "http://localhost:"+cfg.Port,
		"api", "http://localhost:"+cfg.Port+"/api",
		"mcp", "http://localhost:"+cfg.Port+"/mcp",
	)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// staticHandler serves the embedded stylesheet and catalog images under
// /static/.
func staticHandler() (http.Handler, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub))), nil
}
