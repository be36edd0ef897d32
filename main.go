package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/danielhkuo/bayroumeter/cliparse"
	"github.com/danielhkuo/bayroumeter/db"
	"github.com/danielhkuo/bayroumeter/metrics"
	"github.com/danielhkuo/bayroumeter/middleware"
	"github.com/danielhkuo/bayroumeter/router"
)

func main() {
	// .env is optional
	if err := cliparse.LoadEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Connect to the store and create tables/indexes
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	repo, err := db.Open(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("database setup failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer repo.Close()
	slog.Info("Database ready", "type", cfg.DatabaseType)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Create router
	mux := router.NewRouter(repo, m)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("Failed to listen", "error", err, "addr", server.Addr)
		return
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	if err := serve(&server, ln, ctrlc, 10*time.Second); err != nil {
		slog.Error("Server closed", "error", err)
		return
	}
	slog.Info("Server closed")
}

// serve runs server on ln until a signal arrives on stop, then shuts it
// down. It returns only after in-flight requests have finished or grace
// has elapsed.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, grace time.Duration) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Wait for Ctrl-C signal
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	err := server.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Serve returns as soon as Shutdown starts
	<-done
	return nil
}
