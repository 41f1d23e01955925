package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qirkat/internal/config"
	"qirkat/internal/engine"
	"qirkat/internal/logx"
	"qirkat/internal/server/game"
	httpserver "qirkat/internal/server/http"
)

func main() {
	cfgPath := flag.String("config", "", "optional config file (.env / yaml / json)")
	addr := flag.String("addr", "", "listen address (overrides SERVER_ADDR)")
	depth := flag.Int("depth", 0, "search depth (overrides SEARCH_DEPTH)")
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		logx.Must("info", false).Fatalw("failed to load config", "error", err)
	}
	if *addr != "" {
		cfg.ServerAddr = *addr
	}
	if *depth > 0 {
		cfg.SearchDepth = *depth
	}

	logger := logx.Must(cfg.LogLevel, cfg.LogDev)
	defer func() { _ = logger.Sync() }()

	eng := engine.NewEngine().
		WithConfig(engine.SearchConfig{MaxDepth: cfg.SearchDepth}).
		WithLogger(logger.Named("engine"))
	games := game.NewManager(eng, logger.Named("game"))
	h := httpserver.NewHandler(games, logger.Named("http"))

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           httpserver.NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("listening on %s (search depth %d)", cfg.ServerAddr, cfg.SearchDepth)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("server failed", "error", err)
	}
	logger.Info("server stopped")
}
