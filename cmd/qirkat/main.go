package main

import (
	"flag"
	"os"

	"qirkat/internal/config"
	"qirkat/internal/engine"
	"qirkat/internal/logx"
	"qirkat/internal/session"
)

func main() {
	cfgPath := flag.String("config", "", "optional config file")
	white := flag.String("white", "", "white player: manual or auto (overrides WHITE_PLAYER)")
	black := flag.String("black", "", "black player: manual or auto (overrides BLACK_PLAYER)")
	depth := flag.Int("depth", 0, "search depth (overrides SEARCH_DEPTH)")
	color := flag.Bool("color", true, "colour pieces in dump output")
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		logx.Must("info", false).Fatalw("failed to load config", "error", err)
	}
	if *white != "" {
		cfg.WhitePlayer = *white
	}
	if *black != "" {
		cfg.BlackPlayer = *black
	}
	if *depth > 0 {
		cfg.SearchDepth = *depth
	}

	logger := logx.Must(cfg.LogLevel, cfg.LogDev)
	defer func() { _ = logger.Sync() }()
	if err := cfg.Validate(); err != nil {
		logger.Fatalw("bad configuration", "error", err)
	}

	eng := engine.NewEngine().
		WithConfig(engine.SearchConfig{MaxDepth: cfg.SearchDepth}).
		WithLogger(logger.Named("engine"))

	s := session.New(os.Stdin, os.Stdout, eng, session.Options{
		White: cfg.WhitePlayer,
		Black: cfg.BlackPlayer,
		Color: *color,
	}, logger.Named("session"))

	if err := s.Run(); err != nil {
		logger.Fatalw("input error", "error", err)
	}
}
