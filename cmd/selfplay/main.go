package main

import (
	"flag"
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"

	"qirkat/internal/config"
	"qirkat/internal/engine"
	"qirkat/internal/logx"
	"qirkat/internal/selfplay"
)

func newBar(n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

func main() {
	cfgPath := flag.String("config", "", "optional config file")
	totalGames := flag.Int("games", 0, "number of games to play (overrides SELFPLAY_GAMES)")
	maxPlies := flag.Int("maxplies", 0, "ply limit per game (overrides SELFPLAY_MAX_PLIES)")
	depthA := flag.Int("depth-a", 3, "player A search depth")
	depthB := flag.Int("depth-b", 1, "player B search depth")
	verify := flag.Bool("verify", false, "check every alpha-beta score against plain minimax")
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		logx.Must("info", false).Fatalw("failed to load config", "error", err)
	}
	if *totalGames > 0 {
		cfg.SelfplayGames = *totalGames
	}
	if *maxPlies > 0 {
		cfg.SelfplayMaxPlies = *maxPlies
	}

	logger := logx.Must(cfg.LogLevel, cfg.LogDev)
	defer func() { _ = logger.Sync() }()

	e := engine.NewEngine().WithLogger(logger.Named("engine"))
	playerA := selfplay.PlayerConfig{
		Name: fmt.Sprintf("Alpha-Beta (Depth %d)", *depthA),
		Cfg:  engine.SearchConfig{MaxDepth: *depthA},
	}
	playerB := selfplay.PlayerConfig{
		Name: fmt.Sprintf("Alpha-Beta (Depth %d)", *depthB),
		Cfg:  engine.SearchConfig{MaxDepth: *depthB},
	}

	var tally selfplay.Tally
	var plies int
	bar := newBar(cfg.SelfplayGames, "selfplay")
	for g := 0; g < cfg.SelfplayGames; g++ {
		white, black := playerA, playerB
		if g%2 == 1 {
			white, black = playerB, playerA
		}
		res, err := selfplay.PlayGame(e, white, black, selfplay.Options{
			MaxPlies: cfg.SelfplayMaxPlies,
			Verify:   *verify,
		}, logger.Named("game"))
		if err != nil {
			logger.Fatalw("game failed", "game", g+1, "error", err)
		}
		tally.Add(g, res.Winner)
		plies += res.Plies
		logger.Debugw("game finished", "game", g+1, "white", white.Name, "black", black.Name,
			"winner", res.Winner, "plies", res.Plies, "nodes", res.Nodes)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Println()
	fmt.Printf("A = %s, B = %s\n", playerA.Name, playerB.Name)
	fmt.Printf("A wins: %d  B wins: %d  draws: %d  (%d games, %d plies)\n",
		tally.AWins, tally.BWins, tally.Draws, cfg.SelfplayGames, plies)
}
