package main

import (
	"flag"
	"fmt"
	"ggp/config"
	"ggp/experiments"
	"ggp/game"
	"ggp/game/table"
	"ggp/game/tictactoe"
	"ggp/searcher"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	gamePath := flag.String("game", "", "Path to a YAML table game (analyze)")
	role := flag.String("role", "", "Role to pick a move for (analyze), defaults to the first role")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] match|analyze\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	switch flag.Arg(0) {
	case "match":
		err = runMatches(cfg)
	case "analyze":
		err = analyze(cfg, *gamePath, game.Role(*role))
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func setupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// runMatches plays tic-tac-toe match-ups between the tree-building strategies and a random agent.
func runMatches(cfg *config.Config) error {
	configs, matchUps := experiments.StrategyMatchUps(cfg.MoveClock, cfg.MaxDepth)
	x := &experiments.Experiment{
		Name:         "strategies",
		OutputDir:    cfg.OutputDir,
		Rules:        tictactoe.NewRules(),
		Configs:      configs,
		MatchUps:     matchUps,
		NumGames:     cfg.Games,
		Goroutines:   cfg.Goroutines,
		SafetyMargin: cfg.SafetyMargin,
		Seed:         cfg.Seed,
	}
	_, err := x.Run()
	return err
}

// analyze picks a move in the initial state of a table game and prints the scored tree.
func analyze(cfg *config.Config, path string, role game.Role) error {
	if path == "" {
		return fmt.Errorf("analyze needs -game")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	machine, err := table.Parse(f)
	if err != nil {
		return err
	}
	if role == "" {
		role = machine.Roles()[0]
	}

	strategy, err := searcher.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	minimax := searcher.NewMinimax(machine,
		searcher.WithStrategy(strategy),
		searcher.WithMaxDepth(cfg.MaxDepth),
		searcher.WithSafetyMargin(cfg.SafetyMargin),
		searcher.WithObserver(func(event searcher.SelectedMoveEvent) {
			log.Info().Dur("elapsed", event.Elapsed).Msgf("selected %v out of %v", event.Move, event.Moves)
		}),
	)

	var deadline time.Time
	if cfg.MoveClock > 0 {
		deadline = time.Now().Add(cfg.MoveClock)
	}
	move, err := minimax.SelectMove(machine.InitialState(), role, deadline)
	if err != nil {
		return err
	}

	// Rebuild with a fresh clock for display
	if cfg.MoveClock > 0 {
		deadline = time.Now().Add(cfg.MoveClock)
	}
	root, err := minimax.BuildTree(machine.InitialState(), role, deadline)
	if err != nil {
		return err
	}
	searcher.Evaluate(root)
	if err := root.Print(os.Stdout); err != nil {
		return err
	}
	fmt.Printf("best move for %s: %v\n", role, move)
	return nil
}
