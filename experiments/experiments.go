package experiments

import (
	"fmt"
	"ggp/engine"
	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/searcher"
	"ggp/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
)

// Experiment plays NumGames matches for every match-up and records the results.
type Experiment struct {
	Name         string
	OutputDir    string
	Rules        game.Rules
	Configs      []metrics.AgentConfig
	MatchUps     [][]metrics.AgentConfig // One config per role
	NumGames     int                     // Per match-up
	Goroutines   int                     // Matches played concurrently
	SafetyMargin time.Duration
	Seed         uint64
}

// StrategyMatchUps pits both tree-building strategies against a random baseline and each other.
func StrategyMatchUps(clock time.Duration, maxDepth int) ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom}
	breadthFirst := metrics.AgentConfig{ID: 1, Kind: KindMinimax, Strategy: string(searcher.BreadthFirst), Clock: clock}
	fixedDepth := metrics.AgentConfig{ID: 2, Kind: KindMinimax, Strategy: string(searcher.FixedDepth), MaxDepth: maxDepth, Clock: clock}

	configs := []metrics.AgentConfig{baseline, breadthFirst, fixedDepth}
	matchUps := [][]metrics.AgentConfig{
		{breadthFirst, baseline},
		{baseline, breadthFirst},
		{fixedDepth, baseline},
		{baseline, fixedDepth},
		{breadthFirst, fixedDepth},
		{fixedDepth, breadthFirst},
	}
	return configs, matchUps
}

type result struct {
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

// Run plays every match and writes agent configs, game records and move records below
// OutputDir. It returns the directory holding the records.
func (x *Experiment) Run() (string, error) {
	roles := x.Rules.Roles()
	for _, matchUp := range x.MatchUps {
		if len(matchUp) != len(roles) {
			return "", fmt.Errorf("match-up %v does not have one agent per role %v", matchUp, roles)
		}
	}

	log.Info().Msgf("starting %s experiment...", x.Name)

	total := len(x.MatchUps) * x.NumGames
	results := make([]result, total)

	g := errgroup.Group{}
	if x.Goroutines > 0 {
		g.SetLimit(x.Goroutines)
	}
	for i := 0; i < total; i++ {
		matchUp := x.MatchUps[i/x.NumGames]
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d...", i+1, total)
			gameMetric, moveMetrics, err := x.runGame(matchUp, x.Seed+uint64(i))
			if err != nil {
				return fmt.Errorf("game %d failed: %w", i+1, err)
			}
			results[i] = result{gameMetric: gameMetric, moveMetrics: moveMetrics}
			log.Info().Msgf("completed game %d of %d with winner: %q", i+1, total, gameMetric.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	gameRecords := make([]metrics.GameRecord, 0, total)
	moveRecords := []metrics.MoveRecord{}
	for i, r := range results {
		matchUp := x.MatchUps[i/x.NumGames]
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     matchUp[0].ID,
			Agent2:     matchUp[len(matchUp)-1].ID,
			GameMetric: r.gameMetric,
		})
		for _, mm := range r.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}
	}

	writer, err := metrics.NewWriter(x.OutputDir, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single match between the agents of matchUp
func (x *Experiment) runGame(matchUp []metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := make([]agent.Agent, len(matchUp))
	var clock time.Duration
	for i, config := range matchUp {
		a, err := NewAgent(config, x.Rules, x.SafetyMargin, seed+uint64(i))
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
		agents[i] = a
		if config.Clock > clock {
			clock = config.Clock
		}
	}

	e := engine.LocalEngine(x.Rules, agents, clock)
	return e.Run()
}

// NewAgent creates the agent described by config.
func NewAgent(config metrics.AgentConfig, rules game.StateMachine, margin time.Duration, seed uint64) (agent.Agent, error) {
	switch config.Kind {
	case KindRandom:
		return agent.NewRandomAgent(rules, seed), nil
	case KindMinimax:
		strategy, err := searcher.ParseStrategy(config.Strategy)
		if err != nil {
			return nil, err
		}
		minimax := searcher.NewMinimax(rules,
			searcher.WithStrategy(strategy),
			searcher.WithMaxDepth(config.MaxDepth),
			searcher.WithSafetyMargin(margin),
			searcher.WithMetrics(),
		)
		return agent.NewMinimaxAgent(minimax), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}
