package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

var (
	flagGames    int
	flagMaxSteps int
	flagStep     time.Duration
	flagTop      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless bot games and rank them",
	Long: `Play games without a terminal UI. A random bot presses one key per
step while simulated time advances, so gravity speeds up with the level
exactly as in interactive play.

Game i uses seed+i, so a run is reproducible with --seed.

Examples:
  blockfall simulate
  blockfall simulate --games 50 --top 5
  blockfall simulate --seed 42 --step 100ms --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 100000, "Step limit per game")
	simulateCmd.Flags().DurationVar(&flagStep, "step", 250*time.Millisecond, "Simulated time between bot inputs")
	simulateCmd.Flags().IntVar(&flagTop, "top", 10, "Number of games to list")
}

// botActions are the inputs the random bot chooses from.
var botActions = []core.Action{
	core.ActionMoveLeft,
	core.ActionMoveRight,
	core.ActionSoftDrop,
	core.ActionRotate,
	core.ActionHardDrop,
	core.ActionHold,
}

// simulation plays bot games against a ManualScheduler.
type simulation struct {
	maxSteps int
	step     time.Duration
	logger   *log.Logger
}

// play runs one game to game over or the step limit. It reports whether
// the game ended before the limit.
func (s simulation) play(seed int64) (storage.GameResult, bool) {
	sched := &tetris.ManualScheduler{}
	engine := tetris.New(sched, seed)
	bot := rand.New(rand.NewSource(seed))

	engine.Start()
	pieces := 0
	count := func() {
		for _, ev := range engine.Events() {
			switch ev.Kind {
			case tetris.EventLanded:
				pieces++
			case tetris.EventLevelUp:
				s.logger.Debug("level up", "seed", seed, "level", ev.Level)
			}
		}
	}

	for i := 0; i < s.maxSteps && engine.Phase() == tetris.PhaseRunning; i++ {
		engine.Apply(botActions[bot.Intn(len(botActions))])
		count()
		sched.Advance(s.step, engine.Tick)
		count()
	}

	finished := engine.Phase() == tetris.PhaseGameOver
	if !finished {
		s.logger.Warn("step limit reached", "seed", seed, "steps", s.maxSteps)
	}

	return storage.GameResult{
		Seed:   seed,
		Score:  engine.Score(),
		Lines:  engine.Lines(),
		Level:  engine.Level(),
		Pieces: pieces,
	}, finished
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg)

	if flagGames <= 0 || flagMaxSteps <= 0 || flagStep <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --games, --max-steps and --step must be positive")
		os.Exit(1)
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scoreboard: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sim := simulation{maxSteps: flagMaxSteps, step: flagStep, logger: logger}
	for i := range flagGames {
		result, finished := sim.play(baseSeed + int64(i))
		logger.Info("game finished",
			"over", finished,
			"seed", result.Seed,
			"score", result.Score,
			"lines", result.Lines,
			"level", result.Level,
			"pieces", result.Pieces,
		)
		if _, err := store.SaveGame(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	scores, err := store.TopScores(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Simulation - %d games from seed %d\n", stats.Games, baseSeed)
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Lines", "Level", "Pieces", "Seed")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-7d  %d\n", i+1, e.Score, e.Lines, e.Level, e.Pieces, e.Seed)
	}

	fmt.Println()
	fmt.Printf("Best: %d  Average: %.1f  Total lines: %d  Max level: %d\n",
		stats.HighScore, stats.AvgScore, stats.TotalLines, stats.MaxLevel)
}
