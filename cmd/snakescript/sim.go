package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/snakescript/snakescript/internal/storage"
)

var (
	flagSimTicks  int
	flagSimScript string
	flagSimAgent  string
	flagSimErrors bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a display and print the outcome.

Ticks advance on a synthetic clock at the configured interval, so a
2000-tick run finishes in well under a second regardless of timing
settings. Terminal states consume the configured delay in synthetic
time and then reset, exactly as in the visible simulation.

Examples:
  snakescript sim --ticks 2000
  snakescript sim --agent greedy --seed 42
  snakescript sim --script ./my_agent.lua --errors`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Path to a Lua script file")
	simCmd.Flags().StringVar(&flagSimAgent, "agent", "", "Name of a stored agent")
	simCmd.Flags().BoolVar(&flagSimErrors, "errors", false, "Print script failures as they happen")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimAgent != "" {
		store, err = storage.Open(cfg.Storage.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	name, source, err := resolveScript(store, flagSimScript, flagSimAgent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stderr)
	eng, host := buildEngine(cfg, logger)
	defer host.Close()

	if !host.Load(source) {
		msg, _ := eng.TakeLastScriptError()
		fmt.Fprintf(os.Stderr, "Error: script rejected: %s\n", msg)
		os.Exit(1)
	}

	interval := cfg.TickInterval()
	base := time.Now()
	var (
		bestScore   int
		gamesEnded  int
		scriptFails int
		wasOver     bool
	)

	for i := 0; i < flagSimTicks; i++ {
		eng.Tick(base.Add(time.Duration(i) * interval))

		if msg, ok := eng.TakeLastScriptError(); ok {
			scriptFails++
			if flagSimErrors {
				fmt.Fprintf(os.Stderr, "tick %d: %s\n", i, msg)
			}
		}

		snap := eng.Snapshot()
		if snap.Score > bestScore {
			bestScore = snap.Score
		}
		if snap.GameOver && !wasOver {
			gamesEnded++
		}
		wasOver = snap.GameOver
	}

	snap := eng.Snapshot()

	fmt.Printf("Agent:         %s\n", name)
	fmt.Printf("Ticks:         %d\n", flagSimTicks)
	fmt.Printf("Best score:    %d\n", bestScore)
	fmt.Printf("Games ended:   %d\n", gamesEnded)
	fmt.Printf("Script errors: %d\n", scriptFails)
	switch {
	case snap.Won:
		fmt.Println("Outcome:       won (grid filled)")
	case snap.GameOver:
		fmt.Println("Outcome:       game over")
	default:
		fmt.Printf("Outcome:       still running (score %d)\n", snap.Score)
	}
}
