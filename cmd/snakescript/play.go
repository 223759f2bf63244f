package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snakescript/snakescript/internal/config"
	"github.com/snakescript/snakescript/internal/engine"
	"github.com/snakescript/snakescript/internal/game"
	"github.com/snakescript/snakescript/internal/platform/tui"
	"github.com/snakescript/snakescript/internal/script"
	"github.com/snakescript/snakescript/internal/storage"
)

var (
	flagPlayScript string
	flagPlayAgent  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Watch the simulation in the terminal",
	Long: `Run the simulation with a visible board.

The driving script comes from --script (a Lua file), --agent (a stored
agent name), or the built-in greedy agent when neither is given.

Controls:
  R          - Reset the simulation
  Q/Ctrl+C   - Quit

Examples:
  snakescript play
  snakescript play --script ./my_agent.lua
  snakescript play --agent greedy
  snakescript play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayScript, "script", "", "Path to a Lua script file")
	playCmd.Flags().StringVar(&flagPlayAgent, "agent", "", "Name of a stored agent")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - the simulation still works
		store = nil
	}

	name, source, err := resolveScript(store, flagPlayScript, flagPlayAgent)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The board needs the grid plus border and status lines.
	if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && h < cfg.Grid.Size+5 {
		fmt.Fprintf(os.Stderr, "Warning: terminal height %d is small for a %dx%d grid\n",
			h, cfg.Grid.Size, cfg.Grid.Size)
	}

	// Stderr writes would garble the altscreen; failures reach the player
	// through the on-screen error line instead.
	logger := log.New(io.Discard)
	eng, host := buildEngine(cfg, logger)
	defer host.Close()

	// A failed load stays on the error surface; the first tick's poll
	// puts it on screen, and the snake just keeps its heading.
	host.Load(source)

	runErr := tui.Run(eng, store, name)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}

// buildEngine assembles a game, interpreter host and engine from config.
func buildEngine(cfg config.Config, logger *log.Logger) (*engine.Engine, *script.Host) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	host := script.New(script.Options{
		Logger:       logger,
		ThinkTimeout: cfg.ThinkTimeout(),
	})

	eng := engine.New(engine.Options{
		Game: game.New(game.Config{
			GridSize:      cfg.Grid.Size,
			GameOverDelay: cfg.GameOverDelay(),
			Seed:          seed,
		}),
		Host:         host,
		TickInterval: cfg.TickInterval(),
		Logger:       logger,
	})

	return eng, host
}

// resolveScript picks the driving script from a file path, a stored agent
// name, or the built-in default, returning a display name and the source.
func resolveScript(store *storage.Store, scriptPath, agentName string) (string, string, error) {
	if scriptPath != "" && agentName != "" {
		return "", "", fmt.Errorf("--script and --agent are mutually exclusive")
	}

	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return "", "", fmt.Errorf("cannot read script: %w", err)
		}
		return filepath.Base(scriptPath), string(data), nil
	}

	if agentName != "" {
		if store == nil {
			return "", "", fmt.Errorf("database unavailable, cannot load agent %q", agentName)
		}
		agent, err := store.AgentByName(agentName)
		if err != nil {
			return "", "", fmt.Errorf("cannot load agent: %w", err)
		}
		if agent == nil {
			return "", "", fmt.Errorf("unknown agent %q, run 'snakescript agents list'", agentName)
		}
		return agent.Name, agent.Code, nil
	}

	return "default", script.DefaultSource, nil
}
