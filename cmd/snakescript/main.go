// snakescript is a script-driven snake simulation for the terminal.
//
// The snake is never steered by the keyboard: a Lua script with a
// think(state) function decides every move, and script failures are
// contained and surfaced without stopping the simulation.
//
// Usage:
//
//	snakescript play               - Watch the simulation in the terminal
//	snakescript sim                - Run a headless simulation
//	snakescript check <file>       - Validate a script file
//	snakescript agents             - Manage stored agent scripts
//	snakescript scores             - Show the leaderboard
//	snakescript serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a YAML config file
//	--db <path>      - Path to the agents/scores database
//	--seed <value>   - RNG seed for reproducible food placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snakescript/snakescript/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakescript",
	Short: "Script-driven snake simulation",
	Long: `snakescript runs a snake whose only brain is a Lua script.

The script defines think(state) and returns 'north', 'south', 'east'
or 'west' each tick. Broken scripts never stop the simulation: the
snake keeps its heading and the failure is shown on screen.

Available commands:
  play     - Watch the simulation in the terminal
  sim      - Run a headless simulation and print the outcome
  check    - Validate a script file without running it
  agents   - Manage stored agent scripts
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  snakescript play
  snakescript play --script ./my_agent.lua
  snakescript sim --ticks 2000 --agent greedy
  snakescript check ./my_agent.lua
  snakescript agents save greedy ./my_agent.lua
  snakescript serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to agents/scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration from the config file
// search path plus command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	return cfg, nil
}
