package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/snakescript/snakescript/internal/script"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a script file",
	Long: `Compile a Lua script and verify it defines think(state).

The script is never executed against a live game; its top level runs
once in a throwaway interpreter to confirm the entry point exists.

Examples:
  snakescript check ./my_agent.lua`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read script: %v\n", err)
		os.Exit(1)
	}
	source := string(data)

	if err := script.CheckSource(source); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	host := script.New(script.Options{Logger: log.New(io.Discard)})
	defer host.Close()

	if !host.Load(source) {
		msg, _ := host.Errors().Take()
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		os.Exit(1)
	}

	fmt.Printf("%s: ok\n", args[0])
}
