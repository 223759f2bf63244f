package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/snakescript/snakescript/internal/script"
	"github.com/snakescript/snakescript/internal/storage"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Manage stored agent scripts",
	Long: `Store, inspect and remove named agent scripts.

Saved agents can drive the simulation via 'snakescript play --agent'
and appear in the SSH server's picker.

Examples:
  snakescript agents list
  snakescript agents save greedy ./my_agent.lua
  snakescript agents show greedy
  snakescript agents delete greedy`,
}

var agentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored agents",
	Run:   runAgentsList,
}

var agentsSaveCmd = &cobra.Command{
	Use:   "save <name> <file>",
	Short: "Save or update an agent from a script file",
	Args:  cobra.ExactArgs(2),
	Run:   runAgentsSave,
}

var agentsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print an agent's script",
	Args:  cobra.ExactArgs(1),
	Run:   runAgentsShow,
}

var agentsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored agent",
	Args:  cobra.ExactArgs(1),
	Run:   runAgentsDelete,
}

func init() {
	agentsCmd.AddCommand(agentsListCmd)
	agentsCmd.AddCommand(agentsSaveCmd)
	agentsCmd.AddCommand(agentsShowCmd)
	agentsCmd.AddCommand(agentsDeleteCmd)
}

// openStore opens the configured database or exits.
func openStore() *storage.Store {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runAgentsList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	agents, err := store.ListAgents()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing agents: %v\n", err)
		os.Exit(1)
	}

	if len(agents) == 0 {
		fmt.Println("No agents stored yet.")
		fmt.Println("Save one with 'snakescript agents save <name> <file>'.")
		return
	}

	fmt.Printf("  %-20s  %-10s  %s\n", "Name", "Size", "Updated")
	fmt.Printf("  %-20s  %-10s  %s\n", "----", "----", "-------")
	for _, a := range agents {
		fmt.Printf("  %-20s  %-10d  %s\n", a.Name, len(a.Code), a.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runAgentsSave(_ *cobra.Command, args []string) {
	name := args[0]

	if err := storage.ValidateAgentName(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid name: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read script: %v\n", err)
		os.Exit(1)
	}
	code := string(data)

	if err := storage.ValidateAgentCode(code); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid code: %v\n", err)
		os.Exit(1)
	}
	if err := script.CheckSource(code); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Reject scripts without a think entry point at save time.
	host := script.New(script.Options{Logger: log.New(io.Discard)})
	ok := host.Load(code)
	if !ok {
		msg, _ := host.Errors().Take()
		host.Close()
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		os.Exit(1)
	}
	host.Close()

	store := openStore()
	defer store.Close()

	agent, err := store.SaveAgent(name, code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving agent: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved agent %q (%d bytes)\n", agent.Name, len(agent.Code))
}

func runAgentsShow(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	agent, err := store.AgentByName(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if agent == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown agent %q\n", args[0])
		os.Exit(1)
	}

	fmt.Print(agent.Code)
	if len(agent.Code) > 0 && agent.Code[len(agent.Code)-1] != '\n' {
		fmt.Println()
	}
}

func runAgentsDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	deleted, err := store.DeleteAgent(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting agent: %v\n", err)
		os.Exit(1)
	}
	if !deleted {
		fmt.Fprintf(os.Stderr, "Error: unknown agent %q\n", args[0])
		os.Exit(1)
	}

	fmt.Printf("Deleted agent %q\n", args[0])
}
