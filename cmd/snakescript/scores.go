package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores across all agents.

Examples:
  snakescript scores
  snakescript scores --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snakescript play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Agent", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-20s  %-10d  %s\n",
			i+1, entry.Agent, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
