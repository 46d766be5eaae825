package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <scene>",
	Short: "Show high scores for a scene",
	Long: `Display the top 10 high scores for the specified scene.

Examples:
  arcade scores asteroids`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	sceneID := args[0]
	if err := requireScene(sceneID); err != nil {
		return err
	}

	s, err := registry.Create(sceneID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(sceneID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", s.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", sceneID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-10d  %s\n", i+1, player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(sceneID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
	return nil
}
