package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgballs/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show stored results",
	Long: `Shows the best result of every won level and the most recent attempts.
With a level number, shows that level's statistics and attempts only.

Examples:
  rgballs scores
  rgballs scores 2 --limit 50
  rgballs scores --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent attempts to show")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all progress and attempts")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.Reset(); err != nil {
			return err
		}
		fmt.Println("Progress deleted.")
		return nil
	}

	if len(args) == 1 {
		loader, err := openLevels(cfg)
		if err != nil {
			return err
		}
		index, err := levelArg(args[0], loader)
		if err != nil {
			return err
		}
		return printLevelScores(store, index)
	}

	results, err := store.Results()
	if err != nil {
		return err
	}
	fmt.Println("Best results:")
	fmt.Println()
	if len(results) == 0 {
		fmt.Println("  No level completed yet.")
	} else {
		fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "Level", "Stars", "Steps", "Date")
		fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "-----", "-----", "-----", "----")
		for _, r := range results {
			fmt.Printf("  %-6d  %-6s  %-6d  %s\n",
				r.Level+1, r.Stars, r.Steps, r.UpdatedAt.Format("2006-01-02 15:04"))
		}
	}

	attempts, err := store.RecentAttempts(flagScoresLimit)
	if err != nil {
		return err
	}
	printAttempts(attempts)
	return nil
}

func printLevelScores(store *storage.Store, index int) error {
	stats, err := store.Stats(index)
	if err != nil {
		return err
	}
	best, err := store.Result(index)
	if err != nil {
		return err
	}

	fmt.Printf("Level %d\n\n", index+1)
	if best != nil {
		fmt.Printf("  Best:     %s in %d steps\n", best.Stars, best.Steps)
	} else {
		fmt.Println("  Best:     not completed")
	}
	fmt.Printf("  Attempts: %d (%d won, %d lost, %d restarted)\n",
		stats.Attempts, stats.Wins, stats.Losses, stats.Retries)
	if stats.BestRun > 0 {
		fmt.Printf("  Fewest steps in a win: %d\n", stats.BestRun)
	}

	// The log is shared by all levels; widen the window before filtering.
	attempts, err := store.RecentAttempts(flagScoresLimit * 10)
	if err != nil {
		return err
	}
	var mine []storage.Attempt
	for _, a := range attempts {
		if a.Level == index && len(mine) < flagScoresLimit {
			mine = append(mine, a)
		}
	}
	printAttempts(mine)
	return nil
}

func printAttempts(attempts []storage.Attempt) {
	fmt.Println()
	fmt.Println("Recent attempts:")
	fmt.Println()
	if len(attempts) == 0 {
		fmt.Println("  None recorded.")
		return
	}
	fmt.Printf("  %-6s  %-16s  %-6s  %-6s  %-16s  %s\n", "Level", "Outcome", "Stars", "Steps", "Date", "Run")
	for _, a := range attempts {
		fmt.Printf("  %-6d  %-16s  %-6s  %-6d  %-16s  %s\n",
			a.Level+1, a.Outcome, a.Stars, a.Steps, a.CreatedAt.Format("2006-01-02 15:04"), a.RunID)
	}
}
