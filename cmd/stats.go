package cmd

import (
	"fmt"

	"github.com/abhisek/backroads/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show trip statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.Games().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		if stats.Games == 0 {
			fmt.Println("No trips on record yet.")
			return nil
		}

		fmt.Printf("Trips:        %d\n", stats.Games)
		fmt.Printf("Questions:    %d\n", stats.Questions)
		fmt.Printf("Correct:      %d\n", stats.Correct)
		fmt.Printf("Best streak:  %d\n", stats.BestStreak)
		fmt.Println()
		for _, d := range stats.ByDifficulty {
			fmt.Printf("%-8s %3d trips   best %3d%%   avg %5.1f%%\n",
				d.Difficulty, d.Games, d.BestPercentage, d.AvgPercentage)
		}
		return nil
	},
}
