package cmd

import (
	"fmt"

	"github.com/abhisek/backroads/internal/quiz"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:       "play [easy|medium|hard]",
	Short:     "Start a run directly, skipping the menu",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"easy", "medium", "hard"},
	RunE: func(cmd *cobra.Command, args []string) error {
		d := quiz.Medium
		if len(args) == 1 {
			d = quiz.Difficulty(args[0])
			if !d.Valid() {
				return fmt.Errorf("unknown difficulty %q (want easy, medium, or hard)", args[0])
			}
		}
		return runApp(cmd, d)
	},
}
