package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/backroads/internal/app"
	"github.com/abhisek/backroads/internal/quiz"
	"github.com/abhisek/backroads/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the history store and launches the TUI. A broken store
// is downgraded to a warning; the game itself needs no database.
func runApp(cmd *cobra.Command, startDifficulty quiz.Difficulty) error {
	opts := app.Options{StartDifficulty: startDifficulty}

	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		var st *store.Store
		st, err = store.Open(dbPath)
		if err == nil {
			defer st.Close()
			opts.Games = st.Games()
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "History unavailable:", err)
		fmt.Fprintln(os.Stderr, "Trips will not be recorded.")
	}

	return app.Run(opts)
}
