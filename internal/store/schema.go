package store

import "database/sql"

// initSchema creates the tables and indexes if they don't exist. The
// schema is append-only in practice; reset drops rows, not tables.
func initSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			percentage INTEGER NOT NULL,
			best_streak INTEGER NOT NULL,
			started_at_unix INTEGER NOT NULL,
			finished_at_unix INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS answers (
			game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			country TEXT NOT NULL,
			capital TEXT NOT NULL,
			mode TEXT NOT NULL,
			chosen TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			correct INTEGER NOT NULL,
			timed_out INTEGER NOT NULL,
			hint_used INTEGER NOT NULL,
			time_left INTEGER NOT NULL,
			PRIMARY KEY (game_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_finished_at ON games(finished_at_unix DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_games_difficulty ON games(difficulty);`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
