package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// GameRecord is one finished playthrough.
type GameRecord struct {
	ID         string
	Difficulty string
	Score      int
	Total      int
	Percentage int
	BestStreak int
	StartedAt  time.Time
	FinishedAt time.Time
}

// AnswerRecord is one question outcome within a game. Chosen is empty
// when the question timed out.
type AnswerRecord struct {
	Position int
	Country  string
	Capital  string
	Mode     string
	Chosen   string
	Correct  string
	Hit      bool
	TimedOut bool
	HintUsed bool
	TimeLeft int
}

// GameRepo manages finished-game history.
type GameRepo interface {
	// Save stores a game and its per-question answers atomically.
	Save(ctx context.Context, game GameRecord, answers []AnswerRecord) error

	// Recent returns the most recently finished games, newest first.
	Recent(ctx context.Context, limit int) ([]GameRecord, error)

	// Answers returns a game's answers in question order.
	Answers(ctx context.Context, gameID string) ([]AnswerRecord, error)

	// Stats aggregates history across all games.
	Stats(ctx context.Context) (*Stats, error)

	// Reset deletes all history.
	Reset(ctx context.Context) error
}

// gameRepo implements GameRepo on the raw SQLite handle.
type gameRepo struct {
	db *sql.DB
}

func (r *gameRepo) Save(ctx context.Context, game GameRecord, answers []AnswerRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO games (id, difficulty, score, total, percentage, best_streak, started_at_unix, finished_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		game.ID, game.Difficulty, game.Score, game.Total, game.Percentage,
		game.BestStreak, game.StartedAt.Unix(), game.FinishedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	for _, a := range answers {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO answers (game_id, position, country, capital, mode, chosen, correct_answer, correct, timed_out, hint_used, time_left)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			game.ID, a.Position, a.Country, a.Capital, a.Mode, a.Chosen,
			a.Correct, a.Hit, a.TimedOut, a.HintUsed, a.TimeLeft,
		)
		if err != nil {
			return fmt.Errorf("insert answer %d: %w", a.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *gameRepo) Recent(ctx context.Context, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, difficulty, score, total, percentage, best_streak, started_at_unix, finished_at_unix
		 FROM games
		 ORDER BY finished_at_unix DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent games: %w", err)
	}
	defer rows.Close()

	games := make([]GameRecord, 0, limit)
	for rows.Next() {
		var (
			g                 GameRecord
			started, finished int64
		)
		if err := rows.Scan(&g.ID, &g.Difficulty, &g.Score, &g.Total, &g.Percentage, &g.BestStreak, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		g.StartedAt = time.Unix(started, 0).UTC()
		g.FinishedAt = time.Unix(finished, 0).UTC()
		games = append(games, g)
	}
	return games, rows.Err()
}

func (r *gameRepo) Answers(ctx context.Context, gameID string) ([]AnswerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT position, country, capital, mode, chosen, correct_answer, correct, timed_out, hint_used, time_left
		 FROM answers
		 WHERE game_id = ?
		 ORDER BY position ASC`, gameID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var answers []AnswerRecord
	for rows.Next() {
		var a AnswerRecord
		if err := rows.Scan(&a.Position, &a.Country, &a.Capital, &a.Mode, &a.Chosen, &a.Correct, &a.Hit, &a.TimedOut, &a.HintUsed, &a.TimeLeft); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (r *gameRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	// Answers first: cascade covers it, but explicit deletes keep the
	// reset correct even with foreign_keys off.
	if _, err := tx.ExecContext(ctx, `DELETE FROM answers`); err != nil {
		return fmt.Errorf("delete answers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return fmt.Errorf("delete games: %w", err)
	}
	return tx.Commit()
}
