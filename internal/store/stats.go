package store

import (
	"context"
	"fmt"
)

// DifficultyStats aggregates the games played at one difficulty.
type DifficultyStats struct {
	Difficulty     string
	Games          int
	BestPercentage int
	AvgPercentage  float64
}

// Stats is the all-time history summary shown on the home screen and by
// the stats command.
type Stats struct {
	Games        int
	Questions    int
	Correct      int
	BestStreak   int
	ByDifficulty []DifficultyStats // ordered easy, medium, hard
}

func (r *gameRepo) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(score), 0), COALESCE(MAX(best_streak), 0)
		 FROM games`,
	).Scan(&stats.Games, &stats.Questions, &stats.Correct, &stats.BestStreak)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT difficulty, COUNT(*), MAX(percentage), AVG(percentage)
		 FROM games
		 GROUP BY difficulty
		 ORDER BY CASE difficulty WHEN 'easy' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END`,
	)
	if err != nil {
		return nil, fmt.Errorf("query per-difficulty: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d DifficultyStats
		if err := rows.Scan(&d.Difficulty, &d.Games, &d.BestPercentage, &d.AvgPercentage); err != nil {
			return nil, fmt.Errorf("scan per-difficulty: %w", err)
		}
		stats.ByDifficulty = append(stats.ByDifficulty, d)
	}
	return stats, rows.Err()
}
