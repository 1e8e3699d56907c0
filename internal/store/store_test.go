package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func testGame(id string, difficulty string, score, total int, finished time.Time) GameRecord {
	return GameRecord{
		ID:         id,
		Difficulty: difficulty,
		Score:      score,
		Total:      total,
		Percentage: 100 * score / total,
		BestStreak: score,
		StartedAt:  finished.Add(-2 * time.Minute),
		FinishedAt: finished,
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestGameSaveAndRecent(t *testing.T) {
	repo := openTestStore(t).Games()
	ctx := context.Background()

	games, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, games, "fresh store has no games")

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		g := testGame(fmt.Sprintf("game-%d", i), "medium", i+5, 10, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Save(ctx, g, nil))
	}

	games, err = repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "game-4", games[0].ID, "newest first")
	assert.Equal(t, "game-2", games[2].ID)
	assert.Equal(t, base.Add(4*time.Hour), games[0].FinishedAt)
	assert.Equal(t, 90, games[0].Percentage)
}

func TestGameAnswersRoundTrip(t *testing.T) {
	repo := openTestStore(t).Games()
	ctx := context.Background()

	answers := []AnswerRecord{
		{Position: 1, Country: "France", Capital: "Paris", Mode: "guessCountry", Chosen: "France", Correct: "France", Hit: true, TimeLeft: 30},
		{Position: 2, Country: "Vietnam", Capital: "Hanoi", Mode: "guessCapital", Chosen: "Bangkok", Correct: "Hanoi", HintUsed: true, TimeLeft: 12},
		{Position: 3, Country: "Kenya", Capital: "Nairobi", Mode: "guessCountry", Correct: "Kenya", TimedOut: true},
	}
	g := testGame("game-1", "medium", 1, 3, time.Now().UTC())
	require.NoError(t, repo.Save(ctx, g, answers))

	got, err := repo.Answers(ctx, "game-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, answers, got)

	got, err = repo.Answers(ctx, "no-such-game")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGameSaveAtomic(t *testing.T) {
	repo := openTestStore(t).Games()
	ctx := context.Background()

	g := testGame("game-1", "easy", 2, 2, time.Now().UTC())
	dup := []AnswerRecord{
		{Position: 1, Country: "France", Capital: "Paris", Mode: "guessCountry", Correct: "France", Hit: true},
		{Position: 1, Country: "Spain", Capital: "Madrid", Mode: "guessCountry", Correct: "Spain", Hit: true},
	}
	require.Error(t, repo.Save(ctx, g, dup), "duplicate position must fail")

	games, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, games, "failed save leaves no partial game")
}

func TestStats(t *testing.T) {
	repo := openTestStore(t).Games()
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Games)
	assert.Empty(t, stats.ByDifficulty)

	now := time.Now().UTC()
	require.NoError(t, repo.Save(ctx, testGame("g1", "easy", 10, 10, now), nil))
	require.NoError(t, repo.Save(ctx, testGame("g2", "hard", 4, 10, now), nil))
	require.NoError(t, repo.Save(ctx, testGame("g3", "hard", 6, 10, now), nil))

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Games)
	assert.Equal(t, 30, stats.Questions)
	assert.Equal(t, 20, stats.Correct)
	assert.Equal(t, 10, stats.BestStreak)

	require.Len(t, stats.ByDifficulty, 2)
	assert.Equal(t, "easy", stats.ByDifficulty[0].Difficulty)
	assert.Equal(t, "hard", stats.ByDifficulty[1].Difficulty, "difficulty order easy before hard")
	hard := stats.ByDifficulty[1]
	assert.Equal(t, 2, hard.Games)
	assert.Equal(t, 60, hard.BestPercentage)
	assert.InDelta(t, 50.0, hard.AvgPercentage, 0.001)
}

func TestReset(t *testing.T) {
	repo := openTestStore(t).Games()
	ctx := context.Background()

	g := testGame("g1", "medium", 5, 10, time.Now().UTC())
	answers := []AnswerRecord{{Position: 1, Country: "France", Capital: "Paris", Mode: "guessCountry", Correct: "France", Hit: true}}
	require.NoError(t, repo.Save(ctx, g, answers))

	require.NoError(t, repo.Reset(ctx))

	games, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, games)
	got, err := repo.Answers(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
