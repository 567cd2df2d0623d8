package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenascope/arenascope/pkg/domain"
)

func TestMatchOperations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("create defaults to open", func(t *testing.T) {
		match := &domain.Match{Game: "valorant", HomeTeam: "Alpha", AwayTeam: "Beta"}
		require.NoError(t, db.CreateMatch(ctx, match))
		assert.NotEmpty(t, match.ID)

		retrieved, err := db.GetMatch(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.MatchOpen, retrieved.Status)
	})

	t.Run("status transitions", func(t *testing.T) {
		match := &domain.Match{Game: "valorant", Status: domain.MatchScheduled}
		require.NoError(t, db.CreateMatch(ctx, match))

		require.NoError(t, db.UpdateMatchStatus(ctx, match.ID, domain.MatchInProgress))
		retrieved, err := db.GetMatch(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.MatchInProgress, retrieved.Status)
		assert.True(t, retrieved.Live())

		err = db.UpdateMatchStatus(ctx, "no-such-id", domain.MatchCompleted)
		require.Error(t, err)
	})

	t.Run("score updates replace wholesale", func(t *testing.T) {
		match := &domain.Match{Game: "rocket-league", Status: domain.MatchInProgress}
		require.NoError(t, db.CreateMatch(ctx, match))

		require.NoError(t, db.UpdateMatchScore(ctx, match.ID, 3, 1))
		retrieved, err := db.GetMatch(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, retrieved.HomeScore)
		assert.Equal(t, 1, retrieved.AwayScore)
	})
}

func TestMatchFeedQueries(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()
	soon := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	seed := []*domain.Match{
		{ID: "live-1", Status: domain.MatchInProgress},
		{ID: "featured-1", Status: domain.MatchScheduled, IsFeatured: true, ScheduledAt: &soon},
		{ID: "featured-done", Status: domain.MatchCompleted, IsFeatured: true},
		{ID: "upcoming-1", Status: domain.MatchOpen},
		{ID: "upcoming-2", Status: domain.MatchScheduled, ScheduledAt: &soon},
		{ID: "due-1", Status: domain.MatchScheduled, ScheduledAt: &past},
		{ID: "done-1", Status: domain.MatchCompleted},
	}
	for _, m := range seed {
		require.NoError(t, db.CreateMatch(ctx, m))
	}

	t.Run("prominent matches are live plus unfinished featured", func(t *testing.T) {
		matches, err := db.GetProminentMatches(ctx, 0)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "live-1", matches[0].ID, "live entries sort first")
		assert.Equal(t, "featured-1", matches[1].ID)
	})

	t.Run("upcoming matches ordered by start time", func(t *testing.T) {
		matches, err := db.GetUpcomingMatches(ctx, 0)
		require.NoError(t, err)
		require.Len(t, matches, 4)
		assert.Equal(t, "due-1", matches[0].ID)
	})

	t.Run("due to start", func(t *testing.T) {
		matches, err := db.GetMatchesDueToStart(ctx, now)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "due-1", matches[0].ID)
	})

	t.Run("list by status", func(t *testing.T) {
		matches, err := db.GetMatches(ctx, []domain.MatchStatus{domain.MatchCompleted}, 0)
		require.NoError(t, err)
		assert.Len(t, matches, 2)

		all, err := db.GetMatches(ctx, nil, 0)
		require.NoError(t, err)
		assert.Len(t, all, len(seed))
	})
}
