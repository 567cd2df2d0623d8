package scheduler

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenascope/arenascope/pkg/domain"
	"github.com/arenascope/arenascope/pkg/scheduler/mocks"
)

func TestNewScheduler(t *testing.T) {
	database := &mocks.DatabaseMock{}

	s := NewScheduler(database, nil, Config{
		MatchInterval: 30 * time.Second,
		AdInterval:    2 * time.Minute,
		MaxWorkers:    3,
	})

	assert.NotNil(t, s)
	assert.Equal(t, 30*time.Second, s.matchInterval)
	assert.Equal(t, 2*time.Minute, s.adInterval)
	assert.Equal(t, 3, s.maxWorkers)
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(&mocks.DatabaseMock{}, nil, Config{})

	assert.Equal(t, time.Minute, s.matchInterval)
	assert.Equal(t, 5*time.Minute, s.adInterval)
	assert.Equal(t, 5, s.maxWorkers)
}

func TestScheduler_StartDueMatches(t *testing.T) {
	due := []domain.Match{
		{ID: "m1", Status: domain.MatchScheduled, HomeTeam: "alpha", AwayTeam: "beta"},
		{ID: "m2", Status: domain.MatchScheduled, HomeTeam: "gamma", AwayTeam: "delta"},
	}
	database := &mocks.DatabaseMock{
		GetMatchesDueToStartFunc: func(ctx context.Context, now time.Time) ([]domain.Match, error) {
			return due, nil
		},
		UpdateMatchStatusFunc: func(ctx context.Context, id string, status domain.MatchStatus) error {
			return nil
		},
	}
	notifier := &mocks.NotifierMock{MatchUpdatedFunc: func(match *domain.Match) {}}

	s := NewScheduler(database, notifier, Config{MaxWorkers: 2})
	s.startDueMatches(context.Background())

	updates := database.UpdateMatchStatusCalls()
	require.Len(t, updates, 2)
	ids := []string{updates[0].ID, updates[1].ID}
	sort.Strings(ids) // workers run concurrently
	assert.Equal(t, []string{"m1", "m2"}, ids)
	for _, u := range updates {
		assert.Equal(t, domain.MatchInProgress, u.Status)
	}

	notified := notifier.MatchUpdatedCalls()
	require.Len(t, notified, 2)
	for _, n := range notified {
		assert.Equal(t, domain.MatchInProgress, n.Match.Status)
	}
}

func TestScheduler_StartDueMatches_NoneDue(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetMatchesDueToStartFunc: func(ctx context.Context, now time.Time) ([]domain.Match, error) {
			return nil, nil
		},
	}

	s := NewScheduler(database, nil, Config{})
	s.startDueMatches(context.Background())

	assert.Empty(t, database.UpdateMatchStatusCalls())
}

func TestScheduler_StartDueMatches_UpdateFails(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetMatchesDueToStartFunc: func(ctx context.Context, now time.Time) ([]domain.Match, error) {
			return []domain.Match{{ID: "m1", Status: domain.MatchScheduled}}, nil
		},
		UpdateMatchStatusFunc: func(ctx context.Context, id string, status domain.MatchStatus) error {
			return errors.New("locked")
		},
	}
	notifier := &mocks.NotifierMock{MatchUpdatedFunc: func(match *domain.Match) {}}

	s := NewScheduler(database, notifier, Config{})
	s.startDueMatches(context.Background())

	assert.Empty(t, notifier.MatchUpdatedCalls(), "no notification when the status flip fails")
}

func TestScheduler_RollAdWindows(t *testing.T) {
	database := &mocks.DatabaseMock{
		DeactivateExpiredAdsFunc: func(ctx context.Context, now time.Time) (int64, error) {
			return 2, nil
		},
		ActivateDueAdsFunc: func(ctx context.Context, now time.Time) (int64, error) {
			return 1, nil
		},
	}

	s := NewScheduler(database, nil, Config{})
	s.rollAdWindows(context.Background())

	require.Len(t, database.DeactivateExpiredAdsCalls(), 1)
	require.Len(t, database.ActivateDueAdsCalls(), 1)
}

func TestScheduler_RollAdWindows_DeactivationFails(t *testing.T) {
	database := &mocks.DatabaseMock{
		DeactivateExpiredAdsFunc: func(ctx context.Context, now time.Time) (int64, error) {
			return 0, errors.New("locked")
		},
		ActivateDueAdsFunc: func(ctx context.Context, now time.Time) (int64, error) {
			return 0, nil
		},
	}

	s := NewScheduler(database, nil, Config{})
	s.rollAdWindows(context.Background())

	assert.Empty(t, database.ActivateDueAdsCalls(), "activation skipped after deactivation failure")
}

func TestScheduler_StartMatchNow(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetMatchFunc: func(ctx context.Context, id string) (*domain.Match, error) {
			return &domain.Match{ID: id, Status: domain.MatchScheduled}, nil
		},
		UpdateMatchStatusFunc: func(ctx context.Context, id string, status domain.MatchStatus) error {
			return nil
		},
	}

	s := NewScheduler(database, nil, Config{})
	err := s.StartMatchNow(context.Background(), "m42")
	require.NoError(t, err)

	updates := database.UpdateMatchStatusCalls()
	require.Len(t, updates, 1)
	assert.Equal(t, "m42", updates[0].ID)
	assert.Equal(t, domain.MatchInProgress, updates[0].Status)
}

func TestScheduler_StartMatchNow_UpdateFails(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetMatchFunc: func(ctx context.Context, id string) (*domain.Match, error) {
			return &domain.Match{ID: id, Status: domain.MatchScheduled}, nil
		},
		UpdateMatchStatusFunc: func(ctx context.Context, id string, status domain.MatchStatus) error {
			return errors.New("disk I/O error")
		},
	}
	notifier := &mocks.NotifierMock{
		MatchUpdatedFunc: func(match *domain.Match) {},
	}

	s := NewScheduler(database, notifier, Config{})
	err := s.StartMatchNow(context.Background(), "m42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")

	// the write failed, so no subscriber should hear about a start
	require.Len(t, database.UpdateMatchStatusCalls(), 1)
	assert.Empty(t, notifier.MatchUpdatedCalls())
}

func TestScheduler_StartMatchNow_NotFound(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetMatchFunc: func(ctx context.Context, id string) (*domain.Match, error) {
			return nil, errors.New("match not found")
		},
	}

	s := NewScheduler(database, nil, Config{})
	err := s.StartMatchNow(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get match")
}

func TestScheduler_StartStop(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetMatchesDueToStartFunc: func(ctx context.Context, now time.Time) ([]domain.Match, error) {
			return nil, nil
		},
		DeactivateExpiredAdsFunc: func(ctx context.Context, now time.Time) (int64, error) {
			return 0, nil
		},
		ActivateDueAdsFunc: func(ctx context.Context, now time.Time) (int64, error) {
			return 0, nil
		},
	}

	s := NewScheduler(database, nil, Config{MatchInterval: time.Hour, AdInterval: time.Hour})
	s.Start(context.Background())

	// both workers run once immediately on start
	require.Eventually(t, func() bool {
		return len(database.GetMatchesDueToStartCalls()) >= 1 && len(database.ActivateDueAdsCalls()) >= 1
	}, time.Second, 10*time.Millisecond)

	s.Stop() // returns only once workers exited
}
