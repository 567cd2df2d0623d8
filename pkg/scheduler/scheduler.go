package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/arenascope/arenascope/pkg/domain"
)

// Scheduler manages the periodic match lifecycle and ad window jobs
type Scheduler struct {
	db            Database
	notifier      Notifier
	matchInterval time.Duration
	adInterval    time.Duration
	maxWorkers    int
	wg            sync.WaitGroup
	cancel        context.CancelFunc
	dbMutex       sync.Mutex // serialize database writes
}

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Database interface for scheduler operations
type Database interface {
	GetMatch(ctx context.Context, id string) (*domain.Match, error)
	GetMatchesDueToStart(ctx context.Context, now time.Time) ([]domain.Match, error)
	UpdateMatchStatus(ctx context.Context, id string, status domain.MatchStatus) error

	DeactivateExpiredAds(ctx context.Context, now time.Time) (int64, error)
	ActivateDueAds(ctx context.Context, now time.Time) (int64, error)
}

// Notifier pushes match state changes to live subscribers, may be nil
type Notifier interface {
	MatchUpdated(match *domain.Match)
}

// Config holds scheduler configuration
type Config struct {
	MatchInterval time.Duration
	AdInterval    time.Duration
	MaxWorkers    int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(database Database, notifier Notifier, cfg Config) *Scheduler {
	if cfg.MatchInterval == 0 {
		cfg.MatchInterval = time.Minute
	}
	if cfg.AdInterval == 0 {
		cfg.AdInterval = 5 * time.Minute
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 5
	}

	return &Scheduler{
		db:            database,
		notifier:      notifier,
		matchInterval: cfg.MatchInterval,
		adInterval:    cfg.AdInterval,
		maxWorkers:    cfg.MaxWorkers,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.matchLifecycleWorker(ctx)

	s.wg.Add(1)
	go s.adWindowWorker(ctx)

	lgr.Printf("[INFO] scheduler started with match interval %v, ad interval %v", s.matchInterval, s.adInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// matchLifecycleWorker periodically moves scheduled matches to in_progress
func (s *Scheduler) matchLifecycleWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.matchInterval)
	defer ticker.Stop()

	// run immediately on start
	s.startDueMatches(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.startDueMatches(ctx)
		}
	}
}

// startDueMatches flips matches whose scheduled time has arrived
func (s *Scheduler) startDueMatches(ctx context.Context) {
	matches, err := s.db.GetMatchesDueToStart(ctx, time.Now())
	if err != nil {
		lgr.Printf("[ERROR] failed to get matches due to start: %v", err)
		return
	}

	if len(matches) == 0 {
		return
	}

	lgr.Printf("[INFO] starting %d due matches", len(matches))

	// use worker pool to start matches concurrently
	sem := make(chan struct{}, s.maxWorkers)
	var wg sync.WaitGroup

	for _, m := range matches {
		wg.Add(1)
		go func(match domain.Match) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			if err := s.startMatch(ctx, match); err != nil {
				lgr.Printf("[ERROR] %v", err)
			}
		}(m)
	}

	wg.Wait()
	lgr.Printf("[INFO] match lifecycle pass completed")
}

// startMatch moves a single match to in_progress and notifies subscribers
func (s *Scheduler) startMatch(ctx context.Context, match domain.Match) error {
	lgr.Printf("[DEBUG] starting match %s: %s vs %s", match.ID, match.HomeTeam, match.AwayTeam)

	s.dbMutex.Lock()
	err := s.db.UpdateMatchStatus(ctx, match.ID, domain.MatchInProgress)
	s.dbMutex.Unlock()
	if err != nil {
		return fmt.Errorf("start match %s: %w", match.ID, err)
	}

	if s.notifier != nil {
		match.Status = domain.MatchInProgress
		s.notifier.MatchUpdated(&match)
	}
	return nil
}

// adWindowWorker periodically activates and deactivates ads by their window
func (s *Scheduler) adWindowWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.adInterval)
	defer ticker.Stop()

	// run immediately on start
	s.rollAdWindows(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.rollAdWindows(ctx)
		}
	}
}

// rollAdWindows applies the ad schedule windows to the active flags
func (s *Scheduler) rollAdWindows(ctx context.Context) {
	now := time.Now()

	s.dbMutex.Lock()
	defer s.dbMutex.Unlock()

	expired, err := s.db.DeactivateExpiredAds(ctx, now)
	if err != nil {
		lgr.Printf("[ERROR] failed to deactivate expired ads: %v", err)
		return
	}

	due, err := s.db.ActivateDueAds(ctx, now)
	if err != nil {
		lgr.Printf("[ERROR] failed to activate due ads: %v", err)
		return
	}

	if expired > 0 || due > 0 {
		lgr.Printf("[INFO] ad windows rolled: %d deactivated, %d activated", expired, due)
	}
}

// StartMatchNow triggers immediate start of a specific match
func (s *Scheduler) StartMatchNow(ctx context.Context, matchID string) error {
	match, err := s.db.GetMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}

	return s.startMatch(ctx, *match)
}

// RunAdWindowNow triggers an immediate ad window pass
func (s *Scheduler) RunAdWindowNow(ctx context.Context) error {
	lgr.Printf("[INFO] triggered immediate ad window pass")
	s.rollAdWindows(ctx)
	return nil
}
