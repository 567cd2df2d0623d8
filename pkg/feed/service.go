// Package feed assembles the data the composer needs and produces feed pages.
package feed

import (
	"context"
	"log"

	"github.com/samber/lo"

	"github.com/arenascope/arenascope/pkg/compose"
	"github.com/arenascope/arenascope/pkg/db"
	"github.com/arenascope/arenascope/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store provides the collections the feed is composed from
type Store interface {
	GetPosts(ctx context.Context, filter db.PostFilter) ([]domain.Post, error)
	GetProminentMatches(ctx context.Context, limit int) ([]domain.Match, error)
	GetUpcomingMatches(ctx context.Context, limit int) ([]domain.Match, error)
	GetActiveTournaments(ctx context.Context, limit int) ([]domain.Tournament, error)
	GetAdsForPlacement(ctx context.Context, placement domain.AdPlacement, activeOnly bool) ([]domain.SponsoredAd, error)
}

// Request carries the caller's feed parameters
type Request struct {
	Game           string
	SchoolID       string
	Limit          int      // max posts pulled into the page
	DismissedAdIDs []string // session-local dismissals, never persisted
}

// Page is a composed feed plus the upcoming matches the renderer needs to
// expand the quick-matches marker
type Page struct {
	Items        []domain.FeedItem `json:"items"`
	QuickMatches []domain.Match    `json:"quick_matches"`
}

// quickMatchesShown caps how many upcoming matches the marker expands to
const quickMatchesShown = 3

// Config holds feed service tunables
type Config struct {
	PostsPerPage    int
	UpcomingFetched int
}

// Service builds feed pages from stored content
type Service struct {
	store           Store
	postsPerPage    int
	upcomingFetched int
}

// NewService creates a feed service
func NewService(store Store, cfg Config) *Service {
	if cfg.PostsPerPage == 0 {
		cfg.PostsPerPage = 50
	}
	if cfg.UpcomingFetched == 0 {
		cfg.UpcomingFetched = 10
	}
	return &Service{
		store:           store,
		postsPerPage:    cfg.PostsPerPage,
		upcomingFetched: cfg.UpcomingFetched,
	}
}

// BuildPage fetches the five collections and composes the feed. Posts are
// required; the optional collections degrade to empty on fetch failure so a
// flaky ads table can never blank the feed.
func (s *Service) BuildPage(ctx context.Context, req Request) (*Page, error) {
	limit := req.Limit
	if limit <= 0 || limit > s.postsPerPage {
		limit = s.postsPerPage
	}

	posts, err := s.store.GetPosts(ctx, db.PostFilter{
		Game:     req.Game,
		SchoolID: req.SchoolID,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	prominent, err := s.store.GetProminentMatches(ctx, 0)
	if err != nil {
		log.Printf("[WARN] prominent matches unavailable, composing without: %v", err)
		prominent = nil
	}
	// live entries precede featured ones and win on duplicates; anything no
	// longer prominent (finished while cached, cancelled) is dropped here
	prominent = lo.Filter(prominent, func(m domain.Match, _ int) bool { return m.Prominent() })
	prominent = lo.UniqBy(prominent, func(m domain.Match) string { return m.ID })

	upcoming, err := s.store.GetUpcomingMatches(ctx, s.upcomingFetched)
	if err != nil {
		log.Printf("[WARN] upcoming matches unavailable, composing without: %v", err)
		upcoming = nil
	}

	tournaments, err := s.store.GetActiveTournaments(ctx, 0)
	if err != nil {
		log.Printf("[WARN] tournaments unavailable, composing without: %v", err)
		tournaments = nil
	}
	tournaments = lo.Filter(tournaments, func(t domain.Tournament, _ int) bool { return t.Active() })

	ads, err := s.store.GetAdsForPlacement(ctx, domain.PlacementFeed, false)
	if err != nil {
		log.Printf("[WARN] sponsored ads unavailable, composing without: %v", err)
		ads = nil
	}

	dismissed := make(map[string]struct{}, len(req.DismissedAdIDs))
	for _, id := range req.DismissedAdIDs {
		dismissed[id] = struct{}{}
	}

	items := compose.Compose(compose.Input{
		Posts:           posts,
		LiveMatches:     prominent,
		UpcomingMatches: upcoming,
		Tournaments:     tournaments,
		Ads:             ads,
		DismissedAdIDs:  dismissed,
	})

	quick := upcoming
	if len(quick) > quickMatchesShown {
		quick = quick[:quickMatchesShown]
	}

	return &Page{Items: items, QuickMatches: quick}, nil
}
