package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/arenascope/arenascope/pkg/db"
	"github.com/arenascope/arenascope/pkg/domain"
	"github.com/arenascope/arenascope/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/feed_builder.go -pkg mocks -skip-ensure -fmt goimports . FeedBuilder
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/sanitizer.go -pkg mocks -skip-ensure -fmt goimports . Sanitizer

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	feed      FeedBuilder
	scheduler Scheduler
	sanitizer Sanitizer
	hub       *LiveHub
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store interface for server operations
type Store interface {
	Ping(ctx context.Context) error
	CountPosts(ctx context.Context) (int64, error)

	CreatePost(ctx context.Context, post *domain.Post) error
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	GetPosts(ctx context.Context, filter db.PostFilter) ([]domain.Post, error)
	DeletePost(ctx context.Context, id string) error
	AddReaction(ctx context.Context, postID, userID string, typ domain.ReactionType) error
	RemoveReaction(ctx context.Context, postID, userID string, typ domain.ReactionType) error
	IncrementCommentCount(ctx context.Context, postID string) error

	CreateMatch(ctx context.Context, match *domain.Match) error
	GetMatch(ctx context.Context, id string) (*domain.Match, error)
	GetMatches(ctx context.Context, statuses []domain.MatchStatus, limit int) ([]domain.Match, error)
	UpdateMatchStatus(ctx context.Context, id string, status domain.MatchStatus) error
	UpdateMatchScore(ctx context.Context, id string, home, away int) error

	CreateTournament(ctx context.Context, t *domain.Tournament) error
	GetTournament(ctx context.Context, id string) (*domain.Tournament, error)
	GetTournaments(ctx context.Context, limit int) ([]domain.Tournament, error)
	AddParticipant(ctx context.Context, tournamentID, participantID string) error

	CreateSchool(ctx context.Context, school *domain.School) error
	GetSchool(ctx context.Context, id string) (*domain.School, error)
	GetSchools(ctx context.Context) ([]domain.School, error)
	IncrementMemberCount(ctx context.Context, id string) error

	CreateAd(ctx context.Context, ad *domain.SponsoredAd) error
	GetAd(ctx context.Context, id string) (*domain.SponsoredAd, error)
	GetAds(ctx context.Context) ([]domain.SponsoredAd, error)
	UpdateAd(ctx context.Context, ad *domain.SponsoredAd) error
	DeleteAd(ctx context.Context, id string) error
	IncrementImpressions(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) error
}

// FeedBuilder composes feed pages
type FeedBuilder interface {
	BuildPage(ctx context.Context, req feed.Request) (*feed.Page, error)
}

// Scheduler interface for on-demand operations
type Scheduler interface {
	StartMatchNow(ctx context.Context, matchID string) error
	RunAdWindowNow(ctx context.Context) error
}

// Sanitizer cleans user supplied markup
type Sanitizer interface {
	Sanitize(content string) string
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, feedBuilder FeedBuilder, scheduler Scheduler,
	sanitizer Sanitizer, hub *LiveHub, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		feed:      feedBuilder,
		scheduler: scheduler,
		sanitizer: sanitizer,
		hub:       hub,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Router exposes the configured handler, used by tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("arenascope", "arenascope", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /feed", s.getFeedHandler)

		r.HandleFunc("GET /posts", s.getPostsHandler)
		r.HandleFunc("POST /posts", s.createPostHandler)
		r.HandleFunc("DELETE /posts/{id}", s.deletePostHandler)
		r.HandleFunc("POST /posts/{id}/reactions", s.addReactionHandler)
		r.HandleFunc("DELETE /posts/{id}/reactions", s.removeReactionHandler)
		r.HandleFunc("POST /posts/{id}/comments", s.addCommentHandler)

		r.HandleFunc("GET /matches", s.getMatchesHandler)
		r.HandleFunc("GET /matches/{id}", s.getMatchHandler)
		r.HandleFunc("GET /matches/{id}/live", s.liveMatchHandler)

		r.HandleFunc("GET /tournaments", s.getTournamentsHandler)
		r.HandleFunc("GET /tournaments/{id}", s.getTournamentHandler)
		r.HandleFunc("POST /tournaments/{id}/register", s.registerParticipantHandler)

		r.HandleFunc("GET /schools", s.getSchoolsHandler)
		r.HandleFunc("GET /schools/{id}", s.getSchoolHandler)
		r.HandleFunc("POST /schools/{id}/join", s.joinSchoolHandler)

		r.HandleFunc("POST /ads/{id}/impression", s.adImpressionHandler)
		r.HandleFunc("POST /ads/{id}/click", s.adClickHandler)

		// management endpoints, the fronting proxy sets the role header
		admin := r.With(s.adminOnly)
		admin.HandleFunc("POST /matches", s.createMatchHandler)
		admin.HandleFunc("PUT /matches/{id}/status", s.matchStatusHandler)
		admin.HandleFunc("PUT /matches/{id}/score", s.matchScoreHandler)
		admin.HandleFunc("POST /tournaments", s.createTournamentHandler)
		admin.HandleFunc("POST /schools", s.createSchoolHandler)
		admin.HandleFunc("GET /ads", s.getAdsHandler)
		admin.HandleFunc("GET /ads/{id}", s.getAdHandler)
		admin.HandleFunc("POST /ads", s.createAdHandler)
		admin.HandleFunc("PUT /ads/{id}", s.updateAdHandler)
		admin.HandleFunc("DELETE /ads/{id}", s.deleteAdHandler)
	})
}

// adminOnly rejects requests without the admin role header
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, role := identity(r); role < domain.RoleAdmin {
			renderError(w, r, fmt.Errorf("admin access required"), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
