package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/arenascope/arenascope/pkg/db"
	"github.com/arenascope/arenascope/pkg/domain"
	"github.com/arenascope/arenascope/pkg/feed"
)

// identity extracts the user id and numeric role set by the fronting auth proxy.
// Missing or malformed role header degrades to the member role.
func identity(r *http.Request) (userID string, role int) {
	userID = r.Header.Get("X-User-ID")
	role, _ = strconv.Atoi(r.Header.Get("X-User-Role"))
	return userID, role
}

// statusHandler returns server status, including a db health probe
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if err := s.store.Ping(ctx); err != nil {
		log.Printf("[WARN] database ping failed: %v", err)
		status["status"] = "degraded"
		renderJSON(w, r, http.StatusServiceUnavailable, status)
		return
	}
	if count, err := s.store.CountPosts(ctx); err == nil {
		status["posts"] = count
	}
	renderJSON(w, r, http.StatusOK, status)
}

// getFeedHandler returns the composed feed page
func (s *Server) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := feed.Request{
		Game:     q.Get("game"),
		SchoolID: q.Get("school_id"),
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		req.Limit = limit
	}
	if dismissed := q.Get("dismissed"); dismissed != "" {
		req.DismissedAdIDs = strings.Split(dismissed, ",")
	}

	page, err := s.feed.BuildPage(r.Context(), req)
	if err != nil {
		log.Printf("[ERROR] failed to build feed page: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, page)
}

// getPostsHandler lists posts, newest first
func (s *Server) getPostsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := db.PostFilter{
		Game:     q.Get("game"),
		SchoolID: q.Get("school_id"),
		AuthorID: q.Get("author_id"),
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	posts, err := s.store.GetPosts(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to get posts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, posts)
}

// createPostHandler creates a new post for the calling user
func (s *Server) createPostHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)
	if userID == "" {
		renderError(w, r, fmt.Errorf("user identity required"), http.StatusUnauthorized)
		return
	}

	var req struct {
		AuthorName string `json:"author_name"`
		SchoolID   string `json:"school_id"`
		Game       string `json:"game"`
		Content    string `json:"content"`
		MediaURL   string `json:"media_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	content := s.sanitizer.Sanitize(req.Content)
	if content == "" {
		renderError(w, r, fmt.Errorf("post content is required"), http.StatusBadRequest)
		return
	}

	post := &domain.Post{
		AuthorID:   userID,
		AuthorName: req.AuthorName,
		SchoolID:   req.SchoolID,
		Game:       req.Game,
		Content:    content,
		MediaURL:   req.MediaURL,
	}
	if err := s.store.CreatePost(r.Context(), post); err != nil {
		log.Printf("[ERROR] failed to create post: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, post)
}

// deletePostHandler removes a post, allowed for the author and moderators
func (s *Server) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, role := identity(r)
	if userID == "" {
		renderError(w, r, fmt.Errorf("user identity required"), http.StatusUnauthorized)
		return
	}
	id := r.PathValue("id")

	post, err := s.store.GetPost(ctx, id)
	if err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}

	if post.AuthorID != userID && role < domain.RoleModerator {
		renderError(w, r, fmt.Errorf("not allowed to delete this post"), http.StatusForbidden)
		return
	}

	if err := s.store.DeletePost(ctx, id); err != nil {
		log.Printf("[ERROR] failed to delete post %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// addReactionHandler records a reaction, repeated reactions are no-ops
func (s *Server) addReactionHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)
	if userID == "" {
		renderError(w, r, fmt.Errorf("user identity required"), http.StatusUnauthorized)
		return
	}

	var req struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	typ := domain.ReactionType(req.Type)
	if !typ.Valid() {
		renderError(w, r, fmt.Errorf("invalid reaction type %q", req.Type), http.StatusBadRequest)
		return
	}

	if err := s.store.AddReaction(r.Context(), r.PathValue("id"), userID, typ); err != nil {
		log.Printf("[ERROR] failed to add reaction: %v", err)
		renderError(w, r, err, statusFromError(err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// removeReactionHandler removes the caller's reaction of the given type
func (s *Server) removeReactionHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)
	if userID == "" {
		renderError(w, r, fmt.Errorf("user identity required"), http.StatusUnauthorized)
		return
	}

	typ := domain.ReactionType(r.URL.Query().Get("type"))
	if !typ.Valid() {
		renderError(w, r, fmt.Errorf("invalid reaction type %q", string(typ)), http.StatusBadRequest)
		return
	}

	if err := s.store.RemoveReaction(r.Context(), r.PathValue("id"), userID, typ); err != nil {
		log.Printf("[ERROR] failed to remove reaction: %v", err)
		renderError(w, r, err, statusFromError(err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// addCommentHandler bumps the post comment counter. Comment bodies live in the
// separate discussion service, the feed only shows counts.
func (s *Server) addCommentHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)
	if userID == "" {
		renderError(w, r, fmt.Errorf("user identity required"), http.StatusUnauthorized)
		return
	}

	if err := s.store.IncrementCommentCount(r.Context(), r.PathValue("id")); err != nil {
		log.Printf("[ERROR] failed to increment comment count: %v", err)
		renderError(w, r, err, statusFromError(err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// getMatchesHandler lists matches with optional status filter
func (s *Server) getMatchesHandler(w http.ResponseWriter, r *http.Request) {
	var statuses []domain.MatchStatus
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		for _, st := range strings.Split(statusParam, ",") {
			status := domain.MatchStatus(st)
			if !status.Valid() {
				renderError(w, r, fmt.Errorf("invalid match status %q", st), http.StatusBadRequest)
				return
			}
			statuses = append(statuses, status)
		}
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	matches, err := s.store.GetMatches(r.Context(), statuses, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get matches: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, matches)
}

// getMatchHandler returns a single match
func (s *Server) getMatchHandler(w http.ResponseWriter, r *http.Request) {
	match, err := s.store.GetMatch(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}
	renderJSON(w, r, http.StatusOK, match)
}

// liveMatchHandler subscribes the caller to live updates for a match
func (s *Server) liveMatchHandler(w http.ResponseWriter, r *http.Request) {
	match, err := s.store.GetMatch(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}

	if err := s.hub.Serve(w, r, match); err != nil {
		log.Printf("[WARN] live subscription for match %s ended: %v", match.ID, err)
	}
}

// createMatchHandler creates a match, admin only
func (s *Server) createMatchHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Game        string     `json:"game"`
		Status      string     `json:"status"`
		IsFeatured  bool       `json:"is_featured"`
		HomeTeam    string     `json:"home_team"`
		AwayTeam    string     `json:"away_team"`
		SchoolID    string     `json:"school_id"`
		ScheduledAt *time.Time `json:"scheduled_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.HomeTeam == "" || req.AwayTeam == "" {
		renderError(w, r, fmt.Errorf("both teams are required"), http.StatusBadRequest)
		return
	}
	if req.Status != "" && !domain.MatchStatus(req.Status).Valid() {
		renderError(w, r, fmt.Errorf("invalid match status %q", req.Status), http.StatusBadRequest)
		return
	}

	match := &domain.Match{
		Game:        req.Game,
		Status:      domain.MatchStatus(req.Status),
		IsFeatured:  req.IsFeatured,
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		SchoolID:    req.SchoolID,
		ScheduledAt: req.ScheduledAt,
	}
	if err := s.store.CreateMatch(r.Context(), match); err != nil {
		log.Printf("[ERROR] failed to create match: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, match)
}

// matchStatusHandler updates match status, admin only. Starting a match goes
// through the scheduler so live subscribers get notified the same way as for
// scheduled starts.
func (s *Server) matchStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	status := domain.MatchStatus(req.Status)
	if !status.Valid() {
		renderError(w, r, fmt.Errorf("invalid match status %q", req.Status), http.StatusBadRequest)
		return
	}

	if status == domain.MatchInProgress {
		if err := s.scheduler.StartMatchNow(ctx, id); err != nil {
			log.Printf("[ERROR] failed to start match %s: %v", id, err)
			renderError(w, r, err, statusFromError(err))
			return
		}
	} else {
		if err := s.store.UpdateMatchStatus(ctx, id, status); err != nil {
			log.Printf("[ERROR] failed to update match status: %v", err)
			renderError(w, r, err, statusFromError(err))
			return
		}
	}

	match, err := s.store.GetMatch(ctx, id)
	if err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}

	if status != domain.MatchInProgress { // scheduler already notified on start
		s.hub.MatchUpdated(match)
	}

	renderJSON(w, r, http.StatusOK, match)
}

// matchScoreHandler updates the score and pushes it to live subscribers, admin only
func (s *Server) matchScoreHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req struct {
		HomeScore int `json:"home_score"`
		AwayScore int `json:"away_score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.store.UpdateMatchScore(ctx, id, req.HomeScore, req.AwayScore); err != nil {
		log.Printf("[ERROR] failed to update match score: %v", err)
		renderError(w, r, err, statusFromError(err))
		return
	}

	match, err := s.store.GetMatch(ctx, id)
	if err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}

	s.hub.MatchUpdated(match)
	renderJSON(w, r, http.StatusOK, match)
}

// getTournamentsHandler lists tournaments
func (s *Server) getTournamentsHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	tournaments, err := s.store.GetTournaments(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to get tournaments: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, tournaments)
}

// getTournamentHandler returns a single tournament with participants
func (s *Server) getTournamentHandler(w http.ResponseWriter, r *http.Request) {
	tournament, err := s.store.GetTournament(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}
	renderJSON(w, r, http.StatusOK, tournament)
}

// createTournamentHandler creates a tournament, admin only
func (s *Server) createTournamentHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string     `json:"name"`
		Game            string     `json:"game"`
		MaxParticipants int        `json:"max_participants"`
		PrizePool       string     `json:"prize_pool"`
		StartsAt        *time.Time `json:"starts_at"`
		EndsAt          *time.Time `json:"ends_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		renderError(w, r, fmt.Errorf("tournament name is required"), http.StatusBadRequest)
		return
	}

	tournament := &domain.Tournament{
		Name:            req.Name,
		Game:            req.Game,
		Status:          domain.TournamentRegistration,
		MaxParticipants: req.MaxParticipants,
		PrizePool:       req.PrizePool,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
	}
	if err := s.store.CreateTournament(r.Context(), tournament); err != nil {
		log.Printf("[ERROR] failed to create tournament: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, tournament)
}

// registerParticipantHandler registers the caller (or a named team) for a tournament
func (s *Server) registerParticipantHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)

	var req struct {
		ParticipantID string `json:"participant_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	participantID := req.ParticipantID
	if participantID == "" {
		participantID = userID
	}
	if participantID == "" {
		renderError(w, r, fmt.Errorf("participant identity required"), http.StatusUnauthorized)
		return
	}

	if err := s.store.AddParticipant(r.Context(), r.PathValue("id"), participantID); err != nil {
		log.Printf("[WARN] failed to register participant: %v", err)
		renderError(w, r, err, statusFromError(err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "registered"})
}

// getSchoolsHandler lists schools
func (s *Server) getSchoolsHandler(w http.ResponseWriter, r *http.Request) {
	schools, err := s.store.GetSchools(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get schools: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, schools)
}

// getSchoolHandler returns a single school
func (s *Server) getSchoolHandler(w http.ResponseWriter, r *http.Request) {
	school, err := s.store.GetSchool(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}
	renderJSON(w, r, http.StatusOK, school)
}

// joinSchoolHandler counts the caller into the school membership
func (s *Server) joinSchoolHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)
	if userID == "" {
		renderError(w, r, fmt.Errorf("user identity required"), http.StatusUnauthorized)
		return
	}

	ctx := r.Context()
	id := r.PathValue("id")
	if err := s.store.IncrementMemberCount(ctx, id); err != nil {
		log.Printf("[ERROR] failed to join school %s: %v", id, err)
		renderError(w, r, err, statusFromError(err))
		return
	}

	school, err := s.store.GetSchool(ctx, id)
	if err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}

	renderJSON(w, r, http.StatusOK, school)
}

// createSchoolHandler creates a school record, admin only
func (s *Server) createSchoolHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		LogoURL string `json:"logo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		renderError(w, r, fmt.Errorf("school name is required"), http.StatusBadRequest)
		return
	}

	school := &domain.School{Name: req.Name, LogoURL: req.LogoURL}
	if err := s.store.CreateSchool(r.Context(), school); err != nil {
		log.Printf("[ERROR] failed to create school: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, school)
}

// getAdsHandler lists all sponsored ads including inactive ones, admin only
func (s *Server) getAdsHandler(w http.ResponseWriter, r *http.Request) {
	ads, err := s.store.GetAds(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get ads: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, ads)
}

// getAdHandler returns a single ad with its counters, admin only
func (s *Server) getAdHandler(w http.ResponseWriter, r *http.Request) {
	ad, err := s.store.GetAd(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}
	renderJSON(w, r, http.StatusOK, ad)
}

// createAdHandler creates a sponsored ad, admin only
func (s *Server) createAdHandler(w http.ResponseWriter, r *http.Request) {
	var ad domain.SponsoredAd
	if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if ad.SponsorName == "" || ad.Title == "" {
		renderError(w, r, fmt.Errorf("sponsor name and title are required"), http.StatusBadRequest)
		return
	}
	ad.Content = s.sanitizer.Sanitize(ad.Content)

	if err := s.store.CreateAd(r.Context(), &ad); err != nil {
		log.Printf("[ERROR] failed to create ad: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// apply scheduling windows right away instead of waiting for the next pass
	go func() {
		if err := s.scheduler.RunAdWindowNow(context.Background()); err != nil {
			log.Printf("[WARN] failed to roll ad windows: %v", err)
		}
	}()

	renderJSON(w, r, http.StatusCreated, &ad)
}

// updateAdHandler replaces an ad wholesale, admin only
func (s *Server) updateAdHandler(w http.ResponseWriter, r *http.Request) {
	var ad domain.SponsoredAd
	if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	ad.ID = r.PathValue("id")
	ad.Content = s.sanitizer.Sanitize(ad.Content)

	if err := s.store.UpdateAd(r.Context(), &ad); err != nil {
		log.Printf("[ERROR] failed to update ad %s: %v", ad.ID, err)
		renderError(w, r, err, statusFromError(err))
		return
	}

	go func() {
		if err := s.scheduler.RunAdWindowNow(context.Background()); err != nil {
			log.Printf("[WARN] failed to roll ad windows: %v", err)
		}
	}()

	renderJSON(w, r, http.StatusOK, &ad)
}

// deleteAdHandler removes an ad, admin only
func (s *Server) deleteAdHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.DeleteAd(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to delete ad %s: %v", id, err)
		renderError(w, r, err, statusFromError(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// adImpressionHandler counts an ad impression
func (s *Server) adImpressionHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.IncrementImpressions(r.Context(), r.PathValue("id")); err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// adClickHandler counts an ad click
func (s *Server) adClickHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.IncrementClicks(r.Context(), r.PathValue("id")); err != nil {
		renderError(w, r, err, statusFromError(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFromError maps storage errors to HTTP status codes based on the
// error text conventions used by the db package
func statusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "full"), strings.Contains(msg, "not open"):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
