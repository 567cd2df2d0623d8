package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenascope/arenascope/pkg/domain"
	"github.com/arenascope/arenascope/pkg/feed"
	"github.com/arenascope/arenascope/server/mocks"
)

// testDeps bundles the mocked collaborators of a test server
type testDeps struct {
	store     *mocks.StoreMock
	feed      *mocks.FeedBuilderMock
	scheduler *mocks.SchedulerMock
	sanitizer *mocks.SanitizerMock
	hub       *LiveHub
}

func newTestServer(t *testing.T) (*httptest.Server, *testDeps) {
	deps := &testDeps{
		store: &mocks.StoreMock{
			PingFunc:       func(ctx context.Context) error { return nil },
			CountPostsFunc: func(ctx context.Context) (int64, error) { return 0, nil },
		},
		feed:      &mocks.FeedBuilderMock{},
		scheduler: &mocks.SchedulerMock{},
		sanitizer: &mocks.SanitizerMock{
			SanitizeFunc: func(content string) string { return strings.TrimSpace(content) },
		},
		hub: NewLiveHub(),
	}
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", time.Second },
	}

	srv := New(cfg, deps.store, deps.feed, deps.scheduler, deps.sanitizer, deps.hub, "test", false)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, deps
}

func doRequest(t *testing.T, method, url, body string, headers map[string]string) *http.Response {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(resp *http.Response, v interface{}) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

func TestServer_Status(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.CountPostsFunc = func(ctx context.Context) (int64, error) { return 7, nil }

	resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/status", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, decodeBody(resp, &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
	assert.Equal(t, float64(7), status["posts"])

	t.Run("degraded on db failure", func(t *testing.T) {
		deps.store.PingFunc = func(ctx context.Context) error { return fmt.Errorf("db gone") }
		resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/status", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var status map[string]interface{}
		require.NoError(t, decodeBody(resp, &status))
		assert.Equal(t, "degraded", status["status"])
	})
}

func TestServer_GetFeed(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.feed.BuildPageFunc = func(ctx context.Context, req feed.Request) (*feed.Page, error) {
		return &feed.Page{Items: []domain.FeedItem{domain.QuickMatchesItem(0)}}, nil
	}

	resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/feed?game=valorant&dismissed=a1,a2&limit=10", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	calls := deps.feed.BuildPageCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "valorant", calls[0].Req.Game)
	assert.Equal(t, []string{"a1", "a2"}, calls[0].Req.DismissedAdIDs)
	assert.Equal(t, 10, calls[0].Req.Limit)
}

func TestServer_GetFeed_BadLimit(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/feed?limit=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_CreatePost(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.CreatePostFunc = func(ctx context.Context, post *domain.Post) error {
		post.ID = "p1"
		return nil
	}

	t.Run("no identity", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/posts", `{"content":"gg"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("created", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/posts",
			`{"content":"  great game  ","author_name":"sam","game":"valorant"}`,
			map[string]string{"X-User-ID": "u1"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var post domain.Post
		require.NoError(t, decodeBody(resp, &post))
		assert.Equal(t, "p1", post.ID)
		assert.Equal(t, "u1", post.AuthorID)
		assert.Equal(t, "great game", post.Content, "content passes through the sanitizer")
	})

	t.Run("content stripped to empty", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/posts", `{"content":"   "}`,
			map[string]string{"X-User-ID": "u1"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_DeletePost(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.GetPostFunc = func(ctx context.Context, id string) (*domain.Post, error) {
		if id != "p1" {
			return nil, fmt.Errorf("post not found")
		}
		return &domain.Post{ID: "p1", AuthorID: "author"}, nil
	}
	deps.store.DeletePostFunc = func(ctx context.Context, id string) error { return nil }

	tests := []struct {
		name     string
		id       string
		headers  map[string]string
		wantCode int
	}{
		{"author deletes own post", "p1", map[string]string{"X-User-ID": "author"}, http.StatusOK},
		{"moderator deletes any post", "p1", map[string]string{"X-User-ID": "mod", "X-User-Role": "1"}, http.StatusOK},
		{"member cannot delete others", "p1", map[string]string{"X-User-ID": "stranger"}, http.StatusForbidden},
		{"missing identity", "p1", nil, http.StatusUnauthorized},
		{"unknown post", "nope", map[string]string{"X-User-ID": "author"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, http.MethodDelete, ts.URL+"/api/v1/posts/"+tt.id, "", tt.headers)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestServer_Reactions(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.AddReactionFunc = func(ctx context.Context, postID, userID string, typ domain.ReactionType) error {
		return nil
	}
	deps.store.RemoveReactionFunc = func(ctx context.Context, postID, userID string, typ domain.ReactionType) error {
		return nil
	}
	auth := map[string]string{"X-User-ID": "u1"}

	t.Run("add reaction", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/posts/p1/reactions", `{"type":"fire"}`, auth)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := deps.store.AddReactionCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "p1", calls[0].PostID)
		assert.Equal(t, "u1", calls[0].UserID)
		assert.Equal(t, domain.ReactionFire, calls[0].Typ)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/posts/p1/reactions", `{"type":"meh"}`, auth)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("remove reaction", func(t *testing.T) {
		resp := doRequest(t, http.MethodDelete, ts.URL+"/api/v1/posts/p1/reactions?type=like", "", auth)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := deps.store.RemoveReactionCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, domain.ReactionLike, calls[0].Typ)
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/posts/p1/reactions", `{"type":"gg"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestServer_AddComment(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.IncrementCommentCountFunc = func(ctx context.Context, postID string) error { return nil }

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/posts/p1/comments", "",
		map[string]string{"X-User-ID": "u1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, deps.store.IncrementCommentCountCalls(), 1)
}

func TestServer_AdminGate(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.CreateMatchFunc = func(ctx context.Context, match *domain.Match) error {
		match.ID = "m1"
		return nil
	}
	body := `{"home_team":"alpha","away_team":"beta"}`

	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
	}{
		{"no role header", map[string]string{"X-User-ID": "u1"}, http.StatusForbidden},
		{"moderator is not enough", map[string]string{"X-User-ID": "u1", "X-User-Role": "1"}, http.StatusForbidden},
		{"admin allowed", map[string]string{"X-User-ID": "u1", "X-User-Role": "2"}, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/matches", body, tt.headers)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestServer_CreateMatch_Validation(t *testing.T) {
	ts, _ := newTestServer(t)
	admin := map[string]string{"X-User-ID": "u1", "X-User-Role": "2"}

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/matches", `{"home_team":"alpha"}`, admin)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "away team missing")

	resp = doRequest(t, http.MethodPost, ts.URL+"/api/v1/matches",
		`{"home_team":"alpha","away_team":"beta","status":"bogus"}`, admin)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unknown status")
}

func TestServer_MatchStatus(t *testing.T) {
	ts, deps := newTestServer(t)
	admin := map[string]string{"X-User-ID": "u1", "X-User-Role": "2"}
	deps.store.GetMatchFunc = func(ctx context.Context, id string) (*domain.Match, error) {
		return &domain.Match{ID: id, Status: domain.MatchInProgress}, nil
	}
	deps.store.UpdateMatchStatusFunc = func(ctx context.Context, id string, status domain.MatchStatus) error {
		return nil
	}
	deps.scheduler.StartMatchNowFunc = func(ctx context.Context, matchID string) error { return nil }

	t.Run("start goes through scheduler", func(t *testing.T) {
		resp := doRequest(t, http.MethodPut, ts.URL+"/api/v1/matches/m1/status", `{"status":"in_progress"}`, admin)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, deps.scheduler.StartMatchNowCalls(), 1)
		assert.Equal(t, "m1", deps.scheduler.StartMatchNowCalls()[0].MatchID)
		assert.Empty(t, deps.store.UpdateMatchStatusCalls())
	})

	t.Run("completion updates store directly", func(t *testing.T) {
		resp := doRequest(t, http.MethodPut, ts.URL+"/api/v1/matches/m1/status", `{"status":"completed"}`, admin)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, deps.store.UpdateMatchStatusCalls(), 1)
		assert.Equal(t, domain.MatchCompleted, deps.store.UpdateMatchStatusCalls()[0].Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		resp := doRequest(t, http.MethodPut, ts.URL+"/api/v1/matches/m1/status", `{"status":"paused"}`, admin)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("failed start is reported", func(t *testing.T) {
		deps.scheduler.StartMatchNowFunc = func(ctx context.Context, matchID string) error {
			return fmt.Errorf("start match %s: disk I/O error", matchID)
		}
		resp := doRequest(t, http.MethodPut, ts.URL+"/api/v1/matches/m1/status", `{"status":"in_progress"}`, admin)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_MatchScore(t *testing.T) {
	ts, deps := newTestServer(t)
	admin := map[string]string{"X-User-ID": "u1", "X-User-Role": "2"}
	deps.store.UpdateMatchScoreFunc = func(ctx context.Context, id string, home, away int) error { return nil }
	deps.store.GetMatchFunc = func(ctx context.Context, id string) (*domain.Match, error) {
		return &domain.Match{ID: id, Status: domain.MatchInProgress, HomeScore: 13, AwayScore: 7}, nil
	}

	resp := doRequest(t, http.MethodPut, ts.URL+"/api/v1/matches/m1/score",
		`{"home_score":13,"away_score":7}`, admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	calls := deps.store.UpdateMatchScoreCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 13, calls[0].Home)
	assert.Equal(t, 7, calls[0].Away)

	var match domain.Match
	require.NoError(t, decodeBody(resp, &match))
	assert.Equal(t, 13, match.HomeScore)
}

func TestServer_RegisterTournament(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.AddParticipantFunc = func(ctx context.Context, tournamentID, participantID string) error {
		switch tournamentID {
		case "full":
			return fmt.Errorf("tournament is full")
		case "closed":
			return fmt.Errorf("tournament is not open for registration")
		case "missing":
			return fmt.Errorf("tournament not found")
		}
		return nil
	}
	auth := map[string]string{"X-User-ID": "team-1"}

	t.Run("registers caller by default", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/tournaments/t1/register", "", auth)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := deps.store.AddParticipantCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "team-1", calls[0].ParticipantID)
	})

	t.Run("explicit participant id", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/tournaments/t1/register",
			`{"participant_id":"team-9"}`, auth)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := deps.store.AddParticipantCalls()
		assert.Equal(t, "team-9", calls[len(calls)-1].ParticipantID)
	})

	t.Run("full tournament conflicts", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/tournaments/full/register", "", auth)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("closed registration conflicts", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/tournaments/closed/register", "", auth)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("unknown tournament", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/tournaments/missing/register", "", auth)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/tournaments/t1/register", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestServer_GetSchool(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.GetSchoolFunc = func(ctx context.Context, id string) (*domain.School, error) {
		if id != "s1" {
			return nil, fmt.Errorf("school not found")
		}
		return &domain.School{ID: "s1", Name: "Northside High", MemberCount: 42}, nil
	}

	resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/schools/s1", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var school domain.School
	require.NoError(t, decodeBody(resp, &school))
	assert.Equal(t, "Northside High", school.Name)
	assert.Equal(t, 42, school.MemberCount)

	t.Run("unknown school", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/schools/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_JoinSchool(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.IncrementMemberCountFunc = func(ctx context.Context, id string) error {
		if id == "missing" {
			return fmt.Errorf("school not found")
		}
		return nil
	}
	deps.store.GetSchoolFunc = func(ctx context.Context, id string) (*domain.School, error) {
		return &domain.School{ID: id, Name: "Northside High", MemberCount: 43}, nil
	}
	auth := map[string]string{"X-User-ID": "u1"}

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/schools/s1/join", "", auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	calls := deps.store.IncrementMemberCountCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "s1", calls[0].ID)

	var school domain.School
	require.NoError(t, decodeBody(resp, &school))
	assert.Equal(t, 43, school.MemberCount)

	t.Run("anonymous rejected", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/schools/s1/join", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown school", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/schools/missing/join", "", auth)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_AdCounters(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.store.IncrementImpressionsFunc = func(ctx context.Context, id string) error { return nil }
	deps.store.IncrementClicksFunc = func(ctx context.Context, id string) error { return nil }

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/ads/ad1/impression", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodPost, ts.URL+"/api/v1/ads/ad1/click", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, deps.store.IncrementImpressionsCalls(), 1)
	require.Len(t, deps.store.IncrementClicksCalls(), 1)
	assert.Equal(t, "ad1", deps.store.IncrementImpressionsCalls()[0].ID)
}

func TestServer_CreateAd(t *testing.T) {
	ts, deps := newTestServer(t)
	admin := map[string]string{"X-User-ID": "u1", "X-User-Role": "2"}
	deps.store.CreateAdFunc = func(ctx context.Context, ad *domain.SponsoredAd) error {
		ad.ID = "ad1"
		return nil
	}
	deps.scheduler.RunAdWindowNowFunc = func(ctx context.Context) error { return nil }

	resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/ads",
		`{"sponsor_name":"acme","title":"try our gear","position":"top","priority":8}`, admin)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	calls := deps.store.CreateAdCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.PositionTop, calls[0].Ad.Position)
	assert.Equal(t, 8, calls[0].Ad.Priority)

	// ad windows are rolled in the background after create
	require.Eventually(t, func() bool {
		return len(deps.scheduler.RunAdWindowNowCalls()) == 1
	}, time.Second, 10*time.Millisecond)

	t.Run("missing sponsor rejected", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, ts.URL+"/api/v1/ads", `{"title":"orphan"}`, admin)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("member cannot list ads", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/ads", "", map[string]string{"X-User-ID": "u1"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin reads single ad", func(t *testing.T) {
		deps.store.GetAdFunc = func(ctx context.Context, id string) (*domain.SponsoredAd, error) {
			return &domain.SponsoredAd{ID: id, SponsorName: "acme", Impressions: 120, Clicks: 7}, nil
		}
		resp := doRequest(t, http.MethodGet, ts.URL+"/api/v1/ads/ad1", "", admin)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var ad domain.SponsoredAd
		require.NoError(t, decodeBody(resp, &ad))
		assert.Equal(t, int64(120), ad.Impressions)
	})
}
