package compose

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenascope/arenascope/pkg/domain"
)

func makePosts(n int) []domain.Post {
	posts := make([]domain.Post, n)
	for i := range posts {
		posts[i] = domain.Post{ID: fmt.Sprintf("p%d", i), Content: fmt.Sprintf("post %d", i)}
	}
	return posts
}

func makeAd(id string, pos domain.AdPosition, freq, priority int) domain.SponsoredAd {
	return domain.SponsoredAd{
		ID:        id,
		IsActive:  true,
		Position:  pos,
		Frequency: freq,
		Priority:  priority,
	}
}

func itemIDs(items []domain.FeedItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = string(it.Type) + ":" + it.ID
	}
	return ids
}

func sponsoredIDs(items []domain.FeedItem) []string {
	var ids []string
	for _, it := range items {
		if it.Type == domain.ItemSponsored {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func TestCompose_EmptyInput(t *testing.T) {
	items := Compose(Input{})
	assert.Empty(t, items, "empty input yields empty feed, not an error")
}

func TestCompose_PostsOnly(t *testing.T) {
	items := Compose(Input{Posts: makePosts(3)})
	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, domain.ItemPost, it.Type)
		assert.Equal(t, fmt.Sprintf("p%d", i), it.ID)
		assert.InDelta(t, float64(i), it.Priority, 0.001)
	}
}

func TestCompose_LiveMatchesLeadTheFeed(t *testing.T) {
	in := Input{
		Posts: makePosts(4),
		LiveMatches: []domain.Match{
			{ID: "m1", Status: domain.MatchInProgress},
			{ID: "m2", Status: domain.MatchScheduled, IsFeatured: true},
		},
		Ads: []domain.SponsoredAd{makeAd("a1", domain.PositionTop, 0, 0)},
	}
	items := Compose(in)
	require.True(t, len(items) >= 2)

	// live matches come first, in input order, before any ad or post
	assert.Equal(t, domain.ItemLiveMatch, items[0].Type)
	assert.Equal(t, "m1", items[0].ID)
	assert.InDelta(t, -100.0, items[0].Priority, 0.001)
	assert.Equal(t, domain.ItemLiveMatch, items[1].Type)
	assert.Equal(t, "m2", items[1].ID)
}

func TestCompose_TopAdsBeforeFirstPost(t *testing.T) {
	in := Input{
		Posts: makePosts(3),
		Ads: []domain.SponsoredAd{
			makeAd("low", domain.PositionTop, 0, 2),
			makeAd("high", domain.PositionTop, 0, 9),
		},
	}
	items := Compose(in)

	firstPost := -1
	for i, it := range items {
		if it.Type == domain.ItemPost {
			firstPost = i
			break
		}
	}
	require.NotEqual(t, -1, firstPost)

	require.Equal(t, []string{"high", "low"}, sponsoredIDs(items), "top ads sorted by descending priority")
	for i, it := range items {
		if it.Type == domain.ItemSponsored {
			assert.Less(t, i, firstPost, "top ad %s must precede first post", it.ID)
		}
	}
}

func TestCompose_BottomAdsAfterLastPost(t *testing.T) {
	in := Input{
		Posts: makePosts(3),
		Ads: []domain.SponsoredAd{
			makeAd("b1", domain.PositionBottom, 0, 5),
			makeAd("b2", domain.PositionBottom, 0, 5),
		},
	}
	items := Compose(in)

	lastPost := -1
	for i, it := range items {
		if it.Type == domain.ItemPost {
			lastPost = i
		}
	}
	for i, it := range items {
		if it.Type == domain.ItemSponsored {
			assert.Greater(t, i, lastPost, "bottom ad %s must follow last post", it.ID)
		}
	}
	// equal priority keeps original order
	assert.Equal(t, []string{"b1", "b2"}, sponsoredIDs(items))
}

func TestCompose_MiddleAdsAtSecondPost(t *testing.T) {
	in := Input{
		Posts: makePosts(4),
		Ads: []domain.SponsoredAd{
			makeAd("m1", domain.PositionMiddle, 0, 3),
			makeAd("m2", domain.PositionMiddle, 0, 7),
		},
	}
	items := Compose(in)
	require.Equal(t, []string{
		"post:p0",
		"post:p1",
		"sponsored:m2",
		"sponsored:m1",
		"post:p2",
		"post:p3",
	}, itemIDs(items))
}

func TestCompose_AnywhereAdFrequency(t *testing.T) {
	t.Run("fires on interval", func(t *testing.T) {
		in := Input{
			Posts: makePosts(7),
			Ads:   []domain.SponsoredAd{makeAd("a", domain.PositionAnywhere, 3, 0)},
		}
		items := Compose(in)
		require.Equal(t, []string{
			"post:p0", "post:p1", "post:p2", "sponsored:a",
			"post:p3", "post:p4", "post:p5", "post:p6",
		}, itemIDs(items))
	})

	t.Run("forced at feed end when interval never reached", func(t *testing.T) {
		in := Input{
			Posts: makePosts(3),
			Ads:   []domain.SponsoredAd{makeAd("a", domain.PositionAnywhere, 5, 0)},
		}
		items := Compose(in)
		require.Equal(t, []string{"post:p0", "post:p1", "post:p2", "sponsored:a"}, itemIDs(items))
	})

	t.Run("not forced when another ad already shown", func(t *testing.T) {
		in := Input{
			Posts: makePosts(2),
			Ads: []domain.SponsoredAd{
				makeAd("top", domain.PositionTop, 0, 0),
				makeAd("any", domain.PositionAnywhere, 5, 0),
			},
		}
		items := Compose(in)
		assert.Equal(t, []string{"top"}, sponsoredIDs(items),
			"force-show is a single monetization guarantee, not a backfill")
	})

	t.Run("only first unused candidate is ever forced", func(t *testing.T) {
		in := Input{
			Posts: makePosts(2),
			Ads: []domain.SponsoredAd{
				makeAd("a1", domain.PositionAnywhere, 9, 8),
				makeAd("a2", domain.PositionAnywhere, 9, 5),
			},
		}
		items := Compose(in)
		assert.Equal(t, []string{"a1"}, sponsoredIDs(items))
	})

	t.Run("non-positive frequency falls back to default", func(t *testing.T) {
		in := Input{
			Posts: makePosts(6),
			Ads:   []domain.SponsoredAd{makeAd("a", domain.PositionAnywhere, -1, 0)},
		}
		items := Compose(in)
		// default frequency 5 fires after the 5th post
		require.Equal(t, []string{
			"post:p0", "post:p1", "post:p2", "post:p3", "post:p4",
			"sponsored:a", "post:p5",
		}, itemIDs(items))
	})
}

func TestCompose_AdAppearsAtMostOnce(t *testing.T) {
	ads := []domain.SponsoredAd{
		makeAd("t1", domain.PositionTop, 0, 9),
		makeAd("m1", domain.PositionMiddle, 0, 5),
		makeAd("a1", domain.PositionAnywhere, 1, 5),
		makeAd("a2", domain.PositionAnywhere, 2, 4),
		makeAd("b1", domain.PositionBottom, 0, 5),
	}
	in := Input{
		Posts:           makePosts(12),
		UpcomingMatches: []domain.Match{{ID: "u1", Status: domain.MatchOpen}},
		Tournaments:     []domain.Tournament{{ID: "t-a"}, {ID: "t-b"}},
		Ads:             ads,
	}
	items := Compose(in)

	seen := map[string]int{}
	for _, id := range sponsoredIDs(items) {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "ad %s emitted %d times", id, n)
	}
}

func TestCompose_MinPostsGating(t *testing.T) {
	ad := makeAd("gated", domain.PositionAnywhere, 1, 0)
	ad.MinPostsRequired = 5

	items := Compose(Input{Posts: makePosts(3), Ads: []domain.SponsoredAd{ad}})
	assert.Empty(t, sponsoredIDs(items), "ad requires 5 posts, feed has 3")

	items = Compose(Input{Posts: makePosts(5), Ads: []domain.SponsoredAd{ad}})
	assert.Equal(t, []string{"gated"}, sponsoredIDs(items))
}

func TestCompose_DismissedAdsExcluded(t *testing.T) {
	in := Input{
		Posts: makePosts(4),
		Ads: []domain.SponsoredAd{
			makeAd("kept", domain.PositionTop, 0, 5),
			makeAd("gone", domain.PositionTop, 0, 9),
		},
		DismissedAdIDs: map[string]struct{}{"gone": {}},
	}
	items := Compose(in)
	assert.Equal(t, []string{"kept"}, sponsoredIDs(items))
}

func TestCompose_InactiveAndMisplacedAdsExcluded(t *testing.T) {
	inactive := makeAd("inactive", domain.PositionTop, 0, 5)
	inactive.IsActive = false

	sidebar := makeAd("sidebar", domain.PositionTop, 0, 5)
	sidebar.Placements = []domain.AdPlacement{domain.PlacementSidebar}

	multi := makeAd("multi", domain.PositionTop, 0, 5)
	multi.Placements = []domain.AdPlacement{domain.PlacementSidebar, domain.PlacementFeed}

	in := Input{
		Posts: makePosts(2),
		Ads:   []domain.SponsoredAd{inactive, sidebar, multi},
	}
	items := Compose(in)
	assert.Equal(t, []string{"multi"}, sponsoredIDs(items))
}

func TestCompose_EmptyFeedFallback(t *testing.T) {
	t.Run("ad then quick matches", func(t *testing.T) {
		in := Input{
			UpcomingMatches: []domain.Match{{ID: "u1", Status: domain.MatchOpen}},
			Ads:             []domain.SponsoredAd{makeAd("a", domain.PositionAnywhere, 0, 0)},
		}
		items := Compose(in)
		require.Equal(t, []string{"sponsored:a", "quick_matches:quick_matches"}, itemIDs(items))
		assert.InDelta(t, -50.0, items[0].Priority, 0.001, "early filler slot")
		assert.InDelta(t, 200.0, items[1].Priority, 0.001)
	})

	t.Run("show_on_empty_feed opt-out respected", func(t *testing.T) {
		no := false
		ad := makeAd("a", domain.PositionAnywhere, 0, 0)
		ad.ShowOnEmptyFeed = &no
		items := Compose(Input{Ads: []domain.SponsoredAd{ad}})
		assert.Empty(t, items)
	})

	t.Run("remaining tournaments surface after the spotlight", func(t *testing.T) {
		in := Input{
			Tournaments: []domain.Tournament{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}},
		}
		items := Compose(in)
		require.Equal(t, []string{
			"tournament:t1", "tournament:t2", "tournament:t3",
		}, itemIDs(items))
		assert.InDelta(t, -40.0, items[0].Priority, 0.001)
		assert.InDelta(t, 300.0, items[1].Priority, 0.001)
		assert.InDelta(t, 301.0, items[2].Priority, 0.001)
	})
}

func TestCompose_QuickMatchesPlacement(t *testing.T) {
	t.Run("after third post", func(t *testing.T) {
		in := Input{
			Posts:           makePosts(5),
			UpcomingMatches: []domain.Match{{ID: "u1", Status: domain.MatchScheduled}},
		}
		items := Compose(in)
		require.Equal(t, []string{
			"post:p0", "post:p1", "post:p2",
			"quick_matches:quick_matches",
			"post:p3", "post:p4",
		}, itemIDs(items))
	})

	t.Run("after last post on short feeds", func(t *testing.T) {
		in := Input{
			Posts:           makePosts(2),
			UpcomingMatches: []domain.Match{{ID: "u1", Status: domain.MatchScheduled}},
		}
		items := Compose(in)
		require.Equal(t, []string{
			"post:p0", "post:p1", "quick_matches:quick_matches",
		}, itemIDs(items))
	})

	t.Run("absent without upcoming matches", func(t *testing.T) {
		items := Compose(Input{Posts: makePosts(5)})
		for _, it := range items {
			assert.NotEqual(t, domain.ItemQuickMatches, it.Type)
		}
	})
}

func TestCompose_SecondTournamentAtIndexFive(t *testing.T) {
	t.Run("emitted when a distinct second tournament exists", func(t *testing.T) {
		in := Input{
			Posts:       makePosts(7),
			Tournaments: []domain.Tournament{{ID: "t1"}, {ID: "t2"}},
		}
		items := Compose(in)
		require.Equal(t, []string{
			"tournament:t1",
			"post:p0", "post:p1", "post:p2", "post:p3", "post:p4", "post:p5",
			"tournament:t2",
			"post:p6",
		}, itemIDs(items))
	})

	t.Run("never reuses the spotlight tournament", func(t *testing.T) {
		in := Input{
			Posts:       makePosts(7),
			Tournaments: []domain.Tournament{{ID: "only"}},
		}
		items := Compose(in)
		count := 0
		for _, it := range items {
			if it.Type == domain.ItemTournament {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestCompose_Idempotent(t *testing.T) {
	in := Input{
		Posts:           makePosts(9),
		LiveMatches:     []domain.Match{{ID: "m1", Status: domain.MatchInProgress}},
		UpcomingMatches: []domain.Match{{ID: "u1", Status: domain.MatchOpen}},
		Tournaments:     []domain.Tournament{{ID: "t1"}, {ID: "t2"}},
		Ads: []domain.SponsoredAd{
			makeAd("a1", domain.PositionTop, 0, 5),
			makeAd("a2", domain.PositionAnywhere, 4, 5),
			makeAd("a3", domain.PositionBottom, 0, 5),
		},
		DismissedAdIDs: map[string]struct{}{"a4": {}},
	}
	first := Compose(in)
	second := Compose(in)
	require.Equal(t, first, second)
}

// worked scenario: six posts, two tournaments, one upcoming match and a
// single anywhere ad with frequency 3
func TestCompose_FullScenario(t *testing.T) {
	in := Input{
		Posts:           makePosts(6),
		UpcomingMatches: []domain.Match{{ID: "u0", Status: domain.MatchOpen}},
		Tournaments:     []domain.Tournament{{ID: "T0"}, {ID: "T1"}},
		Ads:             []domain.SponsoredAd{makeAd("A", domain.PositionAnywhere, 3, 5)},
	}
	items := Compose(in)
	require.Equal(t, []string{
		"tournament:T0",
		"post:p0",
		"post:p1",
		"post:p2",
		"sponsored:A", // (2+1) % 3 == 0, fires before the quick-matches slot
		"quick_matches:quick_matches",
		"post:p3",
		"post:p4",
		"post:p5",
		"tournament:T1",
	}, itemIDs(items))
}
