package domain

// FeedItemType discriminates the payload carried by a FeedItem
type FeedItemType string

const (
	ItemPost         FeedItemType = "post"
	ItemLiveMatch    FeedItemType = "live_match"
	ItemTournament   FeedItemType = "tournament"
	ItemSponsored    FeedItemType = "sponsored"
	ItemQuickMatches FeedItemType = "quick_matches"
)

// FeedItem is one renderable unit in the composed feed. Exactly one payload
// pointer matching Type is set; the quick_matches marker carries none and the
// renderer expands it from the upcoming matches list. Priority is an ordering
// hint for consumers, the authoritative order is the slice order itself.
type FeedItem struct {
	Type       FeedItemType `json:"type"`
	ID         string       `json:"id"`
	Priority   float64      `json:"priority"`
	Post       *Post        `json:"post,omitempty"`
	Match      *Match       `json:"match,omitempty"`
	Tournament *Tournament  `json:"tournament,omitempty"`
	Ad         *SponsoredAd `json:"ad,omitempty"`
}

// PostItem builds a feed item wrapping a post
func PostItem(p *Post, priority float64) FeedItem {
	return FeedItem{Type: ItemPost, ID: p.ID, Priority: priority, Post: p}
}

// LiveMatchItem builds a feed item wrapping a prominent match
func LiveMatchItem(m *Match, priority float64) FeedItem {
	return FeedItem{Type: ItemLiveMatch, ID: m.ID, Priority: priority, Match: m}
}

// TournamentItem builds a feed item wrapping a tournament spotlight
func TournamentItem(t *Tournament, priority float64) FeedItem {
	return FeedItem{Type: ItemTournament, ID: t.ID, Priority: priority, Tournament: t}
}

// SponsoredItem builds a feed item wrapping a sponsored ad
func SponsoredItem(a *SponsoredAd, priority float64) FeedItem {
	return FeedItem{Type: ItemSponsored, ID: a.ID, Priority: priority, Ad: a}
}

// QuickMatchesItem builds the upcoming-matches marker
func QuickMatchesItem(priority float64) FeedItem {
	return FeedItem{Type: ItemQuickMatches, ID: "quick_matches", Priority: priority}
}
