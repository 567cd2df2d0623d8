package domain

import "time"

// AdPlacement represents a page region an ad may appear in
type AdPlacement string

const (
	PlacementFeed           AdPlacement = "feed"
	PlacementStories        AdPlacement = "stories"
	PlacementSidebar        AdPlacement = "sidebar"
	PlacementMatchPage      AdPlacement = "match_page"
	PlacementTournamentPage AdPlacement = "tournament_page"
)

// AdPosition represents an ad's preferred slot within the feed
type AdPosition string

const (
	PositionTop      AdPosition = "top"
	PositionMiddle   AdPosition = "middle"
	PositionBottom   AdPosition = "bottom"
	PositionAnywhere AdPosition = "anywhere"
)

// AdDisplaySize controls how large the ad renders
type AdDisplaySize string

const (
	DisplayFull    AdDisplaySize = "full"
	DisplayCompact AdDisplaySize = "compact"
	DisplayInline  AdDisplaySize = "inline"
)

// Default values applied when an ad record leaves a field unset
const (
	DefaultAdFrequency = 5
	DefaultAdPriority  = 5
)

// SponsoredAd represents a sponsored content record
type SponsoredAd struct {
	ID               string        `json:"id"`
	SponsorName      string        `json:"sponsor_name"`
	Title            string        `json:"title"`
	Content          string        `json:"content,omitempty"`
	ImageURL         string        `json:"image_url,omitempty"`
	CTAText          string        `json:"cta_text,omitempty"`
	CTAURL           string        `json:"cta_url,omitempty"`
	IsActive         bool          `json:"is_active"`
	Placements       []AdPlacement `json:"placements,omitempty"` // empty means feed only
	Position         AdPosition    `json:"position,omitempty"`   // empty means anywhere
	Frequency        int           `json:"frequency,omitempty"`  // post interval for anywhere ads, 0 means default
	Priority         int           `json:"priority,omitempty"`   // 0 means default
	MinPostsRequired int           `json:"min_posts_required,omitempty"`
	ShowOnEmptyFeed  *bool         `json:"show_on_empty_feed,omitempty"` // nil means true
	DisplaySize      AdDisplaySize `json:"display_size,omitempty"`
	StartsAt         *time.Time    `json:"starts_at,omitempty"`
	EndsAt           *time.Time    `json:"ends_at,omitempty"`
	Impressions      int64         `json:"impressions"`
	Clicks           int64         `json:"clicks"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// EffectiveFrequency returns the frequency with defaults and the non-positive
// guard applied. Records with frequency <= 0 are clamped rather than left to
// produce a zero-interval.
func (a *SponsoredAd) EffectiveFrequency() int {
	if a.Frequency <= 0 {
		return DefaultAdFrequency
	}
	return a.Frequency
}

// EffectivePriority returns the priority with the default applied
func (a *SponsoredAd) EffectivePriority() int {
	if a.Priority == 0 {
		return DefaultAdPriority
	}
	return a.Priority
}

// EffectivePosition returns the position with the default applied
func (a *SponsoredAd) EffectivePosition() AdPosition {
	if a.Position == "" {
		return PositionAnywhere
	}
	return a.Position
}

// HasPlacement reports whether the ad is eligible for the given page region.
// An ad with no placements set defaults to the feed only.
func (a *SponsoredAd) HasPlacement(p AdPlacement) bool {
	if len(a.Placements) == 0 {
		return p == PlacementFeed
	}
	for _, pl := range a.Placements {
		if pl == p {
			return true
		}
	}
	return false
}

// AllowsEmptyFeed reports whether the ad may show when the feed has no posts
func (a *SponsoredAd) AllowsEmptyFeed() bool {
	return a.ShowOnEmptyFeed == nil || *a.ShowOnEmptyFeed
}
