// Package compose builds the home feed: a single deterministic pass that
// interleaves posts, prominent matches, tournament spotlights and sponsored
// ads into one ordered list. The composer is pure, it performs no I/O and
// never fails; missing data just yields a shorter (possibly empty) feed.
package compose

import (
	"sort"

	"github.com/samber/lo"

	"github.com/arenascope/arenascope/pkg/domain"
)

// Input holds the collections the composer works over. All slices are
// treated as read-only snapshots for the duration of one pass; nil slices
// behave as empty. Callers are expected to pass posts newest-first,
// prominent matches deduplicated with live entries first, and tournaments
// already filtered to active ones.
type Input struct {
	Posts           []domain.Post
	LiveMatches     []domain.Match // live and featured-not-live, deduplicated
	UpcomingMatches []domain.Match // open or scheduled
	Tournaments     []domain.Tournament
	Ads             []domain.SponsoredAd // active and inactive, re-filtered here
	DismissedAdIDs  map[string]struct{}  // session-local, excluded unconditionally
}

// pass accumulates the feed under construction. The used set spans the whole
// pass so a sponsored ad can never be emitted twice, no matter which
// placement rule reaches it first.
type pass struct {
	items   []domain.FeedItem
	used    map[string]struct{}
	adShown bool
}

func (p *pass) emit(item domain.FeedItem) {
	p.items = append(p.items, item)
}

// emitAd appends a sponsored item unless the ad was already consumed
func (p *pass) emitAd(ad *domain.SponsoredAd, priority float64) bool {
	if _, ok := p.used[ad.ID]; ok {
		return false
	}
	p.used[ad.ID] = struct{}{}
	p.adShown = true
	p.emit(domain.SponsoredItem(ad, priority))
	return true
}

// firstUnused returns the first ad in the bucket not yet consumed
func (p *pass) firstUnused(bucket []*domain.SponsoredAd) *domain.SponsoredAd {
	for _, ad := range bucket {
		if _, ok := p.used[ad.ID]; !ok {
			return ad
		}
	}
	return nil
}

// Compose produces the feed in its final render order. Priorities on the
// returned items are hints for consumers; the slice is never re-sorted.
func Compose(in Input) []domain.FeedItem {
	eligible := eligibleAds(in)
	top, middle, bottom, anywhere := partitionAds(eligible)

	p := &pass{used: make(map[string]struct{})}

	// prominent matches always lead the feed
	for i := range in.LiveMatches {
		p.emit(domain.LiveMatchItem(&in.LiveMatches[i], -100))
	}

	for i, ad := range top {
		p.emitAd(ad, float64(-90+i))
	}

	// sparse feed with nothing above the fold yet still gets one ad up front
	if len(in.Posts) == 0 && len(in.LiveMatches) == 0 && len(top) == 0 {
		if ad := p.firstUnused(anywhere); ad != nil {
			p.emitAd(ad, -50)
		}
	}

	if len(in.Tournaments) > 0 {
		p.emit(domain.TournamentItem(&in.Tournaments[0], -40))
	}

	lastIdx := len(in.Posts) - 1
	for i := range in.Posts {
		p.emit(domain.PostItem(&in.Posts[i], float64(i)))

		if i == 1 {
			for j, ad := range middle {
				p.emitAd(ad, float64(i)+0.25+float64(j)*0.01)
			}
		}

		// one anywhere-ad attempt per post: the first unused candidate fires
		// on its frequency interval, or once at the end of the feed when no
		// ad has fired at all
		if ad := p.firstUnused(anywhere); ad != nil {
			f := ad.EffectiveFrequency()
			if (i+1)%f == 0 || (i == lastIdx && !p.adShown) {
				p.emitAd(ad, float64(i)+0.5)
			}
		}

		if (i == 2 || (len(in.Posts) <= 2 && i == lastIdx)) && len(in.UpcomingMatches) > 0 {
			p.emit(domain.QuickMatchesItem(float64(i) + 0.75))
		}

		if i == 5 && len(in.Tournaments) > 1 {
			p.emit(domain.TournamentItem(&in.Tournaments[1], float64(i)+0.4))
		}
	}

	for i, ad := range bottom {
		p.emitAd(ad, float64(50+i))
	}

	// empty feed fallback: surface whatever monetizable or timely content
	// remains so the page is never blank
	if len(in.Posts) == 0 {
		for i, ad := range anywhere {
			if _, ok := p.used[ad.ID]; ok {
				continue
			}
			p.emitAd(ad, float64(100+i))
		}
		if len(in.UpcomingMatches) > 0 {
			p.emit(domain.QuickMatchesItem(200))
		}
		for i := 1; i < len(in.Tournaments); i++ {
			p.emit(domain.TournamentItem(&in.Tournaments[i], float64(300+i-1)))
		}
	}

	return p.items
}

// eligibleAds applies the feed gates: dismissal, active flag, feed placement,
// minimum post count and the empty-feed opt-out. Both count gates compare
// against the total number of posts, not a running count.
func eligibleAds(in Input) []*domain.SponsoredAd {
	ads := make([]*domain.SponsoredAd, 0, len(in.Ads))
	for i := range in.Ads {
		ads = append(ads, &in.Ads[i])
	}
	return lo.Filter(ads, func(ad *domain.SponsoredAd, _ int) bool {
		if _, dismissed := in.DismissedAdIDs[ad.ID]; dismissed {
			return false
		}
		if !ad.IsActive || !ad.HasPlacement(domain.PlacementFeed) {
			return false
		}
		if len(in.Posts) < ad.MinPostsRequired {
			return false
		}
		if len(in.Posts) == 0 && !ad.AllowsEmptyFeed() {
			return false
		}
		return true
	})
}

// partitionAds splits eligible ads into position buckets, each stably sorted
// by descending priority so equal-priority ads keep their original order
func partitionAds(ads []*domain.SponsoredAd) (top, middle, bottom, anywhere []*domain.SponsoredAd) {
	for _, ad := range ads {
		switch ad.EffectivePosition() {
		case domain.PositionTop:
			top = append(top, ad)
		case domain.PositionMiddle:
			middle = append(middle, ad)
		case domain.PositionBottom:
			bottom = append(bottom, ad)
		default:
			anywhere = append(anywhere, ad)
		}
	}
	byPriority := func(bucket []*domain.SponsoredAd) {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].EffectivePriority() > bucket[j].EffectivePriority()
		})
	}
	byPriority(top)
	byPriority(middle)
	byPriority(bottom)
	byPriority(anywhere)
	return top, middle, bottom, anywhere
}
