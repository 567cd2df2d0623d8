package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenascope/arenascope/pkg/domain"
)

func TestAdOperations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		ad := &domain.SponsoredAd{
			SponsorName: "Grid Energy",
			Title:       "Fuel your grind",
			IsActive:    true,
			Placements:  []domain.AdPlacement{domain.PlacementFeed, domain.PlacementSidebar},
			Position:    domain.PositionTop,
			Frequency:   3,
			Priority:    7,
		}
		require.NoError(t, db.CreateAd(ctx, ad))
		assert.NotEmpty(t, ad.ID)

		retrieved, err := db.GetAd(ctx, ad.ID)
		require.NoError(t, err)
		assert.Equal(t, "Grid Energy", retrieved.SponsorName)
		assert.Equal(t, domain.PositionTop, retrieved.Position)
		assert.Len(t, retrieved.Placements, 2)
		assert.True(t, retrieved.AllowsEmptyFeed(), "defaults to showing on empty feed")
	})

	t.Run("update preserves counters", func(t *testing.T) {
		ad := &domain.SponsoredAd{SponsorName: "Clutch Gear", IsActive: true}
		require.NoError(t, db.CreateAd(ctx, ad))
		require.NoError(t, db.IncrementImpressions(ctx, ad.ID))
		require.NoError(t, db.IncrementImpressions(ctx, ad.ID))
		require.NoError(t, db.IncrementClicks(ctx, ad.ID))

		ad.Title = "New tagline"
		require.NoError(t, db.UpdateAd(ctx, ad))

		retrieved, err := db.GetAd(ctx, ad.ID)
		require.NoError(t, err)
		assert.Equal(t, "New tagline", retrieved.Title)
		assert.Equal(t, int64(2), retrieved.Impressions)
		assert.Equal(t, int64(1), retrieved.Clicks)
	})

	t.Run("delete", func(t *testing.T) {
		ad := &domain.SponsoredAd{SponsorName: "Gone Soon"}
		require.NoError(t, db.CreateAd(ctx, ad))
		require.NoError(t, db.DeleteAd(ctx, ad.ID))

		_, err := db.GetAd(ctx, ad.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")

		require.Error(t, db.DeleteAd(ctx, ad.ID))
		require.Error(t, db.IncrementClicks(ctx, ad.ID))
	})

	t.Run("show_on_empty_feed round trip", func(t *testing.T) {
		no := false
		ad := &domain.SponsoredAd{SponsorName: "Picky", ShowOnEmptyFeed: &no}
		require.NoError(t, db.CreateAd(ctx, ad))

		retrieved, err := db.GetAd(ctx, ad.ID)
		require.NoError(t, err)
		assert.False(t, retrieved.AllowsEmptyFeed())
	})
}

func TestGetAdsForPlacement(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	seed := []*domain.SponsoredAd{
		{ID: "feed-explicit", IsActive: true, Placements: []domain.AdPlacement{domain.PlacementFeed}, Priority: 3},
		{ID: "feed-default", IsActive: true, Priority: 9}, // no placements means feed
		{ID: "sidebar-only", IsActive: true, Placements: []domain.AdPlacement{domain.PlacementSidebar}},
		{ID: "feed-inactive", IsActive: false, Placements: []domain.AdPlacement{domain.PlacementFeed}},
	}
	for _, ad := range seed {
		require.NoError(t, db.CreateAd(ctx, ad))
	}

	t.Run("feed placement includes defaults and inactive", func(t *testing.T) {
		ads, err := db.GetAdsForPlacement(ctx, domain.PlacementFeed, false)
		require.NoError(t, err)
		require.Len(t, ads, 3)
		assert.Equal(t, "feed-default", ads[0].ID, "highest priority first")
	})

	t.Run("active only", func(t *testing.T) {
		ads, err := db.GetAdsForPlacement(ctx, domain.PlacementFeed, true)
		require.NoError(t, err)
		assert.Len(t, ads, 2)
	})

	t.Run("sidebar placement", func(t *testing.T) {
		ads, err := db.GetAdsForPlacement(ctx, domain.PlacementSidebar, true)
		require.NoError(t, err)
		require.Len(t, ads, 1)
		assert.Equal(t, "sidebar-only", ads[0].ID)
	})
}

func TestAdActivityWindow(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	seed := []*domain.SponsoredAd{
		{ID: "expired", IsActive: true, EndsAt: &past},
		{ID: "running", IsActive: true, EndsAt: &future},
		{ID: "due", IsActive: false, StartsAt: &past},
		{ID: "not-yet", IsActive: false, StartsAt: &future},
		{ID: "due-but-over", IsActive: false, StartsAt: &past, EndsAt: &past},
	}
	for _, ad := range seed {
		require.NoError(t, db.CreateAd(ctx, ad))
	}

	deactivated, err := db.DeactivateExpiredAds(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deactivated)

	activated, err := db.ActivateDueAds(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), activated)

	expired, err := db.GetAd(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, expired.IsActive)

	due, err := db.GetAd(ctx, "due")
	require.NoError(t, err)
	assert.True(t, due.IsActive)

	notYet, err := db.GetAd(ctx, "not-yet")
	require.NoError(t, err)
	assert.False(t, notYet.IsActive)
}
