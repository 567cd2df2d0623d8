package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arenascope/arenascope/pkg/domain"
)

// CreateAd inserts a new sponsored ad, assigning its id
func (db *DB) CreateAd(ctx context.Context, ad *domain.SponsoredAd) error {
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	ad.CreatedAt = now
	ad.UpdatedAt = now

	query := `
		INSERT INTO sponsored_ads (
			id, sponsor_name, title, content, image_url, cta_text, cta_url,
			is_active, placements, position, frequency, priority,
			min_posts_required, show_on_empty_feed, display_size,
			starts_at, ends_at, impressions, clicks, created_at, updated_at
		) VALUES (
			:id, :sponsor_name, :title, :content, :image_url, :cta_text, :cta_url,
			:is_active, :placements, :position, :frequency, :priority,
			:min_posts_required, :show_on_empty_feed, :display_size,
			:starts_at, :ends_at, :impressions, :clicks, :created_at, :updated_at
		)
	`
	if _, err := db.conn.NamedExecContext(ctx, query, adToRow(ad)); err != nil {
		return fmt.Errorf("insert ad: %w", err)
	}
	return nil
}

// GetAd retrieves an ad by id
func (db *DB) GetAd(ctx context.Context, id string) (*domain.SponsoredAd, error) {
	var row adRow
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM sponsored_ads WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ad not found")
		}
		return nil, fmt.Errorf("get ad: %w", err)
	}
	ad := row.toDomain()
	return &ad, nil
}

// GetAds retrieves all ads, newest first
func (db *DB) GetAds(ctx context.Context) ([]domain.SponsoredAd, error) {
	var rows []adRow
	query := `SELECT * FROM sponsored_ads ORDER BY created_at DESC, id DESC`
	if err := db.conn.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get ads: %w", err)
	}
	return adRowsToDomain(rows), nil
}

// GetAdsForPlacement retrieves ads eligible for a page region. Ads with no
// placements recorded default to the feed. The feed composer re-checks
// eligibility, so active and inactive ads are both returned for the feed
// placement only when activeOnly is false.
func (db *DB) GetAdsForPlacement(ctx context.Context, placement domain.AdPlacement, activeOnly bool) ([]domain.SponsoredAd, error) {
	query := `
		SELECT * FROM sponsored_ads
		WHERE (placements LIKE '%"' || ? || '"%' OR (placements = '[]' AND ? = 'feed'))
	`
	if activeOnly {
		query += ` AND is_active = 1`
	}
	query += ` ORDER BY priority DESC, created_at DESC`

	var rows []adRow
	if err := db.conn.SelectContext(ctx, &rows, query, string(placement), string(placement)); err != nil {
		return nil, fmt.Errorf("get ads for placement: %w", err)
	}
	return adRowsToDomain(rows), nil
}

// UpdateAd replaces an ad record wholesale, preserving its counters
func (db *DB) UpdateAd(ctx context.Context, ad *domain.SponsoredAd) error {
	ad.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE sponsored_ads SET
			sponsor_name = :sponsor_name, title = :title, content = :content,
			image_url = :image_url, cta_text = :cta_text, cta_url = :cta_url,
			is_active = :is_active, placements = :placements, position = :position,
			frequency = :frequency, priority = :priority,
			min_posts_required = :min_posts_required,
			show_on_empty_feed = :show_on_empty_feed, display_size = :display_size,
			starts_at = :starts_at, ends_at = :ends_at, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := db.conn.NamedExecContext(ctx, query, adToRow(ad))
	if err != nil {
		return fmt.Errorf("update ad: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("ad not found")
	}
	return nil
}

// DeleteAd removes an ad
func (db *DB) DeleteAd(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM sponsored_ads WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("ad not found")
	}
	return nil
}

// IncrementImpressions bumps the impression counter
func (db *DB) IncrementImpressions(ctx context.Context, id string) error {
	return db.incrementAdCounter(ctx, id, "impressions")
}

// IncrementClicks bumps the click counter
func (db *DB) IncrementClicks(ctx context.Context, id string) error {
	return db.incrementAdCounter(ctx, id, "clicks")
}

func (db *DB) incrementAdCounter(ctx context.Context, id, column string) error {
	return withBusyRetry(ctx, func() error {
		query := fmt.Sprintf(`UPDATE sponsored_ads SET %s = %s + 1 WHERE id = ?`, column, column)
		result, err := db.conn.ExecContext(ctx, query, id)
		if err != nil {
			return fmt.Errorf("increment ad %s: %w", column, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("ad not found")
		}
		return nil
	})
}

// DeactivateExpiredAds deactivates active ads whose end date has passed,
// returning how many were touched
func (db *DB) DeactivateExpiredAds(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE sponsored_ads SET is_active = 0, updated_at = ?
		WHERE is_active = 1 AND ends_at IS NOT NULL AND ends_at <= ?
	`
	result, err := db.conn.ExecContext(ctx, query, now, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired ads: %w", err)
	}
	return result.RowsAffected()
}

// ActivateDueAds activates inactive ads whose start window has opened and has
// not already closed, returning how many were touched
func (db *DB) ActivateDueAds(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE sponsored_ads SET is_active = 1, updated_at = ?
		WHERE is_active = 0
		  AND starts_at IS NOT NULL AND starts_at <= ?
		  AND (ends_at IS NULL OR ends_at > ?)
	`
	result, err := db.conn.ExecContext(ctx, query, now, now, now)
	if err != nil {
		return 0, fmt.Errorf("activate due ads: %w", err)
	}
	return result.RowsAffected()
}

func adToRow(ad *domain.SponsoredAd) adRow {
	placements := make(placementsSQL, len(ad.Placements))
	for i, p := range ad.Placements {
		placements[i] = string(p)
	}
	return adRow{
		ID:               ad.ID,
		SponsorName:      ad.SponsorName,
		Title:            ad.Title,
		Content:          ad.Content,
		ImageURL:         ad.ImageURL,
		CTAText:          ad.CTAText,
		CTAURL:           ad.CTAURL,
		IsActive:         ad.IsActive,
		Placements:       placements,
		Position:         string(ad.Position),
		Frequency:        ad.Frequency,
		Priority:         ad.Priority,
		MinPostsRequired: ad.MinPostsRequired,
		ShowOnEmptyFeed:  ad.AllowsEmptyFeed(),
		DisplaySize:      string(ad.DisplaySize),
		StartsAt:         ad.StartsAt,
		EndsAt:           ad.EndsAt,
		Impressions:      ad.Impressions,
		Clicks:           ad.Clicks,
		CreatedAt:        ad.CreatedAt,
		UpdatedAt:        ad.UpdatedAt,
	}
}

func adRowsToDomain(rows []adRow) []domain.SponsoredAd {
	ads := make([]domain.SponsoredAd, len(rows))
	for i := range rows {
		ads[i] = rows[i].toDomain()
	}
	return ads
}
