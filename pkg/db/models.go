package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arenascope/arenascope/pkg/domain"
)

// row structs mirror the table layout; conversion to domain types happens at
// the method boundary so the rest of the application never sees db tags

type postRow struct {
	ID           string    `db:"id"`
	AuthorID     string    `db:"author_id"`
	AuthorName   string    `db:"author_name"`
	SchoolID     string    `db:"school_id"`
	Game         string    `db:"game"`
	Content      string    `db:"content"`
	MediaURL     string    `db:"media_url"`
	CommentCount int       `db:"comment_count"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r *postRow) toDomain() domain.Post {
	return domain.Post{
		ID:           r.ID,
		AuthorID:     r.AuthorID,
		AuthorName:   r.AuthorName,
		SchoolID:     r.SchoolID,
		Game:         r.Game,
		Content:      r.Content,
		MediaURL:     r.MediaURL,
		CommentCount: r.CommentCount,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type reactionRow struct {
	PostID string `db:"post_id"`
	UserID string `db:"user_id"`
	Type   string `db:"type"`
}

type matchRow struct {
	ID          string     `db:"id"`
	Game        string     `db:"game"`
	Status      string     `db:"status"`
	IsFeatured  bool       `db:"is_featured"`
	HomeTeam    string     `db:"home_team"`
	AwayTeam    string     `db:"away_team"`
	HomeScore   int        `db:"home_score"`
	AwayScore   int        `db:"away_score"`
	SchoolID    string     `db:"school_id"`
	ScheduledAt *time.Time `db:"scheduled_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r *matchRow) toDomain() domain.Match {
	return domain.Match{
		ID:          r.ID,
		Game:        r.Game,
		Status:      domain.MatchStatus(r.Status),
		IsFeatured:  r.IsFeatured,
		HomeTeam:    r.HomeTeam,
		AwayTeam:    r.AwayTeam,
		HomeScore:   r.HomeScore,
		AwayScore:   r.AwayScore,
		SchoolID:    r.SchoolID,
		ScheduledAt: r.ScheduledAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type tournamentRow struct {
	ID              string     `db:"id"`
	Name            string     `db:"name"`
	Game            string     `db:"game"`
	Status          string     `db:"status"`
	MaxParticipants int        `db:"max_participants"`
	PrizePool       string     `db:"prize_pool"`
	StartsAt        *time.Time `db:"starts_at"`
	EndsAt          *time.Time `db:"ends_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r *tournamentRow) toDomain() domain.Tournament {
	return domain.Tournament{
		ID:              r.ID,
		Name:            r.Name,
		Game:            r.Game,
		Status:          domain.TournamentStatus(r.Status),
		MaxParticipants: r.MaxParticipants,
		PrizePool:       r.PrizePool,
		StartsAt:        r.StartsAt,
		EndsAt:          r.EndsAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type adRow struct {
	ID               string        `db:"id"`
	SponsorName      string        `db:"sponsor_name"`
	Title            string        `db:"title"`
	Content          string        `db:"content"`
	ImageURL         string        `db:"image_url"`
	CTAText          string        `db:"cta_text"`
	CTAURL           string        `db:"cta_url"`
	IsActive         bool          `db:"is_active"`
	Placements       placementsSQL `db:"placements"`
	Position         string        `db:"position"`
	Frequency        int           `db:"frequency"`
	Priority         int           `db:"priority"`
	MinPostsRequired int           `db:"min_posts_required"`
	ShowOnEmptyFeed  bool          `db:"show_on_empty_feed"`
	DisplaySize      string        `db:"display_size"`
	StartsAt         *time.Time    `db:"starts_at"`
	EndsAt           *time.Time    `db:"ends_at"`
	Impressions      int64         `db:"impressions"`
	Clicks           int64         `db:"clicks"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

func (r *adRow) toDomain() domain.SponsoredAd {
	show := r.ShowOnEmptyFeed
	placements := make([]domain.AdPlacement, len(r.Placements))
	for i, p := range r.Placements {
		placements[i] = domain.AdPlacement(p)
	}
	return domain.SponsoredAd{
		ID:               r.ID,
		SponsorName:      r.SponsorName,
		Title:            r.Title,
		Content:          r.Content,
		ImageURL:         r.ImageURL,
		CTAText:          r.CTAText,
		CTAURL:           r.CTAURL,
		IsActive:         r.IsActive,
		Placements:       placements,
		Position:         domain.AdPosition(r.Position),
		Frequency:        r.Frequency,
		Priority:         r.Priority,
		MinPostsRequired: r.MinPostsRequired,
		ShowOnEmptyFeed:  &show,
		DisplaySize:      domain.AdDisplaySize(r.DisplaySize),
		StartsAt:         r.StartsAt,
		EndsAt:           r.EndsAt,
		Impressions:      r.Impressions,
		Clicks:           r.Clicks,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

type schoolRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	LogoURL     string    `db:"logo_url"`
	MemberCount int       `db:"member_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *schoolRow) toDomain() domain.School {
	return domain.School{
		ID:          r.ID,
		Name:        r.Name,
		LogoURL:     r.LogoURL,
		MemberCount: r.MemberCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// placementsSQL is a JSON array of placement strings for SQL operations
type placementsSQL []string

// Value implements driver.Valuer for database storage
func (p placementsSQL) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal placements: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (p *placementsSQL) Scan(value interface{}) error {
	if value == nil {
		*p = placementsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported placements column type %T", value)
	}

	return json.Unmarshal(data, p)
}
