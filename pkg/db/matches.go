package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arenascope/arenascope/pkg/domain"
)

// CreateMatch inserts a new match, assigning its id
func (db *DB) CreateMatch(ctx context.Context, match *domain.Match) error {
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if match.Status == "" {
		match.Status = domain.MatchOpen
	}
	now := time.Now().UTC()
	match.CreatedAt = now
	match.UpdatedAt = now

	query := `
		INSERT INTO matches (id, game, status, is_featured, home_team, away_team, home_score, away_score, school_id, scheduled_at, created_at, updated_at)
		VALUES (:id, :game, :status, :is_featured, :home_team, :away_team, :home_score, :away_score, :school_id, :scheduled_at, :created_at, :updated_at)
	`
	row := matchRow{
		ID:          match.ID,
		Game:        match.Game,
		Status:      string(match.Status),
		IsFeatured:  match.IsFeatured,
		HomeTeam:    match.HomeTeam,
		AwayTeam:    match.AwayTeam,
		HomeScore:   match.HomeScore,
		AwayScore:   match.AwayScore,
		SchoolID:    match.SchoolID,
		ScheduledAt: match.ScheduledAt,
		CreatedAt:   match.CreatedAt,
		UpdatedAt:   match.UpdatedAt,
	}
	if _, err := db.conn.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// GetMatch retrieves a match by id
func (db *DB) GetMatch(ctx context.Context, id string) (*domain.Match, error) {
	var row matchRow
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM matches WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("match not found")
		}
		return nil, fmt.Errorf("get match: %w", err)
	}
	match := row.toDomain()
	return &match, nil
}

// GetMatches retrieves matches filtered by status, newest first.
// An empty status set returns all matches.
func (db *DB) GetMatches(ctx context.Context, statuses []domain.MatchStatus, limit int) ([]domain.Match, error) {
	query := `SELECT * FROM matches`
	args := []interface{}{}

	if len(statuses) > 0 {
		ss := make([]string, len(statuses))
		for i, s := range statuses {
			ss[i] = string(s)
		}
		var err error
		query, args, err = sqlx.In(`SELECT * FROM matches WHERE status IN (?)`, ss)
		if err != nil {
			return nil, fmt.Errorf("build matches query: %w", err)
		}
		query = db.conn.Rebind(query)
	}

	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	var rows []matchRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get matches: %w", err)
	}
	return matchRowsToDomain(rows), nil
}

// GetProminentMatches retrieves matches for the top of the feed: live ones
// plus featured matches that have not finished, live first. A match that is
// both live and featured appears once, as live.
func (db *DB) GetProminentMatches(ctx context.Context, limit int) ([]domain.Match, error) {
	query := `
		SELECT * FROM matches
		WHERE status = 'in_progress'
		   OR (is_featured = 1 AND status NOT IN ('completed', 'cancelled'))
		ORDER BY CASE WHEN status = 'in_progress' THEN 0 ELSE 1 END, updated_at DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	var rows []matchRow
	if err := db.conn.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get prominent matches: %w", err)
	}
	return matchRowsToDomain(rows), nil
}

// GetUpcomingMatches retrieves open and scheduled matches ordered by start time
func (db *DB) GetUpcomingMatches(ctx context.Context, limit int) ([]domain.Match, error) {
	query := `
		SELECT * FROM matches
		WHERE status IN ('open', 'scheduled')
		ORDER BY scheduled_at IS NULL, scheduled_at, created_at
	`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	var rows []matchRow
	if err := db.conn.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get upcoming matches: %w", err)
	}
	return matchRowsToDomain(rows), nil
}

// GetMatchesDueToStart retrieves scheduled matches whose start time has passed
func (db *DB) GetMatchesDueToStart(ctx context.Context, now time.Time) ([]domain.Match, error) {
	query := `
		SELECT * FROM matches
		WHERE status = 'scheduled' AND scheduled_at IS NOT NULL AND scheduled_at <= ?
		ORDER BY scheduled_at
	`
	var rows []matchRow
	if err := db.conn.SelectContext(ctx, &rows, query, now); err != nil {
		return nil, fmt.Errorf("get matches due to start: %w", err)
	}
	return matchRowsToDomain(rows), nil
}

// UpdateMatchStatus transitions a match to another lifecycle state
func (db *DB) UpdateMatchStatus(ctx context.Context, id string, status domain.MatchStatus) error {
	return withBusyRetry(ctx, func() error {
		query := `UPDATE matches SET status = ?, updated_at = ? WHERE id = ?`
		result, err := db.conn.ExecContext(ctx, query, string(status), time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("update match status: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("match not found")
		}
		return nil
	})
}

// UpdateMatchScore replaces the score wholesale
func (db *DB) UpdateMatchScore(ctx context.Context, id string, home, away int) error {
	return withBusyRetry(ctx, func() error {
		query := `UPDATE matches SET home_score = ?, away_score = ?, updated_at = ? WHERE id = ?`
		result, err := db.conn.ExecContext(ctx, query, home, away, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("update match score: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("match not found")
		}
		return nil
	})
}

func matchRowsToDomain(rows []matchRow) []domain.Match {
	matches := make([]domain.Match, len(rows))
	for i := range rows {
		matches[i] = rows[i].toDomain()
	}
	return matches
}
