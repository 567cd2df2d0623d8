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

// CreateTournament inserts a new tournament, assigning its id
func (db *DB) CreateTournament(ctx context.Context, t *domain.Tournament) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = domain.TournamentRegistration
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `
		INSERT INTO tournaments (id, name, game, status, max_participants, prize_pool, starts_at, ends_at, created_at, updated_at)
		VALUES (:id, :name, :game, :status, :max_participants, :prize_pool, :starts_at, :ends_at, :created_at, :updated_at)
	`
	row := tournamentRow{
		ID:              t.ID,
		Name:            t.Name,
		Game:            t.Game,
		Status:          string(t.Status),
		MaxParticipants: t.MaxParticipants,
		PrizePool:       t.PrizePool,
		StartsAt:        t.StartsAt,
		EndsAt:          t.EndsAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if err := db.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("insert tournament: %w", err)
		}
		for _, p := range t.Participants {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tournament_participants (tournament_id, participant_id) VALUES (?, ?)`,
				t.ID, p); err != nil {
				return fmt.Errorf("insert participant: %w", err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return nil
}

// GetTournament retrieves a tournament by id with its participants
func (db *DB) GetTournament(ctx context.Context, id string) (*domain.Tournament, error) {
	var row tournamentRow
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM tournaments WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tournament not found")
		}
		return nil, fmt.Errorf("get tournament: %w", err)
	}

	t := row.toDomain()
	participants, err := db.participantsFor(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	t.Participants = participants[id]
	return &t, nil
}

// GetTournaments retrieves all tournaments, newest first
func (db *DB) GetTournaments(ctx context.Context, limit int) ([]domain.Tournament, error) {
	query := `SELECT * FROM tournaments ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}
	return db.selectTournaments(ctx, query)
}

// GetActiveTournaments retrieves tournaments accepting registrations or in
// progress, ordered by start time so the soonest one takes the feed spotlight
func (db *DB) GetActiveTournaments(ctx context.Context, limit int) ([]domain.Tournament, error) {
	query := `
		SELECT * FROM tournaments
		WHERE status IN ('registration', 'in_progress')
		ORDER BY starts_at IS NULL, starts_at, created_at
	`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}
	return db.selectTournaments(ctx, query)
}

// AddParticipant registers a participant; duplicate registration is a no-op.
// Registration fails when the tournament is full or not open for registration.
func (db *DB) AddParticipant(ctx context.Context, tournamentID, participantID string) error {
	return withBusyRetry(ctx, func() error {
		return db.InTransaction(ctx, func(tx *sqlx.Tx) error {
			var row tournamentRow
			err := tx.GetContext(ctx, &row, `SELECT * FROM tournaments WHERE id = ?`, tournamentID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("tournament not found")
				}
				return fmt.Errorf("get tournament: %w", err)
			}
			t := row.toDomain()
			if t.Status != domain.TournamentRegistration {
				return fmt.Errorf("tournament not open for registration")
			}

			if err := tx.SelectContext(ctx, &t.Participants,
				`SELECT participant_id FROM tournament_participants WHERE tournament_id = ?`, tournamentID); err != nil {
				return fmt.Errorf("get participants: %w", err)
			}
			if t.Full() {
				return fmt.Errorf("tournament is full")
			}

			_, err = tx.ExecContext(ctx, `
				INSERT INTO tournament_participants (tournament_id, participant_id)
				VALUES (?, ?)
				ON CONFLICT(tournament_id, participant_id) DO NOTHING
			`, tournamentID, participantID)
			if err != nil {
				return fmt.Errorf("insert participant: %w", err)
			}
			return nil
		})
	})
}

// UpdateTournamentStatus transitions a tournament to another lifecycle state
func (db *DB) UpdateTournamentStatus(ctx context.Context, id string, status domain.TournamentStatus) error {
	return withBusyRetry(ctx, func() error {
		query := `UPDATE tournaments SET status = ?, updated_at = ? WHERE id = ?`
		result, err := db.conn.ExecContext(ctx, query, string(status), time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("update tournament status: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("tournament not found")
		}
		return nil
	})
}

func (db *DB) selectTournaments(ctx context.Context, query string, args ...interface{}) ([]domain.Tournament, error) {
	var rows []tournamentRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get tournaments: %w", err)
	}

	tournaments := make([]domain.Tournament, len(rows))
	ids := make([]string, len(rows))
	for i := range rows {
		tournaments[i] = rows[i].toDomain()
		ids[i] = rows[i].ID
	}

	if len(ids) > 0 {
		participants, err := db.participantsFor(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range tournaments {
			tournaments[i].Participants = participants[tournaments[i].ID]
		}
	}

	return tournaments, nil
}

// participantsFor loads participants for the given tournament ids in
// registration order
func (db *DB) participantsFor(ctx context.Context, ids []string) (map[string][]string, error) {
	query, args, err := sqlx.In(`
		SELECT tournament_id, participant_id FROM tournament_participants
		WHERE tournament_id IN (?) ORDER BY created_at, participant_id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("build participants query: %w", err)
	}

	var rows []struct {
		TournamentID  string `db:"tournament_id"`
		ParticipantID string `db:"participant_id"`
	}
	if err := db.conn.SelectContext(ctx, &rows, db.conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get participants: %w", err)
	}

	result := make(map[string][]string, len(ids))
	for _, r := range rows {
		result[r.TournamentID] = append(result[r.TournamentID], r.ParticipantID)
	}
	return result, nil
}
