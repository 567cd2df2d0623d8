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

// CreateSchool inserts a new school, assigning its id
func (db *DB) CreateSchool(ctx context.Context, school *domain.School) error {
	if school.ID == "" {
		school.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	school.CreatedAt = now
	school.UpdatedAt = now

	query := `
		INSERT INTO schools (id, name, logo_url, member_count, created_at, updated_at)
		VALUES (:id, :name, :logo_url, :member_count, :created_at, :updated_at)
	`
	row := schoolRow{
		ID:          school.ID,
		Name:        school.Name,
		LogoURL:     school.LogoURL,
		MemberCount: school.MemberCount,
		CreatedAt:   school.CreatedAt,
		UpdatedAt:   school.UpdatedAt,
	}
	if _, err := db.conn.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert school: %w", err)
	}
	return nil
}

// GetSchool retrieves a school by id
func (db *DB) GetSchool(ctx context.Context, id string) (*domain.School, error) {
	var row schoolRow
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM schools WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("school not found")
		}
		return nil, fmt.Errorf("get school: %w", err)
	}
	school := row.toDomain()
	return &school, nil
}

// GetSchools retrieves all schools sorted by name
func (db *DB) GetSchools(ctx context.Context) ([]domain.School, error) {
	var rows []schoolRow
	if err := db.conn.SelectContext(ctx, &rows, `SELECT * FROM schools ORDER BY name`); err != nil {
		return nil, fmt.Errorf("get schools: %w", err)
	}
	schools := make([]domain.School, len(rows))
	for i := range rows {
		schools[i] = rows[i].toDomain()
	}
	return schools, nil
}

// IncrementMemberCount bumps the member counter
func (db *DB) IncrementMemberCount(ctx context.Context, id string) error {
	return withBusyRetry(ctx, func() error {
		query := `UPDATE schools SET member_count = member_count + 1, updated_at = ? WHERE id = ?`
		result, err := db.conn.ExecContext(ctx, query, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("increment member count: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("school not found")
		}
		return nil
	})
}
