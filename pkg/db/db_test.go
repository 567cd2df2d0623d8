package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (db *DB, cleanup func()) {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	cfg := Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	}

	db, err = New(cfg)
	require.NoError(t, err)

	cleanup = func() {
		db.Close()
		os.Remove(tmpFile.Name())
	}

	return db, cleanup
}

func TestDB_InitSchema(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// schema should already be initialized by New()
	var count int
	err := db.conn.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name IN ('posts', 'reactions', 'matches', 'tournaments', 'tournament_participants', 'sponsored_ads', 'schools')
	`)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestDB_NewWithDefaults(t *testing.T) {
	cfg := Config{}
	db, err := New(cfg)
	require.NoError(t, err)
	defer func() {
		db.Close()
		os.Remove("arenascope.db")
	}()

	ctx := context.Background()
	err = db.Ping(ctx)
	assert.NoError(t, err)
}

func TestDB_NewWithConnectionSettings(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test-conn-*.db")
	require.NoError(t, err)
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	cfg := Config{
		DSN:             "file:" + tmpFile.Name() + "?mode=rwc",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
	}

	db, err := New(cfg)
	require.NoError(t, err)
	defer db.Close()

	stats := db.DB().Stats()
	assert.LessOrEqual(t, stats.MaxOpenConnections, 5)
}

func TestDB_InTransaction(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		err := db.InTransaction(ctx, func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`INSERT INTO schools (id, name) VALUES ('s1', 'Test High')`)
			return err
		})
		require.NoError(t, err)

		var count int
		require.NoError(t, db.conn.Get(&count, `SELECT COUNT(*) FROM schools`))
		assert.Equal(t, 1, count)
	})

	t.Run("rollback on error", func(t *testing.T) {
		err := db.InTransaction(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.Exec(`INSERT INTO schools (id, name) VALUES ('s2', 'Other High')`); err != nil {
				return err
			}
			return fmt.Errorf("boom")
		})
		require.Error(t, err)

		var count int
		require.NoError(t, db.conn.Get(&count, `SELECT COUNT(*) FROM schools`))
		assert.Equal(t, 1, count, "insert rolled back")
	})
}
