package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"users", "habits", "habit_pauses", "habit_logs"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_habits_user",
		"idx_habit_pauses_habit",
		"idx_habit_logs_habit_date",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_LogUniqueConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO users (id, name, created_at) VALUES ('u1', 'default', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO habits (id, user_id, name, start_date, created_at, updated_at)
		VALUES ('h1', 'u1', 'Read', '2024-01-01', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO habit_logs (id, habit_id, date, created_at) VALUES ('l1', 'h1', '2024-01-02', '2024-01-02T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO habit_logs (id, habit_id, date, created_at) VALUES ('l2', 'h1', '2024-01-02', '2024-01-02T00:00:00Z')`)
	require.Error(t, err, "duplicate (habit_id, date) must violate the unique constraint")
	assert.Contains(t, err.Error(), "UNIQUE")
}

func TestMigrate_BackfillsFrequency(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO users (id, name, created_at) VALUES ('u1', 'default', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	// Simulate a pre-frequency row left with an empty value.
	_, err = db.Exec(`INSERT INTO habits (id, user_id, name, start_date, frequency, created_at, updated_at)
		VALUES ('h1', 'u1', 'Old', '2023-06-01', '', '2023-06-01T00:00:00Z', '2023-06-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var freq string
	require.NoError(t, db.QueryRow(`SELECT frequency FROM habits WHERE id = 'h1'`).Scan(&freq))
	assert.Equal(t, "DAILY", freq)
}

func TestMigrate_CascadeDeletesChildren(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO users (id, name, created_at) VALUES ('u1', 'default', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO habits (id, user_id, name, start_date, created_at, updated_at)
		VALUES ('h1', 'u1', 'Read', '2024-01-01', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO habit_logs (id, habit_id, date, created_at) VALUES ('l1', 'h1', '2024-01-02', '2024-01-02T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO habit_pauses (id, habit_id, start_date) VALUES ('p1', 'h1', '2024-01-05')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM habits WHERE id = 'h1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM habit_logs`).Scan(&n))
	assert.Zero(t, n, "logs should cascade")
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM habit_pauses`).Scan(&n))
	assert.Zero(t, n, "pauses should cascade")
}
