package database

import (
	"path/filepath"
	"testing"

	"daily-diet/internal/config"
	"daily-diet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_SQLiteAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "diet.db")

	db, err := Init(config.DatabaseConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Meal{}))
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "Email"))

	// migrations are idempotent
	require.NoError(t, AutoMigrate(db))
}

func TestInit_UnknownDriver(t *testing.T) {
	_, err := Init(config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}
