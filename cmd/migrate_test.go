package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"daily-diet/internal/config"
	"daily-diet/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data", "diet.db")
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	cfgYAML := fmt.Sprintf(`
jwt:
  secret: migrate-test-secret
database:
  driver: sqlite
  path: %s
log:
  level: error
`, dbPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"migrate", "--config", cfgPath})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Migration complete")

	_, err := os.Stat(dbPath)
	require.NoError(t, err, "database file should be created")

	db, err := database.Init(config.DatabaseConfig{Driver: config.DriverSQLite, Path: dbPath})
	require.NoError(t, err)
	defer database.Close(db)

	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("meals"))
}

func TestMigrateCommand_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	// no jwt secret
	require.NoError(t, os.WriteFile(cfgPath, []byte("server:\n  port: 3333\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"migrate", "--config", cfgPath})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}
