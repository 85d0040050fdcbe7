package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := `
database:
  driver: sqlite
  path: notifications.db
notifications:
  paginate_by: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("NOTIFICATIONS_NOTIFICATIONS_NUM_TO_FETCH", "25")

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Notifications.PaginateBy)
	assert.Equal(t, 25, cfg.Notifications.NumToFetch)
	assert.Equal(t, "/inbox/notifications", cfg.Server.BasePath)
	assert.Equal(t, int64(110909), cfg.Notifications.SlugOffset)
}

func TestReadConfigRequiresDatabase(t *testing.T) {
	t.Setenv("NOTIFICATIONS_DATABASE_HOST", "")
	t.Setenv("NOTIFICATIONS_DATABASE_PATH", "")

	_, err := ReadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestReadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("database:\n  driver: oracle\n"), 0o600))

	_, err := ReadConfig(dir)
	assert.ErrorContains(t, err, "database.driver")
}
