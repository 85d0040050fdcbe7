// Package dbtest opens throwaway, fully migrated clients for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/Alijeyrad/notifications/internal/repo"
	"github.com/Alijeyrad/notifications/internal/repo/enttest"
	"github.com/Alijeyrad/notifications/pkg/database"
)

// Open returns a client backed by a fresh SQLite file in the test's temp
// directory. The schema is created before returning and the client is
// closed when the test ends.
func Open(t testing.TB) *repo.Client {
	t.Helper()

	drv, err := database.OpenDriver(database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "notifications.db"),
	})
	if err != nil {
		t.Fatalf("dbtest: open driver: %v", err)
	}

	client := enttest.NewClient(t, enttest.WithOptions(repo.Driver(drv)))
	t.Cleanup(func() { _ = client.Close() })
	return client
}
