// Package databasetest provides throwaway migrated databases for tests.
package databasetest

import (
	"testing"

	"github.com/cuongbtq/wallpaper-gallery/shared/database"
	"github.com/cuongbtq/wallpaper-gallery/shared/logger"
)

// NewSQLite returns a client backed by a private in-memory SQLite database
// with all migrations applied. It is closed when the test ends.
func NewSQLite(t testing.TB) *database.Client {
	t.Helper()

	client, err := database.NewClient(&database.Config{
		Driver:       database.DriverSQLite,
		Path:         ":memory:",
		MaxOpenConns: 1, // every pooled connection would see its own empty memory db
		MaxIdleConns: 1,
		AutoMigrate:  true,
	}, logger.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return client
}
