package services

import (
	"fmt"
	"testing"

	"samsip_orders/internal/database"

	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory store per test case. The shared-cache
// name is keyed by the test name so parallel tests never see each other's
// rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	url := fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(url, 1, 1)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
