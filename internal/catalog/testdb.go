package catalog

import (
	"context"
	"database/sql"
	"testing"
	"time"
)

// NewTestDB creates a fresh in-memory catalog with the schema applied and
// the seed data loaded, anchored to the current time.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test catalog: %v", err)
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		t.Fatalf("creating test catalog schema: %v", err)
	}

	if err := Seed(context.Background(), db, time.Now()); err != nil {
		db.Close()
		t.Fatalf("seeding test catalog: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
