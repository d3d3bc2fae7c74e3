package postgres

import "testing"

func TestNewMigratorMissingDirectory(t *testing.T) {
	if _, err := newMigrator("postgres://localhost:5432/db", "/nonexistent/migrations"); err == nil {
		t.Fatalf("expected error for missing migrations directory")
	}
}
