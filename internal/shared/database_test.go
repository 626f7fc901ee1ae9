package shared

import (
	"path/filepath"
	"testing"
)

func TestOpenJournalDB(t *testing.T) {
	t.Run("InMemoryPinnedToOneConnection", func(t *testing.T) {
		db, err := OpenJournalDB(DatabaseConfig{Path: ":memory:", MaxOpenConns: 8, MaxIdleConns: 4})
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if got := db.Stats().MaxOpenConnections; got != 1 {
			t.Errorf("expected single connection for :memory:, got %d", got)
		}

		if _, err := db.Exec("CREATE TABLE scratch (id INTEGER)"); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if err := db.QueryRow("SELECT COUNT(*) FROM scratch").Scan(new(int)); err != nil {
			t.Errorf("expected second statement to see the same database: %v", err)
		}
	})

	t.Run("AppliesConfiguredPoolLimits", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.db")
		db, err := OpenJournalDB(DatabaseConfig{Path: path, MaxOpenConns: 4, MaxIdleConns: 2})
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if got := db.Stats().MaxOpenConnections; got != 4 {
			t.Errorf("expected pool capped at 4, got %d", got)
		}
	})

	t.Run("ZeroLimitsLeaveDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.db")
		db, err := OpenJournalDB(DatabaseConfig{Path: path})
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if got := db.Stats().MaxOpenConnections; got != 0 {
			t.Errorf("expected unlimited pool when config omits limits, got %d", got)
		}
	})

	t.Run("UnreachablePath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "journal.db")
		if _, err := OpenJournalDB(DatabaseConfig{Path: path}); err == nil {
			t.Error("expected error for a path in a missing directory")
		}
	})
}
