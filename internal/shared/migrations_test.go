package shared

import "testing"

func TestMigrations(t *testing.T) {
	t.Run("RunMigrations", func(t *testing.T) {
		db, err := OpenJournalDB(DatabaseConfig{Path: ":memory:"})
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("migrations failed: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM journal").Scan(&count); err != nil {
			t.Fatalf("journal table missing: %v", err)
		}
		if count != 0 {
			t.Errorf("expected empty journal, got %d rows", count)
		}

		var seq int
		if err := db.QueryRow("SELECT value FROM journal_sequence WHERE id = 1").Scan(&seq); err != nil {
			t.Fatalf("sequence table missing: %v", err)
		}
		if seq != 0 {
			t.Errorf("expected sequence seeded to 0, got %d", seq)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		db, err := OpenJournalDB(DatabaseConfig{Path: ":memory:"})
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		if err := RunMigrations(db); err != nil {
			t.Fatalf("second run failed: %v", err)
		}

		var applied int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
			t.Fatalf("migrations table missing: %v", err)
		}
		if applied != 1 {
			t.Errorf("expected 1 applied migration, got %d", applied)
		}
	})

	t.Run("Rollback", func(t *testing.T) {
		db, err := OpenJournalDB(DatabaseConfig{Path: ":memory:"})
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("migrations failed: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("rollback failed: %v", err)
		}

		if err := db.QueryRow("SELECT COUNT(*) FROM journal").Scan(new(int)); err == nil {
			t.Error("expected journal table dropped after rollback")
		}

		if err := RollbackMigration(db); err == nil {
			t.Error("expected error when nothing is left to rollback")
		}
	})
}
