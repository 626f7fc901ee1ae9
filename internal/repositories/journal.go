package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/vidcat/internal/shared"
)

// Operation labels for journal entries.
const (
	OpSave   = "save"   // create or same-author edit
	OpDelete = "delete" // video removed from catalog
	OpMove   = "move"   // edit that reassigned the author
)

// JournalEntry records one completed catalog workflow.
type JournalEntry struct {
	ID           string
	Sequence     int
	Operation    string
	VideoID      int64
	VideoName    string
	AuthorID     int64
	PrevAuthorID *int64 // set only for moves
	CreatedAt    time.Time
}

// JournalRepository appends and reads workflow audit records.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new JournalRepository with the given database connection
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Append inserts a new journal entry with generated ID and sequence.
func (r *JournalRepository) Append(entry *JournalEntry) error {
	if entry.Operation != OpSave && entry.Operation != OpDelete && entry.Operation != OpMove {
		return fmt.Errorf("unknown journal operation: %q", entry.Operation)
	}

	sequence, err := NextSequence(r.db, "journal")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	entry.ID = shared.GenerateID()
	entry.Sequence = sequence
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO journal (id, sequence, operation, video_id, video_name, author_id, prev_author_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		entry.ID,
		entry.Sequence,
		entry.Operation,
		entry.VideoID,
		entry.VideoName,
		entry.AuthorID,
		entry.PrevAuthorID,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return nil
}

// List retrieves journal entries newest first, up to limit (0 for all).
func (r *JournalRepository) List(limit int) ([]JournalEntry, error) {
	query := `
		SELECT id, sequence, operation, video_id, video_name, author_id, prev_author_id, created_at
		FROM journal
		ORDER BY sequence DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var prev sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Operation, &e.VideoID, &e.VideoName, &e.AuthorID, &prev, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		if prev.Valid {
			v := prev.Int64
			e.PrevAuthorID = &v
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal: %w", err)
	}

	return entries, nil
}

// CountByOperation returns how many entries exist per operation label.
func (r *JournalRepository) CountByOperation() (map[string]int, error) {
	rows, err := r.db.Query("SELECT operation, COUNT(*) FROM journal GROUP BY operation")
	if err != nil {
		return nil, fmt.Errorf("failed to count journal entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var op string
		var n int
		if err := rows.Scan(&op, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[op] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counts: %w", err)
	}

	return counts, nil
}
