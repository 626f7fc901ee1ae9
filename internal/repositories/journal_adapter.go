package repositories

import "fmt"

// JournalAdapter implements tasks.JournalRecorder using JournalRepository.
type JournalAdapter struct {
	repo *JournalRepository
}

// NewJournalAdapter creates a new JournalAdapter with the given repository
func NewJournalAdapter(repo *JournalRepository) *JournalAdapter {
	return &JournalAdapter{repo: repo}
}

// RecordSave journals a create or same-author edit.
func (a *JournalAdapter) RecordSave(videoID int64, videoName string, authorID int64) error {
	err := a.repo.Append(&JournalEntry{
		Operation: OpSave,
		VideoID:   videoID,
		VideoName: videoName,
		AuthorID:  authorID,
	})
	if err != nil {
		return fmt.Errorf("failed to journal save: %w", err)
	}
	return nil
}

// RecordMove journals an edit that reassigned the video's author.
func (a *JournalAdapter) RecordMove(videoID int64, videoName string, authorID, prevAuthorID int64) error {
	prev := prevAuthorID
	err := a.repo.Append(&JournalEntry{
		Operation:    OpMove,
		VideoID:      videoID,
		VideoName:    videoName,
		AuthorID:     authorID,
		PrevAuthorID: &prev,
	})
	if err != nil {
		return fmt.Errorf("failed to journal move: %w", err)
	}
	return nil
}

// RecordDelete journals a video removal.
func (a *JournalAdapter) RecordDelete(videoID int64, videoName string, authorID int64) error {
	err := a.repo.Append(&JournalEntry{
		Operation: OpDelete,
		VideoID:   videoID,
		VideoName: videoName,
		AuthorID:  authorID,
	})
	if err != nil {
		return fmt.Errorf("failed to journal delete: %w", err)
	}
	return nil
}
