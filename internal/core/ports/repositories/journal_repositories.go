package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// JournalRepositoryFacade defines persistence operations for journal entry
// drafts.
type JournalRepositoryFacade interface {
	// SaveJournal inserts or replaces a journal entry draft.
	SaveJournal(ctx context.Context, journal domain.JournalEntryDraft) error

	// FindJournalByID retrieves a journal entry by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntryDraft, error)

	// ListJournals retrieves journal entries ordered by creation time.
	ListJournals(ctx context.Context, limit, offset int) ([]domain.JournalEntryDraft, error)

	// DeleteJournal removes a journal entry draft.
	DeleteJournal(ctx context.Context, journalID string) error
}
