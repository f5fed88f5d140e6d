package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
)

// JournalReaderSvc defines read operations for journal entry drafts.
type JournalReaderSvc interface {
	// GetJournalByID retrieves a journal entry by its unique identifier.
	GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntryDraft, error)

	// ListJournals retrieves a paginated list of journal entries.
	ListJournals(ctx context.Context, limit, offset int) ([]domain.JournalEntryDraft, error)
}

// JournalWriterSvc defines write operations for journal entry drafts.
type JournalWriterSvc interface {
	// CreateJournal creates a new draft. When no lines are supplied the
	// draft is seeded with two empty lines, one per side of the entry.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntryDraft, error)

	// UpdateJournal updates a DRAFT journal's header fields and lines.
	UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest) (*domain.JournalEntryDraft, error)

	// DeleteJournal removes a DRAFT journal.
	DeleteJournal(ctx context.Context, journalID string) error
}

// JournalLifecycleSvc defines validation and status transitions for journal
// entry drafts.
type JournalLifecycleSvc interface {
	// ValidateJournal runs the double-entry checks without mutating the draft.
	ValidateJournal(ctx context.Context, journalID string) (accounting.JournalValidationResult, error)

	// PostJournal moves a valid DRAFT to POSTED. An invalid draft is left
	// untouched and the violation list is returned.
	PostJournal(ctx context.Context, journalID string) (*domain.JournalEntryDraft, accounting.JournalValidationResult, error)

	// VoidJournal moves a POSTED journal to VOIDED.
	VoidJournal(ctx context.Context, journalID string) (*domain.JournalEntryDraft, error)
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalLifecycleSvc
}
