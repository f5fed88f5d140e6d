package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
)

// JournalRepository is an in-memory implementation of the journal
// repository facade.
type JournalRepository struct {
	mu       sync.RWMutex
	journals map[string]domain.JournalEntryDraft
}

// NewJournalRepository creates an empty in-memory journal repository.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{journals: make(map[string]domain.JournalEntryDraft)}
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

// SaveJournal inserts or replaces a journal entry draft.
func (r *JournalRepository) SaveJournal(_ context.Context, journal domain.JournalEntryDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.journals[journal.JournalID] = journal
	return nil
}

// FindJournalByID retrieves a journal entry by ID.
func (r *JournalRepository) FindJournalByID(_ context.Context, journalID string) (*domain.JournalEntryDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	journal, ok := r.journals[journalID]
	if !ok {
		return nil, fmt.Errorf("%w: journal %s", apperrors.ErrNotFound, journalID)
	}
	return &journal, nil
}

// ListJournals returns journal entries ordered by creation time.
func (r *JournalRepository) ListJournals(_ context.Context, limit, offset int) ([]domain.JournalEntryDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	journals := make([]domain.JournalEntryDraft, 0, len(r.journals))
	for _, journal := range r.journals {
		journals = append(journals, journal)
	}

	sort.Slice(journals, func(i, j int) bool {
		if journals[i].CreatedAt.Equal(journals[j].CreatedAt) {
			return journals[i].JournalID < journals[j].JournalID
		}
		return journals[i].CreatedAt.Before(journals[j].CreatedAt)
	})

	return paginate(journals, limit, offset), nil
}

// DeleteJournal removes a journal entry draft.
func (r *JournalRepository) DeleteJournal(_ context.Context, journalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.journals[journalID]; !ok {
		return fmt.Errorf("%w: journal %s", apperrors.ErrNotFound, journalID)
	}
	delete(r.journals, journalID)
	return nil
}
