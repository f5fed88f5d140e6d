package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
	"github.com/finbooks/finbooks_backend/internal/utils/pagination"
)

// journalService provides journal entry draft operations. The balance
// validator is advisory: it gates the POST transition here, but the external
// ledger remains the authority on accepted entries.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntryDraft, error) {
	lines := dto.ToDomainJournalLines(req.Lines)
	if len(lines) == 0 {
		// A fresh draft starts with one row per side of the entry.
		lines = []domain.JournalLine{{}, {}}
	}

	now := time.Now()
	journal := domain.JournalEntryDraft{
		JournalID:   uuid.NewString(),
		Date:        req.Date,
		Reference:   req.Reference,
		Description: req.Description,
		Status:      domain.JournalDraft,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}
	return &journal, nil
}

func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntryDraft, error) {
	return s.journalRepo.FindJournalByID(ctx, journalID)
}

func (s *journalService) ListJournals(ctx context.Context, limit, offset int) ([]domain.JournalEntryDraft, error) {
	limit, offset = pagination.Normalize(limit, offset)
	return s.journalRepo.ListJournals(ctx, limit, offset)
}

func (s *journalService) UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest) (*domain.JournalEntryDraft, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if !journal.IsEditable() {
		return nil, fmt.Errorf("%w: journal %s is %s and cannot be edited", apperrors.ErrConflict, journalID, journal.Status)
	}

	if req.Date != nil {
		journal.Date = *req.Date
	}
	if req.Reference != nil {
		journal.Reference = *req.Reference
	}
	if req.Description != nil {
		journal.Description = *req.Description
	}
	if req.Lines != nil {
		journal.Lines = dto.ToDomainJournalLines(*req.Lines)
	}
	journal.LastUpdatedAt = time.Now()

	if err := s.journalRepo.SaveJournal(ctx, *journal); err != nil {
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}
	return journal, nil
}

func (s *journalService) DeleteJournal(ctx context.Context, journalID string) error {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return err
	}
	if journal.Status != domain.JournalDraft {
		return fmt.Errorf("%w: only DRAFT journals can be deleted, journal %s is %s", apperrors.ErrConflict, journalID, journal.Status)
	}
	return s.journalRepo.DeleteJournal(ctx, journalID)
}

func (s *journalService) ValidateJournal(ctx context.Context, journalID string) (accounting.JournalValidationResult, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return accounting.JournalValidationResult{}, err
	}
	return accounting.ValidateJournalDraft(*journal), nil
}

func (s *journalService) PostJournal(ctx context.Context, journalID string) (*domain.JournalEntryDraft, accounting.JournalValidationResult, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, accounting.JournalValidationResult{}, err
	}
	if !domain.CanTransitionJournal(journal.Status, domain.JournalPosted) {
		return nil, accounting.JournalValidationResult{}, fmt.Errorf("%w: journal %s cannot move from %s to %s",
			apperrors.ErrConflict, journalID, journal.Status, domain.JournalPosted)
	}

	result := accounting.ValidateJournalDraft(*journal)
	if !result.IsValid {
		return journal, result, nil
	}

	journal.Status = domain.JournalPosted
	journal.LastUpdatedAt = time.Now()
	if err := s.journalRepo.SaveJournal(ctx, *journal); err != nil {
		return nil, accounting.JournalValidationResult{}, fmt.Errorf("failed to save journal: %w", err)
	}
	return journal, result, nil
}

func (s *journalService) VoidJournal(ctx context.Context, journalID string) (*domain.JournalEntryDraft, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionJournal(journal.Status, domain.JournalVoided) {
		return nil, fmt.Errorf("%w: journal %s cannot move from %s to %s",
			apperrors.ErrConflict, journalID, journal.Status, domain.JournalVoided)
	}
	journal.Status = domain.JournalVoided
	journal.LastUpdatedAt = time.Now()
	if err := s.journalRepo.SaveJournal(ctx, *journal); err != nil {
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}
	return journal, nil
}
