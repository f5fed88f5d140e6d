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
	"github.com/finbooks/finbooks_backend/internal/utils/validation"
)

// documentService provides invoice and bill draft operations. Every
// mutation runs the full recompute pass so the document totals invariant
// holds after every change; partial or stale totals are a defect.
type documentService struct {
	documentRepo portsrepo.DocumentRepositoryFacade
}

// NewDocumentService creates a new document service.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade) portssvc.DocumentSvcFacade {
	return &documentService{documentRepo: documentRepo}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// recompute re-derives all line amounts and document totals from the
// current line inputs. Safe to call repeatedly; identical inputs always
// produce identical totals.
func recompute(doc *domain.Document) {
	doc.Lines = accounting.ApplyLineAmounts(doc.Lines)
	totals := accounting.ComputeDocumentTotals(doc.Lines)
	doc.Subtotal = totals.Subtotal
	doc.TaxAmount = totals.TaxAmount
	doc.DiscountAmount = totals.DiscountAmount
	doc.Total = totals.Total
}

func documentNumberType(docType domain.DocumentType) string {
	switch docType {
	case domain.Invoice:
		return "INVOICE"
	case domain.Bill:
		return "BILL"
	default:
		return string(docType)
	}
}

func (s *documentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest) (*domain.Document, error) {
	if !validation.IsValidDocumentNumber(documentNumberType(req.Type), req.Number) {
		return nil, fmt.Errorf("%w: document number %q does not match the %s pattern", apperrors.ErrValidation, req.Number, req.Type)
	}

	now := time.Now()
	doc := domain.Document{
		DocumentID:     uuid.NewString(),
		Type:           req.Type,
		Number:         req.Number,
		CounterpartyID: req.CounterpartyID,
		Date:           req.Date,
		DueDate:        req.DueDate,
		Status:         domain.DocumentDraft,
		Notes:          req.Notes,
		Terms:          req.Terms,
		Lines:          dto.ToDomainLines(req.Lines),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	recompute(&doc)

	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}
	return &doc, nil
}

func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.documentRepo.FindDocumentByID(ctx, documentID)
}

func (s *documentService) ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, error) {
	limit, offset := pagination.Normalize(params.Limit, params.Offset)
	return s.documentRepo.ListDocuments(ctx, params.Type, limit, offset)
}

func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !doc.IsEditable() {
		return nil, fmt.Errorf("%w: document %s is %s and cannot be edited", apperrors.ErrConflict, documentID, doc.Status)
	}

	if req.Number != nil {
		if !validation.IsValidDocumentNumber(documentNumberType(doc.Type), *req.Number) {
			return nil, fmt.Errorf("%w: document number %q does not match the %s pattern", apperrors.ErrValidation, *req.Number, doc.Type)
		}
		doc.Number = *req.Number
	}
	if req.CounterpartyID != nil {
		doc.CounterpartyID = *req.CounterpartyID
	}
	if req.Date != nil {
		doc.Date = *req.Date
	}
	if req.DueDate != nil {
		doc.DueDate = req.DueDate
	}
	if req.Notes != nil {
		doc.Notes = *req.Notes
	}
	if req.Terms != nil {
		doc.Terms = *req.Terms
	}
	if req.Lines != nil {
		doc.Lines = dto.ToDomainLines(*req.Lines)
	}

	recompute(doc)
	doc.LastUpdatedAt = time.Now()

	if err := s.documentRepo.SaveDocument(ctx, *doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}
	return doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, documentID string) error {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.Status != domain.DocumentDraft {
		return fmt.Errorf("%w: only DRAFT documents can be deleted, document %s is %s", apperrors.ErrConflict, documentID, doc.Status)
	}
	return s.documentRepo.DeleteDocument(ctx, documentID)
}

func (s *documentService) SubmitDocument(ctx context.Context, documentID string) (*domain.Document, []string, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	if !domain.CanTransitionDocument(doc.Status, domain.DocumentSubmitted) {
		return nil, nil, fmt.Errorf("%w: document %s cannot move from %s to %s", apperrors.ErrConflict, documentID, doc.Status, domain.DocumentSubmitted)
	}

	// Totals are recomputed before validating so the submission gate never
	// judges stale numbers.
	recompute(doc)

	if violations := accounting.ValidateDocumentForSubmit(*doc); len(violations) > 0 {
		return doc, violations, nil
	}

	doc.Status = domain.DocumentSubmitted
	doc.LastUpdatedAt = time.Now()
	if err := s.documentRepo.SaveDocument(ctx, *doc); err != nil {
		return nil, nil, fmt.Errorf("failed to save document: %w", err)
	}
	return doc, nil, nil
}

func (s *documentService) MarkDocumentPaid(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.transition(ctx, documentID, domain.DocumentPaid)
}

func (s *documentService) VoidDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.transition(ctx, documentID, domain.DocumentVoided)
}

func (s *documentService) transition(ctx context.Context, documentID string, to domain.DocumentStatus) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionDocument(doc.Status, to) {
		return nil, fmt.Errorf("%w: document %s cannot move from %s to %s", apperrors.ErrConflict, documentID, doc.Status, to)
	}
	doc.Status = to
	doc.LastUpdatedAt = time.Now()
	if err := s.documentRepo.SaveDocument(ctx, *doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}
	return doc, nil
}
