package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// DocumentReaderSvc defines read operations for invoice and bill drafts.
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves a specific document by its unique identifier.
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments retrieves a paginated list of documents, optionally
	// filtered by document type.
	ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, error)
}

// DocumentWriterSvc defines write operations for invoice and bill drafts.
// Every mutation recomputes all derived line amounts and document totals.
type DocumentWriterSvc interface {
	// CreateDocument creates a new document draft.
	CreateDocument(ctx context.Context, req dto.CreateDocumentRequest) (*domain.Document, error)

	// UpdateDocument updates a DRAFT document and recomputes its totals.
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest) (*domain.Document, error)

	// DeleteDocument removes a DRAFT document.
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentLifecycleSvc defines status transitions for documents.
type DocumentLifecycleSvc interface {
	// SubmitDocument validates the draft and, when clean, moves it to
	// SUBMITTED. On validation failure the violation list is returned and
	// the document is left untouched.
	SubmitDocument(ctx context.Context, documentID string) (*domain.Document, []string, error)

	// MarkDocumentPaid moves a SUBMITTED document to PAID.
	MarkDocumentPaid(ctx context.Context, documentID string) (*domain.Document, error)

	// VoidDocument moves a DRAFT or SUBMITTED document to VOIDED.
	VoidDocument(ctx context.Context, documentID string) (*domain.Document, error)
}

// DocumentSvcFacade combines all document-related service interfaces.
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
	DocumentLifecycleSvc
}
