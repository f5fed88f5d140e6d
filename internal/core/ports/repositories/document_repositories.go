package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// DocumentRepositoryFacade defines persistence operations for document
// drafts. Drafts are per-process working state; durable storage of finalized
// documents belongs to the external backend.
type DocumentRepositoryFacade interface {
	// SaveDocument inserts or replaces a document draft.
	SaveDocument(ctx context.Context, doc domain.Document) error

	// FindDocumentByID retrieves a document by its unique identifier.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments retrieves documents, optionally filtered by type.
	ListDocuments(ctx context.Context, docType *domain.DocumentType, limit, offset int) ([]domain.Document, error)

	// DeleteDocument removes a document draft.
	DeleteDocument(ctx context.Context, documentID string) error
}
