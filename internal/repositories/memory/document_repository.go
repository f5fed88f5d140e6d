// Package memory holds mutex-guarded in-process repositories for draft
// working state. Durable persistence of finalized records belongs to the
// external accounting backend; these stores only need to outlive a request.
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

// DocumentRepository is an in-memory implementation of the document
// repository facade.
type DocumentRepository struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentRepository creates an empty in-memory document repository.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{documents: make(map[string]domain.Document)}
}

var _ portsrepo.DocumentRepositoryFacade = (*DocumentRepository)(nil)

// SaveDocument inserts or replaces a document draft.
func (r *DocumentRepository) SaveDocument(_ context.Context, doc domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.documents[doc.DocumentID] = doc
	return nil
}

// FindDocumentByID retrieves a document by ID.
func (r *DocumentRepository) FindDocumentByID(_ context.Context, documentID string) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.documents[documentID]
	if !ok {
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	return &doc, nil
}

// ListDocuments returns documents ordered by creation time, optionally
// filtered by type.
func (r *DocumentRepository) ListDocuments(_ context.Context, docType *domain.DocumentType, limit, offset int) ([]domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]domain.Document, 0, len(r.documents))
	for _, doc := range r.documents {
		if docType != nil && doc.Type != *docType {
			continue
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].DocumentID < docs[j].DocumentID
		}
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})

	return paginate(docs, limit, offset), nil
}

// DeleteDocument removes a document draft. Deleting a missing document is
// reported as not found.
func (r *DocumentRepository) DeleteDocument(_ context.Context, documentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.documents[documentID]; !ok {
		return fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	delete(r.documents, documentID)
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
