package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// LineItemInput carries one document line as submitted by a form. The
// numeric fields arrive as strings so incomplete form state (blank or
// half-typed numbers) coerces to zero instead of failing the bind.
type LineItemInput struct {
	Description         string `json:"description"`
	Quantity            string `json:"quantity"`
	UnitPrice           string `json:"unitPrice"`
	TaxRatePercent      string `json:"taxRatePercent"`
	DiscountRatePercent string `json:"discountRatePercent"`
	LinkedCatalogItemID string `json:"linkedCatalogItemID,omitempty"`
}

// ToDomain converts the input into a domain line with coerced numerics.
// Derived amounts are left zero; the service recomputes them.
func (in LineItemInput) ToDomain() domain.LineItem {
	return domain.LineItem{
		Description:         in.Description,
		Quantity:            accounting.DecimalOrZero(in.Quantity),
		UnitPrice:           accounting.DecimalOrZero(in.UnitPrice),
		TaxRatePercent:      accounting.DecimalOrZero(in.TaxRatePercent),
		DiscountRatePercent: accounting.DecimalOrZero(in.DiscountRatePercent),
		LinkedCatalogItemID: in.LinkedCatalogItemID,
	}
}

// ToDomainLines converts a slice of line inputs.
func ToDomainLines(inputs []LineItemInput) []domain.LineItem {
	lines := make([]domain.LineItem, len(inputs))
	for i, in := range inputs {
		lines[i] = in.ToDomain()
	}
	return lines
}

// CreateDocumentRequest defines the payload for creating a document draft.
type CreateDocumentRequest struct {
	Type           domain.DocumentType `json:"type" binding:"required,oneof=INVOICE BILL"`
	Number         string              `json:"number" binding:"required,docnumber"`
	CounterpartyID string              `json:"counterpartyID" binding:"required"`
	Date           time.Time           `json:"date" binding:"required"`
	DueDate        *time.Time          `json:"dueDate,omitempty"`
	Notes          string              `json:"notes"`
	Terms          string              `json:"terms"`
	Lines          []LineItemInput     `json:"lines"`
}

// UpdateDocumentRequest defines the payload for updating a DRAFT document.
// Nil fields are left unchanged; a non-nil Lines replaces the whole list.
type UpdateDocumentRequest struct {
	Number         *string          `json:"number,omitempty" binding:"omitempty,docnumber"`
	CounterpartyID *string          `json:"counterpartyID,omitempty"`
	Date           *time.Time       `json:"date,omitempty"`
	DueDate        *time.Time       `json:"dueDate,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	Terms          *string          `json:"terms,omitempty"`
	Lines          *[]LineItemInput `json:"lines,omitempty"`
}

// ListDocumentsParams carries list filtering and pagination options. A
// pageToken, when present, overrides the offset.
type ListDocumentsParams struct {
	Type      *domain.DocumentType `form:"type" binding:"omitempty,oneof=INVOICE BILL"`
	Limit     int                  `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Offset    int                  `form:"offset,default=0" binding:"omitempty,min=0"`
	PageToken string               `form:"pageToken" binding:"omitempty"`
}

// ListDocumentsResponse is one page of documents plus the token of the next
// page, empty when the list is exhausted.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken string             `json:"nextToken,omitempty"`
}

// LineItemResponse is one computed line in a document response.
type LineItemResponse struct {
	Description         string          `json:"description"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	TaxRatePercent      decimal.Decimal `json:"taxRatePercent"`
	DiscountRatePercent decimal.Decimal `json:"discountRatePercent"`
	LinkedCatalogItemID string          `json:"linkedCatalogItemID,omitempty"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	Discount            decimal.Decimal `json:"discount"`
	Tax                 decimal.Decimal `json:"tax"`
	Total               decimal.Decimal `json:"total"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID     string                `json:"documentID"`
	Type           domain.DocumentType   `json:"type"`
	Number         string                `json:"number"`
	CounterpartyID string                `json:"counterpartyID"`
	Date           time.Time             `json:"date"`
	DueDate        *time.Time            `json:"dueDate,omitempty"`
	Status         domain.DocumentStatus `json:"status"`
	Notes          string                `json:"notes"`
	Terms          string                `json:"terms"`
	Lines          []LineItemResponse    `json:"lines"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	TaxAmount      decimal.Decimal       `json:"taxAmount"`
	DiscountAmount decimal.Decimal       `json:"discountAmount"`
	Total          decimal.Decimal       `json:"total"`
	CreatedAt      time.Time             `json:"createdAt"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
}

// ToDocumentResponse converts a domain.Document to its response DTO.
func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	lines := make([]LineItemResponse, len(doc.Lines))
	for i, line := range doc.Lines {
		lines[i] = LineItemResponse{
			Description:         line.Description,
			Quantity:            line.Quantity,
			UnitPrice:           line.UnitPrice,
			TaxRatePercent:      line.TaxRatePercent,
			DiscountRatePercent: line.DiscountRatePercent,
			LinkedCatalogItemID: line.LinkedCatalogItemID,
			Subtotal:            line.Subtotal,
			Discount:            line.Discount,
			Tax:                 line.Tax,
			Total:               line.Total,
		}
	}
	return DocumentResponse{
		DocumentID:     doc.DocumentID,
		Type:           doc.Type,
		Number:         doc.Number,
		CounterpartyID: doc.CounterpartyID,
		Date:           doc.Date,
		DueDate:        doc.DueDate,
		Status:         doc.Status,
		Notes:          doc.Notes,
		Terms:          doc.Terms,
		Lines:          lines,
		Subtotal:       doc.Subtotal,
		TaxAmount:      doc.TaxAmount,
		DiscountAmount: doc.DiscountAmount,
		Total:          doc.Total,
		CreatedAt:      doc.CreatedAt,
		LastUpdatedAt:  doc.LastUpdatedAt,
	}
}

// ToDocumentResponses converts a slice of domain documents.
func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentResponse(&docs[i])
	}
	return responses
}

// SubmitResultResponse reports the outcome of a submission attempt.
type SubmitResultResponse struct {
	Submitted  bool              `json:"submitted"`
	Violations []string          `json:"violations,omitempty"`
	Document   *DocumentResponse `json:"document,omitempty"`
}
