package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType distinguishes sales documents from purchase documents.
type DocumentType string

const (
	Invoice DocumentType = "INVOICE" // sales document, counterparty is a customer
	Bill    DocumentType = "BILL"    // purchase document, counterparty is a vendor
)

// DocumentStatus indicates the lifecycle state of an invoice or bill.
type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "DRAFT"
	DocumentSubmitted DocumentStatus = "SUBMITTED"
	DocumentPaid      DocumentStatus = "PAID"
	DocumentVoided    DocumentStatus = "VOIDED"
)

// CanTransitionDocument reports whether a document status change is legal.
// PAID and VOIDED are terminal; there is no path back to DRAFT.
func CanTransitionDocument(from, to DocumentStatus) bool {
	switch from {
	case DocumentDraft:
		return to == DocumentSubmitted || to == DocumentVoided
	case DocumentSubmitted:
		return to == DocumentPaid || to == DocumentVoided
	default:
		return false
	}
}

// LineItem is one sellable/purchasable row on an invoice or bill.
// Quantity, unit price and the two rates are the source of truth; the
// per-line amounts are always re-derived from them, never edited directly.
type LineItem struct {
	Description         string          `json:"description"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	TaxRatePercent      decimal.Decimal `json:"taxRatePercent"`
	DiscountRatePercent decimal.Decimal `json:"discountRatePercent"`
	LinkedCatalogItemID string          `json:"linkedCatalogItemID,omitempty"` // reference to an external catalog entity

	// Derived amounts, recomputed on every mutation.
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Document represents an invoice or a bill with its ordered line items.
// Line order is meaningful for display only, not for calculation.
type Document struct {
	DocumentID     string         `json:"documentID"` // Primary Key (e.g., UUID)
	Type           DocumentType   `json:"type"`
	Number         string         `json:"number"`         // business identifier, format-validated
	CounterpartyID string         `json:"counterpartyID"` // customer for INVOICE, vendor for BILL
	Date           time.Time      `json:"date"`
	DueDate        *time.Time     `json:"dueDate,omitempty"`
	Status         DocumentStatus `json:"status"`
	Notes          string         `json:"notes"`
	Terms          string         `json:"terms"`
	Lines          []LineItem     `json:"lines"`

	// Derived totals; always equal the aggregation of the current lines.
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Total          decimal.Decimal `json:"total"`

	AuditFields
}

// IsEditable reports whether the document's lines may still be changed.
func (d Document) IsEditable() bool {
	return d.Status == DocumentDraft
}
