package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry draft.
type JournalStatus string

const (
	JournalDraft  JournalStatus = "DRAFT"
	JournalPosted JournalStatus = "POSTED"
	JournalVoided JournalStatus = "VOIDED"
)

// CanTransitionJournal reports whether a journal status change is legal.
// DRAFT may be posted, POSTED may be voided; nothing returns to DRAFT.
func CanTransitionJournal(from, to JournalStatus) bool {
	switch {
	case from == JournalDraft && to == JournalPosted:
		return true
	case from == JournalPosted && to == JournalVoided:
		return true
	default:
		return false
	}
}

// JournalLine is a single debit or credit row within a journal entry draft.
type JournalLine struct {
	AccountID   string          `json:"accountID"` // reference to the external chart of accounts
	Debit       decimal.Decimal `json:"debit"`     // >= 0
	Credit      decimal.Decimal `json:"credit"`    // >= 0
	Description string          `json:"description,omitempty"`
}

// JournalEntryDraft is a working double-entry record. It is only a draft
// from this service's point of view; the external ledger is the authority
// on whether a posted entry is accepted.
type JournalEntryDraft struct {
	JournalID   string        `json:"journalID"` // Primary Key (e.g., UUID)
	Date        time.Time     `json:"date"`
	Reference   string        `json:"reference"`
	Description string        `json:"description"`
	Status      JournalStatus `json:"status"`
	Lines       []JournalLine `json:"lines"`
	AuditFields
}

// IsEditable reports whether the draft's lines may still be changed.
// POSTED and VOIDED are terminal with respect to line edits.
func (j JournalEntryDraft) IsEditable() bool {
	return j.Status == JournalDraft
}
