package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// JournalLineInput carries one debit/credit row as submitted by a form.
// Amounts arrive as strings and coerce to zero when blank or unparseable.
type JournalLineInput struct {
	AccountID   string `json:"accountID"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Description string `json:"description,omitempty"`
}

// ToDomain converts the input into a domain journal line.
func (in JournalLineInput) ToDomain() domain.JournalLine {
	return domain.JournalLine{
		AccountID:   in.AccountID,
		Debit:       accounting.DecimalOrZero(in.Debit),
		Credit:      accounting.DecimalOrZero(in.Credit),
		Description: in.Description,
	}
}

// ToDomainJournalLines converts a slice of journal line inputs.
func ToDomainJournalLines(inputs []JournalLineInput) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(inputs))
	for i, in := range inputs {
		lines[i] = in.ToDomain()
	}
	return lines
}

// CreateJournalRequest defines the payload for creating a journal draft.
// Everything is optional at creation time; the double-entry checks only
// gate posting, never drafting.
type CreateJournalRequest struct {
	Date        time.Time          `json:"date"`
	Reference   string             `json:"reference"`
	Description string             `json:"description"`
	Lines       []JournalLineInput `json:"lines"`
}

// UpdateJournalRequest defines the payload for updating a DRAFT journal.
// Nil fields are left unchanged; a non-nil Lines replaces the whole list.
type UpdateJournalRequest struct {
	Date        *time.Time          `json:"date,omitempty"`
	Reference   *string             `json:"reference,omitempty"`
	Description *string             `json:"description,omitempty"`
	Lines       *[]JournalLineInput `json:"lines,omitempty"`
}

// JournalLineResponse is one row in a journal response.
type JournalLineResponse struct {
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// JournalResponse defines the data returned for a journal entry draft.
type JournalResponse struct {
	JournalID     string                `json:"journalID"`
	Date          time.Time             `json:"date"`
	Reference     string                `json:"reference"`
	Description   string                `json:"description"`
	Status        domain.JournalStatus  `json:"status"`
	Lines         []JournalLineResponse `json:"lines"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
}

// ToJournalResponse converts a domain.JournalEntryDraft to its response DTO.
func ToJournalResponse(j *domain.JournalEntryDraft) JournalResponse {
	lines := make([]JournalLineResponse, len(j.Lines))
	for i, line := range j.Lines {
		lines[i] = JournalLineResponse{
			AccountID:   line.AccountID,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Description: line.Description,
		}
	}
	return JournalResponse{
		JournalID:     j.JournalID,
		Date:          j.Date,
		Reference:     j.Reference,
		Description:   j.Description,
		Status:        j.Status,
		Lines:         lines,
		CreatedAt:     j.CreatedAt,
		LastUpdatedAt: j.LastUpdatedAt,
	}
}

// ToJournalResponses converts a slice of domain journal drafts.
func ToJournalResponses(journals []domain.JournalEntryDraft) []JournalResponse {
	responses := make([]JournalResponse, len(journals))
	for i := range journals {
		responses[i] = ToJournalResponse(&journals[i])
	}
	return responses
}

// ListJournalsResponse is one page of journal drafts plus the token of the
// next page, empty when the list is exhausted.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken string            `json:"nextToken,omitempty"`
}

// PostResultResponse reports the outcome of a posting attempt.
type PostResultResponse struct {
	Posted     bool             `json:"posted"`
	Violations []string         `json:"violations,omitempty"`
	Journal    *JournalResponse `json:"journal,omitempty"`
}
