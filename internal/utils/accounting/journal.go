package accounting

import (
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// balanceTolerance absorbs floating-point and rounding noise when comparing
// debit and credit sums. It is not a business allowance for being slightly
// unbalanced.
var balanceTolerance = decimal.RequireFromString("0.01")

// JournalValidationResult reports the outcome of validating a journal draft.
type JournalValidationResult struct {
	IsValid    bool     `json:"isValid"`
	Violations []string `json:"violations"`
}

// ValidateJournalDraft checks the double-entry invariants on a journal draft.
// All checks run and every violation is collected so the caller can show the
// full list at once. The draft is never mutated.
//
// A nil line slice is a caller contract violation and panics.
func ValidateJournalDraft(draft domain.JournalEntryDraft) JournalValidationResult {
	if draft.Lines == nil {
		panic("accounting: ValidateJournalDraft called with nil lines")
	}

	violations := []string{}

	if draft.Date.IsZero() {
		violations = append(violations, "date is required")
	}
	if draft.Reference == "" {
		violations = append(violations, "reference is required")
	}
	if draft.Description == "" {
		violations = append(violations, "description is required")
	}

	for i, line := range draft.Lines {
		if line.AccountID == "" {
			violations = append(violations, fmt.Sprintf("line %d: account is required", i+1))
		}
	}

	debitSum := decimal.Zero
	creditSum := decimal.Zero
	hasDebit := false
	hasCredit := false
	for _, line := range draft.Lines {
		if line.Debit.IsPositive() {
			hasDebit = true
		}
		if line.Credit.IsPositive() {
			hasCredit = true
		}
		debitSum = debitSum.Add(line.Debit)
		creditSum = creditSum.Add(line.Credit)
	}

	// The has-debit and has-credit checks fire independently of the balance
	// check: two debit-only lines are invalid even though zero credits do not
	// trip the tolerance rule by themselves.
	if !hasDebit {
		violations = append(violations, "at least one line must have a debit amount")
	}
	if !hasCredit {
		violations = append(violations, "at least one line must have a credit amount")
	}

	if debitSum.Sub(creditSum).Abs().GreaterThan(balanceTolerance) {
		violations = append(violations, fmt.Sprintf("journal is not balanced: debits total %s, credits total %s",
			debitSum.StringFixed(2), creditSum.StringFixed(2)))
	}

	return JournalValidationResult{
		IsValid:    len(violations) == 0,
		Violations: violations,
	}
}
