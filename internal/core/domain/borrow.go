package domain

import "github.com/shopspring/decimal"

// BorrowStatus is the repayment state of a borrow record.
type BorrowStatus string

const (
	BorrowUnpaid        BorrowStatus = "Unpaid"
	BorrowPartiallyPaid BorrowStatus = "Partially Paid"
	BorrowPaid          BorrowStatus = "Paid"
)

// BorrowRecord tracks money borrowed from a lender and how much of it
// has been repaid. Status is always recomputed from AmountPaid vs Amount;
// it is never set directly by a caller.
type BorrowRecord struct {
	BorrowID   string          `json:"borrowID"` // Primary Key (UUID)
	Lender     string          `json:"lender"`
	Amount     decimal.Decimal `json:"amount"`     // positive value
	AmountPaid decimal.Decimal `json:"amountPaid"` // >= 0
	Date       string          `json:"date"`       // calendar date, DateLayout
	DueDate    string          `json:"dueDate"`    // calendar date, DateLayout
	Status     BorrowStatus    `json:"status"`     // derived, see BorrowStatusFor
	AuditFields
}

// BorrowStatusFor derives the repayment status from the paid amount.
// Paid when amountPaid >= amount, Partially Paid when 0 < amountPaid < amount,
// Unpaid otherwise.
func BorrowStatusFor(amount, amountPaid decimal.Decimal) BorrowStatus {
	switch {
	case amountPaid.GreaterThanOrEqual(amount):
		return BorrowPaid
	case amountPaid.IsPositive():
		return BorrowPartiallyPaid
	default:
		return BorrowUnpaid
	}
}

// Outstanding returns the unpaid balance, floored at zero so overpayment
// never produces a negative debt.
func (b BorrowRecord) Outstanding() decimal.Decimal {
	outstanding := b.Amount.Sub(b.AmountPaid)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}
