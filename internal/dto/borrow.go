package dto

import (
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBorrowRequest defines the data needed to record a borrow.
// AmountPaid and status are server-assigned on creation (0 and Unpaid).
type CreateBorrowRequest struct {
	Lender  string          `json:"lender" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date" binding:"required,datetime=2006-01-02"`
	DueDate string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

// UpdateBorrowRequest carries the full edited record. Any status supplied by
// the client is ignored; the server derives it from AmountPaid vs Amount.
type UpdateBorrowRequest struct {
	Lender     string          `json:"lender" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Date       string          `json:"date" binding:"required,datetime=2006-01-02"`
	DueDate    string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Status     string          `json:"status"` // accepted but always recomputed
}

// BorrowResponse defines the data returned for a borrow record.
type BorrowResponse struct {
	BorrowID      string              `json:"borrowID"`
	Lender        string              `json:"lender"`
	Amount        decimal.Decimal     `json:"amount"`
	AmountPaid    decimal.Decimal     `json:"amountPaid"`
	Outstanding   decimal.Decimal     `json:"outstanding"`
	Date          string              `json:"date"`
	DueDate       string              `json:"dueDate"`
	Status        domain.BorrowStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToBorrowResponse converts a domain.BorrowRecord to BorrowResponse DTO
func ToBorrowResponse(b *domain.BorrowRecord) BorrowResponse {
	return BorrowResponse{
		BorrowID:      b.BorrowID,
		Lender:        b.Lender,
		Amount:        b.Amount,
		AmountPaid:    b.AmountPaid,
		Outstanding:   b.Outstanding(),
		Date:          b.Date,
		DueDate:       b.DueDate,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ListBorrowsResponse wraps the borrow collection snapshot.
type ListBorrowsResponse struct {
	Borrows []BorrowResponse `json:"borrows"`
}

// ToListBorrowsResponse converts a collection snapshot to its DTO form.
func ToListBorrowsResponse(recs []domain.BorrowRecord) ListBorrowsResponse {
	res := make([]BorrowResponse, len(recs))
	for i, b := range recs {
		res[i] = ToBorrowResponse(&b)
	}
	return ListBorrowsResponse{Borrows: res}
}
