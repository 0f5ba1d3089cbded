package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBorrowStatusFor(t *testing.T) {
	amount := decimal.NewFromInt(1000000)

	assert.Equal(t, BorrowUnpaid, BorrowStatusFor(amount, decimal.Zero))
	assert.Equal(t, BorrowPartiallyPaid, BorrowStatusFor(amount, decimal.NewFromInt(250000)))
	assert.Equal(t, BorrowPaid, BorrowStatusFor(amount, amount))
	assert.Equal(t, BorrowPaid, BorrowStatusFor(amount, decimal.NewFromInt(1500000)))
}

func TestBorrowOutstanding(t *testing.T) {
	rec := BorrowRecord{
		Amount:     decimal.NewFromInt(500000),
		AmountPaid: decimal.NewFromInt(200000),
	}
	assert.True(t, rec.Outstanding().Equal(decimal.NewFromInt(300000)))

	// Overpayment must never yield negative debt.
	rec.AmountPaid = decimal.NewFromInt(600000)
	assert.True(t, rec.Outstanding().Equal(decimal.Zero))
}
