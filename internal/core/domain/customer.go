package domain

import "github.com/shopspring/decimal"

// Customer is a shop customer tracked for credit purposes.
// CreditUsed is edited explicitly; it is never derived from transactions
// or borrow records.
type Customer struct {
	CustomerID  string          `json:"customerID"` // Primary Key (UUID)
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	CreditLimit decimal.Decimal `json:"creditLimit"` // >= 0
	CreditUsed  decimal.Decimal `json:"creditUsed"`  // >= 0, no ceiling enforced at write time
	AuditFields
}
