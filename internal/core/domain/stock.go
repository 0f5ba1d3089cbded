package domain

import "github.com/shopspring/decimal"

// StockItem is a single inventory line.
type StockItem struct {
	StockItemID       string          `json:"stockItemID"` // Primary Key (UUID)
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Quantity          int64           `json:"quantity"` // integer >= 0
	Price             decimal.Decimal `json:"price"`    // unit price, >= 0
	LowStockThreshold int64           `json:"lowStockThreshold"`
	AuditFields
}

// IsLowStock reports whether the item has fallen to or below its configured threshold.
func (s StockItem) IsLowStock() bool {
	return s.Quantity <= s.LowStockThreshold
}

// Value returns quantity x unit price for this line.
func (s StockItem) Value() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(s.Quantity))
}
