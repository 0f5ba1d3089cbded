package domain

// Wholesaler is a supplier in the shop's roster.
type Wholesaler struct {
	WholesalerID    string `json:"wholesalerID"` // Primary Key (UUID)
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	ProductCategory string `json:"productCategory"`
	AuditFields
}
