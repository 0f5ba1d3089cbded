package domain

// BodaDriver is a delivery driver in the shop's roster.
// Drivers are available by default when added.
type BodaDriver struct {
	DriverID  string `json:"driverID"` // Primary Key (UUID)
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Available bool   `json:"available"`
	AuditFields
}
