package domain

import "time"

// DateLayout is the calendar-date format used for all date fields (e.g. "2025-08-31").
const DateLayout = "2006-01-02"

// TimeOfDayLayout is the clock format used for reminder times (e.g. "09:00").
const TimeOfDayLayout = "15:04"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
