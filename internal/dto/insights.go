package dto

// InsightsResponse wraps the advisory text generated for the shop owner.
type InsightsResponse struct {
	Insights string `json:"insights"`
}
