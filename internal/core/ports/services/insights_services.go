package services

import "context"

// InsightsSvcFacade produces advisory text about the shop's current numbers.
// Generation is best-effort: when no generator is configured a canned
// message is returned instead of an error.
type InsightsSvcFacade interface {
	GenerateInsights(ctx context.Context) (string, error)
}
