package services

import (
	"context"
	"fmt"
	"log/slog"

	portsins "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/insights"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
)

const insightsUnavailable = "AI insights are not configured. Set a Gemini API key to get personalised advice about your shop's finances."

// insightsService implements the InsightsSvcFacade interface.
// It feeds the current dashboard metrics to a text generator and returns
// whatever advice comes back. A nil generator degrades to a canned message.
type insightsService struct {
	BaseService
	dashboard portssvc.DashboardSvcFacade
	generator portsins.TextGenerator
}

// NewInsightsService creates a new insights service. generator may be nil.
func NewInsightsService(dashboard portssvc.DashboardSvcFacade, generator portsins.TextGenerator) portssvc.InsightsSvcFacade {
	return &insightsService{dashboard: dashboard, generator: generator}
}

var _ portssvc.InsightsSvcFacade = (*insightsService)(nil)

func (s *insightsService) GenerateInsights(ctx context.Context) (string, error) {
	if s.generator == nil {
		return insightsUnavailable, nil
	}

	summary, err := s.dashboard.Summary(ctx)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are a business advisor for a small retail shop in Uganda.
Given these figures, provide 3 concise, actionable insights to improve the business.
Keep the language simple and encouraging.

Total Revenue: UGX %s
Total Expenses: UGX %s
Net Profit: UGX %s
Stock Value: UGX %s
Outstanding Debt Owed to Lenders: UGX %s
Credit Extended to Customers: UGX %s
Items Low on Stock: %d`,
		summary.TotalRevenue, summary.TotalExpenses, summary.NetProfit,
		summary.TotalStockValue, summary.TotalDebt, summary.TotalCreditExtended,
		len(summary.LowStockItems))

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Insight generation failed, returning fallback message")
		return "Could not generate insights right now. Please try again later.", nil
	}

	s.LogInfo(ctx, "Insights generated", slog.Int("length", len(text)))
	return text, nil
}
