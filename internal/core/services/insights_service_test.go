package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/store/memory"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	gotPrompt string
	text      string
	err       error
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	return s.text, s.err
}

func newInsightsFixture(gen *stubGenerator) (context.Context, portssvc.InsightsSvcFacade) {
	dashboard := services.NewDashboardService(
		memory.NewTransactionRepository(),
		memory.NewStockRepository(),
		memory.NewBorrowRepository(),
		memory.NewCustomerRepository(),
	)
	if gen == nil {
		return context.Background(), services.NewInsightsService(dashboard, nil)
	}
	return context.Background(), services.NewInsightsService(dashboard, gen)
}

func TestGenerateInsights_NoGeneratorReturnsCannedText(t *testing.T) {
	ctx, svc := newInsightsFixture(nil)

	text, err := svc.GenerateInsights(ctx)

	require.NoError(t, err)
	assert.Contains(t, text, "not configured")
}

func TestGenerateInsights_PromptCarriesMetrics(t *testing.T) {
	gen := &stubGenerator{text: "1. Keep going."}
	ctx, svc := newInsightsFixture(gen)

	text, err := svc.GenerateInsights(ctx)

	require.NoError(t, err)
	assert.Equal(t, "1. Keep going.", text)
	assert.True(t, strings.Contains(gen.gotPrompt, "Total Revenue"))
	assert.True(t, strings.Contains(gen.gotPrompt, "Net Profit"))
}

func TestGenerateInsights_GeneratorFailureDegrades(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream down")}
	ctx, svc := newInsightsFixture(gen)

	text, err := svc.GenerateInsights(ctx)

	require.NoError(t, err)
	assert.Contains(t, text, "try again")
}
