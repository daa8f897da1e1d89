package budgeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

func newTestOptimizer() *Optimizer {
	return New(config.DefaultPolicy().Budget)
}

func totalRecommended(plan *domain.BudgetPlan) float64 {
	total := 0.0
	for _, allocation := range plan.Allocations {
		total += allocation.RecommendedBudget
	}
	return total
}

func TestOptimize_RealocaDoPiorParaOMelhor(t *testing.T) {
	optimizer := newTestOptimizer()

	entries := []domain.BudgetEntry{
		{Entity: "CAMP01", EntityName: "Prospecção", CurrentBudget: 1000.0, CurrentRoas: 2.0},
		{Entity: "CAMP02", EntityName: "Remarketing", CurrentBudget: 1000.0, CurrentRoas: 10.0},
	}

	plan := optimizer.Optimize(entries)

	assert.Equal(t, 2000.0, plan.TotalBudget)
	assert.Equal(t, 6.0, plan.CurrentTotalRoas)
	assert.Len(t, plan.Allocations, 2)

	// O doador cede até o teto de 50% do próprio orçamento
	donor := plan.Allocations[0]
	receiver := plan.Allocations[1]
	assert.Equal(t, "CAMP01", donor.Entity)
	assert.Equal(t, 500.0, donor.RecommendedBudget)
	assert.Equal(t, -500.0, donor.Delta)
	assert.Equal(t, 1500.0, receiver.RecommendedBudget)
	assert.Equal(t, 500.0, receiver.Delta)
	assert.NotEmpty(t, donor.Rationale)
	assert.NotEmpty(t, receiver.Rationale)

	// ROAS marginal do destino: 10 x (1 - 0.3) = 7 contra 2 da origem
	assert.Equal(t, 7.25, plan.ExpectedTotalRoas)
}

func TestOptimize_ConservacaoDoOrcamento(t *testing.T) {
	optimizer := newTestOptimizer()

	entries := []domain.BudgetEntry{
		{Entity: "CAMP01", CurrentBudget: 800.0, CurrentRoas: 1.5},
		{Entity: "CAMP02", CurrentBudget: 1200.0, CurrentRoas: 4.0},
		{Entity: "CAMP03", CurrentBudget: 500.0, CurrentRoas: 9.0},
		{Entity: "CAMP04", CurrentBudget: 300.0, CurrentRoas: 12.0},
	}

	plan := optimizer.Optimize(entries)

	assert.InDelta(t, plan.TotalBudget, totalRecommended(plan), 0.01)
	assert.GreaterOrEqual(t, plan.ExpectedTotalRoas, plan.CurrentTotalRoas)
}

func TestOptimize_ElasticidadeBloqueiaTrocaMarginal(t *testing.T) {
	optimizer := newTestOptimizer()

	// ROAS marginal do melhor destino: 5 x 0.7 = 3.5, abaixo dos 4 da origem.
	// Nenhuma troca melhora a projeção e o plano mantém a alocação.
	entries := []domain.BudgetEntry{
		{Entity: "CAMP01", CurrentBudget: 1000.0, CurrentRoas: 4.0},
		{Entity: "CAMP02", CurrentBudget: 1000.0, CurrentRoas: 5.0},
	}

	plan := optimizer.Optimize(entries)

	for _, allocation := range plan.Allocations {
		assert.Equal(t, 0.0, allocation.Delta)
		assert.Equal(t, allocation.CurrentBudget, allocation.RecommendedBudget)
	}
	assert.Equal(t, plan.CurrentTotalRoas, plan.ExpectedTotalRoas)
}

func TestOptimize_TetoDeRecebimentoLimitaOReceptor(t *testing.T) {
	optimizer := newTestOptimizer()

	// O receptor só pode receber 50% do próprio orçamento (100), mesmo com
	// muito mais verba disponível nos doadores
	entries := []domain.BudgetEntry{
		{Entity: "CAMP01", CurrentBudget: 2000.0, CurrentRoas: 1.0},
		{Entity: "CAMP02", CurrentBudget: 200.0, CurrentRoas: 10.0},
	}

	plan := optimizer.Optimize(entries)

	assert.Equal(t, 300.0, plan.Allocations[1].RecommendedBudget)
	assert.Equal(t, 1900.0, plan.Allocations[0].RecommendedBudget)
	assert.InDelta(t, plan.TotalBudget, totalRecommended(plan), 0.01)
}

func TestOptimize_CasosDegenerados(t *testing.T) {
	optimizer := newTestOptimizer()

	t.Run("Entidade única mantém a alocação", func(t *testing.T) {
		plan := optimizer.Optimize([]domain.BudgetEntry{
			{Entity: "CAMP01", CurrentBudget: 1000.0, CurrentRoas: 3.0},
		})

		assert.Len(t, plan.Allocations, 1)
		assert.Equal(t, 0.0, plan.Allocations[0].Delta)
		assert.Equal(t, 1000.0, plan.Allocations[0].RecommendedBudget)
	})

	t.Run("Orçamento total zero mantém a alocação", func(t *testing.T) {
		plan := optimizer.Optimize([]domain.BudgetEntry{
			{Entity: "CAMP01", CurrentBudget: 0, CurrentRoas: 3.0},
			{Entity: "CAMP02", CurrentBudget: 0, CurrentRoas: 6.0},
		})

		assert.Equal(t, 0.0, plan.TotalBudget)
		for _, allocation := range plan.Allocations {
			assert.Equal(t, 0.0, allocation.Delta)
		}
	})

	t.Run("ROAS uniforme não gera doadores nem receptores", func(t *testing.T) {
		plan := optimizer.Optimize([]domain.BudgetEntry{
			{Entity: "CAMP01", CurrentBudget: 500.0, CurrentRoas: 4.0},
			{Entity: "CAMP02", CurrentBudget: 500.0, CurrentRoas: 4.0},
		})

		for _, allocation := range plan.Allocations {
			assert.Equal(t, 0.0, allocation.Delta)
		}
	})

	t.Run("Sem entidades o plano sai vazio", func(t *testing.T) {
		plan := optimizer.Optimize([]domain.BudgetEntry{})

		assert.Empty(t, plan.Allocations)
		assert.Equal(t, 0.0, plan.TotalBudget)
	})
}

func TestOptimize_Deterministico(t *testing.T) {
	optimizer := newTestOptimizer()

	entries := []domain.BudgetEntry{
		{Entity: "CAMP03", CurrentBudget: 400.0, CurrentRoas: 8.0},
		{Entity: "CAMP01", CurrentBudget: 600.0, CurrentRoas: 2.0},
		{Entity: "CAMP02", CurrentBudget: 600.0, CurrentRoas: 2.0},
		{Entity: "CAMP04", CurrentBudget: 400.0, CurrentRoas: 8.0},
	}

	first := optimizer.Optimize(entries)
	second := optimizer.Optimize(entries)

	assert.Equal(t, first, second)
}
