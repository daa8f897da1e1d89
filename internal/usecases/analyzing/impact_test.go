package analyzing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

func TestWastedSpendImpact(t *testing.T) {
	impact := WastedSpendImpact(250.0)

	assert.Equal(t, 250.0, impact.GrossImpactBRL)
	assert.Equal(t, 0.0, impact.CostBRL)
	assert.Equal(t, 250.0, impact.NetImpactBRL)
	assert.Contains(t, impact.Calculation, "250.00")
}

func TestWastedSpendImpact_GastoNegativoEZerado(t *testing.T) {
	impact := WastedSpendImpact(-10.0)

	assert.Equal(t, 0.0, impact.GrossImpactBRL)
	assert.Equal(t, 0.0, impact.NetImpactBRL)
}

func TestUnderinvestmentImpact(t *testing.T) {
	tests := []struct {
		name          string
		currentSpend  float64
		benchmark     float64
		roas          float64
		expectedGross float64
		expectedCost  float64
		expectedNet   float64
	}{
		{
			name:          "Subinvestimento com ROAS saudável",
			currentSpend:  100.0,
			benchmark:     300.0,
			roas:          2.0,
			expectedGross: 400.0,
			expectedCost:  200.0,
			expectedNet:   200.0,
		},
		{
			name:          "Gasto atual já alcança o benchmark",
			currentSpend:  300.0,
			benchmark:     200.0,
			roas:          2.0,
			expectedGross: 0.0,
			expectedCost:  0.0,
			expectedNet:   0.0,
		},
		{
			name:          "ROAS abaixo de 1 não gera oportunidade líquida",
			currentSpend:  100.0,
			benchmark:     200.0,
			roas:          0.5,
			expectedGross: 0.0,
			expectedCost:  0.0,
			expectedNet:   0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impact := UnderinvestmentImpact(tt.currentSpend, tt.benchmark, tt.roas)

			assert.Equal(t, tt.expectedGross, impact.GrossImpactBRL)
			assert.Equal(t, tt.expectedCost, impact.CostBRL)
			assert.Equal(t, tt.expectedNet, impact.NetImpactBRL)
		})
	}
}

func TestReallocationImpact(t *testing.T) {
	impact := ReallocationImpact(500.0, 2.0, 4.0)

	assert.Equal(t, 2000.0, impact.GrossImpactBRL)
	assert.Equal(t, 1000.0, impact.CostBRL)
	assert.Equal(t, 1000.0, impact.NetImpactBRL)
}

func TestReallocationImpact_DestinoPiorQueOrigemZeraOImpacto(t *testing.T) {
	impact := ReallocationImpact(500.0, 4.0, 2.0)

	assert.Equal(t, 0.0, impact.GrossImpactBRL)
	assert.Equal(t, 0.0, impact.CostBRL)
	assert.Equal(t, 0.0, impact.NetImpactBRL)
}

func TestPerformanceGapImpact(t *testing.T) {
	impact := PerformanceGapImpact(1000.0, 4.0, 5.0)

	assert.Equal(t, 5000.0, impact.GrossImpactBRL)
	assert.Equal(t, 4000.0, impact.CostBRL)
	assert.Equal(t, 1000.0, impact.NetImpactBRL)
}

func TestPerformanceGapImpact_SemDeficitEZerado(t *testing.T) {
	impact := PerformanceGapImpact(1000.0, 6.0, 5.0)

	assert.Equal(t, 0.0, impact.GrossImpactBRL)
	assert.Equal(t, 0.0, impact.CostBRL)
	assert.Equal(t, 0.0, impact.NetImpactBRL)
}

// Todo quantificador deve respeitar líquido = bruto - custo e líquido >= 0,
// inclusive nas entradas que zerariam ou negativariam o resultado.
func TestImpactos_LiquidoIgualBrutoMenosCusto(t *testing.T) {
	impacts := []domain.FinancialImpact{
		WastedSpendImpact(250.0),
		WastedSpendImpact(0),
		WastedSpendImpact(-10.0),
		UnderinvestmentImpact(100.0, 300.0, 2.0),
		UnderinvestmentImpact(100.0, 200.0, 0.5),
		UnderinvestmentImpact(300.0, 200.0, 2.0),
		ReallocationImpact(500.0, 2.0, 4.0),
		ReallocationImpact(500.0, 4.0, 2.0),
		ReallocationImpact(-100.0, 2.0, 4.0),
		PerformanceGapImpact(1000.0, 4.0, 5.0),
		PerformanceGapImpact(1000.0, 6.0, 5.0),
		PerformanceGapImpact(0, 4.0, 5.0),
	}

	for i, impact := range impacts {
		t.Run(fmt.Sprintf("Caso %d", i), func(t *testing.T) {
			assert.InDelta(t, impact.GrossImpactBRL-impact.CostBRL, impact.NetImpactBRL, 0.001)
			assert.GreaterOrEqual(t, impact.NetImpactBRL, 0.0)
			assert.NotEmpty(t, impact.Calculation)
		})
	}
}
