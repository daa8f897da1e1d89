package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

func testContext() *Context {
	return &Context{
		AccountID:     "ACC001",
		ReferenceDate: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		Policy:        config.DefaultPolicy(),
	}
}

func TestFindingID_Deterministico(t *testing.T) {
	tests := []struct {
		name      string
		analyzer  string
		entityKey string
		expected  string
	}{
		{
			name:      "Chave simples",
			analyzer:  "device_underperformance",
			entityKey: "desktop",
			expected:  "device_underperformance_desktop",
		},
		{
			name:      "Chave com maiúsculas e espaços",
			analyzer:  "sku_risk",
			entityKey: " Lente Blue 01 ",
			expected:  "sku_risk_lente_blue_01",
		},
		{
			name:      "Chave vazia",
			analyzer:  "trend_regression",
			entityKey: "",
			expected:  "trend_regression_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindingID(tt.analyzer, tt.entityKey))
		})
	}
}

func TestRunAll_CuboVazioNaoEmiteAchados(t *testing.T) {
	cube := &domain.DataCube{
		SKUs:         []domain.EntityMetrics{},
		Campaigns:    []domain.EntityMetrics{},
		Devices:      []domain.SliceMetrics{},
		Demographics: []domain.SliceMetrics{},
		Geographic:   []domain.SliceMetrics{},
		Funnel:       []domain.FunnelStep{},
		Channels:     []domain.ChannelMetrics{},
	}

	findings := RunAll(testContext(), cube)

	assert.Empty(t, findings)
}

func TestRunAll_EntradaNilaNaoExplode(t *testing.T) {
	assert.Empty(t, RunAll(nil, nil))
	assert.Empty(t, RunAll(testContext(), nil))
}

func TestRunAll_MesmaEntradaMesmosIDs(t *testing.T) {
	cube := &domain.DataCube{
		Devices: []domain.SliceMetrics{
			{Key: "mobile", Label: "Mobile", ROAS: 10.0, Cost: 500.0, RevenueShare: 80.0},
			{Key: "desktop", Label: "Desktop", ROAS: 2.0, Cost: 500.0, RevenueShare: 20.0},
		},
	}

	first := RunAll(testContext(), cube)
	second := RunAll(testContext(), cube)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestDeviceUnderperformance(t *testing.T) {
	tests := []struct {
		name             string
		devices          []domain.SliceMetrics
		expectedCount    int
		expectedSeverity domain.FindingSeverity
	}{
		{
			name: "ROAS muito abaixo do melhor dispositivo vira danger",
			devices: []domain.SliceMetrics{
				{Key: "mobile", Label: "Mobile", ROAS: 10.0, Cost: 500.0},
				{Key: "desktop", Label: "Desktop", ROAS: 2.0, Cost: 500.0},
			},
			expectedCount:    1,
			expectedSeverity: domain.SeverityDanger,
		},
		{
			name: "ROAS entre os limiares vira warning",
			devices: []domain.SliceMetrics{
				{Key: "mobile", Label: "Mobile", ROAS: 10.0, Cost: 500.0},
				{Key: "desktop", Label: "Desktop", ROAS: 4.0, Cost: 500.0},
			},
			expectedCount:    1,
			expectedSeverity: domain.SeverityWarning,
		},
		{
			name: "Gasto abaixo do piso não gera achado",
			devices: []domain.SliceMetrics{
				{Key: "mobile", Label: "Mobile", ROAS: 10.0, Cost: 500.0},
				{Key: "desktop", Label: "Desktop", ROAS: 2.0, Cost: 50.0},
			},
			expectedCount: 0,
		},
		{
			name: "Um único dispositivo não gera comparação",
			devices: []domain.SliceMetrics{
				{Key: "mobile", Label: "Mobile", ROAS: 10.0, Cost: 500.0},
			},
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := DeviceUnderperformance(testContext(), &domain.DataCube{Devices: tt.devices})

			assert.Len(t, findings, tt.expectedCount)
			if tt.expectedCount > 0 {
				assert.Equal(t, "device_underperformance_desktop", findings[0].ID)
				assert.Equal(t, tt.expectedSeverity, findings[0].Severity)
				assert.NotNil(t, findings[0].FinancialImpact)
			}
		})
	}
}

func TestDeviceOpportunity(t *testing.T) {
	cube := &domain.DataCube{
		Devices: []domain.SliceMetrics{
			{Key: "mobile", Label: "Mobile", ROAS: 5.0, Cost: 300.0, RevenueShare: 70.0},
			{Key: "tablet", Label: "Tablet", ROAS: 9.0, Cost: 100.0, RevenueShare: 10.0},
		},
	}

	findings := DeviceOpportunity(testContext(), cube)

	assert.Len(t, findings, 1)
	assert.Equal(t, "device_opportunity_tablet", findings[0].ID)
	assert.Equal(t, domain.SeveritySuccess, findings[0].Severity)
	assert.Equal(t, domain.CategoryOpportunity, findings[0].Category)

	// Gasto médio: (300+100)/2 = 200; incremental 100 ao ROAS 9 = 900 bruto
	impact := findings[0].FinancialImpact
	assert.Equal(t, 900.0, impact.GrossImpactBRL)
	assert.Equal(t, 100.0, impact.CostBRL)
	assert.Equal(t, 800.0, impact.NetImpactBRL)
}

func TestZeroConversionWaste(t *testing.T) {
	cube := &domain.DataCube{
		Campaigns: []domain.EntityMetrics{
			{ID: "CAMP01", Name: "Prospecção", Spend: 250.0, Conversions: 0},
			{ID: "CAMP02", Name: "Remarketing", Spend: 50.0, Conversions: 0},
			{ID: "CAMP03", Name: "Campanha boa", Spend: 400.0, Conversions: 12},
		},
		SKUs: []domain.EntityMetrics{
			{ID: "SKU01", Name: "Armação X", Spend: 120.0, Conversions: 0},
		},
	}

	findings := ZeroConversionWaste(testContext(), cube)

	assert.Len(t, findings, 2)
	assert.Equal(t, "zero_conversion_waste_camp01", findings[0].ID)
	assert.Equal(t, "zero_conversion_waste_sku01", findings[1].ID)

	// Impacto do desperdício é o próprio gasto, sem custo de execução
	assert.Equal(t, 250.0, findings[0].FinancialImpact.GrossImpactBRL)
	assert.Equal(t, 0.0, findings[0].FinancialImpact.CostBRL)
	assert.Equal(t, 250.0, findings[0].FinancialImpact.NetImpactBRL)
}

func TestDemographicReallocation(t *testing.T) {
	cube := &domain.DataCube{
		Demographics: []domain.SliceMetrics{
			{Key: "female_25-34", Label: "Mulheres 25-34", ROAS: 12.0, Cost: 400.0},
			{Key: "male_55+", Label: "Homens 55+", ROAS: 3.0, Cost: 200.0},
		},
	}

	findings := DemographicReallocation(testContext(), cube)

	assert.Len(t, findings, 1)
	assert.Equal(t, "demographic_reallocation_male_55+", findings[0].ID)

	// Move metade do custo do pior segmento: 100 x (12 - 3) = 900 líquidos
	impact := findings[0].FinancialImpact
	assert.Equal(t, 1200.0, impact.GrossImpactBRL)
	assert.Equal(t, 300.0, impact.CostBRL)
	assert.Equal(t, 900.0, impact.NetImpactBRL)
}

func TestDemographicReallocation_DiferencaPequenaNaoGeraAchado(t *testing.T) {
	cube := &domain.DataCube{
		Demographics: []domain.SliceMetrics{
			{Key: "female_25-34", Label: "Mulheres 25-34", ROAS: 5.0, Cost: 400.0},
			{Key: "male_55+", Label: "Homens 55+", ROAS: 4.0, Cost: 200.0},
		},
	}

	assert.Empty(t, DemographicReallocation(testContext(), cube))
}

func TestGeographicConcentration(t *testing.T) {
	cube := &domain.DataCube{
		Geographic: []domain.SliceMetrics{
			{Key: "sao_paulo", Label: "São Paulo", RevenueShare: 72.0, Revenue: 7200.0},
			{Key: "parana", Label: "Paraná", RevenueShare: 28.0, Revenue: 2800.0},
		},
	}

	findings := GeographicConcentration(testContext(), cube)

	assert.Len(t, findings, 1)
	assert.Equal(t, "geographic_concentration_sao_paulo", findings[0].ID)
	assert.Equal(t, domain.CategoryComposition, findings[0].Category)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
}

func TestSKURisk(t *testing.T) {
	cube := &domain.DataCube{
		SKUs: []domain.EntityMetrics{
			{ID: "SKU01", Name: "Lente A", Status: domain.StatusPause, Spend: 300.0, ROAS: 1.5, CPA: 120.0},
			{ID: "SKU02", Name: "Lente B", Status: domain.StatusHold, MarginPct: 15.0, Revenue: 900.0},
			{ID: "SKU03", Name: "Lente C", Status: domain.StatusEscalate, MarginPct: 40.0, Revenue: 2000.0},
		},
	}

	findings := SKURisk(testContext(), cube)

	assert.Len(t, findings, 2)
	assert.Equal(t, "sku_risk_sku01", findings[0].ID)
	assert.Equal(t, domain.SeverityDanger, findings[0].Severity)
	assert.Equal(t, domain.CategoryRisk, findings[0].Category)

	assert.Equal(t, "sku_risk_sku02_margin", findings[1].ID)
	assert.Equal(t, domain.SeverityWarning, findings[1].Severity)
}

func TestFunnelDropOff(t *testing.T) {
	cube := &domain.DataCube{
		Account: domain.EntityMetrics{Revenue: 10000.0, Conversions: 50},
		Funnel: []domain.FunnelStep{
			{Name: "sessao", Count: 1000, DropOffPct: 0},
			{Name: "produto", Count: 300, DropOffPct: 70.0},
			{Name: "carrinho", Count: 50, DropOffPct: 83.33},
		},
	}

	findings := FunnelDropOff(testContext(), cube)

	assert.Len(t, findings, 2)
	assert.Equal(t, "funnel_dropoff_produto", findings[0].ID)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	assert.Equal(t, "funnel_dropoff_carrinho", findings[1].ID)
	assert.Equal(t, domain.SeverityDanger, findings[1].Severity)
}

func TestTrendRegression(t *testing.T) {
	tests := []struct {
		name          string
		previous      *domain.EntityMetrics
		current       domain.EntityMetrics
		expectedIDs   []string
		firstSeverity domain.FindingSeverity
	}{
		{
			name:        "Sem período anterior não emite nada",
			previous:    nil,
			current:     domain.EntityMetrics{Revenue: 800.0},
			expectedIDs: []string{},
		},
		{
			name:          "Queda de 20% na receita vira warning",
			previous:      &domain.EntityMetrics{Revenue: 1000.0, ROAS: 8.0},
			current:       domain.EntityMetrics{Revenue: 800.0, ROAS: 7.5},
			expectedIDs:   []string{"trend_regression_revenue"},
			firstSeverity: domain.SeverityWarning,
		},
		{
			name:          "Queda de 40% na receita vira danger",
			previous:      &domain.EntityMetrics{Revenue: 1000.0, ROAS: 8.0},
			current:       domain.EntityMetrics{Revenue: 600.0, ROAS: 7.5},
			expectedIDs:   []string{"trend_regression_revenue"},
			firstSeverity: domain.SeverityDanger,
		},
		{
			name:          "Queda de ROAS acima do limiar também é apontada",
			previous:      &domain.EntityMetrics{Revenue: 1000.0, ROAS: 10.0},
			current:       domain.EntityMetrics{Revenue: 700.0, ROAS: 7.0},
			expectedIDs:   []string{"trend_regression_revenue", "trend_regression_roas"},
			firstSeverity: domain.SeverityDanger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cube := &domain.DataCube{Account: tt.current, Previous: tt.previous}

			findings := TrendRegression(testContext(), cube)

			assert.Len(t, findings, len(tt.expectedIDs))
			for i, id := range tt.expectedIDs {
				assert.Equal(t, id, findings[i].ID)
			}
			if len(findings) > 0 {
				assert.Equal(t, tt.firstSeverity, findings[0].Severity)
			}
		})
	}
}

func TestChannelOpportunity(t *testing.T) {
	cube := &domain.DataCube{
		Channels: []domain.ChannelMetrics{
			{Channel: "paid_social", Sessions: 9000, Conversions: 90, ConversionRate: 1.0},
			{Channel: "email", Sessions: 1000, Conversions: 40, ConversionRate: 4.0},
		},
	}

	findings := ChannelOpportunity(testContext(), cube)

	assert.Len(t, findings, 1)
	assert.Equal(t, "channel_opportunity_email", findings[0].ID)
	assert.Equal(t, domain.CategoryOpportunity, findings[0].Category)
}

func TestPlanningGap(t *testing.T) {
	// Dia 15 de um mês de 31 dias: ritmo esperado = meta x 15/31
	ctx := &Context{
		AccountID:     "ACC001",
		ReferenceDate: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		Policy:        config.DefaultPolicy(),
	}

	cube := &domain.DataCube{
		Account: domain.EntityMetrics{Revenue: 20000.0, Spend: 4500.0, Conversions: 100},
		Planning: &domain.PlanningTargets{
			Month: "2024-05",
			Targets: []domain.PlanningTarget{
				// Esperado até o dia 15: 100000 x 15/31 = 48387.10; realizado 20000 (41% do ritmo)
				{Metric: domain.MetricRevenue, Label: "Receita", Value: 100000.0},
				// Esperado: 9000 x 15/31 = 4354.84; realizado 4500 está acima do ritmo
				{Metric: domain.MetricSpend, Label: "Investimento", Value: 9000.0},
			},
		},
	}

	findings := PlanningGap(ctx, cube)

	assert.Len(t, findings, 1)
	assert.Equal(t, "planning_gap_revenue", findings[0].ID)
	assert.Equal(t, domain.CategoryPlanningGap, findings[0].Category)
	assert.Equal(t, domain.SeverityDanger, findings[0].Severity)
	assert.NotNil(t, findings[0].FinancialImpact)
}

func TestPlanningGap_SemMetasNaoEmiteNada(t *testing.T) {
	assert.Empty(t, PlanningGap(testContext(), &domain.DataCube{}))
}
