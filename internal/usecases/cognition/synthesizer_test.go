package cognition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

func quantifiedFinding(id string, severity domain.FindingSeverity, net float64) domain.CognitiveFinding {
	return domain.CognitiveFinding{
		ID:       id,
		Severity: severity,
		FinancialImpact: &domain.FinancialImpact{
			GrossImpactBRL: net,
			CostBRL:        0,
			NetImpactBRL:   net,
			Calculation:    "teste",
		},
		Recommendations: []domain.Recommendation{
			{Action: "Ação para " + id, Impact: domain.LevelHigh, Effort: domain.LevelLow},
		},
	}
}

func TestHealthScore(t *testing.T) {
	synthesizer := NewSynthesizer(config.DefaultPolicy())
	emptyCube := &domain.DataCube{}

	tests := []struct {
		name        string
		cube        *domain.DataCube
		findings    []domain.CognitiveFinding
		projections []domain.PacingProjection
		expected    int
	}{
		{
			name:     "Sem achados nem projeções o score é 100",
			cube:     emptyCube,
			expected: 100,
		},
		{
			name: "Danger e warning descontam os pesos da política",
			cube: emptyCube,
			findings: []domain.CognitiveFinding{
				{Severity: domain.SeverityDanger},
				{Severity: domain.SeverityWarning},
			},
			expected: 80,
		},
		{
			name: "Success nunca empurra o score acima de 100",
			cube: emptyCube,
			findings: []domain.CognitiveFinding{
				{Severity: domain.SeveritySuccess},
				{Severity: domain.SeveritySuccess},
			},
			expected: 100,
		},
		{
			name: "Muitos dangers saturam no piso zero",
			cube: emptyCube,
			findings: []domain.CognitiveFinding{
				{Severity: domain.SeverityDanger},
				{Severity: domain.SeverityDanger},
				{Severity: domain.SeverityDanger},
				{Severity: domain.SeverityDanger},
				{Severity: domain.SeverityDanger},
				{Severity: domain.SeverityDanger},
				{Severity: domain.SeverityDanger},
			},
			expected: 0,
		},
		{
			name: "Cenários de pacing ajustam o score",
			cube: emptyCube,
			projections: []domain.PacingProjection{
				{Scenario: domain.PacingOffTrack},
				{Scenario: domain.PacingAtRisk},
			},
			expected: 88,
		},
		{
			name: "ROAS abaixo da meta desconta proporcionalmente",
			cube: &domain.DataCube{
				Account: domain.EntityMetrics{ROAS: 2.5},
				Planning: &domain.PlanningTargets{
					Targets: []domain.PlanningTarget{
						{Metric: domain.MetricROAS, Value: 5.0},
					},
				},
			},
			expected: 95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := synthesizer.HealthScore(tt.cube, tt.findings, tt.projections)

			assert.Equal(t, tt.expected, score)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestAssessMode(t *testing.T) {
	synthesizer := NewSynthesizer(config.DefaultPolicy())

	riskDanger := domain.CognitiveFinding{Severity: domain.SeverityDanger, Category: domain.CategoryRisk}
	efficiencyDanger := domain.CognitiveFinding{Severity: domain.SeverityDanger, Category: domain.CategoryEfficiency}

	tests := []struct {
		name         string
		healthScore  int
		findings     []domain.CognitiveFinding
		expectedMode domain.OperatingMode
	}{
		{
			name:         "Score baixo com múltiplos dangers pede reestruturação",
			healthScore:  30,
			findings:     []domain.CognitiveFinding{efficiencyDanger, efficiencyDanger},
			expectedMode: domain.ModeReestruturar,
		},
		{
			name:         "Danger de risco isolado pede proteção",
			healthScore:  60,
			findings:     []domain.CognitiveFinding{riskDanger},
			expectedMode: domain.ModeProteger,
		},
		{
			name:         "Score baixo com um único danger de risco ainda é proteção",
			healthScore:  30,
			findings:     []domain.CognitiveFinding{riskDanger},
			expectedMode: domain.ModeProteger,
		},
		{
			name:         "Score alto sem dangers libera escala",
			healthScore:  80,
			expectedMode: domain.ModeEscalar,
		},
		{
			name:         "Score alto com danger de eficiência segura em otimização",
			healthScore:  80,
			findings:     []domain.CognitiveFinding{efficiencyDanger},
			expectedMode: domain.ModeOtimizar,
		},
		{
			name:         "Score intermediário sem dangers é o modo padrão",
			healthScore:  60,
			expectedMode: domain.ModeOtimizar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := synthesizer.AssessMode(tt.healthScore, tt.findings)

			assert.Equal(t, tt.expectedMode, assessment.Mode)
			assert.Equal(t, tt.healthScore, assessment.Score)
			assert.NotEmpty(t, assessment.Description)
		})
	}
}

func TestSelectBottleneck(t *testing.T) {
	synthesizer := NewSynthesizer(config.DefaultPolicy())

	t.Run("Sem achados quantificados degenera para alocação de verba", func(t *testing.T) {
		unquantified := domain.CognitiveFinding{ID: "geographic_concentration_sp", Severity: domain.SeverityWarning}

		bottleneck := synthesizer.SelectBottleneck([]domain.CognitiveFinding{unquantified})

		assert.Equal(t, domain.ConstraintBudget, bottleneck.Constraint)
		assert.Equal(t, domain.SeveritySuccess, bottleneck.Severity)
		assert.Nil(t, bottleneck.FinancialImpact)
		assert.NotEmpty(t, bottleneck.UnlockAction)
	})

	t.Run("Maior impacto líquido vence", func(t *testing.T) {
		findings := []domain.CognitiveFinding{
			quantifiedFinding("funnel_dropoff_checkout", domain.SeverityWarning, 500.0),
			quantifiedFinding("sku_risk_sku01", domain.SeverityDanger, 900.0),
		}

		bottleneck := synthesizer.SelectBottleneck(findings)

		assert.Equal(t, domain.ConstraintMargin, bottleneck.Constraint)
		assert.Equal(t, domain.SeverityDanger, bottleneck.Severity)
		assert.Equal(t, 900.0, bottleneck.FinancialImpact.NetImpactBRL)
		assert.Equal(t, "Ação para sku_risk_sku01", bottleneck.UnlockAction)
	})

	t.Run("Empate de impacto resolve por severidade", func(t *testing.T) {
		findings := []domain.CognitiveFinding{
			quantifiedFinding("funnel_dropoff_checkout", domain.SeverityWarning, 500.0),
			quantifiedFinding("sku_risk_sku01", domain.SeverityDanger, 500.0),
		}

		bottleneck := synthesizer.SelectBottleneck(findings)

		assert.Equal(t, domain.ConstraintMargin, bottleneck.Constraint)
		assert.Equal(t, domain.SeverityDanger, bottleneck.Severity)
	})

	t.Run("Empate total resolve pela prioridade fixa de restrições", func(t *testing.T) {
		funnel := quantifiedFinding("funnel_dropoff_checkout", domain.SeverityDanger, 500.0)
		sku := quantifiedFinding("sku_risk_sku01", domain.SeverityDanger, 500.0)

		// Conversão tem prioridade sobre margem, independente da ordem de entrada
		first := synthesizer.SelectBottleneck([]domain.CognitiveFinding{funnel, sku})
		second := synthesizer.SelectBottleneck([]domain.CognitiveFinding{sku, funnel})

		assert.Equal(t, domain.ConstraintConversion, first.Constraint)
		assert.Equal(t, domain.ConstraintConversion, second.Constraint)
	})
}

func TestConstraintFor(t *testing.T) {
	tests := []struct {
		findingID string
		expected  domain.Constraint
	}{
		{"funnel_dropoff_carrinho", domain.ConstraintConversion},
		{"planning_gap_average_ticket", domain.ConstraintAOV},
		{"planning_gap_revenue", domain.ConstraintTraffic},
		{"trend_regression_roas", domain.ConstraintTraffic},
		{"channel_opportunity_email", domain.ConstraintTraffic},
		{"sku_risk_sku01_margin", domain.ConstraintMargin},
		{"device_underperformance_desktop", domain.ConstraintBudget},
	}

	for _, tt := range tests {
		t.Run(tt.findingID, func(t *testing.T) {
			assert.Equal(t, tt.expected, constraintFor(tt.findingID))
		})
	}
}

func TestBuildSummary(t *testing.T) {
	synthesizer := NewSynthesizer(config.DefaultPolicy())

	cube := &domain.DataCube{
		Account: domain.EntityMetrics{ROAS: 3.0, Revenue: 15000.0, Spend: 5000.0, CPA: 90.0},
	}
	mode := domain.ModeAssessment{Mode: domain.ModeOtimizar, Score: 62}
	bottleneck := domain.Bottleneck{
		Constraint:   domain.ConstraintConversion,
		Severity:     domain.SeverityDanger,
		UnlockAction: "Auditar a etapa carrinho do funil",
	}

	summary := synthesizer.BuildSummary(cube, mode, bottleneck)

	assert.Contains(t, summary.Headline, "OTIMIZAR")
	assert.Contains(t, summary.Headline, "conversão")
	assert.Equal(t, bottleneck.UnlockAction, summary.TopAction)
	assert.Len(t, summary.KeyMetrics, 4)

	// ROAS 3.0 abaixo do piso de pausa e CPA acima do teto viram danger
	assert.Equal(t, domain.SeverityDanger, summary.KeyMetrics[0].Status)
	assert.Equal(t, domain.SeverityDanger, summary.KeyMetrics[3].Status)
}
