package cognition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

func TestSummarizeForPrompt(t *testing.T) {
	response := &domain.CognitiveResponse{
		AccountID:   "ACC001",
		HealthScore: 62,
		Mode: domain.ModeAssessment{
			Mode:        domain.ModeOtimizar,
			Score:       62,
			Description: "Conta estável com oportunidades de otimização",
		},
		Bottleneck: domain.Bottleneck{
			Constraint:   domain.ConstraintConversion,
			Severity:     domain.SeverityWarning,
			UnlockAction: "Revisar a página de produto",
			FinancialImpact: &domain.FinancialImpact{
				GrossImpactBRL: 500,
				CostBRL:        100,
				NetImpactBRL:   400,
				Calculation:    "500.00 - 100.00 = 400.00",
			},
		},
		Findings: []domain.CognitiveFinding{
			{
				ID:       "funnel_dropoff_carrinho",
				Category: domain.CategoryEfficiency,
				Severity: domain.SeverityWarning,
				Title:    "Queda acentuada no carrinho",
				FinancialImpact: &domain.FinancialImpact{
					GrossImpactBRL: 300,
					NetImpactBRL:   300,
				},
			},
			{
				ID:       "geographic_concentration_sp",
				Category: domain.CategoryOpportunity,
				Severity: domain.SeverityWarning,
				Title:    "Receita concentrada em São Paulo",
			},
		},
		PacingProjections: []domain.PacingProjection{
			{
				Metric:              "revenue",
				Label:               "Receita",
				CurrentValue:        950,
				Target:              3000,
				ProjectedEndOfMonth: 2850,
				Scenario:            domain.PacingOnTrack,
			},
		},
		TopRecommendations: []domain.RankedRecommendation{
			{
				Recommendation: domain.Recommendation{
					Action: "Pausar a campanha sem conversões",
					Impact: domain.LevelHigh,
					Effort: domain.LevelLow,
				},
			},
		},
	}

	text := SummarizeForPrompt(response)

	assert.Contains(t, text, "Análise da conta ACC001")
	assert.Contains(t, text, "health score 62/100")
	assert.Contains(t, text, "Gargalo dominante: conversão (warning)")
	assert.Contains(t, text, "Impacto estimado: R$ 400.00")
	assert.Contains(t, text, "Achados (2):")
	assert.Contains(t, text, "- [warning/efficiency] Queda acentuada no carrinho (impacto líquido R$ 300.00)")
	assert.Contains(t, text, "- [warning/opportunity] Receita concentrada em São Paulo\n")
	assert.Contains(t, text, "- Receita: 950.00 realizado, projeção 2850.00 contra meta 3000.00 (on_track)")
	assert.Contains(t, text, "1. Pausar a campanha sem conversões (impacto high, esforço low)")
}

func TestSummarizeForPrompt_RespostaNilaDevolveVazio(t *testing.T) {
	assert.Empty(t, SummarizeForPrompt(nil))
}

func TestSummarizeForPrompt_SecoesVaziasSaoOmitidas(t *testing.T) {
	response := &domain.CognitiveResponse{
		AccountID:   "ACC002",
		HealthScore: 100,
		Mode: domain.ModeAssessment{
			Mode:        domain.ModeEscalar,
			Description: "Conta saudável pronta para escalar",
		},
		Bottleneck: domain.Bottleneck{
			Constraint:   domain.ConstraintBudget,
			Severity:     domain.SeveritySuccess,
			UnlockAction: "Manter a alocação atual",
		},
	}

	text := SummarizeForPrompt(response)

	assert.NotContains(t, text, "Achados")
	assert.NotContains(t, text, "Pacing do mês")
	assert.NotContains(t, text, "Próximas ações recomendadas")
	assert.NotContains(t, text, "Impacto estimado")
}
