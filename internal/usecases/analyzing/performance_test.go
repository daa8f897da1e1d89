package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/normalizing"
)

func TestPerformanceBreach_ContaAbaixoDosLimiares(t *testing.T) {
	ctx := testContext()
	cube := &domain.DataCube{
		AccountID: "ACC001",
		Account: domain.EntityMetrics{
			ID:          "ACC001",
			Name:        "Ótica Exemplo",
			Spend:       1000.0,
			Conversions: 10,
			Revenue:     4000.0,
			ROAS:        4.0,
			CPA:         100.0,
			Status:      domain.StatusPause,
		},
	}

	findings := PerformanceBreach(ctx, cube)

	assert.Len(t, findings, 1)
	assert.Equal(t, "performance_breach_account", findings[0].ID)
	assert.Equal(t, domain.CategoryEfficiency, findings[0].Category)
	assert.Equal(t, domain.SeverityDanger, findings[0].Severity)
	assert.NotNil(t, findings[0].FinancialImpact)
	assert.Equal(t, 1000.0, findings[0].FinancialImpact.NetImpactBRL)
}

func TestPerformanceBreach_CampanhaAbaixoDosLimiares(t *testing.T) {
	ctx := testContext()
	cube := &domain.DataCube{
		AccountID: "ACC001",
		Account: domain.EntityMetrics{
			ID: "ACC001", ROAS: 8.0, Status: domain.StatusHold,
		},
		Campaigns: []domain.EntityMetrics{
			{
				ID: "CAMP01", Name: "Prospecção", Spend: 400.0, Conversions: 4,
				Revenue: 1200.0, ROAS: 3.0, CPA: 100.0, Status: domain.StatusPause,
			},
			{
				ID: "CAMP02", Name: "Remarketing", Spend: 600.0, Conversions: 40,
				Revenue: 6000.0, ROAS: 10.0, CPA: 15.0, Status: domain.StatusHold,
			},
		},
	}

	findings := PerformanceBreach(ctx, cube)

	assert.Len(t, findings, 1)
	assert.Equal(t, "performance_breach_camp01", findings[0].ID)
	assert.Equal(t, domain.SeverityDanger, findings[0].Severity)
}

func TestPerformanceBreach_SemConversaoFicaComOutroAnalisador(t *testing.T) {
	ctx := testContext()
	cube := &domain.DataCube{
		AccountID: "ACC001",
		Campaigns: []domain.EntityMetrics{
			{ID: "CAMP01", Name: "Fria", Spend: 300.0, Conversions: 0, Status: domain.StatusPause},
		},
	}

	assert.Empty(t, PerformanceBreach(ctx, cube))
}

// Cenário de ponta a ponta: conta com ROAS 4 (abaixo do limiar de pausa 5) e
// CPA 100 (acima do teto 80) precisa sair da normalização com status pause e
// gerar pelo menos um achado de eficiência com severidade danger.
func TestPerformanceBreach_PontaAPontaComNormalizacao(t *testing.T) {
	ctx := testContext()
	normalizer := normalizing.New(ctx.Policy)

	cube := normalizer.Build("ACC001", domain.Period{}, &domain.RawMetrics{
		Account: &domain.RawEntityRecord{
			ID:          "ACC001",
			Name:        "Ótica Exemplo",
			Spend:       1000.0,
			Conversions: 10,
			Revenue:     4000.0,
		},
	})

	assert.Equal(t, domain.StatusPause, cube.Account.Status)

	findings := RunAll(ctx, cube)

	foundEfficiencyDanger := false
	for _, finding := range findings {
		if finding.Category == domain.CategoryEfficiency && finding.Severity == domain.SeverityDanger {
			foundEfficiencyDanger = true
		}
	}
	assert.True(t, foundEfficiencyDanger, "esperado ao menos um achado de eficiência com severidade danger")
}
