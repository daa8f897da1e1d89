package analyzing

import (
	"fmt"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

// PerformanceBreach aponta a conta e as campanhas que convertem mas operam
// abaixo dos limiares de pausa da tabela canônica de status. Entidades sem
// conversão são cobertas pelo ZeroConversionWaste, e SKUs pelo SKURisk.
func PerformanceBreach(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	thresholds := ctx.Policy.Status

	emit := func(kind, key string, entity domain.EntityMetrics) {
		impact := PerformanceGapImpact(entity.Spend, entity.ROAS, thresholds.PauseROAS)

		findings = append(findings, domain.CognitiveFinding{
			ID:       FindingID(analyzerPerformanceBreach, key),
			Category: domain.CategoryEfficiency,
			Severity: domain.SeverityDanger,
			Title:    fmt.Sprintf("%s %s abaixo dos limiares de pausa", kind, entity.Name),
			Description: fmt.Sprintf(
				"%s %s opera com ROAS %.2f e CPA R$ %.2f, fora dos limiares mínimos (ROAS >= %.1f, CPA <= R$ %.1f). Cada real investido nesse patamar retorna menos que o piso aceitável.",
				kind, entity.Name, entity.ROAS, entity.CPA, thresholds.PauseROAS, thresholds.PauseCPA,
			),
			Metrics: map[string]float64{
				"roas":        entity.ROAS,
				"cpa":         entity.CPA,
				"spend":       entity.Spend,
				"conversions": float64(entity.Conversions),
			},
			Recommendations: []domain.Recommendation{
				{
					Action: fmt.Sprintf("Pausar ou reestruturar %s %s, revisando segmentação, criativos e lances", kind, entity.Name),
					Impact: domain.LevelHigh,
					Effort: domain.LevelMedium,
				},
			},
			FinancialImpact: &impact,
			RootCause:       "ROAS ou CPA fora dos limiares mínimos da tabela de status",
			Source:          domain.SourcePattern,
		})
	}

	if cube.Account.Status == domain.StatusPause && cube.Account.Conversions > 0 && cube.Account.Spend > 0 {
		account := cube.Account
		if account.Name == "" {
			account.Name = cube.AccountID
		}
		emit("Conta", "account", account)
	}

	for _, campaign := range cube.Campaigns {
		if campaign.Status == domain.StatusPause && campaign.Conversions > 0 && campaign.Spend > 0 {
			emit("Campanha", campaign.ID, campaign)
		}
	}

	return findings
}
