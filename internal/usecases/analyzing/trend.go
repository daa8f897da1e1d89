package analyzing

import (
	"fmt"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// TrendRegression compara o período atual com o anterior e aponta quedas
// relevantes de receita ou ROAS. Sem período anterior no cubo, não emite nada.
func TrendRegression(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	if cube.Previous == nil || cube.Previous.Revenue == 0 {
		return findings
	}

	thresholds := ctx.Policy.Trend
	previous := *cube.Previous
	current := cube.Account

	revenueDrop := utils.SafePercentage(previous.Revenue-current.Revenue, previous.Revenue)
	if revenueDrop >= thresholds.RevenueDropWarningPct {
		severity := domain.SeverityWarning
		if revenueDrop >= thresholds.RevenueDropDangerPct {
			severity = domain.SeverityDanger
		}

		impact := WastedSpendImpact(previous.Revenue - current.Revenue)

		findings = append(findings, domain.CognitiveFinding{
			ID:       FindingID(analyzerTrendRegression, "revenue"),
			Category: domain.CategoryRisk,
			Severity: severity,
			Title:    fmt.Sprintf("Receita caiu %.0f%% em relação ao período anterior", revenueDrop),
			Description: fmt.Sprintf(
				"A receita passou de R$ %.2f para R$ %.2f (-%.1f%%) entre períodos comparáveis. Quedas dessa magnitude raramente são sazonais.",
				previous.Revenue, current.Revenue, revenueDrop,
			),
			Metrics: map[string]float64{
				"previous_revenue": previous.Revenue,
				"current_revenue":  current.Revenue,
				"drop_pct":         utils.RoundWithTwoDecimalPlace(revenueDrop),
			},
			Recommendations: []domain.Recommendation{
				{
					Action: "Comparar campanhas ativas entre os dois períodos e identificar o que foi pausado ou saturou",
					Impact: domain.LevelHigh,
					Effort: domain.LevelMedium,
				},
			},
			FinancialImpact: &impact,
			RootCause:       fmt.Sprintf("Receita %.1f%% menor que o período anterior", revenueDrop),
			Source:          domain.SourcePattern,
		})
	}

	if previous.ROAS > 0 {
		roasDrop := utils.SafePercentage(previous.ROAS-current.ROAS, previous.ROAS)
		if roasDrop >= thresholds.ROASDropWarningPct {
			findings = append(findings, domain.CognitiveFinding{
				ID:       FindingID(analyzerTrendRegression, "roas"),
				Category: domain.CategoryRisk,
				Severity: domain.SeverityWarning,
				Title:    fmt.Sprintf("ROAS caiu %.0f%% em relação ao período anterior", roasDrop),
				Description: fmt.Sprintf(
					"O ROAS passou de %.2f para %.2f (-%.1f%%). O mesmo investimento está comprando menos receita.",
					previous.ROAS, current.ROAS, roasDrop,
				),
				Metrics: map[string]float64{
					"previous_roas": previous.ROAS,
					"current_roas":  current.ROAS,
					"drop_pct":      utils.RoundWithTwoDecimalPlace(roasDrop),
				},
				Recommendations: []domain.Recommendation{
					{
						Action: "Revisar frequência e fadiga de criativos nas campanhas de maior investimento",
						Impact: domain.LevelMedium,
						Effort: domain.LevelMedium,
					},
				},
				RootCause: fmt.Sprintf("ROAS %.1f%% menor que o período anterior", roasDrop),
				Source:    domain.SourcePattern,
			})
		}
	}

	return findings
}
