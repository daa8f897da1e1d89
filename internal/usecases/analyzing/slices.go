package analyzing

import (
	"fmt"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

// DemographicReallocation compara o melhor e o pior segmento demográfico e
// sugere realocação de verba quando a diferença de ROAS supera a razão mínima
// da política.
func DemographicReallocation(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	if len(cube.Demographics) < 2 {
		return findings
	}

	thresholds := ctx.Policy.Slices

	best := cube.Demographics[0]
	worst := cube.Demographics[0]
	for _, slice := range cube.Demographics[1:] {
		if slice.ROAS > best.ROAS {
			best = slice
		}
		if slice.ROAS < worst.ROAS {
			worst = slice
		}
	}

	if worst.Cost < thresholds.MinCostBRL || worst.ROAS*thresholds.ReallocationRatio > best.ROAS {
		return findings
	}

	amountToMove := worst.Cost / 2
	impact := ReallocationImpact(amountToMove, worst.ROAS, best.ROAS)
	if impact.NetImpactBRL == 0 {
		return findings
	}

	findings = append(findings, domain.CognitiveFinding{
		ID:       FindingID(analyzerDemographicReallocation, worst.Key),
		Category: domain.CategoryEfficiency,
		Severity: domain.SeverityWarning,
		Title:    fmt.Sprintf("Segmento %s drena verba que renderia mais em %s", worst.Label, best.Label),
		Description: fmt.Sprintf(
			"O segmento %s tem ROAS %.2f contra %.2f de %s. Mover metade do investimento (R$ %.2f) para o segmento de melhor desempenho melhora o retorno do conjunto.",
			worst.Label, worst.ROAS, best.ROAS, best.Label, amountToMove,
		),
		Metrics: map[string]float64{
			"worst_roas":     worst.ROAS,
			"best_roas":      best.ROAS,
			"worst_cost":     worst.Cost,
			"amount_to_move": amountToMove,
		},
		Recommendations: []domain.Recommendation{
			{
				Action: fmt.Sprintf("Realocar verba do segmento %s para %s", worst.Label, best.Label),
				Impact: domain.LevelMedium,
				Effort: domain.LevelMedium,
			},
		},
		FinancialImpact: &impact,
		Source:          domain.SourcePattern,
	})

	return findings
}

// GeographicConcentration aponta dependência excessiva de uma única região:
// participação de receita acima do limiar de concentração é risco de
// composição.
func GeographicConcentration(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	if len(cube.Geographic) < 2 {
		return findings
	}

	threshold := ctx.Policy.Slices.ConcentrationSharePct

	for _, region := range cube.Geographic {
		if region.RevenueShare < threshold {
			continue
		}

		findings = append(findings, domain.CognitiveFinding{
			ID:       FindingID(analyzerGeographicConcentration, region.Key),
			Category: domain.CategoryComposition,
			Severity: domain.SeverityWarning,
			Title:    fmt.Sprintf("Receita concentrada na região %s", region.Label),
			Description: fmt.Sprintf(
				"A região %s responde por %.1f%% da receita. Uma oscilação local de demanda ou de custo de mídia afetaria a conta inteira.",
				region.Label, region.RevenueShare,
			),
			Metrics: map[string]float64{
				"revenue_share": region.RevenueShare,
				"revenue":       region.Revenue,
			},
			Recommendations: []domain.Recommendation{
				{
					Action: "Testar expansão de campanhas para regiões adjacentes com perfil de público semelhante",
					Impact: domain.LevelMedium,
					Effort: domain.LevelHigh,
				},
			},
			RootCause: fmt.Sprintf("%.1f%% da receita vem de uma única região", region.RevenueShare),
			Source:    domain.SourcePattern,
		})
	}

	return findings
}
