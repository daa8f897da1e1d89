package analyzing

import (
	"fmt"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

// ZeroConversionWaste aponta campanhas e SKUs com investimento relevante e
// zero conversões no período.
func ZeroConversionWaste(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	floor := ctx.Policy.Waste.MinSpendBRL

	emit := func(kind string, entity domain.EntityMetrics) {
		impact := WastedSpendImpact(entity.Spend)

		findings = append(findings, domain.CognitiveFinding{
			ID:       FindingID(analyzerZeroConversionWaste, entity.ID),
			Category: domain.CategoryEfficiency,
			Severity: domain.SeverityWarning,
			Title:    fmt.Sprintf("Gasto sem conversão em %s %s", kind, entity.Name),
			Description: fmt.Sprintf(
				"%s %s consumiu R$ %.2f no período sem registrar nenhuma conversão.",
				kind, entity.Name, entity.Spend,
			),
			Metrics: map[string]float64{
				"spend":       entity.Spend,
				"conversions": 0,
				"impressions": float64(entity.Impressions),
			},
			Recommendations: []domain.Recommendation{
				{
					Action: fmt.Sprintf("Pausar %s %s e redirecionar a verba para entidades com conversão", kind, entity.Name),
					Impact: domain.LevelHigh,
					Effort: domain.LevelLow,
				},
			},
			FinancialImpact: &impact,
			RootCause:       "Investimento ativo sem nenhuma conversão atribuída no período",
			Source:          domain.SourcePattern,
		})
	}

	for _, campaign := range cube.Campaigns {
		if campaign.Conversions == 0 && campaign.Spend >= floor {
			emit("campanha", campaign)
		}
	}

	for _, sku := range cube.SKUs {
		if sku.Conversions == 0 && sku.Spend >= floor {
			emit("SKU", sku)
		}
	}

	return findings
}
