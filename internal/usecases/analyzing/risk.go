package analyzing

import (
	"fmt"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

// SKURisk aponta SKUs classificados como pause pela tabela canônica de status
// e SKUs com margem abaixo do piso. O status já vem derivado do normalizador;
// aqui apenas o transformamos em achados acionáveis.
func SKURisk(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	thresholds := ctx.Policy.Status

	for _, sku := range cube.SKUs {
		if sku.Status == domain.StatusPause && sku.Spend > 0 {
			impact := WastedSpendImpact(sku.Spend)

			findings = append(findings, domain.CognitiveFinding{
				ID:       FindingID(analyzerSKURisk, sku.ID),
				Category: domain.CategoryRisk,
				Severity: domain.SeverityDanger,
				Title:    fmt.Sprintf("SKU %s abaixo dos limiares mínimos de desempenho", sku.Name),
				Description: fmt.Sprintf(
					"O SKU %s opera com ROAS %.2f e CPA R$ %.2f, fora dos limiares mínimos (ROAS >= %.1f, CPA <= R$ %.1f). Manter o investimento atual destrói margem.",
					sku.Name, sku.ROAS, sku.CPA, thresholds.PauseROAS, thresholds.PauseCPA,
				),
				Metrics: map[string]float64{
					"roas":       sku.ROAS,
					"cpa":        sku.CPA,
					"spend":      sku.Spend,
					"margin_pct": sku.MarginPct,
				},
				Recommendations: []domain.Recommendation{
					{
						Action: fmt.Sprintf("Pausar anúncios do SKU %s até revisar preço e página de produto", sku.Name),
						Impact: domain.LevelHigh,
						Effort: domain.LevelLow,
					},
				},
				FinancialImpact: &impact,
				RootCause:       "ROAS ou CPA fora dos limiares mínimos da tabela de status",
				Source:          domain.SourcePattern,
			})

			continue
		}

		if sku.MarginPct > 0 && sku.MarginPct < thresholds.HoldMarginPct && sku.Revenue > 0 {
			findings = append(findings, domain.CognitiveFinding{
				ID:       FindingID(analyzerSKURisk, sku.ID+"_margin"),
				Category: domain.CategoryRisk,
				Severity: domain.SeverityWarning,
				Title:    fmt.Sprintf("SKU %s vende com margem apertada", sku.Name),
				Description: fmt.Sprintf(
					"O SKU %s fatura R$ %.2f com margem de %.1f%%, abaixo do piso de %.1f%%. O volume atual amplifica um problema de precificação.",
					sku.Name, sku.Revenue, sku.MarginPct, thresholds.HoldMarginPct,
				),
				Metrics: map[string]float64{
					"margin_pct": sku.MarginPct,
					"revenue":    sku.Revenue,
				},
				Recommendations: []domain.Recommendation{
					{
						Action: fmt.Sprintf("Revisar precificação ou custo de aquisição do SKU %s", sku.Name),
						Impact: domain.LevelMedium,
						Effort: domain.LevelMedium,
					},
				},
				RootCause: fmt.Sprintf("Margem de %.1f%% abaixo do piso de %.1f%%", sku.MarginPct, thresholds.HoldMarginPct),
				Source:    domain.SourcePattern,
			})
		}
	}

	return findings
}
