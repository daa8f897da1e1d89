package analyzing

import (
	"fmt"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// DeviceUnderperformance aponta dispositivos com ROAS muito abaixo do melhor
// dispositivo e investimento relevante. A severidade sobe para danger quando a
// razão cai abaixo do limiar de perigo da política.
func DeviceUnderperformance(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	if len(cube.Devices) < 2 {
		return findings
	}

	thresholds := ctx.Policy.Device

	best := cube.Devices[0]
	for _, device := range cube.Devices[1:] {
		if device.ROAS > best.ROAS {
			best = device
		}
	}

	if best.ROAS == 0 {
		return findings
	}

	for _, device := range cube.Devices {
		if device.Key == best.Key || device.Cost < thresholds.MinSpendBRL {
			continue
		}

		ratio := utils.SafeDivide(device.ROAS, best.ROAS)
		if ratio >= thresholds.UnderperformanceRatio {
			continue
		}

		severity := domain.SeverityWarning
		if ratio < thresholds.DangerRatio {
			severity = domain.SeverityDanger
		}

		impact := WastedSpendImpact(device.Cost * (1 - ratio))

		findings = append(findings, domain.CognitiveFinding{
			ID:       FindingID(analyzerDeviceUnderperformance, device.Key),
			Category: domain.CategoryEfficiency,
			Severity: severity,
			Title:    fmt.Sprintf("Dispositivo %s com ROAS muito abaixo do melhor dispositivo", device.Label),
			Description: fmt.Sprintf(
				"O dispositivo %s tem ROAS %.2f, apenas %.0f%% do ROAS do melhor dispositivo (%s, %.2f), com R$ %.2f investidos no período.",
				device.Label, device.ROAS, ratio*100, best.Label, best.ROAS, device.Cost,
			),
			Metrics: map[string]float64{
				"roas":       device.ROAS,
				"best_roas":  best.ROAS,
				"roas_ratio": utils.RoundWithTwoDecimalPlace(ratio),
				"cost":       device.Cost,
			},
			Recommendations: []domain.Recommendation{
				{
					Action: fmt.Sprintf("Reduzir lances no dispositivo %s e revisar criativos específicos do formato", device.Label),
					Impact: domain.LevelMedium,
					Effort: domain.LevelLow,
				},
			},
			FinancialImpact: &impact,
			RootCause:       fmt.Sprintf("ROAS do dispositivo %s em %.0f%% do melhor dispositivo", device.Label, ratio*100),
			Source:          domain.SourcePattern,
		})
	}

	return findings
}

// DeviceOpportunity aponta dispositivos com ROAS alto e participação de
// receita baixa: candidatos a receber mais verba. O impacto usa o gasto médio
// entre dispositivos como benchmark de realocação.
func DeviceOpportunity(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	if len(cube.Devices) == 0 {
		return findings
	}

	thresholds := ctx.Policy.Device

	totalSpend := 0.0
	for _, device := range cube.Devices {
		totalSpend += device.Cost
	}
	averageSpend := utils.RoundWithTwoDecimalPlace(totalSpend / float64(len(cube.Devices)))

	for _, device := range cube.Devices {
		if device.ROAS <= thresholds.OpportunityROAS || device.RevenueShare >= thresholds.OpportunityMaxShare {
			continue
		}

		impact := UnderinvestmentImpact(device.Cost, averageSpend, device.ROAS)
		if impact.NetImpactBRL == 0 {
			continue
		}

		findings = append(findings, domain.CognitiveFinding{
			ID:       FindingID(analyzerDeviceOpportunity, device.Key),
			Category: domain.CategoryOpportunity,
			Severity: domain.SeveritySuccess,
			Title:    fmt.Sprintf("Dispositivo %s com ROAS alto e participação baixa", device.Label),
			Description: fmt.Sprintf(
				"O dispositivo %s entrega ROAS %.2f mas responde por apenas %.1f%% da receita. Há espaço para escalar o investimento até o gasto médio por dispositivo (R$ %.2f).",
				device.Label, device.ROAS, device.RevenueShare, averageSpend,
			),
			Metrics: map[string]float64{
				"roas":          device.ROAS,
				"revenue_share": device.RevenueShare,
				"cost":          device.Cost,
				"average_spend": averageSpend,
			},
			Recommendations: []domain.Recommendation{
				{
					Action: fmt.Sprintf("Aumentar investimento no dispositivo %s até o gasto médio por dispositivo", device.Label),
					Impact: domain.LevelHigh,
					Effort: domain.LevelLow,
					Steps: []string{
						fmt.Sprintf("Elevar o orçamento diário do dispositivo %s gradualmente", device.Label),
						"Acompanhar o ROAS marginal por 7 dias antes do próximo incremento",
					},
				},
			},
			FinancialImpact: &impact,
			Source:          domain.SourcePattern,
		})
	}

	return findings
}
