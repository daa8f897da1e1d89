package analyzing

import (
	"fmt"
	"time"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// PlanningGap compara o realizado do mês com o ritmo esperado das metas de
// planejamento. Uma métrica atrasada em relação ao ritmo vira um achado de
// planning_gap; sem metas resolvidas, não emite nada.
func PlanningGap(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	if cube.Planning == nil || len(cube.Planning.Targets) == 0 {
		return findings
	}

	day := ctx.ReferenceDate.Day()
	daysInMonth := time.Date(ctx.ReferenceDate.Year(), ctx.ReferenceDate.Month()+1, 0, 0, 0, 0, 0, ctx.ReferenceDate.Location()).Day()
	elapsed := float64(day) / float64(daysInMonth)

	thresholds := ctx.Policy.Pacing

	for _, target := range cube.Planning.Targets {
		current, ok := cube.CurrentValueFor(target.Metric)
		if !ok || target.Value <= 0 {
			continue
		}

		expectedToDate := target.Value * elapsed
		if expectedToDate == 0 {
			continue
		}

		paceRatio := utils.SafePercentage(current, expectedToDate)
		if paceRatio >= thresholds.OnTrackPct {
			continue
		}

		severity := domain.SeverityWarning
		if paceRatio < thresholds.AtRiskPct {
			severity = domain.SeverityDanger
		}

		gap := utils.RoundWithTwoDecimalPlace(expectedToDate - current)

		finding := domain.CognitiveFinding{
			ID:       FindingID(analyzerPlanningGap, target.Metric),
			Category: domain.CategoryPlanningGap,
			Severity: severity,
			Title:    fmt.Sprintf("%s atrás do ritmo da meta mensal", target.Label),
			Description: fmt.Sprintf(
				"No dia %d de %d, %s está em %.2f contra %.2f esperados pelo ritmo da meta (%.0f%% do ritmo).",
				day, daysInMonth, target.Label, current, utils.RoundWithTwoDecimalPlace(expectedToDate), paceRatio,
			),
			Metrics: map[string]float64{
				"current":          current,
				"expected_to_date": utils.RoundWithTwoDecimalPlace(expectedToDate),
				"target":           target.Value,
				"pace_ratio_pct":   utils.RoundWithTwoDecimalPlace(paceRatio),
			},
			Recommendations: []domain.Recommendation{
				{
					Action: fmt.Sprintf("Revisar o plano de mídia da segunda quinzena para recuperar o ritmo de %s", target.Label),
					Impact: domain.LevelMedium,
					Effort: domain.LevelMedium,
				},
			},
			RootCause: fmt.Sprintf("Ritmo em %.0f%% do necessário para a meta de %s", paceRatio, target.Label),
			Source:    domain.SourcePattern,
		}

		// Para métricas monetárias o atraso tem leitura financeira direta
		if target.Metric == domain.MetricRevenue || target.Metric == domain.MetricTicket {
			impact := WastedSpendImpact(gap)
			finding.FinancialImpact = &impact
		}

		findings = append(findings, finding)
	}

	return findings
}
