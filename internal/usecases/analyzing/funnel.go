package analyzing

import (
	"fmt"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// FunnelDropOff aponta etapas do funil com queda acima dos limiares. A
// primeira etapa nunca é avaliada (queda 0 por definição). O impacto estima a
// receita recuperável se a queda voltasse ao limiar de alerta.
func FunnelDropOff(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	if len(cube.Funnel) < 2 {
		return findings
	}

	thresholds := ctx.Policy.Funnel
	averageTicket := utils.SafeDivide(cube.Account.Revenue, float64(cube.Account.Conversions))

	for i := 1; i < len(cube.Funnel); i++ {
		step := cube.Funnel[i]
		if step.DropOffPct < thresholds.DropOffWarningPct {
			continue
		}

		severity := domain.SeverityWarning
		if step.DropOffPct >= thresholds.DropOffDangerPct {
			severity = domain.SeverityDanger
		}

		// Visitantes que seriam retidos se a queda caísse para o limiar de alerta
		previousCount := float64(cube.Funnel[i-1].Count)
		recoverable := previousCount * (step.DropOffPct - thresholds.DropOffWarningPct) / 100
		conversionRate := utils.SafeDivide(float64(cube.Account.Conversions), previousCount)
		impact := WastedSpendImpact(recoverable * conversionRate * averageTicket)

		findings = append(findings, domain.CognitiveFinding{
			ID:       FindingID(analyzerFunnelDropOff, step.Name),
			Category: domain.CategoryEfficiency,
			Severity: severity,
			Title:    fmt.Sprintf("Queda de %.0f%% na etapa %s do funil", step.DropOffPct, step.Name),
			Description: fmt.Sprintf(
				"A etapa %s perde %.1f%% dos visitantes vindos de %s (%d de %d). Quedas acima de %.0f%% indicam atrito na própria etapa, não no tráfego.",
				step.Name, step.DropOffPct, cube.Funnel[i-1].Name,
				cube.Funnel[i-1].Count-step.Count, cube.Funnel[i-1].Count,
				thresholds.DropOffWarningPct,
			),
			Metrics: map[string]float64{
				"drop_off_pct":   step.DropOffPct,
				"step_count":     float64(step.Count),
				"previous_count": previousCount,
			},
			Recommendations: []domain.Recommendation{
				{
					Action: fmt.Sprintf("Auditar a etapa %s do funil: tempo de carregamento, formulários e fricção de checkout", step.Name),
					Impact: domain.LevelHigh,
					Effort: domain.LevelMedium,
				},
			},
			FinancialImpact: &impact,
			RootCause:       fmt.Sprintf("Queda de %.1f%% concentrada na etapa %s", step.DropOffPct, step.Name),
			Source:          domain.SourcePattern,
		})
	}

	return findings
}

// ChannelOpportunity aponta canais de aquisição com taxa de conversão acima da
// média da conta e participação pequena de sessões: tráfego barato ainda não
// explorado.
func ChannelOpportunity(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)
	if len(cube.Channels) < 2 {
		return findings
	}

	totalSessions := 0
	totalConversions := 0
	for _, channel := range cube.Channels {
		totalSessions += channel.Sessions
		totalConversions += channel.Conversions
	}

	if totalSessions == 0 {
		return findings
	}

	accountRate := utils.SafePercentage(float64(totalConversions), float64(totalSessions))

	for _, channel := range cube.Channels {
		sessionShare := utils.SafePercentage(float64(channel.Sessions), float64(totalSessions))
		if channel.ConversionRate <= accountRate*1.5 || sessionShare >= 20 || channel.Conversions == 0 {
			continue
		}

		findings = append(findings, domain.CognitiveFinding{
			ID:       FindingID(analyzerChannelOpportunity, channel.Channel),
			Category: domain.CategoryOpportunity,
			Severity: domain.SeveritySuccess,
			Title:    fmt.Sprintf("Canal %s converte acima da média com pouco tráfego", channel.Channel),
			Description: fmt.Sprintf(
				"O canal %s converte a %.2f%% contra %.2f%% da conta, mas responde por apenas %.1f%% das sessões. Vale investir em mais volume nesse canal.",
				channel.Channel, channel.ConversionRate, accountRate, sessionShare,
			),
			Metrics: map[string]float64{
				"conversion_rate": channel.ConversionRate,
				"account_rate":    utils.RoundWithTwoDecimalPlace(accountRate),
				"session_share":   utils.RoundWithTwoDecimalPlace(sessionShare),
			},
			Recommendations: []domain.Recommendation{
				{
					Action: fmt.Sprintf("Ampliar a presença no canal %s com conteúdo ou mídia dedicada", channel.Channel),
					Impact: domain.LevelMedium,
					Effort: domain.LevelMedium,
				},
			},
			Source: domain.SourcePattern,
		})
	}

	return findings
}
