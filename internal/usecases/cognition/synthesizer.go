package cognition

import (
	"fmt"
	"strings"

	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// Synthesizer consolida os achados dos analisadores no diagnóstico da conta:
// health score, modo de operação, gargalo dominante e resumo executivo.
type Synthesizer struct {
	policy config.Policy
}

func NewSynthesizer(policy config.Policy) *Synthesizer {
	return &Synthesizer{policy: policy}
}

// HealthScore combina a composição de severidade dos achados, a distribuição
// de cenários de pacing e a razão ROAS/meta. Monotônico por construção: um
// achado danger nunca aumenta o score e um success nunca o reduz.
func (s *Synthesizer) HealthScore(
	cube *domain.DataCube,
	findings []domain.CognitiveFinding,
	projections []domain.PacingProjection,
) int {
	weights := s.policy.Health
	score := 100.0

	for _, finding := range findings {
		switch finding.Severity {
		case domain.SeverityDanger:
			score -= float64(weights.DangerPenalty)
		case domain.SeverityWarning:
			score -= float64(weights.WarningPenalty)
		case domain.SeveritySuccess:
			score += float64(weights.SuccessBonus)
		}
	}

	for _, projection := range projections {
		switch projection.Scenario {
		case domain.PacingOffTrack:
			score -= float64(weights.OffTrackPenalty)
		case domain.PacingAtRisk:
			score -= float64(weights.AtRiskPenalty)
		case domain.PacingOnTrack:
			score += float64(weights.OnTrackBonus)
		}
	}

	if target := cube.TargetFor(domain.MetricROAS); target != nil && target.Value > 0 {
		ratio := utils.SafeDivide(cube.Account.ROAS, target.Value)
		score += utils.Clamp((ratio-1)*weights.ROASRatioWeight, -weights.ROASRatioWeight, weights.ROASRatioWeight)
	}

	return int(utils.Clamp(score, 0, 100))
}

// AssessMode classifica o modo de operação a partir do health score e da
// composição dos achados. OTIMIZAR é o modo padrão quando nenhuma condição
// mais específica se aplica.
func (s *Synthesizer) AssessMode(healthScore int, findings []domain.CognitiveFinding) domain.ModeAssessment {
	thresholds := s.policy.Mode

	dangers := 0
	riskDanger := false
	for _, finding := range findings {
		if finding.Severity == domain.SeverityDanger {
			dangers++
			if finding.Category == domain.CategoryRisk {
				riskDanger = true
			}
		}
	}

	switch {
	case healthScore <= thresholds.ReestruturarMaxScore && dangers >= thresholds.ReestruturarMinDangers:
		return domain.ModeAssessment{
			Mode:        domain.ModeReestruturar,
			Score:       healthScore,
			Description: "Múltiplos problemas estruturais simultâneos: a conta precisa de revisão de fundação antes de otimizações pontuais.",
		}
	case riskDanger:
		return domain.ModeAssessment{
			Mode:        domain.ModeProteger,
			Score:       healthScore,
			Description: "Um risco grave domina a análise: proteger a operação vem antes de buscar crescimento.",
		}
	case healthScore >= thresholds.EscalarMinScore && dangers == 0:
		return domain.ModeAssessment{
			Mode:        domain.ModeEscalar,
			Score:       healthScore,
			Description: "Conta saudável e sem riscos bloqueantes: é o momento de escalar investimento com acompanhamento de ROAS marginal.",
		}
	default:
		return domain.ModeAssessment{
			Mode:        domain.ModeOtimizar,
			Score:       healthScore,
			Description: "Desempenho intermediário: há ganhos claros de eficiência antes de aumentar o investimento.",
		}
	}
}

// Ordem fixa de prioridade de gargalos para desempate determinístico
var constraintPriority = map[domain.Constraint]int{
	domain.ConstraintTraffic:    0,
	domain.ConstraintConversion: 1,
	domain.ConstraintAOV:        2,
	domain.ConstraintMargin:     3,
	domain.ConstraintBudget:     4,
}

var severityRank = map[domain.FindingSeverity]int{
	domain.SeverityDanger:  0,
	domain.SeverityWarning: 1,
	domain.SeveritySuccess: 2,
}

// SelectBottleneck escolhe o único gargalo dominante: o achado com maior
// impacto líquido; empates resolvidos por severidade (danger antes de warning)
// e depois pela ordem fixa de prioridade de restrições.
func (s *Synthesizer) SelectBottleneck(findings []domain.CognitiveFinding) domain.Bottleneck {
	var best *domain.CognitiveFinding
	var bestConstraint domain.Constraint

	for i := range findings {
		finding := &findings[i]
		if finding.FinancialImpact == nil {
			continue
		}

		constraint := constraintFor(finding.ID)

		if best == nil {
			best = finding
			bestConstraint = constraint
			continue
		}

		current := finding.FinancialImpact.NetImpactBRL
		candidate := best.FinancialImpact.NetImpactBRL

		switch {
		case current > candidate:
			best = finding
			bestConstraint = constraint
		case current == candidate:
			if severityRank[finding.Severity] < severityRank[best.Severity] ||
				(severityRank[finding.Severity] == severityRank[best.Severity] &&
					constraintPriority[constraint] < constraintPriority[bestConstraint]) {
				best = finding
				bestConstraint = constraint
			}
		}
	}

	if best == nil {
		// Sem achados quantificados não há restrição dominante: o gargalo
		// degenera para alocação de verba com ação de manutenção
		return domain.Bottleneck{
			Constraint:   domain.ConstraintBudget,
			Severity:     domain.SeveritySuccess,
			UnlockAction: "Manter a alocação atual e escalar gradualmente as entidades de maior ROAS",
		}
	}

	return domain.Bottleneck{
		Constraint:      bestConstraint,
		Severity:        best.Severity,
		FinancialImpact: best.FinancialImpact,
		UnlockAction:    unlockActionFor(best),
	}
}

// constraintFor mapeia o ID determinístico do achado para a restrição que ele
// evidencia
func constraintFor(findingID string) domain.Constraint {
	switch {
	case strings.HasPrefix(findingID, "funnel_dropoff"):
		return domain.ConstraintConversion
	case strings.HasPrefix(findingID, "planning_gap_average_ticket"):
		return domain.ConstraintAOV
	case strings.HasPrefix(findingID, "planning_gap"),
		strings.HasPrefix(findingID, "trend_regression"),
		strings.HasPrefix(findingID, "channel_opportunity"):
		return domain.ConstraintTraffic
	case strings.HasPrefix(findingID, "sku_risk"):
		return domain.ConstraintMargin
	default:
		return domain.ConstraintBudget
	}
}

func unlockActionFor(finding *domain.CognitiveFinding) string {
	if len(finding.Recommendations) > 0 {
		return finding.Recommendations[0].Action
	}
	return finding.Title
}

// BuildSummary monta o resumo executivo a partir do diagnóstico já computado.
// A ação principal referencia sempre a ação de desbloqueio do gargalo: o
// resumo é derivado, nunca calculado de forma independente.
func (s *Synthesizer) BuildSummary(
	cube *domain.DataCube,
	mode domain.ModeAssessment,
	bottleneck domain.Bottleneck,
) domain.ExecutiveSummary {
	headline := fmt.Sprintf(
		"Conta em modo %s com health score %d: gargalo dominante em %s",
		mode.Mode, mode.Score, constraintLabel(bottleneck.Constraint),
	)

	return domain.ExecutiveSummary{
		Headline:  headline,
		TopAction: bottleneck.UnlockAction,
		KeyMetrics: []domain.KeyMetric{
			{
				Name:   "ROAS",
				Value:  fmt.Sprintf("%.2f", cube.Account.ROAS),
				Status: s.roasStatus(cube.Account.ROAS),
			},
			{
				Name:   "Receita",
				Value:  fmt.Sprintf("R$ %.2f", cube.Account.Revenue),
				Status: domain.SeveritySuccess,
			},
			{
				Name:   "Investimento",
				Value:  fmt.Sprintf("R$ %.2f", cube.Account.Spend),
				Status: domain.SeveritySuccess,
			},
			{
				Name:   "CPA",
				Value:  fmt.Sprintf("R$ %.2f", cube.Account.CPA),
				Status: s.cpaStatus(cube.Account.CPA),
			},
		},
	}
}

func (s *Synthesizer) roasStatus(roas float64) domain.FindingSeverity {
	switch {
	case roas < s.policy.Status.PauseROAS:
		return domain.SeverityDanger
	case roas < s.policy.Status.HoldROAS:
		return domain.SeverityWarning
	default:
		return domain.SeveritySuccess
	}
}

func (s *Synthesizer) cpaStatus(cpa float64) domain.FindingSeverity {
	if cpa > s.policy.Status.PauseCPA {
		return domain.SeverityDanger
	}
	return domain.SeveritySuccess
}

func constraintLabel(constraint domain.Constraint) string {
	switch constraint {
	case domain.ConstraintTraffic:
		return "tráfego"
	case domain.ConstraintConversion:
		return "conversão"
	case domain.ConstraintAOV:
		return "ticket médio"
	case domain.ConstraintMargin:
		return "margem"
	default:
		return "alocação de verba"
	}
}
