package cognition

import (
	"time"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// ProjectPacing extrapola linearmente cada métrica acompanhada até o fim do
// mês (realizado x diasDoMês/diaAtual) e classifica o cenário contra a meta.
// As fronteiras são inclusivas: projeção em exatamente 95% da meta é on_track
// e em exatamente 80% é at_risk.
func (s *Synthesizer) ProjectPacing(cube *domain.DataCube, referenceDate time.Time) []domain.PacingProjection {
	projections := make([]domain.PacingProjection, 0)
	if cube.Planning == nil {
		return projections
	}

	day := referenceDate.Day()
	daysInMonth := time.Date(referenceDate.Year(), referenceDate.Month()+1, 0, 0, 0, 0, 0, referenceDate.Location()).Day()
	if day == 0 {
		return projections
	}

	extrapolation := float64(daysInMonth) / float64(day)
	thresholds := s.policy.Pacing

	for _, target := range cube.Planning.Targets {
		current, ok := cube.CurrentValueFor(target.Metric)
		if !ok || target.Value <= 0 {
			continue
		}

		projected := utils.RoundWithTwoDecimalPlace(current * extrapolation)
		ratio := utils.SafePercentage(projected, target.Value)

		scenario := domain.PacingOffTrack
		switch {
		case ratio >= thresholds.OnTrackPct:
			scenario = domain.PacingOnTrack
		case ratio >= thresholds.AtRiskPct:
			scenario = domain.PacingAtRisk
		}

		gap := utils.RoundWithTwoDecimalPlace(target.Value - projected)
		if gap < 0 {
			gap = 0
		}

		projections = append(projections, domain.PacingProjection{
			Metric:              target.Metric,
			Label:               target.Label,
			CurrentValue:        utils.RoundWithTwoDecimalPlace(current),
			Target:              target.Value,
			ProjectedEndOfMonth: projected,
			ProjectedGapBRL:     gap,
			Scenario:            scenario,
		})
	}

	return projections
}
