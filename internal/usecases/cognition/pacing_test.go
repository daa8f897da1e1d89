package cognition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

func TestProjectPacing(t *testing.T) {
	synthesizer := NewSynthesizer(config.DefaultPolicy())

	// Dia 10 de um mês de 30 dias: extrapolação linear x3
	referenceDate := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	cube := &domain.DataCube{
		Account: domain.EntityMetrics{
			Revenue:     950.0,
			Spend:       800.0,
			Conversions: 50,
		},
		Planning: &domain.PlanningTargets{
			Month: "2024-04",
			Targets: []domain.PlanningTarget{
				{Metric: domain.MetricRevenue, Label: "Receita", Value: 3000.0},
				{Metric: domain.MetricSpend, Label: "Investimento", Value: 3000.0},
				{Metric: domain.MetricConversions, Label: "Conversões", Value: 300.0},
			},
		},
	}

	projections := synthesizer.ProjectPacing(cube, referenceDate)

	assert.Len(t, projections, 3)

	// Projeção em exatamente 95% da meta é on_track (fronteira inclusiva)
	revenue := projections[0]
	assert.Equal(t, domain.MetricRevenue, revenue.Metric)
	assert.Equal(t, 2850.0, revenue.ProjectedEndOfMonth)
	assert.Equal(t, domain.PacingOnTrack, revenue.Scenario)
	assert.Equal(t, 150.0, revenue.ProjectedGapBRL)

	// Projeção em exatamente 80% da meta é at_risk
	spend := projections[1]
	assert.Equal(t, 2400.0, spend.ProjectedEndOfMonth)
	assert.Equal(t, domain.PacingAtRisk, spend.Scenario)
	assert.Equal(t, 600.0, spend.ProjectedGapBRL)

	conversions := projections[2]
	assert.Equal(t, 150.0, conversions.ProjectedEndOfMonth)
	assert.Equal(t, domain.PacingOffTrack, conversions.Scenario)
}

func TestProjectPacing_ProjecaoAcimaDaMetaZeraOGap(t *testing.T) {
	synthesizer := NewSynthesizer(config.DefaultPolicy())

	cube := &domain.DataCube{
		Account: domain.EntityMetrics{Revenue: 1500.0},
		Planning: &domain.PlanningTargets{
			Targets: []domain.PlanningTarget{
				{Metric: domain.MetricRevenue, Label: "Receita", Value: 3000.0},
			},
		},
	}

	projections := synthesizer.ProjectPacing(cube, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))

	assert.Len(t, projections, 1)
	assert.Equal(t, 4500.0, projections[0].ProjectedEndOfMonth)
	assert.Equal(t, domain.PacingOnTrack, projections[0].Scenario)
	assert.Equal(t, 0.0, projections[0].ProjectedGapBRL)
}

func TestProjectPacing_CasosDegenerados(t *testing.T) {
	synthesizer := NewSynthesizer(config.DefaultPolicy())
	referenceDate := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Sem planejamento não projeta nada", func(t *testing.T) {
		assert.Empty(t, synthesizer.ProjectPacing(&domain.DataCube{}, referenceDate))
	})

	t.Run("Meta sem valor positivo é ignorada", func(t *testing.T) {
		cube := &domain.DataCube{
			Planning: &domain.PlanningTargets{
				Targets: []domain.PlanningTarget{
					{Metric: domain.MetricRevenue, Label: "Receita", Value: 0},
				},
			},
		}

		assert.Empty(t, synthesizer.ProjectPacing(cube, referenceDate))
	})

	t.Run("Métrica desconhecida é ignorada", func(t *testing.T) {
		cube := &domain.DataCube{
			Planning: &domain.PlanningTargets{
				Targets: []domain.PlanningTarget{
					{Metric: "bounce_rate", Label: "Rejeição", Value: 10},
				},
			},
		}

		assert.Empty(t, synthesizer.ProjectPacing(cube, referenceDate))
	})
}
