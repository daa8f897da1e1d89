package recommending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

func findingWith(id string, recs ...domain.Recommendation) domain.CognitiveFinding {
	return domain.CognitiveFinding{ID: id, Recommendations: recs}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		impact   domain.Level
		effort   domain.Level
		expected int
	}{
		{name: "Impacto alto e esforço baixo é a melhor pontuação", impact: domain.LevelHigh, effort: domain.LevelLow, expected: 0},
		{name: "Impacto alto e esforço alto", impact: domain.LevelHigh, effort: domain.LevelHigh, expected: 2},
		{name: "Impacto baixo e esforço baixo", impact: domain.LevelLow, effort: domain.LevelLow, expected: 2},
		{name: "Impacto baixo e esforço alto é a pior pontuação", impact: domain.LevelLow, effort: domain.LevelHigh, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(domain.Recommendation{Impact: tt.impact, Effort: tt.effort}))
		})
	}
}

func TestRank_OrdenaPorPontuacaoCrescente(t *testing.T) {
	findings := []domain.CognitiveFinding{
		findingWith("finding_a", domain.Recommendation{Action: "Revisar criativos", Impact: domain.LevelMedium, Effort: domain.LevelMedium}),
		findingWith("finding_b", domain.Recommendation{Action: "Pausar campanha sem conversão", Impact: domain.LevelHigh, Effort: domain.LevelLow}),
		findingWith("finding_c", domain.Recommendation{Action: "Reestruturar o funil", Impact: domain.LevelLow, Effort: domain.LevelHigh}),
	}

	ranked := Rank(findings, nil, 5)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "Pausar campanha sem conversão", ranked[0].Action)
	assert.Equal(t, "Revisar criativos", ranked[1].Action)
	assert.Equal(t, "Reestruturar o funil", ranked[2].Action)
}

func TestRank_EmpatesPreservamOrdemDeInsercao(t *testing.T) {
	findings := []domain.CognitiveFinding{
		findingWith("finding_a", domain.Recommendation{Action: "Primeira ação", Impact: domain.LevelMedium, Effort: domain.LevelLow}),
		findingWith("finding_b", domain.Recommendation{Action: "Segunda ação", Impact: domain.LevelHigh, Effort: domain.LevelMedium}),
	}

	ranked := Rank(findings, nil, 5)

	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, "Primeira ação", ranked[0].Action)
	assert.Equal(t, "Segunda ação", ranked[1].Action)
}

func TestRank_DeduplicaPeloTextoDaAcao(t *testing.T) {
	findings := []domain.CognitiveFinding{
		findingWith("finding_a", domain.Recommendation{Action: "Pausar campanha X", Impact: domain.LevelMedium, Effort: domain.LevelMedium}),
		findingWith("finding_b", domain.Recommendation{Action: "  pausar campanha x ", Impact: domain.LevelHigh, Effort: domain.LevelLow}),
	}

	ranked := Rank(findings, nil, 5)

	// A primeira ocorrência vence, mesmo com pontuação pior
	assert.Len(t, ranked, 1)
	assert.Equal(t, "finding_a", ranked[0].FindingID)
	assert.Equal(t, "Pausar campanha X", ranked[0].Action)
}

func TestRank_QuickWinsVencemADeduplicacao(t *testing.T) {
	quickWinRec := domain.Recommendation{Action: "Pausar campanha X", Impact: domain.LevelHigh, Effort: domain.LevelLow}
	findings := []domain.CognitiveFinding{
		findingWith("finding_comum", domain.Recommendation{Action: "pausar campanha x", Impact: domain.LevelLow, Effort: domain.LevelHigh}),
		findingWith("finding_quick_win", quickWinRec),
	}

	ranked := Rank(findings, QuickWins(findings), 5)

	assert.Len(t, ranked, 1)
	assert.Equal(t, "finding_quick_win", ranked[0].FindingID)
	assert.Equal(t, 0, ranked[0].Score)
}

func TestRank_LimitaAoMaximo(t *testing.T) {
	findings := []domain.CognitiveFinding{
		findingWith("finding_a",
			domain.Recommendation{Action: "Ação 1", Impact: domain.LevelHigh, Effort: domain.LevelLow},
			domain.Recommendation{Action: "Ação 2", Impact: domain.LevelHigh, Effort: domain.LevelLow},
			domain.Recommendation{Action: "Ação 3", Impact: domain.LevelMedium, Effort: domain.LevelLow},
		),
		findingWith("finding_b",
			domain.Recommendation{Action: "Ação 4", Impact: domain.LevelMedium, Effort: domain.LevelMedium},
			domain.Recommendation{Action: "Ação 5", Impact: domain.LevelLow, Effort: domain.LevelMedium},
			domain.Recommendation{Action: "Ação 6", Impact: domain.LevelLow, Effort: domain.LevelHigh},
		),
	}

	ranked := Rank(findings, nil, 5)

	assert.Len(t, ranked, 5)
	for _, rec := range ranked {
		assert.NotEqual(t, "Ação 6", rec.Action)
	}
}

func TestRank_AcaoVaziaEIgnorada(t *testing.T) {
	findings := []domain.CognitiveFinding{
		findingWith("finding_a", domain.Recommendation{Action: "   ", Impact: domain.LevelHigh, Effort: domain.LevelLow}),
	}

	assert.Empty(t, Rank(findings, nil, 5))
}

func TestQuickWins(t *testing.T) {
	findings := []domain.CognitiveFinding{
		findingWith("finding_a", domain.Recommendation{Action: "Quick win", Impact: domain.LevelHigh, Effort: domain.LevelLow}),
		findingWith("finding_b", domain.Recommendation{Action: "Impacto alto mas esforço médio", Impact: domain.LevelHigh, Effort: domain.LevelMedium}),
		findingWith("finding_c", domain.Recommendation{Action: "Esforço baixo mas impacto médio", Impact: domain.LevelMedium, Effort: domain.LevelLow}),
	}

	wins := QuickWins(findings)

	assert.Len(t, wins, 1)
	assert.Equal(t, "finding_a", wins[0].FindingID)
	assert.Equal(t, 0, wins[0].Score)
}
