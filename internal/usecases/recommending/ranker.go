// Package recommending ordena e deduplica as recomendações produzidas pelos
// achados da análise cognitiva.
package recommending

import (
	"sort"
	"strings"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

// Pontuação de ordenação: impacto alto e esforço baixo valem 0; quanto menor a
// soma, melhor a recomendação.
var impactRank = map[domain.Level]int{
	domain.LevelHigh:   0,
	domain.LevelMedium: 1,
	domain.LevelLow:    2,
}

var effortRank = map[domain.Level]int{
	domain.LevelLow:    0,
	domain.LevelMedium: 1,
	domain.LevelHigh:   2,
}

// Score calcula a pontuação de ordenação de uma recomendação
func Score(rec domain.Recommendation) int {
	return impactRank[rec.Impact] + effortRank[rec.Effort]
}

// QuickWins extrai as recomendações de esforço baixo e impacto alto, que têm
// precedência na deduplicação do ranqueamento
func QuickWins(findings []domain.CognitiveFinding) []domain.RankedRecommendation {
	wins := make([]domain.RankedRecommendation, 0)
	for _, finding := range findings {
		for _, rec := range finding.Recommendations {
			if rec.Effort == domain.LevelLow && rec.Impact == domain.LevelHigh {
				wins = append(wins, domain.RankedRecommendation{
					Recommendation: rec,
					FindingID:      finding.ID,
					Score:          Score(rec),
				})
			}
		}
	}
	return wins
}

// Rank mescla as recomendações dos achados com os quick wins pré-sinalizados,
// deduplica pelo texto da ação (minúsculas, sem espaços nas bordas; a primeira
// ocorrência vence, então quick wins têm precedência) e ordena por pontuação
// crescente com ordenação estável: empates preservam a ordem de inserção.
// O resultado é limitado a max itens.
func Rank(findings []domain.CognitiveFinding, quickWins []domain.RankedRecommendation, max int) []domain.RankedRecommendation {
	merged := make([]domain.RankedRecommendation, 0)
	seen := make(map[string]bool)

	add := func(rec domain.Recommendation, findingID string) {
		key := strings.ToLower(strings.TrimSpace(rec.Action))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true

		merged = append(merged, domain.RankedRecommendation{
			Recommendation: rec,
			FindingID:      findingID,
			Score:          Score(rec),
		})
	}

	// Quick wins entram primeiro para vencer a deduplicação
	for _, win := range quickWins {
		add(win.Recommendation, win.FindingID)
	}

	for _, finding := range findings {
		for _, rec := range finding.Recommendations {
			add(rec, finding.ID)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score < merged[j].Score
	})

	if max > 0 && len(merged) > max {
		merged = merged[:max]
	}

	return merged
}
