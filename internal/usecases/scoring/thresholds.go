package scoring

import (
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

// Ladder é uma escada de limiares excellent/good/medium/low. Um valor comparado
// à escada vira uma das quatro notas {100, 75, 50, 25}. A direção é
// parametrizada: para métricas onde menor é melhor (ex.: % de seguidores
// suspeitos), as comparações se invertem.
type Ladder struct {
	Excellent      float64
	Good           float64
	Medium         float64
	Low            float64
	HigherIsBetter bool
}

// LinearScore aplica a escada de limiares a um valor
func LinearScore(value float64, ladder Ladder) float64 {
	if ladder.HigherIsBetter {
		switch {
		case value >= ladder.Excellent:
			return 100
		case value >= ladder.Good:
			return 75
		case value >= ladder.Medium:
			return 50
		default:
			return 25
		}
	}

	switch {
	case value <= ladder.Excellent:
		return 100
	case value <= ladder.Good:
		return 75
	case value <= ladder.Medium:
		return 50
	default:
		return 25
	}
}

// Pesos dos cinco componentes do IQS. Somam exatamente 1.0.
const (
	WeightEngajamento        = 0.30
	WeightRelevancia         = 0.25
	WeightPerformance        = 0.20
	WeightQualidadeAudiencia = 0.15
	WeightConteudo           = 0.10
)

// Nota neutra usada quando não há histórico: ausência de dado não pode
// penalizar como se fosse falha
const NeutralScore = 50.0

// TierFor classifica o parceiro pelo número de seguidores
func TierFor(followers int) domain.InfluencerTier {
	switch {
	case followers < 10_000:
		return domain.TierNano
	case followers < 100_000:
		return domain.TierMicro
	case followers < 500_000:
		return domain.TierMid
	case followers < 1_000_000:
		return domain.TierMacro
	default:
		return domain.TierMega
	}
}

// engagementLadders define o que é uma boa taxa de engajamento por tier de
// conta. Contas menores engajam proporcionalmente mais; achatar isso para um
// limiar único distorceria o score.
var engagementLadders = map[domain.InfluencerTier]Ladder{
	domain.TierNano:  {Excellent: 8.0, Good: 6.0, Medium: 4.0, Low: 2.0, HigherIsBetter: true},
	domain.TierMicro: {Excellent: 6.0, Good: 4.0, Medium: 2.5, Low: 1.5, HigherIsBetter: true},
	domain.TierMid:   {Excellent: 5.0, Good: 3.0, Medium: 2.0, Low: 1.0, HigherIsBetter: true},
	domain.TierMacro: {Excellent: 4.0, Good: 2.5, Medium: 1.5, Low: 0.8, HigherIsBetter: true},
	domain.TierMega:  {Excellent: 3.0, Good: 2.0, Medium: 1.0, Low: 0.5, HigherIsBetter: true},
}

// EngagementLadderFor devolve a escada de engajamento do tier
func EngagementLadderFor(tier domain.InfluencerTier) Ladder {
	ladder, ok := engagementLadders[tier]
	if !ok {
		return engagementLadders[domain.TierMid]
	}
	return ladder
}

// Demais escadas dos sub-métricas, independentes de tier
var (
	ladderCommentRatio   = Ladder{Excellent: 0.05, Good: 0.03, Medium: 0.02, Low: 0.01, HigherIsBetter: true}
	ladderPostsPerWeek   = Ladder{Excellent: 5, Good: 3, Medium: 2, Low: 1, HigherIsBetter: true}
	ladderNicheAlignment = Ladder{Excellent: 80, Good: 60, Medium: 40, Low: 20, HigherIsBetter: true}
	ladderFollowerGrowth = Ladder{Excellent: 8, Good: 4, Medium: 2, Low: 0.5, HigherIsBetter: true}
	ladderAvgReach       = Ladder{Excellent: 40, Good: 30, Medium: 20, Low: 10, HigherIsBetter: true}
	ladderCollabSuccess  = Ladder{Excellent: 80, Good: 60, Medium: 40, Low: 20, HigherIsBetter: true}
	ladderCollabROAS     = Ladder{Excellent: 6, Good: 4, Medium: 2, Low: 1, HigherIsBetter: true}
	ladderCollabConv     = Ladder{Excellent: 3, Good: 2, Medium: 1, Low: 0.5, HigherIsBetter: true}
	ladderSuspicious     = Ladder{Excellent: 2, Good: 5, Medium: 10, Low: 20, HigherIsBetter: false}
	ladderTargetAudience = Ladder{Excellent: 60, Good: 45, Medium: 30, Low: 15, HigherIsBetter: true}
	ladderLocation       = Ladder{Excellent: 70, Good: 50, Medium: 30, Low: 15, HigherIsBetter: true}
	ladderVisualQuality  = Ladder{Excellent: 80, Good: 60, Medium: 40, Low: 20, HigherIsBetter: true}
	ladderConsistency    = Ladder{Excellent: 80, Good: 60, Medium: 40, Low: 20, HigherIsBetter: true}
	ladderFormatVariety  = Ladder{Excellent: 75, Good: 55, Medium: 35, Low: 15, HigherIsBetter: true}
)
