// Package scoring calcula o Influencer Quality Score (IQS): cinco componentes
// ponderados, cada um composto por sub-métricas pontuadas por escadas de
// limiares, consolidados em uma nota única de 0 a 100 com o detalhamento
// completo do cálculo.
package scoring

import (
	"math"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// Calculate pontua o perfil de um parceiro. Função pura: mesma entrada, mesmo
// resultado.
func Calculate(
	profile domain.InfluencerProfile,
	engagement domain.EngagementMetrics,
	history []domain.Collaboration,
) *domain.IQSResult {
	tier := TierFor(profile.Followers)

	components := []domain.IQSComponent{
		engajamentoComponent(tier, engagement),
		relevanciaComponent(profile, engagement),
		performanceComponent(history),
		qualidadeAudienciaComponent(engagement),
		conteudoComponent(profile),
	}

	overall := 0.0
	for _, component := range components {
		overall += component.Score * component.Weight
	}

	iqs := int(math.Round(utils.Clamp(overall, 0, 100)))

	return &domain.IQSResult{
		IQS:       iqs,
		Tier:      tier,
		Breakdown: components,
		ProfileID: profile.ID,
		Username:  profile.Username,
	}
}

// buildComponent pontua as sub-métricas e consolida o score do componente pela
// soma ponderada. Os pesos das sub-métricas de cada componente somam 1.0.
func buildComponent(name string, weight float64, subMetrics []domain.IQSSubMetric) domain.IQSComponent {
	score := 0.0
	for _, sub := range subMetrics {
		score += sub.Score * sub.Weight
	}

	return domain.IQSComponent{
		Name:       name,
		Score:      utils.Clamp(utils.RoundWithTwoDecimalPlace(score), 0, 100),
		Weight:     weight,
		SubMetrics: subMetrics,
	}
}

func engajamentoComponent(tier domain.InfluencerTier, engagement domain.EngagementMetrics) domain.IQSComponent {
	return buildComponent("engajamento", WeightEngajamento, []domain.IQSSubMetric{
		{
			Name:   "taxa_engajamento",
			Value:  engagement.EngagementRatePct,
			Score:  LinearScore(engagement.EngagementRatePct, EngagementLadderFor(tier)),
			Weight: 0.5,
		},
		{
			Name:   "razao_comentarios_curtidas",
			Value:  engagement.CommentToLikeRatio,
			Score:  LinearScore(engagement.CommentToLikeRatio, ladderCommentRatio),
			Weight: 0.25,
		},
		{
			Name:   "frequencia_postagem",
			Value:  engagement.PostsPerWeek,
			Score:  LinearScore(engagement.PostsPerWeek, ladderPostsPerWeek),
			Weight: 0.25,
		},
	})
}

func relevanciaComponent(profile domain.InfluencerProfile, engagement domain.EngagementMetrics) domain.IQSComponent {
	return buildComponent("relevancia", WeightRelevancia, []domain.IQSSubMetric{
		{
			Name:   "alinhamento_nicho",
			Value:  profile.NicheAlignmentPct,
			Score:  LinearScore(profile.NicheAlignmentPct, ladderNicheAlignment),
			Weight: 0.4,
		},
		{
			Name:   "crescimento_seguidores",
			Value:  engagement.FollowerGrowthPctMonth,
			Score:  LinearScore(engagement.FollowerGrowthPctMonth, ladderFollowerGrowth),
			Weight: 0.3,
		},
		{
			Name:   "alcance_medio",
			Value:  profile.AvgReachPct,
			Score:  LinearScore(profile.AvgReachPct, ladderAvgReach),
			Weight: 0.3,
		},
	})
}

// performanceComponent pontua o histórico de colaborações. Sem histórico,
// todas as sub-métricas recebem a nota neutra: ausência de dado não é falha.
func performanceComponent(history []domain.Collaboration) domain.IQSComponent {
	if len(history) == 0 {
		return buildComponent("performance", WeightPerformance, []domain.IQSSubMetric{
			{Name: "taxa_sucesso_colaboracoes", Value: 0, Score: NeutralScore, Weight: 0.4},
			{Name: "roas_medio_colaboracoes", Value: 0, Score: NeutralScore, Weight: 0.35},
			{Name: "taxa_conversao_media", Value: 0, Score: NeutralScore, Weight: 0.25},
		})
	}

	successful := 0
	totalROAS := 0.0
	totalConversion := 0.0
	for _, collab := range history {
		if collab.Successful {
			successful++
		}
		totalROAS += collab.ROAS
		totalConversion += collab.ConversionPct
	}

	count := float64(len(history))
	successRate := utils.SafePercentage(float64(successful), count)
	avgROAS := utils.RoundWithTwoDecimalPlace(totalROAS / count)
	avgConversion := utils.RoundWithTwoDecimalPlace(totalConversion / count)

	return buildComponent("performance", WeightPerformance, []domain.IQSSubMetric{
		{
			Name:   "taxa_sucesso_colaboracoes",
			Value:  utils.RoundWithTwoDecimalPlace(successRate),
			Score:  LinearScore(successRate, ladderCollabSuccess),
			Weight: 0.4,
		},
		{
			Name:   "roas_medio_colaboracoes",
			Value:  avgROAS,
			Score:  LinearScore(avgROAS, ladderCollabROAS),
			Weight: 0.35,
		},
		{
			Name:   "taxa_conversao_media",
			Value:  avgConversion,
			Score:  LinearScore(avgConversion, ladderCollabConv),
			Weight: 0.25,
		},
	})
}

func qualidadeAudienciaComponent(engagement domain.EngagementMetrics) domain.IQSComponent {
	return buildComponent("qualidadeAudiencia", WeightQualidadeAudiencia, []domain.IQSSubMetric{
		{
			Name:   "seguidores_suspeitos_pct",
			Value:  engagement.SuspiciousFollowersPct,
			Score:  LinearScore(engagement.SuspiciousFollowersPct, ladderSuspicious),
			Weight: 0.4,
		},
		{
			Name:   "publico_alvo_pct",
			Value:  engagement.TargetAudiencePct,
			Score:  LinearScore(engagement.TargetAudiencePct, ladderTargetAudience),
			Weight: 0.35,
		},
		{
			Name:   "localizacao_relevante_pct",
			Value:  engagement.RelevantLocationPct,
			Score:  LinearScore(engagement.RelevantLocationPct, ladderLocation),
			Weight: 0.25,
		},
	})
}

func conteudoComponent(profile domain.InfluencerProfile) domain.IQSComponent {
	return buildComponent("conteudo", WeightConteudo, []domain.IQSSubMetric{
		{
			Name:   "qualidade_visual",
			Value:  profile.VisualQualityScore,
			Score:  LinearScore(profile.VisualQualityScore, ladderVisualQuality),
			Weight: 0.4,
		},
		{
			Name:   "consistencia_postagem",
			Value:  profile.PostingConsistency,
			Score:  LinearScore(profile.PostingConsistency, ladderConsistency),
			Weight: 0.35,
		},
		{
			Name:   "variedade_formatos",
			Value:  profile.FormatVarietyScore,
			Score:  LinearScore(profile.FormatVarietyScore, ladderFormatVariety),
			Weight: 0.25,
		},
	})
}
