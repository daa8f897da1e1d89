package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name      string
		followers int
		expected  domain.InfluencerTier
	}{
		{name: "Abaixo de 10 mil é nano", followers: 9_999, expected: domain.TierNano},
		{name: "Fronteira de 10 mil é micro", followers: 10_000, expected: domain.TierMicro},
		{name: "Abaixo de 500 mil é mid", followers: 499_999, expected: domain.TierMid},
		{name: "Fronteira de 500 mil é macro", followers: 500_000, expected: domain.TierMacro},
		{name: "Um milhão ou mais é mega", followers: 1_000_000, expected: domain.TierMega},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TierFor(tt.followers))
		})
	}
}

func TestLinearScore(t *testing.T) {
	higher := Ladder{Excellent: 80, Good: 60, Medium: 40, Low: 20, HigherIsBetter: true}
	lower := Ladder{Excellent: 2, Good: 5, Medium: 10, Low: 20, HigherIsBetter: false}

	tests := []struct {
		name     string
		value    float64
		ladder   Ladder
		expected float64
	}{
		{name: "Maior é melhor: excelente na fronteira", value: 80, ladder: higher, expected: 100},
		{name: "Maior é melhor: bom", value: 65, ladder: higher, expected: 75},
		{name: "Maior é melhor: médio", value: 40, ladder: higher, expected: 50},
		{name: "Maior é melhor: abaixo de tudo", value: 5, ladder: higher, expected: 25},
		{name: "Menor é melhor: excelente na fronteira", value: 2, ladder: lower, expected: 100},
		{name: "Menor é melhor: bom", value: 4, ladder: lower, expected: 75},
		{name: "Menor é melhor: médio", value: 8, ladder: lower, expected: 50},
		{name: "Menor é melhor: acima de tudo", value: 35, ladder: lower, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LinearScore(tt.value, tt.ladder))
		})
	}
}

func TestEngagementLadderFor_TierDesconhecidoCaiNoMid(t *testing.T) {
	assert.Equal(t, EngagementLadderFor(domain.TierMid), EngagementLadderFor(domain.InfluencerTier("desconhecido")))
}

func excellentProfile() (domain.InfluencerProfile, domain.EngagementMetrics, []domain.Collaboration) {
	profile := domain.InfluencerProfile{
		ID:                 "INF001",
		Username:           "otica.criativa",
		Followers:          50_000,
		NicheAlignmentPct:  90,
		AvgReachPct:        45,
		VisualQualityScore: 90,
		PostingConsistency: 85,
		FormatVarietyScore: 80,
	}

	engagement := domain.EngagementMetrics{
		EngagementRatePct:      7.0,
		CommentToLikeRatio:     0.06,
		PostsPerWeek:           5,
		FollowerGrowthPctMonth: 10,
		SuspiciousFollowersPct: 1.0,
		TargetAudiencePct:      70,
		RelevantLocationPct:    80,
	}

	history := []domain.Collaboration{
		{CampaignID: "COLAB01", Successful: true, ROAS: 8.0, ConversionPct: 4.0},
		{CampaignID: "COLAB02", Successful: true, ROAS: 6.5, ConversionPct: 3.5},
	}

	return profile, engagement, history
}

func TestCalculate_PerfilExcelenteChegaAoTeto(t *testing.T) {
	profile, engagement, history := excellentProfile()

	result := Calculate(profile, engagement, history)

	// Todas as sub-métricas na faixa excelente consolidam em 100
	assert.Equal(t, 100, result.IQS)
	assert.Equal(t, domain.TierMicro, result.Tier)
	assert.Equal(t, "INF001", result.ProfileID)
	assert.Equal(t, "otica.criativa", result.Username)
	assert.Len(t, result.Breakdown, 5)
}

func TestCalculate_PerfilFracoFicaNoPiso(t *testing.T) {
	profile := domain.InfluencerProfile{ID: "INF002", Username: "perfil.fraco", Followers: 5_000}
	engagement := domain.EngagementMetrics{SuspiciousFollowersPct: 40}
	history := []domain.Collaboration{
		{CampaignID: "COLAB01", Successful: false, ROAS: 0.5, ConversionPct: 0.1},
	}

	result := Calculate(profile, engagement, history)

	// Tudo na faixa mais baixa consolida em 25
	assert.Equal(t, 25, result.IQS)
	assert.Equal(t, domain.TierNano, result.Tier)
}

func TestCalculate_SemHistoricoUsaNotaNeutra(t *testing.T) {
	profile, engagement, _ := excellentProfile()

	result := Calculate(profile, engagement, nil)

	var performance *domain.IQSComponent
	for i := range result.Breakdown {
		if result.Breakdown[i].Name == "performance" {
			performance = &result.Breakdown[i]
		}
	}

	assert.NotNil(t, performance)
	assert.Equal(t, NeutralScore, performance.Score)
	for _, sub := range performance.SubMetrics {
		assert.Equal(t, NeutralScore, sub.Score)
	}
}

func TestCalculate_PesosDosComponentesSomamUm(t *testing.T) {
	profile, engagement, history := excellentProfile()

	result := Calculate(profile, engagement, history)

	totalWeight := 0.0
	for _, component := range result.Breakdown {
		totalWeight += component.Weight

		subWeight := 0.0
		for _, sub := range component.SubMetrics {
			subWeight += sub.Weight
		}
		assert.InDelta(t, 1.0, subWeight, 0.001)
	}
	assert.InDelta(t, 1.0, totalWeight, 0.001)
}

func TestCalculate_EscadaDeEngajamentoVariaPorTier(t *testing.T) {
	_, engagement, history := excellentProfile()
	engagement.EngagementRatePct = 3.5

	nano := domain.InfluencerProfile{ID: "INF003", Followers: 5_000}
	mega := domain.InfluencerProfile{ID: "INF004", Followers: 2_000_000}

	nanoResult := Calculate(nano, engagement, history)
	megaResult := Calculate(mega, engagement, history)

	// 3.5% de engajamento é pouco para uma conta nano e excelente para uma mega
	assert.Less(t, nanoResult.Breakdown[0].Score, megaResult.Breakdown[0].Score)
}

func TestCalculate_Deterministico(t *testing.T) {
	profile, engagement, history := excellentProfile()

	first := Calculate(profile, engagement, history)
	second := Calculate(profile, engagement, history)

	assert.Equal(t, first, second)
}

func TestCalculate_HistoricoMistoPonderaMedias(t *testing.T) {
	profile, engagement, _ := excellentProfile()
	history := []domain.Collaboration{
		{CampaignID: "COLAB01", Successful: true, ROAS: 5.0, ConversionPct: 2.5},
		{CampaignID: "COLAB02", Successful: false, ROAS: 1.0, ConversionPct: 0.5},
	}

	result := Calculate(profile, engagement, history)

	var performance *domain.IQSComponent
	for i := range result.Breakdown {
		if result.Breakdown[i].Name == "performance" {
			performance = &result.Breakdown[i]
		}
	}

	assert.NotNil(t, performance)

	// Sucesso 50% => 50; ROAS médio 3.0 => 50; conversão média 1.5 => 50
	assert.Equal(t, 50.0, performance.SubMetrics[0].Score)
	assert.Equal(t, 3.0, performance.SubMetrics[1].Value)
	assert.Equal(t, 50.0, performance.SubMetrics[1].Score)
	assert.Equal(t, 1.5, performance.SubMetrics[2].Value)
	assert.Equal(t, 50.0, performance.SubMetrics[2].Score)
}
