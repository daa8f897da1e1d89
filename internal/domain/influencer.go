package domain

// InfluencerTier classifica a conta do parceiro pelo número de seguidores.
// Os limiares de engajamento considerados "bons" variam por tier.
type InfluencerTier string

const (
	TierNano  InfluencerTier = "nano"
	TierMicro InfluencerTier = "micro"
	TierMid   InfluencerTier = "mid"
	TierMacro InfluencerTier = "macro"
	TierMega  InfluencerTier = "mega"
)

// InfluencerProfile representa o perfil de um parceiro externo (influenciador)
type InfluencerProfile struct {
	ID                 string  `json:"id"`
	Username           string  `json:"username"`
	Followers          int     `json:"followers"`
	NicheAlignmentPct  float64 `json:"niche_alignment_pct"`
	AvgReachPct        float64 `json:"avg_reach_pct"`
	VisualQualityScore float64 `json:"visual_quality_score"`
	PostingConsistency float64 `json:"posting_consistency"`
	FormatVarietyScore float64 `json:"format_variety_score"`
}

// EngagementMetrics agrupa as métricas de engajamento e audiência do parceiro
type EngagementMetrics struct {
	EngagementRatePct      float64 `json:"engagement_rate_pct"`
	CommentToLikeRatio     float64 `json:"comment_to_like_ratio"`
	PostsPerWeek           float64 `json:"posts_per_week"`
	FollowerGrowthPctMonth float64 `json:"follower_growth_pct_month"`
	SuspiciousFollowersPct float64 `json:"suspicious_followers_pct"`
	TargetAudiencePct      float64 `json:"target_audience_pct"`
	RelevantLocationPct    float64 `json:"relevant_location_pct"`
}

// Collaboration representa uma colaboração passada com o parceiro
type Collaboration struct {
	CampaignID    string  `json:"campaign_id"`
	Successful    bool    `json:"successful"`
	ROAS          float64 `json:"roas"`
	ConversionPct float64 `json:"conversion_pct"`
}

// IQSSubMetric é a pontuação de uma sub-métrica dentro de um componente
type IQSSubMetric struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// IQSComponent é um dos cinco componentes ponderados do IQS
type IQSComponent struct {
	Name       string         `json:"name"`
	Score      float64        `json:"score"`
	Weight     float64        `json:"weight"`
	SubMetrics []IQSSubMetric `json:"sub_metrics"`
}

// IQSResult é o resultado completo do Influencer Quality Score.
// IQS = soma de (componente.Score x componente.Weight), arredondado e
// limitado ao intervalo [0, 100].
type IQSResult struct {
	IQS        int            `json:"iqs"`
	Tier       InfluencerTier `json:"tier"`
	Breakdown  []IQSComponent `json:"breakdown"`
	ProfileID  string         `json:"profile_id"`
	Username   string         `json:"username"`
}
