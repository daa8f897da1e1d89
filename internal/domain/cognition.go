package domain

import (
	"time"
)

// OperatingMode representa o modo de operação recomendado para a conta
type OperatingMode string

const (
	ModeEscalar      OperatingMode = "ESCALAR"
	ModeOtimizar     OperatingMode = "OTIMIZAR"
	ModeProteger     OperatingMode = "PROTEGER"
	ModeReestruturar OperatingMode = "REESTRUTURAR"
)

// ModeAssessment é a classificação de modo de operação derivada do health score
// e da composição de severidade dos achados
type ModeAssessment struct {
	Mode        OperatingMode `json:"mode"`
	Score       int           `json:"score"`
	Description string        `json:"description"`
}

// Constraint identifica o gargalo que limita a performance da conta
type Constraint string

const (
	ConstraintTraffic    Constraint = "traffic"
	ConstraintConversion Constraint = "conversion"
	ConstraintAOV        Constraint = "aov"
	ConstraintMargin     Constraint = "margin"
	ConstraintBudget     Constraint = "budget"
)

// Bottleneck é o único gargalo de maior alavancagem da análise.
// Exatamente um por resposta, nunca uma lista.
type Bottleneck struct {
	Constraint      Constraint       `json:"constraint"`
	Severity        FindingSeverity  `json:"severity"`
	FinancialImpact *FinancialImpact `json:"financial_impact,omitempty"`
	UnlockAction    string           `json:"unlock_action"`
}

// PacingScenario classifica a projeção de fim de mês contra a meta
type PacingScenario string

const (
	PacingOnTrack  PacingScenario = "on_track"
	PacingAtRisk   PacingScenario = "at_risk"
	PacingOffTrack PacingScenario = "off_track"
)

// PacingProjection projeta linearmente uma métrica acompanhada até o fim do mês
type PacingProjection struct {
	Metric              string         `json:"metric"`
	Label               string         `json:"label"`
	CurrentValue        float64        `json:"current_value"`
	Target              float64        `json:"target"`
	ProjectedEndOfMonth float64        `json:"projected_end_of_month"`
	ProjectedGapBRL     float64        `json:"projected_gap_brl"`
	Scenario            PacingScenario `json:"scenario"`
}

// KeyMetric é uma métrica destacada no resumo executivo, com seu status
type KeyMetric struct {
	Name   string          `json:"name"`
	Value  string          `json:"value"`
	Status FindingSeverity `json:"status"`
}

// ExecutiveSummary é o resumo da análise. TopAction sempre referencia a ação
// de desbloqueio do gargalo selecionado.
type ExecutiveSummary struct {
	Headline   string      `json:"headline"`
	TopAction  string      `json:"top_action"`
	KeyMetrics []KeyMetric `json:"key_metrics"`
}

// RankedRecommendation é uma recomendação ordenada pelo ranker, com rastreio
// do achado de origem
type RankedRecommendation struct {
	Recommendation
	FindingID string `json:"finding_id,omitempty"`
	Score     int    `json:"score"`
}

// CognitiveResponse é o resultado completo de uma análise cognitiva de conta
type CognitiveResponse struct {
	AccountID          string                 `json:"account_id"`
	Period             Period                 `json:"period"`
	Mode               ModeAssessment         `json:"mode"`
	Bottleneck         Bottleneck             `json:"bottleneck"`
	HealthScore        int                    `json:"health_score"`
	Findings           []CognitiveFinding     `json:"findings"`
	PacingProjections  []PacingProjection     `json:"pacing_projections"`
	TopRecommendations []RankedRecommendation `json:"top_recommendations"`
	ExecutiveSummary   ExecutiveSummary       `json:"executive_summary"`
	GeneratedAt        time.Time              `json:"generated_at"`
}
