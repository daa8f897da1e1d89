package domain

// FindingCategory classifica a natureza da condição detectada
type FindingCategory string

const (
	CategoryEfficiency  FindingCategory = "efficiency"
	CategoryOpportunity FindingCategory = "opportunity"
	CategoryRisk        FindingCategory = "risk"
	CategoryComposition FindingCategory = "composition"
	CategoryPlanningGap FindingCategory = "planning_gap"
)

// FindingSeverity indica a gravidade de um achado
type FindingSeverity string

const (
	SeverityDanger  FindingSeverity = "danger"
	SeverityWarning FindingSeverity = "warning"
	SeveritySuccess FindingSeverity = "success"
)

// FindingSource indica a origem do achado. Hoje apenas regras de padrão,
// reservado para fontes futuras.
type FindingSource string

const (
	SourcePattern FindingSource = "pattern"
)

// Level representa a escala de impacto e esforço de uma recomendação
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Recommendation é uma ação sugerida vinculada a um achado
type Recommendation struct {
	Action string   `json:"action"`
	Impact Level    `json:"impact"`
	Effort Level    `json:"effort"`
	Steps  []string `json:"steps,omitempty"`
}

// FinancialImpact quantifica o efeito monetário de um achado.
// Invariante: NetImpactBRL = GrossImpactBRL - CostBRL, nunca negativo.
// Calculation reproduz a aritmética com os números reais, para auditoria.
type FinancialImpact struct {
	GrossImpactBRL float64 `json:"gross_impact_brl"`
	CostBRL        float64 `json:"cost_brl"`
	NetImpactBRL   float64 `json:"net_impact_brl"`
	Calculation    string  `json:"calculation"`
}

// CognitiveFinding é uma condição detectada por um analisador de padrões.
// O ID é determinístico por analisador + entidade gatilho, o que permite
// correlacionar ações registradas pela UI entre execuções.
type CognitiveFinding struct {
	ID              string             `json:"id"`
	Category        FindingCategory    `json:"category"`
	Severity        FindingSeverity    `json:"severity"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Metrics         map[string]float64 `json:"metrics,omitempty"`
	Recommendations []Recommendation   `json:"recommendations,omitempty"`
	FinancialImpact *FinancialImpact   `json:"financial_impact,omitempty"`
	RootCause       string             `json:"root_cause,omitempty"`
	Source          FindingSource      `json:"source"`
}
