package config

// Policy reúne todas as tabelas de regra do motor de análise em estruturas
// nomeadas, para que os limiares possam ser ajustados e testados de forma
// independente do fluxo de controle dos analisadores.
type Policy struct {
	Status  StatusThresholds
	Device  DeviceThresholds
	Waste   WasteThresholds
	Slices  SliceThresholds
	Funnel  FunnelThresholds
	Trend   TrendThresholds
	Pacing  PacingThresholds
	Health  HealthWeights
	Mode    ModeThresholds
	Budget  BudgetPolicy
	Ranking RankingPolicy
}

// StatusThresholds é a tabela canônica de classificação de entidades.
// O sistema de origem usava limiares levemente diferentes entre endpoints;
// aqui existe uma única tabela.
type StatusThresholds struct {
	PauseROAS          float64 // pause quando ROAS abaixo deste nível
	PauseCPA           float64 // pause quando CPA acima deste teto
	HoldROAS           float64 // hold quando ROAS abaixo deste nível
	HoldMarginPct      float64 // hold quando margem abaixo deste piso
	EscalateStockUnits int     // escalate exige estoque acima deste mínimo
}

// DeviceThresholds parametriza os analisadores de dispositivo
type DeviceThresholds struct {
	UnderperformanceRatio float64 // fração do ROAS do melhor dispositivo abaixo da qual há ineficiência
	DangerRatio           float64 // fração abaixo da qual a severidade sobe para danger
	MinSpendBRL           float64 // piso de investimento para o achado ser relevante
	OpportunityROAS       float64 // ROAS mínimo para caracterizar oportunidade
	OpportunityMaxShare   float64 // participação de receita máxima (%) para caracterizar subinvestimento
}

// WasteThresholds parametriza o analisador de gasto sem retorno
type WasteThresholds struct {
	MinSpendBRL float64
}

// SliceThresholds parametriza os analisadores de demografia e região
type SliceThresholds struct {
	ConcentrationSharePct float64 // participação de receita acima da qual há risco de concentração
	ReallocationRatio     float64 // razão mínima entre melhor e pior ROAS para sugerir realocação
	MinCostBRL            float64
}

// FunnelThresholds parametriza o analisador de queda do funil
type FunnelThresholds struct {
	DropOffWarningPct float64
	DropOffDangerPct  float64
}

// TrendThresholds parametriza a comparação com o período anterior
type TrendThresholds struct {
	RevenueDropWarningPct float64
	RevenueDropDangerPct  float64
	ROASDropWarningPct    float64
}

// PacingThresholds define as fronteiras de cenário do pacing. As fronteiras
// são inclusivas: projeção em exatamente 95% da meta é on_track.
type PacingThresholds struct {
	OnTrackPct float64
	AtRiskPct  float64
}

// HealthWeights define os pesos do health score. Achados danger sempre
// reduzem o score e success nunca o reduz (monotonicidade).
type HealthWeights struct {
	DangerPenalty   int
	WarningPenalty  int
	SuccessBonus    int
	OffTrackPenalty int
	AtRiskPenalty   int
	OnTrackBonus    int
	ROASRatioWeight float64
}

// ModeThresholds define as fronteiras de classificação do modo de operação
type ModeThresholds struct {
	EscalarMinScore        int
	ReestruturarMaxScore   int
	ReestruturarMinDangers int
}

// BudgetPolicy parametriza o otimizador de verba
type BudgetPolicy struct {
	ElasticityDecay float64 // decaimento do ROAS marginal ao escalar investimento
	MaxShiftPct     float64 // fração máxima do orçamento atual que pode ser movida por entidade
	Confidence      float64 // confiança reportada no plano, refletindo a hipótese de elasticidade
}

// RankingPolicy parametriza o ranker de recomendações
type RankingPolicy struct {
	MaxRecommendations int
}

// DefaultPolicy retorna a tabela de regras padrão do motor
func DefaultPolicy() Policy {
	return Policy{
		Status: StatusThresholds{
			PauseROAS:          5.0,
			PauseCPA:           80.0,
			HoldROAS:           7.0,
			HoldMarginPct:      25.0,
			EscalateStockUnits: 20,
		},
		Device: DeviceThresholds{
			UnderperformanceRatio: 0.5,
			DangerRatio:           0.3,
			MinSpendBRL:           100.0,
			OpportunityROAS:       7.0,
			OpportunityMaxShare:   40.0,
		},
		Waste: WasteThresholds{
			MinSpendBRL: 100.0,
		},
		Slices: SliceThresholds{
			ConcentrationSharePct: 60.0,
			ReallocationRatio:     2.0,
			MinCostBRL:            100.0,
		},
		Funnel: FunnelThresholds{
			DropOffWarningPct: 60.0,
			DropOffDangerPct:  80.0,
		},
		Trend: TrendThresholds{
			RevenueDropWarningPct: 15.0,
			RevenueDropDangerPct:  30.0,
			ROASDropWarningPct:    20.0,
		},
		Pacing: PacingThresholds{
			OnTrackPct: 95.0,
			AtRiskPct:  80.0,
		},
		Health: HealthWeights{
			DangerPenalty:   15,
			WarningPenalty:  5,
			SuccessBonus:    3,
			OffTrackPenalty: 8,
			AtRiskPenalty:   4,
			OnTrackBonus:    2,
			ROASRatioWeight: 10.0,
		},
		Mode: ModeThresholds{
			EscalarMinScore:        75,
			ReestruturarMaxScore:   40,
			ReestruturarMinDangers: 2,
		},
		Budget: BudgetPolicy{
			ElasticityDecay: 0.3,
			MaxShiftPct:     0.5,
			Confidence:      0.3,
		},
		Ranking: RankingPolicy{
			MaxRecommendations: 5,
		},
	}
}

// EnginePolicy materializa a tabela de regras a partir da configuração de
// ambiente, mantendo os defaults para o que não for sobrescrito.
func (c *Config) EnginePolicy() Policy {
	policy := DefaultPolicy()

	if c == nil {
		return policy
	}

	if c.Engine.ROASPauseLevel > 0 {
		policy.Status.PauseROAS = c.Engine.ROASPauseLevel
	}
	if c.Engine.ROASHoldLevel > 0 {
		policy.Status.HoldROAS = c.Engine.ROASHoldLevel
	}
	if c.Engine.CPACeiling > 0 {
		policy.Status.PauseCPA = c.Engine.CPACeiling
	}
	if c.Engine.MarginFloorPct > 0 {
		policy.Status.HoldMarginPct = c.Engine.MarginFloorPct
	}
	if c.Engine.EscalateStockUnits > 0 {
		policy.Status.EscalateStockUnits = c.Engine.EscalateStockUnits
	}
	if c.Engine.MinSpendFloorBRL > 0 {
		policy.Device.MinSpendBRL = c.Engine.MinSpendFloorBRL
		policy.Waste.MinSpendBRL = c.Engine.MinSpendFloorBRL
		policy.Slices.MinCostBRL = c.Engine.MinSpendFloorBRL
	}
	if c.Engine.ElasticityDecay > 0 {
		policy.Budget.ElasticityDecay = c.Engine.ElasticityDecay
	}

	return policy
}
