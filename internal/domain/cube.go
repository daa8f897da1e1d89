package domain

import (
	"time"

	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// Period representa o intervalo de datas de uma análise
type Period struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// EntityStatus representa a ação recomendada para uma entidade (SKU ou campanha)
// com base nos limiares canônicos de ROAS, CPA, margem e estoque
type EntityStatus string

const (
	StatusEscalate EntityStatus = "escalate"
	StatusHold     EntityStatus = "hold"
	StatusPause    EntityStatus = "pause"
)

// EntityMetrics representa as métricas derivadas de uma entidade (conta, SKU ou campanha)
type EntityMetrics struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Spend          float64      `json:"spend"`
	Impressions    int          `json:"impressions"`
	Clicks         int          `json:"clicks"`
	Conversions    int          `json:"conversions"`
	Revenue        float64      `json:"revenue"`
	MarginPct      float64      `json:"margin_pct"`
	StockUnits     int          `json:"stock_units"`
	ROAS           float64      `json:"roas"`
	CPA            float64      `json:"cpa"`
	CTR            float64      `json:"ctr"`
	ConversionRate float64      `json:"conversion_rate"`
	Status         EntityStatus `json:"status"`
}

// SliceMetrics representa uma fatia de segmentação (dispositivo, demografia ou região)
type SliceMetrics struct {
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	Revenue      float64 `json:"revenue"`
	Cost         float64 `json:"cost"`
	Conversions  int     `json:"conversions"`
	ROAS         float64 `json:"roas"`
	RevenueShare float64 `json:"revenue_share"`
}

// FunnelStep representa uma etapa do funil de conversão do site, na ordem de navegação
type FunnelStep struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	DropOffPct float64 `json:"drop_off_pct"`
}

// ChannelMetrics representa uma linha de aquisição por canal do web analytics
type ChannelMetrics struct {
	Channel        string  `json:"channel"`
	Sessions       int     `json:"sessions"`
	Conversions    int     `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	ConversionRate float64 `json:"conversion_rate"`
}

// PlanningTarget representa uma meta mensal já resolvida para uma métrica acompanhada
type PlanningTarget struct {
	Metric string  `json:"metric"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
}

// PlanningTargets agrupa as metas do mês corrente de uma conta
type PlanningTargets struct {
	Month   string           `json:"month"`
	Targets []PlanningTarget `json:"targets"`
}

// Métricas acompanhadas pelo planejamento e pelo pacing
const (
	MetricRevenue     = "revenue"
	MetricSpend       = "spend"
	MetricConversions = "conversions"
	MetricROAS        = "roas"
	MetricTicket      = "average_ticket"
)

// Dimensões de segmentação suportadas pelos integradores de anúncios
const (
	BreakdownDevice      = "device_platform"
	BreakdownDemographic = "age_gender"
	BreakdownGeographic  = "region"
)

// DataCube é o recorte normalizado e imutável de todas as dimensões de métricas
// de uma conta em um período. Dimensões ausentes são representadas como slices
// vazios, nunca como nil com significado distinto.
type DataCube struct {
	AccountID    string           `json:"account_id"`
	Period       Period           `json:"period"`
	Account      EntityMetrics    `json:"account"`
	Previous     *EntityMetrics   `json:"previous,omitempty"`
	SKUs         []EntityMetrics  `json:"skus"`
	Campaigns    []EntityMetrics  `json:"campaigns"`
	Devices      []SliceMetrics   `json:"devices"`
	Demographics []SliceMetrics   `json:"demographics"`
	Geographic   []SliceMetrics   `json:"geographic"`
	Funnel       []FunnelStep     `json:"funnel"`
	Channels     []ChannelMetrics `json:"channels"`
	Planning     *PlanningTargets `json:"planning,omitempty"`
}

// TargetFor retorna a meta resolvida para uma métrica, se existir
func (c *DataCube) TargetFor(metric string) *PlanningTarget {
	if c.Planning == nil {
		return nil
	}

	for i := range c.Planning.Targets {
		if c.Planning.Targets[i].Metric == metric {
			return &c.Planning.Targets[i]
		}
	}

	return nil
}

// CurrentValueFor retorna o realizado da conta para uma métrica acompanhada.
// O segundo retorno indica se a métrica é conhecida.
func (c *DataCube) CurrentValueFor(metric string) (float64, bool) {
	switch metric {
	case MetricRevenue:
		return c.Account.Revenue, true
	case MetricSpend:
		return c.Account.Spend, true
	case MetricConversions:
		return float64(c.Account.Conversions), true
	case MetricROAS:
		return c.Account.ROAS, true
	case MetricTicket:
		return utils.RoundWithTwoDecimalPlace(utils.SafeDivide(c.Account.Revenue, float64(c.Account.Conversions))), true
	default:
		return 0, false
	}
}

// RawEntityRecord representa os dados brutos de uma entidade vindos dos integradores,
// antes da derivação de métricas
type RawEntityRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	MarginPct   float64 `json:"margin_pct"`
	StockUnits  int     `json:"stock_units"`
}

// RawSliceRecord representa uma fatia bruta de segmentação vinda dos integradores
type RawSliceRecord struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
	Conversions int     `json:"conversions"`
}

// RawFunnelStep representa uma etapa bruta do funil, na ordem de navegação
type RawFunnelStep struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RawChannelRecord representa uma linha bruta de aquisição por canal
type RawChannelRecord struct {
	Channel     string  `json:"channel"`
	Sessions    int     `json:"sessions"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// RawMetrics agrupa todos os registros brutos coletados pelos integradores para
// uma conta e um período. Qualquer dimensão pode estar ausente quando a fonte
// correspondente falhou ou não retornou dados.
type RawMetrics struct {
	Account      *RawEntityRecord
	Previous     *RawEntityRecord
	SKUs         []RawEntityRecord
	Campaigns    []RawEntityRecord
	Devices      []RawSliceRecord
	Demographics []RawSliceRecord
	Geographic   []RawSliceRecord
	Funnel       []RawFunnelStep
	Channels     []RawChannelRecord
	Planning     *PlanningTargets
}
