// Package normalizing constrói o cubo de dados canônico a partir dos registros
// brutos coletados pelos integradores. Todas as razões derivadas (ROAS, CPA,
// CTR, taxa de conversão, participação de receita) são calculadas aqui, uma
// única vez, para que os analisadores leiam números consistentes.
package normalizing

import (
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

type Normalizer struct {
	policy config.Policy
}

func New(policy config.Policy) *Normalizer {
	return &Normalizer{policy: policy}
}

// Build monta o DataCube de uma conta para um período. Qualquer dimensão
// ausente em raw vira uma coleção vazia no cubo; a montagem nunca falha por
// dados parciais.
func (n *Normalizer) Build(accountID string, period domain.Period, raw *domain.RawMetrics) *domain.DataCube {
	cube := &domain.DataCube{
		AccountID:    accountID,
		Period:       period,
		SKUs:         []domain.EntityMetrics{},
		Campaigns:    []domain.EntityMetrics{},
		Devices:      []domain.SliceMetrics{},
		Demographics: []domain.SliceMetrics{},
		Geographic:   []domain.SliceMetrics{},
		Funnel:       []domain.FunnelStep{},
		Channels:     []domain.ChannelMetrics{},
	}

	if raw == nil {
		return cube
	}

	if raw.Account != nil {
		cube.Account = n.NormalizeEntity(*raw.Account)
	}

	if raw.Previous != nil {
		previous := n.NormalizeEntity(*raw.Previous)
		cube.Previous = &previous
	}

	for _, record := range raw.SKUs {
		cube.SKUs = append(cube.SKUs, n.NormalizeEntity(record))
	}

	for _, record := range raw.Campaigns {
		cube.Campaigns = append(cube.Campaigns, n.NormalizeEntity(record))
	}

	cube.Devices = normalizeSlices(raw.Devices)
	cube.Demographics = normalizeSlices(raw.Demographics)
	cube.Geographic = normalizeSlices(raw.Geographic)
	cube.Funnel = normalizeFunnel(raw.Funnel)
	cube.Channels = normalizeChannels(raw.Channels)
	cube.Planning = raw.Planning

	return cube
}

// NormalizeEntity deriva as métricas de uma entidade. Valores monetários são
// arredondados para 2 casas antes das razões, para não propagar erro de ponto
// flutuante para ROAS e CPA.
func (n *Normalizer) NormalizeEntity(record domain.RawEntityRecord) domain.EntityMetrics {
	spend := utils.RoundWithTwoDecimalPlace(record.Spend)
	revenue := utils.RoundWithTwoDecimalPlace(record.Revenue)

	metrics := domain.EntityMetrics{
		ID:          record.ID,
		Name:        record.Name,
		Spend:       spend,
		Impressions: record.Impressions,
		Clicks:      record.Clicks,
		Conversions: record.Conversions,
		Revenue:     revenue,
		MarginPct:   record.MarginPct,
		StockUnits:  record.StockUnits,
	}

	metrics.ROAS = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(revenue, spend))
	metrics.CPA = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(spend, float64(record.Conversions)))
	metrics.CTR = utils.RoundWithTwoDecimalPlace(utils.SafePercentage(float64(record.Clicks), float64(record.Impressions)))
	metrics.ConversionRate = utils.RoundWithTwoDecimalPlace(utils.SafePercentage(float64(record.Conversions), float64(record.Clicks)))
	metrics.Status = n.ClassifyStatus(metrics)

	return metrics
}

// ClassifyStatus aplica a tabela canônica de limiares de status.
// A ordem das regras importa: pause tem precedência sobre hold, que tem
// precedência sobre escalate.
func (n *Normalizer) ClassifyStatus(m domain.EntityMetrics) domain.EntityStatus {
	t := n.policy.Status

	if (m.Conversions == 0 && m.ROAS == 0) || m.ROAS < t.PauseROAS || m.CPA > t.PauseCPA {
		return domain.StatusPause
	}

	if m.ROAS < t.HoldROAS || m.MarginPct < t.HoldMarginPct {
		return domain.StatusHold
	}

	if m.StockUnits > t.EscalateStockUnits {
		return domain.StatusEscalate
	}

	return domain.StatusHold
}

// normalizeSlices deriva ROAS e participação de receita de uma dimensão de
// segmentação. As participações de uma dimensão somam ~100% quando a receita
// total é positiva; quando é 0, todas as participações são 0.
func normalizeSlices(records []domain.RawSliceRecord) []domain.SliceMetrics {
	slices := make([]domain.SliceMetrics, 0, len(records))
	if len(records) == 0 {
		return slices
	}

	totalRevenue := 0.0
	for _, record := range records {
		totalRevenue += utils.RoundWithTwoDecimalPlace(record.Revenue)
	}

	for _, record := range records {
		revenue := utils.RoundWithTwoDecimalPlace(record.Revenue)
		cost := utils.RoundWithTwoDecimalPlace(record.Cost)

		label := record.Label
		if label == "" {
			// Chave desconhecida vinda da origem: usa a própria chave como rótulo
			label = record.Key
		}

		slices = append(slices, domain.SliceMetrics{
			Key:          record.Key,
			Label:        label,
			Revenue:      revenue,
			Cost:         cost,
			Conversions:  record.Conversions,
			ROAS:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(revenue, cost)),
			RevenueShare: utils.RoundWithTwoDecimalPlace(utils.SafePercentage(revenue, totalRevenue)),
		})
	}

	return slices
}

// normalizeFunnel calcula a queda percentual de cada etapa em relação à
// anterior. A primeira etapa tem queda 0.
func normalizeFunnel(steps []domain.RawFunnelStep) []domain.FunnelStep {
	funnel := make([]domain.FunnelStep, 0, len(steps))

	for i, step := range steps {
		dropOff := 0.0
		if i > 0 {
			previous := float64(steps[i-1].Count)
			dropOff = utils.RoundWithTwoDecimalPlace(utils.SafePercentage(previous-float64(step.Count), previous))
			if dropOff < 0 {
				dropOff = 0
			}
		}

		funnel = append(funnel, domain.FunnelStep{
			Name:       step.Name,
			Count:      step.Count,
			DropOffPct: dropOff,
		})
	}

	return funnel
}

func normalizeChannels(records []domain.RawChannelRecord) []domain.ChannelMetrics {
	channels := make([]domain.ChannelMetrics, 0, len(records))

	for _, record := range records {
		channels = append(channels, domain.ChannelMetrics{
			Channel:        record.Channel,
			Sessions:       record.Sessions,
			Conversions:    record.Conversions,
			Revenue:        utils.RoundWithTwoDecimalPlace(record.Revenue),
			ConversionRate: utils.RoundWithTwoDecimalPlace(utils.SafePercentage(float64(record.Conversions), float64(record.Sessions))),
		})
	}

	return channels
}
