package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

func testPeriod() domain.Period {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	return domain.Period{StartDate: &start, EndDate: &end}
}

func TestNormalizer_Build_RawNil(t *testing.T) {
	normalizer := New(config.DefaultPolicy())

	cube := normalizer.Build("ACC001", testPeriod(), nil)

	assert.NotNil(t, cube)
	assert.Equal(t, "ACC001", cube.AccountID)
	assert.Empty(t, cube.SKUs)
	assert.Empty(t, cube.Campaigns)
	assert.Empty(t, cube.Devices)
	assert.Empty(t, cube.Funnel)
	assert.Empty(t, cube.Channels)
	assert.Nil(t, cube.Previous)
	assert.Nil(t, cube.Planning)
}

func TestNormalizer_Build_DimensoesAusentesViramColecoesVazias(t *testing.T) {
	normalizer := New(config.DefaultPolicy())

	cube := normalizer.Build("ACC001", testPeriod(), &domain.RawMetrics{
		Account: &domain.RawEntityRecord{ID: "ACC001", Spend: 100, Revenue: 800, Conversions: 4},
	})

	assert.Equal(t, "ACC001", cube.Account.ID)
	assert.NotNil(t, cube.SKUs)
	assert.Empty(t, cube.SKUs)
	assert.NotNil(t, cube.Devices)
	assert.Empty(t, cube.Devices)
	assert.NotNil(t, cube.Demographics)
	assert.Empty(t, cube.Demographics)
}

func TestNormalizer_NormalizeEntity_RazoesDerivadas(t *testing.T) {
	normalizer := New(config.DefaultPolicy())

	metrics := normalizer.NormalizeEntity(domain.RawEntityRecord{
		ID:          "CAMP01",
		Name:        "Campanha teste",
		Spend:       500.0,
		Impressions: 10000,
		Clicks:      200,
		Conversions: 10,
		Revenue:     4000.0,
	})

	assert.Equal(t, 8.0, metrics.ROAS)           // 4000 / 500
	assert.Equal(t, 50.0, metrics.CPA)           // 500 / 10
	assert.Equal(t, 2.0, metrics.CTR)            // 200 / 10000 em %
	assert.Equal(t, 5.0, metrics.ConversionRate) // 10 / 200 em %
}

func TestNormalizer_NormalizeEntity_DenominadorZeroNaoExplode(t *testing.T) {
	normalizer := New(config.DefaultPolicy())

	metrics := normalizer.NormalizeEntity(domain.RawEntityRecord{
		ID:      "SKU01",
		Revenue: 100.0,
	})

	assert.Equal(t, 0.0, metrics.ROAS)
	assert.Equal(t, 0.0, metrics.CPA)
	assert.Equal(t, 0.0, metrics.CTR)
	assert.Equal(t, 0.0, metrics.ConversionRate)
}

func TestNormalizer_ClassifyStatus(t *testing.T) {
	normalizer := New(config.DefaultPolicy())

	tests := []struct {
		name     string
		metrics  domain.EntityMetrics
		expected domain.EntityStatus
	}{
		{
			name:     "ROAS abaixo do piso de pause deve pausar",
			metrics:  domain.EntityMetrics{ROAS: 4.0, CPA: 50, MarginPct: 30, Conversions: 10},
			expected: domain.StatusPause,
		},
		{
			name:     "CPA acima do teto deve pausar mesmo com ROAS bom",
			metrics:  domain.EntityMetrics{ROAS: 9.0, CPA: 90, MarginPct: 30, Conversions: 10},
			expected: domain.StatusPause,
		},
		{
			name:     "Sem conversão e sem retorno deve pausar",
			metrics:  domain.EntityMetrics{ROAS: 0, CPA: 0, Conversions: 0},
			expected: domain.StatusPause,
		},
		{
			name:     "ROAS intermediário deve segurar",
			metrics:  domain.EntityMetrics{ROAS: 6.0, CPA: 50, MarginPct: 30, Conversions: 10},
			expected: domain.StatusHold,
		},
		{
			name:     "Margem abaixo do piso deve segurar mesmo com ROAS alto",
			metrics:  domain.EntityMetrics{ROAS: 9.0, CPA: 50, MarginPct: 20, Conversions: 10, StockUnits: 50},
			expected: domain.StatusHold,
		},
		{
			name:     "ROAS alto, margem boa e estoque suficiente deve escalar",
			metrics:  domain.EntityMetrics{ROAS: 9.0, CPA: 50, MarginPct: 35, Conversions: 10, StockUnits: 50},
			expected: domain.StatusEscalate,
		},
		{
			name:     "ROAS alto sem estoque suficiente fica em hold",
			metrics:  domain.EntityMetrics{ROAS: 9.0, CPA: 50, MarginPct: 35, Conversions: 10, StockUnits: 5},
			expected: domain.StatusHold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizer.ClassifyStatus(tt.metrics))
		})
	}
}

func TestNormalizeSlices_ParticipacaoDeReceita(t *testing.T) {
	slices := normalizeSlices([]domain.RawSliceRecord{
		{Key: "mobile", Label: "Mobile", Revenue: 750.0, Cost: 150.0, Conversions: 10},
		{Key: "desktop", Label: "Desktop", Revenue: 250.0, Cost: 100.0, Conversions: 5},
	})

	assert.Len(t, slices, 2)
	assert.Equal(t, 75.0, slices[0].RevenueShare)
	assert.Equal(t, 25.0, slices[1].RevenueShare)
	assert.Equal(t, 5.0, slices[0].ROAS)
	assert.Equal(t, 2.5, slices[1].ROAS)

	// As participações de uma dimensão somam 100% quando há receita
	assert.Equal(t, 100.0, slices[0].RevenueShare+slices[1].RevenueShare)
}

func TestNormalizeSlices_ReceitaTotalZero(t *testing.T) {
	slices := normalizeSlices([]domain.RawSliceRecord{
		{Key: "mobile", Label: "Mobile", Revenue: 0, Cost: 100.0},
		{Key: "desktop", Label: "Desktop", Revenue: 0, Cost: 50.0},
	})

	for _, slice := range slices {
		assert.Equal(t, 0.0, slice.RevenueShare)
		assert.Equal(t, 0.0, slice.ROAS)
	}
}

func TestNormalizeSlices_RotuloVazioUsaChave(t *testing.T) {
	slices := normalizeSlices([]domain.RawSliceRecord{
		{Key: "unknown", Label: "", Revenue: 100.0, Cost: 10.0},
	})

	assert.Equal(t, "unknown", slices[0].Label)
}

func TestNormalizeFunnel_QuedaPorEtapa(t *testing.T) {
	funnel := normalizeFunnel([]domain.RawFunnelStep{
		{Name: "sessao", Count: 1000},
		{Name: "produto", Count: 400},
		{Name: "carrinho", Count: 100},
		{Name: "compra", Count: 50},
	})

	assert.Len(t, funnel, 4)
	assert.Equal(t, 0.0, funnel[0].DropOffPct)
	assert.Equal(t, 60.0, funnel[1].DropOffPct)
	assert.Equal(t, 75.0, funnel[2].DropOffPct)
	assert.Equal(t, 50.0, funnel[3].DropOffPct)
}

func TestNormalizeFunnel_EtapaMaiorQueAnteriorNaoFicaNegativa(t *testing.T) {
	funnel := normalizeFunnel([]domain.RawFunnelStep{
		{Name: "sessao", Count: 100},
		{Name: "produto", Count: 150},
	})

	assert.Equal(t, 0.0, funnel[1].DropOffPct)
}

func TestNormalizeChannels_TaxaDeConversao(t *testing.T) {
	channels := normalizeChannels([]domain.RawChannelRecord{
		{Channel: "organic", Sessions: 1000, Conversions: 20, Revenue: 5000.0},
		{Channel: "paid", Sessions: 0, Conversions: 0, Revenue: 0},
	})

	assert.Equal(t, 2.0, channels[0].ConversionRate)
	assert.Equal(t, 0.0, channels[1].ConversionRate)
}
