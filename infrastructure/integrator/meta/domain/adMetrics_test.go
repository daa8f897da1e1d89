package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumActions(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected float64
	}{
		{
			name: "Soma cada tipo de compra uma única vez",
			actions: []Action{
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "10"},
				{ActionType: "omni_purchase", Value: "5"},
			},
			expected: 15,
		},
		{
			name: "Tipo repetido conta apenas a primeira ocorrência",
			actions: []Action{
				{ActionType: "purchase", Value: "10"},
				{ActionType: "purchase", Value: "99"},
			},
			expected: 10,
		},
		{
			name: "Tipos fora da lista são ignorados",
			actions: []Action{
				{ActionType: "link_click", Value: "200"},
				{ActionType: "purchase", Value: "7"},
			},
			expected: 7,
		},
		{
			name: "Valor inválido é descartado sem afetar os demais",
			actions: []Action{
				{ActionType: "purchase", Value: "abc"},
				{ActionType: "omni_purchase", Value: "3"},
			},
			expected: 3,
		},
		{
			name:     "Lista vazia soma zero",
			actions:  []Action{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SumActions(tt.actions, PurchaseActionTypes...))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 1250, ParseCount("1250"))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 0, ParseCount("not-a-number"))
}

func TestParseMoney(t *testing.T) {
	assert.Equal(t, 1234.56, ParseMoney("1234.56"))
	assert.Equal(t, 0.0, ParseMoney(""))
	assert.Equal(t, 0.0, ParseMoney("not-a-number"))
}

func TestAdAccountInsight_ConversionsERevenue(t *testing.T) {
	insight := AdAccountInsight{
		Actions: []Action{
			{ActionType: "omni_purchase", Value: "12"},
			{ActionType: "link_click", Value: "300"},
		},
		ActionValues: []Action{
			{ActionType: "omni_purchase", Value: "4800.50"},
		},
	}

	assert.Equal(t, 12, insight.Conversions())
	assert.Equal(t, 4800.50, insight.Revenue())
}

func TestBreakdownInsight_KeyELabel(t *testing.T) {
	tests := []struct {
		name          string
		insight       BreakdownInsight
		dimension     string
		expectedKey   string
		expectedLabel string
	}{
		{
			name:          "Dispositivo em minúsculas",
			insight:       BreakdownInsight{DevicePlatform: "Mobile"},
			dimension:     "device_platform",
			expectedKey:   "mobile",
			expectedLabel: "Mobile",
		},
		{
			name:          "Demografia combina gênero e faixa etária",
			insight:       BreakdownInsight{Gender: "female", Age: "25-34"},
			dimension:     "age_gender",
			expectedKey:   "female_25-34",
			expectedLabel: "female 25-34",
		},
		{
			name:          "Região troca espaços por sublinhado na chave",
			insight:       BreakdownInsight{Region: "Sao Paulo"},
			dimension:     "region",
			expectedKey:   "sao_paulo",
			expectedLabel: "Sao Paulo",
		},
		{
			name:          "Dimensão desconhecida produz chave vazia",
			insight:       BreakdownInsight{Region: "Sao Paulo"},
			dimension:     "placement",
			expectedKey:   "",
			expectedLabel: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, tt.insight.Key(tt.dimension))
			assert.Equal(t, tt.expectedLabel, tt.insight.Label(tt.dimension))
		})
	}
}
