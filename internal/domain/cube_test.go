package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentValueFor(t *testing.T) {
	cube := &DataCube{
		Account: EntityMetrics{
			Revenue:     1000.0,
			Spend:       400.0,
			Conversions: 3,
			ROAS:        2.5,
		},
	}

	tests := []struct {
		name     string
		metric   string
		expected float64
		known    bool
	}{
		{name: "Receita", metric: MetricRevenue, expected: 1000.0, known: true},
		{name: "Investimento", metric: MetricSpend, expected: 400.0, known: true},
		{name: "Conversões", metric: MetricConversions, expected: 3.0, known: true},
		{name: "ROAS", metric: MetricROAS, expected: 2.5, known: true},
		{name: "Ticket médio arredondado em 2 casas", metric: MetricTicket, expected: 333.33, known: true},
		{name: "Métrica desconhecida", metric: "bounce_rate", expected: 0.0, known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := cube.CurrentValueFor(tt.metric)

			assert.Equal(t, tt.known, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestCurrentValueFor_TicketSemConversaoEZero(t *testing.T) {
	cube := &DataCube{Account: EntityMetrics{Revenue: 1000.0}}

	value, ok := cube.CurrentValueFor(MetricTicket)

	assert.True(t, ok)
	assert.Equal(t, 0.0, value)
}
