package commerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	commercedomain "github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/commerce/domain"
)

func TestAggregateBySKU(t *testing.T) {
	sales := []commercedomain.Sale{
		{
			ID: 1,
			Items: []commercedomain.SaleItem{
				{
					Product:       commercedomain.Product{Reference: "SKU01", Description: "Armação Acetato"},
					Quantity:      2,
					Cost:          50.0,
					NetTotalPrice: 400.0,
				},
				{
					Product:       commercedomain.Product{Reference: "SKU02", Description: "Lente Antirreflexo"},
					Quantity:      1,
					Cost:          80.0,
					NetTotalPrice: 200.0,
				},
			},
		},
		{
			ID: 2,
			Items: []commercedomain.SaleItem{
				{
					Product:       commercedomain.Product{Reference: "SKU01", Description: "Armação Acetato"},
					Quantity:      1,
					Cost:          50.0,
					NetTotalPrice: 180.0,
				},
			},
		},
	}

	stock := map[string]int{"SKU01": 8}

	records := aggregateBySKU(sales, stock)

	assert.Len(t, records, 2)

	// Saída ordenada por referência
	first := records[0]
	assert.Equal(t, "SKU01", first.ID)
	assert.Equal(t, "Armação Acetato", first.Name)
	assert.Equal(t, 3, first.Conversions)
	assert.Equal(t, 580.0, first.Revenue)
	// Margem: (580 - 150) / 580
	assert.InDelta(t, 74.14, first.MarginPct, 0.01)
	assert.Equal(t, 8, first.StockUnits)

	second := records[1]
	assert.Equal(t, "SKU02", second.ID)
	assert.Equal(t, 1, second.Conversions)
	assert.Equal(t, 200.0, second.Revenue)
	assert.InDelta(t, 60.0, second.MarginPct, 0.01)
	assert.Equal(t, 0, second.StockUnits)
}

func TestAggregateBySKU_ItemSemReferenciaEIgnorado(t *testing.T) {
	sales := []commercedomain.Sale{
		{
			Items: []commercedomain.SaleItem{
				{Product: commercedomain.Product{Reference: ""}, Quantity: 1, NetTotalPrice: 100.0},
				{Product: commercedomain.Product{Reference: "SKU01", Description: "Armação"}, Quantity: 1, NetTotalPrice: 150.0},
			},
		},
	}

	records := aggregateBySKU(sales, nil)

	assert.Len(t, records, 1)
	assert.Equal(t, "SKU01", records[0].ID)
}

func TestAggregateBySKU_SemVendasDevolveVazio(t *testing.T) {
	assert.Empty(t, aggregateBySKU(nil, nil))
}

func TestAggregateBySKU_ReceitaZeradaNaoExplodeMargem(t *testing.T) {
	sales := []commercedomain.Sale{
		{
			Items: []commercedomain.SaleItem{
				{Product: commercedomain.Product{Reference: "SKU01", Description: "Brinde"}, Quantity: 1, Cost: 10.0, NetTotalPrice: 0},
			},
		},
	}

	records := aggregateBySKU(sales, nil)

	assert.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].MarginPct)
}
