package metadomain

import (
	"fmt"
	"strings"
)

// BreakdownInsight é uma fatia de segmentação retornada pela API de insights.
// Os campos de dimensão vêm preenchidos conforme o breakdown solicitado:
// device_platform, age/gender ou region.
type BreakdownInsight struct {
	Actions        []Action `json:"actions"`
	ActionValues   []Action `json:"action_values"`
	Age            string   `json:"age"`
	DevicePlatform string   `json:"device_platform"`
	Gender         string   `json:"gender"`
	Region         string   `json:"region"`
	Spend          string   `json:"spend"`
}

// Key monta a chave estável da fatia para a dimensão solicitada
func (b *BreakdownInsight) Key(dimension string) string {
	switch dimension {
	case "device_platform":
		return strings.ToLower(b.DevicePlatform)
	case "age_gender":
		return strings.ToLower(fmt.Sprintf("%s_%s", b.Gender, b.Age))
	case "region":
		return strings.ToLower(strings.ReplaceAll(b.Region, " ", "_"))
	}
	return ""
}

// Label monta o rótulo de exibição da fatia para a dimensão solicitada
func (b *BreakdownInsight) Label(dimension string) string {
	switch dimension {
	case "device_platform":
		return b.DevicePlatform
	case "age_gender":
		return fmt.Sprintf("%s %s", b.Gender, b.Age)
	case "region":
		return b.Region
	}
	return ""
}

// Conversions conta as compras atribuídas à fatia no período
func (b *BreakdownInsight) Conversions() int {
	return int(SumActions(b.Actions, PurchaseActionTypes...))
}

// Revenue soma o valor das compras atribuídas à fatia no período
func (b *BreakdownInsight) Revenue() float64 {
	return SumActions(b.ActionValues, PurchaseActionTypes...)
}
