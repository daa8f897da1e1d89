// Package analyzing contém os analisadores de padrões do motor cognitivo.
// Cada analisador é uma função pura sobre o cubo de dados: sem estado
// compartilhado, independente de ordem e tolerante a dimensões ausentes.
// Dados faltantes produzem zero achados, nunca erro.
package analyzing

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

// Context carrega os parâmetros da análise compartilhados por todos os
// analisadores
type Context struct {
	AccountID     string
	ReferenceDate time.Time
	Policy        config.Policy
}

// Analyzer é um analisador nomeado. O nome participa do ID determinístico dos
// achados que ele emite.
type Analyzer struct {
	Name string
	Run  func(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding
}

// All retorna a lista de analisadores em ordem fixa. A ordem só determina a
// ordem dos achados na resposta; os analisadores não dependem uns dos outros.
func All() []Analyzer {
	return []Analyzer{
		{Name: analyzerPerformanceBreach, Run: PerformanceBreach},
		{Name: analyzerDeviceUnderperformance, Run: DeviceUnderperformance},
		{Name: analyzerDeviceOpportunity, Run: DeviceOpportunity},
		{Name: analyzerZeroConversionWaste, Run: ZeroConversionWaste},
		{Name: analyzerDemographicReallocation, Run: DemographicReallocation},
		{Name: analyzerGeographicConcentration, Run: GeographicConcentration},
		{Name: analyzerSKURisk, Run: SKURisk},
		{Name: analyzerFunnelDropOff, Run: FunnelDropOff},
		{Name: analyzerChannelOpportunity, Run: ChannelOpportunity},
		{Name: analyzerTrendRegression, Run: TrendRegression},
		{Name: analyzerPlanningGap, Run: PlanningGap},
	}
}

const (
	analyzerPerformanceBreach       = "performance_breach"
	analyzerDeviceUnderperformance  = "device_underperformance"
	analyzerDeviceOpportunity       = "device_opportunity"
	analyzerZeroConversionWaste     = "zero_conversion_waste"
	analyzerDemographicReallocation = "demographic_reallocation"
	analyzerGeographicConcentration = "geographic_concentration"
	analyzerSKURisk                 = "sku_risk"
	analyzerFunnelDropOff           = "funnel_dropoff"
	analyzerChannelOpportunity      = "channel_opportunity"
	analyzerTrendRegression         = "trend_regression"
	analyzerPlanningGap             = "planning_gap"
)

// FindingID gera o ID determinístico de um achado a partir do analisador e da
// entidade gatilho. Reexecutar a análise sobre a mesma entrada produz IDs
// idênticos byte a byte, o que a correlação de ações da UI exige.
func FindingID(analyzer, entityKey string) string {
	key := strings.ToLower(strings.TrimSpace(entityKey))
	key = strings.ReplaceAll(key, " ", "_")
	return fmt.Sprintf("%s_%s", analyzer, key)
}

// RunAll executa todos os analisadores na ordem fixa e concatena os achados
func RunAll(ctx *Context, cube *domain.DataCube) []domain.CognitiveFinding {
	findings := make([]domain.CognitiveFinding, 0)

	if ctx == nil || cube == nil {
		return findings
	}

	for _, analyzer := range All() {
		findings = append(findings, analyzer.Run(ctx, cube)...)
	}

	return findings
}
