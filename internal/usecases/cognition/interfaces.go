package cognition

import (
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

// AdsSource define a interface para obter métricas brutas de anúncios
type AdsSource interface {
	// GetAccountRecord obtém as métricas agregadas da conta no período
	GetAccountRecord(accountID string, period domain.Period) (*domain.RawEntityRecord, error)

	// GetCampaignRecords obtém as métricas por campanha no período
	GetCampaignRecords(accountID string, period domain.Period) ([]domain.RawEntityRecord, error)

	// GetBreakdown obtém as fatias de segmentação de uma dimensão
	// (domain.BreakdownDevice, BreakdownDemographic ou BreakdownGeographic)
	GetBreakdown(accountID string, dimension string, period domain.Period) ([]domain.RawSliceRecord, error)
}

// AnalyticsSource define a interface para obter funil e canais de aquisição
type AnalyticsSource interface {
	// GetFunnel obtém os passos do funil de conversão no período
	GetFunnel(accountID string, period domain.Period) ([]domain.RawFunnelStep, error)

	// GetChannels obtém as métricas por canal de aquisição no período
	GetChannels(accountID string, period domain.Period) ([]domain.RawChannelRecord, error)
}

// CommerceSource define a interface para obter métricas de produto do ERP
type CommerceSource interface {
	// GetSKURecords obtém receita, margem e estoque por SKU no período
	GetSKURecords(account *domain.AdAccount, period domain.Period) ([]domain.RawEntityRecord, error)
}

// CognitiveAnalyzer é a interface completa exposta para a camada de API
type CognitiveAnalyzer interface {
	// AnalyzeAccount executa o pipeline cognitivo completo para uma conta
	AnalyzeAccount(accountID string, period domain.Period) (*domain.CognitiveResponse, error)

	// PlanBudget calcula a realocação de orçamento entre as campanhas da conta
	PlanBudget(accountID string, period domain.Period) (*domain.BudgetPlan, error)
}
