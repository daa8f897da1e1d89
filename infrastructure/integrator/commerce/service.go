package commerce

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/commerce/commerceclient"
	commercedomain "github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

type CommerceIntegrator interface {
	GetSKURecords(account *domain.AdAccount, period domain.Period) ([]domain.RawEntityRecord, error)
	CheckConnection(params commercedomain.CheckConnectionParams) (bool, error)
}

type CommerceService struct {
	cfg    *config.Config
	Client commerceclient.Client
}

func New(cfg *config.Config, client commerceclient.Client) CommerceIntegrator {
	return &CommerceService{
		cfg:    cfg,
		Client: client,
	}
}

// GetSKURecords busca as vendas e o estoque do lojista e agrega por SKU,
// derivando receita, custo, margem e posição de estoque do período
func (s *CommerceService) GetSKURecords(account *domain.AdAccount, period domain.Period) ([]domain.RawEntityRecord, error) {
	commerceConfig := s.cfg.CommerceMultiClient[*account.SecretName]

	salesParams := commerceclient.SalesConsultationParams{
		StartDate: period.StartDate.Format(time.DateOnly),
		EndDate:   period.EndDate.Format(time.DateOnly),
		CNPJ:      *account.CNPJ,
		Token:     commerceConfig.AccessToken,
	}

	sales, err := s.Client.GetSales(salesParams, &commerceConfig)
	if err != nil {
		return nil, err
	}

	stockByReference := s.fetchStock(account, commerceConfig)

	return aggregateBySKU(sales, stockByReference), nil
}

func (s *CommerceService) CheckConnection(params commercedomain.CheckConnectionParams) (bool, error) {
	paramsClient := commerceclient.SalesConsultationParams{
		StartDate: params.StartDate.Format(time.DateOnly),
		EndDate:   params.EndDate.Format(time.DateOnly),
		CNPJ:      params.CNPJ,
	}

	s.cfg.Commerce.AccessToken = params.Token

	_, err := s.Client.GetSales(paramsClient, &s.cfg.Commerce)
	if err != nil {
		return false, err
	}

	return true, nil
}

// fetchStock busca a posição de estoque; indisponibilidade degrada para mapa
// vazio e os SKUs ficam com estoque zero
func (s *CommerceService) fetchStock(account *domain.AdAccount, commerceConfig config.Commerce) map[string]int {
	stockByReference := make(map[string]int)

	stockParams := commerceclient.StockConsultationParams{
		CNPJ:  *account.CNPJ,
		Token: commerceConfig.AccessToken,
	}

	stock, err := s.Client.GetStock(stockParams, &commerceConfig)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar posição de estoque no e-commerce")
		return stockByReference
	}

	for _, record := range stock {
		stockByReference[record.Reference] = record.Units
	}

	return stockByReference
}

// skuAccumulator acumula os itens vendidos de um SKU para derivar as métricas
type skuAccumulator struct {
	reference   string
	description string
	revenue     float64
	cost        float64
	units       int
}

func aggregateBySKU(sales []commercedomain.Sale, stockByReference map[string]int) []domain.RawEntityRecord {
	accumulators := make(map[string]*skuAccumulator)

	for _, sale := range sales {
		for _, item := range sale.Items {
			reference := item.Product.Reference
			if reference == "" {
				continue
			}

			acc, ok := accumulators[reference]
			if !ok {
				acc = &skuAccumulator{
					reference:   reference,
					description: item.Product.Description,
				}
				accumulators[reference] = acc
			}

			acc.revenue += item.NetTotalPrice
			acc.cost += item.Cost * item.Quantity
			acc.units += int(item.Quantity)
		}
	}

	records := make([]domain.RawEntityRecord, 0, len(accumulators))
	for _, acc := range accumulators {
		records = append(records, domain.RawEntityRecord{
			ID:          acc.reference,
			Name:        acc.description,
			Conversions: acc.units,
			Revenue:     utils.RoundWithTwoDecimalPlace(acc.revenue),
			MarginPct:   utils.SafePercentage(acc.revenue-acc.cost, acc.revenue),
			StockUnits:  stockByReference[acc.reference],
		})
	}

	// Ordenação estável por referência para manter a saída determinística
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	return records
}
