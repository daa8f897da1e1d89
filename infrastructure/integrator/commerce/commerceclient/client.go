package commerceclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/cognitive-insights-api/internal/config"
)

type Client interface {
	GetSales(params SalesConsultationParams, commerceConfig *config.Commerce) (SalesConsultationResponse, error)
	GetStock(params StockConsultationParams, commerceConfig *config.Commerce) (StockConsultationResponse, error)
}

type CommerceClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do e-commerce
func NewClient(cfg *config.Config) Client {
	return &CommerceClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
