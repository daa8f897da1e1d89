package analyticsclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/cognitive-insights-api/internal/config"
)

type Client interface {
	GetFunnelReport(params ReportParams) (FunnelReportResponse, error)
	GetChannelReport(params ReportParams) (ChannelReportResponse, error)
}

type AnalyticsClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API de web analytics
func NewClient(cfg *config.Config) Client {
	return &AnalyticsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
