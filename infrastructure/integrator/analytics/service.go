package analytics

import (
	"time"

	"github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

type AnalyticsIntegrator interface {
	GetFunnel(accountID string, period domain.Period) ([]domain.RawFunnelStep, error)
	GetChannels(accountID string, period domain.Period) ([]domain.RawChannelRecord, error)
}

type AnalyticsService struct {
	cfg    *config.Config
	Client analyticsclient.Client
}

func New(cfg *config.Config, client analyticsclient.Client) AnalyticsIntegrator {
	return &AnalyticsService{
		cfg:    cfg,
		Client: client,
	}
}

// GetFunnel obtém os passos do funil de conversão do site no período
func (s *AnalyticsService) GetFunnel(accountID string, period domain.Period) ([]domain.RawFunnelStep, error) {
	report, err := s.Client.GetFunnelReport(s.reportParams(period))
	if err != nil {
		return nil, err
	}

	steps := make([]domain.RawFunnelStep, 0, len(report.Steps))
	for _, row := range report.Steps {
		steps = append(steps, domain.RawFunnelStep{
			Name:  row.Name,
			Count: row.Users,
		})
	}

	return steps, nil
}

// GetChannels obtém as métricas de aquisição por canal no período
func (s *AnalyticsService) GetChannels(accountID string, period domain.Period) ([]domain.RawChannelRecord, error) {
	report, err := s.Client.GetChannelReport(s.reportParams(period))
	if err != nil {
		return nil, err
	}

	channels := make([]domain.RawChannelRecord, 0, len(report.Channels))
	for _, row := range report.Channels {
		channels = append(channels, domain.RawChannelRecord{
			Channel:     row.Channel,
			Sessions:    row.Sessions,
			Conversions: row.Conversions,
			Revenue:     row.Revenue,
		})
	}

	return channels, nil
}

func (s *AnalyticsService) reportParams(period domain.Period) analyticsclient.ReportParams {
	return analyticsclient.ReportParams{
		PropertyID: s.cfg.Analytics.PropertyID,
		StartDate:  period.StartDate.Format(time.DateOnly),
		EndDate:    period.EndDate.Format(time.DateOnly),
	}
}
