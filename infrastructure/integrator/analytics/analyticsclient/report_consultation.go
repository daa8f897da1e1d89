package analyticsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"
)

type ReportParams struct {
	PropertyID string
	StartDate  string
	EndDate    string
}

// FunnelStepRow é um passo do funil de conversão retornado pelo relatório
type FunnelStepRow struct {
	Name  string `json:"name"`
	Users int    `json:"users"`
}

type FunnelReportResponse struct {
	Steps []FunnelStepRow `json:"steps"`
}

// ChannelRow é uma linha do relatório de aquisição por canal
type ChannelRow struct {
	Channel     string  `json:"channel"`
	Sessions    int     `json:"sessions"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

type ChannelReportResponse struct {
	Channels []ChannelRow `json:"channels"`
}

func (c *AnalyticsClient) GetFunnelReport(params ReportParams) (FunnelReportResponse, error) {
	var response FunnelReportResponse
	if err := c.getReport("/reports/funnel", params, &response); err != nil {
		return response, err
	}
	return response, nil
}

func (c *AnalyticsClient) GetChannelReport(params ReportParams) (ChannelReportResponse, error) {
	var response ChannelReportResponse
	if err := c.getReport("/reports/channels", params, &response); err != nil {
		return response, err
	}
	return response, nil
}

func (c *AnalyticsClient) getReport(reportPath string, params ReportParams, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Analytics.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, reportPath)

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("property_id", params.PropertyID)
	query.Set("inicio_periodo", params.StartDate)
	query.Set("fim_periodo", params.EndDate)
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Analytics.AccessToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
