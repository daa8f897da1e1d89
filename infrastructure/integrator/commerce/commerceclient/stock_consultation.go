package commerceclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	commercedomain "github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
)

type StockConsultationParams struct {
	CNPJ  string
	Token string
}

type StockConsultationResponse []commercedomain.StockRecord

func (c *CommerceClient) GetStock(params StockConsultationParams, commerceConfig *config.Commerce) (StockConsultationResponse, error) {
	var response StockConsultationResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(commerceConfig.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/integracoes/estoque")

	query := endpoint.Query()
	query.Set("cnpj", params.CNPJ)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+commerceConfig.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
