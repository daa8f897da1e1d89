package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

type ResponseBreakdownInsight struct {
	Data   []metadomain.BreakdownInsight `json:"data"`
	Paging metadomain.Paging             `json:"paging"`
}

// Parâmetro "breakdowns" da API do Meta por dimensão interna
var metaBreakdownParams = map[string]string{
	domain.BreakdownDevice:      "device_platform",
	domain.BreakdownDemographic: "age,gender",
	domain.BreakdownGeographic:  "region",
}

func (c *MetaClient) GetBreakdownInsightsByID(accountID string, dimension string, period domain.Period) ([]metadomain.BreakdownInsight, error) {
	breakdowns, ok := metaBreakdownParams[dimension]
	if !ok {
		return nil, fmt.Errorf("dimensão de segmentação desconhecida: %s", dimension)
	}

	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", period.StartDate.Format(time.DateOnly), period.EndDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "spend,actions,action_values")
	params.Add("breakdowns", breakdowns)
	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	// Usar o manipulador de resposta que verifica tokens expirados
	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetBreakdownInsightsByID(accountID, dimension, period)
		}
		return nil, err
	}

	var response ResponseBreakdownInsight
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
