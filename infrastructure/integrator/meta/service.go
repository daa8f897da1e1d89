package meta

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAccountRecord obtém as métricas agregadas da conta no período como
// registro bruto para o pipeline cognitivo
func (s *MetaIntegrator) GetAccountRecord(accountID string, period domain.Period) (*domain.RawEntityRecord, error) {
	insight, err := s.Client.GetAdAccountInsightsByID(accountID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad account insights from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   accountID,
		"account_name": insight.Name,
	}).Debug("insights: successfully retrieved ad account metrics")

	return &domain.RawEntityRecord{
		ID:          insight.AccountID,
		Name:        insight.Name,
		Spend:       metadomain.ParseMoney(insight.Spend),
		Impressions: metadomain.ParseCount(insight.Impressions),
		Clicks:      metadomain.ParseCount(insight.Clicks),
		Conversions: insight.Conversions(),
		Revenue:     utils.RoundWithTwoDecimalPlace(insight.Revenue()),
	}, nil
}

// GetCampaignRecords obtém as métricas por campanha ativa no período
func (s *MetaIntegrator) GetCampaignRecords(accountID string, period domain.Period) ([]domain.RawEntityRecord, error) {
	campaigns, err := s.Client.GetAdCampaignByAccountID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaigns for ad account")
		return nil, err
	}

	records := make([]domain.RawEntityRecord, 0, len(campaigns))
	for _, campaign := range campaigns {
		insight, err := s.Client.GetAdCampaignInsightsByID(campaign.ID, period)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"account_id":  accountID,
				"error":       err.Error(),
			}).Warn("insights: failed to get campaign insights")
			continue
		}

		records = append(records, domain.RawEntityRecord{
			ID:          insight.CampaignID,
			Name:        insight.CampaignName,
			Spend:       metadomain.ParseMoney(insight.Spend),
			Impressions: metadomain.ParseCount(insight.Impressions),
			Clicks:      metadomain.ParseCount(insight.Clicks),
			Conversions: insight.Conversions(),
			Revenue:     utils.RoundWithTwoDecimalPlace(insight.Revenue()),
		})
	}

	return records, nil
}

// GetBreakdown obtém as fatias de uma dimensão de segmentação no período
func (s *MetaIntegrator) GetBreakdown(accountID string, dimension string, period domain.Period) ([]domain.RawSliceRecord, error) {
	insights, err := s.Client.GetBreakdownInsightsByID(accountID, dimension, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"dimension":  dimension,
			"error":      err.Error(),
		}).Error("insights: failed to get breakdown insights from API")
		return nil, err
	}

	slices := make([]domain.RawSliceRecord, 0, len(insights))
	for i := range insights {
		insight := &insights[i]

		key := insight.Key(dimension)
		if key == "" {
			continue
		}

		slices = append(slices, domain.RawSliceRecord{
			Key:         key,
			Label:       insight.Label(dimension),
			Revenue:     utils.RoundWithTwoDecimalPlace(insight.Revenue()),
			Cost:        metadomain.ParseMoney(insight.Spend),
			Conversions: insight.Conversions(),
		})
	}

	return slices, nil
}

// GetAdAccounts lista todas as contas de anúncio dos business managers
// acessíveis, usada pela sincronização de contas
func (s *MetaIntegrator) GetAdAccounts() ([]*domain.AdAccount, error) {
	bms, err := s.getBusinessManagers()
	if err != nil {
		logrus.WithError(err).Error("insights: failed to get business managers")
		return nil, err
	}

	allAdAccounts := make([]*domain.AdAccount, 0)
	for _, b := range bms {
		logrus.WithFields(logrus.Fields{
			"business_id":   b.ID,
			"business_name": b.Name,
		}).Debug("insights: fetching ad accounts for business")

		adAccounts, err := s.Client.GetAdAccountsByBusinessID(b.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": b.ID,
				"error":       err.Error(),
			}).Error("insights: failed to get ad accounts for business")
			continue
		}

		for _, adAccount := range adAccounts {
			allAdAccounts = append(allAdAccounts, &domain.AdAccount{
				ExternalID:          adAccount.ID,
				Name:                adAccount.Name,
				Nickname:            &adAccount.Name,
				Origin:              "meta",
				BusinessManagerID:   b.ID,
				BusinessManagerName: b.Name,
			})
		}
	}

	logrus.WithField("total_accounts", len(allAdAccounts)).Info("insights: successfully retrieved all ad accounts")

	return allAdAccounts, nil
}

func (s *MetaIntegrator) getBusinessManagers() ([]metadomain.BusinessManager, error) {
	if err := s.Client.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	url := fmt.Sprintf("%s/me/businesses?limit=100&access_token=%s", s.cfg.Meta.URL, s.cfg.Meta.AccessToken)

	data, err := utils.MakeRequest(url)
	if err != nil {
		if strings.Contains(err.Error(), "Error on Request") {
			if refreshErr := s.Client.RefreshToken(); refreshErr != nil {
				return nil, fmt.Errorf("erro ao renovar token: %w", refreshErr)
			}

			url = fmt.Sprintf("%s/me/businesses?limit=100&access_token=%s", s.cfg.Meta.URL, s.cfg.Meta.AccessToken)

			data, err = utils.MakeRequest(url)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	var response struct {
		Data []metadomain.BusinessManager `json:"data"`
	}
	err = json.Unmarshal(data, &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}
