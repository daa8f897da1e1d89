package cognition

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repositoryMocks "github.com/vfg2006/cognitive-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	sourceMocks "github.com/vfg2006/cognitive-insights-api/internal/usecases/cognition/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	adsSource       *sourceMocks.MockAdsSource
	analyticsSource *sourceMocks.MockAnalyticsSource
	commerceSource  *sourceMocks.MockCommerceSource
	accountRepo     *repositoryMocks.MockAccountRepository
	planningRepo    *repositoryMocks.MockPlanningTargetRepository
	snapshotRepo    *repositoryMocks.MockCognitiveSnapshotRepository
}

func newServiceWithMocks(t *testing.T, cfg *config.Config) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	mocks := &serviceMocks{
		adsSource:       sourceMocks.NewMockAdsSource(ctrl),
		analyticsSource: sourceMocks.NewMockAnalyticsSource(ctrl),
		commerceSource:  sourceMocks.NewMockCommerceSource(ctrl),
		accountRepo:     repositoryMocks.NewMockAccountRepository(ctrl),
		planningRepo:    repositoryMocks.NewMockPlanningTargetRepository(ctrl),
		snapshotRepo:    repositoryMocks.NewMockCognitiveSnapshotRepository(ctrl),
	}

	service := NewService(
		cfg,
		mocks.adsSource,
		mocks.analyticsSource,
		mocks.commerceSource,
		mocks.accountRepo,
		mocks.planningRepo,
	)

	return service, mocks
}

func testServicePeriod() domain.Period {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	return domain.Period{StartDate: &start, EndDate: &end}
}

func testAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:         "internal-id",
		ExternalID: "ACC001",
		Name:       "Ótica Exemplo",
		Status:     domain.AdAccountStatusActive,
	}
}

func TestAnalyzeAccount_ValidacaoDeEntrada(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	tests := []struct {
		name        string
		accountID   string
		period      domain.Period
		expectedErr error
	}{
		{
			name:        "Sem account ID",
			accountID:   "",
			period:      testServicePeriod(),
			expectedErr: ErrAccountIDRequired,
		},
		{
			name:        "Sem datas",
			accountID:   "ACC001",
			period:      domain.Period{},
			expectedErr: ErrPeriodRequired,
		},
		{
			name:        "Início posterior ao fim",
			accountID:   "ACC001",
			period:      domain.Period{StartDate: &now, EndDate: &yesterday},
			expectedErr: ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newServiceWithMocks(t, &config.Config{})

			response, err := service.AnalyzeAccount(tt.accountID, tt.period)

			assert.Nil(t, response)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestAnalyzeAccount_ContaInexistente(t *testing.T) {
	service, mocks := newServiceWithMocks(t, &config.Config{})

	mocks.accountRepo.EXPECT().GetAccountByExternalID("ACC404").Return(nil, nil)

	response, err := service.AnalyzeAccount("ACC404", testServicePeriod())

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAnalyzeAccount_OrigemDeAnunciosIndisponivel(t *testing.T) {
	service, mocks := newServiceWithMocks(t, &config.Config{})
	period := testServicePeriod()

	mocks.accountRepo.EXPECT().GetAccountByExternalID("ACC001").Return(testAccount(), nil)
	mocks.adsSource.EXPECT().GetAccountRecord("ACC001", gomock.Any()).Return(nil, errors.New("api indisponível"))
	mocks.analyticsSource.EXPECT().GetFunnel("ACC001", period).Return(nil, errors.New("api indisponível"))
	mocks.analyticsSource.EXPECT().GetChannels("ACC001", period).Return(nil, errors.New("api indisponível"))
	mocks.planningRepo.EXPECT().GetByAccountAndMonth("ACC001", "2024-05").Return(nil, nil)

	response, err := service.AnalyzeAccount("ACC001", period)

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrAdsSourceUnavailable)
}

func TestAnalyzeAccount_PipelineCompleto(t *testing.T) {
	service, mocks := newServiceWithMocks(t, &config.Config{})
	period := testServicePeriod()

	// Período anterior com a mesma duração, terminando na véspera do início
	previousEnd := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	previousStart := time.Date(2024, 4, 16, 0, 0, 0, 0, time.UTC)
	previousPeriod := domain.Period{StartDate: &previousStart, EndDate: &previousEnd}

	cnpj := "12345678000199"
	secretName := "otica-exemplo"
	account := testAccount()
	account.CNPJ = &cnpj
	account.SecretName = &secretName

	mocks.accountRepo.EXPECT().GetAccountByExternalID("ACC001").Return(account, nil)

	mocks.adsSource.EXPECT().GetAccountRecord("ACC001", period).Return(&domain.RawEntityRecord{
		ID: "ACC001", Spend: 1000.0, Impressions: 10000, Clicks: 500, Conversions: 40, Revenue: 8000.0,
	}, nil)
	mocks.adsSource.EXPECT().GetAccountRecord("ACC001", previousPeriod).Return(&domain.RawEntityRecord{
		ID: "ACC001", Spend: 1000.0, Conversions: 45, Revenue: 8500.0,
	}, nil)
	mocks.adsSource.EXPECT().GetCampaignRecords("ACC001", period).Return([]domain.RawEntityRecord{
		{ID: "CAMP01", Name: "Remarketing", Spend: 700.0, Conversions: 40, Revenue: 8000.0},
		{ID: "CAMP02", Name: "Prospecção fria", Spend: 300.0, Conversions: 0},
	}, nil)
	mocks.adsSource.EXPECT().GetBreakdown("ACC001", domain.BreakdownDevice, period).Return([]domain.RawSliceRecord{
		{Key: "mobile", Label: "Mobile", Revenue: 6000.0, Cost: 600.0, Conversions: 30},
		{Key: "desktop", Label: "Desktop", Revenue: 2000.0, Cost: 400.0, Conversions: 10},
	}, nil)
	mocks.adsSource.EXPECT().GetBreakdown("ACC001", domain.BreakdownDemographic, period).Return(nil, nil)
	mocks.adsSource.EXPECT().GetBreakdown("ACC001", domain.BreakdownGeographic, period).Return(nil, nil)

	mocks.analyticsSource.EXPECT().GetFunnel("ACC001", period).Return([]domain.RawFunnelStep{
		{Name: "sessao", Count: 5000},
		{Name: "produto", Count: 2000},
		{Name: "checkout", Count: 100},
	}, nil)
	mocks.analyticsSource.EXPECT().GetChannels("ACC001", period).Return([]domain.RawChannelRecord{
		{Channel: "paid_social", Sessions: 4000, Conversions: 30, Revenue: 6000.0},
		{Channel: "email", Sessions: 400, Conversions: 10, Revenue: 2000.0},
	}, nil)

	mocks.commerceSource.EXPECT().GetSKURecords(account, period).Return([]domain.RawEntityRecord{
		{ID: "SKU01", Name: "Armação X", Revenue: 3000.0, MarginPct: 35.0, StockUnits: 12},
	}, nil)

	mocks.planningRepo.EXPECT().GetByAccountAndMonth("ACC001", "2024-05").Return(&domain.PlanningTargets{
		Month: "2024-05",
		Targets: []domain.PlanningTarget{
			{Metric: domain.MetricRevenue, Label: "Receita", Value: 20000.0},
		},
	}, nil)

	response, err := service.AnalyzeAccount("ACC001", period)

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.Equal(t, "ACC001", response.AccountID)
	assert.GreaterOrEqual(t, response.HealthScore, 0)
	assert.LessOrEqual(t, response.HealthScore, 100)
	assert.NotEmpty(t, response.Mode.Mode)
	assert.NotEmpty(t, response.ExecutiveSummary.Headline)
	assert.False(t, response.GeneratedAt.IsZero())
	assert.LessOrEqual(t, len(response.TopRecommendations), 5)
	assert.Len(t, response.PacingProjections, 1)

	// A campanha sem conversão precisa virar achado de desperdício
	foundWaste := false
	for _, finding := range response.Findings {
		if finding.ID == "zero_conversion_waste_camp02" {
			foundWaste = true
		}
	}
	assert.True(t, foundWaste)
}

func TestAnalyzeAccount_CacheHit(t *testing.T) {
	cfg := &config.Config{}
	cfg.SnapshotSync.CacheTTLMinutes = 60

	service, mocks := newServiceWithMocks(t, cfg)
	service.WithCache(mocks.snapshotRepo)

	period := testServicePeriod()
	cached := &domain.CognitiveResponse{AccountID: "ACC001", HealthScore: 82}

	mocks.accountRepo.EXPECT().GetAccountByExternalID("ACC001").Return(testAccount(), nil)
	mocks.snapshotRepo.EXPECT().GetRecent("ACC001", period, 60*time.Minute).Return(cached, nil)

	response, err := service.AnalyzeAccount("ACC001", period)

	assert.NoError(t, err)
	assert.Same(t, cached, response)
}

func TestAnalyzeAccount_CacheMissSalvaSnapshot(t *testing.T) {
	cfg := &config.Config{}
	cfg.SnapshotSync.CacheTTLMinutes = 60

	service, mocks := newServiceWithMocks(t, cfg)
	service.WithCache(mocks.snapshotRepo)

	period := testServicePeriod()
	sourceErr := errors.New("api indisponível")

	mocks.accountRepo.EXPECT().GetAccountByExternalID("ACC001").Return(testAccount(), nil)
	mocks.snapshotRepo.EXPECT().GetRecent("ACC001", period, 60*time.Minute).Return(nil, nil)

	// Apenas a métrica agregada da conta responde; as demais origens degradam
	mocks.adsSource.EXPECT().GetAccountRecord("ACC001", period).Return(&domain.RawEntityRecord{
		ID: "ACC001", Spend: 500.0, Conversions: 10, Revenue: 3000.0,
	}, nil)
	mocks.adsSource.EXPECT().GetAccountRecord("ACC001", gomock.Any()).Return(nil, sourceErr)
	mocks.adsSource.EXPECT().GetCampaignRecords("ACC001", period).Return(nil, sourceErr)
	mocks.adsSource.EXPECT().GetBreakdown("ACC001", gomock.Any(), period).Return(nil, sourceErr).Times(3)
	mocks.analyticsSource.EXPECT().GetFunnel("ACC001", period).Return(nil, sourceErr)
	mocks.analyticsSource.EXPECT().GetChannels("ACC001", period).Return(nil, sourceErr)
	mocks.planningRepo.EXPECT().GetByAccountAndMonth("ACC001", "2024-05").Return(nil, sourceErr)

	mocks.snapshotRepo.EXPECT().SaveOrUpdate("ACC001", period, gomock.Any()).Return(nil)

	response, err := service.AnalyzeAccount("ACC001", period)

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.Empty(t, response.Findings)
}

func TestPlanBudget(t *testing.T) {
	service, mocks := newServiceWithMocks(t, &config.Config{})
	period := testServicePeriod()

	mocks.accountRepo.EXPECT().GetAccountByExternalID("ACC001").Return(testAccount(), nil)
	mocks.adsSource.EXPECT().GetCampaignRecords("ACC001", period).Return([]domain.RawEntityRecord{
		{ID: "CAMP01", Name: "Prospecção", Spend: 1000.0, Revenue: 2000.0},
		{ID: "CAMP02", Name: "Remarketing", Spend: 1000.0, Revenue: 10000.0},
	}, nil)

	plan, err := service.PlanBudget("ACC001", period)

	assert.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Len(t, plan.Allocations, 2)
	assert.Equal(t, 2000.0, plan.TotalBudget)

	// Conservação: a soma dos orçamentos recomendados é o orçamento total
	recommended := 0.0
	for _, allocation := range plan.Allocations {
		recommended += allocation.RecommendedBudget
	}
	assert.Equal(t, plan.TotalBudget, recommended)
	assert.GreaterOrEqual(t, plan.ExpectedTotalRoas, plan.CurrentTotalRoas)
}

func TestPlanBudget_ErroNaOrigem(t *testing.T) {
	service, mocks := newServiceWithMocks(t, &config.Config{})
	sourceErr := errors.New("api indisponível")

	mocks.accountRepo.EXPECT().GetAccountByExternalID("ACC001").Return(testAccount(), nil)
	mocks.adsSource.EXPECT().GetCampaignRecords("ACC001", testServicePeriod()).Return(nil, sourceErr)

	plan, err := service.PlanBudget("ACC001", testServicePeriod())

	assert.Nil(t, plan)
	assert.ErrorIs(t, err, sourceErr)
}
