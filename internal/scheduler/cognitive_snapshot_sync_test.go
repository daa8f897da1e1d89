package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repositoryMocks "github.com/vfg2006/cognitive-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	cognitionMocks "github.com/vfg2006/cognitive-insights-api/internal/usecases/cognition/mocks"
	"go.uber.org/mock/gomock"
)

func TestMonthToDatePeriod(t *testing.T) {
	t.Run("Do primeiro dia do mês até ontem", func(t *testing.T) {
		now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

		period := monthToDatePeriod(now)

		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *period.StartDate)
		assert.Equal(t, time.Date(2024, 5, 14, 10, 30, 0, 0, time.UTC), *period.EndDate)
	})

	t.Run("No primeiro dia do mês o período colapsa para o próprio dia", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

		period := monthToDatePeriod(now)

		assert.Equal(t, *period.StartDate, *period.EndDate)
		assert.False(t, period.StartDate.After(*period.EndDate))
	})
}

func newSyncServiceWithMocks(t *testing.T) (*SnapshotSyncService, *repositoryMocks.MockAccountRepository, *cognitionMocks.MockCognitiveAnalyzer) {
	ctrl := gomock.NewController(t)
	accountRepo := repositoryMocks.NewMockAccountRepository(ctrl)
	analyzer := cognitionMocks.NewMockCognitiveAnalyzer(ctrl)

	cfg := &config.Config{}
	cfg.SnapshotSync.MaxConcurrentJobs = 2

	return NewSnapshotSyncService(accountRepo, analyzer, cfg), accountRepo, analyzer
}

func TestGetActiveAccounts(t *testing.T) {
	t.Run("Filtra apenas contas ativas no repositório", func(t *testing.T) {
		service, accountRepo, _ := newSyncServiceWithMocks(t)

		accounts := []*domain.AdAccount{
			{ID: "1", ExternalID: "ACC001", Status: domain.AdAccountStatusActive},
			{ID: "2", ExternalID: "ACC002", Status: domain.AdAccountStatusActive},
		}
		accountRepo.EXPECT().
			ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
			Return(accounts, nil)

		result, err := service.getActiveAccounts()

		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		service, accountRepo, _ := newSyncServiceWithMocks(t)

		repoErr := errors.New("conexão recusada")
		accountRepo.EXPECT().
			ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
			Return(nil, repoErr)

		result, err := service.getActiveAccounts()

		assert.Nil(t, result)
		assert.ErrorIs(t, err, repoErr)
	})

	t.Run("Sem contas devolve lista vazia sem erro", func(t *testing.T) {
		service, accountRepo, _ := newSyncServiceWithMocks(t)

		accountRepo.EXPECT().
			ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
			Return([]*domain.AdAccount{}, nil)

		result, err := service.getActiveAccounts()

		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestProcessSnapshots(t *testing.T) {
	t.Run("Analisa cada conta com external_id", func(t *testing.T) {
		service, _, analyzer := newSyncServiceWithMocks(t)
		period := monthToDatePeriod(time.Now())

		accounts := []*domain.AdAccount{
			{ID: "1", ExternalID: "ACC001", Name: "Loja A", Status: domain.AdAccountStatusActive},
			{ID: "2", ExternalID: "ACC002", Name: "Loja B", Status: domain.AdAccountStatusActive},
		}

		analyzer.EXPECT().AnalyzeAccount("ACC001", period).Return(&domain.CognitiveResponse{}, nil)
		analyzer.EXPECT().AnalyzeAccount("ACC002", period).Return(&domain.CognitiveResponse{}, nil)

		service.processSnapshots(accounts, period)
	})

	t.Run("Conta sem external_id é pulada", func(t *testing.T) {
		service, _, analyzer := newSyncServiceWithMocks(t)
		period := monthToDatePeriod(time.Now())

		accounts := []*domain.AdAccount{
			{ID: "1", ExternalID: "", Name: "Sem vínculo", Status: domain.AdAccountStatusActive},
			{ID: "2", ExternalID: "ACC002", Name: "Loja B", Status: domain.AdAccountStatusActive},
		}

		analyzer.EXPECT().AnalyzeAccount("ACC002", period).Return(&domain.CognitiveResponse{}, nil)

		service.processSnapshots(accounts, period)
	})

	t.Run("Erro de análise não interrompe as demais contas", func(t *testing.T) {
		service, _, analyzer := newSyncServiceWithMocks(t)
		period := monthToDatePeriod(time.Now())

		accounts := []*domain.AdAccount{
			{ID: "1", ExternalID: "ACC001", Status: domain.AdAccountStatusActive},
			{ID: "2", ExternalID: "ACC002", Status: domain.AdAccountStatusActive},
		}

		analyzer.EXPECT().AnalyzeAccount("ACC001", period).Return(nil, errors.New("origem indisponível"))
		analyzer.EXPECT().AnalyzeAccount("ACC002", period).Return(&domain.CognitiveResponse{}, nil)

		service.processSnapshots(accounts, period)
	})
}

func TestGetStatus(t *testing.T) {
	service, _, _ := newSyncServiceWithMocks(t)

	status := service.GetStatus()

	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, false, status["running"])
}
