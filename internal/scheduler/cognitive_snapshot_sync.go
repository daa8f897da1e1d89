package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/repository"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/cognition"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots cognitivos
type SnapshotSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SnapshotSyncService pré-computa a análise cognitiva de todas as contas
// ativas para o mês corrente, deixando o snapshot quente no cache
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	analyzer            cognition.CognitiveAnalyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewSnapshotSyncService(
	accountRepo repository.AccountRepository,
	analyzer cognition.CognitiveAnalyzer,
	appConfig *config.Config,
) *SnapshotSyncService {
	// Criar a configuração com base na config global
	syncConfig := SnapshotSyncConfig{
		CronSchedule:        appConfig.SnapshotSync.CronSchedule,
		RequestDelaySeconds: appConfig.SnapshotSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SnapshotSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.SnapshotSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots cognitivos carregada")

	return &SnapshotSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		accountRepo: accountRepo,
		analyzer:    analyzer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots cognitivos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots cognitivos")

	// Agendar a pré-computação dos snapshots
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots cognitivos: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots cognitivos")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma sincronização imediata fora do agendamento
func (s *SnapshotSyncService) TriggerManualSync() {
	go s.syncAllSnapshots()
}

// GetStatus expõe o estado corrente do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.SyncEnabled,
		"running":           s.syncRunning,
		"cron_schedule":     s.config.CronSchedule,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
	}
}

// syncAllSnapshots pré-computa os snapshots de todas as contas ativas
func (s *SnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots cognitivos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando pré-computação de snapshots cognitivos para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de snapshots")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de snapshots")
		return
	}

	period := monthToDatePeriod(time.Now())
	s.processSnapshots(activeAccounts, period)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
	}).Info("Pré-computação de snapshots cognitivos concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveAccounts busca e filtra contas ativas
func (s *SnapshotSyncService) getActiveAccounts() ([]*domain.AdAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para sincronização de snapshots")
		return []*domain.AdAccount{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização de snapshots")

	return activeAccounts, nil
}

// processSnapshots analisa cada conta com concorrência limitada por semáforo
func (s *SnapshotSyncService) processSnapshots(accounts []*domain.AdAccount, period domain.Period) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		// Se a conta não tiver external_id, pular
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"external_id":  acc.ExternalID,
				"account_name": acc.Name,
			}).Info("Pré-computando snapshot cognitivo para conta")

			if _, err := s.analyzer.AnalyzeAccount(acc.ExternalID, period); err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id":  acc.ID,
					"external_id": acc.ExternalID,
					"error":       err.Error(),
				}).Error("Erro ao pré-computar snapshot cognitivo")
			}

			// Intervalo entre contas para não saturar as APIs externas
			if s.config.RequestDelaySeconds > 0 {
				time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
			}
		}(account)
	}

	wg.Wait()
}

// monthToDatePeriod monta o período do primeiro dia do mês corrente até ontem
func monthToDatePeriod(now time.Time) domain.Period {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now.AddDate(0, 0, -1)
	if end.Before(start) {
		end = start
	}

	return domain.Period{StartDate: &start, EndDate: &end}
}
