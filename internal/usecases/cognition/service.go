package cognition

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/repository"
	"github.com/vfg2006/cognitive-insights-api/internal/config"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/budgeting"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/normalizing"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/recommending"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// Service implementa o pipeline cognitivo completo: coleta das origens,
// normalização, análise de padrões, síntese e ranqueamento
type Service struct {
	cfg                *config.Config
	policy             config.Policy
	adsSource          AdsSource
	analyticsSource    AnalyticsSource
	commerceSource     CommerceSource
	accountRepository  repository.AccountRepository
	planningRepository repository.PlanningTargetRepository
	snapshotRepository repository.CognitiveSnapshotRepository
	normalizer         *normalizing.Normalizer
	synthesizer        *Synthesizer
	optimizer          *budgeting.Optimizer
	useCache           bool
}

// NewService cria uma nova instância do serviço cognitivo
func NewService(
	cfg *config.Config,
	adsSource AdsSource,
	analyticsSource AnalyticsSource,
	commerceSource CommerceSource,
	accountRepo repository.AccountRepository,
	planningRepo repository.PlanningTargetRepository,
) *Service {
	policy := cfg.EnginePolicy()

	return &Service{
		cfg:                cfg,
		policy:             policy,
		adsSource:          adsSource,
		analyticsSource:    analyticsSource,
		commerceSource:     commerceSource,
		accountRepository:  accountRepo,
		planningRepository: planningRepo,
		normalizer:         normalizing.New(policy),
		synthesizer:        NewSynthesizer(policy),
		optimizer:          budgeting.New(policy.Budget),
		useCache:           false,
	}
}

// WithCache habilita o cache de snapshots cognitivos
func (s *Service) WithCache(snapshotRepo repository.CognitiveSnapshotRepository) *Service {
	s.snapshotRepository = snapshotRepo
	s.useCache = snapshotRepo != nil
	return s
}

// AnalyzeAccount executa o pipeline cognitivo completo para uma conta.
// Origens indisponíveis degradam para dimensões vazias no cubo; a análise
// só falha quando nem as métricas de anúncios da conta estão disponíveis.
func (s *Service) AnalyzeAccount(accountID string, period domain.Period) (*domain.CognitiveResponse, error) {
	account, err := s.resolveAccount(accountID, period)
	if err != nil {
		return nil, err
	}

	// Com cache habilitado, um snapshot recente evita refazer a coleta
	if s.useCache {
		if snapshot := s.cachedSnapshot(accountID, period); snapshot != nil {
			return snapshot, nil
		}
	}

	raw := s.collectRawMetrics(account, accountID, period)
	if raw.Account == nil {
		return nil, ErrAdsSourceUnavailable
	}

	response := s.analyze(accountID, period, raw)

	if s.useCache {
		if err := s.snapshotRepository.SaveOrUpdate(accountID, period, response); err != nil {
			logrus.WithError(err).Warn("Erro ao salvar snapshot cognitivo")
		}
	}

	return response, nil
}

// Analyze executa o pipeline sobre métricas brutas já coletadas. Usado pelo
// agendador de snapshots e pelos testes de ponta a ponta.
func (s *Service) Analyze(accountID string, period domain.Period, raw *domain.RawMetrics) *domain.CognitiveResponse {
	return s.analyze(accountID, period, raw)
}

func (s *Service) analyze(accountID string, period domain.Period, raw *domain.RawMetrics) *domain.CognitiveResponse {
	cube := s.normalizer.Build(accountID, period, raw)

	ctx := &analyzing.Context{
		AccountID:     accountID,
		ReferenceDate: referenceDate(period),
		Policy:        s.policy,
	}
	findings := analyzing.RunAll(ctx, cube)

	projections := s.synthesizer.ProjectPacing(cube, ctx.ReferenceDate)
	healthScore := s.synthesizer.HealthScore(cube, findings, projections)
	mode := s.synthesizer.AssessMode(healthScore, findings)
	bottleneck := s.synthesizer.SelectBottleneck(findings)
	summary := s.synthesizer.BuildSummary(cube, mode, bottleneck)

	recommendations := recommending.Rank(
		findings,
		recommending.QuickWins(findings),
		s.policy.Ranking.MaxRecommendations,
	)

	return &domain.CognitiveResponse{
		AccountID:          accountID,
		Period:             period,
		Mode:               mode,
		Bottleneck:         bottleneck,
		HealthScore:        healthScore,
		Findings:           findings,
		PacingProjections:  projections,
		TopRecommendations: recommendations,
		ExecutiveSummary:   summary,
		GeneratedAt:        time.Now(),
	}
}

// PlanBudget calcula a realocação de orçamento entre as campanhas ativas da
// conta a partir do desempenho observado no período
func (s *Service) PlanBudget(accountID string, period domain.Period) (*domain.BudgetPlan, error) {
	if _, err := s.resolveAccount(accountID, period); err != nil {
		return nil, err
	}

	campaigns, err := s.adsSource.GetCampaignRecords(accountID, period)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"accountID": accountID,
		}).Error("Erro ao buscar campanhas para o plano de orçamento")
		return nil, err
	}

	entries := make([]domain.BudgetEntry, 0, len(campaigns))
	for _, campaign := range campaigns {
		entries = append(entries, domain.BudgetEntry{
			Entity:        campaign.ID,
			EntityName:    campaign.Name,
			CurrentBudget: campaign.Spend,
			CurrentRoas:   utils.SafeDivide(campaign.Revenue, campaign.Spend),
		})
	}

	return s.optimizer.Optimize(entries), nil
}

// resolveAccount valida o período e garante que a conta existe
func (s *Service) resolveAccount(accountID string, period domain.Period) (*domain.AdAccount, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	if period.StartDate == nil || period.EndDate == nil {
		return nil, ErrPeriodRequired
	}

	if period.StartDate.After(*period.EndDate) {
		return nil, ErrInvalidPeriod
	}

	account, err := s.accountRepository.GetAccountByExternalID(accountID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"accountID": accountID,
		}).Error("Erro ao buscar conta pelo ID no repositório")
		return nil, err
	}

	if account == nil {
		return nil, ErrAccountNotFound
	}

	return account, nil
}

func (s *Service) cachedSnapshot(accountID string, period domain.Period) *domain.CognitiveResponse {
	maxAge := time.Duration(s.cfg.SnapshotSync.CacheTTLMinutes) * time.Minute
	if maxAge <= 0 {
		return nil
	}

	snapshot, err := s.snapshotRepository.GetRecent(accountID, period, maxAge)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar snapshot cognitivo no cache")
		return nil
	}

	return snapshot
}

// collectRawMetrics busca todas as origens em paralelo. Cada origem que falha
// é registrada e deixa sua dimensão vazia; o pipeline segue com o que houver.
func (s *Service) collectRawMetrics(account *domain.AdAccount, accountID string, period domain.Period) *domain.RawMetrics {
	raw := &domain.RawMetrics{}

	// Usar WaitGroup para esperar todas as origens terminarem
	wg := sync.WaitGroup{}
	wg.Add(4)

	// Goroutine para métricas de anúncios (conta, campanhas e segmentações)
	go func() {
		defer wg.Done()
		s.collectAdsMetrics(raw, accountID, period)
	}()

	// Goroutine para funil e canais de aquisição
	go func() {
		defer wg.Done()
		s.collectAnalyticsMetrics(raw, accountID, period)
	}()

	// Goroutine para métricas de produto (apenas se a conta tiver ERP configurado)
	go func() {
		defer wg.Done()
		if account.CNPJ != nil && *account.CNPJ != "" && account.SecretName != nil && *account.SecretName != "" {
			skus, err := s.commerceSource.GetSKURecords(account, period)
			if err != nil {
				logrus.WithError(err).Warn("Erro ao buscar métricas de produto no ERP")
				return
			}
			raw.SKUs = skus
		}
	}()

	// Goroutine para as metas de planejamento do mês do período
	go func() {
		defer wg.Done()
		planning, err := s.planningRepository.GetByAccountAndMonth(accountID, period.EndDate.Format("2006-01"))
		if err != nil {
			logrus.WithError(err).Warn("Erro ao buscar metas de planejamento")
			return
		}
		raw.Planning = planning
	}()

	wg.Wait()

	return raw
}

func (s *Service) collectAdsMetrics(raw *domain.RawMetrics, accountID string, period domain.Period) {
	accountRecord, err := s.adsSource.GetAccountRecord(accountID, period)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"accountID": accountID,
		}).Error("Erro ao buscar métricas de anúncios da conta")
		return
	}
	raw.Account = accountRecord

	if previous, err := s.adsSource.GetAccountRecord(accountID, previousPeriod(period)); err != nil {
		logrus.WithError(err).Warn("Erro ao buscar métricas do período anterior")
	} else {
		raw.Previous = previous
	}

	if campaigns, err := s.adsSource.GetCampaignRecords(accountID, period); err != nil {
		logrus.WithError(err).Warn("Erro ao buscar métricas por campanha")
	} else {
		raw.Campaigns = campaigns
	}

	breakdowns := []struct {
		dimension string
		target    *[]domain.RawSliceRecord
	}{
		{domain.BreakdownDevice, &raw.Devices},
		{domain.BreakdownDemographic, &raw.Demographics},
		{domain.BreakdownGeographic, &raw.Geographic},
	}

	for _, breakdown := range breakdowns {
		slices, err := s.adsSource.GetBreakdown(accountID, breakdown.dimension, period)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"dimension": breakdown.dimension,
			}).Warn("Erro ao buscar segmentação de anúncios")
			continue
		}
		*breakdown.target = slices
	}
}

func (s *Service) collectAnalyticsMetrics(raw *domain.RawMetrics, accountID string, period domain.Period) {
	if funnel, err := s.analyticsSource.GetFunnel(accountID, period); err != nil {
		logrus.WithError(err).Warn("Erro ao buscar funil de conversão")
	} else {
		raw.Funnel = funnel
	}

	if channels, err := s.analyticsSource.GetChannels(accountID, period); err != nil {
		logrus.WithError(err).Warn("Erro ao buscar canais de aquisição")
	} else {
		raw.Channels = channels
	}
}

// referenceDate ancora o pacing e os analisadores no fim do período analisado,
// mantendo o resultado determinístico para o mesmo cubo
func referenceDate(period domain.Period) time.Time {
	if period.EndDate != nil {
		return *period.EndDate
	}
	return time.Now()
}

// previousPeriod retorna o período imediatamente anterior com a mesma duração
func previousPeriod(period domain.Period) domain.Period {
	duration := period.EndDate.Sub(*period.StartDate)
	end := period.StartDate.AddDate(0, 0, -1)
	start := end.Add(-duration)

	return domain.Period{StartDate: &start, EndDate: &end}
}
