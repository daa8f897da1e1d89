package handler

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/repository"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/log"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// UpsertPlanningTargets cadastra ou atualiza as metas mensais da conta
func UpsertPlanningTargets(repo repository.PlanningTargetRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var targets domain.PlanningTargets
		if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
			logger.WithError(err).Warn("planning: invalid request body")
			http.Error(w, "corpo da requisição inválido", http.StatusBadRequest)
			return
		}

		if !monthPattern.MatchString(targets.Month) {
			logger.WithField("month", targets.Month).Warn("planning: invalid month format")
			http.Error(w, "month deve estar no formato AAAA-MM", http.StatusBadRequest)
			return
		}

		if len(targets.Targets) == 0 {
			http.Error(w, "é necessário informar ao menos uma meta", http.StatusBadRequest)
			return
		}

		if err := repo.SaveOrUpdate(accountID, &targets); err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"month":      targets.Month,
				"error":      err.Error(),
			}).Error("planning: failed to save planning targets")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"month":      targets.Month,
			"targets":    len(targets.Targets),
		}).Info("planning: targets saved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(targets); err != nil {
			logger.WithError(err).Error("planning: failed to encode response")
		}
	})
}

// GetPlanningTargets busca as metas mensais cadastradas para a conta
func GetPlanningTargets(repo repository.PlanningTargetRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		month := r.URL.Query().Get("month")

		if !monthPattern.MatchString(month) {
			http.Error(w, "month deve estar no formato AAAA-MM", http.StatusBadRequest)
			return
		}

		targets, err := repo.GetByAccountAndMonth(accountID, month)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"month":      month,
				"error":      err.Error(),
			}).Error("planning: failed to get planning targets")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if targets == nil {
			http.Error(w, "nenhuma meta cadastrada para o mês", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(targets); err != nil {
			logger.WithError(err).Error("planning: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
