package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/cognition"
	"github.com/vfg2006/cognitive-insights-api/pkg/log"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

// parsePeriod extrai e valida o período dos parâmetros de consulta
func parsePeriod(r *http.Request) (domain.Period, error) {
	if r.URL.Query().Get("start_date") == "" || r.URL.Query().Get("end_date") == "" {
		return domain.Period{}, cognition.ErrPeriodRequired
	}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return domain.Period{}, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return domain.Period{}, err
	}

	return domain.Period{StartDate: startDate, EndDate: endDate}, nil
}

// cognitionErrorStatus mapeia os erros do pipeline para códigos HTTP
func cognitionErrorStatus(err error) int {
	switch {
	case errors.Is(err, cognition.ErrPeriodRequired),
		errors.Is(err, cognition.ErrInvalidPeriod),
		errors.Is(err, cognition.ErrAccountIDRequired):
		return http.StatusBadRequest
	case errors.Is(err, cognition.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, cognition.ErrAdsSourceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetCognitiveAnalysis executa o pipeline cognitivo da conta. Com
// format=prompt a resposta vem em texto plano pronto para um LLM.
func GetCognitiveAnalysis(service cognition.CognitiveAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("cognitive: running analysis for account")

		period, err := parsePeriod(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("cognitive: invalid period parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		response, err := service.AnalyzeAccount(id, period)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"start_date": period.StartDate.Format(time.DateOnly),
				"end_date":   period.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("cognitive: failed to analyze account")

			http.Error(w, err.Error(), cognitionErrorStatus(err))
			return
		}

		logger.WithFields(log.Fields{
			"account_id":   id,
			"health_score": response.HealthScore,
			"mode":         response.Mode.Mode,
			"findings":     len(response.Findings),
		}).Info("cognitive: analysis completed")

		if r.URL.Query().Get("format") == "prompt" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			if _, err := w.Write([]byte(cognition.SummarizeForPrompt(response))); err != nil {
				logger.WithError(err).Error("cognitive: failed to write prompt response")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("cognitive: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// PlanBudget calcula a realocação de orçamento entre as campanhas da conta
func PlanBudget(service cognition.CognitiveAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("cognitive: planning budget for account")

		period, err := parsePeriod(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("cognitive: invalid period parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		plan, err := service.PlanBudget(id, period)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("cognitive: failed to plan budget")

			http.Error(w, err.Error(), cognitionErrorStatus(err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(plan); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("cognitive: failed to encode budget plan")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
