package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/repository"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/log"
	"github.com/vfg2006/cognitive-insights-api/pkg/middleware"
)

var validActionTypes = map[domain.FindingActionType]bool{
	domain.ActionApplied:   true,
	domain.ActionDismissed: true,
	domain.ActionSnoozed:   true,
}

// RegisterFindingAction registra a decisão do usuário sobre um achado,
// correlacionada pelo ID determinístico do achado
func RegisterFindingAction(repo repository.FindingActionRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		findingID := params.ByName("finding_id")

		var request domain.RegisterFindingActionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("findings: invalid request body")
			http.Error(w, "corpo da requisição inválido", http.StatusBadRequest)
			return
		}

		if !validActionTypes[request.ActionType] {
			logger.WithField("action_type", request.ActionType).Warn("findings: invalid action type")
			http.Error(w, "action_type deve ser applied, dismissed ou snoozed", http.StatusBadRequest)
			return
		}

		action := &domain.FindingAction{
			FindingID:  findingID,
			AccountID:  accountID,
			ActionType: request.ActionType,
			Notes:      request.Notes,
		}

		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			action.UserID = claims.UserID
		}

		if err := repo.Save(action); err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"finding_id": findingID,
				"error":      err.Error(),
			}).Error("findings: failed to save finding action")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":  accountID,
			"finding_id":  findingID,
			"action_type": action.ActionType,
		}).Info("findings: action registered")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(action); err != nil {
			logger.WithError(err).Error("findings: failed to encode response")
		}
	})
}

// ListFindingActions lista o histórico de ações registradas para a conta
func ListFindingActions(repo repository.FindingActionRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		actions, err := repo.GetByAccountID(accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("findings: failed to list finding actions")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(actions); err != nil {
			logger.WithError(err).Error("findings: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
