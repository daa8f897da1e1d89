package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/internal/usecases/scoring"
	"github.com/vfg2006/cognitive-insights-api/pkg/log"
)

// IQSRequest é o corpo da requisição de pontuação de parceiro
type IQSRequest struct {
	Profile    domain.InfluencerProfile `json:"profile"`
	Engagement domain.EngagementMetrics `json:"engagement"`
	History    []domain.Collaboration   `json:"history"`
}

// CalculateIQS calcula o Influencer Quality Score de um parceiro
func CalculateIQS() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request IQSRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("iqs: invalid request body")
			http.Error(w, "corpo da requisição inválido", http.StatusBadRequest)
			return
		}

		if request.Profile.ID == "" {
			logger.Warn("iqs: missing profile ID")
			http.Error(w, "profile.id é obrigatório", http.StatusBadRequest)
			return
		}

		result := scoring.Calculate(request.Profile, request.Engagement, request.History)

		logger.WithFields(log.Fields{
			"profile_id": request.Profile.ID,
			"iqs":        result.IQS,
			"tier":       result.Tier,
		}).Info("iqs: score calculated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("iqs: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
