package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// PurchaseActionTypes são os tipos de ação que o Meta usa para compras
// atribuídas, variando conforme a origem do evento (pixel, catálogo ou omni)
var PurchaseActionTypes = []string{
	"offsite_conversion.fb_pixel_purchase",
	"omni_purchase",
	"purchase",
}

// SumActions soma os valores das ações cujo tipo está em actionTypes.
// Cada tipo é contado no máximo uma vez, na primeira ocorrência.
func SumActions(actions []Action, actionTypes ...string) float64 {
	total := 0.0
	seen := make(map[string]bool)

	for _, action := range actions {
		if seen[action.ActionType] {
			continue
		}

		for _, actionType := range actionTypes {
			if action.ActionType != actionType {
				continue
			}

			value, err := strconv.ParseFloat(action.Value, 64)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"action_type":  action.ActionType,
					"action_value": action.Value,
					"error":        err.Error(),
				}).Warn("insights: error converting action value to float")
				break
			}

			seen[action.ActionType] = true
			total += value
			break
		}
	}

	return total
}

// ParseCount converte um campo numérico textual da API para inteiro,
// devolvendo zero para valores ausentes ou inválidos
func ParseCount(value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting count to integer")
		return 0
	}

	return parsed
}

// ParseMoney converte um campo monetário textual da API para float,
// devolvendo zero para valores ausentes ou inválidos
func ParseMoney(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting money to float")
		return 0
	}

	return parsed
}
