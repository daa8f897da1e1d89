package domain

import (
	"time"
)

// FindingActionType representa o tipo de ação registrada sobre um achado
type FindingActionType string

const (
	ActionApplied   FindingActionType = "applied"
	ActionDismissed FindingActionType = "dismissed"
	ActionSnoozed   FindingActionType = "snoozed"
)

// FindingAction é o registro de uma ação tomada pelo usuário sobre um achado,
// correlacionada pelo ID determinístico do achado
type FindingAction struct {
	ID         string            `json:"id"`
	FindingID  string            `json:"finding_id"`
	AccountID  string            `json:"account_id"`
	ActionType FindingActionType `json:"action_type"`
	UserID     int               `json:"user_id"`
	Notes      *string           `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// RegisterFindingActionRequest é o corpo da requisição de registro de ação
type RegisterFindingActionRequest struct {
	ActionType FindingActionType `json:"action_type"`
	Notes      *string           `json:"notes,omitempty"`
}
