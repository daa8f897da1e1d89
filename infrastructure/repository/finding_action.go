package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
	"github.com/vfg2006/cognitive-insights-api/pkg/utils"
)

const (
	findingActionsTable = "finding_actions fa"
)

type FindingActionRepository interface {
	Save(action *domain.FindingAction) error
	GetByFindingID(findingID string) ([]*domain.FindingAction, error)
	GetByAccountID(accountID string) ([]*domain.FindingAction, error)
}

type findingActionRepository struct {
	conn *postgres.Connection
}

func NewFindingActionRepository(conn *postgres.Connection) FindingActionRepository {
	return &findingActionRepository{
		conn: conn,
	}
}

func (r *findingActionRepository) Save(action *domain.FindingAction) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID: %w", err)
	}
	action.ID = id

	query, args, err := squirrel.StatementBuilder.
		Insert("finding_actions").
		Columns("id", "finding_id", "account_id", "action_type", "user_id", "notes").
		Values(
			action.ID,
			action.FindingID,
			action.AccountID,
			string(action.ActionType),
			action.UserID,
			action.Notes,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *findingActionRepository) GetByFindingID(findingID string) ([]*domain.FindingAction, error) {
	return r.getByColumn("fa.finding_id", findingID)
}

func (r *findingActionRepository) GetByAccountID(accountID string) ([]*domain.FindingAction, error) {
	return r.getByColumn("fa.account_id", accountID)
}

func (r *findingActionRepository) getByColumn(column string, value string) ([]*domain.FindingAction, error) {
	query, args, err := squirrel.
		Select("fa.id", "fa.finding_id", "fa.account_id", "fa.action_type", "fa.user_id", "fa.notes", "fa.created_at").
		From(findingActionsTable).
		Where(squirrel.Eq{column: value}).
		OrderBy("fa.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	actions := make([]*domain.FindingAction, 0)
	for rows.Next() {
		action := &domain.FindingAction{}
		var actionType string

		if err := rows.Scan(
			&action.ID,
			&action.FindingID,
			&action.AccountID,
			&actionType,
			&action.UserID,
			&action.Notes,
			&action.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear ação de achado: %w", err)
		}

		action.ActionType = domain.FindingActionType(actionType)
		actions = append(actions, action)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return actions, nil
}
