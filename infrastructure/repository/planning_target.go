package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

const (
	planningTargetsTable = "planning_targets pt"
)

type PlanningTargetRepository interface {
	// GetByAccountAndMonth busca as metas de uma conta no mês (formato 2006-01).
	// Retorna nil sem erro quando a conta não tem metas cadastradas.
	GetByAccountAndMonth(accountID string, month string) (*domain.PlanningTargets, error)
	SaveOrUpdate(accountID string, targets *domain.PlanningTargets) error
}

type planningTargetRepository struct {
	conn *postgres.Connection
}

func NewPlanningTargetRepository(conn *postgres.Connection) PlanningTargetRepository {
	return &planningTargetRepository{
		conn: conn,
	}
}

func (r *planningTargetRepository) GetByAccountAndMonth(accountID string, month string) (*domain.PlanningTargets, error) {
	query, args, err := squirrel.
		Select("pt.metric", "pt.label", "pt.value").
		From(planningTargetsTable).
		Where(squirrel.Eq{"pt.account_id": accountID, "pt.month": month}).
		OrderBy("pt.metric ASC").
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

	targets := make([]domain.PlanningTarget, 0)
	for rows.Next() {
		var target domain.PlanningTarget
		if err := rows.Scan(&target.Metric, &target.Label, &target.Value); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta de planejamento: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(targets) == 0 {
		return nil, nil
	}

	return &domain.PlanningTargets{
		Month:   month,
		Targets: targets,
	}, nil
}

func (r *planningTargetRepository) SaveOrUpdate(accountID string, targets *domain.PlanningTargets) error {
	if targets == nil || len(targets.Targets) == 0 {
		return fmt.Errorf("nenhuma meta informada")
	}

	query := squirrel.StatementBuilder.
		Insert("planning_targets").
		Columns("account_id", "month", "metric", "label", "value").
		PlaceholderFormat(squirrel.Dollar)

	for _, target := range targets.Targets {
		query = query.Values(accountID, targets.Month, target.Metric, target.Label, target.Value)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, month, metric) DO UPDATE SET
			label = EXCLUDED.label,
			value = EXCLUDED.value,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
