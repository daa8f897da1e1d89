package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cognitive-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/cognitive-insights-api/internal/domain"
)

const (
	cognitiveSnapshotsTable = "cognitive_snapshots cs"
)

type CognitiveSnapshotRepository interface {
	// GetRecent busca o snapshot de uma conta e período com idade máxima maxAge.
	// Retorna nil sem erro quando não há snapshot recente.
	GetRecent(accountID string, period domain.Period, maxAge time.Duration) (*domain.CognitiveResponse, error)
	SaveOrUpdate(accountID string, period domain.Period, response *domain.CognitiveResponse) error
	DeleteOlderThan(days int) (int64, error)
}

type cognitiveSnapshotRepository struct {
	conn *postgres.Connection
}

func NewCognitiveSnapshotRepository(conn *postgres.Connection) CognitiveSnapshotRepository {
	return &cognitiveSnapshotRepository{
		conn: conn,
	}
}

func (r *cognitiveSnapshotRepository) GetRecent(accountID string, period domain.Period, maxAge time.Duration) (*domain.CognitiveResponse, error) {
	if period.StartDate == nil || period.EndDate == nil {
		return nil, nil
	}

	cutoff := time.Now().Add(-maxAge)

	query, args, err := squirrel.
		Select("cs.snapshot").
		From(cognitiveSnapshotsTable).
		Where(squirrel.Eq{
			"cs.account_id": accountID,
			"cs.start_date": period.StartDate.Format("2006-01-02"),
			"cs.end_date":   period.EndDate.Format("2006-01-02"),
		}).
		Where(squirrel.GtOrEq{"cs.updated_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var snapshotJSON []byte
	if err := r.conn.QueryRow(query, args...).Scan(&snapshotJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar snapshot cognitivo: %w", err)
	}

	response := &domain.CognitiveResponse{}
	if err := json.Unmarshal(snapshotJSON, response); err != nil {
		return nil, fmt.Errorf("erro ao desserializar snapshot cognitivo: %w", err)
	}

	return response, nil
}

func (r *cognitiveSnapshotRepository) SaveOrUpdate(accountID string, period domain.Period, response *domain.CognitiveResponse) error {
	if period.StartDate == nil || period.EndDate == nil {
		return fmt.Errorf("período do snapshot sem datas definidas")
	}

	snapshotJSON, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("cognitive_snapshots").
		Columns("account_id", "start_date", "end_date", "health_score", "mode", "snapshot").
		Values(
			accountID,
			period.StartDate.Format("2006-01-02"),
			period.EndDate.Format("2006-01-02"),
			response.HealthScore,
			string(response.Mode.Mode),
			snapshotJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, start_date, end_date) DO UPDATE SET
				health_score = EXCLUDED.health_score,
				mode = EXCLUDED.mode,
				snapshot = EXCLUDED.snapshot,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

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

func (r *cognitiveSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("cognitive_snapshots").
		Where(squirrel.Lt{"updated_at": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return result.RowsAffected()
}
