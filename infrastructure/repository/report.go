package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/healthcard-api/infrastructure/database/postgres"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

const reportsTable = "reports r"

type ReportRepository interface {
	GetLatestByAccountID(accountID string) (*domain.Report, error)
	Save(id, accountID string, report *domain.Report) error
	DeleteOlderThan(days int) (int64, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

// GetLatestByAccountID retorna o relatório mais recente da conta, ou nil
// quando a conta ainda não foi avaliada
func (r *reportRepository) GetLatestByAccountID(accountID string) (*domain.Report, error) {
	query, args, err := squirrel.
		Select("r.account_id, r.account_name, r.platform, r.health_score, r.results, r.generated_at").
		From(reportsTable).
		Where(squirrel.Eq{"r.account_id": accountID}).
		OrderBy("r.generated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	report := &domain.Report{}
	var results []byte

	if err := row.Scan(
		&report.AccountID,
		&report.AccountName,
		&report.Platform,
		&report.HealthScore,
		&results,
		&report.GeneratedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(results, &report.Results); err != nil {
		return nil, fmt.Errorf("erro ao deserializar os resultados do relatório: %w", err)
	}

	return report, nil
}

// Save persiste uma nova execução do relatório. Cada execução gera uma nova
// linha; o histórico fica disponível para consulta
func (r *reportRepository) Save(id, accountID string, report *domain.Report) error {
	results, err := json.Marshal(report.Results)
	if err != nil {
		return fmt.Errorf("erro ao serializar os resultados do relatório: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("reports").
		Columns("id", "account_id", "account_name", "platform", "health_score", "results", "generated_at").
		Values(id, accountID, report.AccountName, report.Platform, report.HealthScore, results, report.GeneratedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// DeleteOlderThan remove relatórios mais antigos que o número de dias
func (r *reportRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("reports").
		Where(squirrel.Lt{"generated_at": cutoff}).
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
