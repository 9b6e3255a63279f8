// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

//go:generate mockgen -source=load_run.go -destination=mocks/load_run_mock.go -package=mocks

const (
	loadRunsTable      = "dataset_loads dl"
	defaultListLimit   = 50
	maxListLimit       = 500
	loadRunsSelectCols = "dl.id, dl.source, dl.status, dl.format, dl.rows, dl.error, dl.started_at, dl.duration_ms"
)

type LoadRunRepository interface {
	Save(run *domain.LoadRun) error
	ListRecent(source string, limit int) ([]*domain.LoadRun, error)
}

type loadRunRepository struct {
	conn *postgres.Connection
}

func NewLoadRunRepository(conn *postgres.Connection) LoadRunRepository {
	return &loadRunRepository{
		conn: conn,
	}
}

func (r *loadRunRepository) Save(run *domain.LoadRun) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("dataset_loads").
		Columns("id", "source", "status", "format", "rows", "error", "started_at", "duration_ms").
		Values(
			run.ID,
			run.Source,
			string(run.Status),
			run.Format,
			run.Rows,
			run.Error,
			run.StartedAt,
			run.DurationMs,
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

// ListRecent retorna as cargas mais recentes, opcionalmente de uma única fonte
func (r *loadRunRepository) ListRecent(source string, limit int) ([]*domain.LoadRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	builder := squirrel.
		Select(loadRunsSelectCols).
		From(loadRunsTable).
		OrderBy("dl.started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if source != "" {
		builder = builder.Where(squirrel.Eq{"dl.source": source})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.LoadRun, 0)
	for rows.Next() {
		run := &domain.LoadRun{}
		var status string

		err := rows.Scan(
			&run.ID,
			&run.Source,
			&status,
			&run.Format,
			&run.Rows,
			&run.Error,
			&run.StartedAt,
			&run.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear carga: %w", err)
		}

		run.Status = domain.LoadRunStatus(status)
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}
