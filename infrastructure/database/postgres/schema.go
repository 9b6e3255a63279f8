package postgres

import (
	"context"
	"database/sql"
)

// schemaStatements cria as tabelas usadas pelo histórico de cargas
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dataset_loads (
		id          VARCHAR(32) PRIMARY KEY,
		source      TEXT        NOT NULL,
		status      VARCHAR(16) NOT NULL,
		format      VARCHAR(8)  NOT NULL DEFAULT '',
		rows        INTEGER     NOT NULL DEFAULT 0,
		error       TEXT        NOT NULL DEFAULT '',
		started_at  TIMESTAMPTZ NOT NULL,
		duration_ms BIGINT      NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_dataset_loads_source_started_at
		ON dataset_loads (source, started_at DESC)`,
}

// EnsureSchema cria as tabelas que ainda não existem, tudo em uma única transação
func (c *Connection) EnsureSchema(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
