package flowstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-IntakeService/pkg/psqlbuilder"
)

const flowStoreTable = "flow_store"

// PostgresBackend хранит blob'ы в таблице flow_store (см. migrations/)
type PostgresBackend struct {
	db DBExecutor
}

// NewPostgresBackend создает PostgreSQL backend
func NewPostgresBackend(db DBExecutor) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := buildGetQuery(key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var blob string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - scan blob: %v", ErrExecQuery, err)
	}

	return []byte(blob), true, nil
}

func (p *PostgresBackend) Set(ctx context.Context, key string, blob []byte) error {
	query, args, err := buildUpsertQuery(key, blob)
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

func (p *PostgresBackend) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteQuery(key)
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (p *PostgresBackend) Name() string { return "postgres" }

func buildGetQuery(key string) (string, []interface{}, error) {
	return psqlbuilder.Select("blob").
		From(flowStoreTable).
		Where(squirrel.Eq{"storage_key": key}).
		ToSql()
}

// buildUpsertQuery last-writer-wins: существующий blob полностью заменяется
func buildUpsertQuery(key string, blob []byte) (string, []interface{}, error) {
	return psqlbuilder.Insert(flowStoreTable).
		Columns("storage_key", "blob", "updated_at").
		Values(key, string(blob), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (storage_key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = EXCLUDED.updated_at").
		ToSql()
}

func buildDeleteQuery(key string) (string, []interface{}, error) {
	return psqlbuilder.Delete(flowStoreTable).
		Where(squirrel.Eq{"storage_key": key}).
		ToSql()
}
