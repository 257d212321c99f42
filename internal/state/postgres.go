package state

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is the sturdier alternative to FileStore for deployments
// where the pod filesystem is ephemeral. Same whole-document semantics:
// each save replaces the table contents inside one transaction.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ingredients(ctx context.Context) (map[string]bool, error) {
	return s.loadTable(ctx, `SELECT name, available FROM ingredient_state`)
}

func (s *PostgresStore) SaveIngredients(ctx context.Context, state map[string]bool) error {
	return s.saveTable(ctx, "ingredient_state", "available", state)
}

func (s *PostgresStore) Overrides(ctx context.Context) (map[string]bool, error) {
	return s.loadTable(ctx, `SELECT name, enabled FROM cocktail_overrides`)
}

func (s *PostgresStore) SaveOverrides(ctx context.Context, overrides map[string]bool) error {
	return s.saveTable(ctx, "cocktail_overrides", "enabled", overrides)
}

func (s *PostgresStore) loadTable(ctx context.Context, query string) (map[string]bool, error) {
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doc := map[string]bool{}
	for rows.Next() {
		var name string
		var value bool
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		doc[name] = value
	}
	return doc, rows.Err()
}

func (s *PostgresStore) saveTable(ctx context.Context, table, column string, doc map[string]bool) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM `+table); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for name, value := range doc {
		batch.Queue(
			`INSERT INTO `+table+` (name, `+column+`) VALUES ($1, $2)`,
			name, value,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
