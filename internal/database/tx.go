package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// WithTx runs fn inside a transaction and commits when fn returns nil.
func WithTx(ctx context.Context, db DB, fn func(tx Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// InsertSkills writes one (owner, skill) row per label, skipping pairs that
// already exist. table and column are trusted constants.
func InsertSkills(ctx context.Context, q Querier, table, column string, ownerID uuid.UUID, skills []string) error {
	for _, s := range skills {
		if _, err := q.Exec(ctx,
			`INSERT INTO `+table+` (`+column+`, skill) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			ownerID, s,
		); err != nil {
			return err
		}
	}
	return nil
}
