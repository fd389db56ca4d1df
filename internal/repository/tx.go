package repository

import (
	"context"

	"github.com/google/uuid"

	"skill-matcher/internal/database"
)

// skillsByOwner reads (owner, skill) pairs from a skills table, keyed by owner
// in insertion order. table and column are trusted constants.
func skillsByOwner(ctx context.Context, q database.Querier, table, column string, ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := q.Query(ctx,
		`SELECT `+column+`, skill FROM `+table+` WHERE `+column+` = ANY($1) ORDER BY id ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var s string
		if err := rows.Scan(&id, &s); err != nil {
			return nil, err
		}
		out[id] = append(out[id], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
