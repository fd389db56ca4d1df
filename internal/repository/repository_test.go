package repository

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	dbpostgres "skill-matcher/internal/database/postgres"
)

func setupMock(t *testing.T) (*dbpostgres.Pool, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return dbpostgres.Wrap(mock), mock
}
