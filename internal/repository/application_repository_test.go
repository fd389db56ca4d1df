package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-matcher/internal/domain/project"
)

var applicationCols = []string{"id", "project_id", "project_name", "user_id", "user_name", "status", "created_at"}

func TestApplicationRepository_Create(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresApplicationRepository(db)

	projectID, userID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(pgxmock.AnyArg(), projectID, userID, "pending").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`SELECT .+ FROM applications a JOIN projects p .+ WHERE a.id = `).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(applicationCols).
			AddRow(uuid.New(), projectID, "P", userID, "Bob", "pending", now))

	a, err := repo.Create(context.Background(), projectID, userID)

	require.NoError(t, err)
	assert.Equal(t, project.StatusPending, a.Status)
	assert.Equal(t, "P", a.ProjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Create_Duplicate(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresApplicationRepository(db)
	projectID, userID := uuid.New(), uuid.New()

	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(pgxmock.AnyArg(), projectID, userID, "pending").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), projectID, userID)

	assert.ErrorIs(t, err, ErrApplicationExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Create_UnknownProject(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresApplicationRepository(db)
	projectID, userID := uuid.New(), uuid.New()

	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(pgxmock.AnyArg(), projectID, userID, "pending").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Create(context.Background(), projectID, userID)

	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Accept(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresApplicationRepository(db)

	id, projectID, userID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT project_id, user_id, status FROM applications`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"project_id", "user_id", "status"}).AddRow(projectID, userID, "pending"))
	mock.ExpectQuery(`SELECT p.team_size`).
		WithArgs(projectID).
		WillReturnRows(pgxmock.NewRows([]string{"team_size", "members"}).AddRow(3, 1))
	mock.ExpectExec(`UPDATE applications SET status`).
		WithArgs(id, "accepted").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO project_team`).
		WithArgs(projectID, userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT .+ FROM applications a`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(applicationCols).
			AddRow(id, projectID, "P", userID, "Bob", "accepted", time.Now()))

	a, err := repo.Accept(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, project.StatusAccepted, a.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Accept_TeamFull(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresApplicationRepository(db)

	id, projectID, userID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT project_id, user_id, status FROM applications`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"project_id", "user_id", "status"}).AddRow(projectID, userID, "pending"))
	mock.ExpectQuery(`SELECT p.team_size`).
		WithArgs(projectID).
		WillReturnRows(pgxmock.NewRows([]string{"team_size", "members"}).AddRow(2, 2))
	mock.ExpectRollback()

	_, err := repo.Accept(context.Background(), id)

	assert.ErrorIs(t, err, ErrTeamFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Reject_NotPending(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresApplicationRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT project_id, user_id, status FROM applications`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"project_id", "user_id", "status"}).AddRow(uuid.New(), uuid.New(), "accepted"))
	mock.ExpectRollback()

	_, err := repo.Reject(context.Background(), id)

	assert.ErrorIs(t, err, ErrApplicationNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_DeletePending(t *testing.T) {
	tests := []struct {
		name    string
		rows    *pgxmock.Rows
		wantErr error
	}{
		{
			name:    "not found",
			rows:    pgxmock.NewRows([]string{"status"}),
			wantErr: ErrApplicationNotFound,
		},
		{
			name:    "not pending",
			rows:    pgxmock.NewRows([]string{"status"}).AddRow("rejected"),
			wantErr: ErrApplicationNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMock(t)
			repo := NewPostgresApplicationRepository(db)
			id, userID := uuid.New(), uuid.New()

			mock.ExpectBegin()
			mock.ExpectQuery(`SELECT status FROM applications`).WithArgs(id, userID).WillReturnRows(tt.rows)
			mock.ExpectRollback()

			err := repo.DeletePending(context.Background(), id, userID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("pending", func(t *testing.T) {
		db, mock := setupMock(t)
		repo := NewPostgresApplicationRepository(db)
		id, userID := uuid.New(), uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM applications`).
			WithArgs(id, userID).
			WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("pending"))
		mock.ExpectExec(`DELETE FROM applications`).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeletePending(context.Background(), id, userID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
