package postgres

import (
	"context"

	"skill-matcher/internal/database"
	dbpostgres "skill-matcher/internal/database/postgres"
	"skill-matcher/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`,
			u.ID, u.Name, u.Email, u.PasswordHash,
		); err != nil {
			if dbpostgres.IsUniqueViolation(err) {
				return user.ErrEmailDuplicate
			}
			return err
		}
		return database.InsertSkills(ctx, tx, "user_skills", "user_id", u.ID, u.Skills)
	})
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`,
		id,
	))
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd user.ProfileUpdate) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if upd.Name != nil {
			affected, err := tx.Exec(ctx, `UPDATE users SET name = $2 WHERE id = $1`, id, *upd.Name)
			if err != nil {
				return err
			}
			if affected == 0 {
				return user.ErrNotFound
			}
		}
		if upd.Skills == nil {
			return nil
		}

		if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, id); err != nil {
			return err
		}
		if err := database.InsertSkills(ctx, tx, "user_skills", "user_id", id, *upd.Skills); err != nil {
			if dbpostgres.IsForeignKeyViolation(err) {
				return user.ErrNotFound
			}
			return err
		}
		return nil
	})
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if dbpostgres.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
