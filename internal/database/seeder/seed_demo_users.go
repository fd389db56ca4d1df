package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skill-matcher/internal/database"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

var demoNamespace = uuid.MustParse("5f0c8a52-4c7e-4b8e-9a53-3f1e2b7d9c10")

// DemoID derives a stable id so that seeding twice is a no-op.
func DemoID(name string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte(name))
}

type demoUser struct {
	Name   string
	Email  string
	Skills []string
}

var demoUsers = []demoUser{
	{Name: "Alice Rivera", Email: "alice@example.com", Skills: []string{"Go", "PostgreSQL", "Docker"}},
	{Name: "Bima Santoso", Email: "bima@example.com", Skills: []string{"React", "TypeScript", "Figma"}},
	{Name: "Chen Wei", Email: "chen@example.com", Skills: []string{"SEO", "Copywriting", "Analytics"}},
	{Name: "Dana Kowalski", Email: "dana@example.com", Skills: []string{"Scrum", "Leadership"}},
}

type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "name", "email", "password_hash", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "user_skills", "user_id", "skill"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, u := range demoUsers {
			id := DemoID(u.Email)
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
				id, u.Name, u.Email, string(hash),
			); err != nil {
				return err
			}
			if err := database.InsertSkills(ctx, tx, "user_skills", "user_id", id, u.Skills); err != nil {
				return err
			}
		}

		return nil
	})
}
