package seeder

import (
	"context"

	"skill-matcher/internal/database"
)

type demoProject struct {
	Name        string
	Description string
	TeamSize    int
	OwnerEmail  string
	Skills      []string
}

var demoProjects = []demoProject{
	{
		Name:        "Campus Marketplace",
		Description: "A web app for students to trade used books and gear.",
		TeamSize:    4,
		OwnerEmail:  "alice@example.com",
		Skills:      []string{"Go", "React", "UI Design"},
	},
	{
		Name:        "Local Cafe Rebrand",
		Description: "Visual identity and social media launch for a neighbourhood cafe.",
		TeamSize:    3,
		OwnerEmail:  "bima@example.com",
		Skills:      []string{"Figma", "Social Media", "Copywriting"},
	},
	{
		Name:        "Volunteer Scheduler",
		Description: "Shift planning tool for a food bank.",
		TeamSize:    5,
		OwnerEmail:  "dana@example.com",
		Skills:      []string{"Python", "Agile", "PostgreSQL"},
	},
}

type DemoProjectsSeeder struct{}

func (DemoProjectsSeeder) Name() string { return "demo_projects" }

func (DemoProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects", "id", "name", "description", "team_size", "owner_id", "created_at"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, p := range demoProjects {
			id := DemoID("project:" + p.Name)
			owner := DemoID(p.OwnerEmail)

			affected, err := tx.Exec(
				ctx,
				`INSERT INTO projects (id, name, description, team_size, owner_id)
				 SELECT $1, $2, $3, $4, $5 WHERE EXISTS (SELECT 1 FROM users WHERE id = $5)
				 ON CONFLICT (id) DO NOTHING`,
				id, p.Name, p.Description, p.TeamSize, owner,
			)
			if err != nil {
				return err
			}
			if affected == 0 {
				continue
			}

			if err := database.InsertSkills(ctx, tx, "project_skills", "project_id", id, p.Skills); err != nil {
				return err
			}
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO project_team (project_id, user_id) VALUES ($1, $2) ON CONFLICT (project_id, user_id) DO NOTHING`,
				id, owner,
			); err != nil {
				return err
			}
		}

		return nil
	})
}
