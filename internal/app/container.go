package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skill-matcher/internal/config"
	"skill-matcher/internal/database"
	"skill-matcher/internal/database/migration"
	dbpostgres "skill-matcher/internal/database/postgres"
	"skill-matcher/internal/database/seeder"
	"skill-matcher/internal/domain/skill"
	"skill-matcher/internal/infrastructure/cache"
	"skill-matcher/internal/infrastructure/persistence/postgres"
	"skill-matcher/internal/pkg/jwt"
	"skill-matcher/internal/repository"
	"skill-matcher/internal/usecase"
	ucauth "skill-matcher/internal/usecase/auth"
	ucuser "skill-matcher/internal/usecase/user"
	"skill-matcher/internal/ws"

	"github.com/sirupsen/logrus"
)

// Container holds the long-lived dependencies of the server.
type Container struct {
	Config config.Config
	Logger *logrus.Logger
	DB     database.DB
	Redis  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Auth         usecase.AuthUsecase
	Users        usecase.UserUsecase
	Projects     usecase.ProjectUsecase
	Applications usecase.ApplicationUsecase
	Skills       usecase.SkillUsecase
	Stats        usecase.StatsUsecase
}

func NewContainer(cfg config.Config, log *logrus.Logger) (*Container, error) {
	taxonomy := skill.DefaultTaxonomy()
	if cfg.Skills.TaxonomyPath != "" {
		t, err := skill.LoadTaxonomy(cfg.Skills.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("load skill taxonomy: %w", err)
		}
		taxonomy = t
		log.WithField("path", cfg.Skills.TaxonomyPath).Info("skill taxonomy loaded")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := prepareDatabase(ctx, cfg.Database, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	return Assemble(cfg, log, db, cache.NewRedis(cfg.Redis, log), skill.NewCategorizer(taxonomy)), nil
}

// Assemble wires usecases over an already prepared database and starts the ws hub.
func Assemble(cfg config.Config, log *logrus.Logger, db database.DB, sessions *cache.Redis, categorizer *skill.Categorizer) *Container {
	hub := ws.NewHub(log)
	go hub.Run()

	c := &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  sessions,
		Hub:    hub,
	}
	c.wire(categorizer)
	return c
}

func prepareDatabase(ctx context.Context, cfg config.DatabaseConfig, db database.DB, log *logrus.Logger) error {
	if cfg.RunMigrations {
		sqlDB := db.SQLDB()
		if sqlDB == nil {
			return errors.New("migrations need a database/sql handle")
		}
		runner := migration.Runner{Logger: log}
		if err := runner.Run(ctx, sqlDB); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		version, err := runner.Version(ctx, sqlDB)
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		log.WithField("version", version).Info("database schema ready")
	}

	if cfg.RunSeeders {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			return fmt.Errorf("run seeders: %w", err)
		}
		log.Info("demo data seeded")
	}
	return nil
}

func (c *Container) wire(categorizer *skill.Categorizer) {
	cfg := c.Config

	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	users := postgres.NewUserRepository(c.DB)
	userSkills := repository.NewPostgresUserSkillRepository(c.DB)
	projects := repository.NewPostgresProjectRepository(c.DB)
	team := repository.NewPostgresTeamRepository(c.DB)
	applications := repository.NewPostgresApplicationRepository(c.DB)
	events := ws.NewNotifier(c.Hub)

	c.Auth = usecase.NewAuthUsecase(ucauth.NewService(users), users, c.JWT, c.Redis, cfg.JWT.RefreshExpiresIn, c.Logger)
	c.Users = usecase.NewUserUsecase(ucuser.NewService(users, userSkills, categorizer), applications, projects)
	c.Projects = usecase.NewProjectUsecase(projects, team, applications, userSkills, categorizer, events)
	c.Applications = usecase.NewApplicationUsecase(applications, projects, events)
	c.Skills = usecase.NewSkillUsecase(repository.NewPostgresSkillRepository(c.DB), categorizer)
	c.Stats = usecase.NewStatsUsecase(repository.NewPostgresStatsRepository(c.DB))
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	c.Hub.Stop()

	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
