package app

import (
	"fmt"
	"strings"

	"skill-matcher/internal/config"
	"skill-matcher/internal/delivery/http/handler"
	"skill-matcher/internal/delivery/http/middleware"
	"skill-matcher/internal/delivery/http/routes"
	v1 "skill-matcher/internal/delivery/http/routes/v1"
	"skill-matcher/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, log *logrus.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, log *logrus.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler().
		WithCheck("database", c.DB, true).
		WithCheck("redis", c.Redis, false)

	rl := c.Config.RateLimit
	api := v1.Handlers{
		Auth:          handler.NewAuthHandler(c.Auth),
		User:          handler.NewUserHandler(c.Users),
		Project:       handler.NewProjectHandler(c.Projects),
		Application:   handler.NewApplicationHandler(c.Applications),
		Skill:         handler.NewSkillHandler(c.Skills),
		Stats:         handler.NewStatsHandler(c.Stats),
		RequireAuth:   middleware.NewAuthMiddleware(c.JWT).Middleware(),
		AuthRateLimit: middleware.NewRateLimitMiddleware(rl.AuthLimit, rl.AuthPeriod).Middleware(),
	}

	routes.NewRegistry(health, ws.NewHandler(c.Hub, c.Logger), api).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
