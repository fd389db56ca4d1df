package v1

import (
	"skill-matcher/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything mounted under /api/v1.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Project     *handler.ProjectHandler
	Application *handler.ApplicationHandler
	Skill       *handler.SkillHandler
	Stats       *handler.StatsHandler

	RequireAuth   fiber.Handler
	AuthRateLimit fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		authGroup := r.Group("/auth")
		if h.AuthRateLimit != nil {
			authGroup.Use(h.AuthRateLimit)
		}
		h.Auth.RegisterRoutes(authGroup)
	}

	RegisterCatalog(r, h.Skill, h.Stats)

	RegisterUsers(h.protected(r, "/users"), h.User)
	RegisterProjects(h.protected(r, "/projects"), h.Project)
	RegisterApplications(h.protected(r, "/applications"), h.Application)
}

// protected mounts RequireAuth on prefix only, so unknown paths elsewhere
// under r still fall through to 404.
func (h Handlers) protected(r fiber.Router, prefix string) fiber.Router {
	if h.RequireAuth == nil {
		return r.Group(prefix)
	}
	return r.Group(prefix, h.RequireAuth)
}
