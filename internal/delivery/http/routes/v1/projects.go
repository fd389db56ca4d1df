package v1

import (
	"skill-matcher/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterProjects(r fiber.Router, projectHandler *handler.ProjectHandler) {
	if r == nil || projectHandler == nil {
		return
	}
	projectHandler.RegisterRoutes(r)
}

func RegisterApplications(r fiber.Router, applicationHandler *handler.ApplicationHandler) {
	if r == nil || applicationHandler == nil {
		return
	}
	applicationHandler.RegisterRoutes(r)
}

// RegisterCatalog mounts the public read-only endpoints.
func RegisterCatalog(r fiber.Router, skillHandler *handler.SkillHandler, statsHandler *handler.StatsHandler) {
	if r == nil {
		return
	}
	if skillHandler != nil {
		skillHandler.RegisterRoutes(r.Group("/skills"))
	}
	if statsHandler != nil {
		statsHandler.RegisterRoutes(r.Group("/stats"))
	}
}
