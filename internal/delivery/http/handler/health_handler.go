package handler

import (
	"context"
	"time"

	"skill-matcher/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything readiness depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
	// required checks fail readiness; the rest only report.
	required map[string]bool
	timeout  time.Duration
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checks:   map[string]Pinger{},
		required: map[string]bool{},
		timeout:  2 * time.Second,
	}
}

func (h *HealthHandler) WithCheck(name string, p Pinger, required bool) *HealthHandler {
	if p != nil {
		h.checks[name] = p
		h.required[name] = required
	}
	return h
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Live)
	r.Get("/health/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"status": "up"})
}

func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	ready := true
	out := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			out[name] = "down"
			if h.required[name] {
				ready = false
			}
			continue
		}
		out[name] = "up"
	}

	if !ready {
		return response.Error(c, fiber.StatusServiceUnavailable, "not ready", out)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
