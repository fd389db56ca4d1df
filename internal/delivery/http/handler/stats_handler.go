package handler

import (
	"skill-matcher/internal/delivery/http/dto"
	"skill-matcher/internal/pkg/response"
	"skill-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc usecase.StatsUsecase
}

func NewStatsHandler(uc usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Get)
}

func (h *StatsHandler) Get(c fiber.Ctx) error {
	s, err := h.uc.Stats(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StatsResponse{
		ProjectCount: s.ProjectCount,
		UserCount:    s.UserCount,
		MatchCount:   s.MatchCount,
	})
}
