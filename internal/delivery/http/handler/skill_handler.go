package handler

import (
	"skill-matcher/internal/delivery/http/dto"
	"skill-matcher/internal/delivery/http/middleware"
	"skill-matcher/internal/pkg/response"
	"skill-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/categorize", h.Categorize)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponses(items))
}

func (h *SkillHandler) Categorize(c fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Query parameter name is required", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillResponse{
		Name:     name,
		Category: string(h.uc.Categorize(name)),
	})
}
