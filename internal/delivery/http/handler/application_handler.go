package handler

import (
	"strings"

	"skill-matcher/internal/delivery/http/dto"
	"skill-matcher/internal/delivery/http/middleware"
	"skill-matcher/internal/domain/project"
	"skill-matcher/internal/pkg/response"
	"skill-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type updateApplicationStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Delete("/:id", h.Withdraw)
	r.Put("/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Withdraw(c.Context(), userID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application withdrawn", nil)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	status := project.ApplicationStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if status != project.StatusAccepted && status != project.StatusRejected {
		return middleware.NewAppError(fiber.StatusBadRequest, "Status must be accepted or rejected", nil, nil)
	}

	a, err := h.uc.Review(c.Context(), userID, id, status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application "+string(a.Status), dto.NewApplicationResponse(a))
}
