package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/domain"
)

type (
	HealthHandler interface {
		Check(ctx *fiber.Ctx) error
	}

	healthHandler struct{}
)

func NewHealthHandler() HealthHandler {
	return &healthHandler{}
}

// GET /health
func (h *healthHandler) Check(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":  domain.HEALTH_STATUS,
		"message": domain.HEALTH_MESSAGE,
	})
}
