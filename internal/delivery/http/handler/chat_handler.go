package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/domain"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/entity"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/usecase"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/response"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
)

type (
	ChatHandler interface {
		Chat(ctx *fiber.Ctx) error
	}

	chatHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ChatUsecase
	}
)

func NewChatHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ChatUsecase) ChatHandler {
	return &chatHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /api/tutoring/chat
func (h *chatHandler) Chat(ctx *fiber.Ctx) error {
	var req entity.ChatRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewBadRequest(err, h.logger).Send(ctx)
	}

	reply, err := h.usecase.Chat(ctx.UserContext(), req)
	if err != nil {
		return sendGenerationError(ctx, h.logger, domain.CHAT_FAILED, err)
	}

	return ctx.JSON(reply)
}
