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
	StoryHandler interface {
		Generate(ctx *fiber.Ctx) error
	}

	storyHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.StoryUsecase
	}
)

func NewStoryHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.StoryUsecase) StoryHandler {
	return &storyHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /api/story/generate
func (h *storyHandler) Generate(ctx *fiber.Ctx) error {
	var req entity.StoryRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewBadRequest(err, h.logger).Send(ctx)
	}

	h.logger.WithField("theme", req.Theme).Info("received story starter request")

	starters, err := h.usecase.GenerateStarters(ctx.UserContext(), req)
	if err != nil {
		return sendGenerationError(ctx, h.logger, domain.STORY_GENERATE_FAILED, err)
	}

	return ctx.JSON(starters)
}
