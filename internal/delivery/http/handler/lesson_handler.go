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
	LessonHandler interface {
		Generate(ctx *fiber.Ctx) error
	}

	lessonHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.TutorUsecase
	}
)

func NewLessonHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.TutorUsecase) LessonHandler {
	return &lessonHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /generate-lesson
func (h *lessonHandler) Generate(ctx *fiber.Ctx) error {
	var req entity.LessonRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewBadRequest(err, h.logger).Send(ctx)
	}

	h.logger.WithField("topic", req.CurrentTopic).Info("received lesson generation request")

	lesson, err := h.usecase.GenerateLesson(ctx.UserContext(), req)
	if err != nil {
		return sendGenerationError(ctx, h.logger, domain.LESSON_GENERATE_FAILED, err)
	}

	return ctx.JSON(lesson)
}
