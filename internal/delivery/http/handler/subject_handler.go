package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/domain"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/usecase"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/response"
	"github.com/sirupsen/logrus"
)

type (
	SubjectHandler interface {
		List(ctx *fiber.Ctx) error
		Topics(ctx *fiber.Ctx) error
	}

	subjectHandler struct {
		logger  *logrus.Logger
		usecase usecase.SubjectUsecase
	}
)

func NewSubjectHandler(logger *logrus.Logger, usecase usecase.SubjectUsecase) SubjectHandler {
	return &subjectHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /api/subjects
func (h *subjectHandler) List(ctx *fiber.Ctx) error {
	return ctx.JSON(h.usecase.List(ctx.UserContext()))
}

// GET /api/subjects/:subject_id/topics
func (h *subjectHandler) Topics(ctx *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(ctx.Params("subject_id"))
	if err != nil {
		return response.New(fiber.StatusBadRequest, "subject_id must be an integer").Send(ctx)
	}

	topics, err := h.usecase.Topics(ctx.UserContext(), subjectID)
	if err != nil {
		if errors.Is(err, usecase.ErrSubjectNotFound) {
			return response.New(fiber.StatusNotFound, domain.SUBJECT_NOT_FOUND).Send(ctx)
		}
		h.logger.Error(err)
		return response.NewInternalServerError().Send(ctx)
	}

	return ctx.JSON(topics)
}
