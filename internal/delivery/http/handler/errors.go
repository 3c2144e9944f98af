package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/domain"
	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/usecase"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/extract"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/llm"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/response"
	"github.com/sirupsen/logrus"
)

// sendGenerationError maps an AI pipeline failure onto the HTTP taxonomy.
// fallback gives unexpected errors their endpoint-specific message.
func sendGenerationError(ctx *fiber.Ctx, log *logrus.Logger, fallback string, err error) error {
	status, detail := classifyGenerationError(err, fallback)
	if log != nil && status >= fiber.StatusInternalServerError {
		log.Error(err)
	}
	return response.New(status, detail).Send(ctx)
}

func classifyGenerationError(err error, fallback string) (int, any) {
	var provErr *llm.Error
	if errors.As(err, &provErr) {
		switch provErr.Category {
		case llm.CategoryAuth:
			// Never echo provider auth details back to the caller
			return fiber.StatusUnauthorized, domain.AI_AUTH_FAILED
		case llm.CategoryRateLimited:
			return fiber.StatusTooManyRequests, domain.AI_RATE_LIMITED
		case llm.CategoryInvalid:
			return fiber.StatusBadRequest, fmt.Sprintf("%s: %s", domain.AI_INVALID_REQUEST, provErr.Message)
		default:
			return fiber.StatusBadGateway, fmt.Sprintf("%s: %s", domain.AI_SERVICE_ERROR, provErr.Kind)
		}
	}

	var parseErr *extract.ParseError
	if errors.As(err, &parseErr) {
		return fiber.StatusInternalServerError, fmt.Sprintf("%s: %s", domain.AI_PARSE_FAILED, parseErr.Error())
	}
	if errors.Is(err, extract.ErrNoObject) {
		return fiber.StatusInternalServerError, domain.AI_PARSE_FAILED
	}

	var missingErr *usecase.MissingKeysError
	if errors.As(err, &missingErr) {
		return fiber.StatusInternalServerError, missingErr.Error()
	}

	return fiber.StatusInternalServerError, fmt.Sprintf("%s: %s", fallback, err.Error())
}
