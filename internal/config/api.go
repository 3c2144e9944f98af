package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/response"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func NewAPI(config *viper.Viper, log *logrus.Logger) *fiber.App {
	api := fiber.New(fiber.Config{
		AppName:      config.GetString("app.name"),
		ErrorHandler: ErrorHandler(log),
		Prefork:      config.GetBool("api.prefork"),
	})
	return api
}

// ErrorHandler is the outer boundary: anything that escapes a handler is
// converted to a typed HTTP failure instead of propagating.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if fieldsErr, ok := err.(*validate.FieldsError); ok {
			return response.New(fiber.StatusBadRequest, fieldsErr.Fields).Send(ctx)
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error(err)
			return response.NewInternalServerError().Send(ctx)
		}

		return response.New(code, err.Error()).Send(ctx)
	}
}
