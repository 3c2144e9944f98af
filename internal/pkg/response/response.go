package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
)

// Response is the error body shape. Success responses are the bare typed
// entities, so only failures go through here.
type Response struct {
	StatusCode int `json:"-"`
	Detail     any `json:"detail"`
}

func New(statusCode int, detail any) *Response {
	return &Response{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

func NewInternalServerError() *Response {
	return New(fiber.StatusInternalServerError, "Internal Server Error")
}

// NewBadRequest keeps the per-field map from the validator when there is
// one, otherwise the plain error message.
func NewBadRequest(err error, logger *logrus.Logger) *Response {
	if fieldsErr, ok := err.(*validate.FieldsError); ok {
		return New(fiber.StatusBadRequest, fieldsErr.Fields)
	}

	if logger != nil {
		logger.Warnf("bad request: %v", err)
	}
	return New(fiber.StatusBadRequest, err.Error())
}

func (r *Response) Send(ctx *fiber.Ctx) error {
	return ctx.Status(r.StatusCode).JSON(r)
}
