package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ipoadvisor/internal/http/middleware"
	"ipoadvisor/internal/model"
	"ipoadvisor/internal/validate"
)

var errFileRequired = &validate.Error{Fields: []string{"file"}}

// fieldError is one entry of a 422 detail list.
type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// validationBody is the 422 envelope.
type validationBody struct {
	Detail []fieldError `json:"detail"`
}

// writeError writes {"detail": detail}, the only error envelope the admin client parses.
func writeError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(model.ErrorBody{Detail: detail})
}

// writeValidation reports missing body fields as a 422 list, one entry per field.
func writeValidation(c *fiber.Ctx, err error) error {
	var verr *validate.Error
	if !errors.As(err, &verr) {
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	detail := make([]fieldError, len(verr.Fields))
	for i, f := range verr.Fields {
		detail[i] = fieldError{Loc: []string{"body", f}, Msg: "field required", Type: "value_error.missing"}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(validationBody{Detail: detail})
}

// bindBody decodes and validates a JSON body. It writes the error response itself and
// reports whether the handler should continue.
func bindBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, writeError(c, fiber.StatusUnprocessableEntity, "Invalid request body")
	}
	return validated(c, out)
}

func validated(c *fiber.Ctx, v any) (bool, error) {
	if err := validate.Struct(v); err != nil {
		return false, writeValidation(c, err)
	}
	return true, nil
}

// ErrorHandler renders errors that escaped the handlers, logging the 5xx ones with
// the request id.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return writeError(c, fe.Code, "Not Found")
			case fiber.StatusMethodNotAllowed:
				return writeError(c, fe.Code, "Method Not Allowed")
			case fiber.StatusRequestEntityTooLarge:
				return writeError(c, fe.Code, "File too large")
			}
			if fe.Code < fiber.StatusInternalServerError {
				return writeError(c, fe.Code, fe.Message)
			}
		}
		logger.Error("unhandled_error",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return writeError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}
