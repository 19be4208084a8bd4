package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/service"
)

// AdminEmailLocalKey holds the email of the admin a bearer token was issued to.
const AdminEmailLocalKey = "admin_email"

// TokenVerifier resolves a bearer token to the admin email it belongs to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// BearerAuth rejects requests without a live admin token. A missing or malformed
// Authorization header gets 403 "Not authenticated", a rejected token 401. Any other
// verifier failure goes to the app's error handler.
func BearerAuth(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return c.Status(fiber.StatusForbidden).JSON(model.ErrorBody{Detail: "Not authenticated"})
		}
		email, err := v.Verify(c.UserContext(), token)
		if errors.Is(err, service.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorBody{Detail: "Invalid or expired token"})
		}
		if err != nil {
			return err
		}
		c.Locals(AdminEmailLocalKey, email)
		return c.Next()
	}
}
