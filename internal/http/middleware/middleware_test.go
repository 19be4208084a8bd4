package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/service"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(RequestIDFrom(c))
	})

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{"generated when missing", "", false},
		{"caller id preserved", "cli-1234", true},
		{"oversized id replaced", strings.Repeat("x", 200), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			got := resp.Header.Get(RequestIDHeader)
			body, _ := io.ReadAll(resp.Body)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, string(body), "locals and header agree")
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusAccepted) })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.NotEmpty(t, first["request_id"])
	assert.Equal(t, "GET", first["method"])
	assert.Equal(t, "/ok", first["path"])
	assert.EqualValues(t, fiber.StatusAccepted, first["status"])
	assert.Equal(t, "http", first["component"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.EqualValues(t, fiber.StatusInternalServerError, entries[2].ContextMap()["status"])
}

type verifierFunc func(ctx context.Context, token string) (string, error)

func (f verifierFunc) Verify(ctx context.Context, token string) (string, error) { return f(ctx, token) }

func TestBearerAuth(t *testing.T) {
	verifier := verifierFunc(func(_ context.Context, token string) (string, error) {
		switch token {
		case "good":
			return "admin@example.com", nil
		case "broken":
			return "", errors.New("token store down")
		default:
			return "", service.ErrInvalidToken
		}
	})

	app := fiber.New()
	app.Use(BearerAuth(verifier))
	app.Get("/api/admin/verify", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(AdminEmailLocalKey).(string))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantDetail string
		wantBody   string
	}{
		{"no header", "", fiber.StatusForbidden, "Not authenticated", ""},
		{"wrong scheme", "Basic abc", fiber.StatusForbidden, "Not authenticated", ""},
		{"empty token", "Bearer ", fiber.StatusForbidden, "Not authenticated", ""},
		{"unknown token", "Bearer forged", fiber.StatusUnauthorized, "Invalid or expired token", ""},
		{"verifier failure", "Bearer broken", fiber.StatusInternalServerError, "", ""},
		{"valid", "Bearer good", fiber.StatusOK, "", "admin@example.com"},
		{"scheme is case-insensitive", "bearer good", fiber.StatusOK, "", "admin@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/admin/verify", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			if tt.wantDetail != "" {
				var eb model.ErrorBody
				require.NoError(t, json.Unmarshal(body, &eb))
				assert.Equal(t, tt.wantDetail, eb.Detail)
			}
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}
