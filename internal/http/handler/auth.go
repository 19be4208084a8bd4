package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ipoadvisor/internal/http/middleware"
	"ipoadvisor/internal/model"
	"ipoadvisor/internal/service"
)

// Login exchanges admin credentials for a bearer token.
//
// @Summary  Admin login
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body     model.LoginRequest true "Admin credentials"
// @Success  200  {object} model.LoginResponse
// @Failure  401  {object} model.ErrorBody
// @Failure  422  {object} validationBody
// @Router   /api/admin/login [post]
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.LoginRequest
		if ok, err := bindBody(c, &req); !ok {
			return err
		}
		resp, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			return writeError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}
}

// Verify runs behind BearerAuth, so reaching it means the token is live.
//
// @Summary   Verify the admin token
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} model.VerifyResponse
// @Failure   401 {object} model.ErrorBody
// @Failure   403 {object} model.ErrorBody
// @Router    /api/admin/verify [get]
func Verify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals(middleware.AdminEmailLocalKey).(string)
		return c.JSON(model.VerifyResponse{Valid: true, Email: email})
	}
}

// @Summary   Dashboard counts and recent leads
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} model.Stats
// @Failure   401 {object} model.ErrorBody
// @Router    /api/admin/stats [get]
func GetStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}
}
