package gateway

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/session"
)

// VerifyResult is the outcome of a session check. Only VerifyValid means authenticated.
type VerifyResult uint8

const (
	// VerifyInvalid: no token, or the backend rejected it.
	VerifyInvalid VerifyResult = iota
	// VerifyValid: the backend accepted the token.
	VerifyValid
	// VerifyUnavailable: the backend could not be reached.
	VerifyUnavailable
)

func (v VerifyResult) String() string {
	switch v {
	case VerifyValid:
		return "valid"
	case VerifyUnavailable:
		return "unavailable"
	default:
		return "invalid"
	}
}

// Login exchanges admin credentials for a bearer token and stores it.
// Callers check that both values are non-empty. On failure the stored session is left untouched.
func (c *Client) Login(ctx context.Context, email, password string) (model.LoginResponse, error) {
	var out model.LoginResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		route:    "/api/admin/login",
		path:     "/api/admin/login",
		fallback: "Login failed",
		body:     model.LoginRequest{Email: email, Password: password},
		out:      &out,
	})
	if err != nil {
		return model.LoginResponse{}, err
	}
	if out.Email == "" {
		out.Email = email
	}
	if err := c.tokens.Save(ctx, session.Session{Token: out.Token, Email: out.Email}); err != nil {
		return model.LoginResponse{}, err
	}
	c.logger.Info("admin logged in", zap.String("email", out.Email))
	return out, nil
}

// VerifyStatus checks the stored token against the backend. Without a stored token it
// returns VerifyInvalid without any request. Failures never escalate to VerifyValid.
func (c *Client) VerifyStatus(ctx context.Context) VerifyResult {
	if _, err := c.tokens.Load(ctx); err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			c.logger.Warn("session store unreadable, treating as logged out", zap.Error(err))
		}
		return VerifyInvalid
	}

	var out model.VerifyResponse
	err := c.do(ctx, request{
		method:   http.MethodGet,
		route:    "/api/admin/verify",
		path:     "/api/admin/verify",
		fallback: "Session check failed",
		auth:     true,
		out:      &out,
	})
	switch {
	case err == nil && out.Valid:
		return VerifyValid
	case errors.Is(err, ErrNetwork):
		return VerifyUnavailable
	default:
		return VerifyInvalid
	}
}

// Verify reports whether the stored session is accepted by the backend. It never fails;
// route guards call it unconditionally.
func (c *Client) Verify(ctx context.Context) bool {
	return c.VerifyStatus(ctx) == VerifyValid
}

// Logout forgets the stored session. There is no server-side invalidation call.
func (c *Client) Logout(ctx context.Context) error {
	return c.tokens.Clear(ctx)
}

// Session returns the locally stored session without contacting the backend.
func (c *Client) Session(ctx context.Context) (session.Session, error) {
	return c.tokens.Load(ctx)
}
