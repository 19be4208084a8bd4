package console

import (
	"context"

	"go.uber.org/zap"

	"ipoadvisor/internal/gateway"
	"ipoadvisor/internal/model"
)

// Dashboard is the admin shell: it guards entry and loads the overview.
type Dashboard struct {
	gw     SessionGateway
	logger *zap.Logger
}

func NewDashboard(gw SessionGateway, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{gw: gw, logger: logger}
}

// Guard admits the caller only with a session the backend accepts. A rejected
// session is cleared so the next run starts at login. An unreachable backend keeps
// the session and still refuses entry.
func (d *Dashboard) Guard(ctx context.Context) error {
	switch d.gw.VerifyStatus(ctx) {
	case gateway.VerifyValid:
		return nil
	case gateway.VerifyUnavailable:
		return &gateway.Error{Kind: gateway.KindNetwork, Op: "GET /api/admin/verify", Message: "Backend unavailable, please try again"}
	default:
		if err := d.gw.Logout(ctx); err != nil {
			d.logger.Warn("failed to clear rejected session", zap.Error(err))
		}
		return &gateway.Error{Kind: gateway.KindUnauthorized, Op: "GET /api/admin/verify", Message: "Please log in"}
	}
}

// Stats loads the overview counts.
func (d *Dashboard) Stats(ctx context.Context) (model.Stats, error) {
	return d.gw.Stats(ctx)
}

// Logout ends the session locally.
func (d *Dashboard) Logout(ctx context.Context) error {
	return d.gw.Logout(ctx)
}
