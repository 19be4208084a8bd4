package console

import (
	"context"
	"fmt"

	"ipoadvisor/internal/model"
)

// ApplicationsTab lists qualification leads and moves them through the pipeline.
type ApplicationsTab struct {
	gw    ApplicationsGateway
	items []model.Application
}

func NewApplicationsTab(gw ApplicationsGateway) *ApplicationsTab {
	return &ApplicationsTab{gw: gw}
}

func (t *ApplicationsTab) Refresh(ctx context.Context) error {
	items, err := t.gw.ListApplications(ctx)
	if err != nil {
		return err
	}
	t.items = items
	return nil
}

func (t *ApplicationsTab) Items() []model.Application { return t.items }

// Filter matches term against name, company and mobile number.
func (t *ApplicationsTab) Filter(term, status string) []model.Application {
	out := make([]model.Application, 0, len(t.items))
	for _, a := range t.items {
		if !matchesStatus(status, string(a.Status)) {
			continue
		}
		if containsFold(term, a.Name, a.CompanyName, a.MobileNumber) {
			out = append(out, a)
		}
	}
	return out
}

// SetStatus updates one application's status, then refetches.
func (t *ApplicationsTab) SetStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	if _, err := t.gw.UpdateApplication(ctx, id, model.ApplicationUpdate{Status: &status}); err != nil {
		return err
	}
	return t.Refresh(ctx)
}

func (t *ApplicationsTab) Delete(ctx context.Context, id string) error {
	if err := t.gw.DeleteApplication(ctx, id); err != nil {
		return err
	}
	return t.Refresh(ctx)
}
