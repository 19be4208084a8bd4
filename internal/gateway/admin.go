package gateway

import (
	"context"
	"net/http"

	"ipoadvisor/internal/model"
)

// Stats fetches the dashboard overview.
func (c *Client) Stats(ctx context.Context) (model.Stats, error) {
	var out model.Stats
	err := c.do(ctx, request{
		method:   http.MethodGet,
		route:    "/api/admin/stats",
		path:     "/api/admin/stats",
		fallback: "Failed to fetch stats",
		auth:     true,
		out:      &out,
	})
	return out, err
}

// ListApplications returns applications in the order the backend delivers them.
func (c *Client) ListApplications(ctx context.Context) ([]model.Application, error) {
	var out []model.Application
	err := c.do(ctx, request{
		method:   http.MethodGet,
		route:    "/api/admin/applications",
		path:     "/api/admin/applications",
		fallback: "Failed to fetch applications",
		auth:     true,
		out:      &out,
	})
	return out, err
}

// UpdateApplication sends only the fields set on upd; the backend merges.
func (c *Client) UpdateApplication(ctx context.Context, id string, upd model.ApplicationUpdate) (model.Application, error) {
	var out model.Application
	err := c.do(ctx, request{
		method:   http.MethodPut,
		route:    "/api/admin/applications/{id}",
		path:     "/api/admin/applications/" + segment(id),
		fallback: "Failed to update application",
		auth:     true,
		body:     upd,
		out:      &out,
	})
	return out, err
}

// DeleteApplication removes an application. Confirmation is the caller's job.
func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		route:    "/api/admin/applications/{id}",
		path:     "/api/admin/applications/" + segment(id),
		fallback: "Failed to delete application",
		auth:     true,
		out:      &model.Message{},
	})
}

// ListContacts returns contacts in the order the backend delivers them.
func (c *Client) ListContacts(ctx context.Context) ([]model.Contact, error) {
	var out []model.Contact
	err := c.do(ctx, request{
		method:   http.MethodGet,
		route:    "/api/admin/contacts",
		path:     "/api/admin/contacts",
		fallback: "Failed to fetch contacts",
		auth:     true,
		out:      &out,
	})
	return out, err
}

// UpdateContact sends only the fields set on upd; the backend merges.
func (c *Client) UpdateContact(ctx context.Context, id string, upd model.ContactUpdate) (model.Contact, error) {
	var out model.Contact
	err := c.do(ctx, request{
		method:   http.MethodPut,
		route:    "/api/admin/contacts/{id}",
		path:     "/api/admin/contacts/" + segment(id),
		fallback: "Failed to update contact",
		auth:     true,
		body:     upd,
		out:      &out,
	})
	return out, err
}

// DeleteContact removes a contact.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		route:    "/api/admin/contacts/{id}",
		path:     "/api/admin/contacts/" + segment(id),
		fallback: "Failed to delete contact",
		auth:     true,
		out:      &model.Message{},
	})
}
