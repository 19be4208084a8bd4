package gateway

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/validate"
)

// ApplicationReceivedMessage is shown once an application has been accepted.
const ApplicationReceivedMessage = "Your application has been received. Our team will contact you within 48 hours."

// SubmitContact sends the contact-page inquiry. name, company_name and mobile_number
// are checked before anything is sent; the backend's validation stays authoritative.
func (c *Client) SubmitContact(ctx context.Context, req model.ContactRequest) (model.Contact, error) {
	r := request{
		method:   http.MethodPost,
		route:    "/api/contact",
		path:     "/api/contact",
		fallback: "Failed to submit contact form",
		body:     req,
	}
	if err := validate.Struct(req); err != nil {
		return model.Contact{}, validationError(r.op(), err)
	}
	var out model.Contact
	r.out = &out
	err := c.do(ctx, r)
	return out, err
}

// SubmitApplication sends the homepage qualification form. All four fields are required.
func (c *Client) SubmitApplication(ctx context.Context, req model.ApplicationRequest) (model.ApplicationReceipt, error) {
	r := request{
		method:   http.MethodPost,
		route:    "/api/application",
		path:     "/api/application",
		fallback: "Failed to submit application",
		body:     req,
	}
	if err := validate.Struct(req); err != nil {
		return model.ApplicationReceipt{}, validationError(r.op(), err)
	}
	var out model.Application
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		return model.ApplicationReceipt{}, err
	}
	return model.ApplicationReceipt{Message: ApplicationReceivedMessage, Application: out}, nil
}

// BlogPosts lists published posts for the public site.
func (c *Client) BlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	var out []model.BlogPost
	err := c.do(ctx, request{
		method:   http.MethodGet,
		route:    "/api/blog",
		path:     "/api/blog",
		fallback: "Failed to fetch blog posts",
		out:      &out,
	})
	return out, err
}

// BlogBySlug fetches one post. A 404 is reported as found == false with a nil error,
// so callers can render "not found" instead of a failure.
func (c *Client) BlogBySlug(ctx context.Context, slug string) (model.BlogPost, bool, error) {
	if strings.TrimSpace(slug) == "" {
		return model.BlogPost{}, false, nil
	}
	var out model.BlogPost
	err := c.do(ctx, request{
		method:   http.MethodGet,
		route:    "/api/blog/{slug}",
		path:     "/api/blog/" + segment(slug),
		fallback: "Failed to fetch blog post",
		out:      &out,
	})
	if errors.Is(err, ErrNotFound) {
		return model.BlogPost{}, false, nil
	}
	if err != nil {
		return model.BlogPost{}, false, err
	}
	return out, true, nil
}
