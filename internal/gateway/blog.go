package gateway

import (
	"context"
	"net/http"

	"ipoadvisor/internal/model"
)

// ListAdminBlogPosts returns every post, as the admin API sees them.
func (c *Client) ListAdminBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	var out []model.BlogPost
	err := c.do(ctx, request{
		method:   http.MethodGet,
		route:    "/api/admin/blog",
		path:     "/api/admin/blog",
		fallback: "Failed to fetch blog posts",
		auth:     true,
		out:      &out,
	})
	return out, err
}

// CreateBlogPost publishes a new post. The editor is responsible for the required fields
// and for deriving the slug.
func (c *Client) CreateBlogPost(ctx context.Context, in model.BlogPostInput) (model.BlogPost, error) {
	var out model.BlogPost
	err := c.do(ctx, request{
		method:   http.MethodPost,
		route:    "/api/admin/blog",
		path:     "/api/admin/blog",
		fallback: "Failed to create blog post",
		auth:     true,
		body:     in,
		out:      &out,
	})
	return out, err
}

// UpdateBlogPost replaces the post currently stored under slug. An empty in.Slug keeps
// the existing slug; a different one renames the post.
func (c *Client) UpdateBlogPost(ctx context.Context, slug string, in model.BlogPostInput) (model.BlogPost, error) {
	if in.Slug == "" {
		in.Slug = slug
	}
	var out model.BlogPost
	err := c.do(ctx, request{
		method:   http.MethodPut,
		route:    "/api/admin/blog/{slug}",
		path:     "/api/admin/blog/" + segment(slug),
		fallback: "Failed to update blog post",
		auth:     true,
		body:     in,
		out:      &out,
	})
	return out, err
}

// DeleteBlogPost removes the post stored under slug.
func (c *Client) DeleteBlogPost(ctx context.Context, slug string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		route:    "/api/admin/blog/{slug}",
		path:     "/api/admin/blog/" + segment(slug),
		fallback: "Failed to delete blog post",
		auth:     true,
		out:      &model.Message{},
	})
}
