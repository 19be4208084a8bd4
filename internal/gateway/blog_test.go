package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipoadvisor/internal/model"
)

func TestCreateBlogPost(t *testing.T) {
	c, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/blog", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "sme-ipo-checklist", raw["slug"])
		assert.NotContains(t, raw, "author", "empty author is left to the backend default")
		assert.NotContains(t, raw, "read_time")

		writeJSON(w, http.StatusOK, `{"id":"b1","slug":"sme-ipo-checklist","title":"SME IPO Checklist",
			"author":"`+model.DefaultBlogAuthor+`","read_time":"`+model.DefaultBlogReadTime+`"}`)
	})
	loggedIn(t, store)

	post, err := c.CreateBlogPost(context.Background(), model.BlogPostInput{
		Slug:     "sme-ipo-checklist",
		Title:    "SME IPO Checklist",
		Content:  "Step one...",
		Category: "Guides",
	})

	require.NoError(t, err)
	assert.Equal(t, model.DefaultBlogAuthor, post.Author)
	assert.Equal(t, model.DefaultBlogReadTime, post.ReadTime)
}

func TestCreateBlogPost_DuplicateSlug(t *testing.T) {
	c, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"detail":"A post with this slug already exists"}`)
	})
	loggedIn(t, store)

	_, err := c.CreateBlogPost(context.Background(), model.BlogPostInput{Slug: "x", Title: "X", Content: "c", Category: "k"})

	assert.ErrorIs(t, err, ErrServer)
	assert.EqualError(t, err, "A post with this slug already exists")
}

func TestUpdateBlogPost(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		inSlug   string
		wantPath string
		wantSlug string
	}{
		{"keeps slug when input slug empty", "old-slug", "", "/api/admin/blog/old-slug", "old-slug"},
		{"renames under original address", "old-slug", "new-slug", "/api/admin/blog/old-slug", "new-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				var in model.BlogPostInput
				require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
				assert.Equal(t, tt.wantSlug, in.Slug)
				writeJSON(w, http.StatusOK, `{"slug":"`+in.Slug+`","title":"`+in.Title+`"}`)
			})
			loggedIn(t, store)

			post, err := c.UpdateBlogPost(context.Background(), tt.slug, model.BlogPostInput{
				Slug: tt.inSlug, Title: "T", Content: "C", Category: "K",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, post.Slug)
		})
	}
}

func TestListAdminBlogPosts(t *testing.T) {
	c, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"slug":"b","title":"B"},{"slug":"a","title":"A"}]`)
	})
	loggedIn(t, store)

	posts, err := c.ListAdminBlogPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "b", posts[0].Slug)
}
