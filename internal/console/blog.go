package console

import (
	"context"
	"errors"

	"ipoadvisor/internal/gateway"
	"ipoadvisor/internal/model"
	"ipoadvisor/internal/slug"
	"ipoadvisor/internal/validate"
)

// ErrNoDraft is returned by Submit when no editor is open.
var ErrNoDraft = errors.New("no post is being edited")

// Draft is the state of the post editor.
type Draft struct {
	Input model.BlogPostInput
	// Original is the slug the post is stored under; empty while creating.
	Original string
	// slugTouched stops title edits from overwriting a slug typed by hand.
	slugTouched bool
}

// Editing reports whether the draft updates an existing post.
func (d *Draft) Editing() bool { return d.Original != "" }

// BlogTab lists posts and owns the single open editor.
type BlogTab struct {
	gw    BlogGateway
	items []model.BlogPost
	draft *Draft
}

func NewBlogTab(gw BlogGateway) *BlogTab {
	return &BlogTab{gw: gw}
}

func (t *BlogTab) Refresh(ctx context.Context) error {
	items, err := t.gw.ListAdminBlogPosts(ctx)
	if err != nil {
		return err
	}
	t.items = items
	return nil
}

func (t *BlogTab) Items() []model.BlogPost { return t.items }

// NewDraft opens an empty editor prefilled with the backend's author and read time.
func (t *BlogTab) NewDraft() *Draft {
	t.draft = &Draft{Input: model.BlogPostInput{
		Author:   model.DefaultBlogAuthor,
		ReadTime: model.DefaultBlogReadTime,
	}}
	return t.draft
}

// Edit opens the editor on an existing post.
func (t *BlogTab) Edit(post model.BlogPost) *Draft {
	t.draft = &Draft{Input: post.Input(), Original: post.Slug, slugTouched: true}
	return t.draft
}

// Draft returns the open editor, or nil.
func (t *BlogTab) Draft() *Draft { return t.draft }

// Cancel closes the editor without saving.
func (t *BlogTab) Cancel() { t.draft = nil }

// SetTitle sets the title. While creating, the slug follows the title until it is
// set by hand.
func (d *Draft) SetTitle(title string) {
	d.Input.Title = title
	if !d.slugTouched {
		d.Input.Slug = slug.Derive(title)
	}
}

// SetSlug overrides the derived slug. Clearing it re-enables derivation on new posts.
func (d *Draft) SetSlug(s string) {
	d.Input.Slug = s
	d.slugTouched = s != "" || d.Editing()
}

// Submit checks the required fields, then creates the post or updates it under its
// original slug. The editor closes and the list is refetched only on success.
func (t *BlogTab) Submit(ctx context.Context) (model.BlogPost, error) {
	if t.draft == nil {
		return model.BlogPost{}, ErrNoDraft
	}
	if err := validate.Struct(t.draft.Input); err != nil {
		op := "POST /api/admin/blog"
		if t.draft.Editing() {
			op = "PUT /api/admin/blog/{slug}"
		}
		return model.BlogPost{}, &gateway.Error{Kind: gateway.KindValidation, Op: op, Message: "Please fill in all required fields", Err: err}
	}

	var (
		post model.BlogPost
		err  error
	)
	if t.draft.Editing() {
		post, err = t.gw.UpdateBlogPost(ctx, t.draft.Original, t.draft.Input)
	} else {
		post, err = t.gw.CreateBlogPost(ctx, t.draft.Input)
	}
	if err != nil {
		return model.BlogPost{}, err
	}
	t.draft = nil
	return post, t.Refresh(ctx)
}

func (t *BlogTab) Delete(ctx context.Context, slug string) error {
	if err := t.gw.DeleteBlogPost(ctx, slug); err != nil {
		return err
	}
	return t.Refresh(ctx)
}
