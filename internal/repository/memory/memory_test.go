package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/repository"
)

func TestContacts(t *testing.T) {
	ctx := context.Background()
	repo := NewContacts()

	require.NoError(t, repo.Create(ctx, model.Contact{ID: "b", Name: "Second"}))
	require.NoError(t, repo.Create(ctx, model.Contact{ID: "a", Name: "First"}))
	assert.ErrorIs(t, repo.Create(ctx, model.Contact{ID: "a"}), repository.ErrDuplicate)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "insertion order")

	list[0].Name = "mutated"
	got, err := repo.FindByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Name, "List returns a copy")

	got.Status = model.ContactContacted
	require.NoError(t, repo.Update(ctx, got))
	got, _ = repo.FindByID(ctx, "b")
	assert.Equal(t, model.ContactContacted, got.Status)

	assert.ErrorIs(t, repo.Update(ctx, model.Contact{ID: "zzz"}), repository.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, "b"))
	assert.ErrorIs(t, repo.Delete(ctx, "b"), repository.ErrNotFound)
	_, err = repo.FindByID(ctx, "b")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBlogPosts_Replace(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogPosts()
	require.NoError(t, repo.Create(ctx, model.BlogPost{Slug: "one", Title: "One"}))
	require.NoError(t, repo.Create(ctx, model.BlogPost{Slug: "two", Title: "Two"}))

	assert.ErrorIs(t, repo.Replace(ctx, "one", model.BlogPost{Slug: "two"}), repository.ErrDuplicate)
	assert.ErrorIs(t, repo.Replace(ctx, "nope", model.BlogPost{Slug: "nope"}), repository.ErrNotFound)

	require.NoError(t, repo.Replace(ctx, "one", model.BlogPost{Slug: "uno", Title: "Uno"}))
	list, _ := repo.List(ctx)
	assert.Equal(t, "uno", list[0].Slug, "position kept on rename")
	_, err := repo.FindBySlug(ctx, "one")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTokensAndFiles(t *testing.T) {
	ctx := context.Background()
	tokens := NewTokens()
	exp := time.Now().Add(time.Hour)
	require.NoError(t, tokens.Save(ctx, repository.Token{Value: "t1", Email: "a@b.c", ExpiresAt: exp}))
	got, err := tokens.Find(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got.Email)
	require.NoError(t, tokens.Delete(ctx, "t1"))

	files := NewFiles()
	require.NoError(t, files.Create(ctx, model.UploadedFile{Name: "a.png"}))
	assert.ErrorIs(t, files.Create(ctx, model.UploadedFile{Name: "a.png"}), repository.ErrDuplicate)
	_, err = files.FindByName(ctx, "a.png")
	assert.NoError(t, err)
}

func TestTokens_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tokens := NewTokens()
	for _, tok := range []repository.Token{
		{Value: "old", ExpiresAt: now.Add(-time.Hour)},
		{Value: "live", ExpiresAt: now.Add(time.Hour)},
		{Value: "edge", ExpiresAt: now},
		{Value: "older", ExpiresAt: now.Add(-48 * time.Hour)},
	} {
		require.NoError(t, tokens.Save(ctx, tok))
	}

	n, err := tokens.DeleteExpired(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = tokens.Find(ctx, "live")
	assert.NoError(t, err)
	for _, v := range []string{"old", "edge", "older"} {
		_, err = tokens.Find(ctx, v)
		assert.ErrorIs(t, err, repository.ErrNotFound, v)
	}

	n, err = tokens.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestApplications_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewApplications()
	require.NoError(t, repo.Create(ctx, model.Application{ID: "x", Status: model.ApplicationPending}))

	var wg sync.WaitGroup
	for _, s := range model.ApplicationStatuses {
		wg.Add(1)
		go func(s model.ApplicationStatus) {
			defer wg.Done()
			assert.NoError(t, repo.Update(ctx, model.Application{ID: "x", Status: s}))
		}(s)
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, "x")
	require.NoError(t, err)
	assert.True(t, got.Status.Valid())
}
