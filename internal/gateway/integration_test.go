package gateway_test

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipoadvisor/internal/gateway"
	"ipoadvisor/internal/http/handler"
	"ipoadvisor/internal/model"
	"ipoadvisor/internal/session"
	"ipoadvisor/internal/storage"
)

// startStub serves the in-memory stub backend on a loopback port and returns a
// gateway client pointed at it.
func startStub(t *testing.T) *gateway.Client {
	t.Helper()
	app, err := handler.NewApp(handler.AppOptions{
		Services: handler.MemoryServices(storage.NewMemory("site"), handler.AdminAccount{
			Email: "admin@example.com", Password: "s3cret", TokenTTL: time.Hour,
		}),
		MaxUploadBytes: 1 << 20,
	})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	c, err := gateway.New("http://"+ln.Addr().String(), session.NewMemoryStore(), gateway.WithTimeout(5*time.Second))
	require.NoError(t, err)
	return c
}

func TestStubRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := startStub(t)

	assert.Equal(t, gateway.VerifyInvalid, c.VerifyStatus(ctx), "no session yet")

	_, err := c.Login(ctx, "admin@example.com", "wrong")
	require.ErrorIs(t, err, gateway.ErrUnauthorized)
	var loginErr *gateway.Error
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, "Invalid credentials", loginErr.Message)

	_, err = c.Login(ctx, "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.True(t, c.Verify(ctx))

	t.Run("blog create then public read", func(t *testing.T) {
		created, err := c.CreateBlogPost(ctx, model.BlogPostInput{
			Slug: "ipo-basics", Title: "IPO Basics", Content: "Body", Category: "Guides",
		})
		require.NoError(t, err)
		assert.Equal(t, model.DefaultBlogAuthor, created.Author)

		got, found, err := c.BlogBySlug(ctx, "ipo-basics")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, created, got)

		_, err = c.CreateBlogPost(ctx, model.BlogPostInput{Slug: "ipo-basics", Title: "Again", Content: "x", Category: "y"})
		require.ErrorIs(t, err, gateway.ErrServer)
		assert.Contains(t, err.Error(), "A post with this slug already exists")

		require.NoError(t, c.DeleteBlogPost(ctx, "ipo-basics"))
		_, found, err = c.BlogBySlug(ctx, "ipo-basics")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("application reaches the admin list", func(t *testing.T) {
		receipt, err := c.SubmitApplication(ctx, model.ApplicationRequest{
			Name: "Ravi", CompanyName: "RT Foods", AnnualTurnover: "10-50 Cr", MobileNumber: "9876543210",
		})
		require.NoError(t, err)
		assert.Equal(t, gateway.ApplicationReceivedMessage, receipt.Message)

		apps, err := c.ListApplications(ctx)
		require.NoError(t, err)
		require.Len(t, apps, 1)

		reviewing := model.ApplicationReviewing
		updated, err := c.UpdateApplication(ctx, apps[0].ID, model.ApplicationUpdate{Status: &reviewing})
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationReviewing, updated.Status)

		stats, err := c.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCount{Total: 1, Pending: 0}, stats.Applications)
	})

	t.Run("files", func(t *testing.T) {
		f, err := c.UploadFile(ctx, "annual report.pdf", strings.NewReader("%PDF"))
		require.NoError(t, err)
		assert.Equal(t, "annual report.pdf", f.Name)

		var buf bytes.Buffer
		require.NoError(t, c.DownloadFile(ctx, f.Name, &buf))
		assert.Equal(t, "%PDF", buf.String())

		require.NoError(t, c.DeleteFile(ctx, f.Name))

		err = c.DeleteFile(ctx, f.Name)
		require.ErrorIs(t, err, gateway.ErrNotFound)
		var gerr *gateway.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, 404, gerr.Status)
		assert.Equal(t, "File not found", gerr.Message)
	})

	require.NoError(t, c.Logout(ctx))
	assert.False(t, c.Verify(ctx))
}
