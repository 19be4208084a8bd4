package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipoadvisor/internal/config"
)

func TestMemory_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("site")
	m.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	info, err := m.Put(ctx, "uploads/logo.png", strings.NewReader("png-bytes"), PutObjectOptions{
		Size:        9,
		ContentType: "image/png",
		Metadata:    map[string]string{"original-filename": "logo.png"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 9, info.Size)
	assert.NotEmpty(t, info.ETag)

	rc, got, err := m.Get(ctx, "uploads/logo.png")
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", got.ContentType)
	assert.Equal(t, "logo.png", got.Metadata["original-filename"])

	link, err := m.PresignGet(ctx, "uploads/logo.png", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "memory://site/uploads/logo.png?expires="))

	require.NoError(t, m.Delete(ctx, "uploads/logo.png"))
	require.NoError(t, m.Delete(ctx, "uploads/logo.png"))
	assert.Zero(t, m.Len())

	_, _, err = m.Get(ctx, "uploads/logo.png")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.PresignGet(ctx, "uploads/logo.png", time.Hour)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SizeMismatch(t *testing.T) {
	m := NewMemory("site")

	_, err := m.Put(context.Background(), "k", strings.NewReader("abc"), PutObjectOptions{Size: 10})
	assert.Error(t, err)

	_, err = m.Put(context.Background(), "k", strings.NewReader("abc"), PutObjectOptions{Size: -1})
	assert.NoError(t, err)
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"no endpoint", config.MinIOConfig{AccessKey: "a", SecretKey: "s", Bucket: "b"}, "minio endpoint is required"},
		{"no credentials", config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b"}, "minio credentials are required"},
		{"no bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, "minio bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMinIO(context.Background(), tt.cfg)
			assert.EqualError(t, err, tt.want)
		})
	}
}
