// Package archive copies the site's uploaded files into object storage and back.
package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/storage"
)

var ErrNameRequired = errors.New("file name is required")

// Source is the backend side of the archive: the gateway's file operations.
type Source interface {
	ListFiles(ctx context.Context) ([]model.UploadedFile, error)
	DownloadFile(ctx context.Context, name string, w io.Writer) error
	UploadFile(ctx context.Context, name string, r io.Reader) (model.UploadedFile, error)
}

// Result is the outcome for one file of a backup.
type Result struct {
	Name string
	Key  string
	Size int64
	Err  error
}

func (r Result) OK() bool { return r.Err == nil }

// Archiver mirrors site files under prefix in a bucket.
type Archiver struct {
	src    Source
	store  storage.Storage
	prefix string
	logger *zap.Logger
}

func New(src Source, store storage.Storage, prefix string, logger *zap.Logger) *Archiver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archiver{
		src:    src,
		store:  store,
		prefix: strings.Trim(prefix, "/"),
		logger: logger.With(zap.String("component", "archive")),
	}
}

// Key is the object key a file is archived under.
func (a *Archiver) Key(name string) string {
	if a.prefix == "" {
		return name
	}
	return path.Join(a.prefix, name)
}

// Backup copies every listed file into the bucket, one at a time. Only a failed listing
// fails the whole run; per-file failures are reported in the results and the rest
// carry on. Objects already written stay in place.
func (a *Archiver) Backup(ctx context.Context) ([]Result, error) {
	files, err := a.src.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	start := time.Now()
	results := make([]Result, 0, len(files))
	failed := 0
	for _, f := range files {
		res := a.backupOne(ctx, f)
		if res.Err != nil {
			failed++
			a.logger.Warn("archive_file_failed", zap.String("file", f.Name), zap.Error(res.Err))
		}
		results = append(results, res)
	}

	a.logger.Info("archive_backup_done",
		zap.Int("files", len(files)),
		zap.Int("failed", failed),
		zap.Duration("duration", time.Since(start)),
	)
	return results, nil
}

func (a *Archiver) backupOne(ctx context.Context, f model.UploadedFile) Result {
	res := Result{Name: f.Name, Key: a.Key(f.Name)}

	var buf bytes.Buffer
	if err := a.src.DownloadFile(ctx, f.Name, &buf); err != nil {
		res.Err = fmt.Errorf("download: %w", err)
		return res
	}

	info, err := a.store.Put(ctx, res.Key, &buf, storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: contentType(f.Name),
		Metadata: map[string]string{
			"original-filename": f.Name,
			"file-type":         string(model.ClassifyFile(f.Name)),
		},
	})
	if err != nil {
		res.Err = fmt.Errorf("put %s: %w", res.Key, err)
		return res
	}
	res.Size = info.Size
	return res
}

// Restore uploads an archived file back to the site. The backend may store it under a
// different name when name is taken.
func (a *Archiver) Restore(ctx context.Context, name string) (model.UploadedFile, error) {
	if name == "" {
		return model.UploadedFile{}, ErrNameRequired
	}
	rc, _, err := a.store.Get(ctx, a.Key(name))
	if err != nil {
		return model.UploadedFile{}, fmt.Errorf("get %s: %w", a.Key(name), err)
	}
	defer rc.Close()
	return a.src.UploadFile(ctx, name, rc)
}

// Link returns a presigned download URL for an archived file.
func (a *Archiver) Link(ctx context.Context, name string, expiry time.Duration) (string, error) {
	if name == "" {
		return "", ErrNameRequired
	}
	return a.store.PresignGet(ctx, a.Key(name), expiry)
}

// Remove deletes an archived copy. The site file is not touched.
func (a *Archiver) Remove(ctx context.Context, name string) error {
	if name == "" {
		return ErrNameRequired
	}
	return a.store.Delete(ctx, a.Key(name))
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
