package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/repository"
	"ipoadvisor/internal/storage"
)

// FilePrefix is the object key prefix for uploaded site files.
const FilePrefix = "uploads/"

// FileService stores site uploads: content in object storage, metadata in the repository.
type FileService interface {
	List(ctx context.Context) ([]model.UploadedFile, error)
	// Upload stores the content under a unique name derived from filename and rolls the
	// object back if the metadata cannot be saved.
	Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (model.UploadedFile, error)
	// Open streams a stored file for public download.
	Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)
	Delete(ctx context.Context, name string) error
}

type fileService struct {
	store  storage.Storage
	repo   repository.FileRepository
	now    func() time.Time
	newKey func(ext string) string
}

func NewFileService(store storage.Storage, repo repository.FileRepository) FileService {
	return &fileService{store: store, repo: repo, now: time.Now, newKey: uuidKey}
}

func uuidKey(ext string) string {
	return FilePrefix + uuid.NewString() + ext
}

// maxNameAttempts bounds how often Upload re-picks a name that another upload claimed first.
const maxNameAttempts = 10

func (s *fileService) List(ctx context.Context) ([]model.UploadedFile, error) {
	return s.repo.List(ctx)
}

// Upload writes the content under a fresh object key, so concurrent uploads never share an
// object. The display name is claimed by repo.Create; losing that race picks the next free name.
func (s *fileService) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (model.UploadedFile, error) {
	if r == nil {
		return model.UploadedFile{}, ErrReaderNil
	}
	name := cleanName(filename)
	if name == "" {
		return model.UploadedFile{}, ErrNameRequired
	}

	key := s.newKey(strings.ToLower(path.Ext(name)))
	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		return model.UploadedFile{}, fmt.Errorf("upload to storage: %w", err)
	}

	f, err := s.claim(ctx, name, key, info.Size)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return model.UploadedFile{}, fmt.Errorf("save metadata failed: %v; rollback delete failed: %v", err, delErr)
		}
		return model.UploadedFile{}, fmt.Errorf("save metadata failed: %w", err)
	}
	return f, nil
}

func (s *fileService) claim(ctx context.Context, name, key string, size int64) (model.UploadedFile, error) {
	var err error
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		var candidate string
		candidate, err = s.uniqueName(ctx, name)
		if err != nil {
			return model.UploadedFile{}, err
		}
		f := model.UploadedFile{
			Name:      candidate,
			Size:      size,
			Type:      model.ClassifyFile(candidate),
			CreatedAt: timestamp(s.now()),
			URL:       "/api/files/" + candidate,
			Key:       key,
		}
		err = s.repo.Create(ctx, f)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return model.UploadedFile{}, err
		}
	}
	return model.UploadedFile{}, err
}

// uniqueName appends _1, _2, ... before the extension until the name is free.
func (s *fileService) uniqueName(ctx context.Context, name string) (string, error) {
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for i := 1; ; i++ {
		_, err := s.repo.FindByName(ctx, candidate)
		if errors.Is(err, repository.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
}

// objectKey falls back to the name-derived key for records saved without one.
func objectKey(f model.UploadedFile) string {
	if f.Key != "" {
		return f.Key
	}
	return FilePrefix + f.Name
}

func (s *fileService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	f, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, storage.ObjectInfo{}, mapNotFound(err)
	}
	rc, info, err := s.store.Get(ctx, objectKey(f))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, storage.ObjectInfo{}, ErrNotFound
	}
	return rc, info, err
}

// Delete removes the object first; the metadata stays if that fails so the file is
// still listed and can be retried.
func (s *fileService) Delete(ctx context.Context, name string) error {
	f, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.store.Delete(ctx, objectKey(f)); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return mapNotFound(s.repo.Delete(ctx, name))
}

// cleanName keeps the base name of an uploaded file and drops anything that could
// escape the upload prefix.
func cleanName(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.TrimSpace(name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}
