package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/repository"
	"ipoadvisor/internal/repository/memory"
	repoMocks "ipoadvisor/internal/repository/mocks"
	"ipoadvisor/internal/storage"
	storeMocks "ipoadvisor/internal/storage/mocks"
)

func newFiles(store storage.Storage, repo repository.FileRepository) *fileService {
	s := NewFileService(store, repo).(*fileService)
	s.newKey = func(ext string) string { return FilePrefix + "obj" + ext }
	return s
}

func TestFileService_Upload(t *testing.T) {
	ctx := context.Background()
	notFound := repository.ErrNotFound

	tests := []struct {
		name       string
		filename   string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockFileRepository) io.Reader
		wantErr    error
		wantErrMsg string
		wantName   string
	}{
		{
			name:     "happy path",
			filename: "deck.pdf",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockFileRepository) io.Reader {
				r := strings.NewReader("pdf")
				mRepo.On("FindByName", ctx, "deck.pdf").Return(model.UploadedFile{}, notFound)
				mStore.On("Put", ctx, "uploads/obj.pdf", r, storage.PutObjectOptions{
					Size:        3,
					ContentType: "application/pdf",
					Metadata:    map[string]string{"original-filename": "deck.pdf"},
				}).Return(storage.ObjectInfo{Key: "uploads/obj.pdf", Size: 3}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(f model.UploadedFile) bool {
					return f.Name == "deck.pdf" && f.Type == model.FileDocument && f.URL == "/api/files/deck.pdf" &&
						f.Key == "uploads/obj.pdf"
				})).Return(nil)
				return r
			},
			wantName: "deck.pdf",
		},
		{
			name:     "name taken gets a suffix",
			filename: "deck.pdf",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockFileRepository) io.Reader {
				r := strings.NewReader("pdf")
				mRepo.On("FindByName", ctx, "deck.pdf").Return(model.UploadedFile{Name: "deck.pdf"}, nil)
				mRepo.On("FindByName", ctx, "deck_1.pdf").Return(model.UploadedFile{Name: "deck_1.pdf"}, nil)
				mRepo.On("FindByName", ctx, "deck_2.pdf").Return(model.UploadedFile{}, notFound)
				mStore.On("Put", ctx, "uploads/obj.pdf", r, mock.Anything).Return(storage.ObjectInfo{Size: 3}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil)
				return r
			},
			wantName: "deck_2.pdf",
		},
		{
			name:     "name claimed meanwhile picks the next one",
			filename: "deck.pdf",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockFileRepository) io.Reader {
				r := strings.NewReader("pdf")
				mRepo.On("FindByName", ctx, "deck.pdf").Return(model.UploadedFile{}, notFound).Once()
				mStore.On("Put", ctx, "uploads/obj.pdf", r, mock.Anything).Return(storage.ObjectInfo{Size: 3}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(f model.UploadedFile) bool { return f.Name == "deck.pdf" })).
					Return(fmt.Errorf("deck.pdf: %w", repository.ErrDuplicate)).Once()
				mRepo.On("FindByName", ctx, "deck.pdf").Return(model.UploadedFile{Name: "deck.pdf"}, nil).Once()
				mRepo.On("FindByName", ctx, "deck_1.pdf").Return(model.UploadedFile{}, notFound).Once()
				mRepo.On("Create", ctx, mock.MatchedBy(func(f model.UploadedFile) bool {
					return f.Name == "deck_1.pdf" && f.Key == "uploads/obj.pdf"
				})).Return(nil).Once()
				return r
			},
			wantName: "deck_1.pdf",
		},
		{
			name:     "nil reader",
			filename: "x.txt",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockFileRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:     "path components stripped",
			filename: "../../etc/passwd",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockFileRepository) io.Reader {
				r := strings.NewReader("x")
				mRepo.On("FindByName", ctx, "passwd").Return(model.UploadedFile{}, notFound)
				mStore.On("Put", ctx, "uploads/obj", r, mock.Anything).Return(storage.ObjectInfo{Size: 1}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil)
				return r
			},
			wantName: "passwd",
		},
		{
			name:     "storage error",
			filename: "a.png",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockFileRepository) io.Reader {
				r := strings.NewReader("x")
				mRepo.On("FindByName", ctx, "a.png").Return(model.UploadedFile{}, notFound)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(storage.ObjectInfo{}, errors.New("bucket gone"))
				return r
			},
			wantErrMsg: "upload to storage: bucket gone",
		},
		{
			name:     "metadata error rolls back the object",
			filename: "a.png",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockFileRepository) io.Reader {
				r := strings.NewReader("x")
				mRepo.On("FindByName", ctx, "a.png").Return(model.UploadedFile{}, notFound)
				mStore.On("Put", ctx, "uploads/obj.png", r, mock.Anything).Return(storage.ObjectInfo{Size: 1}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(errors.New("race"))
				mStore.On("Delete", ctx, "uploads/obj.png").Return(nil)
				return r
			},
			wantErrMsg: "save metadata failed: race",
		},
		{
			name:     "rollback failure reported",
			filename: "a.png",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockFileRepository) io.Reader {
				r := strings.NewReader("x")
				mRepo.On("FindByName", ctx, "a.png").Return(model.UploadedFile{}, notFound)
				mStore.On("Put", ctx, "uploads/obj.png", r, mock.Anything).Return(storage.ObjectInfo{Size: 1}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(errors.New("race"))
				mStore.On("Delete", ctx, "uploads/obj.png").Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockFileRepository)
			svc := newFiles(mStore, mRepo)

			r := tt.setupMocks(mStore, mRepo)
			ct := "application/pdf"
			if !strings.HasSuffix(tt.filename, ".pdf") {
				ct = "text/plain"
			}

			f, err := svc.Upload(ctx, r, tt.filename, ct, 3)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, f.Name)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestFileService_OpenDelete(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory("site")
	svc := NewFileService(store, memory.NewFiles())

	f, err := svc.Upload(ctx, strings.NewReader("hello"), "hello.txt", "text/plain", 5)
	require.NoError(t, err)

	rc, info, err := svc.Open(ctx, f.Name)
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "text/plain", info.ContentType)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, f.Name))
	assert.ErrorIs(t, svc.Delete(ctx, f.Name), ErrNotFound)
	_, _, err = svc.Open(ctx, f.Name)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, store.Len())
}

func TestFileService_DeleteStorageFailureKeepsMetadata(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	repo := memory.NewFiles()
	require.NoError(t, repo.Create(ctx, model.UploadedFile{Name: "a.png"}))
	mStore.On("Delete", ctx, "uploads/a.png").Return(errors.New("timeout"))

	err := NewFileService(mStore, repo).Delete(ctx, "a.png")

	assert.EqualError(t, err, "delete storage: timeout")
	_, err = repo.FindByName(ctx, "a.png")
	assert.NoError(t, err)
}

// putHook runs hook once, after the first Put has stored its object.
type putHook struct {
	storage.Storage
	fired bool
	hook  func()
}

func (p *putHook) Put(ctx context.Context, key string, r io.Reader, opts storage.PutObjectOptions) (storage.ObjectInfo, error) {
	info, err := p.Storage.Put(ctx, key, r, opts)
	if !p.fired {
		p.fired = true
		p.hook()
	}
	return info, err
}

func TestFileService_OverlappingUploadsKeepBothFiles(t *testing.T) {
	ctx := context.Background()
	store := &putHook{Storage: storage.NewMemory("site")}
	svc := NewFileService(store, memory.NewFiles())

	var second model.UploadedFile
	var secondErr error
	store.hook = func() {
		second, secondErr = svc.Upload(ctx, strings.NewReader("second"), "deck.pdf", "application/pdf", 6)
	}

	first, err := svc.Upload(ctx, strings.NewReader("first"), "deck.pdf", "application/pdf", 5)
	require.NoError(t, err)
	require.NoError(t, secondErr)
	assert.ElementsMatch(t, []string{"deck.pdf", "deck_1.pdf"}, []string{first.Name, second.Name})

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	want := map[string]string{first.Name: "first", second.Name: "second"}
	for _, f := range list {
		rc, _, err := svc.Open(ctx, f.Name)
		require.NoError(t, err, f.Name)
		data, _ := io.ReadAll(rc)
		rc.Close()
		assert.Equal(t, want[f.Name], string(data), f.Name)
	}
}
