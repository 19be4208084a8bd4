package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/storage"
)

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) List(ctx context.Context) ([]model.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Get(ctx context.Context, slug string) (model.BlogPost, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Create(ctx context.Context, in model.BlogPostInput) (model.BlogPost, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Update(ctx context.Context, slug string, in model.BlogPostInput) (model.BlogPost, error) {
	args := m.Called(ctx, slug, in)
	return args.Get(0).(model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) List(ctx context.Context) ([]model.UploadedFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UploadedFile), args.Error(1)
}

func (m *MockFileService) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (model.UploadedFile, error) {
	args := m.Called(ctx, r, filename, contentType, size)
	return args.Get(0).(model.UploadedFile), args.Error(1)
}

func (m *MockFileService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockFileService) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
