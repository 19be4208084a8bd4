package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ipoadvisor/internal/model"
)

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, f model.UploadedFile) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFileRepository) FindByName(ctx context.Context, name string) (model.UploadedFile, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.UploadedFile), args.Error(1)
}

func (m *MockFileRepository) List(ctx context.Context) ([]model.UploadedFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UploadedFile), args.Error(1)
}

func (m *MockFileRepository) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
