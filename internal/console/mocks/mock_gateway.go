package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ipoadvisor/internal/gateway"
	"ipoadvisor/internal/model"
)

type MockContactsGateway struct {
	mock.Mock
}

func (m *MockContactsGateway) ListContacts(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactsGateway) UpdateContact(ctx context.Context, id string, upd model.ContactUpdate) (model.Contact, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactsGateway) DeleteContact(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockApplicationsGateway struct {
	mock.Mock
}

func (m *MockApplicationsGateway) ListApplications(ctx context.Context) ([]model.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func (m *MockApplicationsGateway) UpdateApplication(ctx context.Context, id string, upd model.ApplicationUpdate) (model.Application, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(model.Application), args.Error(1)
}

func (m *MockApplicationsGateway) DeleteApplication(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBlogGateway struct {
	mock.Mock
}

func (m *MockBlogGateway) ListAdminBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockBlogGateway) CreateBlogPost(ctx context.Context, in model.BlogPostInput) (model.BlogPost, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.BlogPost), args.Error(1)
}

func (m *MockBlogGateway) UpdateBlogPost(ctx context.Context, slug string, in model.BlogPostInput) (model.BlogPost, error) {
	args := m.Called(ctx, slug, in)
	return args.Get(0).(model.BlogPost), args.Error(1)
}

func (m *MockBlogGateway) DeleteBlogPost(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

type MockFilesGateway struct {
	mock.Mock
}

func (m *MockFilesGateway) ListFiles(ctx context.Context) ([]model.UploadedFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UploadedFile), args.Error(1)
}

func (m *MockFilesGateway) UploadFiles(ctx context.Context, files []gateway.FileUpload) []gateway.UploadResult {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]gateway.UploadResult)
}

func (m *MockFilesGateway) DeleteFile(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockFilesGateway) FileURL(name string) string {
	args := m.Called(name)
	return args.String(0)
}

type MockSessionGateway struct {
	mock.Mock
}

func (m *MockSessionGateway) VerifyStatus(ctx context.Context) gateway.VerifyResult {
	args := m.Called(ctx)
	return args.Get(0).(gateway.VerifyResult)
}

func (m *MockSessionGateway) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionGateway) Stats(ctx context.Context) (model.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Stats), args.Error(1)
}
