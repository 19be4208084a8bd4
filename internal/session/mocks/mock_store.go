package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ipoadvisor/internal/session"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) (session.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, s session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
