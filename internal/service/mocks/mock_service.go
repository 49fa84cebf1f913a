package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agendaapi/internal/model"
)

type MockService[K comparable, R model.Record, C any, P model.Patch] struct {
	mock.Mock
}

func (m *MockService[K, R, C, P]) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockService[K, R, C, P]) List(ctx context.Context) ([]R, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]R), args.Error(1)
}

func (m *MockService[K, R, C, P]) Get(ctx context.Context, id K) (*R, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*R), args.Error(1)
}

func (m *MockService[K, R, C, P]) Create(ctx context.Context, in C) (*R, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*R), args.Error(1)
}

func (m *MockService[K, R, C, P]) Update(ctx context.Context, id K, patch P) (*R, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*R), args.Error(1)
}

func (m *MockService[K, R, C, P]) Delete(ctx context.Context, id K) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
