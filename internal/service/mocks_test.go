package service_test

import (
	"context"

	"toolrental-checkout/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockToolCatalog
type MockToolCatalog struct {
	mock.Mock
}

func (m *MockToolCatalog) GetByCode(ctx context.Context, code string) (domain.ToolSpec, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.ToolSpec), args.Error(1)
}

func (m *MockToolCatalog) List(ctx context.Context) ([]domain.ToolSpec, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ToolSpec), args.Error(1)
}
