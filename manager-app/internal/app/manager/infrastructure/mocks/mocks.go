package mocks

import (
	"context"

	"selmag/manager-app/internal/app/manager/entity"
	"selmag/pkg/auth"

	"github.com/stretchr/testify/mock"
)

type MockProductsRestClient struct {
	mock.Mock
}

func (m *MockProductsRestClient) FindAllProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error) {
	args := m.Called(ctx, caller, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductsRestClient) CreateProduct(ctx context.Context, caller auth.Principal, title, details string) (*entity.Product, error) {
	args := m.Called(ctx, caller, title, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductsRestClient) FindProduct(ctx context.Context, caller auth.Principal, productID int) (*entity.Product, error) {
	args := m.Called(ctx, caller, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductsRestClient) UpdateProduct(ctx context.Context, caller auth.Principal, productID int, title, details string) error {
	args := m.Called(ctx, caller, productID, title, details)
	return args.Error(0)
}

func (m *MockProductsRestClient) DeleteProduct(ctx context.Context, caller auth.Principal, productID int) error {
	args := m.Called(ctx, caller, productID)
	return args.Error(0)
}
