package mocks

import (
	"context"

	"selmag/customer-app/internal/app/customer/entity"
	"selmag/pkg/auth"

	"github.com/stretchr/testify/mock"
)

type MockProductsClient struct {
	mock.Mock
}

func (m *MockProductsClient) FindAllProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error) {
	args := m.Called(ctx, caller, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductsClient) FindProduct(ctx context.Context, caller auth.Principal, productID int) (*entity.Product, error) {
	args := m.Called(ctx, caller, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

type MockProductReviewsClient struct {
	mock.Mock
}

func (m *MockProductReviewsClient) FindProductReviewsByProductID(ctx context.Context, caller auth.Principal, productID int) ([]entity.ProductReview, error) {
	args := m.Called(ctx, caller, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductReview), args.Error(1)
}

func (m *MockProductReviewsClient) CreateProductReview(ctx context.Context, caller auth.Principal, productID int, rating *int, review string) (*entity.ProductReview, error) {
	args := m.Called(ctx, caller, productID, rating, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProductReview), args.Error(1)
}

type MockFavouriteProductsClient struct {
	mock.Mock
}

func (m *MockFavouriteProductsClient) FindFavouriteProducts(ctx context.Context, caller auth.Principal) ([]entity.FavouriteProduct, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FavouriteProduct), args.Error(1)
}

func (m *MockFavouriteProductsClient) FindFavouriteProductByProductID(ctx context.Context, caller auth.Principal, productID int) (*entity.FavouriteProduct, error) {
	args := m.Called(ctx, caller, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FavouriteProduct), args.Error(1)
}

func (m *MockFavouriteProductsClient) AddProductToFavourites(ctx context.Context, caller auth.Principal, productID int) (*entity.FavouriteProduct, error) {
	args := m.Called(ctx, caller, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FavouriteProduct), args.Error(1)
}

func (m *MockFavouriteProductsClient) RemoveProductFromFavourites(ctx context.Context, caller auth.Principal, productID int) error {
	args := m.Called(ctx, caller, productID)
	return args.Error(0)
}
