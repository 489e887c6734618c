package mocks

import (
	"context"

	"selmag/feedback-service/internal/app/feedback/entity"

	"github.com/stretchr/testify/mock"
)

// MockProductReviewRepository мок для ProductReviewRepository
type MockProductReviewRepository struct {
	mock.Mock
}

func (m *MockProductReviewRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductReviewRepository) Create(ctx context.Context, review *entity.ProductReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockProductReviewRepository) FindAllByProductID(ctx context.Context, productID int) ([]entity.ProductReview, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductReview), args.Error(1)
}

func (m *MockProductReviewRepository) DeleteAllByProductID(ctx context.Context, productID int) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFavouriteProductRepository мок для FavouriteProductRepository
type MockFavouriteProductRepository struct {
	mock.Mock
}

func (m *MockFavouriteProductRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFavouriteProductRepository) Create(ctx context.Context, favourite *entity.FavouriteProduct) error {
	args := m.Called(ctx, favourite)
	return args.Error(0)
}

func (m *MockFavouriteProductRepository) FindByProductIDAndUserID(ctx context.Context, productID int, userID string) (*entity.FavouriteProduct, error) {
	args := m.Called(ctx, productID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FavouriteProduct), args.Error(1)
}

func (m *MockFavouriteProductRepository) FindAllByUserID(ctx context.Context, userID string) ([]entity.FavouriteProduct, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FavouriteProduct), args.Error(1)
}

func (m *MockFavouriteProductRepository) DeleteByProductIDAndUserID(ctx context.Context, productID int, userID string) error {
	args := m.Called(ctx, productID, userID)
	return args.Error(0)
}

func (m *MockFavouriteProductRepository) DeleteAllByProductID(ctx context.Context, productID int) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}
