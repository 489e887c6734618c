package repository

import (
	"context"
	"errors"

	"selmag/feedback-service/internal/app/feedback/entity"
)

// ErrDuplicateFavourite - товар уже в избранном пользователя (нарушен уникальный индекс)
var ErrDuplicateFavourite = errors.New("product is already in favourites")

const serviceName = "feedback-service"

// ProductReviewRepository - отзывы в MongoDB
type ProductReviewRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, review *entity.ProductReview) error
	// FindAllByProductID возвращает отзывы в порядке добавления
	FindAllByProductID(ctx context.Context, productID int) ([]entity.ProductReview, error)
	DeleteAllByProductID(ctx context.Context, productID int) (int64, error)
}

// FavouriteProductRepository - избранное в MongoDB
type FavouriteProductRepository interface {
	EnsureIndexes(ctx context.Context) error
	// Create возвращает ErrDuplicateFavourite, если пара (productId, userId) уже есть
	Create(ctx context.Context, favourite *entity.FavouriteProduct) error
	// FindByProductIDAndUserID возвращает nil, nil если записи нет
	FindByProductIDAndUserID(ctx context.Context, productID int, userID string) (*entity.FavouriteProduct, error)
	FindAllByUserID(ctx context.Context, userID string) ([]entity.FavouriteProduct, error)
	DeleteByProductIDAndUserID(ctx context.Context, productID int, userID string) error
	DeleteAllByProductID(ctx context.Context, productID int) (int64, error)
}
