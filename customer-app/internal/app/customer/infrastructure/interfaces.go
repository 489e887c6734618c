package infrastructure

import (
	"context"

	"selmag/customer-app/internal/app/customer/entity"
	"selmag/pkg/auth"
)

// ProductsClient - чтение каталога
type ProductsClient interface {
	FindAllProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error)
	// FindProduct возвращает nil, nil если товара нет
	FindProduct(ctx context.Context, caller auth.Principal, productID int) (*entity.Product, error)
}

type ProductReviewsClient interface {
	FindProductReviewsByProductID(ctx context.Context, caller auth.Principal, productID int) ([]entity.ProductReview, error)
	CreateProductReview(ctx context.Context, caller auth.Principal, productID int, rating *int, review string) (*entity.ProductReview, error)
}

type FavouriteProductsClient interface {
	FindFavouriteProducts(ctx context.Context, caller auth.Principal) ([]entity.FavouriteProduct, error)
	// FindFavouriteProductByProductID возвращает nil, nil если товара нет в избранном
	FindFavouriteProductByProductID(ctx context.Context, caller auth.Principal, productID int) (*entity.FavouriteProduct, error)
	AddProductToFavourites(ctx context.Context, caller auth.Principal, productID int) (*entity.FavouriteProduct, error)
	RemoveProductFromFavourites(ctx context.Context, caller auth.Principal, productID int) error
}
