package infrastructure

import (
	"context"

	"selmag/manager-app/internal/app/manager/entity"
	"selmag/pkg/auth"
	"selmag/pkg/problem"
)

// ErrProductNotFound - товара нет в каталоге
var ErrProductNotFound = problem.NotFound("catalogue.errors.product.not_found")

// ProductsRestClient - управление каталогом через Catalogue Service
type ProductsRestClient interface {
	FindAllProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error)
	// CreateProduct возвращает *webclient.BadRequestError, если каталог отклонил товар
	CreateProduct(ctx context.Context, caller auth.Principal, title, details string) (*entity.Product, error)
	// FindProduct возвращает nil, nil если товара нет
	FindProduct(ctx context.Context, caller auth.Principal, productID int) (*entity.Product, error)
	UpdateProduct(ctx context.Context, caller auth.Principal, productID int, title, details string) error
	DeleteProduct(ctx context.Context, caller auth.Principal, productID int) error
}
