package repository

import (
	"context"
	"errors"

	"selmag/catalogue-service/internal/app/catalogue/entity"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	// FindAllByTitleLikeIgnoreCase ищет по шаблону ILIKE, шаблон передаётся уже с %
	FindAllByTitleLikeIgnoreCase(ctx context.Context, pattern string) ([]entity.Product, error)
	// FindByID возвращает nil, nil если товара нет
	FindByID(ctx context.Context, id int) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	// DeleteByID не проверяет существование товара
	DeleteByID(ctx context.Context, id int) error
}
