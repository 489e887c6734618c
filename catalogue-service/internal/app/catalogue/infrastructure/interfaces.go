package infrastructure

import (
	"context"

	"selmag/catalogue-service/internal/app/catalogue/entity"
)

// ProductCache - кеш товаров по id. GetProduct возвращает nil, nil при промахе.
type ProductCache interface {
	GetProduct(ctx context.Context, id int) (*entity.Product, error)
	SetProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id int) error
}

// MessagePublisher отправляет события о товарах
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
}
