package repository

import (
	"context"
	"errors"

	"selmag/catalogue-service/internal/app/catalogue/entity"
	"selmag/pkg/metrics"

	"gorm.io/gorm"
)

const (
	serviceName  = "catalogue-service"
	productTable = "t_product"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpSelect, productTable).ObserveDuration()

	products := []entity.Product{}
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindAllByTitleLikeIgnoreCase(ctx context.Context, pattern string) ([]entity.Product, error) {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpSelect, productTable).ObserveDuration()

	products := []entity.Product{}
	result := r.db.WithContext(ctx).
		Where("c_title ILIKE ?", pattern).
		Order("id").
		Find(&products)
	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, result.Error
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id int) (*entity.Product, error) {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpSelect, productTable).ObserveDuration()

	var product entity.Product
	result := r.db.WithContext(ctx).Where("id = ?", id).Take(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, result.Error
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpInsert, productTable).ObserveDuration()

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpInsert)
		return err
	}
	return nil
}

// Update перезаписывает оба поля товара
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpUpdate, productTable).ObserveDuration()

	result := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"c_title":   product.Title,
			"c_details": product.Details,
		})
	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpUpdate)
		return result.Error
	}

	// товар мог быть удалён между чтением и записью
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productRepository) DeleteByID(ctx context.Context, id int) error {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpDelete, productTable).ObserveDuration()

	if err := r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error; err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpDelete)
		return err
	}
	return nil
}
