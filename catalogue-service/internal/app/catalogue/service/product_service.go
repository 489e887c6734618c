package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"selmag/catalogue-service/internal/app/catalogue/entity"
	"selmag/catalogue-service/internal/app/catalogue/infrastructure"
	"selmag/catalogue-service/internal/app/catalogue/repository"
	"selmag/pkg/logger"
	"selmag/pkg/metrics"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService - бизнес-логика каталога.
// Кеш и Kafka вторичны: их сбои логируются и не прерывают операцию.
type ProductService struct {
	productRepo repository.ProductRepository
	cache       infrastructure.ProductCache
	publisher   infrastructure.MessagePublisher
}

func NewProductService(
	productRepo repository.ProductRepository,
	cache infrastructure.ProductCache,
	publisher infrastructure.MessagePublisher,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		cache:       cache,
		publisher:   publisher,
	}
}

// FindAllProducts возвращает все товары или только те, чьё название содержит filter без учёта регистра
func (s *ProductService) FindAllProducts(ctx context.Context, filter string) ([]entity.Product, error) {
	var (
		products []entity.Product
		err      error
	)

	if strings.TrimSpace(filter) == "" {
		products, err = s.productRepo.FindAll(ctx)
	} else {
		products, err = s.productRepo.FindAllByTitleLikeIgnoreCase(ctx, "%"+filter+"%")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, title, details string) (*entity.Product, error) {
	product := &entity.Product{
		Title:   title,
		Details: details,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	metrics.ProductsCreated.Inc()
	s.publishProductEvent(ctx, entity.EventProductCreated, product.ID, product.Title)

	return product, nil
}

// FindProduct возвращает nil, nil если товара нет
func (s *ProductService) FindProduct(ctx context.Context, id int) (*entity.Product, error) {
	cached, err := s.cache.GetProduct(ctx, id)
	if err != nil {
		logger.Warn().Err(err).Int("product_id", id).Msg("product cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, nil
	}

	if err := s.cache.SetProduct(ctx, product); err != nil {
		logger.Warn().Err(err).Int("product_id", id).Msg("product cache write failed")
	}

	return product, nil
}

// UpdateProduct перезаписывает название и описание: payload несёт итоговые значения обоих полей
func (s *ProductService) UpdateProduct(ctx context.Context, id int, title, details string) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	product.Title = title
	product.Details = details

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	s.evict(ctx, id)
	s.publishProductEvent(ctx, entity.EventProductUpdated, product.ID, product.Title)

	return nil
}

// DeleteProduct удаляет товар без проверки существования
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.productRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	metrics.ProductsDeleted.Inc()
	s.evict(ctx, id)
	s.publishProductEvent(ctx, entity.EventProductDeleted, id, "")

	return nil
}

func (s *ProductService) evict(ctx context.Context, id int) {
	if err := s.cache.DeleteProduct(ctx, id); err != nil {
		logger.Warn().Err(err).Int("product_id", id).Msg("product cache eviction failed")
	}
}

func (s *ProductService) publishProductEvent(ctx context.Context, eventType string, productID int, title string) {
	event := entity.ProductEvent{
		EventType: eventType,
		ProductID: productID,
		Title:     title,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Str("event_type", eventType).Msg("failed to marshal product event")
		return
	}

	if err := s.publisher.PublishMessage(ctx, strconv.Itoa(productID), data); err != nil {
		logger.Error().Err(err).
			Str("event_type", eventType).
			Int("product_id", productID).
			Msg("failed to publish product event")
	}
}
