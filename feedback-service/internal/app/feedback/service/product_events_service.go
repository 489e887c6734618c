package service

import (
	"context"
	"fmt"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/feedback-service/internal/app/feedback/repository"
	"selmag/pkg/logger"
)

// ProductEventsService реагирует на события каталога
type ProductEventsService struct {
	reviewRepo    repository.ProductReviewRepository
	favouriteRepo repository.FavouriteProductRepository
}

func NewProductEventsService(
	reviewRepo repository.ProductReviewRepository,
	favouriteRepo repository.FavouriteProductRepository,
) *ProductEventsService {
	return &ProductEventsService{
		reviewRepo:    reviewRepo,
		favouriteRepo: favouriteRepo,
	}
}

// HandleProductEvent обрабатывает событие; интересно только удаление товара
func (s *ProductEventsService) HandleProductEvent(ctx context.Context, event *entity.ProductEvent) error {
	if event.EventType != entity.EventProductDeleted {
		return nil
	}
	return s.HandleProductDeleted(ctx, event.ProductID)
}

// HandleProductDeleted удаляет отзывы и избранное удалённого товара.
// Повторная обработка безопасна: удалять уже нечего.
func (s *ProductEventsService) HandleProductDeleted(ctx context.Context, productID int) error {
	reviews, err := s.reviewRepo.DeleteAllByProductID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to delete reviews of product %d: %w", productID, err)
	}

	favourites, err := s.favouriteRepo.DeleteAllByProductID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to delete favourites of product %d: %w", productID, err)
	}

	logger.Info().
		Int("product_id", productID).
		Int64("reviews_deleted", reviews).
		Int64("favourites_deleted", favourites).
		Msg("Cleaned up feedback of deleted product")

	return nil
}
