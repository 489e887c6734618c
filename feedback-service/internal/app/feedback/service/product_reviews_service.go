package service

import (
	"context"
	"fmt"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/feedback-service/internal/app/feedback/repository"
	"selmag/pkg/metrics"

	"github.com/google/uuid"
)

type ProductReviewsService struct {
	reviewRepo repository.ProductReviewRepository
}

func NewProductReviewsService(reviewRepo repository.ProductReviewRepository) *ProductReviewsService {
	return &ProductReviewsService{reviewRepo: reviewRepo}
}

// CreateProductReview сохраняет отзыв; данные уже проверены валидатором обработчика
func (s *ProductReviewsService) CreateProductReview(ctx context.Context, productID, rating int, review, userID string) (*entity.ProductReview, error) {
	productReview := &entity.ProductReview{
		ID:        uuid.NewString(),
		ProductID: productID,
		Rating:    rating,
		Review:    review,
		UserID:    userID,
	}

	if err := s.reviewRepo.Create(ctx, productReview); err != nil {
		return nil, fmt.Errorf("failed to create product review: %w", err)
	}

	metrics.ReviewsCreated.Inc()
	metrics.ReviewsRating.Observe(float64(rating))

	return productReview, nil
}

func (s *ProductReviewsService) FindProductReviewsByProduct(ctx context.Context, productID int) ([]entity.ProductReview, error) {
	reviews, err := s.reviewRepo.FindAllByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product reviews: %w", err)
	}
	return reviews, nil
}
