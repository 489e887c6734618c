package service

import (
	"context"
	"errors"
	"fmt"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/feedback-service/internal/app/feedback/repository"
	"selmag/pkg/metrics"

	"github.com/google/uuid"
)

type FavouriteProductsService struct {
	favouriteRepo repository.FavouriteProductRepository
}

func NewFavouriteProductsService(favouriteRepo repository.FavouriteProductRepository) *FavouriteProductsService {
	return &FavouriteProductsService{favouriteRepo: favouriteRepo}
}

// AddProductToFavourites добавляет товар в избранное.
// Повторное добавление возвращает уже существующую запись.
func (s *FavouriteProductsService) AddProductToFavourites(ctx context.Context, productID int, userID string) (*entity.FavouriteProduct, error) {
	favourite := &entity.FavouriteProduct{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
	}

	err := s.favouriteRepo.Create(ctx, favourite)
	if errors.Is(err, repository.ErrDuplicateFavourite) {
		existing, findErr := s.favouriteRepo.FindByProductIDAndUserID(ctx, productID, userID)
		if findErr != nil {
			return nil, fmt.Errorf("failed to load existing favourite product: %w", findErr)
		}
		if existing != nil {
			return existing, nil
		}
		// запись успели удалить между вставкой и чтением
		return nil, fmt.Errorf("failed to add product to favourites: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add product to favourites: %w", err)
	}

	metrics.FavouritesChanged.WithLabelValues("added").Inc()
	return favourite, nil
}

// RemoveProductFromFavourites не проверяет, был ли товар в избранном
func (s *FavouriteProductsService) RemoveProductFromFavourites(ctx context.Context, productID int, userID string) error {
	if err := s.favouriteRepo.DeleteByProductIDAndUserID(ctx, productID, userID); err != nil {
		return fmt.Errorf("failed to remove product from favourites: %w", err)
	}

	metrics.FavouritesChanged.WithLabelValues("removed").Inc()
	return nil
}

// FindFavouriteProductByProduct возвращает nil, nil если товара нет в избранном
func (s *FavouriteProductsService) FindFavouriteProductByProduct(ctx context.Context, productID int, userID string) (*entity.FavouriteProduct, error) {
	favourite, err := s.favouriteRepo.FindByProductIDAndUserID(ctx, productID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find favourite product: %w", err)
	}
	return favourite, nil
}

func (s *FavouriteProductsService) FindFavouriteProducts(ctx context.Context, userID string) ([]entity.FavouriteProduct, error) {
	favourites, err := s.favouriteRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find favourite products: %w", err)
	}
	return favourites, nil
}
