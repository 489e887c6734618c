package service

import (
	"context"
	"fmt"

	"selmag/customer-app/internal/app/customer/entity"
	"selmag/customer-app/internal/app/customer/infrastructure"
	"selmag/pkg/auth"
	"selmag/pkg/logger"
	"selmag/pkg/problem"

	"golang.org/x/sync/errgroup"
)

// ErrProductNotFound - товара нет в каталоге; страница отвечает 404
var ErrProductNotFound = problem.NotFound("customer.products.error.not_found")

// StorefrontService собирает страницы витрины из Catalogue и Feedback сервисов.
// Все вызовы выполняются от имени переданного покупателя.
type StorefrontService struct {
	products   infrastructure.ProductsClient
	reviews    infrastructure.ProductReviewsClient
	favourites infrastructure.FavouriteProductsClient
}

func NewStorefrontService(
	products infrastructure.ProductsClient,
	reviews infrastructure.ProductReviewsClient,
	favourites infrastructure.FavouriteProductsClient,
) *StorefrontService {
	return &StorefrontService{
		products:   products,
		reviews:    reviews,
		favourites: favourites,
	}
}

func (s *StorefrontService) FindProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error) {
	return s.products.FindAllProducts(ctx, caller, filter)
}

// FindFavouriteProducts возвращает товары каталога, подходящие под фильтр
// и находящиеся в избранном у покупателя
func (s *StorefrontService) FindFavouriteProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error) {
	var (
		favourites []entity.FavouriteProduct
		products   []entity.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		favourites, err = s.favourites.FindFavouriteProducts(gctx, caller)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.products.FindAllProducts(gctx, caller, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	favouriteIDs := make(map[int]struct{}, len(favourites))
	for _, f := range favourites {
		favouriteIDs[f.ProductID] = struct{}{}
	}

	result := make([]entity.Product, 0, len(favourites))
	for _, p := range products {
		if _, ok := favouriteIDs[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

// LoadProduct возвращает ErrProductNotFound, если товара нет
func (s *StorefrontService) LoadProduct(ctx context.Context, caller auth.Principal, productID int) (*entity.Product, error) {
	product, err := s.products.FindProduct(ctx, caller, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// LoadProductPage запрашивает отзывы и статус избранного параллельно.
// Товар уже должен быть загружен через LoadProduct.
func (s *StorefrontService) LoadProductPage(ctx context.Context, caller auth.Principal, product entity.Product) (*entity.ProductPage, error) {
	page := &entity.ProductPage{Product: product}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reviews, err := s.reviews.FindProductReviewsByProductID(gctx, caller, product.ID)
		if err != nil {
			return err
		}
		page.Reviews = reviews
		return nil
	})
	g.Go(func() error {
		inFavourite, err := s.IsInFavourites(gctx, caller, product.ID)
		if err != nil {
			return err
		}
		page.InFavourite = inFavourite
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load page of product %d: %w", product.ID, err)
	}

	return page, nil
}

func (s *StorefrontService) IsInFavourites(ctx context.Context, caller auth.Principal, productID int) (bool, error) {
	favourite, err := s.favourites.FindFavouriteProductByProductID(ctx, caller, productID)
	if err != nil {
		return false, err
	}
	return favourite != nil, nil
}

func (s *StorefrontService) AddToFavourites(ctx context.Context, caller auth.Principal, productID int) error {
	favourite, err := s.favourites.AddProductToFavourites(ctx, caller, productID)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("favourite_id", favourite.ID).
		Int("product_id", productID).
		Msg("Product added to favourites")
	return nil
}

func (s *StorefrontService) RemoveFromFavourites(ctx context.Context, caller auth.Principal, productID int) error {
	return s.favourites.RemoveProductFromFavourites(ctx, caller, productID)
}

// CreateReview возвращает *webclient.BadRequestError при отклонённом отзыве
func (s *StorefrontService) CreateReview(ctx context.Context, caller auth.Principal, productID int, payload entity.NewProductReviewPayload) (*entity.ProductReview, error) {
	return s.reviews.CreateProductReview(ctx, caller, productID, payload.Rating, payload.Review)
}
