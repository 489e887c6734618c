package handler

import (
	"context"
	"strconv"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/pkg/auth"
	"selmag/pkg/problem"

	"github.com/gin-gonic/gin"
)

const (
	KeyFavouriteProductNotFound = "feedback.errors.favourite_product.not_found"
	KeyNotFound                 = "errors.not_found"
)

type ProductReviewsServiceInterface interface {
	CreateProductReview(ctx context.Context, productID, rating int, review, userID string) (*entity.ProductReview, error)
	FindProductReviewsByProduct(ctx context.Context, productID int) ([]entity.ProductReview, error)
}

type FavouriteProductsServiceInterface interface {
	AddProductToFavourites(ctx context.Context, productID int, userID string) (*entity.FavouriteProduct, error)
	RemoveProductFromFavourites(ctx context.Context, productID int, userID string) error
	FindFavouriteProductByProduct(ctx context.Context, productID int, userID string) (*entity.FavouriteProduct, error)
	FindFavouriteProducts(ctx context.Context, userID string) ([]entity.FavouriteProduct, error)
}

// userID - subject токена вызывающего; Authenticate гарантирует его наличие
func userID(c *gin.Context) (string, bool) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok || principal.Subject == "" {
		_ = c.Error(auth.ErrUnauthorized)
		return "", false
	}
	return principal.Subject, true
}

// productID разбирает :productId; нечисловой id означает несуществующий ресурс
func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		_ = c.Error(problem.NotFound(KeyNotFound))
		return 0, false
	}
	return id, true
}

// location строит абсолютный URI созданного ресурса
func location(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + c.Request.Host + path
}
