package handler

import (
	"context"
	"strconv"

	"selmag/customer-app/internal/app/customer/entity"
	"selmag/customer-app/internal/app/customer/service"
	"selmag/pkg/auth"
	"selmag/pkg/webclient"

	"github.com/gin-gonic/gin"
)

type StorefrontServiceInterface interface {
	FindProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error)
	FindFavouriteProducts(ctx context.Context, caller auth.Principal, filter string) ([]entity.Product, error)
	LoadProduct(ctx context.Context, caller auth.Principal, productID int) (*entity.Product, error)
	LoadProductPage(ctx context.Context, caller auth.Principal, product entity.Product) (*entity.ProductPage, error)
	IsInFavourites(ctx context.Context, caller auth.Principal, productID int) (bool, error)
	AddToFavourites(ctx context.Context, caller auth.Principal, productID int) error
	RemoveFromFavourites(ctx context.Context, caller auth.Principal, productID int) error
	CreateReview(ctx context.Context, caller auth.Principal, productID int, payload entity.NewProductReviewPayload) (*entity.ProductReview, error)
}

// RelayAcceptLanguage передаёт язык покупателя в запросы к соседним сервисам
func RelayAcceptLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if lang := c.GetHeader("Accept-Language"); lang != "" {
			c.Request = c.Request.WithContext(webclient.WithAcceptLanguage(c.Request.Context(), lang))
		}
		c.Next()
	}
}

func caller(c *gin.Context) (auth.Principal, bool) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		_ = c.Error(auth.ErrUnauthorized)
		return auth.Principal{}, false
	}
	return principal, true
}

// productID разбирает :productId; нечисловой id - такого товара нет
func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		_ = c.Error(service.ErrProductNotFound)
		return 0, false
	}
	return id, true
}

func productPath(id int) string {
	return "/customer/products/" + strconv.Itoa(id)
}
