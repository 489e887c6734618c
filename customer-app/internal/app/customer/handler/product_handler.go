package handler

import (
	"net/http"
	"strconv"
	"strings"

	"selmag/customer-app/internal/app/customer/entity"
	"selmag/pkg/auth"
	"selmag/pkg/webclient"

	"github.com/gin-gonic/gin"
)

// ProductHandler - страница товара и действия над ним.
// Каждое действие сначала загружает товар: для отсутствующего ответ 404.
type ProductHandler struct {
	storefront StorefrontServiceInterface
}

func NewProductHandler(storefront StorefrontServiceInterface) *ProductHandler {
	return &ProductHandler{storefront: storefront}
}

func (h *ProductHandler) ProductPage(c *gin.Context) {
	principal, product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	page, err := h.storefront.LoadProductPage(c.Request.Context(), principal, *product)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "customer/products/product", gin.H{
		"product":     page.Product,
		"reviews":     page.Reviews,
		"inFavourite": page.InFavourite,
	})
}

// AddToFavourites возвращает на страницу товара даже если добавление отклонено
func (h *ProductHandler) AddToFavourites(c *gin.Context) {
	principal, product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	if err := h.storefront.AddToFavourites(c.Request.Context(), principal, product.ID); err != nil {
		if _, isBadRequest := webclient.AsBadRequest(err); !isBadRequest {
			_ = c.Error(err)
			return
		}
	}

	c.Redirect(http.StatusFound, productPath(product.ID))
}

func (h *ProductHandler) RemoveFromFavourites(c *gin.Context) {
	principal, product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	if err := h.storefront.RemoveFromFavourites(c.Request.Context(), principal, product.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, productPath(product.ID))
}

// CreateReview при отклонённом отзыве заново показывает страницу товара
// с введёнными данными и списком ошибок
func (h *ProductHandler) CreateReview(c *gin.Context) {
	principal, product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	payload := reviewPayload(c)
	_, err := h.storefront.CreateReview(c.Request.Context(), principal, product.ID, payload)
	if err == nil {
		c.Redirect(http.StatusFound, productPath(product.ID))
		return
	}

	badRequest, isBadRequest := webclient.AsBadRequest(err)
	if !isBadRequest {
		_ = c.Error(err)
		return
	}

	inFavourite, err := h.storefront.IsInFavourites(c.Request.Context(), principal, product.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusBadRequest, "customer/products/product", gin.H{
		"product":     product,
		"inFavourite": inFavourite,
		"payload":     payload,
		"errors":      badRequest.Errors,
	})
}

func (h *ProductHandler) loadProduct(c *gin.Context) (auth.Principal, *entity.Product, bool) {
	principal, ok := caller(c)
	if !ok {
		return auth.Principal{}, nil, false
	}
	id, ok := productID(c)
	if !ok {
		return auth.Principal{}, nil, false
	}

	product, err := h.storefront.LoadProduct(c.Request.Context(), principal, id)
	if err != nil {
		_ = c.Error(err)
		return auth.Principal{}, nil, false
	}
	return principal, product, true
}

// reviewPayload читает форму отзыва; пустая или нечисловая оценка - не указана
func reviewPayload(c *gin.Context) entity.NewProductReviewPayload {
	payload := entity.NewProductReviewPayload{Review: c.PostForm("review")}
	if rating, err := strconv.Atoi(strings.TrimSpace(c.PostForm("rating"))); err == nil {
		payload.Rating = &rating
	}
	return payload
}
