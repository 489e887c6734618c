package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProductsHandler - страницы каталога и избранного
type ProductsHandler struct {
	storefront StorefrontServiceInterface
}

func NewProductsHandler(storefront StorefrontServiceInterface) *ProductsHandler {
	return &ProductsHandler{storefront: storefront}
}

func (h *ProductsHandler) ProductsListPage(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}

	filter := c.Query("filter")
	products, err := h.storefront.FindProducts(c.Request.Context(), principal, filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "customer/products/list", gin.H{
		"products": products,
		"filter":   filter,
	})
}

func (h *ProductsHandler) FavouriteProductsPage(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}

	filter := c.Query("filter")
	products, err := h.storefront.FindFavouriteProducts(c.Request.Context(), principal, filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "customer/products/favourites", gin.H{
		"products": products,
		"filter":   filter,
	})
}
