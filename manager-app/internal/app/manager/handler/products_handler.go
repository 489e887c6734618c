package handler

import (
	"net/http"

	"selmag/manager-app/internal/app/manager/entity"
	"selmag/manager-app/internal/app/manager/infrastructure"
	"selmag/pkg/problem"
	"selmag/pkg/webclient"

	"github.com/gin-gonic/gin"
)

// ProductsHandler - список товаров и создание нового
type ProductsHandler struct {
	products infrastructure.ProductsRestClient
}

func NewProductsHandler(products infrastructure.ProductsRestClient) *ProductsHandler {
	return &ProductsHandler{products: products}
}

func (h *ProductsHandler) ProductsListPage(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}

	filter := c.Query("filter")
	products, err := h.products.FindAllProducts(c.Request.Context(), principal, filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "catalogue/products/list", gin.H{
		"products": products,
		"filter":   filter,
	})
}

func (h *ProductsHandler) NewProductPage(c *gin.Context) {
	c.HTML(http.StatusOK, "catalogue/products/new_product", gin.H{})
}

// CreateProduct проверку полей оставляет Catalogue Service:
// его ошибки показываются на той же форме
func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	principal, ok := caller(c)
	if !ok {
		return
	}

	var payload entity.NewProductPayload
	if err := c.ShouldBind(&payload); err != nil {
		_ = c.Error(problem.MalformedPayload(err))
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), principal, payload.Title, payload.Details)
	if err != nil {
		if badRequest, ok := webclient.AsBadRequest(err); ok {
			c.HTML(http.StatusBadRequest, "catalogue/products/new_product", gin.H{
				"payload": payload,
				"errors":  badRequest.Errors,
			})
			return
		}
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, productPath(product.ID))
}
