package handler

import (
	"net/http"

	"selmag/manager-app/internal/app/manager/entity"
	"selmag/manager-app/internal/app/manager/infrastructure"
	"selmag/pkg/auth"
	"selmag/pkg/problem"
	"selmag/pkg/webclient"

	"github.com/gin-gonic/gin"
)

// ProductHandler - страницы /catalogue/products/:productId.
// Отсутствующий товар на любой из них даёт 404.
type ProductHandler struct {
	products infrastructure.ProductsRestClient
}

func NewProductHandler(products infrastructure.ProductsRestClient) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) ProductPage(c *gin.Context) {
	_, product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "catalogue/products/product", gin.H{"product": product})
}

func (h *ProductHandler) EditProductPage(c *gin.Context) {
	_, product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "catalogue/products/edit", gin.H{"product": product})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	principal, product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	var payload entity.UpdateProductPayload
	if err := c.ShouldBind(&payload); err != nil {
		_ = c.Error(problem.MalformedPayload(err))
		return
	}

	err := h.products.UpdateProduct(c.Request.Context(), principal, product.ID, payload.Title, payload.Details)
	if err != nil {
		if badRequest, ok := webclient.AsBadRequest(err); ok {
			c.HTML(http.StatusBadRequest, "catalogue/products/edit", gin.H{
				"product": product,
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

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	principal, product, ok := h.loadProduct(c)
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), principal, product.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/catalogue/products/list")
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

	product, err := h.products.FindProduct(c.Request.Context(), principal, id)
	if err != nil {
		_ = c.Error(err)
		return auth.Principal{}, nil, false
	}
	if product == nil {
		_ = c.Error(infrastructure.ErrProductNotFound)
		return auth.Principal{}, nil, false
	}
	return principal, product, true
}
