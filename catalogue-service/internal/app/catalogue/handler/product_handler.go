package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"selmag/catalogue-service/internal/app/catalogue/entity"
	"selmag/catalogue-service/internal/app/catalogue/service"
	"selmag/pkg/problem"
	"selmag/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// KeyProductNotFound - ключ сообщения об отсутствующем товаре
const KeyProductNotFound = "catalogue.errors.product.not_found"

type ProductServiceInterface interface {
	FindAllProducts(ctx context.Context, filter string) ([]entity.Product, error)
	CreateProduct(ctx context.Context, title, details string) (*entity.Product, error)
	FindProduct(ctx context.Context, id int) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int, title, details string) error
	DeleteProduct(ctx context.Context, id int) error
}

// ProductHandler обслуживает /catalogue-api/products.
// Ошибки передаются в c.Error и оформляются problem.Middleware.
type ProductHandler struct {
	productService ProductServiceInterface
	validator      *validator.Validate
}

func NewProductHandler(productService ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validation.New(),
	}
}

func (h *ProductHandler) FindProducts(c *gin.Context) {
	products, err := h.productService.FindAllProducts(c.Request.Context(), c.Query("filter"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if products == nil {
		products = []entity.Product{}
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload entity.NewProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(problem.MalformedPayload(err))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		_ = c.Error(err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), payload.Title, payload.Details)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", location(c, "/catalogue-api/products/"+strconv.Itoa(product.ID)))
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) FindProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	product, err := h.productService.FindProduct(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if product == nil {
		_ = c.Error(problem.NotFound(KeyProductNotFound))
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var payload entity.UpdateProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(problem.MalformedPayload(err))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		_ = c.Error(err)
		return
	}

	err := h.productService.UpdateProduct(c.Request.Context(), id, payload.Title, payload.Details)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			_ = c.Error(problem.NotFound(KeyProductNotFound))
			return
		}
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteProduct всегда отвечает 204, даже если товара не было
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// productID разбирает :productId; нечисловой id означает отсутствующий ресурс
func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		_ = c.Error(problem.NotFound(KeyProductNotFound))
		return 0, false
	}
	return id, true
}

// location строит абсолютный URI созданного ресурса с учётом прокси
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
