package handler

import (
	"net/http"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/pkg/problem"
	"selmag/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FavouriteProductsHandler обслуживает /feedback-api/favourite-products.
// Все операции выполняются над избранным вызывающего пользователя.
type FavouriteProductsHandler struct {
	favouritesService FavouriteProductsServiceInterface
	validator         *validator.Validate
}

func NewFavouriteProductsHandler(favouritesService FavouriteProductsServiceInterface) *FavouriteProductsHandler {
	return &FavouriteProductsHandler{
		favouritesService: favouritesService,
		validator:         validation.New(),
	}
}

func (h *FavouriteProductsHandler) FindFavouriteProducts(c *gin.Context) {
	user, ok := userID(c)
	if !ok {
		return
	}

	favourites, err := h.favouritesService.FindFavouriteProducts(c.Request.Context(), user)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if favourites == nil {
		favourites = []entity.FavouriteProduct{}
	}

	c.JSON(http.StatusOK, favourites)
}

func (h *FavouriteProductsHandler) FindFavouriteProductByProductID(c *gin.Context) {
	user, ok := userID(c)
	if !ok {
		return
	}
	id, ok := productID(c)
	if !ok {
		return
	}

	favourite, err := h.favouritesService.FindFavouriteProductByProduct(c.Request.Context(), id, user)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if favourite == nil {
		_ = c.Error(problem.NotFound(KeyFavouriteProductNotFound))
		return
	}

	c.JSON(http.StatusOK, favourite)
}

func (h *FavouriteProductsHandler) AddProductToFavourites(c *gin.Context) {
	user, ok := userID(c)
	if !ok {
		return
	}

	var payload entity.NewFavouriteProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(problem.MalformedPayload(err))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		_ = c.Error(err)
		return
	}

	favourite, err := h.favouritesService.AddProductToFavourites(c.Request.Context(), *payload.ProductID, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", location(c, "/feedback-api/favourite-products/"+favourite.ID))
	c.JSON(http.StatusCreated, favourite)
}

// RemoveProductFromFavourites всегда отвечает 204
func (h *FavouriteProductsHandler) RemoveProductFromFavourites(c *gin.Context) {
	user, ok := userID(c)
	if !ok {
		return
	}
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := h.favouritesService.RemoveProductFromFavourites(c.Request.Context(), id, user); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
