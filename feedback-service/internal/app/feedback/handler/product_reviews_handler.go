package handler

import (
	"net/http"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/pkg/problem"
	"selmag/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ProductReviewsHandler обслуживает /feedback-api/product-reviews
type ProductReviewsHandler struct {
	reviewsService ProductReviewsServiceInterface
	validator      *validator.Validate
}

func NewProductReviewsHandler(reviewsService ProductReviewsServiceInterface) *ProductReviewsHandler {
	return &ProductReviewsHandler{
		reviewsService: reviewsService,
		validator:      validation.New(),
	}
}

func (h *ProductReviewsHandler) FindProductReviewsByProductID(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	reviews, err := h.reviewsService.FindProductReviewsByProduct(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if reviews == nil {
		reviews = []entity.ProductReview{}
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ProductReviewsHandler) CreateProductReview(c *gin.Context) {
	user, ok := userID(c)
	if !ok {
		return
	}

	var payload entity.NewProductReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(problem.MalformedPayload(err))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		_ = c.Error(err)
		return
	}

	review, err := h.reviewsService.CreateProductReview(
		c.Request.Context(), *payload.ProductID, *payload.Rating, payload.Review, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", location(c, "/feedback-api/product-reviews/"+review.ID))
	c.JSON(http.StatusCreated, review)
}
