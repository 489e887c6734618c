package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"selmag/customer-app/internal/app/customer/entity"
	"selmag/pkg/auth"
	"selmag/pkg/webclient"
)

const productReviewsPath = "/feedback-api/product-reviews"

type newProductReviewRequest struct {
	ProductID int    `json:"productId"`
	Rating    *int   `json:"rating"`
	Review    string `json:"review"`
}

// ProductReviewsClient работает с отзывами Feedback Service
type ProductReviewsClient struct {
	client *webclient.Client
}

func NewProductReviewsClient(client *webclient.Client) *ProductReviewsClient {
	return &ProductReviewsClient{client: client}
}

func (c *ProductReviewsClient) FindProductReviewsByProductID(ctx context.Context, caller auth.Principal, productID int) ([]entity.ProductReview, error) {
	request := webclient.Request{
		Method: http.MethodGet,
		Path:   productReviewsPath + "/by-product-id/" + strconv.Itoa(productID),
	}

	reviews := []entity.ProductReview{}
	if err := c.client.Do(ctx, caller, request, &reviews); err != nil {
		return nil, fmt.Errorf("failed to find reviews of product %d: %w", productID, err)
	}
	return reviews, nil
}

// CreateProductReview возвращает *webclient.BadRequestError, если Feedback Service отклонил отзыв
func (c *ProductReviewsClient) CreateProductReview(ctx context.Context, caller auth.Principal, productID int, rating *int, review string) (*entity.ProductReview, error) {
	request := webclient.Request{
		Method: http.MethodPost,
		Path:   productReviewsPath,
		Body: newProductReviewRequest{
			ProductID: productID,
			Rating:    rating,
			Review:    review,
		},
	}

	var created entity.ProductReview
	if err := c.client.Do(ctx, caller, request, &created); err != nil {
		return nil, fmt.Errorf("failed to create product review: %w", err)
	}
	return &created, nil
}
