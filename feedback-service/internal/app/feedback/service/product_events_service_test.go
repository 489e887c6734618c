package service

import (
	"context"
	"errors"
	"testing"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/feedback-service/internal/app/feedback/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleProductEvent_DeletedCleansUp(t *testing.T) {
	reviews := new(mocks.MockProductReviewRepository)
	favourites := new(mocks.MockFavouriteProductRepository)
	svc := NewProductEventsService(reviews, favourites)
	reviews.On("DeleteAllByProductID", mock.Anything, 1).Return(int64(2), nil)
	favourites.On("DeleteAllByProductID", mock.Anything, 1).Return(int64(1), nil)

	err := svc.HandleProductEvent(context.Background(), &entity.ProductEvent{
		EventType: entity.EventProductDeleted,
		ProductID: 1,
	})

	assert.NoError(t, err)
	reviews.AssertExpectations(t)
	favourites.AssertExpectations(t)
}

func TestHandleProductEvent_IgnoresOtherEvents(t *testing.T) {
	reviews := new(mocks.MockProductReviewRepository)
	favourites := new(mocks.MockFavouriteProductRepository)
	svc := NewProductEventsService(reviews, favourites)

	err := svc.HandleProductEvent(context.Background(), &entity.ProductEvent{
		EventType: "PRODUCT_UPDATED",
		ProductID: 1,
	})

	assert.NoError(t, err)
	reviews.AssertNotCalled(t, "DeleteAllByProductID", mock.Anything, mock.Anything)
}

func TestHandleProductDeleted_ReviewsFailureStops(t *testing.T) {
	reviews := new(mocks.MockProductReviewRepository)
	favourites := new(mocks.MockFavouriteProductRepository)
	svc := NewProductEventsService(reviews, favourites)
	reviews.On("DeleteAllByProductID", mock.Anything, 1).Return(int64(0), errors.New("mongo down"))

	err := svc.HandleProductDeleted(context.Background(), 1)

	assert.Error(t, err)
	favourites.AssertNotCalled(t, "DeleteAllByProductID", mock.Anything, mock.Anything)
}
