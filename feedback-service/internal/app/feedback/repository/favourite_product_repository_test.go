package repository

import (
	"context"
	"testing"

	"selmag/feedback-service/internal/app/feedback/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const favouritesNamespace = "feedback.favourite_products"

func TestFavouriteProductRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Create", func(mt *mtest.T) {
		repo := NewFavouriteProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		favourite := &entity.FavouriteProduct{ID: "fe87eef6-cbd7-11ee-aeb6-275dac91de02", ProductID: 1, UserID: "user-1"}
		err := repo.Create(context.Background(), favourite)

		require.NoError(mt, err)
		assert.False(mt, favourite.CreatedAt.IsZero())
	})

	mt.Run("Create duplicate pair", func(mt *mtest.T) {
		repo := NewFavouriteProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: feedback.favourite_products index: product_id_user_id_uniq",
		}))

		err := repo.Create(context.Background(), &entity.FavouriteProduct{ID: "id", ProductID: 1, UserID: "user-1"})

		assert.ErrorIs(mt, err, ErrDuplicateFavourite)
	})

	mt.Run("FindByProductIDAndUserID found", func(mt *mtest.T) {
		repo := NewFavouriteProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, favouritesNamespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "bd7779c2-cb05-11ee-b5f3-df46a1249898"},
			{Key: "productId", Value: 1},
			{Key: "userId", Value: "user-1"},
		}))

		favourite, err := repo.FindByProductIDAndUserID(context.Background(), 1, "user-1")

		require.NoError(mt, err)
		require.NotNil(mt, favourite)
		assert.Equal(mt, "bd7779c2-cb05-11ee-b5f3-df46a1249898", favourite.ID)
		assert.Equal(mt, 1, favourite.ProductID)
		assert.Equal(mt, "user-1", favourite.UserID)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(mt, "user-1", filter.Lookup("userId").StringValue())
	})

	mt.Run("FindByProductIDAndUserID absent", func(mt *mtest.T) {
		repo := NewFavouriteProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, favouritesNamespace, mtest.FirstBatch))

		favourite, err := repo.FindByProductIDAndUserID(context.Background(), 2, "user-1")

		assert.NoError(mt, err)
		assert.Nil(mt, favourite)
	})

	mt.Run("FindAllByUserID", func(mt *mtest.T) {
		repo := NewFavouriteProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, favouritesNamespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "a"}, {Key: "productId", Value: 1}, {Key: "userId", Value: "user-1"}},
			bson.D{{Key: "_id", Value: "b"}, {Key: "productId", Value: 3}, {Key: "userId", Value: "user-1"}},
		))

		favourites, err := repo.FindAllByUserID(context.Background(), "user-1")

		require.NoError(mt, err)
		require.Len(mt, favourites, 2)
		assert.Equal(mt, 1, favourites[0].ProductID)
		assert.Equal(mt, 3, favourites[1].ProductID)
	})

	mt.Run("DeleteByProductIDAndUserID absent is not an error", func(mt *mtest.T) {
		repo := NewFavouriteProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.DeleteByProductIDAndUserID(context.Background(), 5, "user-1")

		assert.NoError(mt, err)
		assert.Equal(mt, "delete", mt.GetStartedEvent().CommandName)
	})

	mt.Run("DeleteAllByProductID", func(mt *mtest.T) {
		repo := NewFavouriteProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		deleted, err := repo.DeleteAllByProductID(context.Background(), 1)

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), deleted)
	})

	mt.Run("EnsureIndexes", func(mt *mtest.T) {
		repo := NewFavouriteProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.EnsureIndexes(context.Background()))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		indexes, err := started.Command.Lookup("indexes").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, indexes, 2)
		assert.True(mt, indexes[0].Document().Lookup("unique").Boolean())
	})
}
