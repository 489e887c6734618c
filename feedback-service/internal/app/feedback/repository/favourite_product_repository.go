package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const favouriteProductsCollection = "favourite_products"

type favouriteProductRepository struct {
	collection *mongo.Collection
}

func NewFavouriteProductRepository(db *mongo.Database) FavouriteProductRepository {
	return &favouriteProductRepository{
		collection: db.Collection(favouriteProductsCollection),
	}
}

// EnsureIndexes создаёт уникальный индекс (productId, userId) и индекс по userId.
// Уникальность избранного обеспечивает хранилище, а не проверка перед вставкой.
func (r *favouriteProductRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "productId", Value: 1},
				{Key: "userId", Value: 1},
			},
			Options: options.Index().SetName("product_id_user_id_uniq").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("user_id_created_at_idx"),
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", favouriteProductsCollection, err)
	}
	return nil
}

func (r *favouriteProductRepository) Create(ctx context.Context, favourite *entity.FavouriteProduct) error {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpInsert, favouriteProductsCollection).ObserveDuration()

	if favourite.CreatedAt.IsZero() {
		favourite.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, favourite); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateFavourite
		}
		metrics.RecordDbError(serviceName, metrics.DbOpInsert)
		return fmt.Errorf("failed to create favourite product: %w", err)
	}
	return nil
}

func (r *favouriteProductRepository) FindByProductIDAndUserID(ctx context.Context, productID int, userID string) (*entity.FavouriteProduct, error) {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpSelect, favouriteProductsCollection).ObserveDuration()

	filter := bson.M{"productId": productID, "userId": userID}

	var favourite entity.FavouriteProduct
	if err := r.collection.FindOne(ctx, filter).Decode(&favourite); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to find favourite product: %w", err)
	}
	return &favourite, nil
}

func (r *favouriteProductRepository) FindAllByUserID(ctx context.Context, userID string) ([]entity.FavouriteProduct, error) {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpSelect, favouriteProductsCollection).ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to find favourite products: %w", err)
	}
	defer cursor.Close(ctx)

	favourites := []entity.FavouriteProduct{}
	if err := cursor.All(ctx, &favourites); err != nil {
		return nil, fmt.Errorf("failed to decode favourite products: %w", err)
	}
	return favourites, nil
}

// DeleteByProductIDAndUserID не считает ошибкой отсутствие записи
func (r *favouriteProductRepository) DeleteByProductIDAndUserID(ctx context.Context, productID int, userID string) error {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpDelete, favouriteProductsCollection).ObserveDuration()

	filter := bson.M{"productId": productID, "userId": userID}
	if _, err := r.collection.DeleteOne(ctx, filter); err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpDelete)
		return fmt.Errorf("failed to delete favourite product: %w", err)
	}
	return nil
}

func (r *favouriteProductRepository) DeleteAllByProductID(ctx context.Context, productID int) (int64, error) {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpDelete, favouriteProductsCollection).ObserveDuration()

	result, err := r.collection.DeleteMany(ctx, bson.M{"productId": productID})
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpDelete)
		return 0, fmt.Errorf("failed to delete favourite products: %w", err)
	}
	return result.DeletedCount, nil
}
