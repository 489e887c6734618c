package repository

import (
	"context"
	"fmt"
	"time"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productReviewsCollection = "product_reviews"

type productReviewRepository struct {
	collection *mongo.Collection
}

func NewProductReviewRepository(db *mongo.Database) ProductReviewRepository {
	return &productReviewRepository{
		collection: db.Collection(productReviewsCollection),
	}
}

// EnsureIndexes создаёт индекс (productId, createdAt) для выборки отзывов товара
func (r *productReviewRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("product_id_created_at_idx"),
	}

	if _, err := r.collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", productReviewsCollection, err)
	}
	return nil
}

func (r *productReviewRepository) Create(ctx context.Context, review *entity.ProductReview) error {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpInsert, productReviewsCollection).ObserveDuration()

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpInsert)
		return fmt.Errorf("failed to create product review: %w", err)
	}
	return nil
}

func (r *productReviewRepository) FindAllByProductID(ctx context.Context, productID int) ([]entity.ProductReview, error) {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpSelect, productReviewsCollection).ObserveDuration()

	filter := bson.M{"productId": productID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to find product reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []entity.ProductReview{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode product reviews: %w", err)
	}
	return reviews, nil
}

func (r *productReviewRepository) DeleteAllByProductID(ctx context.Context, productID int) (int64, error) {
	defer metrics.NewDbTimer(serviceName, metrics.DbOpDelete, productReviewsCollection).ObserveDuration()

	result, err := r.collection.DeleteMany(ctx, bson.M{"productId": productID})
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpDelete)
		return 0, fmt.Errorf("failed to delete product reviews: %w", err)
	}
	return result.DeletedCount, nil
}
