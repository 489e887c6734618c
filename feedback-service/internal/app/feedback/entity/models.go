package entity

import "time"

// ProductReview - отзыв пользователя о товаре, коллекция product_reviews
type ProductReview struct {
	ID        string    `json:"id" bson:"_id"`
	ProductID int       `json:"productId" bson:"productId"` // id товара из Catalogue Service
	Rating    int       `json:"rating" bson:"rating"`       // Оценка от 1 до 5
	Review    string    `json:"review" bson:"review"`
	UserID    string    `json:"userId" bson:"userId"` // subject токена автора
	CreatedAt time.Time `json:"-" bson:"createdAt"`
}

// FavouriteProduct - товар в избранном пользователя, коллекция favourite_products.
// Пара (productId, userId) уникальна.
type FavouriteProduct struct {
	ID        string    `json:"id" bson:"_id"`
	ProductID int       `json:"productId" bson:"productId"`
	UserID    string    `json:"userId" bson:"userId"`
	CreatedAt time.Time `json:"-" bson:"createdAt"`
}

const EventProductDeleted = "PRODUCT_DELETED"

// ProductEvent - событие каталога из топика product_events
type ProductEvent struct {
	EventType string    `json:"event_type"`
	ProductID int       `json:"product_id"`
	Title     string    `json:"title,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
