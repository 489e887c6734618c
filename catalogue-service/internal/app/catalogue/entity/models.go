package entity

import "time"

// Product - товар каталога, таблица catalogue.t_product
type Product struct {
	ID      int    `json:"id" gorm:"primaryKey;column:id"`
	Title   string `json:"title" gorm:"column:c_title"`
	Details string `json:"details" gorm:"column:c_details"`
}

func (Product) TableName() string {
	return "catalogue.t_product"
}

const (
	EventProductCreated = "PRODUCT_CREATED"
	EventProductUpdated = "PRODUCT_UPDATED"
	EventProductDeleted = "PRODUCT_DELETED"
)

// ProductEvent - событие об изменении товара для топика product_events
type ProductEvent struct {
	EventType string    `json:"event_type"`
	ProductID int       `json:"product_id"`
	Title     string    `json:"title,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
