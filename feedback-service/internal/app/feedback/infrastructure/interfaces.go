package infrastructure

import (
	"context"

	"selmag/feedback-service/internal/app/feedback/entity"
)

// ProductEventHandler обрабатывает события каталога, прочитанные из Kafka
type ProductEventHandler interface {
	HandleProductEvent(ctx context.Context, event *entity.ProductEvent) error
}
