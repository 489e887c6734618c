package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"selmag/feedback-service/internal/app/feedback/entity"
	"selmag/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductEventHandler struct {
	mock.Mock
}

func (m *MockProductEventHandler) HandleProductEvent(ctx context.Context, event *entity.ProductEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newTestConsumer(handler *MockProductEventHandler) *KafkaConsumer {
	return &KafkaConsumer{
		handler: handler,
		topic:   "product_events",
		groupID: "feedback-service",
		log:     logger.Component("kafka-consumer"),
	}
}

func TestNewKafkaConsumer(t *testing.T) {
	handler := new(MockProductEventHandler)

	consumer := NewKafkaConsumer([]string{"localhost:9092"}, "product_events", "feedback-service", time.Second, handler)

	assert.NotNil(t, consumer.reader)
	assert.Equal(t, "product_events", consumer.reader.Config().Topic)
	assert.Equal(t, "feedback-service", consumer.reader.Config().GroupID)

	consumer.reader.Close()
}

func TestProcessMessage_DeletedEvent(t *testing.T) {
	handler := new(MockProductEventHandler)
	consumer := newTestConsumer(handler)

	value, err := json.Marshal(entity.ProductEvent{EventType: entity.EventProductDeleted, ProductID: 7, Timestamp: time.Now()})
	require.NoError(t, err)
	handler.On("HandleProductEvent", mock.Anything, mock.MatchedBy(func(e *entity.ProductEvent) bool {
		return e.EventType == entity.EventProductDeleted && e.ProductID == 7
	})).Return(nil)

	err = consumer.processMessage(context.Background(), kafka.Message{Key: []byte("7"), Value: value})

	assert.NoError(t, err)
	handler.AssertExpectations(t)
}

func TestProcessMessage_HandlerErrorIsReturned(t *testing.T) {
	handler := new(MockProductEventHandler)
	consumer := newTestConsumer(handler)
	handler.On("HandleProductEvent", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	err := consumer.processMessage(context.Background(), kafka.Message{
		Value: []byte(`{"event_type":"PRODUCT_DELETED","product_id":1}`),
	})

	assert.Error(t, err)
}

func TestProcessMessage_MalformedIsSkipped(t *testing.T) {
	handler := new(MockProductEventHandler)
	consumer := newTestConsumer(handler)

	err := consumer.processMessage(context.Background(), kafka.Message{Value: []byte("not json")})

	assert.NoError(t, err)
	handler.AssertNotCalled(t, "HandleProductEvent", mock.Anything, mock.Anything)
}
