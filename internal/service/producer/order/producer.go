package ordproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/platform/kafka"
)

const eventTypeHeader = "event_type"

type Converter interface {
	OrderEventToRecord(m model.OrderEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewOrderProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) ProduceOrderEvent(ctx context.Context, event model.OrderEvent) error {
	payload, err := s.conv.OrderEventToRecord(event)
	if err != nil {
		return fmt.Errorf("converter order_event_to_record error: %w", err)
	}

	header := kafka.Header{Key: eventTypeHeader, Value: []byte(event.Type)}
	if err := s.producer.Send(ctx, []byte(event.OrderNumber), payload, header); err != nil {
		return fmt.Errorf("producer to order.events topic error: %w", err)
	}

	return nil
}
