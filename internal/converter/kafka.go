package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/field-orders/internal/model"
)

type orderEventRecord struct {
	EventID     string `json:"eventId"`
	Type        string `json:"type"`
	OrderNumber string `json:"orderNumber"`
	StoreCode   string `json:"storeCode,omitempty"`
	SKU         string `json:"sku,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	OccurredAt  string `json:"occurredAt"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) OrderEventToRecord(m model.OrderEvent) ([]byte, error) {
	payload, err := json.Marshal(orderEventRecord{
		EventID:     m.EventID.String(),
		Type:        string(m.Type),
		OrderNumber: m.OrderNumber,
		StoreCode:   m.StoreCode,
		SKU:         m.SKU,
		Quantity:    m.Quantity,
		OccurredAt:  m.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order event: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) RecordToOrderEvent(data []byte) (model.OrderEvent, error) {
	var rec orderEventRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.OrderEvent{}, fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	id, err := uuid.Parse(rec.EventID)
	if err != nil {
		return model.OrderEvent{}, fmt.Errorf("parse event id: %w", err)
	}
	at, err := time.Parse(time.RFC3339Nano, rec.OccurredAt)
	if err != nil {
		return model.OrderEvent{}, fmt.Errorf("parse occurred at: %w", err)
	}

	return model.OrderEvent{
		EventID:     id,
		Type:        model.OrderEventType(rec.Type),
		OrderNumber: rec.OrderNumber,
		StoreCode:   rec.StoreCode,
		SKU:         rec.SKU,
		Quantity:    rec.Quantity,
		OccurredAt:  at,
	}, nil
}
