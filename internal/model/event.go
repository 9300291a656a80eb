package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderEventType string

const (
	EventOrderCreated      OrderEventType = "order.created"
	EventOrderRemoved      OrderEventType = "order.removed"
	EventOrderNotesUpdated OrderEventType = "order.notes_updated"
	EventItemAdded         OrderEventType = "order.item_added"
	EventItemUpdated       OrderEventType = "order.item_updated"
	EventItemRemoved       OrderEventType = "order.item_removed"
)

// OrderEvent describes a committed change to an order.
type OrderEvent struct {
	EventID     uuid.UUID
	Type        OrderEventType
	OrderNumber string
	StoreCode   string
	SKU         string
	Quantity    int
	OccurredAt  time.Time
}
