package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/field-orders/internal/model"
)

func TestOrderEventRecord(t *testing.T) {
	t.Parallel()

	conv := NewKafkaConverter()
	ev := model.OrderEvent{
		EventID:     uuid.New(),
		Type:        model.EventItemAdded,
		OrderNumber: "PO20240101000",
		SKU:         "100",
		Quantity:    2,
		OccurredAt:  time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC),
	}

	payload, err := conv.OrderEventToRecord(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"eventId": "`+ev.EventID.String()+`",
		"type": "order.item_added",
		"orderNumber": "PO20240101000",
		"sku": "100",
		"quantity": 2,
		"occurredAt": "2024-01-01T10:05:00Z"
	}`, string(payload))

	back, err := conv.RecordToOrderEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, ev.EventID, back.EventID)
	assert.True(t, ev.OccurredAt.Equal(back.OccurredAt))

	_, err = conv.RecordToOrderEvent([]byte(`{"eventId":"nope"}`))
	require.Error(t, err)
}
