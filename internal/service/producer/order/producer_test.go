package ordproducer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/field-orders/internal/converter"
	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/platform/kafka"
)

type recordingProducer struct {
	key     []byte
	value   []byte
	headers []kafka.Header
	err     error
}

func (p *recordingProducer) Send(_ context.Context, key, value []byte, headers ...kafka.Header) error {
	p.key, p.value, p.headers = key, value, headers
	return p.err
}

func TestProduceOrderEvent(t *testing.T) {
	t.Parallel()

	rec := &recordingProducer{}
	svc := NewOrderProducer(rec, converter.NewKafkaConverter())

	err := svc.ProduceOrderEvent(context.Background(), model.OrderEvent{
		EventID:     uuid.New(),
		Type:        model.EventOrderCreated,
		OrderNumber: "PO20240101000",
		OccurredAt:  time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, "PO20240101000", string(rec.key))
	assert.Contains(t, string(rec.value), `"type":"order.created"`)
	require.Len(t, rec.headers, 1)
	assert.Equal(t, "event_type", rec.headers[0].Key)
	assert.Equal(t, "order.created", string(rec.headers[0].Value))
}

func TestProduceOrderEventSendError(t *testing.T) {
	t.Parallel()

	rec := &recordingProducer{err: errors.New("broker unavailable")}
	svc := NewOrderProducer(rec, converter.NewKafkaConverter())

	err := svc.ProduceOrderEvent(context.Background(), model.OrderEvent{EventID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, rec.err)
}
