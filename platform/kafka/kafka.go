package kafka

import (
	"context"
)

// Header is a single Kafka record header.
type Header struct {
	Key   string
	Value []byte
}

type Producer interface {
	Send(ctx context.Context, key, value []byte, headers ...Header) error
}

type nopProducer struct{}

// NopProducer drops every message. Used when Kafka is disabled.
func NopProducer() Producer { return nopProducer{} }

func (nopProducer) Send(context.Context, []byte, []byte, ...Header) error { return nil }
