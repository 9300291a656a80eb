package logger

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(SetNopLogger)

	require.NoError(t, Init("debug", true))
	require.NoError(t, Init("info", false))

	err := Init("loud", true)
	require.Error(t, err)
	assert.ErrorContains(t, err, "loud")
}

func TestWithRequestID(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	fields := withRequestID(ctx, []Field{String("k", "v")})
	require.Len(t, fields, 2)
	assert.Equal(t, "request_id", fields[1].Key)
	assert.Equal(t, "req-1", fields[1].String)

	assert.Len(t, withRequestID(context.Background(), nil), 0)
}
