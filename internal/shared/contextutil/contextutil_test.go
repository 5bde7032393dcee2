package contextutil_test

import (
	"context"
	"testing"

	"hradmin/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", contextutil.GetRequestID(ctx))
	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
}

func TestLoginID(t *testing.T) {
	ctx := contextutil.WithLoginID(context.Background(), 7)

	assert.Equal(t, uint(7), contextutil.GetLoginID(ctx))
	// 0 berarti tidak terautentikasi
	assert.Equal(t, uint(0), contextutil.GetLoginID(context.Background()))
}

func TestLogger(t *testing.T) {
	scoped := zap.NewNop().Named("scoped")
	fallback := zap.NewNop().Named("fallback")

	ctx := contextutil.WithLogger(context.Background(), scoped)

	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}
