package orderlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNilClientIsSafe(t *testing.T) {
	l := New(nil, zap.NewNop().Sugar())

	assert.False(t, l.Enabled())

	// Both operations must be no-ops, not panics, when Redis is absent.
	l.Record(context.Background(), Entry{OrderID: "ord_1", SubmittedAt: time.Now()})
	assert.Empty(t, l.Recent(context.Background(), 10))
}

func TestNilLogIsSafe(t *testing.T) {
	var l *Log
	assert.False(t, l.Enabled())
	assert.Empty(t, l.Recent(context.Background(), 5))
}
