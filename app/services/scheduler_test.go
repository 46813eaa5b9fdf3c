package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestStartScheduler_PrunesAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	n := NewNotifier(time.Millisecond)
	n.now = fixedClock(time.Now().Add(-time.Minute))
	n.Push("Section added successfully!")
	require.Equal(t, 1, n.Len())

	ctx, cancel := context.WithCancel(context.Background())
	done := StartScheduler(ctx, 5*time.Millisecond, n, zap.NewNop())

	assert.Eventually(t, func() bool { return n.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
