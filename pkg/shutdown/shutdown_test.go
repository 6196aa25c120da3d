package shutdown

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoordinator_RunsRestoreOnceAfterCancel(t *testing.T) {
	var calls atomic.Int32
	coord := New(func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		coord.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestCoordinator_NilRestoreIsSafe(t *testing.T) {
	coord := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NotPanics(t, func() { coord.Run(ctx) })
}

func TestContextWithSignal_CancelReleasesHandler(t *testing.T) {
	ctx, cancel := ContextWithSignal(context.Background())
	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled")
	}
}
