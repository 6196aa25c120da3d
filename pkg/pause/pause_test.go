package pause

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWait_ReturnsImmediatelyWhenLowered(t *testing.T) {
	l := New()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, l.Wait(ctx))
}

func TestWait_BlocksUntilLowered(t *testing.T) {
	l := New()
	l.Raise()
	assert.True(t, l.Raised())

	done := make(chan struct{})
	go func() {
		_ = l.Wait(context.Background())
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before Lower was called")
	case <-time.After(50 * time.Millisecond):
	}

	l.Lower()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Lower")
	}
	assert.False(t, l.Raised())
}

func TestWait_RespectsContextCancellation(t *testing.T) {
	l := New()
	l.Raise()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Wait(ctx), context.Canceled)
}

func TestRaiseLower_Idempotent(t *testing.T) {
	l := New()
	l.Raise()
	l.Raise()
	assert.True(t, l.Raised())
	l.Lower()
	l.Lower()
	assert.False(t, l.Raised())
}

func TestWait_BroadcastsToAllWaiters(t *testing.T) {
	l := New()
	l.Raise()

	const n = 10
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func() {
			_ = l.Wait(context.Background())
			done <- struct{}{}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	l.Lower()

	for i := 0; i < n; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("not all waiters woke up")
		}
	}
}
