package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelClaim(t *testing.T) {
	pool := &WorkerPool{
		activeClaims: make(map[string]context.CancelFunc),
	}

	// Register a claim
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterClaim("q-1", cancel)

	// Cancel should succeed for registered claim
	assert.True(t, pool.CancelClaim("q-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown question
	assert.False(t, pool.CancelClaim("unknown"))
}

func TestPoolUnregisterClaim(t *testing.T) {
	pool := &WorkerPool{
		activeClaims: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterClaim("q-1", cancel)

	// Should find it
	assert.True(t, pool.CancelClaim("q-1"))

	// Unregister
	pool.UnregisterClaim("q-1")

	// Should not find it anymore
	assert.False(t, pool.CancelClaim("q-1"))
}

func TestPoolGetActiveClaimIDs(t *testing.T) {
	pool := &WorkerPool{
		activeClaims: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.getActiveClaimIDs()
	assert.Empty(t, ids)

	// Register claims
	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterClaim("q-a", cancel1)
	pool.RegisterClaim("q-b", cancel2)

	ids = pool.getActiveClaimIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "q-a")
	assert.Contains(t, ids, "q-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:       make(chan struct{}),
		activeClaims: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}
