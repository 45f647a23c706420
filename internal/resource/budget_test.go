package resource

import (
	"context"
	"sync"
	"time"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_Limit(t *testing.T) {
	b := NewBudget(100)
	assert.Equal(t, int64(100), b.Limit())

	require.NoError(t, b.Acquire(50))
	assert.Equal(t, int64(50), b.InUse())

	require.NoError(t, b.Acquire(40))
	assert.Equal(t, int64(90), b.InUse())
	assert.Equal(t, int64(10), b.Available())

	err := b.Acquire(20)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, int64(90), b.InUse(), "failed acquire must not reserve")

	b.Release(40)
	assert.Equal(t, int64(50), b.InUse())
	require.NoError(t, b.Acquire(20))
	assert.Equal(t, int64(90), b.Peak())
}

func TestBudget_Unlimited(t *testing.T) {
	b := NewBudget(0)
	require.NoError(t, b.Acquire(1<<40))
	assert.Equal(t, int64(1<<40), b.InUse())
	assert.Equal(t, int64(-1), b.Available())
	b.Release(1 << 40)
	assert.Equal(t, int64(0), b.InUse())
}

func TestBudget_NilSafe(t *testing.T) {
	var b *Budget
	assert.NoError(t, b.Acquire(10))
	b.Release(10)
	assert.Equal(t, int64(0), b.InUse())
	assert.Equal(t, int64(0), b.Peak())
	assert.Equal(t, int64(0), b.Limit())
	assert.Equal(t, int64(-1), b.Available())
}

func TestBudget_NonPositive(t *testing.T) {
	b := NewBudget(10)
	assert.NoError(t, b.Acquire(0))
	assert.NoError(t, b.Acquire(-5))
	b.Release(-5)
	assert.Equal(t, int64(0), b.InUse())
}

func TestBudget_Concurrent(t *testing.T) {
	b := NewBudget(1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := b.Acquire(10); err == nil {
					b.Release(10)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), b.InUse())
	assert.LessOrEqual(t, b.Peak(), int64(1000))
}

func TestBudget_Wait(t *testing.T) {
	b := NewBudget(10)
	require.NoError(t, b.Acquire(8))

	done := make(chan error, 1)
	go func() {
		done <- b.Wait(context.Background(), 5)
	}()

	select {
	case err := <-done:
		t.Fatalf("Wait returned early: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	b.Release(8)
	require.NoError(t, <-done)
	assert.Equal(t, int64(5), b.InUse())
	assert.Equal(t, int64(8), b.Peak())
}

func TestBudget_WaitErrors(t *testing.T) {
	b := NewBudget(10)
	assert.ErrorIs(t, b.Wait(context.Background(), 11), ErrBudgetExceeded)

	require.NoError(t, b.Acquire(10))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, b.Wait(ctx, 1), context.DeadlineExceeded)
	assert.Equal(t, int64(10), b.InUse())

	var nilBudget *Budget
	assert.NoError(t, nilBudget.Wait(context.Background(), 100))
}

func TestBudget_WaitNothingToReserve(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var nilBudget *Budget
	assert.NoError(t, nilBudget.Wait(ctx, 100))

	b := NewBudget(10)
	assert.NoError(t, b.Wait(ctx, 0))
	assert.NoError(t, b.Wait(ctx, -1))
	assert.Equal(t, int64(0), b.InUse())
}
