package bitarray

import (
	"context"
	"sync"
	"time"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	t.Run("GetIsClear", func(t *testing.T) {
		p, err := NewPool(130)
		require.NoError(t, err)
		assert.Equal(t, 130, p.Len())

		b, err := p.Get()
		require.NoError(t, err)
		assert.True(t, b.Owned())
		assert.Equal(t, 130, b.Len())
		b.SetAll()
		b.Release()

		b, err = p.Get()
		require.NoError(t, err)
		defer b.Release()
		assert.True(t, b.IsAllClear())
		assert.Equal(t, 0, b.Count())
	})

	t.Run("Budget", func(t *testing.T) {
		budget := NewBudget(4)
		p, err := NewPool(128, WithBudget(budget))
		require.NoError(t, err)

		a, err := p.Get()
		require.NoError(t, err)
		b, err := p.Get()
		require.NoError(t, err)
		assert.Equal(t, int64(4), budget.InUse())

		_, err = p.Get()
		assert.ErrorIs(t, err, ErrAllocationFailure)
		assert.ErrorIs(t, err, ErrBudgetExceeded)

		a.Release()
		a.Release()
		assert.Equal(t, int64(2), budget.InUse())

		c, err := p.Get()
		require.NoError(t, err)
		b.Release()
		c.Release()
		assert.Equal(t, int64(0), budget.InUse())
	})

	t.Run("Metrics", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		p, err := NewPool(64, WithMetricsCollector(mc))
		require.NoError(t, err)

		for range 3 {
			b, err := p.Get()
			require.NoError(t, err)
			b.Release()
		}
		assert.Equal(t, int64(3), mc.AllocCount.Load())
		assert.Equal(t, int64(3), mc.ReleaseCount.Load())
		assert.Equal(t, int64(0), mc.LiveWords())
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := NewPool(-1)
		assert.ErrorIs(t, err, ErrAllocationFailure)
	})

	t.Run("Empty", func(t *testing.T) {
		p, err := NewPool(0)
		require.NoError(t, err)
		b, err := p.Get()
		require.NoError(t, err)
		assert.Equal(t, 0, b.ArraySize())
		b.Release()
	})
}

func TestPool_GetContext(t *testing.T) {
	budget := NewBudget(2)
	p, err := NewPool(128, WithBudget(budget))
	require.NoError(t, err)

	held, err := p.Get()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = p.GetContext(ctx)
	assert.ErrorIs(t, err, ErrAllocationFailure)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	got := make(chan *Bitset, 1)
	go func() {
		b, err := p.GetContext(context.Background())
		assert.NoError(t, err)
		got <- b
	}()

	held.Release()
	b := <-got
	require.NotNil(t, b)
	assert.True(t, b.IsAllClear())
	b.Release()
	assert.Equal(t, int64(0), budget.InUse())
}

func TestPool_GetContextUnlimited(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, err := NewPool(128)
	require.NoError(t, err)

	b, err := p.GetContext(ctx)
	require.NoError(t, err)
	assert.True(t, b.IsAllClear())
	b.Release()
}

func TestPool_Concurrent(t *testing.T) {
	budget := NewBudget(0)
	p, err := NewPool(1000, WithBudget(budget))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				b, err := p.Get()
				if !assert.NoError(t, err) {
					return
				}
				assert.True(t, b.IsAllClear())
				assert.NoError(t, b.Set((g*100+i)%1000))
				assert.Equal(t, 1, b.Count())
				b.Release()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(0), budget.InUse())
}

func BenchmarkPool_GetRelease(b *testing.B) {
	p, err := NewPool(1 << 16)
	require.NoError(b, err)

	b.ReportAllocs()
	for b.Loop() {
		bs, _ := p.Get()
		_ = bs.Set(42)
		bs.Release()
	}
}
