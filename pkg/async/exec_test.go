package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/certresolve/pkg/async"
)

func TestAsyncAwait(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := async.Async(ctx, 21, func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})

	result, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestAsyncError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	wantErr := errors.New("boom")
	future := async.Async(ctx, "x", func(ctx context.Context, s string) (string, error) {
		return "", wantErr
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, wantErr)
}

func TestAsyncPreCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	future := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
		ran = true
		return 1, nil
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("completes in time", func(t *testing.T) {
		t.Parallel()
		future := async.Async(ctx, "fast", func(ctx context.Context, s string) (string, error) {
			return s, nil
		})

		result, err := future.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, "fast", result)
	})

	t.Run("times out", func(t *testing.T) {
		t.Parallel()
		block := make(chan struct{})
		defer close(block)

		future := async.Async(ctx, "slow", func(ctx context.Context, s string) (string, error) {
			<-block
			return s, nil
		})

		_, err := future.AwaitWithTimeout(20 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
	})
}

func TestIsComplete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	block := make(chan struct{})
	future := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
		<-block
		return 0, nil
	})

	assert.False(t, future.IsComplete())
	close(block)

	_, err := future.Await()
	require.NoError(t, err)
	assert.True(t, future.IsComplete())
}

func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futures := make([]*async.Future[int], 5)
	for i := range futures {
		futures[i] = async.Async(ctx, i, func(ctx context.Context, n int) (int, error) {
			return n * n, nil
		})
	}

	results, err := async.WaitAll(futures...)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, results)
}

func TestWaitAllPropagatesFirstError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	wantErr := errors.New("second failed")
	futures := []*async.Future[int]{
		async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) { return n, nil }),
		async.Async(ctx, 2, func(ctx context.Context, n int) (int, error) { return 0, wantErr }),
		async.Async(ctx, 3, func(ctx context.Context, n int) (int, error) { return n, nil }),
	}

	results, err := async.WaitAll(futures...)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, []int{1, 0, 3}, results)
}
