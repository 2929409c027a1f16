package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	c := NewCursor([]string{"a", "b"})
	assert.Equal(t, 2, c.Remaining())

	f, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "a", f)
	assert.Equal(t, 1, c.Position())

	f, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, "b", f)

	f, ok = c.Next()
	assert.False(t, ok)
	assert.Empty(t, f)
	assert.Zero(t, c.Remaining())

	c.Reset()
	f, _ = c.Next()
	assert.Equal(t, "a", f)
}

func TestPlayEmitsInOrder(t *testing.T) {
	var got []int
	var idx []int
	err := Play(context.Background(), []int{10, 20, 30}, time.Millisecond, func(i, f int) error {
		idx = append(idx, i)
		got = append(got, f)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)
	assert.Equal(t, []int{0, 1, 2}, idx)
}

func TestPlayEmpty(t *testing.T) {
	called := false
	err := Play(context.Background(), nil, time.Millisecond, func(int, int) error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.False(t, called)
}

func TestPlayInvalidInterval(t *testing.T) {
	err := Play(context.Background(), []int{1}, 0, func(int, int) error { return nil })
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestPlayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	frames := make([]int, 100)

	emitted := 0
	err := Play(ctx, frames, time.Millisecond, func(i, _ int) error {
		emitted++
		if i == 2 {
			cancel()
		}
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, emitted)
}

func TestPlayStopsOnEmitError(t *testing.T) {
	stop := errors.New("client gone")
	emitted := 0
	err := Play(context.Background(), []int{1, 2, 3}, time.Millisecond, func(i, _ int) error {
		emitted++
		if i == 1 {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, emitted)
}
