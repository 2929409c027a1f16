// Package replay steps through precomputed logs (wall removals, explored
// cells) one frame at a time. The logs themselves are immutable; callers own
// the cursor and decide the pace.
package replay

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidInterval is returned by Play for a non-positive interval.
var ErrInvalidInterval = errors.New("replay: interval must be positive")

// Cursor walks a slice of frames front to back.
type Cursor[T any] struct {
	frames []T
	pos    int
}

// NewCursor returns a cursor positioned before the first frame.
func NewCursor[T any](frames []T) *Cursor[T] {
	return &Cursor[T]{frames: frames}
}

// Next returns the next frame and advances, or false once exhausted.
func (c *Cursor[T]) Next() (T, bool) {
	if c.pos >= len(c.frames) {
		var zero T
		return zero, false
	}
	f := c.frames[c.pos]
	c.pos++
	return f, true
}

// Position returns the number of frames already returned.
func (c *Cursor[T]) Position() int { return c.pos }

// Remaining returns the number of frames not yet returned.
func (c *Cursor[T]) Remaining() int { return len(c.frames) - c.pos }

// Reset rewinds to the first frame.
func (c *Cursor[T]) Reset() { c.pos = 0 }

// Play calls emit for every frame in order, waiting interval between calls.
// The first frame is emitted immediately. Play stops early, returning the
// cause, when ctx is done or emit fails; frames already emitted stay emitted.
func Play[T any](ctx context.Context, frames []T, interval time.Duration, emit func(i int, frame T) error) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	cur := NewCursor(frames)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		i := cur.Position()
		f, ok := cur.Next()
		if !ok {
			return nil
		}
		if err := emit(i, f); err != nil {
			return err
		}
		if cur.Remaining() == 0 {
			return nil
		}
		// a pending tick must not win over cancellation
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
