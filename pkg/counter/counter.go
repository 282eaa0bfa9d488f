// Package counter animates a number counting from one value to another over
// a fixed duration, like the "12,000+ customers" figures that spin up when a
// stats section scrolls into view.
//
// The animation itself is the pure Frames computation; Run merely plays the
// frames on a ticker. Easing curves are plain functions over normalized time
// so hosts can supply their own.
package counter

import (
	"context"
	"errors"
	"math"
	"time"
)

var (
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrNonPositiveFPS      = errors.New("fps must be positive")
	ErrNilFrame            = errors.New("frame callback cannot be nil")
)

// Easing maps normalized time t in [0,1] to normalized progress in [0,1].
// Easing(1) must return 1 so animations land exactly on their target.
type Easing func(t float64) float64

func EaseLinear(t float64) float64 { return t }

func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Counter describes one count-up (or count-down) animation.
type Counter struct {
	from     float64
	to       float64
	duration time.Duration
	easing   Easing
}

// Option configures a Counter.
type Option func(*Counter)

// WithEasing overrides the default EaseOutQuad curve. Nil easings are
// ignored.
func WithEasing(e Easing) Option {
	return func(c *Counter) {
		if e != nil {
			c.easing = e
		}
	}
}

// New creates an animation from one value to another over d.
func New(from, to float64, d time.Duration, opts ...Option) (*Counter, error) {
	if d <= 0 {
		return nil, ErrNonPositiveDuration
	}

	c := &Counter{from: from, to: to, duration: d, easing: EaseOutQuad}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Frames computes the full frame sequence at the given frame rate. The last
// frame is exactly the target value.
func (c *Counter) Frames(fps int) ([]float64, error) {
	if fps <= 0 {
		return nil, ErrNonPositiveFPS
	}

	n := int(math.Round(c.duration.Seconds() * float64(fps)))
	if n < 1 {
		n = 1
	}

	frames := make([]float64, n)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		frames[i-1] = c.from + (c.to-c.from)*c.easing(t)
	}
	frames[n-1] = c.to
	return frames, nil
}

// Run plays the animation, invoking fn once per frame. It blocks until the
// final frame or context cancellation.
func (c *Counter) Run(ctx context.Context, fps int, fn func(value float64)) error {
	if fn == nil {
		return ErrNilFrame
	}

	frames, err := c.Frames(fps)
	if err != nil {
		return err
	}

	interval := c.duration / time.Duration(len(frames))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for _, frame := range frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(frame)
		}
	}
	return nil
}
