// Package countdown implements a deadline countdown that emits the
// remaining days, hours, minutes and seconds once per interval, the way a
// launch-offer banner ticks down on a landing page.
//
// The split into display parts is exposed as the pure function Remaining so
// hosts can render however they like and tests stay deterministic; Run only
// adds the ticker loop around it.
package countdown

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

var (
	ErrNilTick             = errors.New("tick callback cannot be nil")
	ErrNonPositiveInterval = errors.New("interval must be positive")
)

// Parts is the remaining time split into display units. All fields are zero
// once the target has passed.
type Parts struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

func (p Parts) IsZero() bool {
	return p == Parts{}
}

// Remaining splits the time from now until target into display parts,
// clamped at zero.
func Remaining(target, now time.Time) Parts {
	d := target.Sub(now)
	if d <= 0 {
		return Parts{}
	}

	// Round up so the countdown shows "1s" until the deadline actually
	// passes instead of hitting zero a tick early.
	secs := int((d + time.Second - 1) / time.Second)

	return Parts{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}

// Countdown drives a tick callback until its target time passes.
type Countdown struct {
	target     time.Time
	interval   time.Duration
	onTick     func(Parts)
	onComplete func()
	log        *slog.Logger
	now        func() time.Time
}

// Option configures a Countdown.
type Option func(*Countdown) error

// WithInterval overrides the one-second tick interval.
func WithInterval(d time.Duration) Option {
	return func(c *Countdown) error {
		if d <= 0 {
			return ErrNonPositiveInterval
		}
		c.interval = d
		return nil
	}
}

// WithOnComplete registers a hook fired once, after the final zero tick.
func WithOnComplete(fn func()) Option {
	return func(c *Countdown) error {
		c.onComplete = fn
		return nil
	}
}

// WithLogger enables debug logging of start and completion. Nil loggers are
// ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Countdown) error {
		c.log = log
		return nil
	}
}

// New creates a countdown toward target. The tick callback receives the
// remaining parts immediately on Run and then once per interval.
func New(target time.Time, onTick func(Parts), opts ...Option) (*Countdown, error) {
	if onTick == nil {
		return nil, ErrNilTick
	}

	c := &Countdown{
		target:   target,
		interval: time.Second,
		onTick:   onTick,
		now:      time.Now,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Run blocks until the target passes or ctx is canceled. The first tick
// fires immediately so the display never starts blank. A final zero tick and
// the completion hook fire when the deadline is reached; cancellation
// returns ctx.Err without them.
func (c *Countdown) Run(ctx context.Context) error {
	if c.log != nil {
		c.log.DebugContext(ctx, "countdown started", slog.Time("target", c.target))
	}

	if done := c.tick(); done {
		return nil
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if done := c.tick(); done {
				return nil
			}
		}
	}
}

func (c *Countdown) tick() bool {
	parts := Remaining(c.target, c.now())
	c.onTick(parts)

	if !parts.IsZero() {
		return false
	}

	if c.log != nil {
		c.log.Debug("countdown complete", slog.Time("target", c.target))
	}
	if c.onComplete != nil {
		c.onComplete()
	}
	return true
}
