// Package typewriter produces the classic hero-section typing effect: each
// phrase is typed out rune by rune, held, deleted, and replaced by the next
// one.
//
// Frame generation is pure so the exact output sequence can be asserted in
// tests; Run plays the frames with the configured delays.
package typewriter

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoPhrases   = errors.New("at least one phrase is required")
	ErrNonPositive = errors.New("delays must be positive")
)

// Frame is one rendered step of the effect. Hold marks the pause with the
// full phrase on screen, Delete marks a backspacing step; each uses its own
// delay during playback.
type Frame struct {
	Text   string
	Hold   bool
	Delete bool
}

// Typewriter cycles through a list of phrases.
type Typewriter struct {
	phrases     []string
	typeDelay   time.Duration
	deleteDelay time.Duration
	holdDelay   time.Duration
	loop        bool
}

// Option configures a Typewriter.
type Option func(*Typewriter) error

// WithTypeDelay sets the per-rune typing delay.
func WithTypeDelay(d time.Duration) Option {
	return func(tw *Typewriter) error {
		if d <= 0 {
			return ErrNonPositive
		}
		tw.typeDelay = d
		return nil
	}
}

// WithDeleteDelay sets the per-rune deletion delay.
func WithDeleteDelay(d time.Duration) Option {
	return func(tw *Typewriter) error {
		if d <= 0 {
			return ErrNonPositive
		}
		tw.deleteDelay = d
		return nil
	}
}

// WithHoldDelay sets how long a completed phrase stays on screen.
func WithHoldDelay(d time.Duration) Option {
	return func(tw *Typewriter) error {
		if d <= 0 {
			return ErrNonPositive
		}
		tw.holdDelay = d
		return nil
	}
}

// WithLoop makes Run repeat the cycle until the context is canceled. The
// final phrase is deleted before the cycle restarts.
func WithLoop() Option {
	return func(tw *Typewriter) error {
		tw.loop = true
		return nil
	}
}

// New creates a typewriter over phrases. Defaults: 75ms typing, 40ms
// deleting, 1.5s hold, no looping.
func New(phrases []string, opts ...Option) (*Typewriter, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}

	tw := &Typewriter{
		phrases:     phrases,
		typeDelay:   75 * time.Millisecond,
		deleteDelay: 40 * time.Millisecond,
		holdDelay:   1500 * time.Millisecond,
	}
	for _, opt := range opts {
		if err := opt(tw); err != nil {
			return nil, err
		}
	}
	return tw, nil
}

// Frames returns one full cycle. Every phrase is typed rune by rune and
// held; every phrase except a non-looping final one is then deleted back to
// empty.
func (tw *Typewriter) Frames() []Frame {
	var frames []Frame

	for i, phrase := range tw.phrases {
		runes := []rune(phrase)
		for n := 1; n <= len(runes); n++ {
			frames = append(frames, Frame{Text: string(runes[:n])})
		}
		frames = append(frames, Frame{Text: phrase, Hold: true})

		last := i == len(tw.phrases)-1
		if last && !tw.loop {
			break
		}
		for n := len(runes) - 1; n >= 0; n-- {
			frames = append(frames, Frame{Text: string(runes[:n]), Delete: true})
		}
	}

	return frames
}

// Run plays frames through fn until the cycle ends, or indefinitely when
// looping. It blocks and returns ctx.Err on cancellation.
func (tw *Typewriter) Run(ctx context.Context, fn func(text string)) error {
	if fn == nil {
		return errors.New("frame callback cannot be nil")
	}

	for {
		for _, frame := range tw.Frames() {
			fn(frame.Text)

			timer := time.NewTimer(tw.delayFor(frame))
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		if !tw.loop {
			return nil
		}
	}
}

func (tw *Typewriter) delayFor(frame Frame) time.Duration {
	switch {
	case frame.Hold:
		return tw.holdDelay
	case frame.Delete:
		return tw.deleteDelay
	default:
		return tw.typeDelay
	}
}
