package countdown_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oh-ww-daferamirez/go-high-level-customization/pkg/countdown"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("splits a compound duration", func(t *testing.T) {
		target := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second)
		assert.Equal(t, countdown.Parts{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, countdown.Remaining(target, now))
	})

	t.Run("clamps a past target to zero", func(t *testing.T) {
		parts := countdown.Remaining(now.Add(-time.Minute), now)
		assert.True(t, parts.IsZero())
	})

	t.Run("target equal to now is zero", func(t *testing.T) {
		assert.True(t, countdown.Remaining(now, now).IsZero())
	})

	t.Run("rounds sub-second remainders up", func(t *testing.T) {
		parts := countdown.Remaining(now.Add(1500*time.Millisecond), now)
		assert.Equal(t, countdown.Parts{Seconds: 2}, parts)
	})

	t.Run("exact day boundary", func(t *testing.T) {
		parts := countdown.Remaining(now.Add(24*time.Hour), now)
		assert.Equal(t, countdown.Parts{Days: 1}, parts)
	})
}

func TestNew(t *testing.T) {
	t.Run("rejects nil tick callback", func(t *testing.T) {
		c, err := countdown.New(time.Now(), nil)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, countdown.ErrNilTick)
	})

	t.Run("rejects non-positive interval", func(t *testing.T) {
		_, err := countdown.New(time.Now(), func(countdown.Parts) {}, countdown.WithInterval(0))
		assert.ErrorIs(t, err, countdown.ErrNonPositiveInterval)
	})
}

func TestRun(t *testing.T) {
	t.Run("fires immediately and completes at the deadline", func(t *testing.T) {
		var ticks []countdown.Parts
		completed := 0

		c, err := countdown.New(time.Now().Add(60*time.Millisecond),
			func(p countdown.Parts) { ticks = append(ticks, p) },
			countdown.WithInterval(20*time.Millisecond),
			countdown.WithOnComplete(func() { completed++ }),
		)
		require.NoError(t, err)

		require.NoError(t, c.Run(context.Background()))

		require.NotEmpty(t, ticks)
		assert.False(t, ticks[0].IsZero(), "first tick fires before the deadline")
		assert.True(t, ticks[len(ticks)-1].IsZero(), "final tick is zero")
		assert.Equal(t, 1, completed)
	})

	t.Run("already-passed target completes on the first tick", func(t *testing.T) {
		ticks := 0
		c, err := countdown.New(time.Now().Add(-time.Second), func(countdown.Parts) { ticks++ })
		require.NoError(t, err)

		require.NoError(t, c.Run(context.Background()))
		assert.Equal(t, 1, ticks)
	})

	t.Run("cancellation stops the loop without completing", func(t *testing.T) {
		completed := 0
		c, err := countdown.New(time.Now().Add(time.Hour),
			func(countdown.Parts) {},
			countdown.WithInterval(10*time.Millisecond),
			countdown.WithOnComplete(func() { completed++ }),
		)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		err = c.Run(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Zero(t, completed)
	})
}
