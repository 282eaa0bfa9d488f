package widget_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oh-ww-daferamirez/go-high-level-customization/pkg/widget"
)

func TestToastQueuePush(t *testing.T) {
	t.Run("assigns unique ids and preserves order", func(t *testing.T) {
		q := widget.NewToastQueue(5)
		first := q.Push(widget.LevelInfo, "one")
		second := q.Push(widget.LevelError, "two")

		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)

		active := q.Active()
		require.Len(t, active, 2)
		assert.Equal(t, "one", active[0].Message)
		assert.Equal(t, "two", active[1].Message)
	})

	t.Run("evicts the oldest toast beyond capacity", func(t *testing.T) {
		var dismissed []string
		q := widget.NewToastQueue(2, widget.WithDismissCallback(func(toast widget.Toast) {
			dismissed = append(dismissed, toast.Message)
		}))

		q.Push(widget.LevelInfo, "one")
		q.Push(widget.LevelInfo, "two")
		q.Push(widget.LevelInfo, "three")

		active := q.Active()
		require.Len(t, active, 2)
		assert.Equal(t, "two", active[0].Message)
		assert.Equal(t, "three", active[1].Message)
		assert.Equal(t, []string{"one"}, dismissed)
	})

	t.Run("fires the show callback per push", func(t *testing.T) {
		shown := 0
		q := widget.NewToastQueue(3, widget.WithShowCallback(func(widget.Toast) { shown++ }))
		q.Push(widget.LevelSuccess, "saved")
		q.Push(widget.LevelWarning, "careful")
		assert.Equal(t, 2, shown)
	})

	t.Run("panics on non-positive capacity", func(t *testing.T) {
		assert.Panics(t, func() { widget.NewToastQueue(0) })
	})
}

func TestToastQueueDismiss(t *testing.T) {
	t.Run("removes by id", func(t *testing.T) {
		q := widget.NewToastQueue(3)
		toast := q.Push(widget.LevelInfo, "bye")

		assert.True(t, q.Dismiss(toast.ID))
		assert.Empty(t, q.Active())
	})

	t.Run("unknown id reports false", func(t *testing.T) {
		q := widget.NewToastQueue(3)
		assert.False(t, q.Dismiss("nope"))
	})
}

func TestToastQueueExpiry(t *testing.T) {
	t.Run("dismisses toasts past their ttl", func(t *testing.T) {
		var dismissed []string
		q := widget.NewToastQueue(5,
			widget.WithToastTTL(10*time.Millisecond),
			widget.WithDismissCallback(func(toast widget.Toast) {
				dismissed = append(dismissed, toast.Message)
			}),
		)

		q.Push(widget.LevelInfo, "fleeting")
		time.Sleep(25 * time.Millisecond)

		assert.Equal(t, 1, q.DismissExpired())
		assert.Empty(t, q.Active())
		assert.Equal(t, []string{"fleeting"}, dismissed)
	})

	t.Run("keeps unexpired toasts", func(t *testing.T) {
		q := widget.NewToastQueue(5, widget.WithToastTTL(time.Hour))
		q.Push(widget.LevelInfo, "sticky")

		assert.Zero(t, q.DismissExpired())
		assert.Len(t, q.Active(), 1)
	})
}
