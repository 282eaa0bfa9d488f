package widget

// Tabs tracks the active tab of a fixed-size tab strip.
type Tabs struct {
	count    int
	active   int
	onChange func(active int)
}

// TabsOption configures a Tabs widget.
type TabsOption func(*Tabs)

// WithTabChangeCallback fires with the new active index after every change.
func WithTabChangeCallback(fn func(active int)) TabsOption {
	return func(t *Tabs) { t.onChange = fn }
}

// NewTabs creates a strip of count tabs with the first one active.
func NewTabs(count int, opts ...TabsOption) (*Tabs, error) {
	if count <= 0 {
		return nil, ErrNoItems
	}

	t := &Tabs{count: count}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *Tabs) Active() int { return t.active }

func (t *Tabs) Count() int { return t.count }

// Select activates tab i, clamping out-of-range indices to the nearest
// valid tab, and returns the resulting active index. Re-selecting the
// active tab does not fire the change callback.
func (t *Tabs) Select(i int) int {
	if i < 0 {
		i = 0
	}
	if i >= t.count {
		i = t.count - 1
	}

	if i != t.active {
		t.active = i
		if t.onChange != nil {
			t.onChange(i)
		}
	}
	return t.active
}

// Next activates the following tab, wrapping past the end.
func (t *Tabs) Next() int {
	return t.step(1)
}

// Prev activates the preceding tab, wrapping past the start.
func (t *Tabs) Prev() int {
	return t.step(-1)
}

func (t *Tabs) step(delta int) int {
	next := (t.active + delta + t.count) % t.count
	if next != t.active {
		t.active = next
		if t.onChange != nil {
			t.onChange(next)
		}
	}
	return t.active
}
