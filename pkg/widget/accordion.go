package widget

import (
	"errors"
	"fmt"
	"slices"
)

var ErrNoItems = errors.New("accordion needs at least one item")

// IndexError reports an item index outside the widget's range.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("item index %d out of range [0,%d)", e.Index, e.Count)
}

// Accordion tracks which of a fixed set of panels are expanded. The default
// policy keeps at most one panel open, as accordion FAQs usually do;
// WithMultiOpen lifts that restriction.
type Accordion struct {
	count     int
	multiOpen bool
	open      map[int]struct{}
	onChange  func(open []int)
}

// AccordionOption configures an Accordion.
type AccordionOption func(*Accordion)

// WithMultiOpen allows any number of panels to be expanded at once.
func WithMultiOpen() AccordionOption {
	return func(a *Accordion) { a.multiOpen = true }
}

// WithChangeCallback fires with the sorted open indices after every
// successful toggle.
func WithChangeCallback(fn func(open []int)) AccordionOption {
	return func(a *Accordion) { a.onChange = fn }
}

// NewAccordion creates an accordion with count collapsed panels.
func NewAccordion(count int, opts ...AccordionOption) (*Accordion, error) {
	if count <= 0 {
		return nil, ErrNoItems
	}

	a := &Accordion{count: count, open: make(map[int]struct{})}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Toggle expands a collapsed panel or collapses an expanded one. Under the
// single-open policy, expanding a panel collapses any other.
func (a *Accordion) Toggle(i int) error {
	if i < 0 || i >= a.count {
		return &IndexError{Index: i, Count: a.count}
	}

	if _, isOpen := a.open[i]; isOpen {
		delete(a.open, i)
	} else {
		if !a.multiOpen {
			clear(a.open)
		}
		a.open[i] = struct{}{}
	}

	if a.onChange != nil {
		a.onChange(a.OpenItems())
	}
	return nil
}

// IsOpen reports whether panel i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	_, ok := a.open[i]
	return ok
}

// OpenItems returns the expanded panel indices in ascending order.
func (a *Accordion) OpenItems() []int {
	items := make([]int, 0, len(a.open))
	for i := range a.open {
		items = append(items, i)
	}
	slices.Sort(items)
	return items
}

// CollapseAll closes every panel.
func (a *Accordion) CollapseAll() {
	if len(a.open) == 0 {
		return
	}
	clear(a.open)
	if a.onChange != nil {
		a.onChange(nil)
	}
}
