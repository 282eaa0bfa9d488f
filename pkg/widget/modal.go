package widget

// Modal tracks an open/closed dialog. A persistent modal ignores regular
// Close calls, the way a mandatory signup dialog ignores backdrop clicks,
// and only yields to ForceClose.
type Modal struct {
	open       bool
	persistent bool
	onOpen     func()
	onClose    func()
}

// ModalOption configures a Modal.
type ModalOption func(*Modal)

// WithPersistent makes the modal ignore Close; only ForceClose closes it.
func WithPersistent() ModalOption {
	return func(m *Modal) { m.persistent = true }
}

// WithOpenCallback fires whenever the modal transitions to open.
func WithOpenCallback(fn func()) ModalOption {
	return func(m *Modal) { m.onOpen = fn }
}

// WithCloseCallback fires whenever the modal transitions to closed.
func WithCloseCallback(fn func()) ModalOption {
	return func(m *Modal) { m.onClose = fn }
}

// NewModal creates a closed modal.
func NewModal(opts ...ModalOption) *Modal {
	m := &Modal{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Modal) IsOpen() bool { return m.open }

// Open shows the modal. Opening an already-open modal is a no-op and does
// not re-fire the callback.
func (m *Modal) Open() {
	if m.open {
		return
	}
	m.open = true
	if m.onOpen != nil {
		m.onOpen()
	}
}

// Close hides the modal and reports whether it closed. Persistent modals
// refuse and return false.
func (m *Modal) Close() bool {
	if !m.open || m.persistent {
		return false
	}
	m.open = false
	if m.onClose != nil {
		m.onClose()
	}
	return true
}

// ForceClose hides the modal regardless of persistence.
func (m *Modal) ForceClose() {
	if !m.open {
		return
	}
	m.open = false
	if m.onClose != nil {
		m.onClose()
	}
}

// Toggle opens a closed modal and closes an open one, honoring persistence.
// It returns the resulting open state.
func (m *Modal) Toggle() bool {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
	return m.open
}
