package formvalidator

import "sync"

// Marker is the capability interface through which the validator surfaces
// field status. A host adapter implements it against the actual UI toolkit
// (DOM classes and inline message elements, native widgets, terminal UI);
// the core never touches presentation directly.
type Marker interface {
	// MarkValid puts the field into the valid state: success indicator on,
	// error indicator and any inline message removed.
	MarkValid(f Field)
	// MarkInvalid puts the field into the invalid state and renders message
	// next to it.
	MarkInvalid(f Field, message string)
	// ClearMark returns the field to the neutral state, removing the error
	// indicator and inline message. The success indicator is left alone.
	ClearMark(f Field)
	// ClearAll strips every indicator and message the marker has added.
	ClearAll()
}

// State is a field's display state as tracked by RecordingMarker.
type State string

const (
	StateNeutral State = "neutral"
	StateValid   State = "valid"
	StateInvalid State = "invalid"
)

// FieldStatus is the recorded display state of one field.
type FieldStatus struct {
	State   State
	Message string
}

// RecordingMarker is an in-memory Marker that tracks the latest status of
// each field. It backs headless validation and tests.
type RecordingMarker struct {
	mu     sync.Mutex
	status map[string]FieldStatus
}

func NewRecordingMarker() *RecordingMarker {
	return &RecordingMarker{status: make(map[string]FieldStatus)}
}

func (m *RecordingMarker) MarkValid(f Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[f.Name()] = FieldStatus{State: StateValid}
}

func (m *RecordingMarker) MarkInvalid(f Field, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[f.Name()] = FieldStatus{State: StateInvalid, Message: message}
}

func (m *RecordingMarker) ClearMark(f Field) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Clearing is a reset to neutral only for fields showing an error;
	// a valid mark survives until the next validation.
	if st, ok := m.status[f.Name()]; ok && st.State == StateInvalid {
		m.status[f.Name()] = FieldStatus{State: StateNeutral}
	}
}

func (m *RecordingMarker) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = make(map[string]FieldStatus)
}

// Status returns the recorded status for a field name. Unseen fields report
// StateNeutral.
func (m *RecordingMarker) Status(name string) FieldStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.status[name]; ok {
		return st
	}
	return FieldStatus{State: StateNeutral}
}

// noopMarker is the default when no marker is configured.
type noopMarker struct{}

func (noopMarker) MarkValid(Field)           {}
func (noopMarker) MarkInvalid(Field, string) {}
func (noopMarker) ClearMark(Field)           {}
func (noopMarker) ClearAll()                 {}
