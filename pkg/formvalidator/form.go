package formvalidator

// Field is one named input-bearing control in a form.
type Field interface {
	// Name identifies the field; rules are keyed by it.
	Name() string
	// Value returns the field's current string value.
	Value() string
}

// Form is the container the validator operates on. Fields must return the
// fields in a stable document order so submit-time validation is
// deterministic.
type Form interface {
	Fields() []Field
	// Field resolves a field by name for cross-field rules. The second
	// return value reports whether the field exists.
	Field(name string) (Field, bool)
	// Reset restores every field to its default value.
	Reset()
}

// SubmitEvent is an attempted form submission with a suppressible default
// action. HandleSubmit always calls PreventDefault first; PerformDefault is
// invoked only when every field passed and no submit callback is configured.
type SubmitEvent interface {
	PreventDefault()
	PerformDefault()
}
