package formvalidator

import (
	"errors"
	"fmt"
)

var (
	ErrNilForm   = errors.New("form cannot be nil")
	ErrNilMarker = errors.New("marker cannot be nil")
)

// RuleParseError reports a rule definition that could not be loaded, keyed by
// the field it belongs to.
type RuleParseError struct {
	Field string
	Err   error
}

func (e *RuleParseError) Error() string {
	return fmt.Sprintf("invalid rule for field %q: %v", e.Field, e.Err)
}

func (e *RuleParseError) Unwrap() error {
	return e.Err
}
