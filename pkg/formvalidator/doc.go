// Package formvalidator provides a small, UI-agnostic form validation engine
// with per-field rules, ordered short-circuit evaluation, and pluggable
// presentation of field status.
//
// The validator owns a mapping from field name to Rule and evaluates each
// rule against the live value of a field. Validation is opt-in per field: a
// field with no registered rule always passes and produces no visible side
// effect. Visual feedback is delegated to a Marker implementation so the core
// stays independent of any particular UI toolkit and can be unit tested
// headlessly with the bundled RecordingMarker.
//
// # Rule Evaluation
//
// Conditions are checked in a fixed order and only the first failing one is
// reported:
//
//	required → email → min length → max length → pattern → match → custom
//
// Each condition maps to a Reason with a built-in default message which can
// be overridden per rule via Rule.Messages.
//
// # Usage
//
//	v, err := formvalidator.New(form,
//	    formvalidator.WithRules(map[string]formvalidator.Rule{
//	        "email":    {Required: true, Email: true},
//	        "password": {Required: true, MinLength: 8},
//	        "confirm":  {Match: "password"},
//	    }),
//	    formvalidator.WithMarker(marker),
//	    formvalidator.WithSubmitCallback(func(f formvalidator.Form) {
//	        // all fields passed
//	    }),
//	)
//	if err != nil {
//	    // form was nil or options were invalid
//	}
//
// Wire the host's events to the validator: field blur to ValidateField,
// value change to ClearError, and submission attempts to HandleSubmit.
// HandleSubmit always suppresses the event's default action first, validates
// every field so all error messages render in a single pass, and only then
// either invokes the submit callback or performs the suppressed default.
//
// # Declarative Rules
//
// Rule sets can be loaded from YAML with RulesFromYAML, which compiles
// pattern strings with full-value anchoring. Custom predicates cannot be
// expressed declaratively and must be attached in code.
//
// All operations are synchronous and run to completion inside the calling
// event handler; the validator holds no state beyond the rule table.
package formvalidator
