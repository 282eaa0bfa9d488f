package formvalidator

// Validator evaluates registered rules against a form's fields and reports
// status through the configured Marker. All methods run synchronously inside
// the calling event handler; the rule table must only be mutated through
// RegisterRule.
type Validator struct {
	form       Form
	marker     Marker
	rules      map[string]Rule
	onValidate func(f Field, valid bool, message string)
	onSubmit   func(f Form)
}

// Option configures a Validator during construction.
type Option func(*Validator) error

// WithRules sets the initial rule mapping. The map is copied, so later
// changes to the caller's map do not affect the validator.
func WithRules(rules map[string]Rule) Option {
	return func(v *Validator) error {
		for name, rule := range rules {
			v.rules[name] = rule.normalized()
		}
		return nil
	}
}

// WithMarker sets the presentation adapter. The default is a no-op marker.
func WithMarker(m Marker) Option {
	return func(v *Validator) error {
		if m == nil {
			return ErrNilMarker
		}
		v.marker = m
		return nil
	}
}

// WithValidateCallback registers a hook fired after every single-field
// check, with the field, the outcome, and the active message (empty on
// pass).
func WithValidateCallback(fn func(f Field, valid bool, message string)) Option {
	return func(v *Validator) error {
		v.onValidate = fn
		return nil
	}
}

// WithSubmitCallback registers a hook fired once per submission attempt,
// only when the entire form passed. When set, it replaces the event's
// default submit action.
func WithSubmitCallback(fn func(f Form)) Option {
	return func(v *Validator) error {
		v.onSubmit = fn
		return nil
	}
}

// New creates a Validator bound to form. Configuration faults surface here
// rather than later inside an event callback.
func New(form Form, opts ...Option) (*Validator, error) {
	if form == nil {
		return nil, ErrNilForm
	}

	v := &Validator{
		form:   form,
		marker: noopMarker{},
		rules:  make(map[string]Rule),
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// RegisterRule inserts or replaces the rule for fieldName. It may be called
// before or after the field exists in the form.
func (v *Validator) RegisterRule(fieldName string, rule Rule) {
	v.rules[fieldName] = rule.normalized()
}

// ValidateField evaluates f against its registered rule and updates the
// field's status through the marker. A field with no rule passes with no
// visible side effect. The validate callback fires exactly once per call
// regardless of outcome. Repeated calls with an unchanged value yield the
// same result.
func (v *Validator) ValidateField(f Field) bool {
	rule, ok := v.rules[f.Name()]
	if !ok {
		if v.onValidate != nil {
			v.onValidate(f, true, "")
		}
		return true
	}

	res := Evaluate(rule, f.Value(), v.lookupValue)
	if res.Valid {
		v.marker.MarkValid(f)
	} else {
		v.marker.MarkInvalid(f, res.Message)
	}

	if v.onValidate != nil {
		v.onValidate(f, res.Valid, res.Message)
	}
	return res.Valid
}

// ClearError returns f to the neutral display state without re-validating.
// Intended for value-change events so a user actively correcting a field is
// not shown a stale error; the authoritative re-check happens on the next
// blur or submit.
func (v *Validator) ClearError(f Field) {
	v.marker.ClearMark(f)
}

// HandleSubmit suppresses the event's default action, then validates every
// field in form order. There is no short-circuit at the form level: every
// field is visited so all error messages render in one pass. When all fields
// pass, the submit callback runs if configured, otherwise the suppressed
// default action is performed. When any field fails, nothing further
// happens.
func (v *Validator) HandleSubmit(ev SubmitEvent) {
	ev.PreventDefault()

	valid := true
	for _, f := range v.form.Fields() {
		if !v.ValidateField(f) {
			valid = false
		}
	}

	if !valid {
		return
	}

	if v.onSubmit != nil {
		v.onSubmit(v.form)
		return
	}
	ev.PerformDefault()
}

// Reset restores the form's default values and strips every indicator and
// message the validator added. Registered rules survive.
func (v *Validator) Reset() {
	v.form.Reset()
	v.marker.ClearAll()
}

func (v *Validator) lookupValue(name string) (string, bool) {
	f, ok := v.form.Field(name)
	if !ok {
		return "", false
	}
	return f.Value(), true
}
