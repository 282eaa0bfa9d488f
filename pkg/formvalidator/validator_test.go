package formvalidator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oh-ww-daferamirez/go-high-level-customization/pkg/formvalidator"
)

type stubField struct {
	name  string
	value string
}

func (f *stubField) Name() string  { return f.name }
func (f *stubField) Value() string { return f.value }

type stubForm struct {
	fields   []*stubField
	defaults map[string]string
	resets   int
}

func newStubForm(fields ...*stubField) *stubForm {
	defaults := make(map[string]string, len(fields))
	for _, f := range fields {
		defaults[f.name] = f.value
	}
	return &stubForm{fields: fields, defaults: defaults}
}

func (sf *stubForm) Fields() []formvalidator.Field {
	out := make([]formvalidator.Field, len(sf.fields))
	for i, f := range sf.fields {
		out[i] = f
	}
	return out
}

func (sf *stubForm) Field(name string) (formvalidator.Field, bool) {
	for _, f := range sf.fields {
		if f.name == name {
			return f, true
		}
	}
	return nil, false
}

func (sf *stubForm) Reset() {
	sf.resets++
	for _, f := range sf.fields {
		f.value = sf.defaults[f.name]
	}
}

func (sf *stubForm) set(name, value string) {
	for _, f := range sf.fields {
		if f.name == name {
			f.value = value
			return
		}
	}
	panic("unknown field: " + name)
}

type stubSubmitEvent struct {
	prevented int
	defaulted int
}

func (e *stubSubmitEvent) PreventDefault() { e.prevented++ }
func (e *stubSubmitEvent) PerformDefault() { e.defaulted++ }

func TestNew(t *testing.T) {
	t.Run("rejects nil form", func(t *testing.T) {
		v, err := formvalidator.New(nil)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, formvalidator.ErrNilForm)
	})

	t.Run("rejects nil marker option", func(t *testing.T) {
		v, err := formvalidator.New(newStubForm(), formvalidator.WithMarker(nil))
		assert.Nil(t, v)
		assert.ErrorIs(t, err, formvalidator.ErrNilMarker)
	})

	t.Run("copies the initial rule map", func(t *testing.T) {
		form := newStubForm(&stubField{name: "email"})
		marker := formvalidator.NewRecordingMarker()
		rules := map[string]formvalidator.Rule{"email": {Required: true}}

		v, err := formvalidator.New(form,
			formvalidator.WithRules(rules),
			formvalidator.WithMarker(marker),
		)
		require.NoError(t, err)

		// Mutating the caller's map must not reach the validator.
		delete(rules, "email")

		f, _ := form.Field("email")
		assert.False(t, v.ValidateField(f))
	})
}

func TestValidateField(t *testing.T) {
	t.Run("field without a rule passes with no side effect", func(t *testing.T) {
		form := newStubForm(&stubField{name: "nickname", value: ""})
		marker := formvalidator.NewRecordingMarker()
		v, err := formvalidator.New(form, formvalidator.WithMarker(marker))
		require.NoError(t, err)

		f, _ := form.Field("nickname")
		assert.True(t, v.ValidateField(f))
		assert.Equal(t, formvalidator.StateNeutral, marker.Status("nickname").State)
	})

	t.Run("failing field is marked invalid with the rule message", func(t *testing.T) {
		form := newStubForm(&stubField{name: "email", value: "nope"})
		marker := formvalidator.NewRecordingMarker()
		v, err := formvalidator.New(form,
			formvalidator.WithMarker(marker),
			formvalidator.WithRules(map[string]formvalidator.Rule{
				"email": {Required: true, Email: true},
			}),
		)
		require.NoError(t, err)

		f, _ := form.Field("email")
		assert.False(t, v.ValidateField(f))

		st := marker.Status("email")
		assert.Equal(t, formvalidator.StateInvalid, st.State)
		assert.Equal(t, "must be a valid email address", st.Message)
	})

	t.Run("passing field is marked valid", func(t *testing.T) {
		form := newStubForm(&stubField{name: "email", value: "user@example.com"})
		marker := formvalidator.NewRecordingMarker()
		v, err := formvalidator.New(form,
			formvalidator.WithMarker(marker),
			formvalidator.WithRules(map[string]formvalidator.Rule{
				"email": {Required: true, Email: true},
			}),
		)
		require.NoError(t, err)

		f, _ := form.Field("email")
		assert.True(t, v.ValidateField(f))
		assert.Equal(t, formvalidator.StateValid, marker.Status("email").State)
	})

	t.Run("revalidation flips invalid to valid after correction", func(t *testing.T) {
		form := newStubForm(&stubField{name: "email", value: "nope"})
		marker := formvalidator.NewRecordingMarker()
		v, err := formvalidator.New(form,
			formvalidator.WithMarker(marker),
			formvalidator.WithRules(map[string]formvalidator.Rule{"email": {Email: true}}),
		)
		require.NoError(t, err)

		f, _ := form.Field("email")
		assert.False(t, v.ValidateField(f))

		form.set("email", "user@example.com")
		assert.True(t, v.ValidateField(f))
		assert.Equal(t, formvalidator.StateValid, marker.Status("email").State)
	})

	t.Run("validate callback fires once per call", func(t *testing.T) {
		form := newStubForm(
			&stubField{name: "email", value: "nope"},
			&stubField{name: "free", value: "anything"},
		)
		var calls []string
		v, err := formvalidator.New(form,
			formvalidator.WithRules(map[string]formvalidator.Rule{"email": {Email: true}}),
			formvalidator.WithValidateCallback(func(f formvalidator.Field, valid bool, msg string) {
				calls = append(calls, f.Name())
				if f.Name() == "email" {
					assert.False(t, valid)
					assert.NotEmpty(t, msg)
				} else {
					assert.True(t, valid)
					assert.Empty(t, msg)
				}
			}),
		)
		require.NoError(t, err)

		email, _ := form.Field("email")
		free, _ := form.Field("free")
		v.ValidateField(email)
		v.ValidateField(free)
		assert.Equal(t, []string{"email", "free"}, calls)
	})

	t.Run("cross-field match reads the live sibling value", func(t *testing.T) {
		form := newStubForm(
			&stubField{name: "password", value: "s3cret!"},
			&stubField{name: "confirm", value: "s3cret!"},
		)
		marker := formvalidator.NewRecordingMarker()
		v, err := formvalidator.New(form,
			formvalidator.WithMarker(marker),
			formvalidator.WithRules(map[string]formvalidator.Rule{"confirm": {Match: "password"}}),
		)
		require.NoError(t, err)

		confirm, _ := form.Field("confirm")
		assert.True(t, v.ValidateField(confirm))

		form.set("password", "changed")
		assert.False(t, v.ValidateField(confirm))
		assert.Equal(t, formvalidator.StateInvalid, marker.Status("confirm").State)
	})
}

func TestRegisterRule(t *testing.T) {
	t.Run("replaces an existing rule", func(t *testing.T) {
		form := newStubForm(&stubField{name: "zip", value: "1234"})
		v, err := formvalidator.New(form, formvalidator.WithRules(map[string]formvalidator.Rule{
			"zip": {MinLength: 5},
		}))
		require.NoError(t, err)

		f, _ := form.Field("zip")
		assert.False(t, v.ValidateField(f))

		v.RegisterRule("zip", formvalidator.Rule{MinLength: 3})
		assert.True(t, v.ValidateField(f))
	})

	t.Run("may target a field not yet in the form", func(t *testing.T) {
		form := newStubForm()
		v, err := formvalidator.New(form)
		require.NoError(t, err)

		v.RegisterRule("later", formvalidator.Rule{Required: true})

		ev := &stubSubmitEvent{}
		v.HandleSubmit(ev)
		assert.Equal(t, 1, ev.defaulted)
	})

	t.Run("anchors unanchored patterns to the full value", func(t *testing.T) {
		form := newStubForm(&stubField{name: "code", value: "xx123yy"})
		v, err := formvalidator.New(form)
		require.NoError(t, err)

		v.RegisterRule("code", formvalidator.Rule{Pattern: regexp.MustCompile(`\d{3}`)})

		f, _ := form.Field("code")
		assert.False(t, v.ValidateField(f))

		form.set("code", "123")
		assert.True(t, v.ValidateField(f))
	})
}

func TestClearError(t *testing.T) {
	t.Run("returns an invalid field to neutral", func(t *testing.T) {
		form := newStubForm(&stubField{name: "email", value: "nope"})
		marker := formvalidator.NewRecordingMarker()
		v, err := formvalidator.New(form,
			formvalidator.WithMarker(marker),
			formvalidator.WithRules(map[string]formvalidator.Rule{"email": {Email: true}}),
		)
		require.NoError(t, err)

		f, _ := form.Field("email")
		v.ValidateField(f)
		require.Equal(t, formvalidator.StateInvalid, marker.Status("email").State)

		v.ClearError(f)
		assert.Equal(t, formvalidator.StateNeutral, marker.Status("email").State)
	})

	t.Run("does not bypass re-validation", func(t *testing.T) {
		form := newStubForm(&stubField{name: "email", value: "nope"})
		marker := formvalidator.NewRecordingMarker()
		v, err := formvalidator.New(form,
			formvalidator.WithMarker(marker),
			formvalidator.WithRules(map[string]formvalidator.Rule{"email": {Email: true}}),
		)
		require.NoError(t, err)

		f, _ := form.Field("email")
		v.ValidateField(f)
		v.ClearError(f)

		assert.False(t, v.ValidateField(f))
		assert.Equal(t, formvalidator.StateInvalid, marker.Status("email").State)
	})
}

func TestHandleSubmit(t *testing.T) {
	rules := map[string]formvalidator.Rule{
		"name":  {Required: true},
		"email": {Required: true, Email: true},
	}

	t.Run("always suppresses the default action first", func(t *testing.T) {
		form := newStubForm(&stubField{name: "name", value: ""})
		v, err := formvalidator.New(form, formvalidator.WithRules(rules))
		require.NoError(t, err)

		ev := &stubSubmitEvent{}
		v.HandleSubmit(ev)
		assert.Equal(t, 1, ev.prevented)
		assert.Zero(t, ev.defaulted)
	})

	t.Run("visits every field even after a failure", func(t *testing.T) {
		form := newStubForm(
			&stubField{name: "name", value: ""},
			&stubField{name: "email", value: "bad"},
		)
		marker := formvalidator.NewRecordingMarker()
		v, err := formvalidator.New(form,
			formvalidator.WithMarker(marker),
			formvalidator.WithRules(rules),
		)
		require.NoError(t, err)

		v.HandleSubmit(&stubSubmitEvent{})

		// Both errors display in a single pass.
		assert.Equal(t, formvalidator.StateInvalid, marker.Status("name").State)
		assert.Equal(t, formvalidator.StateInvalid, marker.Status("email").State)
	})

	t.Run("failure blocks the submit callback", func(t *testing.T) {
		form := newStubForm(
			&stubField{name: "name", value: "Ada"},
			&stubField{name: "email", value: "bad"},
		)
		submitted := 0
		v, err := formvalidator.New(form,
			formvalidator.WithRules(rules),
			formvalidator.WithSubmitCallback(func(formvalidator.Form) { submitted++ }),
		)
		require.NoError(t, err)

		ev := &stubSubmitEvent{}
		v.HandleSubmit(ev)
		assert.Zero(t, submitted)
		assert.Zero(t, ev.defaulted)
	})

	t.Run("all passing fields invoke the submit callback exactly once", func(t *testing.T) {
		form := newStubForm(
			&stubField{name: "name", value: "Ada"},
			&stubField{name: "email", value: "ada@example.com"},
		)
		marker := formvalidator.NewRecordingMarker()
		submitted := 0
		v, err := formvalidator.New(form,
			formvalidator.WithMarker(marker),
			formvalidator.WithRules(rules),
			formvalidator.WithSubmitCallback(func(f formvalidator.Form) {
				submitted++
				assert.Equal(t, form, f)
			}),
		)
		require.NoError(t, err)

		ev := &stubSubmitEvent{}
		v.HandleSubmit(ev)
		assert.Equal(t, 1, submitted)
		assert.Zero(t, ev.defaulted)
		assert.Equal(t, formvalidator.StateValid, marker.Status("name").State)
		assert.Equal(t, formvalidator.StateValid, marker.Status("email").State)
	})

	t.Run("without a callback the suppressed default runs on success", func(t *testing.T) {
		form := newStubForm(&stubField{name: "name", value: "Ada"})
		v, err := formvalidator.New(form, formvalidator.WithRules(rules))
		require.NoError(t, err)

		ev := &stubSubmitEvent{}
		v.HandleSubmit(ev)
		assert.Equal(t, 1, ev.prevented)
		assert.Equal(t, 1, ev.defaulted)
	})
}

func TestReset(t *testing.T) {
	form := newStubForm(
		&stubField{name: "name", value: ""},
		&stubField{name: "email", value: "bad"},
	)
	marker := formvalidator.NewRecordingMarker()
	v, err := formvalidator.New(form,
		formvalidator.WithMarker(marker),
		formvalidator.WithRules(map[string]formvalidator.Rule{
			"name":  {Required: true},
			"email": {Email: true},
		}),
	)
	require.NoError(t, err)

	form.set("name", "Ada")
	form.set("email", "still-bad")
	v.HandleSubmit(&stubSubmitEvent{})
	require.Equal(t, formvalidator.StateInvalid, marker.Status("email").State)

	v.Reset()

	assert.Equal(t, 1, form.resets)
	assert.Equal(t, "", mustValue(t, form, "name"))
	assert.Equal(t, "bad", mustValue(t, form, "email"))
	assert.Equal(t, formvalidator.StateNeutral, marker.Status("name").State)
	assert.Equal(t, formvalidator.StateNeutral, marker.Status("email").State)

	// Rules survive a reset.
	f, _ := form.Field("email")
	assert.False(t, v.ValidateField(f))
}

func mustValue(t *testing.T, form *stubForm, name string) string {
	t.Helper()
	f, ok := form.Field(name)
	require.True(t, ok)
	return f.Value()
}
