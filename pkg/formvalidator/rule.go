package formvalidator

import (
	"fmt"
	"regexp"
	"strings"
)

// Reason identifies which condition of a rule rejected a value.
type Reason string

const (
	ReasonMissingRequired Reason = "missing_required"
	ReasonInvalidEmail    Reason = "invalid_email"
	ReasonTooShort        Reason = "too_short"
	ReasonTooLong         Reason = "too_long"
	ReasonPatternMismatch Reason = "pattern_mismatch"
	ReasonFieldMismatch   Reason = "field_mismatch"
	ReasonCustomRejected  Reason = "custom_rejected"
)

// Permissive email shape check matched against the full value. Callers who
// need stricter validation should attach a Custom predicate.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule describes the validation contract for one named field. Zero-valued
// conditions are unset: a MaxLength of 0 means no upper bound, a nil Pattern
// means no pattern check, and so on.
type Rule struct {
	// Required rejects values that are empty after trimming whitespace.
	Required bool

	// Email rejects values that do not match a permissive email shape.
	Email bool

	// MinLength and MaxLength are inclusive bounds on character count.
	MinLength int
	MaxLength int

	// Pattern must match the full value when set.
	Pattern *regexp.Regexp

	// Match names another field whose current value this one must equal,
	// e.g. a password confirmation.
	Match string

	// Custom is an arbitrary caller-supplied predicate, checked last.
	Custom func(value string) bool

	// Messages overrides the built-in default message per reason.
	Messages map[Reason]string
}

// Result is the outcome of evaluating a rule against a value. Reason and
// Message are empty when Valid.
type Result struct {
	Valid   bool
	Reason  Reason
	Message string
}

// Evaluate checks value against rule using ordered, first-match-wins
// conditions; once one condition fails, later ones are not evaluated. The
// lookup function resolves cross-field references for Match and may be nil
// when the rule has none.
func Evaluate(rule Rule, value string, lookup func(name string) (string, bool)) Result {
	if rule.Required && strings.TrimSpace(value) == "" {
		return rule.fail(ReasonMissingRequired)
	}

	if rule.Email && !emailRegex.MatchString(value) {
		return rule.fail(ReasonInvalidEmail)
	}

	if rule.MinLength > 0 && len(value) < rule.MinLength {
		return rule.fail(ReasonTooShort)
	}

	if rule.MaxLength > 0 && len(value) > rule.MaxLength {
		return rule.fail(ReasonTooLong)
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return rule.fail(ReasonPatternMismatch)
	}

	if rule.Match != "" {
		other, ok := "", false
		if lookup != nil {
			other, ok = lookup(rule.Match)
		}
		if !ok || other != value {
			return rule.fail(ReasonFieldMismatch)
		}
	}

	if rule.Custom != nil && !rule.Custom(value) {
		return rule.fail(ReasonCustomRejected)
	}

	return Result{Valid: true}
}

func (r Rule) fail(reason Reason) Result {
	return Result{Reason: reason, Message: r.message(reason)}
}

// message returns the override for reason when present, otherwise the
// built-in default.
func (r Rule) message(reason Reason) string {
	if msg, ok := r.Messages[reason]; ok {
		return msg
	}

	switch reason {
	case ReasonMissingRequired:
		return "field is required"
	case ReasonInvalidEmail:
		return "must be a valid email address"
	case ReasonTooShort:
		return fmt.Sprintf("must be at least %d characters long", r.MinLength)
	case ReasonTooLong:
		return fmt.Sprintf("must be at most %d characters long", r.MaxLength)
	case ReasonPatternMismatch:
		return "has an invalid format"
	case ReasonFieldMismatch:
		if r.Match != "" {
			return fmt.Sprintf("must match the %s field", r.Match)
		}
		return "fields do not match"
	case ReasonCustomRejected:
		return "is not a valid value"
	default:
		return "is invalid"
	}
}

// normalized anchors the rule's pattern so it matches the full value. Rules
// pass through here when registered, so Evaluate can rely on plain
// MatchString.
func (r Rule) normalized() Rule {
	if r.Pattern != nil {
		r.Pattern = anchorPattern(r.Pattern)
	}
	return r
}

func anchorPattern(p *regexp.Regexp) *regexp.Regexp {
	expr := p.String()

	anchoredStart := strings.HasPrefix(expr, "^") || strings.HasPrefix(expr, `\A`)
	anchoredEnd := strings.HasSuffix(expr, "$") || strings.HasSuffix(expr, `\z`)
	if anchoredStart && anchoredEnd {
		return p
	}

	// Wrapping a valid expression in a non-capturing group keeps it valid.
	return regexp.MustCompile(`\A(?:` + expr + `)\z`)
}
