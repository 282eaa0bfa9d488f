package formvalidator

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ruleSpec is the declarative form of a Rule. Custom predicates cannot be
// expressed in YAML and must be attached in code after loading.
type ruleSpec struct {
	Required  bool              `yaml:"required"`
	Email     bool              `yaml:"email"`
	MinLength int               `yaml:"min_length"`
	MaxLength int               `yaml:"max_length"`
	Pattern   string            `yaml:"pattern"`
	Match     string            `yaml:"match"`
	Messages  map[string]string `yaml:"messages"`
}

// RulesFromYAML parses a mapping of field name to rule definition:
//
//	email:
//	  required: true
//	  email: true
//	  messages:
//	    missing_required: Please enter your email
//	password:
//	  required: true
//	  min_length: 8
//	confirm:
//	  match: password
//
// Pattern strings are compiled with full-value anchoring. Invalid patterns
// and unknown message keys are reported as a RuleParseError naming the
// offending field.
func RulesFromYAML(data []byte) (map[string]Rule, error) {
	var specs map[string]ruleSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	rules := make(map[string]Rule, len(specs))
	for name, spec := range specs {
		rule, err := spec.toRule()
		if err != nil {
			return nil, &RuleParseError{Field: name, Err: err}
		}
		rules[name] = rule
	}
	return rules, nil
}

var knownReasons = map[Reason]struct{}{
	ReasonMissingRequired: {},
	ReasonInvalidEmail:    {},
	ReasonTooShort:        {},
	ReasonTooLong:         {},
	ReasonPatternMismatch: {},
	ReasonFieldMismatch:   {},
	ReasonCustomRejected:  {},
}

func (s ruleSpec) toRule() (Rule, error) {
	rule := Rule{
		Required:  s.Required,
		Email:     s.Email,
		MinLength: s.MinLength,
		MaxLength: s.MaxLength,
		Match:     strings.TrimSpace(s.Match),
	}

	if s.MinLength < 0 || s.MaxLength < 0 {
		return Rule{}, fmt.Errorf("length bounds cannot be negative")
	}

	if s.Pattern != "" {
		p, err := regexp.Compile(s.Pattern)
		if err != nil {
			return Rule{}, fmt.Errorf("compile pattern: %w", err)
		}
		rule.Pattern = anchorPattern(p)
	}

	if len(s.Messages) > 0 {
		rule.Messages = make(map[Reason]string, len(s.Messages))
		for key, msg := range s.Messages {
			reason := Reason(key)
			if _, ok := knownReasons[reason]; !ok {
				return Rule{}, fmt.Errorf("unknown message key %q", key)
			}
			rule.Messages[reason] = msg
		}
	}

	return rule, nil
}
