package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Regex patterns shared by the contact and newsletter forms.
// The email pattern is intentionally simple: one @, at least one dot
// after it, no whitespace. Matches what the frontend enforces.
var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Rule describes the constraints for a single form field. Zero values
// disable a check (MinLength 0 means no minimum, nil Pattern means no
// pattern check).
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	// Custom may veto a value with its own message. It runs last and
	// only when all configured checks passed.
	Custom func(value string) string
}

// RuleSet maps field names to their rules.
type RuleSet map[string]Rule

// FieldError is the normalized per-field violation descriptor sent over
// the wire. Downstream code never sees a library-specific error shape.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating a whole form. Errors holds a
// message for a field iff that field violates at least one rule.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// ValidateField checks a single value against the rule registered for
// fieldName. It returns an empty string when the value is valid, or the
// first violation message otherwise. Checks run in a fixed order and
// short-circuit: required, min length, max length, pattern, custom.
//
// A field with no registered rule is always valid. A non-required field
// that is empty (after trimming) is valid without further checks.
func ValidateField(fieldName, value string, rules RuleSet) string {
	rule, ok := rules[fieldName]
	if !ok {
		return ""
	}

	empty := strings.TrimSpace(value) == ""
	if rule.Required && empty {
		return "This field is required"
	}
	if empty {
		return ""
	}

	length := utf8.RuneCountInString(value)
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Sprintf("Must be at least %d characters", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Sprintf("Must be at most %d characters", rule.MaxLength)
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return "Invalid format"
	}
	if rule.Custom != nil {
		if msg := rule.Custom(value); msg != "" {
			return msg
		}
	}
	return ""
}

// ValidateForm applies ValidateField to every field present in values.
// Fields in the rule set but absent from values are not checked; the
// caller is expected to pass all tracked fields.
func ValidateForm(values map[string]string, rules RuleSet) Result {
	result := Result{Valid: true, Errors: map[string]string{}}
	for field, value := range values {
		if msg := ValidateField(field, value, rules); msg != "" {
			result.Errors[field] = msg
			result.Valid = false
		}
	}
	return result
}

// FieldErrors flattens the error map into wire-shaped descriptors,
// sorted by field name so responses are deterministic.
func (r Result) FieldErrors() []FieldError {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]FieldError, 0, len(r.Errors))
	for field, msg := range r.Errors {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

// ContactRules is the rule set for the contact form. It is applied both
// by the form controller (for live feedback) and by the submission
// endpoint (for enforcement), so the two can never silently diverge.
func ContactRules() RuleSet {
	return RuleSet{
		"name":    {Required: true, MinLength: 2, MaxLength: 50, Pattern: nameRegex},
		"email":   {Required: true, Pattern: emailRegex},
		"subject": {Required: true, MinLength: 5, MaxLength: 100},
		"message": {Required: true, MinLength: 10, MaxLength: 1000},
	}
}

// NewsletterRules is the rule set for the newsletter subscription form.
func NewsletterRules() RuleSet {
	return RuleSet{
		"email": {Required: true, Pattern: emailRegex},
	}
}
