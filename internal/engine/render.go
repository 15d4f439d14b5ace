// Package engine implements the two core operations on templates:
// synchronization of associations against template content, and
// rendering of placeholder values into a final string.
package engine

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chazuruo/promptvault/internal/placeholders"
	"github.com/chazuruo/promptvault/internal/template"
)

// MissingRequiredError reports a required placeholder with no value
// (or a whitespace-only value) at render time.
type MissingRequiredError struct {
	Label string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("required placeholder %q has no value", e.Label)
}

// InvalidValueError reports a supplied value that fails its
// definition's type validation.
type InvalidValueError struct {
	Label  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %q: %s", e.Label, e.Reason)
}

// UnfilledError reports placeholder markers still present after
// substitution. This catches optional placeholders too: a render is
// only complete when zero markers remain.
type UnfilledError struct {
	Keys []string
}

func (e *UnfilledError) Error() string {
	return "unfilled placeholders: " + strings.Join(e.Keys, ", ")
}

// Render substitutes values into the template content and returns the
// final string. It fails, scanning associations in order, on the first
// required placeholder without a value, then on the first value that
// violates its definition's type, and finally if any {{...}} markers
// survive substitution.
func Render(tpl *template.Template, values map[string]string) (string, error) {
	assocs := resolvedAssociations(tpl)

	for _, a := range assocs {
		if !a.IsRequired {
			continue
		}
		if strings.TrimSpace(values[a.Definition.Key]) == "" {
			return "", &MissingRequiredError{Label: a.Definition.Label}
		}
	}

	for _, a := range assocs {
		value := values[a.Definition.Key]
		if strings.TrimSpace(value) == "" {
			continue
		}
		if err := validateValue(a.Definition, value); err != nil {
			return "", err
		}
	}

	result := placeholders.Substitute(tpl.Content, values)

	if leftover := placeholders.ExtractDistinct(result); len(leftover) > 0 {
		return "", &UnfilledError{Keys: leftover}
	}

	return result, nil
}

// Preview substitutes whatever values are available and returns the
// text as-is, unresolved markers included. Never fails; used for
// live-typing feedback.
func Preview(tpl *template.Template, values map[string]string) string {
	return placeholders.Substitute(tpl.Content, values)
}

// validateValue checks a non-empty value against the definition type.
// Text and date values pass unchecked; date format is the caller's
// responsibility upstream.
func validateValue(def *template.PlaceholderDefinition, value string) error {
	switch def.Type {
	case template.TypeNumber:
		if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
			return &InvalidValueError{Label: def.Label, Reason: "must be a number"}
		}
	case template.TypeSingleChoice:
		if !containsOption(def.Options, value) {
			return &InvalidValueError{Label: def.Label, Reason: "must be one of the predefined options"}
		}
	case template.TypeMultiChoice:
		var offending []string
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !containsOption(def.Options, part) {
				offending = append(offending, part)
			}
		}
		if len(offending) > 0 {
			return &InvalidValueError{
				Label:  def.Label,
				Reason: "invalid selection: " + strings.Join(offending, ", "),
			}
		}
	}
	return nil
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

// resolvedAssociations returns the template's associations that carry a
// definition, in stored order. An association whose definition cannot
// be resolved is a data-integrity violation: it is logged and skipped,
// never silently ignored.
func resolvedAssociations(tpl *template.Template) []template.Association {
	resolved := make([]template.Association, 0, len(tpl.Associations))
	for _, a := range tpl.Associations {
		if a.Definition == nil {
			fmt.Fprintf(os.Stderr, "Warning: association %s on template %q has no definition, skipping\n",
				a.ID, tpl.Title)
			continue
		}
		resolved = append(resolved, a)
	}
	return resolved
}
