// Package placeholders provides placeholder extraction, key validation,
// key suggestion, and substitution for template text.
package placeholders

import (
	"regexp"
	"strings"
)

var (
	// placeholderRegex matches {{key}} markers in template text.
	// The capture is deliberately permissive: anything between the braces
	// that is not a closing brace counts as a detected key. Grammar
	// checking is a separate step (IsValidKey) so that sync still sees
	// malformed markers.
	placeholderRegex = regexp.MustCompile(`\{\{([^}]+)\}\}`)

	// keyRegex is the placeholder key grammar.
	keyRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	// keyCharRegex matches characters outside the key grammar.
	keyCharRegex = regexp.MustCompile(`[^A-Za-z0-9_-]`)
)

// Extract returns every placeholder key found in s, in order of
// appearance, with surrounding whitespace trimmed. Duplicates are
// preserved; callers that need distinct keys use ExtractDistinct.
func Extract(s string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(s, -1)
	result := make([]string, 0, len(matches))

	for _, m := range matches {
		if len(m) > 1 {
			result = append(result, strings.TrimSpace(m[1]))
		}
	}

	return result
}

// ExtractDistinct returns the unique placeholder keys found in s, in
// order of first appearance.
func ExtractDistinct(s string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, key := range Extract(s) {
		if !seen[key] {
			seen[key] = true
			result = append(result, key)
		}
	}

	return result
}

// IsValidKey reports whether key matches the placeholder key grammar:
// one or more of [A-Za-z0-9_-], nothing else. The empty string is not
// a valid key.
func IsValidKey(key string) bool {
	return keyRegex.MatchString(key)
}

// SuggestKey derives a valid placeholder key from a human label.
// Lowercases, replaces spaces with underscores, transliterates the
// German diacritics (ä→ae, ö→oe, ü→ue, ß→ss), and strips everything
// outside the key grammar. Deterministic and total; an empty label
// yields an empty key. Uniqueness is the caller's problem.
func SuggestKey(label string) string {
	key := strings.ToLower(label)
	key = strings.ReplaceAll(key, " ", "_")

	// Diacritic substitution happens after lowercasing so that Ä and ä
	// both land on "ae".
	replacer := strings.NewReplacer(
		"ä", "ae",
		"ö", "oe",
		"ü", "ue",
		"ß", "ss",
	)
	key = replacer.Replace(key)

	return keyCharRegex.ReplaceAllString(key, "")
}

// Substitute replaces every literal occurrence of {{key}} with its
// value in a single left-to-right pass. Substituted values are never
// rescanned: a value containing {{other}} stays verbatim in the output.
// Keys without a marker in s are ignored, markers without a supplied
// value are left in place. The lookup is literal, so {{ name }} only
// matches a value keyed " name ".
func Substitute(s string, values map[string]string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, "{{")
		if open < 0 {
			b.WriteString(s)
			break
		}
		end := strings.Index(s[open+2:], "}}")
		if end < 0 {
			b.WriteString(s)
			break
		}

		key := s[open+2 : open+2+end]
		value, ok := values[key]
		if !ok {
			// Keep the opening braces and rescan from just past them so
			// an overlapping marker later in the string is still found.
			b.WriteString(s[:open+2])
			s = s[open+2:]
			continue
		}

		b.WriteString(s[:open])
		b.WriteString(value)
		s = s[open+2+end+2:]
	}
	return b.String()
}
