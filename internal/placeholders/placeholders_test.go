package placeholders

import (
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "no placeholders",
			input:    "no markers here",
			expected: []string{},
		},
		{
			name:     "single placeholder",
			input:    "Hello {{name}}",
			expected: []string{"name"},
		},
		{
			name:     "multiple placeholders",
			input:    "Hello {{ name }}, {{age}}",
			expected: []string{"name", "age"},
		},
		{
			name:     "duplicates preserved in order",
			input:    "{{x}} and {{x}} again",
			expected: []string{"x", "x"},
		},
		{
			name:     "whitespace trimmed",
			input:    "{{  spaced_out  }}",
			expected: []string{"spaced_out"},
		},
		{
			name:     "underscore and dash",
			input:    "{{user_name}} {{user-name}}",
			expected: []string{"user_name", "user-name"},
		},
		{
			name:     "single braces ignored",
			input:    "{name} is not a placeholder",
			expected: []string{},
		},
		{
			name:     "unterminated marker ignored",
			input:    "{{name is never closed",
			expected: []string{},
		},
		{
			name:     "non-grammar content still detected",
			input:    "{{first name!}}",
			expected: []string{"first name!"},
		},
		{
			name:     "adjacent markers",
			input:    "{{a}}{{b}}",
			expected: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Extract() = %v, want %v", result, tt.expected)
			}
			for i, exp := range tt.expected {
				if result[i] != exp {
					t.Errorf("Extract()[%d] = %q, want %q", i, result[i], exp)
				}
			}
		})
	}
}

func TestExtractDistinct(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "duplicates collapsed",
			input:    "{{x}} and {{x}} again",
			expected: []string{"x"},
		},
		{
			name:     "first-seen order kept",
			input:    "{{b}} {{a}} {{b}} {{c}} {{a}}",
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractDistinct(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("ExtractDistinct() = %v, want %v", result, tt.expected)
			}
			for i, exp := range tt.expected {
				if result[i] != exp {
					t.Errorf("ExtractDistinct()[%d] = %q, want %q", i, result[i], exp)
				}
			}
		})
	}
}

func TestIsValidKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"name", true},
		{"user_name-2", true},
		{"UserName", true},
		{"123", true},
		{"-", true},
		{"_", true},
		{"", false},
		{"user name", false},
		{"name!", false},
		{"ä", false},
		{"a.b", false},
		{" name", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsValidKey(tt.key); got != tt.valid {
				t.Errorf("IsValidKey(%q) = %v, want %v", tt.key, got, tt.valid)
			}
		})
	}
}

func TestSuggestKey(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{
			name:     "german diacritics",
			label:    "Größe und Länge",
			expected: "groesse_und_laenge",
		},
		{
			name:     "special characters stripped",
			label:    "User@Name!",
			expected: "username",
		},
		{
			name:     "camel case lowered",
			label:    "UserName",
			expected: "username",
		},
		{
			name:     "spaces become underscores",
			label:    "first name",
			expected: "first_name",
		},
		{
			name:     "uppercase umlaut",
			label:    "Übergröße",
			expected: "uebergroesse",
		},
		{
			name:     "empty label",
			label:    "",
			expected: "",
		},
		{
			name:     "only invalid characters",
			label:    "@!?",
			expected: "",
		},
		{
			name:     "dashes survive",
			label:    "order-id",
			expected: "order-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestKey(tt.label); got != tt.expected {
				t.Errorf("SuggestKey(%q) = %q, want %q", tt.label, got, tt.expected)
			}
		})
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		values   map[string]string
		expected string
	}{
		{
			name:     "all values supplied",
			input:    "Hello {{name}}, you are {{age}} years old.",
			values:   map[string]string{"name": "Alice", "age": "30"},
			expected: "Hello Alice, you are 30 years old.",
		},
		{
			name:     "missing value leaves marker",
			input:    "Hello {{name}}, you are {{age}} years old.",
			values:   map[string]string{"name": "Alice"},
			expected: "Hello Alice, you are {{age}} years old.",
		},
		{
			name:     "every occurrence replaced",
			input:    "{{x}} and {{x}}",
			values:   map[string]string{"x": "y"},
			expected: "y and y",
		},
		{
			name:     "values are not rescanned",
			input:    "{{a}}",
			values:   map[string]string{"a": "{{b}}", "b": "never"},
			expected: "{{b}}",
		},
		{
			name:     "no values",
			input:    "Hello {{name}}",
			values:   map[string]string{},
			expected: "Hello {{name}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.input, tt.values); got != tt.expected {
				t.Errorf("Substitute() = %q, want %q", got, tt.expected)
			}
		})
	}
}
