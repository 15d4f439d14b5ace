// Package cli provides Cobra command definitions for promptvault.
package cli

// NoInput disables interactive prompts. The root command binds its
// persistent --no-input flag to this; commands consult it before
// opening a form and fall back to flag-only behavior when set.
var NoInput bool
