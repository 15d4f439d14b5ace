// Package search provides fuzzy matching over templates.
package search

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/chazuruo/promptvault/internal/template"
)

// Templates returns the templates matching query, best match first.
// Matching is fuzzy over title, description, and tags. An empty query
// returns the input unchanged.
func Templates(tpls []template.Template, query string) []template.Template {
	if query == "" {
		return tpls
	}

	searchStrings := make([]string, len(tpls))
	for i, tpl := range tpls {
		searchStrings[i] = fmt.Sprintf("%s %s %s",
			tpl.Title,
			tpl.Description,
			strings.Join(tpl.Tags, " "))
	}

	matches := fuzzy.Find(query, searchStrings)

	results := make([]template.Template, 0, len(matches))
	for _, match := range matches {
		results = append(results, tpls[match.Index])
	}

	return results
}

// Definitions returns the placeholder definitions matching query, best
// match first, fuzzy over key and label.
func Definitions(defs []template.PlaceholderDefinition, query string) []template.PlaceholderDefinition {
	if query == "" {
		return defs
	}

	searchStrings := make([]string, len(defs))
	for i, def := range defs {
		searchStrings[i] = def.Key + " " + def.Label
	}

	matches := fuzzy.Find(query, searchStrings)

	results := make([]template.PlaceholderDefinition, 0, len(matches))
	for _, match := range matches {
		results = append(results, defs[match.Index])
	}

	return results
}
