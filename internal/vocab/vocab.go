// Package vocab defines vocabulary sets and the answer matching rule.
package vocab

import "strings"

// DefaultLanguage is used when a set does not declare one.
const DefaultLanguage = "en"

// Set is a named, versioned collection of drill items.
type Set struct {
	Name     string `toml:"name"`
	Version  int    `toml:"version"`
	Language string `toml:"language"`
	Items    []Item `toml:"items"`
}

// Item is one prompt/answer unit within a set.
type Item struct {
	ID         string   `toml:"id"`
	Prompt     string   `toml:"prompt"`
	Answer     string   `toml:"answer"`
	Aliases    []string `toml:"aliases"`
	Tags       []string `toml:"tags"`
	Difficulty int      `toml:"difficulty"`
}

// Entry identifies a set in a catalog without loading it.
type Entry struct {
	ID   string
	Name string
}

// Len returns the number of items in the set.
func (s Set) Len() int {
	return len(s.Items)
}

// Match reports whether input equals the item's answer or one of its aliases.
// Only leading and trailing whitespace is ignored; case is significant.
func Match(item Item, input string) bool {
	candidate := strings.TrimSpace(input)
	if candidate == strings.TrimSpace(item.Answer) {
		return true
	}
	for _, alias := range item.Aliases {
		if candidate == strings.TrimSpace(alias) {
			return true
		}
	}
	return false
}
