package hero

import "strings"

// Hero is one playable character from the static name/id table.
type Hero struct {
	ID   int
	Name string
}

// Resolver translates between hero display names and ids. Name lookups are
// case-insensitive. Implementations are read-only after construction and safe
// for concurrent use.
type Resolver interface {
	NameToID(name string) (int, bool)
	IDToName(id int) (string, bool)
}

// Slug derives the URL path segment some providers key heroes by: the
// display name lower-cased with spaces replaced by hyphens.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
