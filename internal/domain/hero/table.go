package hero

import (
	"fmt"
	"os"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// Table is the static id/name lookup loaded once at startup. It satisfies
// Resolver and never changes after construction.
type Table struct {
	idToName map[int]string
	nameToID map[string]int
	names    []string
}

// tableEntry mirrors one value of the heroes file: a map of string-encoded
// ids to hero metadata, as published by the dotaconstants project.
type tableEntry struct {
	ID            int    `json:"id"`
	LocalizedName string `json:"localized_name"`
}

// LoadTable reads and parses the heroes file. Callers that need id
// resolution treat a failure here as fatal.
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read heroes file: %w", err)
	}

	entries := map[string]tableEntry{}
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode heroes file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("heroes file %s holds no heroes", path)
	}

	heroes := make([]Hero, 0, len(entries))
	for _, entry := range entries {
		if entry.ID <= 0 || entry.LocalizedName == "" {
			return nil, fmt.Errorf("heroes file %s holds an incomplete entry: %+v", path, entry)
		}
		heroes = append(heroes, Hero{ID: entry.ID, Name: entry.LocalizedName})
	}

	return NewTable(heroes), nil
}

func NewTable(heroes []Hero) *Table {
	t := &Table{
		idToName: make(map[int]string, len(heroes)),
		nameToID: make(map[string]int, len(heroes)),
		names:    make([]string, 0, len(heroes)),
	}
	for _, h := range heroes {
		t.idToName[h.ID] = h.Name
		t.nameToID[strings.ToLower(h.Name)] = h.ID
		t.names = append(t.names, h.Name)
	}
	sort.Strings(t.names)

	return t
}

func (t *Table) NameToID(name string) (int, bool) {
	id, ok := t.nameToID[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

func (t *Table) IDToName(id int) (string, bool) {
	name, ok := t.idToName[id]
	return name, ok
}

// Names returns all hero display names in alphabetical order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}
