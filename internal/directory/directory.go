// Package directory resolves agent identifiers (numeric IDs, full names, or
// first names) against a static roster of support agents.
package directory

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hellausefulsoftware/zendesk-mcp/internal/logging"
)

//go:embed agents.json
var bundledRoster []byte

// NotFoundError reports an agent identifier that matched no roster entry.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no agent found with name or ID: %s", e.Identifier)
}

// entry is one roster row. Full names are unique as strings; first names
// may collide across entries.
type entry struct {
	FullName string
	AgentID  int64
}

// Directory is the read-only name-to-ID lookup table. It is populated once
// at construction and never mutated afterwards, so concurrent readers need
// no synchronization.
type Directory struct {
	entries []entry
	byName  map[string]int64
}

// New builds a Directory from the roster at path, or from the roster
// bundled with the binary when path is empty. A missing or malformed
// roster is logged and yields an empty table rather than an error: name
// lookups will fail with NotFoundError but numeric IDs still resolve.
func New(path string) *Directory {
	data := bundledRoster
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			logging.Warn("failed to read agent roster, name resolution disabled", "path", path, "error", err)
			return &Directory{byName: map[string]int64{}}
		}
		data = fileData
	}

	entries, err := parseRoster(data)
	if err != nil {
		logging.Warn("failed to parse agent roster, name resolution disabled", "error", err)
		return &Directory{byName: map[string]int64{}}
	}

	byName := make(map[string]int64, len(entries))
	for _, e := range entries {
		byName[e.FullName] = e.AgentID
	}

	return &Directory{entries: entries, byName: byName}
}

// parseRoster decodes an ordered JSON array of [fullName, agentID] pairs.
func parseRoster(data []byte) ([]entry, error) {
	var pairs [][]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("roster is not an array of pairs: %w", err)
	}

	entries := make([]entry, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("roster entry %d has %d elements, want 2", i, len(pair))
		}

		var e entry
		if err := json.Unmarshal(pair[0], &e.FullName); err != nil {
			return nil, fmt.Errorf("roster entry %d has a non-string name: %w", i, err)
		}
		if err := json.Unmarshal(pair[1], &e.AgentID); err != nil {
			return nil, fmt.Errorf("roster entry %d has a non-integer ID: %w", i, err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Len reports the number of roster entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// Resolve maps an agent reference to one or more agent IDs.
//
// Numeric references resolve to themselves without consulting the roster
// and without an existence check: an unknown ID simply produces an empty
// downstream search. Name references try an exact, case-sensitive full-name
// match first, then fan out to every agent whose first name matches the
// reference's first token case-insensitively.
func (d *Directory) Resolve(ref AgentRef) ([]int64, error) {
	if ref.Numeric() {
		return []int64{ref.ID()}, nil
	}

	name := ref.Name()
	if id, ok := d.byName[name]; ok {
		return []int64{id}, nil
	}

	firstName := strings.ToLower(firstToken(name))
	var ids []int64
	for _, e := range d.entries {
		if strings.ToLower(firstToken(e.FullName)) == firstName {
			ids = append(ids, e.AgentID)
		}
	}

	if len(ids) == 0 {
		return nil, &NotFoundError{Identifier: name}
	}

	return ids, nil
}

// firstToken returns the first whitespace-delimited token of s.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
