package update

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

func newUUID() string {
	return uuid.NewString()
}

// shortID trims generated ids for display. Template-derived instance ids keep
// their prefix so they stay recognisable.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	if _, err := uuid.Parse(id); err == nil {
		return id[:8]
	}
	return id
}

// resolveID finds the id equal to ref, or else the single id starting with it.
func resolveID(ids []string, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty id")
	}
	if slices.Contains(ids, ref) {
		return ref, nil
	}
	var match string
	for _, id := range ids {
		if strings.HasPrefix(id, ref) {
			if match != "" {
				return "", fmt.Errorf("id %q is ambiguous", ref)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no item with id %q", ref)
	}
	return match, nil
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (part*100 + total/2) / total
}
