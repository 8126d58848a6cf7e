// Package sharedpath parses entity subroutes for admin route modules.
package sharedpath

import "strings"

// SplitPathParts normalizes a slash-delimited route suffix into non-empty path segments.
func SplitPathParts(path string) []string {
	rawParts := strings.Split(path, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

// EntityRoute splits a request path below prefix into an entity id and an
// optional action segment, accepting "<id>" and "<id>/<action>" only.
func EntityRoute(path string, prefix string) (id string, action string, ok bool) {
	rest, found := strings.CutPrefix(path, prefix)
	if !found {
		return "", "", false
	}
	parts := SplitPathParts(rest)
	switch len(parts) {
	case 1:
		return parts[0], "", true
	case 2:
		return parts[0], parts[1], true
	default:
		return "", "", false
	}
}
