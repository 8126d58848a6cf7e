package listview

import "strings"

// StatusAll is the status filter sentinel that matches every value.
const StatusAll = "all"

// Filter keeps items where any of the designated fields contains term,
// case-insensitively. The source slice is never modified and an empty term
// keeps everything.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if term == "" || fields == nil || matchesAny(fields(item), term) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAny(values []string, lowerTerm string) bool {
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), lowerTerm) {
			return true
		}
	}
	return false
}

// MatchStatus reports whether value passes the status filter.
func MatchStatus(value string, filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || filter == StatusAll {
		return true
	}
	return value == filter
}

// FilterStatus keeps items whose status passes MatchStatus.
func FilterStatus[T any](items []T, filter string, status func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if MatchStatus(status(item), filter) {
			out = append(out, item)
		}
	}
	return out
}
