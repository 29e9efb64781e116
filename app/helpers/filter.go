package helpers

import "strings"

// ContainsFold reports whether any of the fields contains term
// case-insensitively. An empty term matches everything.
func ContainsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchesFilter reports whether value passes an equality filter. The "all"
// sentinel and the empty string match everything.
func MatchesFilter(value, filter string) bool {
	return filter == "" || filter == "all" || value == filter
}

// StoreFilter maps the "all" sentinel to the store's empty filter value.
func StoreFilter(v string) string {
	if v == "all" {
		return ""
	}
	return v
}

// CompactList trims each entry and drops the empty ones. Used for the
// growable list inputs (required documents, benefits) at submit time.
func CompactList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
