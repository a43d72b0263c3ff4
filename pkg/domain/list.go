package domain

import "strings"

// SplitList normalizes comma-separated text into trimmed, non-empty entries.
// The result is never nil so it encodes as [] rather than null.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList renders a list field for editing.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
