package skill

import "strings"

// Normalize returns the comparison form of a skill label. The stored label keeps its
// original casing; only comparisons go through Normalize.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Dedupe trims labels, drops empty ones and keeps the first spelling of each
// case-insensitive duplicate, preserving input order.
func Dedupe(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := Normalize(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Set builds the normalized lookup set of a skill list.
func Set(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		out[Normalize(s)] = struct{}{}
	}
	return out
}
