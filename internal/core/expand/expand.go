// Package expand performs literal token substitution on HTML bodies.
package expand

import "strings"

// Expand replaces every occurrence of each token key in html with its mapped
// value in a single pass. An empty token map returns html unchanged without
// scanning. Matching is exact-substring, leftmost-first, non-overlapping;
// tokens absent from the map are never touched.
func Expand(html string, tokens map[string]string) string {
	if len(tokens) == 0 {
		return html
	}

	pairs := make([]string, 0, len(tokens)*2)
	for token, value := range tokens {
		pairs = append(pairs, token, value)
	}

	return strings.NewReplacer(pairs...).Replace(html)
}
