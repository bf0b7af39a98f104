package listquery

import "strings"

// Label turns a snake_case enum token into a display label
// ("in_review" -> "In Review"). Display-only, never parsed back.
func Label(token string) string {
	if token == "" {
		return ""
	}
	words := strings.Split(token, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
