package listquery

import (
	"encoding/json"
	"strings"
)

// SortMap is the per-entity allow-list of sortable fields, client name to
// storage column.
type SortMap map[string]string

type sortToken struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// ResolveSort maps a client sort token to a validated column/direction pair.
// Two serializations are accepted: JSON ({"field":"createdAt","order":"desc"})
// and dot notation (createdAt.desc). A malformed token or an unmapped field
// falls back to def; any direction other than desc resolves to ASC.
func ResolveSort(token string, allowed SortMap, def Sort) Sort {
	field, order, ok := parseSortToken(token)
	if !ok {
		return def
	}

	column, ok := allowed[field]
	if !ok {
		return def
	}

	direction := "ASC"
	if strings.EqualFold(order, "desc") {
		direction = "DESC"
	}

	return Sort{Column: column, Direction: direction}
}

func parseSortToken(token string) (field, order string, ok bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "", false
	}

	if strings.HasPrefix(token, "{") {
		var st sortToken
		if err := json.Unmarshal([]byte(token), &st); err != nil || st.Field == "" {
			return "", "", false
		}
		return st.Field, st.Order, true
	}

	if idx := strings.LastIndex(token, "."); idx > 0 {
		return token[:idx], token[idx+1:], true
	}
	return token, "", true
}
