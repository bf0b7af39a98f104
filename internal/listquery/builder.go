package listquery

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// buildWhere renders predicates plus the generic-search fallback into a WHERE
// body with numbered placeholders starting at argIndex. base is a fixed raw
// condition prepended as-is (e.g. "deleted_at IS NULL"); it carries no
// arguments. Returns the joined clause, the argument slice and the next free
// placeholder index. An empty clause means no WHERE is needed.
func buildWhere(base string, preds []Predicate, search string, searchColumns []string, argIndex int) (string, []any, int) {
	var clauses []string
	var args []any

	if base != "" {
		clauses = append(clauses, base)
	}

	for _, p := range preds {
		switch p.Kind {
		case KindEquals, KindID:
			clauses = append(clauses, fmt.Sprintf("%s = $%d", p.Column, argIndex))
			args = append(args, p.Value)
			argIndex++
		case KindContains:
			clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", p.Column, argIndex))
			args = append(args, "%"+fmt.Sprint(p.Value)+"%")
			argIndex++
		case KindInSet:
			clauses = append(clauses, fmt.Sprintf("%s = ANY($%d)", p.Column, argIndex))
			args = append(args, pq.Array(p.Value.([]string)))
			argIndex++
		case KindBoolSet:
			clauses = append(clauses, fmt.Sprintf("%s = $%d", p.Column, argIndex))
			args = append(args, p.Value)
			argIndex++
		case KindDateRange:
			r := p.Value.(Range)
			clauses = append(clauses, fmt.Sprintf("%s BETWEEN $%d AND $%d", p.Column, argIndex, argIndex+1))
			args = append(args, r.From, r.To)
			argIndex += 2
		}
	}

	if search != "" && len(searchColumns) > 0 {
		var ors []string
		for _, col := range searchColumns {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, argIndex))
			args = append(args, "%"+search+"%")
			argIndex++
		}
		clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
	}

	return strings.Join(clauses, " AND "), args, argIndex
}
