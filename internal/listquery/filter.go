package listquery

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Accepted layouts for date-range bounds. Date-only bounds are widened to
// cover the whole calendar day.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Compile translates raw query values into predicates. Filter names absent
// from fields are ignored; absent or empty values are omitted. For
// KindDateRange the bounds are read from "<name>_from" and "<name>_to";
// an unparseable bound drops the whole predicate rather than erroring.
func Compile(fields FieldMap, raw map[string][]string) []Predicate {
	var preds []Predicate

	// Stable predicate order keeps the generated SQL deterministic.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := fields[name]
		if field.Kind == KindDateRange {
			if p, ok := compileDateRange(field.Column, first(raw[name+"_from"]), first(raw[name+"_to"])); ok {
				preds = append(preds, p)
			}
			continue
		}

		values := splitValues(raw[name])
		if len(values) == 0 {
			continue
		}

		switch field.Kind {
		case KindEquals, KindContains:
			preds = append(preds, Predicate{Column: field.Column, Kind: field.Kind, Value: values[0]})
		case KindInSet:
			preds = append(preds, Predicate{Column: field.Column, Kind: KindInSet, Value: values})
		case KindBoolSet:
			if p, ok := compileBoolSet(field.Column, values); ok {
				preds = append(preds, p)
			}
		case KindID:
			id, err := uuid.Parse(values[0])
			if err != nil {
				// Matches nothing; a bad id pasted into the filter box
				// shows an empty table, not an error.
				id = uuid.Nil
			}
			preds = append(preds, Predicate{Column: field.Column, Kind: KindID, Value: id})
		}
	}

	return preds
}

func compileDateRange(column, from, to string) (Predicate, bool) {
	fromT, fromDateOnly, fromOK := parseDate(from)
	toT, toDateOnly, toOK := parseDate(to)

	if !fromOK && !toOK {
		return Predicate{}, false
	}

	// A single supplied bound means "that calendar day".
	if !toOK {
		toT, toDateOnly = fromT, fromDateOnly
	}
	if !fromOK {
		fromT, fromDateOnly = toT, toDateOnly
	}

	if fromDateOnly {
		fromT = startOfDay(fromT)
	}
	if toDateOnly {
		toT = endOfDay(toT)
	}

	return Predicate{Column: column, Kind: KindDateRange, Value: Range{From: fromT, To: toT}}, true
}

func parseDate(s string) (t time.Time, dateOnly, ok bool) {
	if s == "" {
		return time.Time{}, false, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, layout == "2006-01-02", true
		}
	}
	return time.Time{}, false, false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func compileBoolSet(column string, values []string) (Predicate, bool) {
	var hasTrue, hasFalse bool
	for _, v := range values {
		switch strings.ToLower(v) {
		case "true", "1":
			hasTrue = true
		case "false", "0":
			hasFalse = true
		}
	}
	// Both states selected is the same as no filter.
	if hasTrue == hasFalse {
		return Predicate{}, false
	}
	return Predicate{Column: column, Kind: KindBoolSet, Value: hasTrue}, true
}

// splitValues flattens repeated params and comma-separated lists, dropping
// empty entries.
func splitValues(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func first(values []string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
