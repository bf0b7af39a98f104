package listquery

import (
	"net/url"
	"strconv"
	"strings"
)

// Params are the raw list options every listing endpoint recognizes. Filters
// holds everything that is not one of the reserved keys.
type Params struct {
	Page     int
	PageSize int
	Search   string
	Sort     string
	Filters  map[string][]string
}

// ParamsFromQuery splits URL query values into pagination, search, sort and
// entity-specific filters.
func ParamsFromQuery(values url.Values) Params {
	p := Params{
		Page:     atoiDefault(values.Get("page"), 1),
		PageSize: atoiDefault(values.Get("pageSize"), DefaultPageSize),
		Search:   strings.TrimSpace(values.Get("search")),
		Sort:     values.Get("sort"),
		Filters:  map[string][]string{},
	}

	for key, vals := range values {
		switch key {
		case "page", "pageSize", "search", "sort":
			continue
		}
		p.Filters[key] = vals
	}

	return p
}

// BuildSpec assembles a Spec from params and the entity's declared filter,
// search and sort surface.
func BuildSpec(p Params, fields FieldMap, searchColumns []string, sortable SortMap, defaultSort Sort) Spec {
	return Spec{
		Predicates:    Compile(fields, p.Filters),
		Search:        p.Search,
		SearchColumns: searchColumns,
		Sort:          ResolveSort(p.Sort, sortable, defaultSort),
		Page:          p.Page,
		PageSize:      p.PageSize,
	}
}

func atoiDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
