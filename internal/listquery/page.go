package listquery

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ClampPage normalizes (page, pageSize): page below 1 becomes 1, pageSize
// defaults to DefaultPageSize and is capped at MaxPageSize.
func ClampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// OffsetLimit converts a 1-based page into SQL offset/limit.
func OffsetLimit(page, pageSize int) (offset, limit int) {
	return (page - 1) * pageSize, pageSize
}

// PageCount returns ceil(totalCount / pageSize). pageSize must be >= 1,
// which ClampPage guarantees.
func PageCount(totalCount, pageSize int) int {
	return (totalCount + pageSize - 1) / pageSize
}
