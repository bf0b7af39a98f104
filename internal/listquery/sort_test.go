package listquery

import "testing"

var newsSortable = SortMap{
	"createdAt":   "created_at",
	"publishedAt": "published_at",
	"titleEn":     "title_en",
}

var newsDefault = Sort{Column: "created_at", Direction: "DESC"}

func TestResolveSort(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Sort
	}{
		{"json_desc", `{"field":"publishedAt","order":"desc"}`, Sort{"published_at", "DESC"}},
		{"json_asc", `{"field":"titleEn","order":"asc"}`, Sort{"title_en", "ASC"}},
		{"dot_desc", "publishedAt.desc", Sort{"published_at", "DESC"}},
		{"dot_asc", "titleEn.asc", Sort{"title_en", "ASC"}},
		{"bare_field_defaults_asc", "titleEn", Sort{"title_en", "ASC"}},
		{"unknown_direction_maps_asc", "titleEn.sideways", Sort{"title_en", "ASC"}},
		{"unmapped_field", "passwordHash.desc", newsDefault},
		{"malformed_json", `{"field":`, newsDefault},
		{"empty", "", newsDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSort(tt.token, newsSortable, newsDefault)
			if got != tt.want {
				t.Fatalf("ResolveSort(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{1, 10, 1, 10},
		{0, 10, 1, 10},
		{-3, 0, 1, DefaultPageSize},
		{2, 500, 2, MaxPageSize},
	}

	for _, tt := range tests {
		p, s := ClampPage(tt.page, tt.size)
		if p != tt.wantPage || s != tt.wantSize {
			t.Errorf("ClampPage(%d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.size, p, s, tt.wantPage, tt.wantSize)
		}
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}

	for _, tt := range tests {
		if got := PageCount(tt.total, tt.size); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestOffsetLimit(t *testing.T) {
	offset, limit := OffsetLimit(2, 10)
	if offset != 10 || limit != 10 {
		t.Fatalf("OffsetLimit(2, 10) = (%d, %d), want (10, 10)", offset, limit)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"in_review", "In Review"},
		{"open", "Open"},
		{"", ""},
		{"price_alert", "Price Alert"},
	}
	for _, tt := range tests {
		if got := Label(tt.in); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
