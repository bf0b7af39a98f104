package listquery

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var testFields = FieldMap{
	"status":     {Column: "status", Kind: KindInSet},
	"title_en":   {Column: "title_en", Kind: KindContains},
	"is_read":    {Column: "is_read", Kind: KindBoolSet},
	"id":         {Column: "id", Kind: KindID},
	"created_at": {Column: "created_at", Kind: KindDateRange},
}

func TestCompile_OmitsAbsentFilters(t *testing.T) {
	preds := Compile(testFields, map[string][]string{})
	if len(preds) != 0 {
		t.Fatalf("expected no predicates, got %d", len(preds))
	}

	preds = Compile(testFields, map[string][]string{
		"status":   {""},
		"title_en": {"  "},
	})
	if len(preds) != 0 {
		t.Fatalf("empty values should be omitted, got %d predicates", len(preds))
	}
}

func TestCompile_SupplyingFilterAddsExactlyOnePredicate(t *testing.T) {
	raw := map[string][]string{"status": {"open"}}
	before := len(Compile(testFields, raw))

	raw["title_en"] = []string{"fed"}
	after := len(Compile(testFields, raw))

	if after-before != 1 {
		t.Fatalf("adding one filter changed predicate count by %d", after-before)
	}
}

func TestCompile_InSetSplitsCommaLists(t *testing.T) {
	preds := Compile(testFields, map[string][]string{"status": {"open,triaged", "resolved"}})
	if len(preds) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(preds))
	}
	set := preds[0].Value.([]string)
	if len(set) != 3 {
		t.Fatalf("expected 3 set values, got %v", set)
	}
}

func TestCompile_BoolSet(t *testing.T) {
	tests := []struct {
		name      string
		values    []string
		wantPred  bool
		wantValue bool
	}{
		{"only_false", []string{"false"}, true, false},
		{"only_true", []string{"true"}, true, true},
		{"both", []string{"true", "false"}, false, false},
		{"both_comma", []string{"true,false"}, false, false},
		{"garbage", []string{"maybe"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds := Compile(testFields, map[string][]string{"is_read": tt.values})
			if tt.wantPred != (len(preds) == 1) {
				t.Fatalf("got %d predicates, want predicate=%v", len(preds), tt.wantPred)
			}
			if tt.wantPred && preds[0].Value.(bool) != tt.wantValue {
				t.Fatalf("got value %v, want %v", preds[0].Value, tt.wantValue)
			}
		})
	}
}

func TestCompile_MalformedIDBecomesNilSentinel(t *testing.T) {
	preds := Compile(testFields, map[string][]string{"id": {"not-a-uuid"}})
	if len(preds) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(preds))
	}
	if preds[0].Value.(uuid.UUID) != uuid.Nil {
		t.Fatalf("malformed id should compile to uuid.Nil, got %v", preds[0].Value)
	}
}

func TestCompile_ValidID(t *testing.T) {
	id := uuid.New()
	preds := Compile(testFields, map[string][]string{"id": {id.String()}})
	if len(preds) != 1 || preds[0].Value.(uuid.UUID) != id {
		t.Fatalf("expected id predicate for %s, got %+v", id, preds)
	}
}

func TestCompile_DateRangeSingleBoundCoversCalendarDay(t *testing.T) {
	preds := Compile(testFields, map[string][]string{"created_at_from": {"2026-03-14"}})
	if len(preds) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(preds))
	}

	r := preds[0].Value.(Range)
	wantFrom := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
	if !r.From.Equal(wantFrom) || !r.To.Equal(wantTo) {
		t.Fatalf("range %v..%v, want %v..%v", r.From, r.To, wantFrom, wantTo)
	}
}

func TestCompile_DateRangeBothBounds(t *testing.T) {
	preds := Compile(testFields, map[string][]string{
		"created_at_from": {"2026-03-01"},
		"created_at_to":   {"2026-03-14"},
	})
	r := preds[0].Value.(Range)
	if r.From.Day() != 1 || r.To.Day() != 14 || r.To.Hour() != 23 {
		t.Fatalf("unexpected range %v..%v", r.From, r.To)
	}
}

func TestCompile_MalformedDateOmitted(t *testing.T) {
	preds := Compile(testFields, map[string][]string{"created_at_from": {"soon"}})
	if len(preds) != 0 {
		t.Fatalf("unparseable date should omit the predicate, got %+v", preds)
	}
}
