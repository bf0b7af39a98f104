package enrich

import (
	"context"
	"errors"
	"testing"
)

type author struct {
	ID   string
	Name string
}

func testResolver(store map[string]author, calls *int, captured *[]string) Resolver[string, author] {
	return Resolver[string, author]{
		Fetch: func(ctx context.Context, ids []string) ([]author, error) {
			*calls++
			*captured = append([]string{}, ids...)
			var out []author
			for _, id := range ids {
				if a, ok := store[id]; ok {
					out = append(out, a)
				}
			}
			return out, nil
		},
		Key:         func(a author) string { return a.ID },
		Placeholder: func(id string) author { return author{ID: id, Name: "Unknown User"} },
	}
}

func TestResolveMany_SingleDedupedFetch(t *testing.T) {
	store := map[string]author{
		"u1": {ID: "u1", Name: "Nadia"},
		"u2": {ID: "u2", Name: "Omar"},
	}
	var calls int
	var captured []string
	r := testResolver(store, &calls, &captured)

	// 6 primary rows, 3 distinct foreign ids.
	ids := []string{"u1", "u2", "u1", "u3", "u2", "u1"}
	resolved, err := r.ResolveMany(context.Background(), ids)
	if err != nil {
		t.Fatalf("ResolveMany error: %v", err)
	}

	if calls != 1 {
		t.Errorf("bulk fetch invoked %d times, want 1", calls)
	}
	if len(captured) != 3 {
		t.Errorf("fetch received %d ids, want 3 distinct: %v", len(captured), captured)
	}
	if len(resolved) != 2 {
		t.Errorf("resolved %d entities, want 2", len(resolved))
	}
}

func TestLookup_PlaceholderOnMiss(t *testing.T) {
	store := map[string]author{"u1": {ID: "u1", Name: "Nadia"}}
	var calls int
	var captured []string
	r := testResolver(store, &calls, &captured)

	resolved, err := r.ResolveMany(context.Background(), []string{"u1", "gone"})
	if err != nil {
		t.Fatalf("ResolveMany error: %v", err)
	}

	if got := r.Lookup(resolved, "u1").Name; got != "Nadia" {
		t.Errorf("hit resolved to %q, want Nadia", got)
	}
	if got := r.Lookup(resolved, "gone").Name; got != "Unknown User" {
		t.Errorf("miss resolved to %q, want the placeholder", got)
	}
}

func TestResolveMany_EmptyIDsSkipFetch(t *testing.T) {
	var calls int
	var captured []string
	r := testResolver(nil, &calls, &captured)

	resolved, err := r.ResolveMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("ResolveMany error: %v", err)
	}
	if calls != 0 {
		t.Errorf("fetch invoked %d times for empty ids, want 0", calls)
	}
	if len(resolved) != 0 {
		t.Errorf("expected empty map, got %v", resolved)
	}
}

func TestResolveMany_FetchErrorPropagates(t *testing.T) {
	boom := errors.New("store down")
	r := Resolver[string, author]{
		Fetch:       func(ctx context.Context, ids []string) ([]author, error) { return nil, boom },
		Key:         func(a author) string { return a.ID },
		Placeholder: func(id string) author { return author{} },
	}

	if _, err := r.ResolveMany(context.Background(), []string{"u1"}); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error to propagate, got %v", err)
	}
}

func TestDistinct_PreservesOrder(t *testing.T) {
	got := Distinct([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Distinct = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Distinct = %v, want %v", got, want)
		}
	}
}
