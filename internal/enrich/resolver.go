// Package enrich resolves foreign references across independently owned data
// stores. Primary rows carry ids owned by another database; a Resolver turns
// those ids into one deduplicated bulk fetch and an in-memory lookup map, so
// a page of rows never costs more than one query per foreign store.
package enrich

import "context"

// Resolver bulk-resolves foreign ids of one store.
type Resolver[K comparable, V any] struct {
	// Fetch loads the entities for a deduplicated id list. Missing ids are
	// simply absent from the result; that is not an error.
	Fetch func(ctx context.Context, ids []K) ([]V, error)
	// Key extracts the id a fetched entity is stored under.
	Key func(V) K
	// Placeholder is returned by Lookup for ids the fetch did not cover.
	// The stores are not transactionally consistent, so a row deleted
	// between the primary fetch and the enrichment fetch lands here.
	Placeholder func(K) V
}

// ResolveMany fetches the entities for ids in a single call, deduplicating
// first. A nil or empty id list performs no fetch.
func (r Resolver[K, V]) ResolveMany(ctx context.Context, ids []K) (map[K]V, error) {
	distinct := Distinct(ids)
	if len(distinct) == 0 {
		return map[K]V{}, nil
	}

	entities, err := r.Fetch(ctx, distinct)
	if err != nil {
		return nil, err
	}

	resolved := make(map[K]V, len(entities))
	for _, e := range entities {
		resolved[r.Key(e)] = e
	}
	return resolved, nil
}

// Lookup returns the resolved entity for id, or the placeholder when the
// id was not found. The primary row is never dropped on a miss.
func (r Resolver[K, V]) Lookup(resolved map[K]V, id K) V {
	if v, ok := resolved[id]; ok {
		return v
	}
	return r.Placeholder(id)
}

// Distinct returns the unique ids in first-seen order.
func Distinct[K comparable](ids []K) []K {
	seen := make(map[K]struct{}, len(ids))
	out := make([]K, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
