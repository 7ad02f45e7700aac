package oracle

import (
	"context"
	"strings"

	"github.com/cbouillon/frrerank/model"
)

// FixtureOracle is an in-memory Oracle backed by a fixed candidate list per
// index, used by tests and local development in place of a live
// Meilisearch instance. Matching is a simple case-insensitive substring
// test against the attributes SearchParams restricts to, applied in
// insertion order so results are deterministic.
type FixtureOracle struct {
	indexes map[string][]model.Candidate
}

// NewFixtureOracle builds an empty FixtureOracle.
func NewFixtureOracle() *FixtureOracle {
	return &FixtureOracle{indexes: make(map[string][]model.Candidate)}
}

// Seed registers the candidate documents for an index, replacing any
// previous contents.
func (o *FixtureOracle) Seed(index string, docs []model.Candidate) {
	o.indexes[index] = docs
}

// Search scans the seeded documents for the index in insertion order,
// keeping any whose restricted attributes contain query as a
// case-insensitive substring, up to params.Limit.
func (o *FixtureOracle) Search(_ context.Context, index, query string, params SearchParams) ([]model.Candidate, error) {
	docs := o.indexes[index]
	if query == "" {
		return []model.Candidate{}, nil
	}
	needle := strings.ToLower(query)

	limit := params.Limit
	if limit <= 0 {
		limit = len(docs)
	}

	out := make([]model.Candidate, 0, limit)
	for _, doc := range docs {
		if len(out) >= limit {
			break
		}
		if matchesAny(doc, params.SearchableAttributes, needle) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func matchesAny(doc model.Candidate, attrs []string, needle string) bool {
	for _, attr := range attrs {
		if strings.Contains(strings.ToLower(doc.Attr(attr)), needle) {
			return true
		}
	}
	return false
}
