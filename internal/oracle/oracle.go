// Package oracle defines the engine's view of the external full-text index
// (spec §6) and ships two implementations: a Meilisearch-backed production
// client and an in-memory fixture used by tests and local development.
package oracle

import (
	"context"

	"github.com/cbouillon/frrerank/model"
)

// SearchParams carries the per-strategy oracle call parameters (spec
// §4.7).
type SearchParams struct {
	Limit                int
	SearchableAttributes []string
	Filters              interface{}
}

// Oracle is the engine's narrow view of the external index: give it a
// query variant and a restriction to a set of searchable attributes, get
// back a flat list of candidate attribute bags.
type Oracle interface {
	Search(ctx context.Context, index, query string, params SearchParams) ([]model.Candidate, error)
}
