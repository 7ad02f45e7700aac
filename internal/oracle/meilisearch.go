package oracle

import (
	"context"
	"fmt"

	"github.com/meilisearch/meilisearch-go"

	"github.com/cbouillon/frrerank/model"
)

// MeilisearchOracle is the production Oracle, backed by a Meilisearch
// client. The engine treats Meilisearch as an opaque full-text index; this
// type is the only place in the module that knows about its wire shape.
type MeilisearchOracle struct {
	client meilisearch.ServiceManager
}

// NewMeilisearchOracle builds a MeilisearchOracle against the given host
// and API key.
func NewMeilisearchOracle(host, apiKey string) *MeilisearchOracle {
	client := meilisearch.New(host, meilisearch.WithAPIKey(apiKey))
	return &MeilisearchOracle{client: client}
}

// Search issues a single search request restricted to the given
// searchable attributes, and flattens the response hits into Candidates.
func (o *MeilisearchOracle) Search(ctx context.Context, index, query string, params SearchParams) ([]model.Candidate, error) {
	req := &meilisearch.SearchRequest{
		Limit:                int64(params.Limit),
		AttributesToSearchOn: params.SearchableAttributes,
	}
	if filter, ok := params.Filters.(string); ok && filter != "" {
		req.Filter = filter
	}

	resp, err := o.client.Index(index).SearchWithContext(ctx, query, req)
	if err != nil {
		return nil, fmt.Errorf("meilisearch search on index %q: %w", index, err)
	}

	hits := resp.Hits

	candidates := make([]model.Candidate, 0, len(hits))
	for _, raw := range hits {
		fields, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		candidates = append(candidates, flattenHit(fields))
	}
	return candidates, nil
}

// flattenHit converts a decoded JSON hit into the engine's flat string
// attribute bag, stringifying non-string leaf values and dropping nested
// structures the engine has no use for.
func flattenHit(fields map[string]interface{}) model.Candidate {
	out := make(model.Candidate, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			out[k] = val
		case nil:
			out[k] = ""
		default:
			out[k] = fmt.Sprintf("%v", val)
		}
	}
	return out
}
