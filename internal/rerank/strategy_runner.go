package rerank

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	rerrors "github.com/cbouillon/frrerank/internal/errors"
	"github.com/cbouillon/frrerank/internal/metrics"
	"github.com/cbouillon/frrerank/internal/oracle"
	"github.com/cbouillon/frrerank/model"
)

// strategyOrder is the fixed dedup precedence of spec §4.7.
var strategyOrder = []string{"name_search", "no_space", "standard", "phonetic"}

// strategyPlan describes one oracle call: which query variant to send and
// which attribute it restricts the search to.
type strategyPlan struct {
	name  string
	query string
	attrs []string
}

// StrategyRunner calls the index oracle once per discovery strategy and
// deduplicates the combined hit set (spec §4.7).
type StrategyRunner struct {
	oracle  oracle.Oracle
	metrics *metrics.Metrics
}

// NewStrategyRunner builds a StrategyRunner over the given Oracle. m may be
// nil, in which case no oracle-latency metrics are recorded.
func NewStrategyRunner(o oracle.Oracle, m *metrics.Metrics) *StrategyRunner {
	return &StrategyRunner{oracle: o, metrics: m}
}

// Run fans out the up-to-four strategy calls for forms against index,
// tags each hit with its originating strategy, and deduplicates by
// identifier in the fixed strategy order. Hits without an identifier are
// dropped. A failure in any strategy is fatal for the whole call (spec
// §7).
func (r *StrategyRunner) Run(ctx context.Context, index string, forms model.QueryForms, limit int, filters interface{}) ([]model.Candidate, error) {
	plans := r.plans(forms)

	results := make([][]model.Candidate, len(plans))
	g, gctx := errgroup.WithContext(ctx)

	for i, plan := range plans {
		i, plan := i, plan
		g.Go(func() error {
			start := time.Now()
			hits, err := r.oracle.Search(gctx, index, plan.query, oracle.SearchParams{
				Limit:                limit,
				SearchableAttributes: plan.attrs,
				Filters:              filters,
			})
			if r.metrics != nil {
				r.metrics.OracleLatency.WithLabelValues(plan.name).Observe(time.Since(start).Seconds())
			}
			if err != nil {
				return rerrors.NewIndexOracleError(plan.name, err)
			}
			tagged := make([]model.Candidate, len(hits))
			for j, h := range hits {
				tagged[j] = h.WithDiscoveryStrategy(plan.name)
			}
			results[i] = tagged
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	byStrategy := make(map[string][]model.Candidate, len(plans))
	for i, plan := range plans {
		byStrategy[plan.name] = results[i]
	}

	return dedup(byStrategy), nil
}

// plans builds the per-strategy query variants of spec §4.7, skipping the
// phonetic strategy when the query has no soundex form.
func (r *StrategyRunner) plans(forms model.QueryForms) []strategyPlan {
	nameSearchQuery := forms.Cleaned
	if nameSearchQuery == "" {
		nameSearchQuery = forms.Original
	}

	plans := []strategyPlan{
		{name: "name_search", query: nameSearchQuery, attrs: []string{"name_search"}},
		{name: "no_space", query: forms.NoSpace, attrs: []string{"name_no_space"}},
		{name: "standard", query: forms.Original, attrs: []string{"name"}},
	}
	if forms.Soundex != "" {
		plans = append(plans, strategyPlan{name: "phonetic", query: forms.Soundex, attrs: []string{"name_soundex"}})
	}
	return plans
}

// dedup walks strategies in the fixed priority order, keeping the first
// occurrence of each identifier.
func dedup(results map[string][]model.Candidate) []model.Candidate {
	seen := make(map[string]bool)
	out := make([]model.Candidate, 0)

	for _, strategy := range strategyOrder {
		for _, c := range results[strategy] {
			id, ok := c.ID()
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, c)
		}
	}
	return out
}
