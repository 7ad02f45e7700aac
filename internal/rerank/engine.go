package rerank

import (
	"context"
	"sync"
	"time"

	"github.com/cbouillon/frrerank/internal/metrics"
	"github.com/cbouillon/frrerank/internal/normalize"
	"github.com/cbouillon/frrerank/internal/oracle"
	"github.com/cbouillon/frrerank/internal/persistence"
	"github.com/cbouillon/frrerank/internal/typoutil"
	"github.com/cbouillon/frrerank/model"
)

// Engine is the top-level re-ranking pipeline: preprocess the query,
// discover and deduplicate candidates, score and rank them, and cache the
// reply (spec §2's data flow).
type Engine struct {
	preprocessor    *QueryPreprocessor
	strategyRunner  *StrategyRunner
	mainScorer      *MainScorer
	phoneticScorer  *PhoneticScorer
	combiner        *FinalCombiner
	ranker          *Ranker
	cache           *ResultCache

	synonymsMu   sync.RWMutex
	synonyms     *model.SynonymTable
	synonymsPath string

	defaultLimit       int
	defaultMaxDistance int

	metrics *metrics.Metrics
}

// Deps bundles the external collaborators and tunables an Engine is built
// from.
type Deps struct {
	Oracle             oracle.Oracle
	Normalizer         normalize.Normalizer
	EditDistance       typoutil.EditDistance
	DefaultLimit       int
	DefaultMaxDistance int
	CacheCapacity      int
	CacheTTL           time.Duration
	SynonymsPath       string
	Metrics            *metrics.Metrics
}

// New builds an Engine from its dependencies. If deps.SynonymsPath is set
// and a synonym table was previously persisted there, it is loaded.
func New(deps Deps) *Engine {
	synonyms := model.NewSynonymTable()
	if deps.SynonymsPath != "" {
		var raw map[string][]string
		if err := persistence.LoadGob(deps.SynonymsPath, &raw); err == nil {
			synonyms.Set(raw)
		}
	}

	aligner := NewWordAligner(deps.EditDistance, synonyms)
	evaluator := NewFieldEvaluator(aligner)

	return &Engine{
		preprocessor:   NewQueryPreprocessor(deps.Normalizer),
		strategyRunner: NewStrategyRunner(deps.Oracle, deps.Metrics),
		mainScorer:     NewMainScorer(evaluator),
		phoneticScorer: NewPhoneticScorer(deps.EditDistance),
		combiner:       NewFinalCombiner(),
		ranker:         NewRanker(),
		cache:          NewResultCache(deps.CacheCapacity, deps.CacheTTL),

		synonyms:     synonyms,
		synonymsPath: deps.SynonymsPath,

		defaultLimit:       deps.DefaultLimit,
		defaultMaxDistance: deps.DefaultMaxDistance,

		metrics: deps.Metrics,
	}
}

// Search runs the full pipeline for a single request. Per spec §5, the
// per-request max-distance ceiling never leaks across calls: it lives
// entirely in this call's stack, never in shared engine state.
func (e *Engine) Search(ctx context.Context, index, userQuery string, options model.Options) (model.Reply, error) {
	start := time.Now()

	options = e.applyDefaults(options)

	forms := e.preprocessor.Process(userQuery)
	if forms.Empty() {
		return model.EmptyQueryReply(), nil
	}

	key := CacheKey(userQuery, options)
	if cached, ok := e.cache.Get(key); ok {
		if e.metrics != nil {
			e.metrics.CacheHits.Inc()
		}
		cached.FromCache = true
		return cached, nil
	}
	if e.metrics != nil {
		e.metrics.CacheMisses.Inc()
	}

	ceiling := *options.MaxDistance

	candidates, err := e.strategyRunner.Run(ctx, index, forms, options.Limit, options.Filters)
	if err != nil {
		return model.Reply{}, err
	}

	e.synonymsMu.RLock()
	hits, preCapScores := e.scoreAll(forms, candidates, ceiling)
	e.synonymsMu.RUnlock()

	rankedHits, hasExact, exactCount, totalBeforeFilter := e.ranker.Rank(hits, preCapScores, options.Limit)

	reply := model.Reply{
		Hits:              rankedHits,
		Total:             len(rankedHits),
		HasExactResults:   hasExact,
		ExactCount:        exactCount,
		TotalBeforeFilter: totalBeforeFilter,
		QueryTimeMs:       float64(time.Since(start).Microseconds()) / 1000.0,
		Preprocessing:     forms,
		FromCache:         false,
	}

	if ctx.Err() != nil {
		return model.Reply{}, ctx.Err()
	}
	e.cache.Put(key, reply)

	if e.metrics != nil {
		for _, h := range reply.Hits {
			e.metrics.ReplyScore.Observe(h.Score)
		}
	}

	return reply, nil
}

// scoreAll runs the FieldEvaluator/MainScorer/PhoneticScorer/FinalCombiner
// chain over every candidate, returning the enriched hits (stamped with
// their input position) and their pre-cap scores in the same order.
func (e *Engine) scoreAll(forms model.QueryForms, candidates []model.Candidate, ceiling int) ([]model.ScoredHit, []float64) {
	hits := make([]model.ScoredHit, 0, len(candidates))
	preCapScores := make([]float64, 0, len(candidates))

	for i, candidate := range candidates {
		main := e.mainScorer.Score(forms, candidate, ceiling)
		phonetic := e.phoneticScorer.Score(forms.Soundex, candidate.NameSoundex())
		combined := e.combiner.Combine(main, phonetic, candidate.PreTaggedExactFull())

		preCap := combined.Score
		if combined.Capped {
			preCap = 10.0
		}

		hit := model.ScoredHit{
			Candidate:         candidate,
			Score:             combined.Score,
			MatchType:         combined.MatchType,
			MatchPriority:     combined.Priority,
			ScoringMethod:     combined.Method,
			ScoringWeights:    combined.Weights,
			Capped:            combined.Capped,
			DiscoveryStrategy: candidate.DiscoveryStrategy(),
			PenaltyIndices:    main.Winning.Penalties,
		}.WithInputPosition(i)

		if phonetic != nil {
			hit.Phonetic = &model.PhoneticDetails{
				Score:        phonetic.Score,
				MatchType:    phonetic.MatchType,
				TolerantUsed: phonetic.TolerantUsed,
				Ratio:        phonetic.Ratio,
			}
		}

		hits = append(hits, hit)
		preCapScores = append(preCapScores, preCap)
	}

	return hits, preCapScores
}

// applyDefaults fills in an unset limit or max-distance ceiling. MaxDistance
// is only defaulted when the caller left it nil; an explicit 0 disables
// fuzzy matching and must survive untouched (spec §6, §9).
func (e *Engine) applyDefaults(options model.Options) model.Options {
	if options.Limit <= 0 {
		options.Limit = e.defaultLimit
	}
	switch {
	case options.MaxDistance == nil:
		d := e.defaultMaxDistance
		options.MaxDistance = &d
	case *options.MaxDistance < 0:
		zero := 0
		options.MaxDistance = &zero
	}
	return options
}

// SetSynonyms replaces the engine's synonym table and, if a synonyms path
// is configured, persists it.
func (e *Engine) SetSynonyms(classes map[string][]string) error {
	e.synonymsMu.Lock()
	defer e.synonymsMu.Unlock()

	e.synonyms.Set(classes)

	if e.synonymsPath != "" {
		if err := persistence.SaveGob(e.synonymsPath, e.synonyms.Raw()); err != nil {
			return err
		}
	}
	return nil
}

// GetSynonyms returns the engine's current synonym table.
func (e *Engine) GetSynonyms() map[string][]string {
	e.synonymsMu.RLock()
	defer e.synonymsMu.RUnlock()
	return e.synonyms.Raw()
}

// ClearCache empties the result cache.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}

// CacheStats reports the result cache's current size, capacity, and TTL.
func (e *Engine) CacheStats() (size, maxSize, ttlSeconds int) {
	return e.cache.Stats()
}
