package rerank

import "github.com/cbouillon/frrerank/model"

// CombinedResult is FinalCombiner's output: the blended score, match type,
// scoring method, (when relevant) the blend weights that produced it, and
// whether the exact cap applied (spec §4.6).
type CombinedResult struct {
	Score     float64
	MatchType string
	Priority  int
	Method    model.ScoringMethod
	Weights   *model.ScoringWeights
	Capped    bool
}

// FinalCombiner blends the textual (MainScorer) and phonetic
// (PhoneticScorer) sub-scores by regime, then applies the exact cap.
type FinalCombiner struct{}

// NewFinalCombiner builds a FinalCombiner.
func NewFinalCombiner() *FinalCombiner {
	return &FinalCombiner{}
}

// Combine implements the regime table of spec §4.6 and the exact-cap rule.
// preTaggedExactFull reflects whether the oracle pre-tagged the candidate
// with the reserved exact_full match type (spec §9 Open Question); the
// engine never produces that tag itself.
func (c *FinalCombiner) Combine(m MainResult, p *PhoneticResult, preTaggedExactFull bool) CombinedResult {
	t := m.TotalScore
	var phoneticScore float64
	if p != nil {
		phoneticScore = p.Score
	}

	var result CombinedResult

	switch {
	case t >= 8.5:
		result = CombinedResult{Score: t, MatchType: m.MatchType, Priority: m.MatchPriority, Method: model.ScoringTextOnly}

	case t >= 6.0 && t < 8.5 && p != nil && phoneticScore > 0:
		wt := 0.7 + t/40
		wp := 1 - wt
		score := t*wt + phoneticScore*wp
		weights := &model.ScoringWeights{Text: wt, Phonetic: wp}
		result = CombinedResult{Score: score, MatchType: "hybrid", Priority: priorityHybrid, Method: model.ScoringWeighted, Weights: weights}

	case p != nil && phoneticScore > t:
		result = CombinedResult{Score: phoneticScore, MatchType: p.MatchType, Priority: p.Priority, Method: model.ScoringPhoneticFallback}

	default:
		result = CombinedResult{Score: t, MatchType: m.MatchType, Priority: m.MatchPriority, Method: model.ScoringTextOnly}
	}

	if preTaggedExactFull {
		result.MatchType = matchTypeExactFull
		result.Priority = priorityExactFull
	}

	if result.MatchType != matchTypeExactFull && result.Score >= 10.0 {
		result.Score = 9.99
		result.Capped = true
	}

	return result
}
