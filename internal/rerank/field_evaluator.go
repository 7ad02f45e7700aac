package rerank

import "github.com/cbouillon/frrerank/model"

// FieldEvaluator runs a WordAligner over one field and aggregates the
// alignment into the metrics MainScorer builds on (spec §4.3).
type FieldEvaluator struct {
	aligner *WordAligner
}

// NewFieldEvaluator builds a FieldEvaluator over the given aligner.
func NewFieldEvaluator(aligner *WordAligner) *FieldEvaluator {
	return &FieldEvaluator{aligner: aligner}
}

// Evaluate aligns queryTokens against candidateTokens under ceiling, and
// computes the aggregate metrics described in spec §4.3. queryText is the
// reference text used as the extra_length_ratio denominator.
func (e *FieldEvaluator) Evaluate(queryTokens, candidateTokens []string, queryText string, ceiling int) model.FieldEval {
	found, notFound := e.aligner.Align(queryTokens, candidateTokens, ceiling)

	totalDistance := 0
	for _, m := range found {
		totalDistance += m.Distance
	}

	foundCount := len(found)
	averageDistance := 0.0
	if foundCount > 0 {
		averageDistance = float64(totalDistance) / float64(foundCount)
	}

	q := len(queryTokens)
	r := len(candidateTokens)
	lengthRatio := 1.0
	if q > 0 && r > 0 {
		lengthRatio = float64(min(q, r)) / float64(max(q, r))
	}

	coverageRatio := 1.0
	if q > 0 {
		coverageRatio = float64(foundCount) / float64(q)
	}

	consumed := make([]bool, r)
	for _, m := range found {
		if m.Position >= 0 && m.Position < r {
			consumed[m.Position] = true
		}
	}
	extraLength := 0
	for i, tok := range candidateTokens {
		if !consumed[i] {
			extraLength += len([]rune(tok))
		}
	}

	extraLengthRatio := 0.0
	if queryTextLen := len([]rune(queryText)); queryTextLen > 0 {
		extraLengthRatio = float64(extraLength) / float64(queryTextLen)
	}

	return model.FieldEval{
		Found:           found,
		NotFound:        notFound,
		TotalDistance:   totalDistance,
		AverageDistance: averageDistance,
		FoundCount:      foundCount,
		QueryCount:      q,
		ResultCount:     r,

		ExtraLength:      extraLength,
		ExtraLengthRatio: extraLengthRatio,

		Penalties: model.Penalties{
			Missing:          len(notFound),
			AverageDistance:  averageDistance,
			LengthRatio:      lengthRatio,
			CoverageRatio:    coverageRatio,
			ExtraLength:      extraLength,
			ExtraLengthRatio: extraLengthRatio,
		},
	}
}
