package rerank

import (
	"sort"

	"github.com/cbouillon/frrerank/model"
)

const scoreEpsilon = 1e-9
const extraLengthRatioEpsilon = 0.01
const lengthRatioEpsilon = 0.001

// Ranker sorts enriched hits with the composite tie-breaking key of spec
// §4.8, applies the exact-only reply policy, and truncates to the
// requested limit.
type Ranker struct{}

// NewRanker builds a Ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank sorts hits in place by the spec §4.8 key, picks the exact-only
// subset when one exists, and truncates to limit. It returns the final
// hit slice along with has_exact_results/exact_count/total_before_filter
// for the reply.
func (r *Ranker) Rank(hits []model.ScoredHit, preCapScores []float64, limit int) (final []model.ScoredHit, hasExact bool, exactCount int, totalBeforeFilter int) {
	totalBeforeFilter = len(hits)

	sort.SliceStable(hits, func(i, j int) bool {
		return less(hits[i], hits[j])
	})

	exactIdx := make([]int, 0)
	for i, score := range preCapScores {
		if score >= 10.0 {
			exactIdx = append(exactIdx, i)
		}
	}

	var out []model.ScoredHit
	if len(exactIdx) > 0 {
		hasExact = true
		exactCount = len(exactIdx)
		exactSet := make(map[int]bool, len(exactIdx))
		for _, i := range exactIdx {
			exactSet[i] = true
		}
		for _, h := range hits {
			if exactSet[h.InputPosition()] {
				out = append(out, h)
			}
		}
	} else {
		out = hits
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, hasExact, exactCount, totalBeforeFilter
}

// less implements the descending composite ordering of spec §4.8.
func less(a, b model.ScoredHit) bool {
	if diff := a.Score - b.Score; absf(diff) > scoreEpsilon {
		return a.Score > b.Score
	}

	pa, pb := a.PenaltyIndices, b.PenaltyIndices
	if diff := pa.ExtraLengthRatio - pb.ExtraLengthRatio; absf(diff) > extraLengthRatioEpsilon {
		return pa.ExtraLengthRatio < pb.ExtraLengthRatio
	}

	if diff := pa.LengthRatio - pb.LengthRatio; absf(diff) > lengthRatioEpsilon {
		return pa.LengthRatio > pb.LengthRatio
	}

	if pa.AverageDistance != pb.AverageDistance {
		return pa.AverageDistance < pb.AverageDistance
	}

	idA, idEtabA := a.Candidate.Attr("id"), a.Candidate.Attr("id_etab")
	idB, idEtabB := b.Candidate.Attr("id"), b.Candidate.Attr("id_etab")
	if idA != idB {
		return idA < idB
	}
	if idEtabA != idEtabB {
		return idEtabA < idEtabB
	}

	return a.InputPosition() < b.InputPosition()
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
