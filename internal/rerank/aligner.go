package rerank

import (
	"strings"

	"github.com/cbouillon/frrerank/internal/typoutil"
	"github.com/cbouillon/frrerank/model"
)

// WordAligner performs the greedy one-to-one alignment of query tokens to
// candidate tokens described in spec §4.2. The greediness is deliberate:
// it is not a substitute for an optimal assignment, and substituting one
// would drift the observable scores.
type WordAligner struct {
	editDistance typoutil.EditDistance
	synonyms     *model.SynonymTable
}

// NewWordAligner builds a WordAligner over the given edit-distance
// primitive and synonym table.
func NewWordAligner(ed typoutil.EditDistance, synonyms *model.SynonymTable) *WordAligner {
	return &WordAligner{editDistance: ed, synonyms: synonyms}
}

// Align aligns queryTokens against candidateTokens under ceiling L,
// returning the matches found and the tokens that went unmatched. A
// candidate position, once consumed, is not reusable within this call.
func (a *WordAligner) Align(queryTokens, candidateTokens []string, ceiling int) (found []model.WordMatch, notFound []string) {
	used := make([]bool, len(candidateTokens))
	found = make([]model.WordMatch, 0, len(queryTokens))
	notFound = make([]string, 0)

	for _, qRaw := range queryTokens {
		q := strings.ToLower(qRaw)
		// bound only governs how early Distance saturates; whether a match
		// counts as found is decided against the full ceiling below.
		bound := ceiling
		if dm := a.editDistance.DynamicMax(q); dm < bound {
			bound = dm
		}

		bestIdx := -1
		bestDist := ceiling + 1
		bestType := model.MatchLevenshtein

		for i, cRaw := range candidateTokens {
			if used[i] {
				continue
			}
			c := strings.ToLower(cRaw)

			var dist int
			var kind model.MatchKind

			switch {
			case q == c:
				dist, kind = 0, model.MatchExact
			case a.synonyms != nil && a.synonyms.Equivalent(q, c):
				dist, kind = 0, model.MatchSynonym
			default:
				dist, kind = a.editDistance.Distance(q, c, bound), model.MatchLevenshtein
			}

			if dist < bestDist {
				bestDist = dist
				bestIdx = i
				bestType = kind
				if dist == 0 {
					break
				}
			}
		}

		if bestIdx >= 0 && bestDist <= ceiling {
			used[bestIdx] = true
			found = append(found, model.WordMatch{
				QueryWord:   q,
				MatchedWord: strings.ToLower(candidateTokens[bestIdx]),
				Distance:    bestDist,
				Type:        bestType,
				Position:    bestIdx,
			})
		} else {
			notFound = append(notFound, q)
		}
	}

	return found, notFound
}
