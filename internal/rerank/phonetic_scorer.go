package rerank

import (
	"strings"

	"github.com/cbouillon/frrerank/internal/typoutil"
)

// PhoneticResult is PhoneticScorer's output, or nil when either side has
// no usable phonetic tokens (spec §4.5).
type PhoneticResult struct {
	Score        float64
	MatchType    string
	Priority     int
	TolerantUsed bool
	Ratio        float64
}

// PhoneticScorer scores French-Soundex token overlap between the query
// and a candidate, in both strict and tolerant regimes (spec §4.5).
type PhoneticScorer struct {
	editDistance typoutil.EditDistance
}

// NewPhoneticScorer builds a PhoneticScorer over the given edit-distance
// primitive, used for the tolerant-regime rescue comparison.
func NewPhoneticScorer(ed typoutil.EditDistance) *PhoneticScorer {
	return &PhoneticScorer{editDistance: ed}
}

// Score compares the query's soundex form against the candidate's
// name_soundex attribute. Returns nil if either side yields no tokens with
// length > 1.
func (s *PhoneticScorer) Score(querySoundex, candidateSoundex string) *PhoneticResult {
	qTokens := phoneticTokens(querySoundex)
	cTokens := phoneticTokens(candidateSoundex)
	if len(qTokens) == 0 || len(cTokens) == 0 {
		return nil
	}

	strictFound, strictTolerantUsed := s.matchTokens(qTokens, cTokens, false)
	strictRatio := float64(strictFound) / float64(len(qTokens))
	strictScore := phoneticScoreFromRatio(strictRatio)

	if strictScore >= 6.0 {
		return &PhoneticResult{
			Score:        strictScore,
			MatchType:    "phonetic_strict",
			Priority:     priorityPhoneticStrict,
			TolerantUsed: strictTolerantUsed,
			Ratio:        strictRatio,
		}
	}

	tolerantFound, tolerantUsed := s.matchTokens(qTokens, cTokens, true)
	tolerantRatio := float64(tolerantFound) / float64(len(qTokens))
	if tolerantRatio > strictRatio {
		return &PhoneticResult{
			Score:        phoneticScoreFromRatio(tolerantRatio),
			MatchType:    "phonetic_tolerant",
			Priority:     priorityPhoneticTolerant,
			TolerantUsed: tolerantUsed,
			Ratio:        tolerantRatio,
		}
	}

	return &PhoneticResult{
		Score:        strictScore,
		MatchType:    "phonetic_strict",
		Priority:     priorityPhoneticStrict,
		TolerantUsed: strictTolerantUsed,
		Ratio:        strictRatio,
	}
}

// phoneticTokens splits s on whitespace and keeps tokens longer than one
// character.
func phoneticTokens(s string) []string {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len([]rune(t)) > 1 {
			out = append(out, t)
		}
	}
	return out
}

// matchTokens greedily assigns each query token to an unused candidate
// token using equality, then prefix (min length >= 4), then (if tolerant)
// bounded Levenshtein <= 1 with min length >= 6.
func (s *PhoneticScorer) matchTokens(qTokens, cTokens []string, tolerant bool) (matched int, tolerantUsed bool) {
	used := make([]bool, len(cTokens))

	for _, qt := range qTokens {
		bestIdx := -1
		bestIsTolerant := false

		for i, ct := range cTokens {
			if used[i] {
				continue
			}
			minLen := min(len([]rune(qt)), len([]rune(ct)))

			if qt == ct {
				bestIdx = i
				bestIsTolerant = false
				break
			}
			if bestIdx == -1 && minLen >= 4 && (strings.HasPrefix(qt, ct) || strings.HasPrefix(ct, qt)) {
				bestIdx = i
				bestIsTolerant = false
				continue
			}
			if bestIdx == -1 && tolerant && minLen >= 6 && s.editDistance.Distance(qt, ct, 1) <= 1 {
				bestIdx = i
				bestIsTolerant = true
			}
		}

		if bestIdx >= 0 {
			used[bestIdx] = true
			matched++
			if bestIsTolerant {
				tolerantUsed = true
			}
		}
	}

	return matched, tolerantUsed
}

// phoneticScoreFromRatio implements the ratio-to-score rule of spec §4.5.
func phoneticScoreFromRatio(ratio float64) float64 {
	s := 8 * ratio
	switch {
	case ratio == 1:
		return min(7.5, s)
	case ratio >= 0.66:
		return min(7.0, s)
	default:
		return min(6.0, s)
	}
}
