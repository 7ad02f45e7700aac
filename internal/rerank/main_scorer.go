package rerank

import "github.com/cbouillon/frrerank/model"

// Weights and thresholds for the adjusted field score and name bonus
// formulas (spec §4.4), named after the original source's constants.
const (
	wMissing      = 0.6
	wFuzzy        = 0.5
	wRatio        = 1.0
	wExtraLength  = 0.15
	noSpaceFloor  = 7.0

	bonusMax          = 2.0
	bonusAMissing     = 0.3
	bonusCAvgDist     = 0.35
	bonusWordRatioMin = 0.4
	bonusExtraMax     = 1.0
)

// matchTypeExactFull is the reserved tag the engine recognizes from the
// oracle but never synthesizes itself (spec §9 Open Question).
const matchTypeExactFull = "exact_full"

// Match-type priority table (spec §4.4).
const (
	priorityExactFull       = 0
	priorityNoSpaceMatch    = 1
	priorityNearPerfect     = 2
	priorityPhoneticStrict  = 3
	priorityExactWithMissing = 4
	priorityFuzzyFull       = 5
	priorityHybrid          = 6
	priorityPhoneticTolerant = 7
	priorityFuzzyPartial    = 8
	priorityPartial         = 9
)

// MainResult is MainScorer's output: the chosen strategy's field metrics
// plus the combined total score and match type, ready for FinalCombiner.
type MainResult struct {
	TotalScore    float64
	MatchType     string
	MatchPriority int
	Winner        string
	Winning       model.FieldEval
	Bonus         float64
}

// MainScorer scores the name_search and name_no_space fields, arbitrates
// between the two strategies, and layers on the name bonus (spec §4.4).
type MainScorer struct {
	evaluator *FieldEvaluator
}

// NewMainScorer builds a MainScorer over the given evaluator.
func NewMainScorer(evaluator *FieldEvaluator) *MainScorer {
	return &MainScorer{evaluator: evaluator}
}

// Score evaluates the candidate's name_search, name_no_space, and name
// fields against the query forms, arbitrates the winning strategy, applies
// the name bonus, and classifies the resulting match type.
func (s *MainScorer) Score(forms model.QueryForms, candidate model.Candidate, ceiling int) MainResult {
	nameSearchEval := s.evaluator.Evaluate(forms.WordsCleaned, tokenize(candidate.NameSearch()), forms.Cleaned, ceiling)
	noSpaceEval := s.evaluator.Evaluate(forms.WordsNoSpace, tokenize(candidate.NameNoSpace()), forms.NoSpace, ceiling)
	nameEval := s.evaluator.Evaluate(forms.WordsOriginal, tokenize(candidate.Name()), forms.Original, ceiling)

	nameSearchAdj := adjustedFieldScore(nameSearchEval, false)
	noSpaceAdj := adjustedFieldScore(noSpaceEval, true)

	nameSearchValid := nameSearchAdj > 0 && nameSearchEval.FoundCount > 0
	noSpaceValid := noSpaceAdj > 0 && noSpaceEval.FoundCount > 0

	var winner string
	var baseScore float64
	var winning model.FieldEval

	switch {
	case noSpaceValid && (!nameSearchValid || noSpaceAdj >= nameSearchAdj):
		winner, baseScore, winning = "no_space", noSpaceAdj, noSpaceEval
	case nameSearchValid:
		winner, baseScore, winning = "name_search", nameSearchAdj, nameSearchEval
	default:
		winner, baseScore, winning = "none", 0, nameSearchEval
	}

	bonus := nameBonus(nameEval, forms.WordsOriginal)
	totalScore := baseScore + bonus
	if totalScore > 12.0 {
		totalScore = 12.0
	}

	matchType, priority := classifyMatchType(winning, winner, totalScore)

	return MainResult{
		TotalScore:    totalScore,
		MatchType:     matchType,
		MatchPriority: priority,
		Winner:        winner,
		Winning:       winning,
		Bonus:         bonus,
	}
}

// adjustedFieldScore implements the raw/penalty/adj formula of spec §4.4.
func adjustedFieldScore(eval model.FieldEval, isNoSpace bool) float64 {
	raw := clamp(10-float64(eval.TotalDistance), 0, 10)

	lengthRatio := eval.Penalties.LengthRatio
	penalty := wMissing*float64(eval.Missing()) +
		wFuzzy*max0(eval.AverageDistance) +
		wRatio*(1-clamp(lengthRatio, 0, 1)) +
		wExtraLength*eval.ExtraLengthRatio*10

	adj := max0(raw - penalty)
	if eval.FoundCount == 0 {
		adj = 0
	}
	if isNoSpace && adj < noSpaceFloor {
		adj = 0
	}
	return adj
}

// nameBonus implements the name-bonus formula of spec §4.4.
func nameBonus(nameEval model.FieldEval, wordsOriginal []string) float64 {
	q := len(wordsOriginal)
	r := nameEval.ResultCount

	wcr := 0.0
	if r > 0 {
		wcr = float64(min(q, r)) / float64(max(q, r))
	}
	elr := nameEval.ExtraLengthRatio

	if wcr < bonusWordRatioMin || elr > bonusExtraMax {
		return 0
	}

	sum := 0.0
	for _, m := range nameEval.Found {
		sum += matchWeight(m.Distance)
	}
	bonus := (sum / float64(max(1, q))) * bonusMax

	bonus -= bonusAMissing*float64(nameEval.Missing()) +
		bonusCAvgDist*max0(nameEval.AverageDistance) +
		bonusMax*elr*0.6

	bonus = clamp(bonus, 0, bonusMax)

	attenuation := clamp((wcr-bonusWordRatioMin)/(1-bonusWordRatioMin), 0, 1)
	return bonus * attenuation
}

// matchWeight is the per-match-distance weight table for the name bonus.
func matchWeight(distance int) float64 {
	switch {
	case distance == 0:
		return 1.0
	case distance == 1:
		return 0.7
	case distance == 2:
		return 0.4
	default:
		return 0.2
	}
}

// classifyMatchType implements the match-type table of spec §4.4.
func classifyMatchType(winning model.FieldEval, winner string, totalScore float64) (string, int) {
	if winning.FoundCount == 0 {
		return "partial", priorityPartial
	}

	avg := winning.AverageDistance
	missing := winning.Missing()

	switch {
	case avg == 0 && missing == 0 && winner == "no_space":
		return "no_space_match", priorityNoSpaceMatch
	case avg == 0 && missing == 0 && winner == "name_search":
		return "exact_with_extras", priorityNoSpaceMatch
	case avg == 0 && missing > 0:
		return "exact_with_missing", priorityExactWithMissing
	case avg > 0 && missing == 0 && totalScore >= 8.0:
		return "near_perfect", priorityNearPerfect
	case avg > 0 && missing == 0:
		return "fuzzy_full", priorityFuzzyFull
	default:
		return "fuzzy_partial", priorityFuzzyPartial
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
