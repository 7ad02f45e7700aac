package rerank

import (
	"testing"

	"github.com/cbouillon/frrerank/model"
)

func TestCombineTextOnlyWhenHighScore(t *testing.T) {
	c := NewFinalCombiner()
	main := MainResult{TotalScore: 9.0, MatchType: "fuzzy_full", MatchPriority: priorityFuzzyFull}

	got := c.Combine(main, nil, false)
	if got.Method != model.ScoringTextOnly {
		t.Errorf("Method = %v, want text_only", got.Method)
	}
	if got.Score != 9.0 {
		t.Errorf("Score = %v, want 9.0", got.Score)
	}
}

func TestCombineHybridBlend(t *testing.T) {
	c := NewFinalCombiner()
	main := MainResult{TotalScore: 7.0, MatchType: "fuzzy_full", MatchPriority: priorityFuzzyFull}
	phonetic := &PhoneticResult{Score: 7.5, MatchType: "phonetic_strict", Priority: priorityPhoneticStrict}

	got := c.Combine(main, phonetic, false)
	if got.Method != model.ScoringWeighted {
		t.Errorf("Method = %v, want weighted", got.Method)
	}
	if got.MatchType != "hybrid" {
		t.Errorf("MatchType = %q, want hybrid", got.MatchType)
	}
	if got.Score < 7.0 || got.Score > 7.5 {
		t.Errorf("Score = %v, want within [7.0, 7.5]", got.Score)
	}
	if got.Weights == nil {
		t.Fatal("expected scoring weights to be set")
	}
}

func TestCombinePhoneticFallback(t *testing.T) {
	c := NewFinalCombiner()
	main := MainResult{TotalScore: 2.0, MatchType: "partial", MatchPriority: priorityPartial}
	phonetic := &PhoneticResult{Score: 7.5, MatchType: "phonetic_strict", Priority: priorityPhoneticStrict}

	got := c.Combine(main, phonetic, false)
	if got.Method != model.ScoringPhoneticFallback {
		t.Errorf("Method = %v, want phonetic_fallback", got.Method)
	}
	if got.Score != 7.5 {
		t.Errorf("Score = %v, want 7.5", got.Score)
	}
}

func TestCombineExactCap(t *testing.T) {
	c := NewFinalCombiner()
	main := MainResult{TotalScore: 10.5, MatchType: "no_space_match", MatchPriority: priorityNoSpaceMatch}

	got := c.Combine(main, nil, false)
	if !got.Capped {
		t.Error("expected the hit to be capped")
	}
	if got.Score != 9.99 {
		t.Errorf("Score = %v, want 9.99", got.Score)
	}
}

func TestCombineExactFullBypassesCap(t *testing.T) {
	c := NewFinalCombiner()
	main := MainResult{TotalScore: 10.5, MatchType: "no_space_match", MatchPriority: priorityNoSpaceMatch}

	got := c.Combine(main, nil, true)
	if got.Capped {
		t.Error("expected an exact_full pre-tagged hit to bypass the cap")
	}
	if got.Score != 10.5 {
		t.Errorf("Score = %v, want 10.5", got.Score)
	}
	if got.MatchType != "exact_full" {
		t.Errorf("MatchType = %q, want exact_full", got.MatchType)
	}
}
