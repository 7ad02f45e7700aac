package model

// ScoringMethod tags how FinalCombiner arrived at a hit's score.
type ScoringMethod string

const (
	ScoringTextOnly         ScoringMethod = "text_only"
	ScoringWeighted         ScoringMethod = "weighted"
	ScoringPhoneticFallback ScoringMethod = "phonetic_fallback"
)

// ScoringWeights records the text/phonetic blend used by the "weighted"
// scoring method, for callers that want to show their work.
type ScoringWeights struct {
	Text     float64 `json:"text"`
	Phonetic float64 `json:"phonetic"`
}

// PhoneticDetails records the phonetic sub-score behind a hit, when one was
// computed.
type PhoneticDetails struct {
	Score        float64   `json:"score"`
	MatchType    string    `json:"match_type"`
	TolerantUsed bool      `json:"tolerant_used"`
	Ratio        float64   `json:"ratio"`
}

// ScoredHit is a Candidate enriched with the engine's scoring output.
type ScoredHit struct {
	Candidate Candidate `json:"candidate"`

	Score          float64         `json:"_score"`
	MatchType      string          `json:"_match_type"`
	MatchPriority  int             `json:"_match_priority"`
	ScoringMethod  ScoringMethod   `json:"_scoring_method"`
	ScoringWeights *ScoringWeights `json:"_scoring_weights,omitempty"`
	Phonetic       *PhoneticDetails `json:"_phonetic_details,omitempty"`
	Capped         bool            `json:"_capped"`

	DiscoveryStrategy string `json:"_discovery_strategy"`

	// PenaltyIndices is the winning field's penalty view, used by the Ranker
	// for fine-grained tie-breaking (spec §4.8).
	PenaltyIndices Penalties `json:"_penalty_indices"`

	// inputPosition is the index the hit occupied when it first entered the
	// pipeline, used only to guarantee stable sort ordering (spec §4.8 rule 6).
	inputPosition int
}

// InputPosition returns the hit's original discovery position.
func (h ScoredHit) InputPosition() int { return h.inputPosition }

// WithInputPosition returns a copy of h stamped with its input position.
func (h ScoredHit) WithInputPosition(pos int) ScoredHit {
	h.inputPosition = pos
	return h
}
