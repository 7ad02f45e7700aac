package model

// Options configures a single Search call (spec §6). MaxDistance is a
// pointer so an absent value (fall back to the engine's configured default)
// is distinguishable from an explicit 0 (spec §9: 0 disables fuzzy matching).
type Options struct {
	Limit       int         `json:"limit"`
	MaxDistance *int        `json:"max_distance,omitempty"`
	Filters     interface{} `json:"filters,omitempty"`
}

// Reply is the response shape of the Search API (spec §6).
type Reply struct {
	Hits              []ScoredHit `json:"hits"`
	Total             int         `json:"total"`
	HasExactResults   bool        `json:"has_exact_results"`
	ExactCount        int         `json:"exact_count"`
	TotalBeforeFilter int         `json:"total_before_filter"`
	QueryTimeMs       float64     `json:"query_time_ms"`
	Preprocessing     QueryForms  `json:"preprocessing"`
	FromCache         bool        `json:"from_cache"`
	Error             string      `json:"error,omitempty"`
}

// EmptyQueryReply is the sentinel reply for an empty (post-trim) query,
// spec §6.
func EmptyQueryReply() Reply {
	return Reply{
		Hits:            []ScoredHit{},
		Total:           0,
		HasExactResults: false,
		QueryTimeMs:     0,
		FromCache:       false,
		Error:           "Empty query",
	}
}
