package model

// Penalties is a convenience view over a FieldEval's metrics, mirroring the
// fields scoring and tie-breaking actually read.
type Penalties struct {
	Missing           int     `json:"missing"`
	AverageDistance   float64 `json:"average_distance"`
	LengthRatio       float64 `json:"length_ratio"`
	CoverageRatio     float64 `json:"coverage_ratio"`
	ExtraLength       int     `json:"extra_length"`
	ExtraLengthRatio  float64 `json:"extra_length_ratio"`
}

// FieldEval is the output of evaluating one field: the word alignment
// result plus the aggregate metrics derived from it.
type FieldEval struct {
	Found    []WordMatch `json:"found"`
	NotFound []string    `json:"not_found"`

	TotalDistance   int     `json:"total_distance"`
	AverageDistance float64 `json:"average_distance"`

	FoundCount  int `json:"found_count"`
	QueryCount  int `json:"query_count"`
	ResultCount int `json:"result_count"`

	ExtraLength      int     `json:"extra_length"`
	ExtraLengthRatio float64 `json:"extra_length_ratio"`

	Penalties Penalties `json:"penalties"`
}

// Missing is the number of query tokens that went unmatched.
func (f FieldEval) Missing() int { return len(f.NotFound) }
