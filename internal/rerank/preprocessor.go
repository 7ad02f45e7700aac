package rerank

import (
	"strings"

	"github.com/cbouillon/frrerank/internal/normalize"
	"github.com/cbouillon/frrerank/model"
)

// QueryPreprocessor builds a QueryForms from a raw user query string,
// delegating the actual text transforms to a Normalizer (spec §4.1).
type QueryPreprocessor struct {
	normalizer normalize.Normalizer
}

// NewQueryPreprocessor builds a QueryPreprocessor over the given
// Normalizer.
func NewQueryPreprocessor(n normalize.Normalizer) *QueryPreprocessor {
	return &QueryPreprocessor{normalizer: n}
}

// Process trims the raw query and fills in all four forms plus their
// tokenized views. An all-whitespace input yields the empty-query
// sentinel: a QueryForms with OriginalLength == 0 and nil token slices.
func (p *QueryPreprocessor) Process(raw string) model.QueryForms {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.QueryForms{}
	}

	original := p.normalizer.NormalizeQuery(trimmed)
	cleaned := p.normalizer.CleanUserQuery(trimmed)
	noSpace := strings.ReplaceAll(cleaned, " ", "")
	soundex := p.normalizer.SoundexFR(trimmed)

	forms := model.QueryForms{
		Original: original,
		Cleaned:  cleaned,
		NoSpace:  noSpace,
		Soundex:  soundex,

		WordsOriginal: tokenize(original),
		WordsCleaned:  tokenize(cleaned),
		WordsNoSpace:  []string{noSpace},

		OriginalLength: len([]rune(original)),
		CleanedLength:  len([]rune(cleaned)),
		NoSpaceLength:  len([]rune(noSpace)),
	}
	return forms
}

// tokenize splits s on runs of whitespace, discarding empty tokens.
func tokenize(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return []string{}
	}
	return fields
}
