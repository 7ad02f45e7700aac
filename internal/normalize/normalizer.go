// Package normalize provides the concrete Normalizer used to derive the
// original/cleaned/no_space/soundex forms a QueryPreprocessor needs (spec
// §6). The core re-ranking pipeline treats the Normalizer as an external
// collaborator behind a narrow interface; this package is the production
// implementation of that interface, in the same spirit as the teacher's
// typoutil package sitting behind its own scoring interfaces.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer produces the string forms QueryPreprocessor needs from a raw
// user string, and the phonetic form used by the PhoneticScorer.
type Normalizer interface {
	NormalizeQuery(s string) string
	CleanUserQuery(s string) string
	SoundexFR(s string) string
}

// French is the production Normalizer: it lowercases and accent-folds via
// golang.org/x/text/unicode/norm and golang.org/x/text/runes, and computes
// a French-tuned Soundex per whitespace-separated token.
type French struct {
	foldAccents transform.Transformer
}

// New builds the production French Normalizer.
func New() *French {
	return &French{
		foldAccents: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

var (
	nonAlnumRun = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	multiSpace  = regexp.MustCompile(`\s+`)
)

// NormalizeQuery lowercases and collapses whitespace in s without folding
// accents, producing the "original" form QueryPreprocessor keeps for
// exact-match comparisons against accented candidate names.
func (f *French) NormalizeQuery(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return multiSpace.ReplaceAllString(s, " ")
}

// CleanUserQuery lowercases, accent-folds, and collapses runs of
// non-alphanumeric characters to a single space, producing the "cleaned"
// form used for fuzzy matching.
func (f *French) CleanUserQuery(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(f.foldAccents, s)
	if err != nil {
		folded = s
	}
	folded = nonAlnumRun.ReplaceAllString(folded, " ")
	return strings.TrimSpace(folded)
}

// SoundexFR computes a French-tuned Soundex code for every whitespace token
// in s and joins them with a single space, matching the space-separated
// contract QueryForms.Soundex expects.
func (f *French) SoundexFR(s string) string {
	cleaned := f.CleanUserQuery(s)
	if cleaned == "" {
		return ""
	}
	tokens := strings.Fields(cleaned)
	codes := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if code := soundexToken(t); code != "" {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, " ")
}

// frDigraphs collapses common French digraphs/trigraphs into a single
// phonetic unit before Soundex digit assignment, so "ph"->"f", "ch"->"x",
// "qu"->"k", "gn"->"n" etc. are treated as one sound rather than two
// consonants. "x" shares digit family 2 with plain "c".
var frDigraphs = []struct {
	from, to string
}{
	{"eau", "o"},
	{"au", "o"},
	{"ai", "e"},
	{"ei", "e"},
	{"oi", "wa"},
	{"ou", "u"},
	{"ph", "f"},
	{"qu", "k"},
	{"ch", "x"},
	{"gn", "n"},
	{"th", "t"},
}

// soundexCode maps a consonant to its Soundex digit family. Vowels and 'h',
// 'w', 'y' map to 0 and are dropped (except as the retained first letter).
var soundexCode = map[rune]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

// soundexToken computes a French-adapted Soundex code for a single word:
// first letter retained, digraphs folded, remaining consonants mapped to
// digit families with consecutive duplicates and adjacent-family repeats
// collapsed, padded/truncated to four characters.
func soundexToken(word string) string {
	if word == "" {
		return ""
	}
	for _, d := range frDigraphs {
		word = strings.ReplaceAll(word, d.from, d.to)
	}

	runesW := []rune(word)
	if len(runesW) == 0 {
		return ""
	}

	first := unicode.ToUpper(runesW[0])
	var code strings.Builder
	code.WriteRune(first)

	lastDigit := byte(0)
	if d, ok := soundexCode[unicode.ToLower(runesW[0])]; ok {
		lastDigit = d
	}

	for _, r := range runesW[1:] {
		r = unicode.ToLower(r)
		digit, ok := soundexCode[r]
		if !ok {
			lastDigit = 0
			continue
		}
		if digit != lastDigit {
			code.WriteByte(digit)
		}
		lastDigit = digit
		if code.Len() >= 4 {
			break
		}
	}

	out := code.String()
	for len(out) < 4 {
		out += "0"
	}
	if len(out) > 4 {
		out = out[:4]
	}
	return out
}
