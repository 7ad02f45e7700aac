package rerank

import (
	"testing"

	"github.com/cbouillon/frrerank/internal/normalize"
)

func TestPreprocessEmptyQuery(t *testing.T) {
	p := NewQueryPreprocessor(normalize.New())
	forms := p.Process("   ")

	if !forms.Empty() {
		t.Error("expected an all-whitespace query to produce the empty sentinel")
	}
}

func TestPreprocessFillsAllForms(t *testing.T) {
	p := NewQueryPreprocessor(normalize.New())
	forms := p.Process("  Saint Jean  ")

	if forms.Empty() {
		t.Fatal("did not expect the empty sentinel")
	}
	if forms.Cleaned != "saint jean" {
		t.Errorf("Cleaned = %q, want %q", forms.Cleaned, "saint jean")
	}
	if forms.NoSpace != "saintjean" {
		t.Errorf("NoSpace = %q, want %q", forms.NoSpace, "saintjean")
	}
	if len(forms.WordsCleaned) != 2 {
		t.Errorf("WordsCleaned = %v, want 2 tokens", forms.WordsCleaned)
	}
	if len(forms.WordsNoSpace) != 1 || forms.WordsNoSpace[0] != "saintjean" {
		t.Errorf("WordsNoSpace = %v, want a single element %q", forms.WordsNoSpace, "saintjean")
	}
}
