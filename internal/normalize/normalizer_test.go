package normalize

import "testing"

func TestCleanUserQuery(t *testing.T) {
	f := New()

	tests := []struct {
		in   string
		want string
	}{
		{"  Café-Bordô  ", "cafe bordo"},
		{"Saint-Jean", "saint jean"},
		{"", ""},
		{"déjà vu !", "deja vu"},
	}

	for _, tt := range tests {
		if got := f.CleanUserQuery(tt.in); got != tt.want {
			t.Errorf("CleanUserQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeQueryKeepsAccents(t *testing.T) {
	f := New()

	got := f.NormalizeQuery("  Café   Bordô ")
	want := "café bordô"
	if got != want {
		t.Errorf("NormalizeQuery = %q, want %q", got, want)
	}
}

func TestSoundexFR(t *testing.T) {
	f := New()

	if got := f.SoundexFR(""); got != "" {
		t.Errorf("SoundexFR(\"\") = %q, want empty", got)
	}

	got := f.SoundexFR("Paris")
	if got == "" {
		t.Error("expected a non-empty soundex code for 'Paris'")
	}

	// Case differences that clean to the same token must produce the
	// same code.
	a := f.SoundexFR("Bordeaux")
	b := f.SoundexFR("BORDEAUX")
	if a != b {
		t.Errorf("expected case-insensitive determinism, got %q vs %q", a, b)
	}
}

func TestSoundexTokenLength(t *testing.T) {
	code := soundexToken("Dupont")
	if len(code) != 4 {
		t.Errorf("expected a 4-character code, got %q (len %d)", code, len(code))
	}
}
