package model

// Candidate is the flat attribute bag a Candidate comes back as from the
// index oracle. Every attribute is read through an accessor so a missing key
// reads as "" rather than requiring a nil check at every call site.
type Candidate map[string]string

// Attr returns the value of a named attribute, or "" if absent.
func (c Candidate) Attr(name string) string {
	return c[name]
}

// Name returns the "name" attribute.
func (c Candidate) Name() string { return c.Attr("name") }

// NameSearch returns the "name_search" attribute.
func (c Candidate) NameSearch() string { return c.Attr("name_search") }

// NameNoSpace returns the "name_no_space" attribute.
func (c Candidate) NameNoSpace() string { return c.Attr("name_no_space") }

// NameSoundex returns the "name_soundex" attribute.
func (c Candidate) NameSoundex() string { return c.Attr("name_soundex") }

// ID returns the candidate's identifier, preferring "id" over "id_etab", and
// reports whether one was present at all.
func (c Candidate) ID() (string, bool) {
	if v, ok := c["id"]; ok && v != "" {
		return v, true
	}
	if v, ok := c["id_etab"]; ok && v != "" {
		return v, true
	}
	return "", false
}

// DiscoveryStrategy returns the "_discovery_strategy" tag a Candidate is
// stamped with during StrategyRunner dedup.
func (c Candidate) DiscoveryStrategy() string { return c.Attr("_discovery_strategy") }

// WithDiscoveryStrategy returns a shallow copy of c tagged with strategy.
// Candidates are small attribute bags, so a copy-on-write here is cheap and
// keeps the oracle's returned slice immutable.
func (c Candidate) WithDiscoveryStrategy(strategy string) Candidate {
	out := make(Candidate, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	out["_discovery_strategy"] = strategy
	return out
}

// PreTaggedExactFull reports whether the oracle pre-tagged this candidate
// with the reserved exact_full match type. The engine never synthesizes this
// tag itself; it only recognizes it as an upstream exact-match channel for
// the cap exception (spec Open Question, §9).
func (c Candidate) PreTaggedExactFull() bool {
	return c.Attr("_match_type") == "exact_full"
}
