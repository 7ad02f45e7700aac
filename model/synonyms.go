package model

import "strings"

// SynonymTable is a mapping from a lowercased base word to its set of
// lowercased synonyms. Two tokens are equivalent if they fall in the same
// equivalence class (base union its synonyms).
//
// Internally it is represented as token -> class id plus class id -> members
// (spec §9), giving O(1) equivalence checks instead of scanning every class
// on every comparison.
type SynonymTable struct {
	classOf map[string]int
	members map[int][]string
	nextID  int
}

// NewSynonymTable builds an empty table.
func NewSynonymTable() *SynonymTable {
	return &SynonymTable{
		classOf: make(map[string]int),
		members: make(map[int][]string),
	}
}

// Raw returns the table in the same shape it is registered with: base word
// (lowercased) -> synonyms (lowercased, deduplicated).
func (t *SynonymTable) Raw() map[string][]string {
	out := make(map[string][]string)
	seenBase := make(map[int]bool)
	for word, classID := range t.classOf {
		if seenBase[classID] {
			continue
		}
		members := t.members[classID]
		if len(members) == 0 {
			continue
		}
		base := members[0]
		rest := make([]string, 0, len(members)-1)
		for _, m := range members {
			if m != base {
				rest = append(rest, m)
			}
		}
		out[base] = rest
		seenBase[classID] = true
		_ = word
	}
	return out
}

// Equivalent reports whether a and b belong to the same equivalence class.
// Tokens are compared case-insensitively; a word with no registered class is
// only equivalent to an exact string match, which the caller already checks
// separately, so an unregistered word here simply returns false.
func (t *SynonymTable) Equivalent(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	classA, okA := t.classOf[a]
	classB, okB := t.classOf[b]
	return okA && okB && classA == classB
}

// Set replaces the table's contents. Each key is a base word, each value the
// list of its synonyms; members are lowercased and deduplicated, and the
// base word is folded into its own class alongside its synonyms.
func (t *SynonymTable) Set(classes map[string][]string) {
	t.classOf = make(map[string]int)
	t.members = make(map[int][]string)
	t.nextID = 0

	for base, syns := range classes {
		base = strings.ToLower(strings.TrimSpace(base))
		if base == "" {
			continue
		}
		classID := t.nextID
		t.nextID++

		seen := map[string]bool{base: true}
		members := []string{base}
		t.classOf[base] = classID

		for _, s := range syns {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			members = append(members, s)
			t.classOf[s] = classID
		}
		t.members[classID] = members
	}
}
