package suggest

import (
	"github.com/coregx/ahocorasick"
)

// replacementPair is one (from, to) substitution in a replacement table
// tier (spec.md §4.7 generator 4: "Finnish keyboard-adjacency replacement
// tables, in 5 frequency tiers").
type replacementPair struct {
	from, to string
}

// replacementTier compiles one tier's "from" patterns into a single
// Aho-Corasick automaton (same multi-pattern-matcher concern the engine
// itself uses for literal prefiltering, reused here for the language
// layer's string-table lookups per SPEC_FULL.md §4.7a), so a whole word is
// scanned once per tier instead of once per replacement pair.
type replacementTier struct {
	pairs []replacementPair
	byKey map[string]string
	auto  *ahocorasick.Automaton
}

func buildTier(pairs []replacementPair) *replacementTier {
	t := &replacementTier{pairs: pairs, byKey: make(map[string]string, len(pairs))}
	b := ahocorasick.NewBuilder()
	for _, p := range pairs {
		b.AddPattern([]byte(p.from))
		t.byKey[p.from] = p.to
	}
	auto, err := b.Build()
	if err == nil {
		t.auto = auto
	}
	return t
}

// findAll returns every (start, end, replacement) match of the tier's
// patterns in word, scanning left to right.
func (t *replacementTier) findAll(word string) []tierMatch {
	if t.auto == nil {
		return nil
	}
	haystack := []byte(word)
	var out []tierMatch
	at := 0
	for at <= len(haystack) {
		m := t.auto.Find(haystack, at)
		if m == nil {
			break
		}
		key := string(haystack[m.Start:m.End])
		if to, ok := t.byKey[key]; ok {
			out = append(out, tierMatch{start: m.Start, end: m.End, to: to})
		}
		at = m.Start + 1
	}
	return out
}

type tierMatch struct {
	start, end int
	to         string
}

// keyboardTiers is the Finnish QWERTY-adjacency replacement table, ordered
// from most to least frequent confusion (spec.md §4.7 generator 4).
var keyboardTiers = []*replacementTier{
	buildTier([]replacementPair{ // tier 1: adjacent-key single letters
		{"a", "s"}, {"s", "a"}, {"s", "d"}, {"d", "s"},
		{"k", "l"}, {"l", "k"}, {"o", "p"}, {"p", "o"},
	}),
	buildTier([]replacementPair{ // tier 2: vowel-diacritic confusions
		{"a", "ä"}, {"ä", "a"}, {"o", "ö"}, {"ö", "o"},
	}),
	buildTier([]replacementPair{ // tier 3: voiced/unvoiced consonant pairs
		{"k", "g"}, {"g", "k"}, {"p", "b"}, {"b", "p"}, {"t", "d"}, {"d", "t"},
	}),
	buildTier([]replacementPair{ // tier 4: sibilant confusions
		{"s", "z"}, {"z", "s"}, {"s", "š"}, {"š", "s"},
	}),
	buildTier([]replacementPair{ // tier 5: rare OCR-adjacent confusions
		{"m", "n"}, {"n", "m"}, {"u", "v"}, {"v", "u"}, {"i", "l"}, {"l", "i"},
	}),
}

// ocrMultiTiers additionally confuses whole digraphs (spec.md §4.7
// generator 12: "apply several replacements simultaneously (bounded)" — OCR
// strategy only).
var ocrMultiTiers = []*replacementTier{
	buildTier([]replacementPair{
		{"rn", "m"}, {"m", "rn"}, {"cl", "d"}, {"d", "cl"}, {"vv", "w"}, {"w", "vv"},
	}),
}

// vowelHarmonyPairs is the back/front vowel pairing for generator 3 (spec.md
// §4.7: "swapping back (a, o, u) <-> front (ä, ö, y)").
var vowelHarmonyPairs = map[rune]rune{
	'a': 'ä', 'ä': 'a',
	'o': 'ö', 'ö': 'o',
	'u': 'y', 'y': 'u',
}

// maxHarmonyVowels bounds generator 3's combinatorial enumeration (spec.md
// §4.7: "for up to 7 vowels").
const maxHarmonyVowels = 7

// insertionAlphabet is the frequency-ordered candidate list for generator 8
// (spec.md §4.7: "insert each char from a frequency-ordered list").
var insertionAlphabet = []rune{
	'a', 'i', 'n', 't', 'e', 's', 'l', 'o', 'u', 'k', 'ä', 'm', 'r', 'v', 'j',
	'h', 'd', 'y', 'ö', 'g', 'b', 'f', 'c', 'w', 'z', 'x', 'q',
}
