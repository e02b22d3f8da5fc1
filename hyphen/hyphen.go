// Package hyphen implements spec.md §4.8: compound-boundary extraction from
// an analysis's STRUCTURE string, phonotactic syllable rules per compound
// part, and the space/'-'/'=' output pattern.
package hyphen

import (
	"strings"
	"unicode"

	"github.com/voikkofi/vfst/morph"
)

// Hyphenator drives an Analyzer to find STRUCTURE boundaries, then applies
// phonotactic syllable rules within each compound part.
type Hyphenator struct {
	analyzer *morph.Analyzer
	opts     Options
}

// New creates a Hyphenator over an Analyzer.
func New(analyzer *morph.Analyzer, opts Options) *Hyphenator {
	return &Hyphenator{analyzer: analyzer, opts: opts}
}

// SetOptions replaces the hyphenator's options.
func (h *Hyphenator) SetOptions(opts Options) { h.opts = opts }

// Hyphenate returns a pattern string of the same length as word: ' ' (no
// break), '-' (break before this char), '=' (this char replaced by a
// hyphen on rendering). For multiple analyses, only positions every
// analysis agrees on survive (spec.md §4.8: "intersect hyphenation
// positions").
func (h *Hyphenator) Hyphenate(word string) string {
	r := []rune(word)
	n := len(r)
	pattern := make([]rune, n)
	for i := range pattern {
		pattern[i] = ' '
	}
	if n < h.opts.MinHyphenatedWordLength {
		return string(pattern)
	}

	analyses := h.analyzer.Analyze(strings.ToLower(word))
	var structures []string
	for _, a := range analyses {
		if s := a[morph.KeyStructure]; s != "" {
			structures = append(structures, s)
		}
	}

	var breakSets []map[int]bool
	var replaceSets []map[int]bool
	if len(structures) == 0 {
		if !h.opts.HyphenateUnknownWords {
			return string(pattern)
		}
		br, rep := breaksForStructure(r, "")
		breakSets = append(breakSets, br)
		replaceSets = append(replaceSets, rep)
	} else {
		for _, s := range structures {
			br, rep := breaksForStructure(r, s)
			breakSets = append(breakSets, br)
			replaceSets = append(replaceSets, rep)
		}
	}

	breaks := intersect(breakSets)
	replaces := intersect(replaceSets)
	applyNoBreakZone(breaks, n)
	if h.opts.NoUglyHyphenation {
		stripUglyBreaks(breaks, r)
	}

	for pos := range breaks {
		if pos > 0 && pos < n {
			pattern[pos] = '-'
		}
	}
	for pos := range replaces {
		if pos >= 0 && pos < n {
			pattern[pos] = '='
		}
	}
	return string(pattern)
}

// HyphenateRendered implements the hyphenate(word, sep, allowContextChanges)
// variant: it renders a literal hyphenated string instead of a pattern.
// '-' positions get sep inserted before the character; '=' positions
// either replace the character with sep (when allowContextChanges) or are
// left untouched.
func (h *Hyphenator) HyphenateRendered(word, sep string, allowContextChanges bool) string {
	pattern := []rune(h.Hyphenate(word))
	r := []rune(word)
	var b strings.Builder
	for i, c := range r {
		switch pattern[i] {
		case '-':
			b.WriteString(sep)
			b.WriteRune(c)
		case '=':
			if allowContextChanges {
				b.WriteString(sep)
			} else {
				b.WriteRune(c)
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// breaksForStructure walks one analysis's STRUCTURE string alongside the
// surface runes, returning the compound-boundary break set and the
// context-sensitive replace set (apostrophe-style glottal stops flanked by
// vowels, candidates for the '=' code under allowContextChanges).
// structure == "" falls back to treating the whole word as one part of
// default-case letters (used for hyphenateUnknownWords).
func breaksForStructure(surface []rune, structure string) (breaks, replaces map[int]bool) {
	breaks = make(map[int]bool)
	replaces = make(map[int]bool)

	parts := compoundParts(surface, structure)
	for _, p := range parts {
		for _, local := range syllableBreaks(p.text) {
			breaks[p.offsets[local]] = true
		}
	}
	for _, b := range boundaryPositions(surface, structure) {
		breaks[b] = true
	}
	for i, c := range surface {
		if c == '\'' && i > 0 && i+1 < len(surface) && isVowel(surface[i-1]) && isVowel(surface[i+1]) {
			replaces[i] = true
		}
	}
	return breaks, replaces
}

// part is one compound part: text holds its letters, and offsets[i] is
// text[i]'s real index in the surface word — the two diverge whenever a
// STRUCTURE boundary consumed a literal hyphen or colon before text[i], so
// syllableBreaks' local indices must be translated through offsets, never
// through a contiguous start+i.
type part struct {
	text    []rune
	offsets []int
}

// compoundParts splits surface into the substrings between STRUCTURE
// compound boundaries ('=' and '-') and between any run of surface
// characters STRUCTURE has no code for. The latter run is almost always an
// apostrophe marking a glottal stop left by consonant gradation (e.g.
// "vaa'an"): it is itself a syllable boundary, not a transparent character,
// so the letters flanking it must never be compared to each other by
// syllableBreaks as if they were phonotactically adjacent. structure == ""
// yields the whole word as one part.
func compoundParts(surface []rune, structure string) []part {
	if structure == "" {
		offsets := make([]int, len(surface))
		for i := range offsets {
			offsets[i] = i
		}
		return []part{{text: surface, offsets: offsets}}
	}
	var parts []part
	idx := 0
	var cur []rune
	var curOffsets []int
	flush := func() {
		if len(cur) > 0 {
			parts = append(parts, part{text: cur, offsets: curOffsets})
		}
		cur = nil
		curOffsets = nil
	}
	// advance skips to the next STRUCTURE-relevant surface rune, flushing
	// the part in progress if it had to cross a transparent run to get
	// there.
	advance := func() {
		start := idx
		idx = advancePastTransparent(surface, idx)
		if idx > start {
			flush()
		}
	}
	for _, c := range structure {
		switch c {
		case '=':
			flush()
		case '-':
			flush()
			advance()
			idx++ // consume the literal hyphen
		case ':':
			advance()
			if idx < len(surface) {
				cur = append(cur, surface[idx])
				curOffsets = append(curOffsets, idx)
			}
			idx++
		default: // p, q, i, j
			advance()
			if idx < len(surface) {
				cur = append(cur, surface[idx])
				curOffsets = append(curOffsets, idx)
			}
			idx++
		}
	}
	flush()
	return parts
}

// boundaryPositions returns the surface index of every '=' compound
// boundary in structure (a break point with no corresponding surface
// character to consume).
func boundaryPositions(surface []rune, structure string) []int {
	if structure == "" {
		return nil
	}
	var out []int
	idx := 0
	for _, c := range structure {
		switch c {
		case '=':
			out = append(out, advancePastTransparent(surface, idx))
		case '-', ':':
			idx = advancePastTransparent(surface, idx) + 1
		default:
			idx = advancePastTransparent(surface, idx) + 1
		}
	}
	return out
}

// advancePastTransparent skips surface runes STRUCTURE has no code for
// (apostrophes and other non-letter, non-hyphen, non-colon characters).
func advancePastTransparent(surface []rune, idx int) int {
	for idx < len(surface) && !unicode.IsLetter(surface[idx]) && surface[idx] != '-' && surface[idx] != ':' {
		idx++
	}
	return idx
}

// intersect returns the set of positions present in every set of sets. A
// single set (the common case: one analysis) passes through unchanged.
func intersect(sets []map[int]bool) map[int]bool {
	if len(sets) == 0 {
		return map[int]bool{}
	}
	out := make(map[int]bool, len(sets[0]))
	for pos := range sets[0] {
		in := true
		for _, s := range sets[1:] {
			if !s[pos] {
				in = false
				break
			}
		}
		if in {
			out[pos] = true
		}
	}
	return out
}

// applyNoBreakZone removes breaks closer than 2 characters to either edge
// of the word (spec.md §4.8: "forbidden before position 2 or after
// len-2").
func applyNoBreakZone(breaks map[int]bool, n int) {
	for pos := range breaks {
		if pos < 2 || pos > n-2 {
			delete(breaks, pos)
		}
	}
}

// stripUglyBreaks removes vowel-pair splits when noUglyHyphenation is
// enabled: a split immediately after a vowel whose predecessor is also a
// vowel is legal (per vowelSplitPairs) but considered ugly.
func stripUglyBreaks(breaks map[int]bool, surface []rune) {
	for pos := range breaks {
		if pos > 0 && pos < len(surface) && isVowel(surface[pos-1]) && isVowel(surface[pos]) {
			delete(breaks, pos)
		}
	}
}
