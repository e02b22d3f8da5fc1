package morph

import (
	"strings"
	"unicode"

	"github.com/voikkofi/vfst/tags"
)

// buildStructure walks tokens forward and emits the STRUCTURE string
// (spec.md §3, §4.5 step 5): '=' at compound boundaries (any [B*] tag
// except [Bh]), the literal hyphen copied through for [Bh], default
// per-character case markers ('i'/'j' for expected-uppercase spans, 'p'/'q'
// for expected-lowercase) driven by whether a proper-noun or abbreviation
// flag is in effect, and [Xr] override spans copied verbatim as their own
// STRUCTURE text (Open Question 1, see DESIGN.md: an [Xr] span overlays
// STRUCTURE casing for its own letters without reopening a prior [Xp]
// BASEFORM span).
func buildStructure(toks []tags.Token) string {
	var b strings.Builder
	properNoun := false
	abbreviation := false

	for _, t := range toks {
		switch t.Kind {
		case tags.Literal:
			for _, r := range t.Text {
				if r == ':' {
					b.WriteByte(':')
					continue
				}
				if !unicode.IsLetter(r) {
					continue
				}
				b.WriteByte(structureLetterCode(properNoun, abbreviation))
			}
		case tags.Override:
			if t.Sub == "r" {
				// An [Xr] span overlays STRUCTURE casing verbatim for its
				// own letters; it does not reopen or extend an [Xp] span.
				for _, r := range t.Text {
					if unicode.IsUpper(r) {
						b.WriteByte('i')
					} else if unicode.IsLetter(r) {
						b.WriteByte('p')
					}
				}
			}
			// [Xp] contributes to BASEFORM only (see buildBaseform); it is
			// not itself reflected into STRUCTURE since its text is the
			// dictionary form, not the surface form being spelled.
		case tags.Tag:
			switch {
			case t.IsHyphenBoundary():
				b.WriteByte('-')
			case t.IsBoundary():
				b.WriteByte('=')
			case t.Code == "I" && t.Sub == "ee":
				properNoun = true
			case t.Code == "I" && t.Sub == "ly":
				abbreviation = true
			}
		}
	}
	return b.String()
}

// structureLetterCode returns the default per-letter STRUCTURE code.
// Case expectation and hyphenation-forbidding are orthogonal axes (spec.md
// §3: 'p' lowercase, 'q' lowercase+hyphenation-forbidden, 'i' uppercase,
// 'j' uppercase+hyphenation-forbidden): properNoun alone selects the case
// ('i' vs 'p'), and abbreviation alone selects the forbidding variant of
// whichever case properNoun chose ('j' vs 'q'). An abbreviation is never
// forced to uppercase by this function — "mm." stays lowercase ('q'), not
// 'j'.
func structureLetterCode(properNoun, abbreviation bool) byte {
	switch {
	case properNoun && abbreviation:
		return 'j'
	case properNoun:
		return 'i'
	case abbreviation:
		return 'q'
	default:
		return 'p'
	}
}

// structureLetterCount returns the number of letter-position codes in a
// STRUCTURE string (excluding boundary markers), for validating spec.md
// §3's invariant that it equals the surface word's letter count.
func structureLetterCount(structure string) int {
	n := 0
	for _, c := range structure {
		switch c {
		case '=', '-', ':':
			continue
		default:
			n++
		}
	}
	return n
}
