package morph

import (
	"unicode"

	"github.com/voikkofi/vfst/tags"
)

// validateCompound implements spec.md §4.5 step 6: reject an analysis
// whose tag sequence describes an ill-formed compound. Three checks:
//
//  1. every [Bh] boundary must be followed, in the surface text, by a
//     literal hyphen;
//  2. a boundary between two identical vowels, or immediately after a
//     digit, requires a hyphen unless the following span carries an
//     "[Isf]" free-suffix-part override;
//  3. a proper-noun-initial compound ([Iee] at the start) may not be
//     followed by an incompatible ending class (anything whose CLASS tag
//     is a verb, "teonsana").
func validateCompound(toks []tags.Token) bool {
	var prevLastRune rune
	prevIsDigit := false
	properNounStart := false
	sawAnyLiteral := false
	atBoundary := false

	for i, t := range toks {
		switch t.Kind {
		case tags.Literal:
			if t.Text == "" {
				continue
			}
			r := []rune(t.Text)
			first := r[0]

			if !sawAnyLiteral && properNounStartPending(toks, i) {
				properNounStart = true
			}
			sawAnyLiteral = true

			if atBoundary {
				if prevIsDigit && first != '-' && !hasFreeSuffixOverride(toks, i) {
					return false
				}
				if prevLastRune != 0 && isVowel(prevLastRune) && isVowel(first) && prevLastRune == first {
					if !hasFreeSuffixOverride(toks, i) {
						return false
					}
				}
			}
			atBoundary = false

			last := r[len(r)-1]
			prevLastRune = last
			prevIsDigit = unicode.IsDigit(last)

		case tags.Tag:
			if t.IsHyphenBoundary() {
				if !followedByHyphen(toks, i) {
					return false
				}
				prevLastRune = 0
				prevIsDigit = false
			} else if t.IsBoundary() {
				// Non-hyphen boundary: the vowel/digit rule above consults
				// prevLastRune/prevIsDigit at the next literal.
				atBoundary = true
			}
		}
	}

	if properNounStart && hasIncompatibleEndingClass(toks) {
		return false
	}
	return true
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'ä', 'ö':
		return true
	default:
		return false
	}
}

// followedByHyphen reports whether the literal immediately after tokens[i]
// begins with a literal '-'.
func followedByHyphen(toks []tags.Token, i int) bool {
	for j := i + 1; j < len(toks); j++ {
		if toks[j].Kind == tags.Literal {
			return len(toks[j].Text) > 0 && toks[j].Text[0] == '-'
		}
		if toks[j].Kind == tags.Tag {
			continue
		}
		return false
	}
	return false
}

// hasFreeSuffixOverride reports whether an "[Isf]" tag appears between the
// previous boundary and the literal at index i, overriding the
// hyphen-required rule (spec.md §4.5 step 6).
func hasFreeSuffixOverride(toks []tags.Token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if toks[j].Kind == tags.Tag {
			if toks[j].Code == "I" && toks[j].Sub == "sf" {
				return true
			}
			if toks[j].IsBoundary() || toks[j].IsHyphenBoundary() {
				return false
			}
		}
	}
	return false
}

// properNounStartPending reports whether an "[Iee]" proper-noun tag
// appears before the first literal span at index i.
func properNounStartPending(toks []tags.Token, i int) bool {
	for j := 0; j < i; j++ {
		if toks[j].Kind == tags.Tag && toks[j].Code == "I" && toks[j].Sub == "ee" {
			return true
		}
	}
	return false
}

// hasIncompatibleEndingClass reports whether toks' CLASS tag (the last "L"
// tag) names a verb ("teonsana"), which cannot end a proper-noun-initial
// compound (spec.md §4.5 step 6).
func hasIncompatibleEndingClass(toks []tags.Token) bool {
	cls := ""
	for _, t := range toks {
		if t.Kind == tags.Tag && t.Code == "L" {
			cls = t.Sub
		}
	}
	return cls == "teonsana"
}
