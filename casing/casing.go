// Package casing implements Unicode normalization, Finnish-specific
// combining-mark fixups, and STRUCTURE-guided case coercion (spec.md §4.1,
// Component A). It is the leaf dependency of every other package in this
// module: morphological analysis lowercases through it before driving the
// transducer, and the speller restores surface case through it afterward.
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CaseType classifies the letter-casing pattern of a word.
type CaseType int

const (
	// NoLetters: the input contains no Unicode letters at all.
	NoLetters CaseType = iota
	// AllLower: every letter is lowercase.
	AllLower
	// FirstUpper: the first letter is uppercase, every other letter lowercase.
	FirstUpper
	// AllUpper: every letter is uppercase (single-letter words count as both
	// AllUpper and FirstUpper; FirstUpper is preferred in that case).
	AllUpper
	// Complex: any other mixture (e.g. "mCLaren", "wWW").
	Complex
)

// String returns the case type's name.
func (c CaseType) String() string {
	switch c {
	case NoLetters:
		return "NoLetters"
	case AllLower:
		return "AllLower"
	case FirstUpper:
		return "FirstUpper"
	case AllUpper:
		return "AllUpper"
	case Complex:
		return "Complex"
	default:
		return "CaseType(?)"
	}
}

// finnishFixups replaces combining-mark sequences the Finnish dictionary's
// transducer was compiled against with their precomposed forms, beyond
// plain NFC. The table is deliberately small: it covers the handful of
// sequences real Finnish input sources (legacy encodings, OCR output, and
// some keyboard layouts) actually produce around ä, ö, å and the acute
// accent used in loanwords, rather than attempting a general combining-
// character table.
var finnishFixups = []struct {
	from, to string
}{
	{"ä", "ä"}, {"Ä", "Ä"},
	{"ö", "ö"}, {"Ö", "Ö"},
	{"å", "å"}, {"Å", "Å"},
	{"é", "é"}, {"É", "É"},
	{"ʹ", "'"}, {"’", "'"},
}

// Normalize applies NFC followed by the Finnish combining-mark fixup table,
// producing the canonical byte sequence the analyzer and speller operate
// on. Normalize is idempotent and total: every input, including the empty
// string, is handled (spec.md §4.1, §8).
func Normalize(s string) string {
	if isASCIIFast(s) {
		// Plain ASCII is already NFC-normal and contains none of the
		// fixup table's combining sequences; skip both passes.
		return s
	}
	s = norm.NFC.String(s)
	for _, f := range finnishFixups {
		if strings.Contains(s, f.from) {
			s = strings.ReplaceAll(s, f.from, f.to)
		}
	}
	// A second NFC pass folds any precomposed-plus-combining leftovers the
	// fixup table's replacements themselves introduced.
	return norm.NFC.String(s)
}

// ClassifyCase determines the CaseType of chars, a pre-split rune slice.
// Non-letter runes are ignored for classification purposes but do not by
// themselves force Complex (e.g. "kissa-koira" is AllLower).
func ClassifyCase(chars []rune) CaseType {
	var letters []rune
	for _, r := range chars {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return NoLetters
	}
	if len(letters) == 1 {
		if unicode.IsUpper(letters[0]) {
			return FirstUpper
		}
		return AllLower
	}

	firstUpper := unicode.IsUpper(letters[0])
	restUpper := true
	restLower := true
	for _, r := range letters[1:] {
		if unicode.IsUpper(r) {
			restLower = false
		} else if unicode.IsLower(r) {
			restUpper = false
		}
	}

	switch {
	case !firstUpper && restLower:
		return AllLower
	case firstUpper && restLower:
		return FirstUpper
	case firstUpper && restUpper:
		return AllUpper
	case !firstUpper && restUpper:
		// lowercase first letter, uppercase rest: still Complex per spec,
		// since only AllLower/FirstUpper/AllUpper are "clean" patterns.
		return Complex
	default:
		return Complex
	}
}

// ApplyStructureCase rewrites each letter of chars to upper or lower case
// according to the STRUCTURE code's per-character markers, leaving non-
// letter positions untouched. structure's letter-position characters use
// 'i'/'j' for required-uppercase and 'p'/'q' for required-lowercase;
// boundary markers ('=', '-', ':') are skipped without consuming a letter,
// and any other code consumes one letter and leaves its case unchanged.
//
// ApplyStructureCase does not itself validate that len(chars) letters
// matches the STRUCTURE's letter-code count; callers that need the
// invariant from spec.md §3 check it before calling.
func ApplyStructureCase(chars []rune, structure string) []rune {
	out := make([]rune, len(chars))
	copy(out, chars)
	si := 0
	sr := []rune(structure)
	for i, r := range out {
		if !unicode.IsLetter(r) {
			continue
		}
		for si < len(sr) && isBoundaryMarker(sr[si]) {
			si++
		}
		if si >= len(sr) {
			break
		}
		switch sr[si] {
		case 'i', 'j':
			out[i] = unicode.ToUpper(r)
		case 'p', 'q':
			out[i] = unicode.ToLower(r)
		}
		si++
	}
	return out
}

func isBoundaryMarker(c rune) bool {
	return c == '=' || c == '-' || c == ':'
}
