package morph

import (
	"strings"

	"github.com/voikkofi/vfst/tags"
)

// normalizeClass implements spec.md §4.5 step 8's class-normalization
// rules, mutating attrs in place:
//
//   - "nimisana_laatusana" (a noun/adjective-ambiguous stem) collapses to
//     "laatusana" when COMPARISON is comparative/superlative, or when
//     BASEFORM ends in "-sti" (the adverb suffix);
//   - a past passive participle (PARTICIPLE == "past_passive") normalizes
//     CLASS to "laatusana";
//   - a compound whose last span ends with a literal hyphen followed by a
//     "[Bc]" tag promotes CLASS to "etuliite" (prefix);
//   - CLASS == "kerrontosti" removes the NUMBER attribute.
func normalizeClass(attrs Analysis, toks []tags.Token, structure string) {
	cls := attrs[KeyClass]

	switch {
	case cls == "nimisana_laatusana":
		comp := attrs[KeyComparison]
		if comp == "comparative" || comp == "superlative" || strings.HasSuffix(attrs[KeyBaseform], "sti") {
			attrs[KeyClass] = "laatusana"
		}
	case attrs[KeyParticiple] == "past_passive":
		attrs[KeyClass] = "laatusana"
	}

	if endsWithHyphenThenBc(toks) {
		attrs[KeyClass] = "etuliite"
	}

	if attrs[KeyClass] == "kerrontosti" {
		delete(attrs, KeyNumber)
	}
}

// endsWithHyphenThenBc reports whether toks' trailing shape is a literal
// ending in '-' immediately followed by a "[Bc]" tag.
func endsWithHyphenThenBc(toks []tags.Token) bool {
	sawBc := false
	for i := len(toks) - 1; i >= 0; i-- {
		t := toks[i]
		if t.Kind == tags.Tag {
			if t.Code == "B" && t.Sub == "c" {
				sawBc = true
			}
			continue
		}
		return sawBc && t.Kind == tags.Literal && strings.HasSuffix(t.Text, "-")
	}
	return false
}
