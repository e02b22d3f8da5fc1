package morph

import "github.com/voikkofi/vfst/tags"

// Analysis is one morphological decomposition of a surface word: a map
// from attribute key to string value, per spec.md §3. Analysis values are
// returned by value and retain no reference into the analyzer.
type Analysis map[string]string

// Well-known Analysis keys (spec.md §3's ~20-key set; only the ones this
// analyzer actually populates are listed individually, the rest carried by
// callers that synthesize them, e.g. WORDBASES/WORDIDS/FSTOUTPUT/WEIGHT,
// which belong to the suggestion engine's richer analyzer calls).
const (
	KeyBaseform     = "BASEFORM"
	KeyClass        = "CLASS"
	KeyStructure    = "STRUCTURE"
	KeySijamuoto    = "SIJAMUOTO"
	KeyNumber       = "NUMBER"
	KeyPerson       = "PERSON"
	KeyMood         = "MOOD"
	KeyTense        = "TENSE"
	KeyComparison   = "COMPARISON"
	KeyNegative     = "NEGATIVE"
	KeyParticiple   = "PARTICIPLE"
	KeyPossessive   = "POSSESSIVE"
	KeyFocus        = "FOCUS"
	KeyKysymysliite = "KYSYMYSLIITE"
)

// attributeCode maps a tag's class letter to the Analysis key it feeds and
// whether its sub-code is copied verbatim or translated through a small
// value table. This table is an internal engineering decision (spec.md
// §4.4 describes the class-code alphabet but leaves the
// code→attribute-name binding to the implementation); see DESIGN.md.
type attributeCode struct {
	key      string
	verbatim bool
	values   map[string]string
}

var attributeCodes = map[string]attributeCode{
	"L": {key: KeyClass, verbatim: true},
	"S": {key: KeySijamuoto, verbatim: true},
	"N": {key: KeyNumber, values: map[string]string{"y": "singular", "m": "plural"}},
	"P": {key: KeyPerson, values: map[string]string{"1": "first_person", "2": "second_person", "3": "third_person"}},
	"T": {key: KeyTense, values: map[string]string{
		"p": "present_simple", "im": "past_imperfect",
	}},
	"A": {key: KeyComparison, values: map[string]string{"c": "comparative", "s": "superlative", "": "positive"}},
	"C": {key: KeyMood, values: map[string]string{
		"n": "indicative", "e": "conditional", "k": "imperative", "a": "potential",
	}},
	"O": {key: KeyParticiple, verbatim: true},
	"F": {key: KeyPossessive, verbatim: true},
	"R": {key: KeyFocus, verbatim: true},
}

// extractAttributes scans tokens backwards and records the LAST occurrence
// of each attribute code's Analysis key (spec.md §4.5 step 4: "suffixes
// dominate"). The presence-only codes E ([Lnegative]-style "[Ee]") and D
// (kysymysliite) set their key to "true" the first time seen scanning
// backwards, i.e. if present anywhere.
func extractAttributes(toks []tags.Token) Analysis {
	a := make(Analysis)
	for i := len(toks) - 1; i >= 0; i-- {
		t := toks[i]
		if t.Kind != tags.Tag {
			continue
		}
		switch t.Code {
		case "E":
			if _, ok := a[KeyNegative]; !ok {
				a[KeyNegative] = "true"
			}
		case "D":
			if _, ok := a[KeyKysymysliite]; !ok {
				a[KeyKysymysliite] = "true"
			}
		default:
			ac, ok := attributeCodes[t.Code]
			if !ok {
				continue
			}
			if _, already := a[ac.key]; already {
				continue
			}
			if ac.verbatim {
				a[ac.key] = t.Sub
			} else if v, ok := ac.values[t.Sub]; ok {
				a[ac.key] = v
			}
		}
	}
	return a
}
