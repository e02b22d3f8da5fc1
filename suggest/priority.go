package suggest

import (
	"strings"

	"github.com/voikkofi/vfst/morph"
	"github.com/voikkofi/vfst/spell"
)

// wordClassBase maps a CLASS attribute value to its priority base (spec.md
// §4.7: "table-driven, values 1..60"). Word classes not listed fall back to
// defaultClassBase; this table favors the most frequent open classes.
var wordClassBase = map[string]int{
	"nimisana":  10,
	"laatusana": 15,
	"teonsana":  12,
	"nimi":      20,
	"lyhenne":   35,
	"seikkasana": 25,
	"etuliite":  40,
}

const defaultClassBase = 30

// caseNumberAdjust refines wordClassBase by SIJAMUOTO/NUMBER, per spec.md
// §4.7's "word class + case + number" priority input: the nominative
// singular (the dictionary headword shape) is the cheapest; anything else
// costs a little more, biasing suggestions toward base forms.
func caseNumberAdjust(a morph.Analysis) int {
	adjust := 0
	if a[morph.KeySijamuoto] != "" && a[morph.KeySijamuoto] != "nimento" {
		adjust += 3
	}
	if a[morph.KeyNumber] == "plural" {
		adjust += 2
	}
	return adjust
}

// bestAnalysisPriorityBase picks the lowest (best) class-base score across a
// word's analyses, falling back to defaultClassBase when there are none
// (e.g. the candidate is only accepted by the non-dictionary error model).
func bestAnalysisPriorityBase(analyses []morph.Analysis) int {
	if len(analyses) == 0 {
		return defaultClassBase
	}
	best := -1
	for _, a := range analyses {
		base, ok := wordClassBase[a[morph.KeyClass]]
		if !ok {
			base = defaultClassBase
		}
		base += caseNumberAdjust(a)
		if best == -1 || base < best {
			best = base
		}
	}
	return best
}

// compoundPenalty implements spec.md §4.7: `1 << (3*(partCount-1))`, counted
// from '=' occurrences in STRUCTURE.
func compoundPenalty(structure string) int {
	parts := strings.Count(structure, "=") + 1
	return 1 << uint(3*(parts-1))
}

// resultWeight maps a spell.Result to spec.md §4.7's {1,2,3} weight.
func resultWeight(r spell.Result) int {
	switch r {
	case spell.Ok:
		return 1
	case spell.CapitalizeFirst:
		return 2
	default:
		return 3
	}
}

// priority computes spec.md §4.7's base score for one candidate:
// wordClassBase x compoundPenalty x resultWeight. The caller multiplies the
// result by (suggestionCount + 5) at emission time to bias earlier
// strategies, since that term depends on engine-global state this function
// does not have access to.
func priority(analyses []morph.Analysis, structure string, r spell.Result) int {
	return bestAnalysisPriorityBase(analyses) * compoundPenalty(structure) * resultWeight(r)
}
