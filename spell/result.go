// Package spell implements the speller (Component F): normalize a surface
// word, run it through the morphological analyzer, compare each returned
// analysis's STRUCTURE against the word's actual case pattern, and reduce
// the outcome to a four-valued SpellResult, with a small fixed-size cache
// in front of the analyzer call.
package spell

// Result is the ordered four-valued outcome of a spell check (spec.md §3).
// The zero value is Ok; Result values compare correctly with `<` in the
// order the spec requires: Ok is best, Failed is worst.
type Result int

const (
	Ok Result = iota
	CapitalizeFirst
	CapitalizationError
	Failed
)

// String names a Result, for debug output.
func (r Result) String() string {
	switch r {
	case Ok:
		return "Ok"
	case CapitalizeFirst:
		return "CapitalizeFirst"
	case CapitalizationError:
		return "CapitalizationError"
	case Failed:
		return "Failed"
	default:
		return "Result(?)"
	}
}

// min returns the better (lower) of two Results.
func min(a, b Result) Result {
	if a < b {
		return a
	}
	return b
}
