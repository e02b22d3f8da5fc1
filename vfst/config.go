package vfst

// DefaultBufferSize is the default stack capacity used by Config and
// WeightedConfig (spec.md §3: "typically 2000"). Exceeding it terminates the
// search with "no more results" rather than growing unbounded.
const DefaultBufferSize = 2000

// iterationLimit bounds the total number of inner-loop iterations a single
// Next/NextWeighted call may perform before giving up, guaranteeing
// termination on pathological inputs (spec.md §4.3).
const iterationLimit = 100000

// unknownCharSentinel is the input-symbol value substituted for a character
// with no entry in the symbol table, for the unweighted engine only (the
// weighted engine returns false immediately on an unknown character, per
// spec.md §4.3 "prepare").
const unknownCharSentinel = -1

// mapInput converts a string to the per-rune input-symbol sequence used by
// both engines, via the transducer's symbol table.
func mapInput(symbols *SymbolTable, input string) (runes []rune, syms []int) {
	runes = []rune(input)
	syms = make([]int, len(runes))
	for i, r := range runes {
		if idx, ok := symbols.IndexOfChar(r); ok {
			syms[i] = idx
		} else {
			syms[i] = unknownCharSentinel
		}
	}
	return runes, syms
}
