package spell

import "unicode"

// matchStructure implements spec.md §4.6 step 5: walk surface and STRUCTURE
// in parallel. 'p'/'q' expect lowercase, 'i'/'j' expect uppercase; a
// lowercase-where-uppercase-expected in the first letter position yields
// CapitalizeFirst, elsewhere CapitalizationError; an uppercase-where-
// lowercase-expected always yields CapitalizationError. '=' is zero-width
// (a compound boundary with no corresponding surface character); '-' and
// ':' consume one literal surface character each without a case check.
// A length mismatch between surface and STRUCTURE (more letter codes than
// surface runes, or vice versa) is Failed — the caller's STRUCTURE came from
// a successful transducer traversal over this exact surface, so this
// should not occur in practice, but is the safe fallback.
func matchStructure(surface []rune, structure string) Result {
	si := 0
	letterIndex := 0
	result := Ok

	for _, sc := range structure {
		switch sc {
		case '=':
			continue
		case '-', ':':
			if si >= len(surface) {
				return Failed
			}
			si++
		case 'p', 'q':
			if si >= len(surface) {
				return Failed
			}
			if isUpperRune(surface[si]) {
				result = max(result, CapitalizationError)
			}
			si++
			letterIndex++
		case 'i', 'j':
			if si >= len(surface) {
				return Failed
			}
			if !isUpperRune(surface[si]) {
				if letterIndex == 0 {
					result = max(result, CapitalizeFirst)
				} else {
					result = max(result, CapitalizationError)
				}
			}
			si++
			letterIndex++
		default:
			si++
		}
	}

	if si != len(surface) {
		return Failed
	}
	return result
}

func isUpperRune(r rune) bool {
	return unicode.IsUpper(r)
}

func max(a, b Result) Result {
	if a > b {
		return a
	}
	return b
}
