package suggest

import (
	"strings"
	"unicode"

	"github.com/voikkofi/vfst/casing"
)

// genCaseChange implements generator 1. The word as-is is not a candidate
// (the engine marks the input as seen, so try() never spells it); this
// yields an uppercase-first variant, then a STRUCTURE-rewritten variant driven by the first analysis
// found for the lowercase form (spec.md §4.7 generator 1).
func genCaseChange(word string, structure string) []string {
	var out []string
	r := []rune(word)
	if len(r) > 0 {
		up := make([]rune, len(r))
		copy(up, r)
		up[0] = unicode.ToUpper(up[0])
		out = append(out, string(up))
	}
	if structure != "" {
		rewritten := casing.ApplyStructureCase(r, structure)
		out = append(out, string(rewritten))
	}
	return out
}

// genSoftHyphenStrip implements generator 2: drop U+00AD and re-spell.
func genSoftHyphenStrip(word string) []string {
	if !strings.ContainsRune(word, '­') {
		return nil
	}
	return []string{strings.Map(func(r rune) rune {
		if r == '­' {
			return -1
		}
		return r
	}, word)}
}

// genVowelHarmony implements generator 3: enumerate all 2^k combinations of
// swapping back/front vowel pairs for up to maxHarmonyVowels vowels.
func genVowelHarmony(word string) []string {
	r := []rune(word)
	var positions []int
	for i, c := range r {
		if _, ok := vowelHarmonyPairs[unicode.ToLower(c)]; ok {
			positions = append(positions, i)
			if len(positions) == maxHarmonyVowels {
				break
			}
		}
	}
	if len(positions) == 0 {
		return nil
	}
	n := len(positions)
	total := 1 << uint(n)
	out := make([]string, 0, total-1)
	for mask := 1; mask < total; mask++ {
		cand := make([]rune, len(r))
		copy(cand, r)
		for bit := 0; bit < n; bit++ {
			if mask&(1<<uint(bit)) == 0 {
				continue
			}
			pos := positions[bit]
			lower := unicode.ToLower(cand[pos])
			swapped := vowelHarmonyPairs[lower]
			if unicode.IsUpper(cand[pos]) {
				swapped = unicode.ToUpper(swapped)
			}
			cand[pos] = swapped
		}
		out = append(out, string(cand))
	}
	return out
}

// genCharReplacement implements generator 4: apply the keyboard-adjacency
// replacement tiers in order.
func genCharReplacement(word string) []string {
	return applyTiers(word, keyboardTiers)
}

// genMultiReplacement implements generator 12 (OCR only): simultaneous
// multi-character digraph replacements.
func genMultiReplacement(word string) []string {
	return applyTiers(word, ocrMultiTiers)
}

func applyTiers(word string, tiers []*replacementTier) []string {
	var out []string
	for _, tier := range tiers {
		for _, m := range tier.findAll(word) {
			out = append(out, word[:m.start]+m.to+word[m.end:])
		}
	}
	return out
}

// genReplaceTwo implements generator 5: replace a doubled character
// ("ss"->"dd"-shaped single-letter doubling) using the same tier tables
// applied to the doubled form.
func genReplaceTwo(word string) []string {
	r := []rune(word)
	var out []string
	for i := 0; i+1 < len(r); i++ {
		if r[i] != r[i+1] {
			continue
		}
		for _, tier := range keyboardTiers {
			for _, p := range tier.pairs {
				pr := []rune(p.from)
				if len(pr) != 1 || pr[0] != unicode.ToLower(r[i]) {
					continue
				}
				cand := make([]rune, len(r))
				copy(cand, r)
				rep := []rune(p.to)
				if len(rep) != 1 {
					continue
				}
				cand[i], cand[i+1] = rep[0], rep[0]
				out = append(out, string(cand))
			}
		}
	}
	return out
}

// genDeletion implements generator 6: drop each char, skipping adjacent
// duplicates (trying "aa" -> "a" once, not twice).
func genDeletion(word string) []string {
	r := []rune(word)
	var out []string
	for i := range r {
		if i > 0 && r[i] == r[i-1] {
			continue
		}
		out = append(out, string(r[:i])+string(r[i+1:]))
	}
	return out
}

// genDeleteTwo implements generator 7: for words >= 6 chars, drop a
// repeated 2-char substring.
func genDeleteTwo(word string) []string {
	r := []rune(word)
	if len(r) < 6 {
		return nil
	}
	var out []string
	for i := 0; i+3 < len(r); i++ {
		if r[i] == r[i+2] && r[i+1] == r[i+3] {
			out = append(out, string(r[:i])+string(r[i+2:]))
		}
	}
	return out
}

// genInsertion implements generator 8: insert each char from a frequency-
// ordered list at each position.
func genInsertion(word string) []string {
	r := []rune(word)
	out := make([]string, 0, (len(r)+1)*len(insertionAlphabet))
	for i := 0; i <= len(r); i++ {
		for _, c := range insertionAlphabet {
			cand := make([]rune, 0, len(r)+1)
			cand = append(cand, r[:i]...)
			cand = append(cand, c)
			cand = append(cand, r[i:]...)
			out = append(out, string(cand))
		}
	}
	return out
}

// genInsertSpecial implements generator 9: insert '-' at interior positions,
// and duplicate each character.
func genInsertSpecial(word string) []string {
	r := []rune(word)
	var out []string
	for i := 1; i < len(r); i++ {
		out = append(out, string(r[:i])+"-"+string(r[i:]))
	}
	for i := range r {
		cand := make([]rune, 0, len(r)+1)
		cand = append(cand, r[:i]...)
		cand = append(cand, r[i], r[i])
		cand = append(cand, r[i+1:]...)
		out = append(out, string(cand))
	}
	return out
}

// genSplitWord implements generator 10: split at each interior position,
// returning each pair of halves. Both halves must spell; the engine's
// trySplits checks that and builds the space-joined candidate.
func genSplitWord(word string) [][2]string {
	r := []rune(word)
	var out [][2]string
	for i := 1; i < len(r); i++ {
		out = append(out, [2]string{string(r[:i]), string(r[i:])})
	}
	return out
}

// genSwap implements generator 11: swap char pairs within distance
// max(10, 50/len).
func genSwap(word string) []string {
	r := []rune(word)
	n := len(r)
	if n < 2 {
		return nil
	}
	maxDist := 10
	if d := 50 / n; d > maxDist {
		maxDist = d
	}
	var out []string
	for i := 0; i < n; i++ {
		for j := i + 1; j < n && j-i <= maxDist; j++ {
			cand := make([]rune, n)
			copy(cand, r)
			cand[i], cand[j] = cand[j], cand[i]
			out = append(out, string(cand))
		}
	}
	return out
}
