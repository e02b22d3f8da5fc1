package hyphen

import "unicode"

// isVowel reports whether r is one of the eight Finnish vowels.
func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'ä', 'ö':
		return true
	default:
		return false
	}
}

// atomicDigraphs lists consonant clusters that a syllable break may never
// split (spec.md §4.8: "long-consonant digraphs (shtsh, tsh, zh, etc.)
// treated as atomic"). Checked longest-first.
var atomicDigraphs = []string{"shtsh", "tsh", "zh", "ng"}

// vowelSplitPairs is the set of adjacent-vowel pairs that permit an
// internal syllable split (spec.md §4.8: "specific vowel-pair set (ae, ao,
// ea, eo, ia, io, ...) permits internal split"). Unlisted vowel pairs are
// treated as a diphthong: no break between them.
var vowelSplitPairs = map[[2]rune]bool{
	{'a', 'e'}: true, {'a', 'o'}: true,
	{'e', 'a'}: true, {'e', 'o'}: true,
	{'i', 'a'}: true, {'i', 'o'}: true,
	{'o', 'a'}: true, {'u', 'a'}: true,
	{'ä', 'y'}: true, {'ö', 'y'}: true,
}

// syllableBreaks returns the local indices (0 < i < len(part)) before which
// a phonotactic syllable boundary is permitted within one compound part
// (spec.md §4.8). Two adjacent vowels break only when the pair is listed in
// vowelSplitPairs; a repeated vowel ("aa", "ee", ...) is a single long vowel
// and never splits, same as an unlisted diphthong. A run of consonants
// between vowels breaks before its last consonant, except when that
// consonant run's tail matches an atomicDigraph, in which case the break
// moves before the whole digraph.
func syllableBreaks(part []rune) []int {
	var breaks []int
	n := len(part)
	i := 0
	for i < n {
		if !isVowel(part[i]) {
			i++
			continue
		}
		// part[i] is a vowel; scan the run of vowels/consonants after it.
		j := i + 1
		if j < n && isVowel(part[j]) {
			pair := [2]rune{unicode.ToLower(part[i]), unicode.ToLower(part[j])}
			if vowelSplitPairs[pair] {
				breaks = append(breaks, j)
			}
			i = j
			continue
		}
		// consonant run [j, k)
		k := j
		for k < n && !isVowel(part[k]) {
			k++
		}
		clusterLen := k - j
		if clusterLen > 0 && k < n { // followed by another vowel: a break exists
			breakAt := k - 1 // before the last consonant
			if d := atomicDigraphLen(part, j, k); d > 0 {
				breakAt = k - d
			}
			if breakAt > j-1 { // keep at least one consonant before the vowel that follows
				breaks = append(breaks, breakAt)
			}
		}
		i = k
	}
	return breaks
}

// atomicDigraphLen reports the length of the atomic digraph occupying the
// tail of the consonant run part[from:to], or 0 if none applies.
func atomicDigraphLen(part []rune, from, to int) int {
	run := string(part[from:to])
	for _, d := range atomicDigraphs {
		if len(d) <= len(run) && run[len(run)-len(d):] == d {
			return len(d)
		}
	}
	return 0
}
