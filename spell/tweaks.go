package spell

import (
	"strings"
	"unicode"
)

// decapitalizeFirst lowercases only word's first rune, leaving the rest
// untouched.
func decapitalizeFirst(word string) string {
	r := []rune(word)
	if len(r) == 0 {
		return word
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

const softHyphen = '­'

// stripSoftHyphens removes all U+00AD soft hyphens from word, returning the
// stripped text and whether any were removed (spec.md §4.6 step 4). The
// caller re-validates by spelling the stripped form. The removed positions
// are not compared with hyphenation points: a soft hyphen at a position
// the hyphenator would not choose does not by itself fail the spelling
// (Open Question 4, see DESIGN.md).
func stripSoftHyphens(word string) (string, bool) {
	if !strings.ContainsRune(word, softHyphen) {
		return word, false
	}
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if r != softHyphen {
			b.WriteRune(r)
		}
	}
	return b.String(), true
}

// removeOptionalHyphen drops a single interior '-' from word, trying each
// interior hyphen position in turn and yielding the resulting candidate
// (spec.md §4.6 step 4: "an optional internal hyphen may be removed when
// acceptExtraHyphens"). Only interior hyphens are tried — a leading or
// trailing '-' is not the dictionary's compound-boundary hyphen.
func removeOptionalHyphen(word string) []string {
	r := []rune(word)
	var out []string
	for i := 1; i < len(r)-1; i++ {
		if r[i] != '-' {
			continue
		}
		candidate := make([]rune, 0, len(r)-1)
		candidate = append(candidate, r[:i]...)
		candidate = append(candidate, r[i+1:]...)
		out = append(out, string(candidate))
	}
	return out
}

// insertMissingHyphen tries inserting a '-' at each interior position,
// for acceptMissingHyphens (the dictionary form requires a hyphen the
// surface omits).
func insertMissingHyphen(word string) []string {
	r := []rune(word)
	var out []string
	for i := 1; i < len(r); i++ {
		candidate := make([]rune, 0, len(r)+1)
		candidate = append(candidate, r[:i]...)
		candidate = append(candidate, '-')
		candidate = append(candidate, r[i:]...)
		out = append(out, string(candidate))
	}
	return out
}

// stripTrailingDot removes one trailing '.' from word, reporting whether it
// was present (spec.md §4.6 step 2: ignoreDot retries the stripped form).
func stripTrailingDot(word string) (string, bool) {
	if !strings.HasSuffix(word, ".") {
		return word, false
	}
	return strings.TrimSuffix(word, "."), true
}

// looksLikeNonword reports whether word matches one of the non-word token
// shapes the speller passes through unconditionally when ignoreNonwords is
// set (spec.md §4.6 step 2): a URL/email-shaped token.
func looksLikeNonword(word string) bool {
	if strings.Contains(word, "://") {
		return true
	}
	if strings.HasPrefix(word, "www.") {
		return true
	}
	at := strings.IndexByte(word, '@')
	if at > 0 && at < len(word)-1 && strings.Contains(word[at+1:], ".") {
		return true
	}
	return false
}

// containsDigit reports whether word contains an ASCII or Unicode digit.
func containsDigit(word string) bool {
	for _, r := range word {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
