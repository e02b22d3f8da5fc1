package morph

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/voikkofi/vfst/tags"
)

// buildBaseform derives BASEFORM (spec.md §4.5 step 7): [Xp] and [Xj] spans
// contribute their enclosed text verbatim (it is already the dictionary
// form); untagged literal spans have their case restored from STRUCTURE;
// digit runs are normalized by normalizeNumeral; [Xr] spans do not
// contribute to BASEFORM (Open Question 1 — they overlay STRUCTURE only,
// see DESIGN.md and buildStructure).
func buildBaseform(toks []tags.Token, structure string) string {
	var b strings.Builder
	sr := []rune(structure)
	si := 0

	for _, t := range toks {
		switch t.Kind {
		case tags.Override:
			switch t.Sub {
			case "p", "j":
				b.WriteString(t.Text)
			case "r":
				// Contributes only to STRUCTURE; skip here but still
				// advance the STRUCTURE cursor past its letters.
				for _, r := range t.Text {
					if unicode.IsLetter(r) {
						si++
					}
				}
			}
		case tags.Literal:
			restored, consumed := restoreLiteralCase(t.Text, sr, si)
			b.WriteString(normalizeNumeral(restored))
			si += consumed
		case tags.Tag:
			if t.IsHyphenBoundary() || t.IsBoundary() {
				if t.IsHyphenBoundary() {
					b.WriteByte('-')
				} else {
					b.WriteByte('=')
				}
			}
		}
	}
	return b.String()
}

// restoreLiteralCase rewrites text's letters per the STRUCTURE codes
// starting at cursor si, returning the rewritten text and how many letter
// positions it consumed.
func restoreLiteralCase(text string, sr []rune, si int) (string, int) {
	out := []rune(text)
	consumed := 0
	for i, r := range out {
		if !unicode.IsLetter(r) {
			continue
		}
		for si+consumed < len(sr) && isBoundaryRune(sr[si+consumed]) {
			consumed++
		}
		if si+consumed >= len(sr) {
			break
		}
		switch sr[si+consumed] {
		case 'i', 'j':
			out[i] = unicode.ToUpper(r)
		case 'p', 'q':
			out[i] = unicode.ToLower(r)
		}
		consumed++
	}
	return string(out), consumed
}

func isBoundaryRune(r rune) bool {
	return r == '=' || r == '-' || r == ':'
}

// normalizeNumeral rewrites a run of ASCII digits to its canonical decimal
// form (stripping leading zeros, per spec.md §4.5 step 7's "handle numerals
// via a dedicated subroutine"), leaving any non-all-digit text unchanged.
func normalizeNumeral(s string) string {
	if s == "" || !isAllDigits(s) {
		return s
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	return strconv.Itoa(n)
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// normalizeCompoundGenitive trims the inner genitive marker from a compound
// place-name BASEFORM: every non-final '='-separated part that ends in "n"
// loses that one final "n" (spec.md §4.5 step 7). Stem changes are not
// undone, so "Helsingin=katu" becomes "Helsingi=katu", not a nominative
// "Helsinki=katu". Only applies when the whole analysis's SIJAMUOTO is not itself
// "omanto" — an analysis that is genuinely genitive throughout keeps its
// "n" endings as-is.
func normalizeCompoundGenitive(baseform string, attrs Analysis) string {
	if !strings.Contains(baseform, "=") {
		return baseform
	}
	if attrs[KeySijamuoto] == "omanto" {
		return baseform
	}
	parts := strings.Split(baseform, "=")
	for i := 0; i < len(parts)-1; i++ {
		if strings.HasSuffix(parts[i], "n") && len(parts[i]) > 1 {
			parts[i] = strings.TrimSuffix(parts[i], "n")
		}
	}
	return strings.Join(parts, "=")
}
