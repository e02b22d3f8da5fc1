package token

import "unicode"

// SentenceType classifies one detected sentence (spec.md §6).
type SentenceType int

const (
	None SentenceType = iota
	NoStart
	Probable
	Possible
)

func (s SentenceType) String() string {
	switch s {
	case NoStart:
		return "NoStart"
	case Probable:
		return "Probable"
	case Possible:
		return "Possible"
	default:
		return "None"
	}
}

// Sentence is one detected span, reported as a type and a character length
// (spec.md §6: "sentences -> list of (type, length)").
type Sentence struct {
	Type   SentenceType
	Length int
}

// abbreviationProber decides whether a word immediately before a '.' is an
// abbreviation that needs the dot (so the period does not end a sentence).
// *spell.Speller satisfies this directly.
type abbreviationProber interface {
	Spell(word string) bool
}

// SplitSentences consumes tokens and reports sentence spans, using an
// abbreviation probe via the speller for ambiguous periods (spec.md §4.9).
// A trailing period is treated as an abbreviation marker, not a sentence
// end, when the preceding word spells correctly only with the dot attached.
func SplitSentences(tokens []Token, prober abbreviationProber) []Sentence {
	var out []Sentence
	start := -1
	length := 0
	sawUpperStart := false
	lastWord := ""

	flush := func(typ SentenceType) {
		if start < 0 {
			return
		}
		if length == 0 {
			out = append(out, Sentence{Type: None, Length: 0})
		} else {
			out = append(out, Sentence{Type: typ, Length: length})
		}
		start = -1
		length = 0
		sawUpperStart = false
		lastWord = ""
	}

	for i, t := range tokens {
		switch t.Type {
		case Whitespace:
			if start >= 0 {
				length += len([]rune(t.Text))
			}
			continue
		case Word:
			if start < 0 {
				start = i
				r := []rune(t.Text)
				sawUpperStart = len(r) > 0 && unicode.IsUpper(r[0])
			}
			length += len([]rune(t.Text))
			lastWord = t.Text
			continue
		}
		if start < 0 {
			start = i
		}
		length += len([]rune(t.Text))

		if t.Type == Punctuation && isSentenceTerminator(t.Text) {
			if t.Text == "." && isAbbreviation(lastWord, prober) {
				continue
			}
			if sawUpperStart {
				flush(Probable)
			} else {
				flush(NoStart)
			}
		}
	}
	if start >= 0 && length > 0 {
		flush(Possible)
	}
	return out
}

func isSentenceTerminator(text string) bool {
	switch text {
	case ".", "!", "?", "...":
		return true
	default:
		return false
	}
}

func isAbbreviation(word string, prober abbreviationProber) bool {
	if word == "" || prober == nil {
		return false
	}
	withDot := prober.Spell(word + ".")
	withoutDot := prober.Spell(word)
	return withDot && !withoutDot
}
