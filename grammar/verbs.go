package grammar

import (
	"strings"

	"github.com/voikkofi/vfst/morph"
	"github.com/voikkofi/vfst/token"
)

// wordFlags annotates one Word token with the grammatical flags spec.md
// §4.9 names ("isMainVerb, isConjunction, requiresFollowingInfinitive,
// ...").
type wordFlags struct {
	tok                      token.Token
	isMainVerb               bool
	isNegativeVerb           bool
	isConjunction            bool
	requiresAInfinitive      bool
	requiresMAInfinitive     bool
}

// negativeVerbForms is the Finnish negative-verb paradigm ("en", "et", "ei",
// "emme", "ette", "eivät") — any main-verb clause governed by one of these
// requires the following verb in its connegative (bare stem) form, not a
// normal personal form (error code 13 on mismatch).
var negativeVerbForms = map[string]bool{
	"ei": true, "en": true, "et": true, "emme": true, "ette": true, "eivät": true,
}

// infinitiveGovernors maps a governing verb to the infinitive its
// complement must take (error codes 14/15). This is a small, fixed lexicon
// of the common Finnish governing verbs, not a general valency dictionary.
var infinitiveGovernors = map[string]string{
	"aikoa": "A", "haluta": "A", "voida": "A", "osata": "A", "joutua": "MA",
	"ehtiä": "MA", "ruveta": "MA",
}

func classifyWord(analyzer *morph.Analyzer, tok token.Token) wordFlags {
	f := wordFlags{tok: tok}
	lower := strings.ToLower(tok.Text)
	if negativeVerbForms[lower] {
		f.isNegativeVerb = true
	}
	for _, a := range analyzer.Analyze(lower) {
		if a[morph.KeyClass] == "teonsana" {
			f.isMainVerb = true
		}
	}
	if infType, ok := infinitiveGovernors[lower]; ok {
		if infType == "A" {
			f.requiresAInfinitive = true
		} else {
			f.requiresMAInfinitive = true
		}
	}
	f.isConjunction = conjunctionWords[lower]
	return f
}

// conjunctionWords is the closed class of Finnish coordinating
// conjunctions used by both the invalid-sentence-starter check (code 5)
// and the sentence-final-conjunction check (code 16).
var conjunctionWords = map[string]bool{
	"ja": true, "mutta": true, "sekä": true, "tai": true, "vaan": true, "eli": true,
}

// hasAInfinitiveEnding/hasMAInfinitiveEnding are surface heuristics for the
// A- and MA-infinitive endings, used in the absence of a real valency
// dictionary (see DESIGN.md).
func hasAInfinitiveEnding(word string) bool {
	w := strings.ToLower(word)
	return strings.HasSuffix(w, "a") || strings.HasSuffix(w, "ä") ||
		strings.HasSuffix(w, "da") || strings.HasSuffix(w, "dä") ||
		strings.HasSuffix(w, "ta") || strings.HasSuffix(w, "tä")
}

func hasMAInfinitiveEnding(word string) bool {
	w := strings.ToLower(word)
	return strings.HasSuffix(w, "maan") || strings.HasSuffix(w, "mään") ||
		strings.HasSuffix(w, "massa") || strings.HasSuffix(w, "mässä")
}

// sentenceWordSpans splits a token stream into per-sentence Word-only
// slices, using the same terminator punctuation the sentence splitter uses
// (token/sentence.go), so the verb checks operate one clause at a time.
func sentenceWordSpans(tokens []token.Token) [][]token.Token {
	var spans [][]token.Token
	var cur []token.Token
	for _, t := range tokens {
		switch t.Type {
		case token.Word:
			cur = append(cur, t)
		case token.Punctuation:
			if isSentenceTerminatorText(t.Text) {
				if len(cur) > 0 {
					spans = append(spans, cur)
				}
				cur = nil
			}
		}
	}
	if len(cur) > 0 {
		spans = append(spans, cur)
	}
	return spans
}

// checkVerbs implements codes 13-18 per sentence.
func (c *Checker) checkVerbs(tokens []token.Token) []Error {
	var out []Error
	for _, span := range sentenceWordSpans(tokens) {
		flags := make([]wordFlags, len(span))
		mainVerbCount := 0
		for i, t := range span {
			flags[i] = classifyWord(c.analyzer, t)
			if flags[i].isMainVerb {
				mainVerbCount++
			}
		}

		if mainVerbCount == 0 && !c.opts.AcceptTitlesInGc && len(span) > 1 {
			out = append(out, Error{
				Code: MissingMainVerb, StartPos: span[0].Position,
				ErrorLen:         sumLen(span),
				ShortDescription: MissingMainVerb.Description(),
			})
		}
		if mainVerbCount > 1 {
			out = append(out, Error{
				Code: ExtraMainVerb, StartPos: span[0].Position,
				ErrorLen:         sumLen(span),
				ShortDescription: ExtraMainVerb.Description(),
			})
		}

		for i, f := range flags {
			if f.isNegativeVerb && i+1 < len(flags) {
				next := flags[i+1]
				if next.isMainVerb && !isConnegativeForm(next.tok.Text) {
					out = append(out, Error{
						Code: NegativeVerbMismatch, StartPos: next.tok.Position, ErrorLen: len([]rune(next.tok.Text)),
						ShortDescription: NegativeVerbMismatch.Description(),
					})
				}
			}
			if (f.requiresAInfinitive || f.requiresMAInfinitive) && i+1 < len(flags) {
				next := flags[i+1].tok
				switch {
				case f.requiresAInfinitive && !hasAInfinitiveEnding(next.Text):
					out = append(out, Error{
						Code: AInfinitiveRequired, StartPos: next.Position, ErrorLen: len([]rune(next.Text)),
						ShortDescription: AInfinitiveRequired.Description(),
					})
				case f.requiresMAInfinitive && !hasMAInfinitiveEnding(next.Text):
					out = append(out, Error{
						Code: MAInfinitiveRequired, StartPos: next.Position, ErrorLen: len([]rune(next.Text)),
						ShortDescription: MAInfinitiveRequired.Description(),
					})
				}
			}
		}

		if n := len(span); n > 0 && flags[n-1].isConjunction {
			last := span[n-1]
			out = append(out, Error{
				Code: MisplacedConjunction, StartPos: last.Position, ErrorLen: len([]rune(last.Text)),
				ShortDescription: MisplacedConjunction.Description(),
			})
		}
	}
	return out
}

// isConnegativeForm is a surface heuristic: Finnish connegative verb forms
// are the bare present stem, typically shorter than the corresponding
// affirmative personal form and never ending in the "-vat"/"-vät" 3rd
// person plural or "-n" 1st person singular markers.
func isConnegativeForm(word string) bool {
	w := strings.ToLower(word)
	return !strings.HasSuffix(w, "vat") && !strings.HasSuffix(w, "vät") && !strings.HasSuffix(w, "n")
}

func sumLen(span []token.Token) int {
	if len(span) == 0 {
		return 0
	}
	last := span[len(span)-1]
	return last.Position + len([]rune(last.Text)) - span[0].Position
}
