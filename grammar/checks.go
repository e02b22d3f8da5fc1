package grammar

import (
	"strings"
	"unicode"

	"github.com/voikkofi/vfst/morph"
	"github.com/voikkofi/vfst/token"
)

// checkSpelling implements error code 1: every Word token that fails to
// spell is reported. The autocorrect transducer's rewrites (spec.md §4.9),
// when present, are listed ahead of the general suggester's edit-distance
// candidates, since a rewrite accepted by a dedicated autocorrect
// transducer is a more authoritative correction than a generic edit.
func (c *Checker) checkSpelling(tokens []token.Token) []Error {
	var out []Error
	for _, t := range tokens {
		if t.Type != token.Word {
			continue
		}
		if c.speller.Spell(t.Text) {
			continue
		}
		suggestions := c.autocorrectRewrites(t.Text)
		if c.suggester != nil {
			suggestions = append(suggestions, c.suggester.Suggest(t.Text)...)
		}
		out = append(out, Error{
			Code: InvalidSpelling, StartPos: t.Position, ErrorLen: len([]rune(t.Text)),
			Suggestions: suggestions, ShortDescription: InvalidSpelling.Description(),
		})
	}
	return out
}

// autocorrectRewrites drives the autocorrect transducer (an unweighted
// acceptor over surface forms, spec.md §4.9) over word and returns every
// accepted output that differs from word itself. Returns nil when no
// autocorrect transducer was loaded.
func (c *Checker) autocorrectRewrites(word string) []string {
	if c.autocorrectCfg == nil {
		return nil
	}
	c.autocorrectCfg.Prepare(strings.ToLower(word))
	var out []string
	seen := map[string]bool{strings.ToLower(word): true}
	for {
		rewrite, ok := c.autocorrectCfg.Next()
		if !ok {
			break
		}
		if seen[rewrite] {
			continue
		}
		seen[rewrite] = true
		out = append(out, rewrite)
	}
	return out
}

// checkWhitespaceAndPunctuation implements codes 2, 3, 4, and 9.
func (c *Checker) checkWhitespaceAndPunctuation(tokens []token.Token) []Error {
	var out []Error
	for i, t := range tokens {
		switch t.Type {
		case token.Whitespace:
			if !strings.ContainsAny(t.Text, "\n\r") && len([]rune(t.Text)) > 1 {
				out = append(out, Error{
					Code: ExtraWhitespace, StartPos: t.Position, ErrorLen: len([]rune(t.Text)),
					ShortDescription: ExtraWhitespace.Description(),
				})
			}
			if i+1 < len(tokens) && tokens[i+1].Type == token.Punctuation && requiresNoPrecedingSpace(tokens[i+1].Text) && i > 0 {
				out = append(out, Error{
					Code: SpaceBeforePunctuation, StartPos: t.Position, ErrorLen: len([]rune(t.Text)),
					ShortDescription: SpaceBeforePunctuation.Description(),
				})
			}
		case token.Punctuation:
			if t.Text == "," && i+1 < len(tokens) && tokens[i+1].Type == token.Punctuation && tokens[i+1].Text == "," {
				out = append(out, Error{
					Code: ExtraComma, StartPos: t.Position, ErrorLen: 1,
					ShortDescription: ExtraComma.Description(),
				})
			}
		}
	}
	if !c.opts.AcceptUnfinishedParagraphsInGc {
		if last := lastNonWhitespace(tokens); last != nil && last.Type != token.Punctuation {
			out = append(out, Error{
				Code: TerminatingPunctuationMissing, StartPos: last.Position, ErrorLen: len([]rune(last.Text)),
				ShortDescription: TerminatingPunctuationMissing.Description(),
			})
		} else if last != nil && last.Type == token.Punctuation && !isSentenceTerminatorText(last.Text) {
			out = append(out, Error{
				Code: TerminatingPunctuationMissing, StartPos: last.Position, ErrorLen: len([]rune(last.Text)),
				ShortDescription: TerminatingPunctuationMissing.Description(),
			})
		}
	}
	return out
}

func requiresNoPrecedingSpace(text string) bool {
	switch text {
	case ",", ".", "!", "?", ":", ";", ")", "]", "}":
		return true
	default:
		return false
	}
}

func isSentenceTerminatorText(text string) bool {
	switch text {
	case ".", "!", "?", "...":
		return true
	default:
		return false
	}
}

func lastNonWhitespace(tokens []token.Token) *token.Token {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].Type != token.Whitespace {
			return &tokens[i]
		}
	}
	return nil
}

// checkRepeatingWords implements error code 8: the same word immediately
// repeated (across one whitespace run), unless it appears in the Finnish
// exception list (emphasis repetitions like "ihan ihan").
func (c *Checker) checkRepeatingWords(tokens []token.Token) []Error {
	var out []Error
	var prevWord *token.Token
	for i := range tokens {
		t := &tokens[i]
		if t.Type == token.Whitespace {
			continue
		}
		if t.Type != token.Word {
			prevWord = nil
			continue
		}
		if prevWord != nil && strings.EqualFold(prevWord.Text, t.Text) && !c.isRepeatException(t.Text) {
			out = append(out, Error{
				Code: RepeatingWord, StartPos: t.Position, ErrorLen: len([]rune(t.Text)),
				ShortDescription: RepeatingWord.Description(),
			})
		}
		prevWord = t
	}
	return out
}

// isRepeatException reports whether word is in the repeating-word
// exception list, via the automaton built once at Checker construction
// (checker.go, spec.md [ADD] §4.7a). The automaton matches substrings, so
// a hit is confirmed against the list itself.
func (c *Checker) isRepeatException(word string) bool {
	if c.repeatExceptions == nil {
		return false
	}
	w := strings.ToLower(word)
	if !c.repeatExceptions.IsMatch([]byte(w)) {
		return false
	}
	for _, e := range repeatExceptionWords {
		if e == w {
			return true
		}
	}
	return false
}

// checkCapitalization implements codes 5, 6, 7, 10, 11, 12 via a small FSA
// over sentence-start/mid-sentence state plus an open-bracket/quote stack.
type capState int

const (
	capSentenceStart capState = iota
	capMidSentence
	capAfterOpenQuote
	capAfterOpenParen
	capAfterTerminator
)

func (c *Checker) checkCapitalization(tokens []token.Token) []Error {
	var out []Error
	state := capSentenceStart
	var stack []rune

	for i := range tokens {
		t := tokens[i]
		switch t.Type {
		case token.Whitespace:
			continue
		case token.Word:
			r := []rune(t.Text)
			upper := len(r) > 0 && unicode.IsUpper(r[0])
			switch state {
			case capSentenceStart, capAfterOpenQuote, capAfterOpenParen, capAfterTerminator:
				if !upper {
					out = append(out, Error{
						Code: FirstLetterShouldBeUppercase, StartPos: t.Position, ErrorLen: len(r),
						ShortDescription: FirstLetterShouldBeUppercase.Description(),
					})
				}
				if state == capSentenceStart && !c.isValidSentenceStarter(t.Text) {
					out = append(out, Error{
						Code: InvalidSentenceStarter, StartPos: t.Position, ErrorLen: len(r),
						ShortDescription: InvalidSentenceStarter.Description(),
					})
				}
			case capMidSentence:
				if upper && !c.isProperNounCapable(t.Text) {
					out = append(out, Error{
						Code: FirstLetterShouldBeLowercase, StartPos: t.Position, ErrorLen: len(r),
						ShortDescription: FirstLetterShouldBeLowercase.Description(),
					})
				}
			}
			state = capMidSentence
		case token.Punctuation:
			switch t.Text {
			case `"`, "“", "”":
				if len(stack) > 0 && stack[len(stack)-1] == '"' {
					stack = stack[:len(stack)-1]
					out = append(out, c.checkQuotationEndPunctuation(tokens, i)...)
				} else {
					stack = append(stack, '"')
					state = capAfterOpenQuote
					continue
				}
			case "«", "»", "‘", "’":
				out = append(out, Error{
					Code: ForeignQuotationMark, StartPos: t.Position, ErrorLen: 1,
					ShortDescription: ForeignQuotationMark.Description(),
				})
			case "(":
				stack = append(stack, '(')
				state = capAfterOpenParen
				continue
			case ")":
				if len(stack) == 0 || stack[len(stack)-1] != '(' {
					out = append(out, Error{
						Code: MisplacedClosingParenthesis, StartPos: t.Position, ErrorLen: 1,
						ShortDescription: MisplacedClosingParenthesis.Description(),
					})
				} else {
					stack = stack[:len(stack)-1]
				}
			case ".", "!", "?", "...":
				state = capAfterTerminator
				continue
			}
			if isSentenceTerminatorText(t.Text) {
				state = capAfterTerminator
			}
		}
	}
	return out
}

// isValidSentenceStarter reports whether word may begin a sentence. Plain
// coordinating conjunctions ("ja", "mutta", "sekä", ...) are the
// paradigmatic invalid starter (spec.md error code 5).
func (c *Checker) isValidSentenceStarter(word string) bool {
	return !c.conjunctions[strings.ToLower(word)]
}

// checkQuotationEndPunctuation implements error code 10: a sentence
// terminator immediately following a closing quotation mark is invalid
// when the quoted material already ends with one of its own — the
// terminator belongs inside the quote, not duplicated right after it
// (e.g. `"Terve!".` should be `"Terve!"` or `"Terve".`, never both).
func (c *Checker) checkQuotationEndPunctuation(tokens []token.Token, closeIdx int) []Error {
	if closeIdx <= 0 || closeIdx+1 >= len(tokens) {
		return nil
	}
	inside := tokens[closeIdx-1]
	after := tokens[closeIdx+1]
	if inside.Type != token.Punctuation || !isSentenceTerminatorText(inside.Text) {
		return nil
	}
	if after.Type != token.Punctuation || !isSentenceTerminatorText(after.Text) {
		return nil
	}
	return []Error{{
		Code: InvalidQuotationEndPunctuation, StartPos: after.Position, ErrorLen: len([]rune(after.Text)),
		ShortDescription: InvalidQuotationEndPunctuation.Description(),
	}}
}

func (c *Checker) isProperNounCapable(word string) bool {
	for _, a := range c.analyzer.Analyze(strings.ToLower(word)) {
		if a[morph.KeyStructure] != "" && strings.ContainsAny(a[morph.KeyStructure], "ij") {
			return true
		}
	}
	return false
}
