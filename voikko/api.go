package voikko

import (
	"github.com/voikkofi/vfst/grammar"
	"github.com/voikkofi/vfst/morph"
	"github.com/voikkofi/vfst/token"
)

// Spell implements the spell(word) → bool call (spec.md §6).
func (h *Handle) Spell(word string) bool {
	return h.speller.Spell(word)
}

// Suggest implements the suggest(word) → []string call (spec.md §6).
// The returned slice is never nil.
func (h *Handle) Suggest(word string) []string {
	return h.suggester.Suggest(word)
}

// Analyze implements the analyze(word) → []map[string]string call
// (spec.md §6). The returned slice is never nil.
func (h *Handle) Analyze(word string) []map[string]string {
	analyses := h.analyzer.Analyze(word)
	out := make([]map[string]string, 0, len(analyses))
	for _, a := range analyses {
		m := make(map[string]string, len(a))
		for k, v := range a {
			m[k] = v
		}
		out = append(out, m)
	}
	return out
}

// Hyphenate implements the hyphenate(word) → pattern string call
// (spec.md §6). The result has length equal to the input's rune length.
func (h *Handle) Hyphenate(word string) string {
	return h.hyphenator.Hyphenate(word)
}

// HyphenateRendered implements the hyphenate-rendered(word, sep) → string
// call (spec.md §6).
func (h *Handle) HyphenateRendered(word, sep string, allowContextChanges bool) string {
	return h.hyphenator.HyphenateRendered(word, sep, allowContextChanges)
}

// GrammarError mirrors grammar.Error in the handle's public surface
// (spec.md §6's "(errorCode, startPos, errorLen, suggestions,
// shortDescription)" record shape).
type GrammarError = grammar.Error

// GrammarErrors implements the grammarErrors(paragraph) → []GrammarError
// call (spec.md §6). Results are served from and populated into the
// handle's paragraph cache.
func (h *Handle) GrammarErrors(paragraph string) []GrammarError {
	return h.checker.Check(paragraph)
}

// Token mirrors token.Token in the handle's public surface (spec.md §6's
// "(type, text, position)" tuple shape).
type Token = token.Token

// TokenType mirrors token.Type, with the four constants tokens(text) can
// produce.
type TokenType = token.Type

const (
	TokenWord        = token.Word
	TokenPunctuation = token.Punctuation
	TokenWhitespace  = token.Whitespace
	TokenUnknown     = token.Unknown
)

// Tokens implements the tokens(text) → []Token call (spec.md §6).
func (h *Handle) Tokens(text string) []Token {
	return token.Tokenize(text)
}

// Sentence mirrors token.Sentence in the handle's public surface (spec.md
// §6's "(type, length)" tuple shape).
type Sentence = token.Sentence

// Sentences implements the sentences(text) → []Sentence call (spec.md §6),
// using the handle's speller as the abbreviation prober (token/sentence.go).
func (h *Handle) Sentences(text string) []Sentence {
	return token.SplitSentences(token.Tokenize(text), h.speller)
}

// Analysis key constants, re-exported for callers that want typed access
// instead of raw map keys (spec.md §3).
const (
	KeyBaseform      = morph.KeyBaseform
	KeyClass         = morph.KeyClass
	KeyStructure     = morph.KeyStructure
	KeySijamuoto     = morph.KeySijamuoto
	KeyNumber        = morph.KeyNumber
	KeyPerson        = morph.KeyPerson
	KeyMood          = morph.KeyMood
	KeyTense         = morph.KeyTense
	KeyComparison    = morph.KeyComparison
	KeyNegative      = morph.KeyNegative
	KeyParticiple    = morph.KeyParticiple
	KeyPossessive    = morph.KeyPossessive
	KeyFocus         = morph.KeyFocus
	KeyKysymysliite  = morph.KeyKysymysliite
)
