package grammar

import (
	"github.com/coregx/ahocorasick"

	"github.com/voikkofi/vfst"
	"github.com/voikkofi/vfst/morph"
	"github.com/voikkofi/vfst/spell"
	"github.com/voikkofi/vfst/suggest"
	"github.com/voikkofi/vfst/token"
)

// Options controls the grammar pipeline (spec.md §6).
type Options struct {
	// AcceptTitlesInGc accepts title-style incomplete sentences (no main
	// verb required). Default: false
	AcceptTitlesInGc bool
	// AcceptUnfinishedParagraphsInGc accepts paragraphs without terminal
	// punctuation. Default: false
	AcceptUnfinishedParagraphsInGc bool
	// AcceptBulletedListsInGc is stored with the other options, but no
	// grammar check reads it, so it has no effect on the errors reported.
	// Default: false
	AcceptBulletedListsInGc bool
}

// repeatExceptionWords is the short Finnish exception list for the
// repeating-word check (spec.md §4.9): words that are legitimately doubled
// for emphasis or are themselves reduplicated compounds.
var repeatExceptionWords = []string{"ihan", "aivan", "hyvin", "kovin", "jo", "vain"}

// Checker runs the grammar pipeline over text: tokenize, analyze, annotate,
// check, cache (spec.md §4.9).
type Checker struct {
	analyzer         *morph.Analyzer
	speller          *spell.Speller
	suggester        *suggest.Engine
	autocorrect      *vfst.Transducer
	autocorrectCfg   *vfst.Config
	cache            *GcCache
	opts             Options
	repeatExceptions *ahocorasick.Automaton
	conjunctions     map[string]bool
}

// New creates a Checker. suggester and autocorrect may be nil (suggestions
// are then omitted from InvalidSpelling errors, and the autocorrect
// rewrite pass, §4.9, is skipped).
func New(analyzer *morph.Analyzer, speller *spell.Speller, suggester *suggest.Engine, autocorrect *vfst.Transducer, opts Options) *Checker {
	b := ahocorasick.NewBuilder()
	for _, w := range repeatExceptionWords {
		b.AddPattern([]byte(w))
	}
	auto, _ := b.Build()
	c := &Checker{
		analyzer: analyzer, speller: speller, suggester: suggester,
		autocorrect: autocorrect, cache: NewGcCache(), opts: opts,
		repeatExceptions: auto, conjunctions: conjunctionWords,
	}
	if autocorrect != nil {
		c.autocorrectCfg = vfst.NewConfig(autocorrect)
	}
	return c
}

// SetOptions replaces the checker's options.
func (c *Checker) SetOptions(opts Options) { c.opts = opts }

// Check runs the full grammar pipeline over one paragraph of text,
// consulting and populating the paragraph cache (spec.md §4.9).
func (c *Checker) Check(text string) []Error {
	if cached, ok := c.cache.Get(text); ok {
		return cached
	}

	tokens := token.Tokenize(text)
	var errs []Error
	errs = append(errs, c.checkSpelling(tokens)...)
	errs = append(errs, c.checkWhitespaceAndPunctuation(tokens)...)
	errs = append(errs, c.checkRepeatingWords(tokens)...)
	errs = append(errs, c.checkCapitalization(tokens)...)
	errs = append(errs, c.checkVerbs(tokens)...)
	sortErrors(errs)

	c.cache.Put(text, errs)
	return errs
}

func sortErrors(errs []Error) {
	for i := 1; i < len(errs); i++ {
		for j := i; j > 0 && errs[j].StartPos < errs[j-1].StartPos; j-- {
			errs[j], errs[j-1] = errs[j-1], errs[j]
		}
	}
}
