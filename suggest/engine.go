package suggest

import (
	"sort"
	"strings"
	"unicode"

	"github.com/voikkofi/vfst"
	"github.com/voikkofi/vfst/casing"
	"github.com/voikkofi/vfst/morph"
	"github.com/voikkofi/vfst/spell"
)

// Options controls the suggestion engine (spec.md §6/§4.7).
type Options struct {
	// MaxSuggestions ceilings the number of returned suggestions.
	// Default: 5
	MaxSuggestions int
	// OCRSuggestions switches the strategy from Typing to OCR (higher cost
	// budget, adds the multi-replacement generator).
	// Default: false
	OCRSuggestions bool
}

// DefaultOptions returns the suggestion-engine defaults from spec.md §6.
func DefaultOptions() Options {
	return Options{MaxSuggestions: 5}
}

// Engine drives the thirteen candidate generators over a speller and
// analyzer, optionally composed with a weighted error-model transducer
// (generator 13).
type Engine struct {
	speller    *spell.Speller
	analyzer   *morph.Analyzer
	errorModel *vfst.Transducer
	opts       Options
}

// New creates an Engine. errorModel may be nil, in which case generator 13
// is skipped.
func New(speller *spell.Speller, analyzer *morph.Analyzer, errorModel *vfst.Transducer, opts Options) *Engine {
	return &Engine{speller: speller, analyzer: analyzer, errorModel: errorModel, opts: opts}
}

// SetOptions replaces the engine's options. Per spec.md §5, option setters
// are expected to run only between queries.
func (e *Engine) SetOptions(opts Options) { e.opts = opts }

type candidate struct {
	word     string
	priority int
}

// Suggest implements spec.md §4.7's full pipeline. The empty string returns
// an empty (never nil) slice (Open Question 3, see DESIGN.md).
func (e *Engine) Suggest(word string) []string {
	if word == "" {
		return []string{}
	}

	strategy := Typing
	if e.opts.OCRSuggestions {
		strategy = OCR
	}
	maxSug := e.opts.MaxSuggestions
	if maxSug <= 0 {
		maxSug = 5
	}
	st := newStatus(strategy, maxSug)
	seen := map[string]bool{word: true} // the input itself is never its own suggestion
	var candidates []candidate

	structure := e.bestStructure(word)

	primary := func() {
		e.tryAll(st, seen, &candidates, genCaseChange(word, structure))
		e.tryAll(st, seen, &candidates, genSoftHyphenStrip(word))
	}
	secondary := func() {
		e.tryAll(st, seen, &candidates, genVowelHarmony(word))
		e.tryAll(st, seen, &candidates, genCharReplacement(word))
		e.tryAll(st, seen, &candidates, genReplaceTwo(word))
		e.tryAll(st, seen, &candidates, genDeletion(word))
		e.tryAll(st, seen, &candidates, genDeleteTwo(word))
		e.tryAll(st, seen, &candidates, genInsertion(word))
		e.tryAll(st, seen, &candidates, genInsertSpecial(word))
		e.trySplits(st, seen, &candidates, word)
		e.tryAll(st, seen, &candidates, genSwap(word))
		if strategy == OCR {
			e.tryAll(st, seen, &candidates, genMultiReplacement(word))
		}
		e.tryErrorModel(st, seen, &candidates, word)
	}

	primary()
	if len(candidates) == 0 {
		secondary()
	}

	return e.finalize(word, candidates, maxSug)
}

// bestStructure returns the STRUCTURE of word's best (first) analysis, or
// "" if the analyzer returns nothing — used by generator 1's STRUCTURE
// rewrite.
func (e *Engine) bestStructure(word string) string {
	analyses := e.analyzer.Analyze(strings.ToLower(word))
	if len(analyses) == 0 {
		return ""
	}
	return analyses[0][morph.KeyStructure]
}

func (e *Engine) tryAll(st *status, seen map[string]bool, out *[]candidate, words []string) {
	for _, w := range words {
		if st.done() {
			return
		}
		e.try(st, seen, out, w)
	}
}

// trySplits implements generator 10's "both halves must spell" requirement:
// each half is validated independently, and only when both spell is the
// joined (space-separated) form recorded as a candidate.
func (e *Engine) trySplits(st *status, seen map[string]bool, out *[]candidate, word string) {
	for _, halves := range genSplitWord(word) {
		if st.done() {
			return
		}
		left, right := halves[0], halves[1]
		joined := left + " " + right
		if seen[joined] {
			continue
		}
		seen[joined] = true
		st.spend()
		if !e.speller.Spell(left) || !e.speller.Spell(right) {
			continue
		}
		leftResult := e.speller.Result(left)
		rightResult := e.speller.Result(right)
		worst := leftResult
		if rightResult > worst {
			worst = rightResult
		}
		leftAnalyses := e.analyzer.Analyze(strings.ToLower(left))
		rightAnalyses := e.analyzer.Analyze(strings.ToLower(right))
		p := priority(leftAnalyses, "", worst) + priority(rightAnalyses, "", worst)
		p *= st.suggestionCount + 5
		*out = append(*out, candidate{word: joined, priority: p})
		st.recordCandidate()
	}
}

func (e *Engine) try(st *status, seen map[string]bool, out *[]candidate, word string) {
	if seen[word] {
		return
	}
	seen[word] = true
	st.spend()
	if !e.speller.Spell(word) {
		return
	}
	r := e.speller.Result(word)
	analyses := e.analyzer.Analyze(strings.ToLower(word))
	structure := ""
	if len(analyses) > 0 {
		structure = analyses[0][morph.KeyStructure]
	}
	// spec.md §4.7: priority is multiplied by (suggestionCount + 5) at
	// emission time, biasing candidates found by earlier generators (when
	// suggestionCount is still low) ahead of later ones at equal base score.
	p := priority(analyses, structure, r) * (st.suggestionCount + 5)
	*out = append(*out, candidate{word: word, priority: p})
	st.recordCandidate()
}

// errorModelBudget bounds generator 13's weighted-transducer enumeration,
// since unlike the other generators it can in principle produce unbounded
// candidates from one traversal.
const errorModelBudget = 50

// tryErrorModel implements generator 13: drive the weighted error-model
// transducer and validate each weight-ranked output via the speller.
func (e *Engine) tryErrorModel(st *status, seen map[string]bool, out *[]candidate, word string) {
	if e.errorModel == nil {
		return
	}
	cfg := vfst.NewWeightedConfig(e.errorModel)
	if !cfg.Prepare(strings.ToLower(word)) {
		return
	}
	for i := 0; i < errorModelBudget; i++ {
		if st.done() {
			return
		}
		candidateWord, _, ok := cfg.NextWeighted()
		if !ok {
			return
		}
		e.try(st, seen, out, candidateWord)
	}
}

// finalize implements spec.md §4.7's final step: stable-sort by priority
// (with the (suggestionCount+5) emission bias folded in), truncate to
// maxSuggestions, and apply the original word's case class to each result.
func (e *Engine) finalize(original string, candidates []candidate, maxSug int) []string {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority < candidates[j].priority
	})
	if len(candidates) > maxSug {
		candidates = candidates[:maxSug]
	}

	caseType := casing.ClassifyCase([]rune(original))
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = adjustCase(c.word, caseType)
	}
	return out
}

// adjustCase re-cases a candidate suggestion to match the original input's
// case class (spec.md §4.7: "apply case adjustment per the original word's
// case class").
func adjustCase(word string, caseType casing.CaseType) string {
	switch caseType {
	case casing.AllUpper:
		return strings.ToUpper(word)
	case casing.FirstUpper:
		r := []rune(word)
		if len(r) == 0 {
			return word
		}
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	default:
		return word
	}
}
