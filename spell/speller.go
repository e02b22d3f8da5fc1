package spell

import (
	"github.com/voikkofi/vfst/casing"
	"github.com/voikkofi/vfst/morph"
)

// Speller drives spec.md §4.6's spell pipeline over a Finnish morphological
// analyzer, with a fixed-size cache in front of the analyzer call.
type Speller struct {
	analyzer *morph.Analyzer
	opts     Options
	cache    *cache
}

// New creates a Speller over a.
func New(a *morph.Analyzer, opts Options) *Speller {
	return &Speller{analyzer: a, opts: opts, cache: newCache(opts.CacheOrder)}
}

// SetOptions replaces the speller's options. Per spec.md §5, option setters
// are expected to run only between queries; changing CacheOrder discards
// the existing cache.
func (s *Speller) SetOptions(opts Options) {
	if opts.CacheOrder != s.opts.CacheOrder {
		s.cache = newCache(opts.CacheOrder)
	}
	s.opts = opts
}

// Spell implements the public boolean spell(word) call (spec.md §4.6 step 6).
func (s *Speller) Spell(word string) bool {
	return s.toBool(s.result(word))
}

// Result runs the full internal pipeline and returns the raw four-valued
// SpellResult, for callers (the suggestion engine) that need more than a
// boolean.
func (s *Speller) Result(word string) Result {
	return s.result(word)
}

// toBool implements step 6's SpellResult → bool mapping per configuration.
func (s *Speller) toBool(r Result) bool {
	switch r {
	case Ok:
		return true
	case CapitalizeFirst:
		return s.opts.AcceptFirstUppercase
	case CapitalizationError:
		return false
	default:
		return false
	}
}

func (s *Speller) result(word string) Result {
	normalized := casing.Normalize(word)
	chars := []rune(normalized)
	caseType := casing.ClassifyCase(chars)

	if caseType == casing.AllUpper && s.opts.IgnoreUppercase {
		return Ok
	}
	if s.opts.IgnoreNumbers && containsDigit(normalized) {
		return Ok
	}
	if s.opts.IgnoreNonwords && looksLikeNonword(normalized) {
		return Ok
	}
	if s.opts.IgnoreDot {
		if stripped, had := stripTrailingDot(normalized); had {
			return s.result(stripped)
		}
	}

	if cached, ok := s.cache.lookup(normalized); ok {
		return s.applyCaseAcceptance(caseType, cached)
	}

	r := s.analyzeWithTweaks(normalized, chars)
	s.cache.store(normalized, r)
	r = s.applyCaseAcceptance(caseType, r)
	return s.applyFirstUppercaseAcceptance(caseType, normalized, r)
}

// applyFirstUppercaseAcceptance implements acceptFirstUppercase (spec.md
// §6: "first-letter capitalization accepted without case analysis"). This
// is distinct from the CapitalizeFirst STRUCTURE-match outcome (which fires
// when the dictionary form itself expects uppercase, e.g. a proper noun,
// and the surface is lowercase): here the surface has an extra capital on
// an otherwise-lowercase dictionary word (e.g. sentence-initial
// capitalization of a common noun), so the check is done by decapitalizing
// and re-spelling rather than by reading STRUCTURE's case codes directly.
func (s *Speller) applyFirstUppercaseAcceptance(caseType casing.CaseType, word string, r Result) Result {
	if !s.opts.AcceptFirstUppercase || caseType != casing.FirstUpper || r == Ok {
		return r
	}
	decap := decapitalizeFirst(word)
	if decap == word {
		return r
	}
	decapResult := s.analyzeWithTweaks(decap, []rune(decap))
	if decapResult == Ok {
		return min(r, CapitalizeFirst)
	}
	return r
}

// applyCaseAcceptance folds acceptAllUppercase into the raw STRUCTURE-match
// result: an all-uppercase spelling of a word whose lowercase form would
// otherwise only earn CapitalizationError is accepted when the dictionary
// analysis's case errors are entirely attributable to the all-caps
// rendering (i.e. the raw result is no worse than CapitalizationError and
// the surface itself is all-uppercase).
func (s *Speller) applyCaseAcceptance(caseType casing.CaseType, r Result) Result {
	if caseType == casing.AllUpper && s.opts.AcceptAllUppercase && r == CapitalizationError {
		return Ok
	}
	return r
}

// analyzeWithTweaks implements step 4-5: run the analyzer, and if it
// returns nothing, retry through the Finnish tweaks layer (soft hyphens,
// optional/missing hyphens) before giving up with Failed.
func (s *Speller) analyzeWithTweaks(word string, chars []rune) Result {
	if r, ok := s.matchAgainstAnalyses(word, chars); ok {
		return r
	}

	if stripped, had := stripSoftHyphens(word); had {
		strippedChars := []rune(stripped)
		if r, ok := s.matchAgainstAnalyses(stripped, strippedChars); ok {
			return r
		}
	}

	if s.opts.AcceptExtraHyphens {
		for _, candidate := range removeOptionalHyphen(word) {
			cChars := []rune(candidate)
			if r, ok := s.matchAgainstAnalyses(candidate, cChars); ok {
				return r
			}
		}
	}

	if s.opts.AcceptMissingHyphens {
		for _, candidate := range insertMissingHyphen(word) {
			cChars := []rune(candidate)
			if r, ok := s.matchAgainstAnalyses(candidate, cChars); ok {
				return r
			}
		}
	}

	return Failed
}

// matchAgainstAnalyses runs the analyzer on word and, if it returns any
// analyses, reduces them via STRUCTURE matching to the best (minimum)
// Result (spec.md §4.6 step 5, with early exit on Ok).
func (s *Speller) matchAgainstAnalyses(word string, chars []rune) (Result, bool) {
	analyses := s.analyzer.Analyze(word)
	if len(analyses) == 0 {
		return Failed, false
	}
	best := Failed
	for _, a := range analyses {
		r := matchStructure(chars, a[morph.KeyStructure])
		best = min(best, r)
		if best == Ok {
			break
		}
	}
	return best, true
}
