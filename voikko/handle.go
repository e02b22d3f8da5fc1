// Package voikko is the top-level facade over the Finnish FST/NLP engine
// (spec.md §2): it owns a dictionary's loaded transducers, composes the
// morphology/spell/suggest/hyphenate/grammar components behind a single
// Handle, and exposes spec.md §6's external interface.
package voikko

import (
	"os"

	"github.com/voikkofi/vfst"
	"github.com/voikkofi/vfst/grammar"
	"github.com/voikkofi/vfst/hyphen"
	"github.com/voikkofi/vfst/morph"
	"github.com/voikkofi/vfst/spell"
	"github.com/voikkofi/vfst/suggest"
)

// Handle owns one dictionary's loaded transducers and the components built
// over them. A single Handle value owns the transducer byte buffers, the
// analyzer, the speller cache, configuration, and the optional autocorrect
// transducer (spec.md §3's ownership paragraph). Handles are not safe for
// concurrent use (spec.md §5).
type Handle struct {
	mor         *vfst.Transducer
	autocorrect *vfst.Transducer

	analyzer  *morph.Analyzer
	speller   *spell.Speller
	suggester *suggest.Engine
	hyphenator *hyphen.Hyphenator
	checker   *grammar.Checker

	opts Options
	info map[string]string
}

// New loads a dictionary directory (spec.md §6: mor.vfst required,
// autocorr.vfst optional, "5/mor-standard/" layout also recognized) and
// builds a Handle over it with the given options. Construction errors are
// fatal and typed (*vfst.LoadError wrapping a sentinel from vfst/errors.go,
// spec.md §7 [ADD]); read failures surface as plain *os.PathError.
func New(dictionaryDir string, opts Options) (*Handle, error) {
	paths, err := resolveDictionaryPaths(dictionaryDir)
	if err != nil {
		return nil, err
	}

	morData, err := os.ReadFile(paths.morPath)
	if err != nil {
		return nil, err
	}
	mor, err := vfst.Load(morData)
	if err != nil {
		return nil, err
	}

	var autocorrect *vfst.Transducer
	if acData, err := os.ReadFile(paths.autocorrPath); err == nil {
		autocorrect, err = vfst.Load(acData)
		if err != nil {
			return nil, err
		}
	}

	h := &Handle{
		mor:         mor,
		autocorrect: autocorrect,
		info:        parseIndexFile(paths.indexPath),
	}
	h.build(opts)
	return h, nil
}

// build (re)constructs every component from the current transducers and
// opts. Called from New and from Share; SetOptions does not call it (the
// speller rebuilds its own cache when the cache order changes).
func (h *Handle) build(opts Options) {
	h.opts = opts
	h.analyzer = morph.New(h.mor)
	h.speller = spell.New(h.analyzer, spellOptions(opts))
	h.suggester = suggest.New(h.speller, h.analyzer, nil, suggestOptions(opts))
	h.hyphenator = hyphen.New(h.analyzer, hyphenOptions(opts))
	h.checker = grammar.New(h.analyzer, h.speller, h.suggester, h.autocorrect, grammarOptions(opts))
}

// SetOptions replaces the handle's configuration. Per spec.md §5, this is
// expected to run only between queries.
func (h *Handle) SetOptions(opts Options) {
	h.opts = opts
	h.speller.SetOptions(spellOptions(opts))
	h.suggester.SetOptions(suggestOptions(opts))
	h.hyphenator.SetOptions(hyphenOptions(opts))
	h.checker.SetOptions(grammarOptions(opts))
}

// Options returns the handle's current configuration.
func (h *Handle) Options() Options { return h.opts }

// DictionaryInfo returns the sibling index.txt metadata (spec.md §6 [ADD]):
// a read-only convenience, not a configuration surface. Recognized keys
// include "info:name", "info:description", "info:locale", "info:version";
// unknown keys are retained verbatim.
func (h *Handle) DictionaryInfo() map[string]string {
	out := make(map[string]string, len(h.info))
	for k, v := range h.info {
		out[k] = v
	}
	return out
}

// Close releases the handle's shared transducer references (spec.md §5
// [ADD]). A Handle must not be used after Close.
func (h *Handle) Close() {
	h.mor.Release()
	if h.autocorrect != nil {
		h.autocorrect.Release()
	}
}

// Share increments the reference count on the handle's transducers and
// returns a new Handle over the same underlying buffers (spec.md §5
// [ADD]: "transducer buffers read-only after construction and shareable by
// reference count across handles"). The returned Handle has its own
// mutable component state (caches, options) and must be Close'd
// independently.
func (h *Handle) Share() *Handle {
	shared := &Handle{
		mor:  h.mor.Share(),
		info: h.info,
	}
	if h.autocorrect != nil {
		shared.autocorrect = h.autocorrect.Share()
	}
	shared.build(h.opts)
	return shared
}

func spellOptions(o Options) spell.Options {
	return spell.Options{
		IgnoreDot:            o.IgnoreDot,
		IgnoreNumbers:        o.IgnoreNumbers,
		IgnoreUppercase:      o.IgnoreUppercase,
		AcceptFirstUppercase: o.AcceptFirstUppercase,
		AcceptAllUppercase:   o.AcceptAllUppercase,
		IgnoreNonwords:       o.IgnoreNonwords,
		AcceptExtraHyphens:   o.AcceptExtraHyphens,
		AcceptMissingHyphens: o.AcceptMissingHyphens,
		CacheOrder:           o.SpellerCacheSize,
	}
}

func suggestOptions(o Options) suggest.Options {
	return suggest.Options{MaxSuggestions: o.MaxSuggestions, OCRSuggestions: o.OCRSuggestions}
}

func hyphenOptions(o Options) hyphen.Options {
	return hyphen.Options{
		NoUglyHyphenation:       o.NoUglyHyphenation,
		HyphenateUnknownWords:   o.HyphenateUnknownWords,
		MinHyphenatedWordLength: o.MinHyphenatedWordLength,
	}
}

func grammarOptions(o Options) grammar.Options {
	return grammar.Options{
		AcceptTitlesInGc:               o.AcceptTitlesInGc,
		AcceptUnfinishedParagraphsInGc: o.AcceptUnfinishedParagraphsInGc,
		AcceptBulletedListsInGc:        o.AcceptBulletedListsInGc,
	}
}
