package voikko

// Options is the full handle-level configuration surface (spec.md §6):
// seventeen persistent options shared by the speller, suggestion engine,
// hyphenator and grammar checker. voikko.New splits this one struct into
// each component's own narrower Options value.
type Options struct {
	// IgnoreDot strips a trailing period before spelling.
	// Default: false
	IgnoreDot bool
	// IgnoreNumbers accepts any word containing a digit without analysis.
	// Default: false
	IgnoreNumbers bool
	// IgnoreUppercase accepts any all-uppercase word without analysis.
	// Default: false
	IgnoreUppercase bool
	// AcceptFirstUppercase accepts first-letter capitalization without a
	// full case analysis.
	// Default: true
	AcceptFirstUppercase bool
	// AcceptAllUppercase accepts an all-uppercase spelling of a word whose
	// lowercase form would spell.
	// Default: true
	AcceptAllUppercase bool
	// NoUglyHyphenation forbids linguistically ugly but legal breaks.
	// Default: false
	NoUglyHyphenation bool
	// OCRSuggestions switches the suggestion strategy to OCR.
	// Default: false
	OCRSuggestions bool
	// IgnoreNonwords accepts URL/email-shaped tokens without analysis.
	// Default: true
	IgnoreNonwords bool
	// AcceptExtraHyphens allows an interior hyphen the dictionary form does
	// not require.
	// Default: false
	AcceptExtraHyphens bool
	// AcceptMissingHyphens allows a missing interior hyphen the dictionary
	// form requires.
	// Default: false
	AcceptMissingHyphens bool
	// AcceptTitlesInGc accepts title-style incomplete sentences in grammar
	// checking.
	// Default: false
	AcceptTitlesInGc bool
	// AcceptUnfinishedParagraphsInGc accepts paragraphs without terminal
	// punctuation.
	// Default: false
	AcceptUnfinishedParagraphsInGc bool
	// AcceptBulletedListsInGc is passed to the grammar checker, but no
	// grammar check reads it, so it has no effect on the errors reported.
	// Default: false
	AcceptBulletedListsInGc bool
	// HyphenateUnknownWords applies phonotactic rules even when the
	// analyzer returns no analysis for the word.
	// Default: true
	HyphenateUnknownWords bool
	// MinHyphenatedWordLength is the minimum word length that gets
	// hyphenated at all.
	// Default: 2
	MinHyphenatedWordLength int
	// MaxSuggestions ceilings the number of returned suggestions.
	// Default: 5
	MaxSuggestions int
	// SpellerCacheSize is the order parameter for the fixed-size spell
	// cache (one table of 2^SpellerCacheSize slots for each word length
	// from 1 to 10; 0 disables it).
	// Default: 0
	SpellerCacheSize int
}

// DefaultOptions returns the handle defaults from spec.md §6.
func DefaultOptions() Options {
	return Options{
		AcceptFirstUppercase:    true,
		AcceptAllUppercase:      true,
		IgnoreNonwords:          true,
		HyphenateUnknownWords:   true,
		MinHyphenatedWordLength: 2,
		MaxSuggestions:          5,
	}
}
