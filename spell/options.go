package spell

// Options controls speller behavior. It is a subset of the handle-level 16
// configuration options (spec.md §6) — the ones the speller itself reads;
// the rest live on the suggestion/grammar/hyphenator configs and are
// composed together by the top-level voikko.Options.
//
// Example:
//
//	opts := spell.DefaultOptions()
//	opts.IgnoreNumbers = true
//	speller := spell.New(analyzer, opts)
type Options struct {
	// IgnoreDot strips a trailing period before spelling; only the
	// stripped form is checked.
	// Default: false
	IgnoreDot bool

	// IgnoreNumbers accepts any word containing a digit without analysis.
	// Default: false
	IgnoreNumbers bool

	// IgnoreUppercase accepts any all-uppercase word without analysis.
	// Default: false
	IgnoreUppercase bool

	// AcceptFirstUppercase accepts a capitalized word whose lowercase form
	// would spell, without it counting as a CapitalizationError.
	// Default: true
	AcceptFirstUppercase bool

	// AcceptAllUppercase accepts an all-uppercase spelling of a word whose
	// lowercase form would spell.
	// Default: true
	AcceptAllUppercase bool

	// IgnoreNonwords accepts URL/email-shaped tokens without analysis.
	// Default: true
	IgnoreNonwords bool

	// AcceptExtraHyphens allows an interior hyphen the dictionary form does
	// not require to be dropped and retried.
	// Default: false
	AcceptExtraHyphens bool

	// AcceptMissingHyphens allows a missing interior hyphen the dictionary
	// form requires to be accepted anyway.
	// Default: false
	AcceptMissingHyphens bool

	// CacheOrder is the order parameter for the fixed-size spell cache: the
	// cache keeps one table of 2^CacheOrder slots for each word length from
	// 1 to 10. 0 disables caching.
	// Default: 0
	CacheOrder int
}

// DefaultOptions returns the speller defaults from spec.md §6.
func DefaultOptions() Options {
	return Options{
		AcceptFirstUppercase: true,
		AcceptAllUppercase:   true,
		IgnoreNonwords:       true,
	}
}
