package hyphen

// Options controls the hyphenator (spec.md §6, §4.8).
type Options struct {
	// NoUglyHyphenation forbids linguistically ugly but legal breaks (e.g.
	// splitting a vowel pair that only grudgingly permits a split).
	// Default: false
	NoUglyHyphenation bool
	// HyphenateUnknownWords applies the phonotactic rules even when the
	// analyzer returns no analysis for the word.
	// Default: true
	HyphenateUnknownWords bool
	// MinHyphenatedWordLength is the minimum word length that gets
	// hyphenated at all; shorter words get an all-space pattern.
	// Default: 2
	MinHyphenatedWordLength int
}

// DefaultOptions returns the hyphenator defaults from spec.md §6.
func DefaultOptions() Options {
	return Options{HyphenateUnknownWords: true, MinHyphenatedWordLength: 2}
}
