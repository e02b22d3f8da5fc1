package spell

// maxCachedLen is the longest word the spell cache stores (spec.md §4.6
// step 3). Length is counted in UTF-8 bytes, not characters, so a word of
// 10 or fewer characters that contains non-ASCII letters such as 'ä' is
// not cached once its encoding exceeds 10 bytes.
const maxCachedLen = 10

// cacheEntry is one slot of a fixed-size hash table. word is kept alongside
// the result to detect a hash collision (a miss, not a false hit).
type cacheEntry struct {
	occupied bool
	word     string
	result   Result
}

// cache is a fixed-size, per-word-length hash table of spell results.
// Lengths 1..maxCachedLen each get their own table of 2^order slots; misses
// and Failed/CapitalizationError results are never stored (spec.md §4.6
// step 3: "misses and failures are not cached").
type cache struct {
	order int
	sizes [maxCachedLen + 1][]cacheEntry
}

// newCache builds a cache; order == 0 yields a disabled (always-miss) cache.
func newCache(order int) *cache {
	return &cache{order: order}
}

// hashWord implements spec.md §4.6 step 3's hash: h = h*37 + c, reduced mod
// 2^order at the end.
func (c *cache) hashWord(word string) int {
	h := uint32(0)
	for i := 0; i < len(word); i++ {
		h = h*37 + uint32(word[i])
	}
	mask := uint32(1)<<uint(c.order) - 1
	return int(h & mask)
}

func (c *cache) tableFor(n int) []cacheEntry {
	if c.sizes[n] == nil {
		c.sizes[n] = make([]cacheEntry, 1<<uint(c.order))
	}
	return c.sizes[n]
}

// lookup returns (result, true) on a cache hit for word.
func (c *cache) lookup(word string) (Result, bool) {
	n := len(word)
	if c.order == 0 || n == 0 || n > maxCachedLen {
		return 0, false
	}
	table := c.sizes[n]
	if table == nil {
		return 0, false
	}
	idx := c.hashWord(word)
	e := table[idx]
	if e.occupied && e.word == word {
		return e.result, true
	}
	return 0, false
}

// store records a cacheable result (Ok or CapitalizeFirst only) for word.
func (c *cache) store(word string, r Result) {
	n := len(word)
	if c.order == 0 || n == 0 || n > maxCachedLen {
		return
	}
	if r != Ok && r != CapitalizeFirst {
		return
	}
	table := c.tableFor(n)
	idx := c.hashWord(word)
	table[idx] = cacheEntry{occupied: true, word: word, result: r}
}
