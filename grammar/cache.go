package grammar

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/axiomhq/fsst"
)

// fieldSep/recordSep use ASCII unit/record separators so ordinary paragraph
// text never collides with the serialization delimiters.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
	itemSep   = ","
)

// GcCache is a hash-keyed memoization of grammar-error lists per paragraph
// (spec.md §3: "GcCache entry"), so a caller iterating a paragraph's errors
// never re-analyzes it. Entries are stored fsst-compressed (spec.md
// [ADD] §4.9a) rather than as a live []Error, so a cache sized for a long
// document's many paragraphs stays cheap; callers never observe the
// compression, since Get/Put round-trip a []Error.
type GcCache struct {
	table    *fsst.Table
	entries  map[uint64][]byte
	order    []uint64
	capacity int
}

// defaultCacheCapacity bounds the number of distinct paragraphs memoized at
// once; older entries are evicted first (spec.md §3 describes no explicit
// bound, so this is an internal storage detail, not a caller-visible
// option).
const defaultCacheCapacity = 64

// NewGcCache creates an empty paragraph cache. The fsst symbol table is
// trained once, lazily, from the fixed set of grammar error descriptions
// (errors.go) on first use, since those strings are representative of
// everything the cache will ever store.
func NewGcCache() *GcCache {
	return &GcCache{entries: make(map[uint64][]byte), capacity: defaultCacheCapacity}
}

func (c *GcCache) ensureTable() {
	if c.table != nil {
		return
	}
	sample := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		sample = append(sample, d)
	}
	c.table = fsst.TrainStrings(sample)
}

// hashParagraph hashes paragraph text to the cache key.
func hashParagraph(text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}

// Get returns the cached error list for paragraph text, if present.
func (c *GcCache) Get(text string) ([]Error, bool) {
	blob, ok := c.entries[hashParagraph(text)]
	if !ok {
		return nil, false
	}
	return decodeErrors(c.table, blob), true
}

// Put stores errs for paragraph text, evicting the oldest entry once the
// cache is at capacity.
func (c *GcCache) Put(text string, errs []Error) {
	c.ensureTable()
	key := hashParagraph(text)
	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = encodeErrors(c.table, errs)
}

func encodeErrors(table *fsst.Table, errs []Error) []byte {
	var b strings.Builder
	for i, e := range errs {
		if i > 0 {
			b.WriteString(recordSep)
		}
		b.WriteString(strconv.Itoa(int(e.Code)))
		b.WriteString(fieldSep)
		b.WriteString(strconv.Itoa(e.StartPos))
		b.WriteString(fieldSep)
		b.WriteString(strconv.Itoa(e.ErrorLen))
		b.WriteString(fieldSep)
		b.WriteString(strings.Join(e.Suggestions, itemSep))
		b.WriteString(fieldSep)
		b.WriteString(e.ShortDescription)
	}
	return table.EncodeAll([]byte(b.String()))
}

func decodeErrors(table *fsst.Table, blob []byte) []Error {
	raw := string(table.DecodeAll(blob))
	if raw == "" {
		return []Error{}
	}
	records := strings.Split(raw, recordSep)
	out := make([]Error, 0, len(records))
	for _, rec := range records {
		fields := strings.Split(rec, fieldSep)
		if len(fields) != 5 {
			continue
		}
		code, _ := strconv.Atoi(fields[0])
		start, _ := strconv.Atoi(fields[1])
		length, _ := strconv.Atoi(fields[2])
		var suggestions []string
		if fields[3] != "" {
			suggestions = strings.Split(fields[3], itemSep)
		}
		out = append(out, Error{
			Code:             Code(code),
			StartPos:         start,
			ErrorLen:         length,
			Suggestions:      suggestions,
			ShortDescription: fields[4],
		})
	}
	return out
}
