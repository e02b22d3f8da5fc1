package vfst

import "sort"

// WeightedConfig is the weighted counterpart of Config. It differs in three
// ways mandated by spec.md §4.3:
//
//   - the entire flag-feature vector is copied forward on push and discarded
//     by decrementing the stack depth on pop, rather than undone in place;
//   - normal-char transitions within a state are sorted by SymIn, so a
//     binary search can skip straight past unreachable values;
//   - accumulated path weight, the deepest input position reached
//     (FirstNotReachedPosition), and an explicit BacktrackToOutputDepth hook
//     are exposed for the suggestion engine's error-model composition.
type WeightedConfig struct {
	t      *Transducer
	frames []weightedFrame
	// flagStack holds one copy of the flag vector per stack depth; frame i
	// reads/writes flagStack[i].
	flagStack  [][]int
	top        int
	done       bool
	runes      []rune
	syms       []int
	inputDepth int
	maxDepth   int

	AllowPrefix bool
}

type weightedFrame struct {
	state                 int
	total                 int
	overflowSlots          int
	tc                     int
	normalStart, normalEnd int // [start,end) tc range of the sorted normal-char region
	symIn, symOut          uint32
	consumed               int
	weight                 int64
}

// NewWeightedConfig allocates a WeightedConfig with the default buffer size.
func NewWeightedConfig(t *Transducer) *WeightedConfig {
	features := t.Symbols().FeatureCount()
	c := &WeightedConfig{
		t:         t,
		frames:    make([]weightedFrame, DefaultBufferSize),
		flagStack: make([][]int, DefaultBufferSize),
	}
	for i := range c.flagStack {
		c.flagStack[i] = make([]int, features)
	}
	return c
}

// Prepare resets cfg to the start state. Unlike the unweighted engine, an
// input containing a rune absent from the symbol table fails immediately
// (spec.md §4.3): Prepare returns false in that case and Next will report
// exhaustion without searching.
func (c *WeightedConfig) Prepare(input string) bool {
	runes, syms := mapInput(c.t.Symbols(), input)
	for _, s := range syms {
		if s == unknownCharSentinel {
			c.done = true
			c.top = -1
			return false
		}
	}
	c.runes, c.syms = runes, syms
	c.inputDepth = 0
	c.maxDepth = 0
	c.done = false
	for i := range c.flagStack[0] {
		c.flagStack[0][i] = valueNeutral
	}
	total, overflow, ns, ne := weightedStateTotal(c.t, 0)
	c.frames[0] = weightedFrame{state: 0, total: total, overflowSlots: overflow, normalStart: ns, normalEnd: ne}
	c.top = 0
	return true
}

func weightedStateTotal(t *Transducer, state int) (total, overflowSlots, normalStart, normalEnd int) {
	more, slots := transitionCountWeighted(t.shared.table, state, t.shared.recordSize)
	total = more + 1
	symbols := t.Symbols()
	normalStart, normalEnd = -1, -1
	rs := t.shared.recordSize
	for tc := 0; tc < total; tc++ {
		idx := state
		if tc > 0 {
			idx = state + tc + slots
		}
		tr := decodeWeightedTransition(t.shared.table[idx*rs : idx*rs+rs])
		if tr.IsFinal() {
			continue
		}
		if tr.SymIn != 0 && int(tr.SymIn) >= symbols.firstNormal && int(tr.SymIn) < symbols.firstMulti {
			if normalStart == -1 {
				normalStart = tc
			}
			normalEnd = tc + 1
		}
	}
	if normalStart == -1 {
		normalStart, normalEnd = 0, 0
	}
	return total, slots, normalStart, normalEnd
}

func (c *WeightedConfig) recordIndex(f *weightedFrame, tc int) int {
	if tc == 0 {
		return f.state
	}
	return f.state + tc + f.overflowSlots
}

func (c *WeightedConfig) transitionAt(f *weightedFrame, tc int) WeightedTransition {
	rs := c.t.shared.recordSize
	idx := c.recordIndex(f, tc)
	return decodeWeightedTransition(c.t.shared.table[idx*rs : idx*rs+rs])
}

// NextWeighted resumes the search and yields the next output string and its
// accumulated path weight, or ("", 0, false) when exhausted.
func (c *WeightedConfig) NextWeighted() (string, int64, bool) {
	if c.done {
		return "", 0, false
	}
	symbols := c.t.Symbols()
	iterations := 0
	for {
		if c.top < 0 {
			c.done = true
			return "", 0, false
		}
		f := &c.frames[c.top]

		if f.tc >= f.total {
			if c.top == 0 {
				c.top = -1
				c.done = true
				return "", 0, false
			}
			c.popOne()
			c.frames[c.top].tc++
			continue
		}

		iterations++
		if iterations > iterationLimit {
			c.done = true
			return "", 0, false
		}

		// Binary-search skip over the sorted normal-char region.
		if f.tc == f.normalStart && f.normalStart < f.normalEnd {
			if c.inputDepth >= len(c.syms) {
				f.tc = f.normalEnd
				continue
			}
			target := uint32(c.syms[c.inputDepth])
			lo, hi := f.normalStart, f.normalEnd
			i := sort.Search(hi-lo, func(k int) bool {
				return c.transitionAt(f, lo+k).SymIn >= target
			})
			found := lo + i
			if found < hi && c.transitionAt(f, found).SymIn == target {
				f.tc = found
			} else {
				f.tc = f.normalEnd
				continue
			}
		}

		tr := c.transitionAt(f, f.tc)

		if tr.IsFinal() {
			if c.inputDepth == len(c.syms) || c.AllowPrefix {
				totalWeight := c.pathWeight() + int64(tr.Weight)
				out := c.assembleOutput(int(tr.SymOut))
				f.tc++
				return out, totalWeight, true
			}
			f.tc++
			continue
		}

		switch {
		case tr.SymIn == 0:
			if c.pushChild(tr, 0) {
				continue
			}
			c.done = true
			return "", 0, false

		case tr.SymIn < uint32(symbols.firstNormal):
			fd, ok := symbols.FlagAt(int(tr.SymIn))
			if !ok {
				f.tc++
				continue
			}
			newVal, pass := fd.Check(c.flagStack[c.top][fd.Feature])
			if !pass {
				f.tc++
				continue
			}
			if c.pushChild(tr, 0) {
				c.flagStack[c.top][fd.Feature] = newVal
				continue
			}
			c.done = true
			return "", 0, false

		default:
			if n, ok := c.matchInput(int(tr.SymIn)); ok {
				if c.pushChild(tr, n) {
					continue
				}
				c.done = true
				return "", 0, false
			}
			f.tc++
			continue
		}
	}
}

func (c *WeightedConfig) matchInput(symIn int) (int, bool) {
	symbols := c.t.Symbols()
	if c.inputDepth >= len(c.syms) {
		return 0, false
	}
	switch symbols.ClassOf(symIn) {
	case ClassNormal:
		if c.syms[c.inputDepth] == symIn {
			return 1, true
		}
		return 0, false
	case ClassMulti:
		text := []rune(symbols.String(symIn))
		if c.inputDepth+len(text) > len(c.runes) {
			return 0, false
		}
		for i, r := range text {
			if c.runes[c.inputDepth+i] != r {
				return 0, false
			}
		}
		return len(text), true
	default:
		return 0, false
	}
}

func (c *WeightedConfig) pushChild(tr WeightedTransition, consumed int) bool {
	if c.top+1 >= len(c.frames) {
		return false
	}
	total, overflow, ns, ne := weightedStateTotal(c.t, int(tr.TargetState))
	c.top++
	c.inputDepth += consumed
	if c.inputDepth > c.maxDepth {
		c.maxDepth = c.inputDepth
	}
	copy(c.flagStack[c.top], c.flagStack[c.top-1])
	c.frames[c.top] = weightedFrame{
		state:         int(tr.TargetState),
		total:         total,
		overflowSlots: overflow,
		normalStart:   ns,
		normalEnd:     ne,
		symIn:         tr.SymIn,
		symOut:        tr.SymOut,
		consumed:      consumed,
		weight:        int64(tr.Weight),
	}
	return true
}

// popOne reverses the effect of the frame at c.top and decrements the stack
// depth; the flag vector at the discarded depth is simply abandoned.
func (c *WeightedConfig) popOne() {
	f := &c.frames[c.top]
	if f.consumed > 0 {
		c.inputDepth -= f.consumed
	}
	c.top--
}

// BacktrackToOutputDepth unwinds the stack until exactly n transitions
// remain on the current path (i.e. c.top == n), discarding everything
// pushed beyond that point. Used by the suggestion engine's error-model
// composition to retry alternate continuations from a shared prefix without
// restarting the whole search (spec.md §4.3).
func (c *WeightedConfig) BacktrackToOutputDepth(n int) {
	for c.top > n {
		f := &c.frames[c.top]
		if f.consumed > 0 {
			c.inputDepth -= f.consumed
		}
		c.top--
	}
	c.done = false
}

// FirstNotReachedPosition returns the deepest input index visited by the
// search so far, letting the suggestion engine prune its error-model search
// to the neighborhood of where matching first failed.
func (c *WeightedConfig) FirstNotReachedPosition() int { return c.maxDepth }

func (c *WeightedConfig) pathWeight() int64 {
	var sum int64
	for i := 1; i <= c.top; i++ {
		sum += c.frames[i].weight
	}
	return sum
}

func (c *WeightedConfig) assembleOutput(finalSymOut int) string {
	symbols := c.t.Symbols()
	var out []byte
	for i := 1; i <= c.top; i++ {
		out = append(out, symbols.String(int(c.frames[i].symOut))...)
	}
	out = append(out, symbols.String(finalSymOut)...)
	return string(out)
}
