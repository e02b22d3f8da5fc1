package vfst

// Config holds the per-query mutable state for the unweighted traversal
// engine: explicit stacks (bounded by BufferSize) of (state, cursor, input
// symbol, output symbol), the current flag-feature values with per-depth
// undo slots, and input/stack depth. It is a resumable producer: Prepare
// resets it to the start state, and repeated calls to Next resume from the
// last saved position and yield successive outputs.
//
// A Config is not safe for concurrent use; it belongs to one in-flight
// query (spec.md §5).
type Config struct {
	t           *Transducer
	frames      []unweightedFrame
	top         int
	done        bool
	runes       []rune
	syms        []int
	inputDepth  int
	flagValues  []int
	AllowPrefix bool // if true, a final may match before all input is consumed
}

type unweightedFrame struct {
	state         int
	total         int
	overflowSlots int
	tc            int
	symIn         int
	symOut        int
	consumed      int
	flagChanged   bool
	flagFeature   int
	flagOldValue  int
}

// NewConfig allocates a Config with the default buffer size.
func NewConfig(t *Transducer) *Config {
	return &Config{
		t:      t,
		frames: make([]unweightedFrame, DefaultBufferSize),
	}
}

// Prepare resets cfg to the transducer's start state with input mapped to
// symbol indices (an unrecognized rune maps to a sentinel that can still
// only be consumed by a byte-range transition that will never match it;
// flag/epsilon transitions remain reachable, per spec.md §4.3).
func (c *Config) Prepare(input string) {
	c.runes, c.syms = mapInput(c.t.Symbols(), input)
	c.inputDepth = 0
	c.done = false
	if cap(c.flagValues) < c.t.Symbols().FeatureCount() {
		c.flagValues = make([]int, c.t.Symbols().FeatureCount())
	} else {
		c.flagValues = c.flagValues[:c.t.Symbols().FeatureCount()]
		for i := range c.flagValues {
			c.flagValues[i] = valueNeutral
		}
	}
	total, overflow := stateTotal(c.t, 0)
	c.frames[0] = unweightedFrame{state: 0, total: total, overflowSlots: overflow, symIn: -1, symOut: -1}
	c.top = 0
}

// stateTotal computes the number of outgoing transitions for the state
// whose first transition record is at record index `state`, handling the
// overflow-cell case (spec.md §3).
func stateTotal(t *Transducer, state int) (total, overflowSlots int) {
	more, slots := transitionCountUnweighted(t.shared.table, state, t.shared.recordSize)
	return more + 1, slots
}

func (c *Config) recordIndex(f *unweightedFrame, tc int) int {
	if tc == 0 {
		return f.state
	}
	return f.state + tc + f.overflowSlots
}

func (c *Config) transitionAt(f *unweightedFrame, tc int) Transition {
	rs := c.t.shared.recordSize
	idx := c.recordIndex(f, tc)
	return decodeTransition(c.t.shared.table[idx*rs : idx*rs+rs])
}

// Next resumes the search and yields the next successful traversal's output
// string, or returns ("", false) when exhausted or the safety limit is hit.
func (c *Config) Next() (string, bool) {
	if c.done {
		return "", false
	}
	symbols := c.t.Symbols()
	iterations := 0
	for {
		if c.top < 0 {
			c.done = true
			return "", false
		}
		f := &c.frames[c.top]

		if f.tc >= f.total {
			if c.top == 0 {
				c.top = -1
				c.done = true
				return "", false
			}
			c.undoTop()
			c.top--
			c.frames[c.top].tc++
			continue
		}

		iterations++
		if iterations > iterationLimit {
			c.done = true
			return "", false
		}

		tr := c.transitionAt(f, f.tc)

		if tr.IsFinal() {
			if c.inputDepth == len(c.syms) || c.AllowPrefix {
				out := c.assembleOutput(int(tr.SymOut))
				f.tc++
				return out, true
			}
			f.tc++
			continue
		}

		switch {
		case tr.SymIn == 0:
			if c.pushChild(tr, 0, false, 0, 0) {
				continue
			}
			c.done = true
			return "", false

		case int(tr.SymIn) < symbols.firstNormal:
			fd, ok := symbols.FlagAt(int(tr.SymIn))
			if !ok {
				f.tc++
				continue
			}
			newVal, pass := fd.Check(c.flagValues[fd.Feature])
			if !pass {
				f.tc++
				continue
			}
			old := c.flagValues[fd.Feature]
			c.flagValues[fd.Feature] = newVal
			if c.pushChild(tr, 0, true, fd.Feature, old) {
				continue
			}
			c.done = true
			return "", false

		default:
			if n, ok := c.matchInput(int(tr.SymIn)); ok {
				if c.pushChild(tr, n, false, 0, 0) {
					continue
				}
				c.done = true
				return "", false
			}
			f.tc++
			continue
		}
	}
}

// matchInput checks whether symIn (a normal or multi-char symbol) matches
// the input at the current depth, returning the number of runes consumed.
func (c *Config) matchInput(symIn int) (int, bool) {
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

// pushChild descends into the state targeted by tr, recording what it took
// to get there so undoTop can reverse it. Returns false if BufferSize would
// be exceeded, in which case the whole search is abandoned per spec.md §3.
func (c *Config) pushChild(tr Transition, consumed int, flagChanged bool, flagFeature, flagOld int) bool {
	if c.top+1 >= len(c.frames) {
		return false
	}
	total, overflow := stateTotal(c.t, int(tr.TargetState))
	c.top++
	c.inputDepth += consumed
	c.frames[c.top] = unweightedFrame{
		state:         int(tr.TargetState),
		total:         total,
		overflowSlots: overflow,
		symIn:         int(tr.SymIn),
		symOut:        int(tr.SymOut),
		consumed:      consumed,
		flagChanged:   flagChanged,
		flagFeature:   flagFeature,
		flagOldValue:  flagOld,
	}
	return true
}

// undoTop reverses the effect of the frame at c.top (input consumption and/or
// flag mutation) before popping it.
func (c *Config) undoTop() {
	f := &c.frames[c.top]
	if f.consumed > 0 {
		c.inputDepth -= f.consumed
	}
	if f.flagChanged {
		c.flagValues[f.flagFeature] = f.flagOldValue
	}
}

// assembleOutput concatenates the output symbols recorded on frames
// [1, top] plus the triggering final transition's own output symbol.
func (c *Config) assembleOutput(finalSymOut int) string {
	symbols := c.t.Symbols()
	var out []byte
	for i := 1; i <= c.top; i++ {
		out = append(out, symbols.String(c.frames[i].symOut)...)
	}
	out = append(out, symbols.String(finalSymOut)...)
	return string(out)
}
