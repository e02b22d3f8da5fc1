package vfst

import (
	"bytes"
	"encoding/binary"
)

// Builder assembles a VFST byte buffer from states and transitions in
// memory. It exists for tests and for tools that need to hand-construct a
// small transducer (golden/regression tests in morph, spell, suggest): the
// real `.vfst` files are produced by an external compiler out of this
// spec's scope (spec.md §1), so unit tests build tiny transducers directly,
// the same way the teacher's nfa_test.go files build tiny NFAs with
// nfa.Builder rather than compiling real patterns.
type Builder struct {
	weighted bool
	symbols  []string
	symIndex map[string]int
	states   [][]builderTransition
}

type builderTransition struct {
	symIn, symOut int
	target        int
	weight        int16
	final         bool
}

// NewBuilder creates a Builder for an unweighted or weighted transducer.
// Symbol 0 (epsilon) is pre-registered.
func NewBuilder(weighted bool) *Builder {
	b := &Builder{
		weighted: weighted,
		symbols:  []string{""},
		symIndex: map[string]int{"": 0},
	}
	return b
}

// Symbol interns a symbol string (a single character, a "@OP.FEATURE.VALUE@"
// flag, or a "[Tag]" multi-character symbol) and returns its index.
func (b *Builder) Symbol(s string) int {
	if i, ok := b.symIndex[s]; ok {
		return i
	}
	i := len(b.symbols)
	b.symbols = append(b.symbols, s)
	b.symIndex[s] = i
	return i
}

// State allocates a new empty state and returns its index.
func (b *Builder) State() int {
	b.states = append(b.states, nil)
	return len(b.states) - 1
}

// AddTransition adds a transition from state `from` on input symbol symIn
// producing output symbol symOut to state `target`, with the given weight
// (ignored for unweighted transducers).
func (b *Builder) AddTransition(from, symIn, symOut, target int, weight int16) {
	b.states[from] = append(b.states[from], builderTransition{symIn: symIn, symOut: symOut, target: target, weight: weight})
}

// AddFinal adds a final (accepting) transition from state `from` producing
// output symbol symOut.
func (b *Builder) AddFinal(from, symOut int, weight int16) {
	b.states[from] = append(b.states[from], builderTransition{symOut: symOut, final: true, weight: weight})
}

// Build serializes the builder's states into a valid VFST byte buffer,
// ordering each state's transitions epsilon/final/flags/normal(sorted)/multi
// as spec.md §3 requires, and emitting an overflow cell for any state with
// more than 255 outgoing transitions.
func (b *Builder) Build() []byte {
	// First pass: classify every symbol index by its string form.
	firstNormal, firstMulti := b.classifyBoundaries()

	var buf bytes.Buffer
	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], magic1)
	binary.LittleEndian.PutUint32(hdr[4:8], magic2)
	if b.weighted {
		hdr[8] = byte(Weighted)
	} else {
		hdr[8] = byte(Unweighted)
	}
	buf.Write(hdr[:])

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(b.symbols)))
	buf.Write(countBuf[:])
	for _, s := range b.symbols {
		buf.WriteString(s)
		buf.WriteByte(0)
	}

	recordSize := unweightedRecordSize
	if b.weighted {
		recordSize = weightedRecordSize
	}
	if pad := buf.Len() % recordSize; pad != 0 {
		buf.Write(make([]byte, recordSize-pad))
	}

	ordered := make([][]builderTransition, len(b.states))
	for i, trs := range b.states {
		ordered[i] = orderTransitions(trs, firstNormal, firstMulti)
	}

	// Compute each state's record-count footprint (including any overflow
	// cell) so logical state indices can be translated to record offsets
	// before the transitions referencing them are written.
	recordCount := make([]int, len(ordered))
	offset := make([]int, len(ordered))
	cursor := 0
	for i, trs := range ordered {
		n := len(trs)
		if n == 0 {
			n = 1
		}
		rc := n
		if n > 255 {
			rc++
		}
		recordCount[i] = rc
		offset[i] = cursor
		cursor += rc
	}

	for _, trs := range ordered {
		b.writeState(&buf, trs, offset)
	}

	return buf.Bytes()
}

func (b *Builder) classifyBoundaries() (firstNormal, firstMulti int) {
	firstNormal, firstMulti = len(b.symbols), len(b.symbols)
	for i, s := range b.symbols {
		if i == 0 {
			continue
		}
		if isFlagSymbol(s) {
			continue
		}
		if isMultiCharSymbol(s) {
			if firstMulti == len(b.symbols) {
				firstMulti = i
			}
			continue
		}
		if firstNormal == len(b.symbols) {
			firstNormal = i
		}
	}
	if firstNormal > firstMulti {
		firstNormal = firstMulti
	}
	return firstNormal, firstMulti
}

// orderTransitions sorts a state's transitions into the required order:
// epsilon, final, flags, normal (ascending by symIn), multi.
func orderTransitions(trs []builderTransition, firstNormal, firstMulti int) []builderTransition {
	var eps, final, flags, normal, multi []builderTransition
	for _, t := range trs {
		switch {
		case t.final:
			final = append(final, t)
		case t.symIn == 0:
			eps = append(eps, t)
		case t.symIn < firstNormal:
			flags = append(flags, t)
		case t.symIn < firstMulti:
			normal = append(normal, t)
		default:
			multi = append(multi, t)
		}
	}
	for i := 0; i < len(normal); i++ {
		for j := i + 1; j < len(normal); j++ {
			if normal[j].symIn < normal[i].symIn {
				normal[i], normal[j] = normal[j], normal[i]
			}
		}
	}
	out := append([]builderTransition{}, eps...)
	out = append(out, final...)
	out = append(out, flags...)
	out = append(out, normal...)
	out = append(out, multi...)
	return out
}

func (b *Builder) writeState(buf *bytes.Buffer, trs []builderTransition, offset []int) {
	n := len(trs)
	if n == 0 {
		trs = []builderTransition{{symIn: finalSentinelUnweighted, final: true}}
		n = 1
	}
	overflow := n > 255
	for i, t := range trs {
		more := n - 1
		if overflow {
			more = overflowCellSentinel
		}
		if !t.final {
			t.target = offset[t.target]
		}
		if i == 0 {
			b.writeRecord(buf, t, uint8(more))
			if overflow {
				var cell [4]byte
				binary.LittleEndian.PutUint32(cell[:], uint32(n-1))
				buf.Write(cell[:])
				rest := b.recordSize() - 4
				if rest > 0 {
					buf.Write(make([]byte, rest))
				}
			}
			continue
		}
		b.writeRecord(buf, t, 0)
	}
}

func (b *Builder) recordSize() int {
	if b.weighted {
		return weightedRecordSize
	}
	return unweightedRecordSize
}

func (b *Builder) writeRecord(buf *bytes.Buffer, t builderTransition, more uint8) {
	if b.weighted {
		symIn := uint32(t.symIn)
		if t.final {
			symIn = finalSentinelWeighted
		}
		wt := WeightedTransition{SymIn: symIn, SymOut: uint32(t.symOut), TargetState: uint32(t.target), Weight: t.weight, MoreTransitions: more}
		rec := encodeWeightedTransition(wt)
		buf.Write(rec[:])
		return
	}
	symIn := uint16(t.symIn)
	if t.final {
		symIn = finalSentinelUnweighted
	}
	ut := Transition{SymIn: symIn, SymOut: uint16(t.symOut), TargetState: uint32(t.target), MoreTransitions: more}
	rec := encodeTransition(ut)
	buf.Write(rec[:])
}
