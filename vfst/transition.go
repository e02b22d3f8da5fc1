package vfst

import (
	"encoding/binary"

	"github.com/voikkofi/vfst/internal/conv"
)

// Sentinel symIn values marking a final transition, per spec.md §3.
const (
	finalSentinelUnweighted = 0xFFFF
	finalSentinelWeighted   = 0xFFFFFFFF
)

// unweightedRecordSize and weightedRecordSize are the fixed on-disk sizes of
// a transition record for each variant.
const (
	unweightedRecordSize = 8
	weightedRecordSize   = 16
)

// Transition is the decoded form of one unweighted (8-byte) transition
// record:
//
//	symIn: u16, symOut: u16, targetState: 24-bit, moreTransitions: u8
//
// The high byte of the 4-byte tail packs moreTransitions; a value of 255
// signals that an overflow cell immediately follows the state's first
// transition, carrying the true 32-bit count (see readMoreTransitions).
type Transition struct {
	SymIn           uint16
	SymOut          uint16
	TargetState     uint32 // 24-bit value, top byte always zero
	MoreTransitions uint8
}

// IsFinal reports whether this is a final (accepting) transition.
func (t Transition) IsFinal() bool { return t.SymIn == finalSentinelUnweighted }

// decodeTransition reads one 8-byte unweighted transition record at data[0:8].
func decodeTransition(data []byte) Transition {
	symIn := binary.LittleEndian.Uint16(data[0:2])
	symOut := binary.LittleEndian.Uint16(data[2:4])
	tail := binary.LittleEndian.Uint32(data[4:8])
	return Transition{
		SymIn:           symIn,
		SymOut:          symOut,
		TargetState:     tail & 0x00FFFFFF,
		MoreTransitions: uint8(tail >> 24),
	}
}

// encodeTransition is the inverse of decodeTransition; used by tests and by
// builder helpers that assemble small transducers in memory.
func encodeTransition(t Transition) [unweightedRecordSize]byte {
	var buf [unweightedRecordSize]byte
	binary.LittleEndian.PutUint16(buf[0:2], t.SymIn)
	binary.LittleEndian.PutUint16(buf[2:4], t.SymOut)
	tail := (conv.Uint32ToUint24(t.TargetState) & 0x00FFFFFF) | uint32(t.MoreTransitions)<<24
	binary.LittleEndian.PutUint32(buf[4:8], tail)
	return buf
}

// WeightedTransition is the decoded form of one 16-byte weighted transition
// record:
//
//	symIn: u32, symOut: u32, targetState: u32, weight: i16,
//	moreTransitions: u8, reserved: u8
type WeightedTransition struct {
	SymIn           uint32
	SymOut          uint32
	TargetState     uint32
	Weight          int16
	MoreTransitions uint8
	Reserved        uint8
}

// IsFinal reports whether this is a final (accepting) transition.
func (t WeightedTransition) IsFinal() bool { return t.SymIn == finalSentinelWeighted }

func decodeWeightedTransition(data []byte) WeightedTransition {
	return WeightedTransition{
		SymIn:           binary.LittleEndian.Uint32(data[0:4]),
		SymOut:          binary.LittleEndian.Uint32(data[4:8]),
		TargetState:     binary.LittleEndian.Uint32(data[8:12]),
		Weight:          int16(binary.LittleEndian.Uint16(data[12:14])),
		MoreTransitions: data[14],
		Reserved:        data[15],
	}
}

func encodeWeightedTransition(t WeightedTransition) [weightedRecordSize]byte {
	var buf [weightedRecordSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], t.SymIn)
	binary.LittleEndian.PutUint32(buf[4:8], t.SymOut)
	binary.LittleEndian.PutUint32(buf[8:12], t.TargetState)
	binary.LittleEndian.PutUint16(buf[12:14], uint16(t.Weight))
	buf[14] = t.MoreTransitions
	buf[15] = t.Reserved
	return buf
}

// overflowCellSentinel is the moreTransitions byte value (255) that signals
// an overflow cell follows the first transition of a state.
const overflowCellSentinel = 255

// transitionCount returns the true number of outgoing transitions for a
// state, reading the overflow cell (stored as the raw bytes of the second
// record slot, reinterpreted as a little-endian u32) when moreTransitions
// signals overflow. It returns the count (transitions beyond the first) and
// how many extra record slots the overflow cell itself occupies (0 or 1).
func transitionCountUnweighted(table []byte, stateOffsetRecords, recordSize int) (more int, overflowSlots int) {
	rec := table[stateOffsetRecords*recordSize : stateOffsetRecords*recordSize+recordSize]
	first := decodeTransition(rec)
	if first.MoreTransitions != overflowCellSentinel {
		return int(first.MoreTransitions), 0
	}
	next := table[(stateOffsetRecords+1)*recordSize : (stateOffsetRecords+1)*recordSize+4]
	return int(binary.LittleEndian.Uint32(next)), 1
}

func transitionCountWeighted(table []byte, stateOffsetRecords, recordSize int) (more int, overflowSlots int) {
	rec := table[stateOffsetRecords*recordSize : stateOffsetRecords*recordSize+recordSize]
	first := decodeWeightedTransition(rec)
	if first.MoreTransitions != overflowCellSentinel {
		return int(first.MoreTransitions), 0
	}
	next := table[(stateOffsetRecords+1)*recordSize : (stateOffsetRecords+1)*recordSize+4]
	return int(binary.LittleEndian.Uint32(next)), 1
}
