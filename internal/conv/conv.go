// Package conv provides safe integer conversion helpers for the VFST runtime.
//
// These functions perform bounds checking before narrowing integer
// conversions to prevent silent overflow, chiefly when packing and
// unpacking the bit fields of the binary transition records (a 24-bit
// target-state field, 16-bit symbol indices, 8-bit transition counts).
// They panic on overflow since this indicates a programming error or a
// transducer built for a larger address space than this reader supports.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// IntToUint16 safely converts an int to uint16.
// Panics if n < 0 or n > math.MaxUint16.
//
//go:inline
func IntToUint16(n int) uint16 {
	if n < 0 || n > math.MaxUint16 {
		panic("integer overflow: int value out of uint16 range")
	}
	return uint16(n)
}

// Uint32ToUint24 safely narrows a uint32 into the 24-bit target-state field
// of an unweighted transition record.
// Panics if n exceeds 0xFFFFFF — the transducer has more states than a
// 24-bit index can address.
//
//go:inline
func Uint32ToUint24(n uint32) uint32 {
	const max24 = 1<<24 - 1
	if n > max24 {
		panic("integer overflow: state index does not fit in 24 bits")
	}
	return n
}

// Uint64ToUint32 safely converts a uint64 to uint32.
// Panics if n > math.MaxUint32.
//
//go:inline
func Uint64ToUint32(n uint64) uint32 {
	if n > math.MaxUint32 {
		panic("integer overflow: uint64 value out of uint32 range")
	}
	return uint32(n)
}

// Uint64ToUint16 safely converts a uint64 to uint16.
// Panics if n > math.MaxUint16.
//
//go:inline
func Uint64ToUint16(n uint64) uint16 {
	if n > math.MaxUint16 {
		panic("integer overflow: uint64 value out of uint16 range")
	}
	return uint16(n)
}
