package casing

import "golang.org/x/sys/cpu"

// isASCIIFast reports whether s is pure ASCII. On CPUs with AVX2 or SSE4.2,
// it widens the scan stride; elsewhere it falls back to a byte-at-a-time
// loop. Unlike the teacher's simd package, this dispatch has no assembly
// backend — it only gates which pure-Go stride Normalize uses to skip the (comparatively expensive) norm.NFC pass entirely for the
// overwhelmingly common ASCII-only surface words.
func isASCIIFast(s string) bool {
	if cpu.X86.HasAVX2 || cpu.X86.HasSSE42 {
		return isASCIIWide(s)
	}
	return isASCIINarrow(s)
}

// isASCIIWide checks 8 bytes at a time via a single OR-of-high-bits test,
// the pure-Go idiom for what an AVX2/SSE4.2 path would do with a single
// vector compare-and-movemask.
func isASCIIWide(s string) bool {
	i := 0
	for ; i+8 <= len(s); i += 8 {
		var acc uint64
		for k := 0; k < 8; k++ {
			acc |= uint64(s[i+k])
		}
		if acc&0x80 != 0 {
			return false
		}
	}
	for ; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func isASCIINarrow(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
