// Package simd provides the byte-level ASCII detection the scanner's fast
// path uses to decide whether to run its byte-indexed inner loop or fall
// back to the generic rune-based one (SPEC_FULL.md §4.6).
//
// The teacher's assembly-backed AVX2 detector (simd/ascii_amd64.go) and its
// Teddy/memchr SIMD family depend on .s files that are not part of this
// retrieval and are dropped here (see DESIGN.md); what's kept is the
// teacher's portable SWAR fallback, which is correct and fast on every
// platform without any assembly.
package simd

import "encoding/binary"

// IsASCII reports whether every byte in data is < 0x80. It processes 8 bytes
// at a time using uint64 bitwise operations (SWAR: SIMD Within A Register),
// adapted directly from the teacher's isASCIIGeneric (simd/ascii_generic.go).
func IsASCII(data []byte) bool {
	n := len(data)
	if n < 8 {
		for i := 0; i < n; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	const hi8 = uint64(0x8080808080808080)
	idx := 0
	for idx+8 <= n {
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return false
		}
		idx += 8
	}
	for idx < n {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}
	return true
}
