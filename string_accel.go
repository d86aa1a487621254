package jsn

import (
	"encoding/binary"

	"github.com/klauspost/cpuid/v2"
)

// findQuoteOrBackslash locates the next '"' or '\\' byte at or after i,
// or -1 if neither occurs before the end of src. It is the single
// point the string scanner uses to find the next byte of interest, so
// swapping the implementation doesn't touch skipStringEscaped at all.
//
// Two implementations are available: a portable byte-at-a-time scan and
// a word-at-a-time (SWAR) scan that tests 8 bytes per iteration. The SWAR
// path relies on cheap unaligned 64-bit loads, which cpuid reports as
// available on the CPUs we've benchmarked this against; on anything else
// we fall back to the portable loop rather than risk a slow unaligned
// access pattern.
var useAccelScan = cpuid.CPU.Supports(cpuid.SSE42)

func findQuoteOrBackslash(src []byte, i int) int {
	if useAccelScan {
		return findQuoteOrBackslashSWAR(src, i)
	}
	return findQuoteOrBackslashPortable(src, i)
}

func findQuoteOrBackslashPortable(src []byte, i int) int {
	for ; i < len(src); i++ {
		if src[i] == '"' || src[i] == '\\' {
			return i
		}
	}
	return -1
}

// findQuoteOrBackslashSWAR scans 8 bytes at a time using the classic
// "has zero byte" bit trick applied to (word XOR broadcast(target)), which
// turns a per-byte equality test into a handful of word-wide ops.
func findQuoteOrBackslashSWAR(src []byte, i int) int {
	n := len(src)
	for ; i+8 <= n; i += 8 {
		w := binary.LittleEndian.Uint64(src[i : i+8])
		if hasByte(w, '"') || hasByte(w, '\\') {
			break
		}
	}
	for ; i < n; i++ {
		if src[i] == '"' || src[i] == '\\' {
			return i
		}
	}
	return -1
}

const (
	loBits = 0x0101010101010101
	hiBits = 0x8080808080808080
)

// hasByte reports whether any byte lane of w equals b.
func hasByte(w uint64, b byte) bool {
	x := w ^ (loBits * uint64(b))
	return (x-loBits)&^x&hiBits != 0
}
