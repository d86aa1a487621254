// Fingerprinting for the path/document memoization layer (bloom.go).
//
// Mirrors the selectable hash-algorithm pattern used elsewhere in this
// codebase's lineage for document identifiers: xxh3 by default for
// speed, blake2b for better distribution under adversarial input, and a
// dependency-free fnv fallback.
package jsn

import (
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// HashAlgorithm selects the fingerprinting function used by PathCache.
type HashAlgorithm int

const (
	// AlgXXHash3 is the default: fastest, good distribution for the
	// short, structured inputs (serialized paths, document prefixes)
	// this package hashes.
	AlgXXHash3 HashAlgorithm = iota
	// AlgFNV1a avoids pulling in either external hash implementation,
	// at the cost of weaker avalanche behavior.
	AlgFNV1a
	// AlgBlake2b is the best-distributed option, for callers fingerprinting
	// untrusted documents where collision resistance matters more than
	// raw speed.
	AlgBlake2b
)

// fingerprint hashes data to a 64-bit value under alg. It never
// allocates beyond what the chosen algorithm itself requires.
func fingerprint(data []byte, alg HashAlgorithm) uint64 {
	switch alg {
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		sum := h.Sum(nil)
		var v uint64
		for _, b := range sum {
			v = v<<8 | uint64(b)
		}
		return v
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return h.Sum64()
	default:
		return xxh3.Hash(data)
	}
}
