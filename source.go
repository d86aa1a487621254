// Loading a source document into one addressable buffer. Per spec.md §5,
// the scanner requires the full input byte range to be addressable —
// there is no streaming mode — so a compressed source must be fully
// decompressed before any Token or Node can reference it by offset.
package jsn

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder: zstd encoder/decoder construction allocates
// internal state tables and is too expensive to repeat per call.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// LoadZstd reads a zstd-compressed JSON document from r and returns the
// fully decompressed bytes, ready to be handed to GetByPath or
// ParseLazy. The returned slice does not alias r's underlying buffer.
func LoadZstd(r io.Reader) ([]byte, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return zstdDecoder.DecodeAll(compressed, nil)
}

// CompressForCache zstd-compresses doc, for callers that want to keep a
// cold copy of a document around (e.g. alongside a PathCache entry)
// without holding the full decompressed bytes in memory.
func CompressForCache(doc []byte) []byte {
	if len(doc) == 0 {
		return nil
	}
	return zstdEncoder.EncodeAll(doc, make([]byte, 0, len(doc)))
}

// DecompressFromCache reverses CompressForCache.
func DecompressFromCache(compressed []byte) ([]byte, error) {
	if len(compressed) == 0 {
		return nil, nil
	}
	return zstdDecoder.DecodeAll(compressed, nil)
}
