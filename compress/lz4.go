package compress

import (
	"errors"

	"github.com/pierrec/lz4/v4"

	"github.com/TheZoq2/fst-native/errs"
)

// LZ4Decompressor decompresses LZ4 block-compressed hierarchy payloads
// (section kinds 6 and 7).
//
// Only the decompression half is needed: FST's hierarchy section always
// declares the exact uncompressed length up front (the 8-byte big-endian
// prefix hierarchy.Decompress strips before handing the payload here), so the
// adaptive buffer-doubling below is only needed as a fallback against a
// corrupt or lying length field.
type LZ4Decompressor struct{}

var _ Decompressor = LZ4Decompressor{}

// NewLZ4Decompressor creates a new LZ4 block decompressor.
func NewLZ4Decompressor() LZ4Decompressor {
	return LZ4Decompressor{}
}

// Decompress decompresses an LZ4 block-compressed buffer of unknown
// uncompressed length, starting from an output buffer four times the
// input's size and growing it if that turns out to be too small.
func (d LZ4Decompressor) Decompress(data []byte) ([]byte, error) {
	// Callers that know the exact uncompressed length should use
	// DecompressSized; this plain Decompress satisfies the Decompressor
	// interface for callers that don't.
	return d.DecompressSized(data, len(data)*4)
}

// DecompressSized decompresses an LZ4 block-compressed buffer, given the
// exact (or best-guess) uncompressed length declared by the section.
func (d LZ4Decompressor) DecompressSized(data []byte, uncompressedLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := uncompressedLen
	if bufSize <= 0 {
		bufSize = len(data) * 4
	}

	const maxSize = 256 * 1024 * 1024 // 256MB safety limit

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, errs.ErrDecompressionFailed
		}

		return buf[:n], nil
	}

	return nil, errs.ErrDecompressionFailed
}
