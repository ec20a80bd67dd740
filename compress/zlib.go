package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/internal/pool"
)

// ZlibDecompressor decompresses zlib-wrapped payloads. DecompressRegion
// tries it first for a value-change block's frame and time-table
// sub-regions; a value-change section's payload as a whole and its
// waveform region are read as stored and never pass through it.
type ZlibDecompressor struct{}

var _ Decompressor = ZlibDecompressor{}

// NewZlibDecompressor creates a new zlib decompressor.
func NewZlibDecompressor() ZlibDecompressor {
	return ZlibDecompressor{}
}

// Decompress decompresses a zlib-wrapped buffer in full.
func (ZlibDecompressor) Decompress(data []byte) ([]byte, error) {
	return decompressZlibSized(data, 0)
}

// DecompressSized decompresses a zlib-wrapped buffer, pre-sizing the output
// buffer to the declared uncompressed length for fewer reallocations.
func (ZlibDecompressor) DecompressSized(data []byte, uncompressedLen int) ([]byte, error) {
	return decompressZlibSized(data, uncompressedLen)
}

func decompressZlibSized(data []byte, uncompressedLen int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errs.ErrDecompressionFailed
	}
	defer r.Close()

	out := pool.GetRegionBuffer()
	if uncompressedLen > 0 {
		out.Grow(uncompressedLen)
	}

	n, err := io.Copy(out, r)
	if err != nil {
		pool.PutRegionBuffer(out)
		return nil, errs.ErrDecompressionFailed
	}

	result := make([]byte, n)
	copy(result, out.Bytes())
	pool.PutRegionBuffer(out)

	return result, nil
}
