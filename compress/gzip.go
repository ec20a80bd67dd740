package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/internal/pool"
)

// GzipDecompressor decompresses gzip-compressed hierarchy payloads
// (section kind 4).
type GzipDecompressor struct{}

var _ Decompressor = GzipDecompressor{}

// NewGzipDecompressor creates a new gzip decompressor.
func NewGzipDecompressor() GzipDecompressor {
	return GzipDecompressor{}
}

// Decompress decompresses a gzip-compressed buffer in full.
func (GzipDecompressor) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errs.ErrDecompressionFailed
	}
	defer r.Close()

	out := pool.GetHierarchyBuffer()

	n, err := io.Copy(out, r)
	if err != nil {
		pool.PutHierarchyBuffer(out)
		return nil, errs.ErrDecompressionFailed
	}

	result := make([]byte, n)
	copy(result, out.Bytes())
	pool.PutHierarchyBuffer(out)

	return result, nil
}
