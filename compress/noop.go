package compress

// NoOpDecompressor passes data through unchanged.
//
// It is what CreateDecompressor returns for MethodNone, the case of a
// sub-region whose declared uncompressed length equals its compressed
// length, meaning the writer chose not to compress that region.
// DecompressRegion handles that case itself by returning the data
// unchanged, without going through this type.
type NoOpDecompressor struct{}

var _ Decompressor = NoOpDecompressor{}

// NewNoOpDecompressor creates a pass-through decompressor.
func NewNoOpDecompressor() NoOpDecompressor {
	return NoOpDecompressor{}
}

// Decompress returns data unchanged.
//
// The returned slice shares the same underlying memory as the input; callers
// must not mutate it if they intend to read data again.
func (NoOpDecompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
