// Package compress implements the decompression backends FST uses for its
// block-compressed sections: zlib for value-change block sub-regions,
// gzip and LZ4 block-mode for the hierarchy section, and FastLZ as a
// third, rarer value-change sub-region encoding.
package compress

import (
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/format"
)

// Decompressor turns a compressed buffer back into its original bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is a Decompressor that can pre-size its output buffer
// when the caller already knows the exact uncompressed length, avoiding the
// reallocation-and-copy that growing an unsized buffer would otherwise cost.
type SizedDecompressor interface {
	Decompressor
	DecompressSized(data []byte, uncompressedLen int) ([]byte, error)
}

// Method identifies which compression scheme a section or sub-region was
// encoded with.
type Method int

const (
	// MethodNone means the payload was stored uncompressed.
	MethodNone Method = iota
	// MethodZlib means the payload is zlib-wrapped (deflate).
	MethodZlib
	// MethodGzip means the payload is gzip-wrapped (hierarchy kind 4).
	MethodGzip
	// MethodLZ4 means the payload is a single LZ4 block (hierarchy kind 6).
	MethodLZ4
	// MethodLZ4Double means the payload is an LZ4 block compressed a
	// second time with LZ4 (hierarchy kind 7).
	MethodLZ4Double
	// MethodFastLZ means the payload is FastLZ level-1 compressed.
	MethodFastLZ
)

// CreateDecompressor returns the Decompressor implementation for method.
func CreateDecompressor(method Method) (Decompressor, error) {
	switch method {
	case MethodNone:
		return NewNoOpDecompressor(), nil
	case MethodZlib:
		return NewZlibDecompressor(), nil
	case MethodGzip:
		return NewGzipDecompressor(), nil
	case MethodLZ4, MethodLZ4Double:
		return NewLZ4Decompressor(), nil
	case MethodFastLZ:
		return NewFastLZDecompressor(), nil
	default:
		return nil, errs.ErrUnsupported
	}
}

// CreateHierarchyDecompressor returns the Decompressor a hierarchy section
// of the given kind was written with. Only the three hierarchy section
// kinds (plain gzip at 4, single LZ4 at 6, double LZ4 at 7) are accepted;
// any other kind is a programmer error in the caller, since the block
// demultiplexer is responsible for only ever calling this with a hierarchy
// kind (format.SectionKind.IsHierarchy).
func CreateHierarchyDecompressor(kind format.SectionKind) (Decompressor, error) {
	switch kind {
	case format.SectionHierarchy:
		return NewGzipDecompressor(), nil
	case format.SectionHierarchyLZ4, format.SectionHierarchyLZ4Dup:
		return NewLZ4Decompressor(), nil
	default:
		return nil, errs.ErrUnsupported
	}
}

// DecompressRegion decompresses one of a value-change block's compressed
// sub-regions (DecodeBlock uses it for the frame and the time table; the
// waveform region is read as stored). The section format gives
// no explicit tag for which algorithm compressed a given
// sub-region, only the compressed and uncompressed lengths — writers from
// before zlib became the default used FastLZ for these regions instead, so
// a mismatched length is tried as zlib first and, on failure, as FastLZ.
// A region whose compressed and uncompressed lengths are equal was never
// compressed and is returned unchanged.
func DecompressRegion(data []byte, uncompressedLen int) ([]byte, error) {
	if len(data) == uncompressedLen {
		return data, nil
	}

	if out, err := NewZlibDecompressor().DecompressSized(data, uncompressedLen); err == nil {
		return out, nil
	}

	return DecompressFastLZSized(data, uncompressedLen)
}

// DecompressDoubleLZ4 reverses hierarchy kind 7's double LZ4 block
// encoding: the payload was LZ4-compressed, then LZ4-compressed again.
// innerLen is the length of the once-decompressed (still LZ4-compressed)
// intermediate buffer, and outerLen is the final uncompressed length.
func DecompressDoubleLZ4(data []byte, innerLen, outerLen int) ([]byte, error) {
	lz4d := NewLZ4Decompressor()

	once, err := lz4d.DecompressSized(data, innerLen)
	if err != nil {
		return nil, err
	}

	return lz4d.DecompressSized(once, outerLen)
}
