package hierarchy

import (
	"github.com/TheZoq2/fst-native/compress"
	"github.com/TheZoq2/fst-native/endian"
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/format"
)

// Decompress turns a raw hierarchy section payload (as read straight off
// the section's Ref) into the contiguous, fully decompressed buffer Parse
// expects. Kind 7 stacks LZ4 compression on top of itself, so decompressing
// it takes two passes.
//
// Every hierarchy kind's payload leads with one or more big-endian u64
// length prefixes ahead of the compressed bytes:
//   - kind 4 (gzip): uncompressed_len, then the gzip stream (self-describing;
//     the length is not needed to decompress it, only to match the other
//     kinds' layout).
//   - kind 6 (LZ4): uncompressed_len, then one LZ4 block.
//   - kind 7 (double LZ4): final_uncompressed_len, intermediate_len (the
//     once-decompressed buffer's length, which is the inner frame's
//     compressed length), then the doubly-compressed LZ4 bytes.
func Decompress(kind format.SectionKind, payload []byte) ([]byte, error) {
	e := endian.GetBigEndianEngine()

	switch kind {
	case format.SectionHierarchy, format.SectionHierarchyLZ4:
		if len(payload) < 8 {
			return nil, errs.ErrCorruptHierarchy
		}

		uncompressedLen := e.Uint64(payload[0:8])
		rest := payload[8:]

		d, err := compress.CreateHierarchyDecompressor(kind)
		if err != nil {
			return nil, err
		}

		sized, ok := d.(compress.SizedDecompressor)
		if !ok {
			return d.Decompress(rest)
		}

		return sized.DecompressSized(rest, int(uncompressedLen))

	case format.SectionHierarchyLZ4Dup:
		if len(payload) < 16 {
			return nil, errs.ErrCorruptHierarchy
		}

		finalLen := e.Uint64(payload[0:8])
		intermediateLen := e.Uint64(payload[8:16])
		rest := payload[16:]

		out, err := compress.DecompressDoubleLZ4(rest, int(intermediateLen), int(finalLen))
		if err != nil {
			return nil, err
		}

		return out, nil

	default:
		return nil, errs.ErrUnsupported
	}
}
