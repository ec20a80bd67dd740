package compress

import "github.com/TheZoq2/fst-native/errs"

// FastLZDecompressor decompresses FastLZ level-1 compressed buffers.
//
// FastLZ (Ariya Hidayat's public-domain LZ77 variant) is one of the
// compression schemes FST supports but has no maintained Go package, so
// the level-1 decoder is written out here: a small state machine walking
// the compressed byte stream, returning a sentinel error on any malformed
// control byte rather than panicking.
//
// Stream format: a sequence of opcodes. An opcode byte below 32 starts a
// literal run of (opcode+1) raw bytes. An opcode byte at or above 32 starts
// a back-reference: the top 3 bits give a length code (with a continuation
// byte when the 3-bit field saturates) and the low 5 bits give the high
// byte of a backward distance, completed by one more distance byte.
type FastLZDecompressor struct{}

var _ Decompressor = FastLZDecompressor{}

// NewFastLZDecompressor creates a new FastLZ decompressor.
func NewFastLZDecompressor() FastLZDecompressor {
	return FastLZDecompressor{}
}

// Decompress decompresses a FastLZ level-1 compressed buffer, growing its
// output buffer as needed.
func (FastLZDecompressor) Decompress(data []byte) ([]byte, error) {
	return DecompressFastLZSized(data, len(data)*3)
}

// DecompressFastLZSized decompresses a FastLZ level-1 compressed buffer,
// pre-allocating the output to the declared uncompressed length.
func DecompressFastLZSized(data []byte, uncompressedLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	outCap := uncompressedLen
	if outCap < len(data) {
		outCap = len(data)
	}
	out := make([]byte, 0, outCap)

	ip := 0
	ctrl := uint32(data[ip]) & 31
	ip++

	for {
		if ctrl >= 32 {
			length := (ctrl >> 5) - 1
			ofs := (ctrl & 31) << 8

			if length == 6 {
				if ip >= len(data) {
					return nil, errs.ErrDecompressionFailed
				}
				length += uint32(data[ip])
				ip++
			}

			if ip >= len(data) {
				return nil, errs.ErrDecompressionFailed
			}
			ofs += uint32(data[ip])
			ip++
			length++

			refPos := len(out) - int(ofs) - 1
			if refPos < 0 || refPos >= len(out) {
				return nil, errs.ErrDecompressionFailed
			}

			for i := uint32(0); i < length; i++ {
				out = append(out, out[refPos])
				refPos++
			}
		} else {
			runLen := int(ctrl) + 1
			if ip+runLen > len(data) {
				return nil, errs.ErrDecompressionFailed
			}

			out = append(out, data[ip:ip+runLen]...)
			ip += runLen
		}

		if ip >= len(data) {
			break
		}

		ctrl = uint32(data[ip])
		ip++
	}

	return out, nil
}
