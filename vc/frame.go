package vc

import (
	"math"

	"github.com/TheZoq2/fst-native/compress"
	"github.com/TheZoq2/fst-native/endian"
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/internal/bitio"
	"github.com/TheZoq2/fst-native/internal/leb128"
)

// frame holds a value-change block's decompressed initial-values region:
// one packed record per active handle, in handle order starting at handle
// 1, laid out back-to-back with no padding.
//
// Each bit-vector handle's record is nine-state nibble-packed
// (bitio.NibbleByteLen(bits) bytes); each real handle's record is an
// 8-byte big-endian IEEE-754 double. The section format gives no explicit
// per-handle length table for the frame region — record boundaries are
// derived purely from the width table, the same way waveform record
// boundaries are derived from the chain table's offsets.
type frame struct {
	data      []byte
	maxHandle uint64
}

// parseFrame decodes the frame sub-region starting at offset, returning the
// parsed frame and the offset of the first byte after it.
func parseFrame(payload []byte, offset int) (frame, int, error) {
	uncompressedLen, offset, err := leb128.ReadUvarint(payload, offset)
	if err != nil {
		return frame{}, offset, err
	}

	compressedLen, offset, err := leb128.ReadUvarint(payload, offset)
	if err != nil {
		return frame{}, offset, err
	}

	maxHandle, offset, err := leb128.ReadUvarint(payload, offset)
	if err != nil {
		return frame{}, offset, err
	}

	if compressedLen > uint64(len(payload)-offset) {
		return frame{}, offset, errs.ErrUnexpectedEOF
	}

	compressed := payload[offset : offset+int(compressedLen)]
	offset += int(compressedLen)

	raw, err := compress.DecompressRegion(compressed, int(uncompressedLen))
	if err != nil {
		return frame{}, offset, err
	}

	return frame{data: raw, maxHandle: maxHandle}, offset, nil
}

// frameRecordLen returns the number of frame bytes handle w occupies.
func frameRecordLen(w HandleWidth) int {
	if w.IsReal {
		return 8
	}

	return bitio.NibbleByteLen(int(w.Bits))
}

// valueFor decodes the frame record for handle, returning ok=false if
// handle is outside the frame's active range.
func (f frame) valueFor(handle uint64, widths WidthTable) (Value, bool, error) {
	if handle == 0 || handle > f.maxHandle {
		return Value{}, false, nil
	}

	pos := 0
	for h := uint64(1); h < handle; h++ {
		pos += frameRecordLen(widths.Width(h))
	}

	w := widths.Width(handle)
	recLen := frameRecordLen(w)

	if pos+recLen > len(f.data) {
		return Value{}, false, errs.ErrCorruptBlock
	}

	rec := f.data[pos : pos+recLen]

	if w.IsReal {
		bits := endian.GetBigEndianEngine().Uint64(rec)
		return Value{Kind: KindReal, Real: math.Float64frombits(bits)}, true, nil
	}

	s, err := bitio.UnpackNineState(rec, int(w.Bits))
	if err != nil {
		return Value{}, false, err
	}

	return Value{Kind: KindString, Str: s}, true, nil
}

// isUnknownFrame reports whether s is entirely the nine-state "unknown"
// character, which a first-block frame value suppresses rather than
// emitting as an event.
func isUnknownFrame(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != 'x' {
			return false
		}
	}

	return len(s) > 0
}
