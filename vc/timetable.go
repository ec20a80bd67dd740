package vc

import (
	"github.com/TheZoq2/fst-native/compress"
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/internal/leb128"
)

// parseTimeTable decodes a value-change block's time table: a
// length-prefixed, possibly compressed run of unsigned LEB128 deltas that
// accumulate into the absolute tick values waveform records reference by
// index.
func parseTimeTable(payload []byte, offset int) ([]uint64, int, error) {
	uncompressedLen, offset, err := leb128.ReadUvarint(payload, offset)
	if err != nil {
		return nil, offset, err
	}

	compressedLen, offset, err := leb128.ReadUvarint(payload, offset)
	if err != nil {
		return nil, offset, err
	}

	count, offset, err := leb128.ReadUvarint(payload, offset)
	if err != nil {
		return nil, offset, err
	}

	if compressedLen > uint64(len(payload)-offset) {
		return nil, offset, errs.ErrUnexpectedEOF
	}

	compressed := payload[offset : offset+int(compressedLen)]
	offset += int(compressedLen)

	raw, err := compress.DecompressRegion(compressed, int(uncompressedLen))
	if err != nil {
		return nil, offset, err
	}

	// Every delta occupies at least one byte, so a count larger than the
	// decompressed region can never be satisfied.
	if count > uint64(len(raw)) {
		return nil, offset, errs.ErrCorruptBlock
	}

	times := make([]uint64, count)

	var abs uint64
	pos := 0

	for i := uint64(0); i < count; i++ {
		delta, next, err := leb128.ReadUvarint(raw, pos)
		if err != nil {
			return nil, offset, errs.ErrCorruptBlock
		}

		abs += delta
		times[i] = abs
		pos = next
	}

	return times, offset, nil
}
