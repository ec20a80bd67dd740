package vc

import (
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/internal/leb128"
)

// chainTable resolves each active handle to the byte range of its waveform
// record, whether it came from an implicit chain (kind 1/5) or an explicit
// position table (kind 8). The format gives kind 8's position table no
// different an encoding than kind 1/5's implicit chain, so both resolve
// through parseChainTable.
type chainTable struct {
	// offsets[h-1] is handle h's resolved absolute offset into the
	// waveform region, or -1 if the handle had no change in this block.
	offsets []int64
	// sentinel is the resolved offset of the trailing entry, which must
	// equal the waveform region's length.
	sentinel int64
}

// parseChainTable decodes maxHandle chain entries plus one trailing
// sentinel entry starting at offset, returning the table and the offset of
// the first byte after it.
//
// Each entry is a varint whose low bit is an absolute/delta flag (1 =
// absolute, 0 = delta from the previous non-zero entry) and whose
// remaining bits, once shifted down, are the offset or delta value. A raw
// entry of exactly zero means the handle had no change in this block.
func parseChainTable(data []byte, offset int, maxHandle uint64, waveformLen int) (chainTable, int, error) {
	ct := chainTable{offsets: make([]int64, maxHandle)}

	var last int64

	for h := uint64(0); h < maxHandle; h++ {
		raw, next, err := leb128.ReadUvarint(data, offset)
		if err != nil {
			return chainTable{}, offset, errs.ErrCorruptBlock
		}
		offset = next

		if raw == 0 {
			ct.offsets[h] = -1
			continue
		}

		abs := resolveChainOffset(raw, last)
		ct.offsets[h] = abs
		last = abs
	}

	raw, next, err := leb128.ReadUvarint(data, offset)
	if err != nil {
		return chainTable{}, offset, errs.ErrCorruptBlock
	}
	offset = next

	ct.sentinel = resolveChainOffset(raw, last)
	if ct.sentinel != int64(waveformLen) {
		return chainTable{}, offset, errs.ErrCorruptBlock
	}

	return ct, offset, nil
}

func resolveChainOffset(raw uint64, previous int64) int64 {
	delta := int64(raw >> 1)
	if raw&1 == 1 {
		return delta
	}

	return previous + delta
}

// recordBounds returns the [start, end) byte range of handle's waveform
// record within the waveform region, and ok=false if handle had no change
// in this block. end is either the next handle (in ascending order) that
// did have a change, or the table's trailing sentinel if handle's record
// is the last one in the region.
func (ct chainTable) recordBounds(handle uint64) (start, end int64, ok bool) {
	idx := handle - 1
	if handle == 0 || idx >= uint64(len(ct.offsets)) {
		return 0, 0, false
	}

	start = ct.offsets[idx]
	if start < 0 {
		return 0, 0, false
	}

	end = ct.sentinel
	for i := idx + 1; i < uint64(len(ct.offsets)); i++ {
		if ct.offsets[i] >= 0 {
			end = ct.offsets[i]
			break
		}
	}

	return start, end, true
}
