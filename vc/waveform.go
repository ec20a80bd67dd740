package vc

import (
	"math"

	"github.com/TheZoq2/fst-native/endian"
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/internal/bitio"
	"github.com/TheZoq2/fst-native/internal/leb128"
)

// rawEvent is one still-packed waveform event: a time-table index and the
// raw value bytes, not yet unpacked into a Value.
type rawEvent struct {
	timeIdx  int64
	raw      []byte
	twoState bool
}

// decodeRecord decodes one handle's waveform record (the bytes between two
// consecutive chain table offsets) into its sequence of rawEvents.
//
// The record's leading byte selects its encoding for its whole length: low
// bit set means an RLE-packed run of 2-state events at consecutive
// time-table indices (flag>>1 gives the count); low bit clear means
// delta-coded events, each prefixed by a LEB128 time-table index advance.
// The time-table index cursor starts at -1 so that a first delta/advance of
// 1 lands on index 0.
func decodeRecord(rec []byte, w HandleWidth) ([]rawEvent, error) {
	if len(rec) == 0 {
		return nil, errs.ErrCorruptBlock
	}

	flag := rec[0]
	body := rec[1:]
	cursor := int64(-1)

	if flag&1 == 1 {
		count := int(flag >> 1)
		need := bitio.PackedByteLen(int(w.Bits))

		events := make([]rawEvent, 0, count)
		pos := 0

		for i := 0; i < count; i++ {
			if pos+need > len(body) {
				return nil, errs.ErrCorruptBlock
			}

			cursor++
			events = append(events, rawEvent{timeIdx: cursor, raw: body[pos : pos+need], twoState: true})
			pos += need
		}

		return events, nil
	}

	var valLen int
	if w.IsReal {
		valLen = 8
	} else {
		valLen = bitio.NibbleByteLen(int(w.Bits))
	}

	var events []rawEvent

	pos := 0
	for pos < len(body) {
		delta, next, err := leb128.ReadUvarint(body, pos)
		if err != nil {
			return nil, errs.ErrCorruptBlock
		}
		pos = next

		cursor += int64(delta)

		if pos+valLen > len(body) {
			return nil, errs.ErrCorruptBlock
		}

		events = append(events, rawEvent{timeIdx: cursor, raw: body[pos : pos+valLen]})
		pos += valLen
	}

	return events, nil
}

// decodeValue unpacks a rawEvent's raw bytes into a Value, given the
// handle's width.
func decodeValue(ev rawEvent, w HandleWidth) (Value, error) {
	if w.IsReal {
		if len(ev.raw) < 8 {
			return Value{}, errs.ErrCorruptBlock
		}

		bits := endian.GetBigEndianEngine().Uint64(ev.raw)

		return Value{Kind: KindReal, Real: math.Float64frombits(bits)}, nil
	}

	if ev.twoState {
		s, err := bitio.UnpackTwoState(ev.raw, int(w.Bits))
		if err != nil {
			return Value{}, err
		}

		return Value{Kind: KindString, Str: s}, nil
	}

	s, err := bitio.UnpackNineState(ev.raw, int(w.Bits))
	if err != nil {
		return Value{}, err
	}

	return Value{Kind: KindString, Str: s}, nil
}
