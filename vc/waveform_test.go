package vc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheZoq2/fst-native/errs"
)

func TestDecodeRecordRLETwoState(t *testing.T) {
	// flag = (3<<1)|1: three RLE events of a 4-bit vector, one packed byte
	// each, landing on consecutive time-table indices 0, 1, 2.
	rec := []byte{0x07, 0b0000_1010, 0b0000_0101, 0b0000_1111}

	events, err := decodeRecord(rec, HandleWidth{Bits: 4})
	require.NoError(t, err)
	require.Len(t, events, 3)

	for i, ev := range events {
		require.Equal(t, int64(i), ev.timeIdx)
		require.True(t, ev.twoState)
	}

	v, err := decodeValue(events[0], HandleWidth{Bits: 4})
	require.NoError(t, err)
	require.Equal(t, "1010", v.Str)

	v, err = decodeValue(events[2], HandleWidth{Bits: 4})
	require.NoError(t, err)
	require.Equal(t, "1111", v.Str)
}

func TestDecodeRecordDeltaNineState(t *testing.T) {
	// flag 0: delta-coded. Two events on a 2-bit vector: index deltas 1 and
	// 2, each followed by one nibble-packed byte.
	rec := []byte{
		0x00,
		0x01, 0x23, // delta 1 -> index 0, nibbles x/z
		0x02, 0x01, // delta 2 -> index 2, nibbles 0/1
	}

	events, err := decodeRecord(rec, HandleWidth{Bits: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, int64(0), events[0].timeIdx)
	require.Equal(t, int64(2), events[1].timeIdx)

	v, err := decodeValue(events[0], HandleWidth{Bits: 2})
	require.NoError(t, err)
	require.Equal(t, KindString, v.Kind)
	require.Equal(t, "xz", v.Str)

	v, err = decodeValue(events[1], HandleWidth{Bits: 2})
	require.NoError(t, err)
	require.Equal(t, "01", v.Str)
}

func TestDecodeRecordDeltaReal(t *testing.T) {
	rec := append([]byte{0x00, 0x01}, float64BE(2.5)...)

	events, err := decodeRecord(rec, HandleWidth{IsReal: true})
	require.NoError(t, err)
	require.Len(t, events, 1)

	v, err := decodeValue(events[0], HandleWidth{IsReal: true})
	require.NoError(t, err)
	require.Equal(t, KindReal, v.Kind)
	require.InDelta(t, 2.5, v.Real, 1e-9)
}

func TestDecodeRecordEmpty(t *testing.T) {
	_, err := decodeRecord(nil, HandleWidth{Bits: 1})
	require.ErrorIs(t, err, errs.ErrCorruptBlock)
}

func TestDecodeRecordRLETruncated(t *testing.T) {
	// Claims two events of one byte each but carries only one.
	rec := []byte{0x05, 0x01}

	_, err := decodeRecord(rec, HandleWidth{Bits: 1})
	require.ErrorIs(t, err, errs.ErrCorruptBlock)
}

func TestDecodeRecordDeltaTruncatedValue(t *testing.T) {
	// Delta present, but the 8-byte double that should follow is cut short.
	rec := []byte{0x00, 0x01, 0xAA, 0xBB}

	_, err := decodeRecord(rec, HandleWidth{IsReal: true})
	require.ErrorIs(t, err, errs.ErrCorruptBlock)
}
