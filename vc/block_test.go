package vc

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheZoq2/fst-native/errs"
)

func appendUvarintVC(buf []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)

	return append(buf, tmp[:n]...)
}

func float64BE(f float64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))

	return buf[:]
}

// buildBlock assembles one synthetic value-change block payload with two
// handles: handle 1 is a 1-bit bit-vector with a single RLE 2-state event,
// handle 2 is real-valued with a single delta-coded event. Both events land
// on the block's only time-table entry.
func buildBlock(t *testing.T) []byte {
	t.Helper()

	// Frame: handle1 nine-state nibble for '1' (high nibble of the byte),
	// handle2 a real value.
	frameData := []byte{0x10}
	frameData = append(frameData, float64BE(3.25)...)

	// Waveform region: handle1's RLE 2-state record (flag=3 -> count=1,
	// bit0 set), then handle2's delta-coded record (flag=0, delta=1, then
	// an 8-byte double).
	h1Record := []byte{0x03, 0x01}
	h2Record := append([]byte{0x00, 0x01}, float64BE(7.5)...)
	waveformRegion := append(append([]byte{}, h1Record...), h2Record...)

	chainTableBytes := []byte{
		byte((0 << 1) | 1),                           // handle1: absolute offset 0
		byte((uint64(len(h1Record)) << 1) | 1),       // handle2: absolute offset len(h1Record)
		byte((uint64(len(waveformRegion)) << 1) | 1), // sentinel
	}

	timeTablePayload := []byte{100} // single LEB128 delta: absolute time 100

	var buf []byte
	var timeBuf [8]byte

	binary.BigEndian.PutUint64(timeBuf[:], 100) // start_time
	buf = append(buf, timeBuf[:]...)
	binary.BigEndian.PutUint64(timeBuf[:], 100) // end_time
	buf = append(buf, timeBuf[:]...)
	binary.BigEndian.PutUint64(timeBuf[:], 0) // mem_used_by_writer
	buf = append(buf, timeBuf[:]...)

	// Frame sub-region: uncompressed_len, compressed_len (equal -> stored
	// as-is), max_handle_in_block, then the raw bytes.
	buf = appendUvarintVC(buf, uint64(len(frameData)))
	buf = appendUvarintVC(buf, uint64(len(frameData)))
	buf = appendUvarintVC(buf, 2)
	buf = append(buf, frameData...)

	// Waveform region length, then the raw bytes.
	buf = appendUvarintVC(buf, uint64(len(waveformRegion)))
	buf = append(buf, waveformRegion...)

	// Chain table: one entry per handle plus the trailing sentinel.
	buf = append(buf, chainTableBytes...)

	// Time table: uncompressed_len, compressed_len (equal), count, bytes.
	buf = appendUvarintVC(buf, uint64(len(timeTablePayload)))
	buf = appendUvarintVC(buf, uint64(len(timeTablePayload)))
	buf = appendUvarintVC(buf, 1)
	buf = append(buf, timeTablePayload...)

	return buf
}

func testWidths() MapWidthTable {
	return MapWidthTable{
		1: {Bits: 1},
		2: {IsReal: true},
	}
}

func TestDecodeBlockFirstBlockEmitsFrameAndWaveformEvents(t *testing.T) {
	payload := buildBlock(t)

	events, err := DecodeBlock(payload, testWidths(), true)
	require.NoError(t, err)

	require.Len(t, events, 4)

	for _, ev := range events {
		require.Equal(t, uint64(100), ev.Time)
	}

	// Ascending handle order within the same time: handle1's two events
	// (frame then waveform, insertion order preserved by the stable sort)
	// come before handle2's two events.
	require.Equal(t, uint64(1), events[0].Handle)
	require.Equal(t, uint64(1), events[1].Handle)
	require.Equal(t, uint64(2), events[2].Handle)
	require.Equal(t, uint64(2), events[3].Handle)

	require.Equal(t, KindString, events[0].Value.Kind)
	require.Equal(t, "1", events[0].Value.Str)
	require.Equal(t, KindString, events[1].Value.Kind)
	require.Equal(t, "1", events[1].Value.Str)

	require.Equal(t, KindReal, events[2].Value.Kind)
	require.InDelta(t, 3.25, events[2].Value.Real, 1e-9)
	require.Equal(t, KindReal, events[3].Value.Kind)
	require.InDelta(t, 7.5, events[3].Value.Real, 1e-9)
}

func TestDecodeBlockNonFirstBlockSuppressesFrameEvents(t *testing.T) {
	payload := buildBlock(t)

	events, err := DecodeBlock(payload, testWidths(), false)
	require.NoError(t, err)

	require.Len(t, events, 2)
	require.Equal(t, uint64(1), events[0].Handle)
	require.Equal(t, uint64(2), events[1].Handle)
}

func TestDecodeBlockUnknownFrameValueSuppressed(t *testing.T) {
	payload := buildBlock(t)
	// handle1's frame nibble currently encodes '1'; flip it to the
	// nine-state "unknown" nibble (2 -> 'x') to exercise suppression.
	frameOffset := blockPrefixLen + 3 // past the three LEB length-ish bytes (uLen, cLen, maxHandle each 1 byte here)
	payload[frameOffset] = 0x20

	events, err := DecodeBlock(payload, testWidths(), true)
	require.NoError(t, err)

	for _, ev := range events {
		if ev.Handle == 1 && ev.Time == 100 {
			require.NotEqual(t, "x", ev.Value.Str, "only the frame event should ever be suppressed, not the waveform one")
		}
	}

	// 3 events remain: handle2's frame event, plus both waveform events.
	require.Len(t, events, 3)
}

func TestDecodeBlockOrdersByTimeThenHandle(t *testing.T) {
	// Two 1-bit handles. Handle 1 changes at both time-table entries,
	// handle 2 only at the first; the decoder walks handle 1's whole
	// record before handle 2's, so ascending (time, handle) order only
	// holds if DecodeBlock re-sorts its emission.
	h1Record := []byte{0x00, 0x01, 0x00, 0x01, 0x10}
	h2Record := []byte{0x00, 0x01, 0x10}
	waveformRegion := append(append([]byte{}, h1Record...), h2Record...)

	frameData := []byte{0x20, 0x20}

	var buf []byte
	var u64 [8]byte

	binary.BigEndian.PutUint64(u64[:], 5)
	buf = append(buf, u64[:]...)
	binary.BigEndian.PutUint64(u64[:], 10)
	buf = append(buf, u64[:]...)
	binary.BigEndian.PutUint64(u64[:], 0)
	buf = append(buf, u64[:]...)

	buf = appendUvarintVC(buf, uint64(len(frameData)))
	buf = appendUvarintVC(buf, uint64(len(frameData)))
	buf = appendUvarintVC(buf, 2)
	buf = append(buf, frameData...)

	buf = appendUvarintVC(buf, uint64(len(waveformRegion)))
	buf = append(buf, waveformRegion...)

	buf = append(buf,
		byte((0<<1)|1),
		byte((uint64(len(h1Record))<<1)|1),
		byte((uint64(len(waveformRegion))<<1)|1),
	)

	timeTablePayload := []byte{5, 5}
	buf = appendUvarintVC(buf, uint64(len(timeTablePayload)))
	buf = appendUvarintVC(buf, uint64(len(timeTablePayload)))
	buf = appendUvarintVC(buf, 2)
	buf = append(buf, timeTablePayload...)

	widths := MapWidthTable{1: {Bits: 1}, 2: {Bits: 1}}

	events, err := DecodeBlock(buf, widths, false)
	require.NoError(t, err)
	require.Len(t, events, 3)

	require.Equal(t, uint64(5), events[0].Time)
	require.Equal(t, uint64(1), events[0].Handle)
	require.Equal(t, "0", events[0].Value.Str)

	require.Equal(t, uint64(5), events[1].Time)
	require.Equal(t, uint64(2), events[1].Handle)
	require.Equal(t, "1", events[1].Value.Str)

	require.Equal(t, uint64(10), events[2].Time)
	require.Equal(t, uint64(1), events[2].Handle)
	require.Equal(t, "1", events[2].Value.Str)
}

func TestDecodeBlockTruncatedFailsCorrupt(t *testing.T) {
	_, err := DecodeBlock([]byte{1, 2, 3}, testWidths(), true)
	require.ErrorIs(t, err, errs.ErrCorruptBlock)
}

func TestDecodeBlockChainSentinelMismatchFailsCorrupt(t *testing.T) {
	payload := buildBlock(t)

	// Layout: 24-byte prefix + 3-byte frame header + 9-byte frame data +
	// 1-byte waves length + 12-byte waveform region = offset 49, where the
	// chain table [handle1, handle2, sentinel] begins. Corrupt the
	// sentinel (offset 51) so it no longer resolves to the waveform
	// region's length.
	const sentinelOffset = 24 + 3 + 9 + 1 + 12 + 2
	require.Equal(t, byte((12<<1)|1), payload[sentinelOffset], "test assumption about chain table layout is stale")

	payload[sentinelOffset] = 0x7F

	_, err := DecodeBlock(payload, testWidths(), true)
	require.ErrorIs(t, err, errs.ErrCorruptBlock)
}
