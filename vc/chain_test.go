package vc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheZoq2/fst-native/errs"
)

func TestParseChainTableAbsoluteAndDelta(t *testing.T) {
	// Three handles: an absolute entry at 4, a no-change entry, and a delta
	// of 6 off the previous non-zero entry, then the sentinel at 16.
	var data []byte
	data = appendUvarintVC(data, (4<<1)|1) // handle 1: absolute 4
	data = appendUvarintVC(data, 0)        // handle 2: no change
	data = appendUvarintVC(data, 6<<1)     // handle 3: delta 6 -> 10
	data = appendUvarintVC(data, (16<<1)|1)

	ct, next, err := parseChainTable(data, 0, 3, 16)
	require.NoError(t, err)
	require.Equal(t, len(data), next)

	require.Equal(t, []int64{4, -1, 10}, ct.offsets)
	require.Equal(t, int64(16), ct.sentinel)
}

func TestParseChainTableRecordBounds(t *testing.T) {
	var data []byte
	data = appendUvarintVC(data, (0<<1)|1)
	data = appendUvarintVC(data, 0)
	data = appendUvarintVC(data, (10<<1)|1)
	data = appendUvarintVC(data, (16<<1)|1)

	ct, _, err := parseChainTable(data, 0, 3, 16)
	require.NoError(t, err)

	// Handle 1's record runs up to handle 3's offset: handle 2 had no
	// change, so it contributes no boundary.
	start, end, ok := ct.recordBounds(1)
	require.True(t, ok)
	require.Equal(t, int64(0), start)
	require.Equal(t, int64(10), end)

	_, _, ok = ct.recordBounds(2)
	require.False(t, ok)

	// The last record ends at the sentinel.
	start, end, ok = ct.recordBounds(3)
	require.True(t, ok)
	require.Equal(t, int64(10), start)
	require.Equal(t, int64(16), end)

	_, _, ok = ct.recordBounds(0)
	require.False(t, ok)
	_, _, ok = ct.recordBounds(4)
	require.False(t, ok)
}

func TestParseChainTableSentinelMismatch(t *testing.T) {
	var data []byte
	data = appendUvarintVC(data, (0<<1)|1)
	data = appendUvarintVC(data, (5<<1)|1) // sentinel resolves to 5, not 16

	_, _, err := parseChainTable(data, 0, 1, 16)
	require.ErrorIs(t, err, errs.ErrCorruptBlock)
}

func TestParseChainTableTruncated(t *testing.T) {
	var data []byte
	data = appendUvarintVC(data, (0<<1)|1)
	// The second handle's entry and the sentinel are missing entirely.

	_, _, err := parseChainTable(data, 0, 2, 16)
	require.ErrorIs(t, err, errs.ErrCorruptBlock)
}
