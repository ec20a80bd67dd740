package leb128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadUvarint(t *testing.T) {
	// 300 encodes as 0xAC 0x02 in LEB128.
	data := []byte{0xAC, 0x02, 0xFF}

	val, next, err := ReadUvarint(data, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(300), val)
	require.Equal(t, 2, next)
}

func TestReadUvarintTruncated(t *testing.T) {
	data := []byte{0xAC}

	_, _, err := ReadUvarint(data, 0)
	require.Error(t, err)
}

func TestReadUvarintOffsetOutOfBounds(t *testing.T) {
	data := []byte{0x01}

	_, _, err := ReadUvarint(data, 5)
	require.Error(t, err)
}

func TestReadSvarintPositive(t *testing.T) {
	// 2 encodes as a single byte 0x02.
	data := []byte{0x02}

	val, next, err := ReadSvarint(data, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), val)
	require.Equal(t, 1, next)
}

func TestReadSvarintNegative(t *testing.T) {
	// -2 encodes as a single byte 0x7e under DWARF/WASM-style signed LEB128.
	data := []byte{0x7e}

	val, next, err := ReadSvarint(data, 0)
	require.NoError(t, err)
	require.Equal(t, int64(-2), val)
	require.Equal(t, 1, next)
}

func TestReadSvarintMultiByteNegative(t *testing.T) {
	// -129 encodes as 0xFF 0x7E.
	data := []byte{0xFF, 0x7E}

	val, next, err := ReadSvarint(data, 0)
	require.NoError(t, err)
	require.Equal(t, int64(-129), val)
	require.Equal(t, 2, next)
}

func TestReadSvarintTruncated(t *testing.T) {
	data := []byte{0xFF}

	_, _, err := ReadSvarint(data, 0)
	require.Error(t, err)
}

func TestReadCString(t *testing.T) {
	data := []byte("top\x00rest")

	s, next, err := ReadCString(data, 0)
	require.NoError(t, err)
	require.Equal(t, "top", s)
	require.Equal(t, 4, next)
}

func TestReadCStringUnterminated(t *testing.T) {
	data := []byte("no-terminator")

	_, _, err := ReadCString(data, 0)
	require.Error(t, err)
}

func TestSkipUvarint(t *testing.T) {
	data := []byte{0xAC, 0x02, 0x05}

	next, err := SkipUvarint(data, 0)
	require.NoError(t, err)
	require.Equal(t, 2, next)
}
