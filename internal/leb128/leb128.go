// Package leb128 provides LEB128 variable-length integer primitives for the
// hierarchy and value-change payloads of an FST file.
//
// FST's own fixed-width integers are big-endian (see the endian package),
// but every length, handle, and delta embedded inside a hierarchy entry or a
// value-change block is LEB128-encoded, which is little-endian by
// definition. Go's standard library encoding/binary.Uvarint already speaks
// unsigned LEB128, so this package only adds what the standard library is
// missing: bounds-checked reads that return errs.ErrUnexpectedEOF (or
// errs.ErrCorruptHierarchy for an over-long signed value or an
// unterminated C-string) instead of panicking or returning an ambiguous
// negative byte count, and the signed (two's-complement, non-zigzag) LEB128
// variant that DWARF/WASM-style formats such as FST use for signed fields.
package leb128

import (
	"encoding/binary"

	"github.com/TheZoq2/fst-native/errs"
)

// ReadUvarint reads an unsigned LEB128 value from data starting at offset.
//
// Returns the decoded value and the offset of the first byte after it.
func ReadUvarint(data []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset > len(data) {
		return 0, offset, errs.ErrUnexpectedEOF
	}

	val, n := binary.Uvarint(data[offset:])
	if n <= 0 {
		return 0, offset, errs.ErrUnexpectedEOF
	}

	return val, offset + n, nil
}

// ReadSvarint reads a signed LEB128 value (two's-complement, sign bit
// carried in the final byte — not zigzag) from data starting at offset.
func ReadSvarint(data []byte, offset int) (int64, int, error) {
	var result int64
	var shift uint
	pos := offset

	for {
		if pos >= len(data) {
			return 0, offset, errs.ErrUnexpectedEOF
		}

		b := data[pos]
		pos++

		result |= int64(b&0x7f) << shift
		shift += 7

		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}

			return result, pos, nil
		}

		if shift >= 64 {
			return 0, offset, errs.ErrCorruptHierarchy
		}
	}
}

// SkipUvarint advances past an unsigned LEB128 value without materializing
// it, returning the offset of the first byte after it.
func SkipUvarint(data []byte, offset int) (int, error) {
	_, next, err := ReadUvarint(data, offset)
	return next, err
}

// ReadCString reads a NUL-terminated string starting at offset and returns
// it (without the terminator) along with the offset of the first byte after
// the terminator.
func ReadCString(data []byte, offset int) (string, int, error) {
	if offset < 0 || offset > len(data) {
		return "", offset, errs.ErrUnexpectedEOF
	}

	for i := offset; i < len(data); i++ {
		if data[i] == 0 {
			return string(data[offset:i]), i + 1, nil
		}
	}

	return "", offset, errs.ErrCorruptHierarchy
}
