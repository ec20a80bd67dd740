// Package section decodes the top-level structure of an FST file: the flat
// sequence of kind-tagged sections (Scan), the fixed-layout header
// (Header), and the per-handle bit-width geometry table (Geometry).
package section

import (
	"bytes"
	"strings"

	"github.com/TheZoq2/fst-native/endian"
	"github.com/TheZoq2/fst-native/errs"
)

// endianMarker is a fixed sentinel bit pattern a conforming writer stores
// in the header so a reader can confirm the file's fixed-width integers
// are laid out big-endian. It is never interpreted as a float.
const endianMarker uint64 = 0x4011800000000000

// headerPayloadLen is the fixed byte length of the header section's
// payload (everything after the kind byte and the section length):
// two u64 time bounds, one f64 marker, a u64 memory estimate, three u64
// counts, one u64 section count, one i8 timescale exponent, a 128-byte
// version field, a 119-byte date field, one u8 file type, and one i64
// timezero.
const headerPayloadLen = 8 + 8 + 8 + 8 + 8 + 8 + 8 + 8 + 1 + 128 + 119 + 1 + 8

// FileType identifies which simulation artifact the file records.
type FileType uint8

const (
	FileTypeVerilog     FileType = 0
	FileTypeVHDL        FileType = 1
	FileTypeVerilogVHDL FileType = 2
)

// Header is the decoded fixed-layout header section.
type Header struct {
	StartTime               uint64
	EndTime                 uint64
	WriterMemUse            uint64
	ScopeCount              uint64
	VarCount                uint64
	MaxHandle               uint64
	ValueChangeSectionCount uint64
	TimescaleExponent       int8
	Version                 string
	Date                    string
	FileType                FileType
	TimeZero                int64
}

// ParseHeader decodes a header section's payload (the bytes after the kind
// byte and the big-endian section length). It fails with
// errs.ErrCorruptHeader if the payload is short or the endian marker does
// not decode to the canonical constant.
func ParseHeader(payload []byte) (Header, error) {
	if len(payload) < headerPayloadLen {
		return Header{}, errs.ErrCorruptHeader
	}

	e := endian.GetBigEndianEngine()

	var h Header
	off := 0

	h.StartTime = e.Uint64(payload[off:])
	off += 8
	h.EndTime = e.Uint64(payload[off:])
	off += 8

	marker := e.Uint64(payload[off:])
	off += 8
	if marker != endianMarker {
		return Header{}, errs.ErrCorruptHeader
	}

	h.WriterMemUse = e.Uint64(payload[off:])
	off += 8
	h.ScopeCount = e.Uint64(payload[off:])
	off += 8
	h.VarCount = e.Uint64(payload[off:])
	off += 8
	h.MaxHandle = e.Uint64(payload[off:])
	off += 8
	h.ValueChangeSectionCount = e.Uint64(payload[off:])
	off += 8

	h.TimescaleExponent = int8(payload[off])
	off++

	h.Version = trimCString(payload[off : off+128])
	off += 128

	h.Date = trimCString(payload[off : off+119])
	off += 119

	h.FileType = FileType(payload[off])
	off++

	h.TimeZero = int64(e.Uint64(payload[off:]))

	return h, nil
}

// trimCString truncates field at its first NUL byte (if any) and trims
// trailing whitespace.
func trimCString(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}

	return strings.TrimRight(string(field), " \t\r\n\x00")
}
