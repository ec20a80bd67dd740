package section

import (
	"errors"
	"fmt"
	"io"

	"github.com/TheZoq2/fst-native/endian"
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/format"
)

// Source is the seekable byte source a Reader is constructed over.
// io.ReaderAt already models exactly that: positioned, non-sequential
// reads with no implicit cursor, which lets the demultiplexer jump
// straight to each section's payload without ever materializing sections
// it isn't interested in.
type Source interface {
	io.ReaderAt
	// Size returns the total length of the source in bytes.
	Size() int64
}

// BytesSource adapts an in-memory byte slice to Source.
type BytesSource []byte

// ReadAt implements io.ReaderAt.
func (s BytesSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(s)) {
		return 0, io.EOF
	}

	n := copy(p, s[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

// Size implements Source.
func (s BytesSource) Size() int64 {
	return int64(len(s))
}

// Ref locates one section's payload within the source: the bytes after its
// kind byte and big-endian length, not including either.
type Ref struct {
	Kind   format.SectionKind
	Offset int64
	Length int64
}

// ReadPayload materializes the section's payload into a freshly allocated
// buffer.
func (r Ref) ReadPayload(src Source) ([]byte, error) {
	buf := make([]byte, r.Length)
	if err := readAt(src, buf, r.Offset); err != nil {
		return nil, err
	}

	return buf, nil
}

// readAt fills buf from src at off, mapping EOF conditions to the format's
// own sentinel and passing any other source failure through so callers can
// still see the underlying I/O error.
func readAt(src Source, buf []byte, off int64) error {
	if _, err := src.ReadAt(buf, off); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errs.ErrUnexpectedEOF
		}

		return fmt.Errorf("fst: read at offset %d: %w", off, err)
	}

	return nil
}

// Index is the result of scanning a file's flat section list once: the
// decoded header, the geometry table (if present), the hierarchy section's
// location, and every value-change section's location in file order.
type Index struct {
	Header       Header
	Geometry     Geometry
	HasGeometry  bool
	Hierarchy    Ref
	HasHierarchy bool
	ValueChanges []Ref
}

// Scan walks the flat, kind-tagged section list once, decoding the header
// and geometry sections eagerly and recording the location of the
// hierarchy section and every value-change section for later, on-demand
// reading.
//
// It fails with errs.ErrUnexpectedEOF when a section's declared length
// extends past the end of src, errs.ErrUnknownSectionKind on an
// unrecognized kind byte, and errs.ErrMissingHeader if any non-header
// section is encountered before the header section.
func Scan(src Source) (Index, error) {
	var idx Index

	size := src.Size()
	engine := endian.GetBigEndianEngine()

	var pos int64
	sawHeader := false

	for pos < size {
		if pos+9 > size {
			return Index{}, errs.ErrUnexpectedEOF
		}

		head := make([]byte, 9)
		if err := readAt(src, head, pos); err != nil {
			return Index{}, err
		}

		kind := format.SectionKind(head[0])
		length := int64(engine.Uint64(head[1:9]))
		payloadOff := pos + 9

		if length < 0 || payloadOff+length > size {
			return Index{}, errs.ErrUnexpectedEOF
		}

		switch {
		case kind == format.SectionHeader:
			buf := make([]byte, length)
			if err := readAt(src, buf, payloadOff); err != nil {
				return Index{}, err
			}

			h, err := ParseHeader(buf)
			if err != nil {
				return Index{}, err
			}

			idx.Header = h
			sawHeader = true

		case kind == format.SectionGeometry:
			if !sawHeader {
				return Index{}, errs.ErrMissingHeader
			}

			buf := make([]byte, length)
			if err := readAt(src, buf, payloadOff); err != nil {
				return Index{}, err
			}

			g, err := ParseGeometry(buf)
			if err != nil {
				return Index{}, err
			}

			idx.Geometry = g
			idx.HasGeometry = true

		case kind == format.SectionBlackout:
			if !sawHeader {
				return Index{}, errs.ErrMissingHeader
			}
			// Blackout is out of scope; the section is skipped rather than
			// decoded, but its bounds have already been validated above.

		case kind.IsHierarchy():
			if !sawHeader {
				return Index{}, errs.ErrMissingHeader
			}

			idx.Hierarchy = Ref{Kind: kind, Offset: payloadOff, Length: length}
			idx.HasHierarchy = true

		case kind.IsValueChange():
			if !sawHeader {
				return Index{}, errs.ErrMissingHeader
			}

			idx.ValueChanges = append(idx.ValueChanges, Ref{Kind: kind, Offset: payloadOff, Length: length})

		default:
			return Index{}, errs.ErrUnknownSectionKind
		}

		pos = payloadOff + length
	}

	if !sawHeader {
		return Index{}, errs.ErrMissingHeader
	}

	return idx, nil
}
