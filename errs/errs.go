// Package errs defines the sentinel errors returned by the fst-native reader.
//
// Every error a caller can usefully branch on is declared here as a package-level
// value so callers can compare with errors.Is instead of parsing messages.
package errs

import "errors"

var (
	// ErrUnexpectedEOF is returned when a section's declared length runs past
	// the end of the underlying byte source.
	ErrUnexpectedEOF = errors.New("fst: unexpected end of file")

	// ErrUnknownSectionKind is returned when the demultiplexer encounters a
	// section kind byte it does not recognize.
	ErrUnknownSectionKind = errors.New("fst: unknown section kind")

	// ErrMissingHeader is returned when a non-header section is encountered
	// before the header section has been read.
	ErrMissingHeader = errors.New("fst: section encountered before header")

	// ErrCorruptHeader is returned when the header's endian marker or a fixed
	// field fails to decode.
	ErrCorruptHeader = errors.New("fst: corrupt header section")

	// ErrCorruptHierarchy is returned when the hierarchy payload contains an
	// unterminated C-string, a truncated LEB128 value, or an unbalanced scope.
	ErrCorruptHierarchy = errors.New("fst: corrupt hierarchy section")

	// ErrCorruptBlock is returned when a value-change block's chain table,
	// time table, or waveform region is malformed.
	ErrCorruptBlock = errors.New("fst: corrupt value-change block")

	// ErrDecompressionFailed is returned when zlib, LZ4, or FastLZ rejects a
	// compressed region.
	ErrDecompressionFailed = errors.New("fst: decompression failed")

	// ErrAlreadyConsumed is returned by ReadHierarchy when called a second
	// time on the same Reader.
	ErrAlreadyConsumed = errors.New("fst: hierarchy already consumed")

	// ErrUnknownHierarchyTag names a hierarchy entry lead byte that is
	// neither a recognized tag nor a recognized variable type. The hierarchy
	// parser does not return it: every lead byte outside the four tags is
	// read as a variable type, and an unrecognized one is reported as
	// ErrUnknownVarType.
	ErrUnknownHierarchyTag = errors.New("fst: unknown hierarchy entry tag")

	// ErrUnknownVarType is returned for a Var entry whose type byte is outside
	// the set of known variable types.
	ErrUnknownVarType = errors.New("fst: unknown variable type")

	// ErrUnknownScopeType is returned for a ScopeBegin entry whose type byte
	// is outside the set of known scope types.
	ErrUnknownScopeType = errors.New("fst: unknown scope type")

	// ErrUnknownAttributeKind is returned for an AttributeBegin entry whose
	// MISC subtype is outside the set of known subtypes.
	ErrUnknownAttributeKind = errors.New("fst: unknown attribute kind")

	// ErrUnsupported is returned when a decompressor is requested for a
	// compression method or section kind that has none. A blackout section
	// (section kind 2) does not produce it: the scanner skips that section.
	ErrUnsupported = errors.New("fst: unsupported feature")
)
