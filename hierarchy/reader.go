package hierarchy

import (
	"strconv"
	"strings"

	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/format"
	"github.com/TheZoq2/fst-native/internal/leb128"
)

const (
	leadAttributeBegin = 252
	leadAttributeEnd   = 253
	leadScopeBegin     = 254
	leadUpScope        = 255
)

// Visit is called once per hierarchy entry, in file order. Returning false
// stops parsing early without error.
type Visit func(Entry) bool

// Parse walks a fully decompressed hierarchy section payload, invoking
// visit for each entry.
//
// Handle assignment: a counter starts at 1; each Var
// entry either claims the next counter value (and increments it) or, when
// its alias_handle is non-zero, reuses that earlier handle and sets
// IsAlias. Parsing stops either at buffer end or the first time visit
// returns false.
//
// Fails with errs.ErrCorruptHierarchy on an unterminated C-string, a
// LEB128 value that runs past the end of the buffer, or an unbalanced
// scope (an UpScope with no open scope, or a scope still open when the
// buffer ends), errs.ErrUnknownScopeType
// on an unrecognized ScopeBegin type byte, errs.ErrUnknownVarType on an
// unrecognized Var lead byte, and errs.ErrUnknownAttributeKind on an
// unrecognized MISC attribute subtype.
func Parse(data []byte, visit Visit) error {
	offset := 0
	nextHandle := uint64(1)
	depth := 0

	for offset < len(data) {
		lead := data[offset]
		offset++

		var (
			entry Entry
			err   error
		)

		switch lead {
		case leadScopeBegin:
			entry, offset, err = parseScopeBegin(data, offset)
			depth++
		case leadUpScope:
			if depth == 0 {
				return errs.ErrCorruptHierarchy
			}
			depth--
			entry = UpScope{}
		case leadAttributeBegin:
			entry, offset, err = parseAttributeBegin(data, offset)
		case leadAttributeEnd:
			entry = AttributeEnd{}
		default:
			entry, offset, nextHandle, err = parseVar(data, offset, lead, nextHandle)
		}

		if err != nil {
			return err
		}

		if !visit(entry) {
			return nil
		}
	}

	if depth != 0 {
		return errs.ErrCorruptHierarchy
	}

	return nil
}

func parseScopeBegin(data []byte, offset int) (Entry, int, error) {
	if offset >= len(data) {
		return nil, offset, errs.ErrCorruptHierarchy
	}

	typByte := data[offset]
	offset++

	name, offset, err := leb128.ReadCString(data, offset)
	if err != nil {
		return nil, offset, err
	}

	component, offset, err := leb128.ReadCString(data, offset)
	if err != nil {
		return nil, offset, err
	}

	st := format.ScopeType(typByte)
	if !st.Valid() {
		return nil, offset, errs.ErrUnknownScopeType
	}

	return ScopeBegin{Name: name, Type: st, Component: component}, offset, nil
}

func parseAttributeBegin(data []byte, offset int) (Entry, int, error) {
	if offset+1 >= len(data) {
		return nil, offset, errs.ErrCorruptHierarchy
	}

	typByte := data[offset]
	offset++
	subtypeByte := data[offset]
	offset++

	name, offset, err := leb128.ReadCString(data, offset)
	if err != nil {
		return nil, offset, err
	}

	arg, offset, err := leb128.ReadUvarint(data, offset)
	if err != nil {
		return nil, offset, errs.ErrCorruptHierarchy
	}

	entry, err := decodeAttribute(format.AttrType(typByte), format.MiscType(subtypeByte), name, arg)
	if err != nil {
		return nil, offset, err
	}

	return entry, offset, nil
}

func decodeAttribute(typ format.AttrType, subtype format.MiscType, name string, arg uint64) (Entry, error) {
	if typ != format.AttrMisc {
		return AttributeBegin{Name: name}, nil
	}

	switch subtype {
	case format.MiscPathName:
		return PathName{ID: arg, Name: name}, nil

	case format.MiscSourceStem, format.MiscSourceIStem:
		pathID, _, err := leb128.ReadUvarint([]byte(name), 0)
		if err != nil {
			return nil, errs.ErrCorruptHierarchy
		}

		return SourceStem{
			IsInstantiation: subtype == format.MiscSourceIStem,
			PathID:          pathID,
			Line:            arg,
		}, nil

	case format.MiscComment:
		return Comment{Text: name}, nil

	case format.MiscEnumTable:
		if name == "" {
			return EnumTableRef{Handle: arg}, nil
		}

		return parseEnumTable(name, arg)

	default:
		return nil, errs.ErrUnknownAttributeKind
	}
}

// parseEnumTable decodes the space-separated payload
// "table_name N v0 v1 … vN-1 n0 n1 … nN-1".
func parseEnumTable(payload string, handle uint64) (Entry, error) {
	fields := strings.Fields(payload)
	if len(fields) < 2 {
		return nil, errs.ErrCorruptHierarchy
	}

	name := fields[0]

	n, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return nil, errs.ErrCorruptHierarchy
	}

	need := 2 + 2*int(n)
	if len(fields) < need {
		return nil, errs.ErrCorruptHierarchy
	}

	values := fields[2 : 2+n]
	names := fields[2+n : 2+2*n]

	mapping := make([]EnumPair, n)
	for i := range mapping {
		mapping[i] = EnumPair{Value: values[i], Name: names[i]}
	}

	return EnumTable{Name: name, Handle: handle, Mapping: mapping}, nil
}

func parseVar(data []byte, offset int, lead byte, nextHandle uint64) (Entry, int, uint64, error) {
	vt := format.VarType(lead)
	if !vt.Valid() {
		return nil, offset, nextHandle, errs.ErrUnknownVarType
	}

	if offset >= len(data) {
		return nil, offset, nextHandle, errs.ErrCorruptHierarchy
	}

	dirByte := data[offset]
	offset++

	name, offset, err := leb128.ReadCString(data, offset)
	if err != nil {
		return nil, offset, nextHandle, err
	}

	length, offset, err := leb128.ReadUvarint(data, offset)
	if err != nil {
		return nil, offset, nextHandle, errs.ErrCorruptHierarchy
	}

	aliasHandle, offset, err := leb128.ReadUvarint(data, offset)
	if err != nil {
		return nil, offset, nextHandle, errs.ErrCorruptHierarchy
	}

	var handle uint64
	var isAlias bool

	if aliasHandle == 0 {
		handle = nextHandle
		nextHandle++
	} else {
		handle = aliasHandle
		isAlias = true
	}

	v := Var{
		Name:      name,
		Type:      vt,
		Direction: format.Direction(dirByte),
		Length:    length,
		Handle:    handle,
		IsAlias:   isAlias,
	}

	return v, offset, nextHandle, nil
}
