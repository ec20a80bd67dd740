// Package format defines the small enumerations used by the FST container
// format: section kinds, scope types, variable types, attribute kinds, and
// variable directions, keeping wire-level enums with String() methods
// separate from the packages that interpret them.
package format

// SectionKind identifies the kind byte that leads every top-level section.
type SectionKind uint8

const (
	SectionHeader          SectionKind = 0
	SectionValueChange     SectionKind = 1
	SectionBlackout        SectionKind = 2
	SectionGeometry        SectionKind = 3
	SectionHierarchy       SectionKind = 4
	SectionValueChangeAlt  SectionKind = 5
	SectionHierarchyLZ4    SectionKind = 6
	SectionHierarchyLZ4Dup SectionKind = 7
	SectionValueChangeAlt2 SectionKind = 8
)

func (k SectionKind) String() string {
	switch k {
	case SectionHeader:
		return "Header"
	case SectionValueChange:
		return "ValueChange"
	case SectionBlackout:
		return "Blackout"
	case SectionGeometry:
		return "Geometry"
	case SectionHierarchy:
		return "Hierarchy"
	case SectionValueChangeAlt:
		return "ValueChangeAlt"
	case SectionHierarchyLZ4:
		return "HierarchyLZ4"
	case SectionHierarchyLZ4Dup:
		return "HierarchyLZ4Dup"
	case SectionValueChangeAlt2:
		return "ValueChangeAlt2"
	default:
		return "Unknown"
	}
}

// IsValueChange reports whether the section kind carries value-change data.
func (k SectionKind) IsValueChange() bool {
	switch k {
	case SectionValueChange, SectionValueChangeAlt, SectionValueChangeAlt2:
		return true
	default:
		return false
	}
}

// IsHierarchy reports whether the section kind carries hierarchy data.
func (k SectionKind) IsHierarchy() bool {
	switch k {
	case SectionHierarchy, SectionHierarchyLZ4, SectionHierarchyLZ4Dup:
		return true
	default:
		return false
	}
}

// HasPositionTable reports whether the value-change section carries an
// explicit handle-to-offset position table (kind 8) rather than relying on
// the implicit chain table alone (kind 1/5).
func (k SectionKind) HasPositionTable() bool {
	return k == SectionValueChangeAlt2
}

// ScopeType enumerates the scope kinds a ScopeBegin hierarchy entry can carry.
type ScopeType uint8

const (
	ScopeModule ScopeType = iota
	ScopeTask
	ScopeFunction
	ScopeBegin
	ScopeFork
	ScopeGenerate
	ScopeStruct
	ScopeUnion
	ScopeClass
	ScopeInterface
	ScopePackage
	ScopeProgram
	ScopeVhdlArchitecture
	ScopeVhdlProcedure
	ScopeVhdlFunction
	ScopeVhdlRecord
	ScopeVhdlProcess
	ScopeVhdlBlock
	ScopeVhdlForGenerate
	ScopeVhdlIfGenerate
	ScopeVhdlGenerate
	ScopeVhdlPackage
	ScopeAttributeBegin
	ScopeAttributeEnd
	ScopeVcdScope
	ScopeVcdUpScope
)

var scopeTypeNames = map[ScopeType]string{
	ScopeModule:           "Module",
	ScopeTask:             "Task",
	ScopeFunction:         "Function",
	ScopeBegin:            "Begin",
	ScopeFork:             "Fork",
	ScopeGenerate:         "Generate",
	ScopeStruct:           "Struct",
	ScopeUnion:            "Union",
	ScopeClass:            "Class",
	ScopeInterface:        "Interface",
	ScopePackage:          "Package",
	ScopeProgram:          "Program",
	ScopeVhdlArchitecture: "VhdlArchitecture",
	ScopeVhdlProcedure:    "VhdlProcedure",
	ScopeVhdlFunction:     "VhdlFunction",
	ScopeVhdlRecord:       "VhdlRecord",
	ScopeVhdlProcess:      "VhdlProcess",
	ScopeVhdlBlock:        "VhdlBlock",
	ScopeVhdlForGenerate:  "VhdlForGenerate",
	ScopeVhdlIfGenerate:   "VhdlIfGenerate",
	ScopeVhdlGenerate:     "VhdlGenerate",
	ScopeVhdlPackage:      "VhdlPackage",
	ScopeAttributeBegin:   "AttributeBegin",
	ScopeAttributeEnd:     "AttributeEnd",
	ScopeVcdScope:         "VcdScope",
	ScopeVcdUpScope:       "VcdUpScope",
}

func (t ScopeType) String() string {
	if name, ok := scopeTypeNames[t]; ok {
		return name
	}

	return "Unknown"
}

// Valid reports whether t is a recognized scope type.
func (t ScopeType) Valid() bool {
	_, ok := scopeTypeNames[t]
	return ok
}

// VarType enumerates the variable kinds a Var hierarchy entry can carry.
//
// The real-valued set (Real, RealParameter, RealTime, ShortReal) determines
// whether a handle's value changes decode as FstSignalValue.Real or
// FstSignalValue.String; see VarType.IsReal.
type VarType uint8

const (
	VarEvent VarType = iota
	VarInteger
	VarParameter
	VarReal
	VarRealParameter
	VarReg
	VarSupply0
	VarSupply1
	VarTime
	VarTri
	VarTriAnd
	VarTriOr
	VarTriReg
	VarTri0
	VarTri1
	VarWAnd
	VarWire
	VarWOr
	VarRealTime
	VarPort
	VarSparseArray
	VarRealTime2
	VarBit
	VarLogic
	VarInt
	VarShortInt
	VarLongInt
	VarByte
	VarEnum
	VarShortReal
	VarBoolean
	VarBitVector
	VarStdLogic
	VarStdLogicVector
	VarStdULogic
	VarStdULogicVector
)

var realVarTypes = map[VarType]struct{}{
	VarReal:          {},
	VarRealParameter: {},
	VarRealTime:      {},
	VarRealTime2:     {},
	VarShortReal:     {},
}

// IsReal reports whether values on a variable of this type decode as a
// floating-point FstSignalValue.Real rather than a bit-vector
// FstSignalValue.String.
func (t VarType) IsReal() bool {
	_, ok := realVarTypes[t]
	return ok
}

// Valid reports whether t is a recognized variable type. A hierarchy
// lead byte that doesn't match one of the four reserved tags (252-255) is
// read as a VarType, so this is what distinguishes a genuine variable
// declaration from a corrupt or forward-incompatible lead byte.
func (t VarType) Valid() bool {
	return t <= VarStdULogicVector
}

func (t VarType) String() string {
	switch t {
	case VarEvent:
		return "Event"
	case VarInteger:
		return "Integer"
	case VarParameter:
		return "Parameter"
	case VarReal:
		return "Real"
	case VarRealParameter:
		return "RealParameter"
	case VarReg:
		return "Reg"
	case VarSupply0:
		return "Supply0"
	case VarSupply1:
		return "Supply1"
	case VarTime:
		return "Time"
	case VarTri:
		return "Tri"
	case VarTriAnd:
		return "TriAnd"
	case VarTriOr:
		return "TriOr"
	case VarTriReg:
		return "TriReg"
	case VarTri0:
		return "Tri0"
	case VarTri1:
		return "Tri1"
	case VarWAnd:
		return "WAnd"
	case VarWire:
		return "Wire"
	case VarWOr:
		return "WOr"
	case VarRealTime, VarRealTime2:
		return "RealTime"
	case VarPort:
		return "Port"
	case VarSparseArray:
		return "SparseArray"
	case VarBit:
		return "Bit"
	case VarLogic:
		return "Logic"
	case VarInt:
		return "Int"
	case VarShortInt:
		return "ShortInt"
	case VarLongInt:
		return "LongInt"
	case VarByte:
		return "Byte"
	case VarEnum:
		return "Enum"
	case VarShortReal:
		return "ShortReal"
	case VarBoolean:
		return "Boolean"
	case VarBitVector:
		return "BitVector"
	case VarStdLogic:
		return "StdLogic"
	case VarStdLogicVector:
		return "StdLogicVector"
	case VarStdULogic:
		return "StdULogic"
	case VarStdULogicVector:
		return "StdULogicVector"
	default:
		return "Unknown"
	}
}

// Direction enumerates the port direction carried by a Var hierarchy entry.
type Direction uint8

const (
	DirectionImplicit Direction = iota
	DirectionInput
	DirectionOutput
	DirectionInout
	DirectionBuffer
	DirectionLinkage
)

func (d Direction) String() string {
	switch d {
	case DirectionInput:
		return "Input"
	case DirectionOutput:
		return "Output"
	case DirectionInout:
		return "Inout"
	case DirectionBuffer:
		return "Buffer"
	case DirectionLinkage:
		return "Linkage"
	default:
		return "Implicit"
	}
}

// MiscType enumerates the AttributeBegin subtypes recognized when
// AttrType is AttrMisc.
type MiscType uint8

const (
	MiscPathName    MiscType = 0
	MiscSourceStem  MiscType = 1
	MiscSourceIStem MiscType = 2
	MiscValueList   MiscType = 3
	MiscComment     MiscType = 6
	MiscEnumTable   MiscType = 7
)

// AttrType enumerates the top-level attribute kind of an AttributeBegin
// hierarchy entry. Only AttrMisc carries a MiscType subtype; every other
// kind collapses to a generic AttributeBegin.
type AttrType uint8

const (
	AttrMisc AttrType = 0
)
