// Package hierarchy decodes an FST file's hierarchy section into the
// sequence of scope, variable, and attribute entries it declares.
package hierarchy

import "github.com/TheZoq2/fst-native/format"

// Entry is the sealed set of hierarchy entry variants a Parse callback can
// receive. The unexported method restricts implementations to this
// package's own concrete types.
type Entry interface {
	hierarchyEntry()
}

// ScopeBegin opens a new scope in the hierarchy tree.
type ScopeBegin struct {
	Name      string
	Type      format.ScopeType
	Component string
}

func (ScopeBegin) hierarchyEntry() {}

// UpScope closes the innermost open scope.
type UpScope struct{}

func (UpScope) hierarchyEntry() {}

// Var declares one variable. Handle is always in [1, max_handle]; IsAlias
// is set when this entry reuses a handle assigned to an earlier Var entry
// rather than introducing a fresh one.
type Var struct {
	Name      string
	Type      format.VarType
	Direction format.Direction
	Length    uint64
	Handle    uint64
	IsAlias   bool
}

func (Var) hierarchyEntry() {}

// AttributeBegin opens a generic (non-MISC) attribute. A MISC attribute
// whose subtype this reader doesn't special-case is not rendered as one;
// Parse fails with errs.ErrUnknownAttributeKind instead.
type AttributeBegin struct {
	Name string
}

func (AttributeBegin) hierarchyEntry() {}

// AttributeEnd closes the innermost open attribute.
type AttributeEnd struct{}

func (AttributeEnd) hierarchyEntry() {}

// PathName interns a source-file path string under a numeric id, later
// referenced by SourceStem.PathID.
type PathName struct {
	ID   uint64
	Name string
}

func (PathName) hierarchyEntry() {}

// SourceStem attributes the following declarations to a source location.
type SourceStem struct {
	IsInstantiation bool
	PathID          uint64
	Line            uint64
}

func (SourceStem) hierarchyEntry() {}

// Comment carries a free-text annotation; it does not affect scope balance.
type Comment struct {
	Text string
}

func (Comment) hierarchyEntry() {}

// EnumPair is one (value literal, name literal) pair within an EnumTable.
type EnumPair struct {
	Value string
	Name  string
}

// EnumTable declares the named-value mapping for an enumerated variable.
type EnumTable struct {
	Name    string
	Handle  uint64
	Mapping []EnumPair
}

func (EnumTable) hierarchyEntry() {}

// EnumTableRef references a previously declared EnumTable by handle,
// without repeating its mapping.
type EnumTableRef struct {
	Handle uint64
}

func (EnumTableRef) hierarchyEntry() {}
