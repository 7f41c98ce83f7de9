package library

import (
	"github.com/wippyai/gir/version"
)

// Type is the closed set of introspected declarations.
// Consumers switch over the concrete pointer types; the unexported marker keeps
// the set closed to this package.
type Type interface {
	// TypeName returns the declaration's local name (without namespace)
	TypeName() string
	isType()
}

// FundamentalKind identifies a built-in type
type FundamentalKind uint8

const (
	FundamentalNone FundamentalKind = iota
	FundamentalBoolean
	FundamentalInt8
	FundamentalUInt8
	FundamentalInt16
	FundamentalUInt16
	FundamentalInt32
	FundamentalUInt32
	FundamentalInt64
	FundamentalUInt64
	FundamentalChar
	FundamentalUChar
	FundamentalShort
	FundamentalUShort
	FundamentalInt
	FundamentalUInt
	FundamentalLong
	FundamentalULong
	FundamentalSize
	FundamentalSSize
	FundamentalFloat
	FundamentalDouble
	FundamentalUniChar
	FundamentalPointer
	FundamentalVarArgs
	FundamentalUtf8
	FundamentalFilename
	FundamentalType
	FundamentalUnsupported
)

// Fundamental is a built-in scalar, string or pointer type
type Fundamental struct {
	Name  string // introspection name, e.g. "gint"
	CType string // C spelling, e.g. "gint"
	Kind  FundamentalKind
}

// Alias names another type
type Alias struct {
	Name   string
	CType  string
	Target TypeID
}

// Member is an enumeration or bitfield value
type Member struct {
	Version           *version.Version
	DeprecatedVersion *version.Version
	Name              string
	CIdentifier       string
	Value             string
}

// Enumeration is a C enum
type Enumeration struct {
	Version           *version.Version
	DeprecatedVersion *version.Version
	Name              string
	CType             string
	GlibGetType       string
	ErrorDomain       string // quark function, set for error enums
	Members           []Member
	Functions         []Function
}

// Bitfield is a C flags enum
type Bitfield struct {
	Version           *version.Version
	DeprecatedVersion *version.Version
	Name              string
	CType             string
	GlibGetType       string
	Members           []Member
	Functions         []Function
}

// Field is a record or union field
type Field struct {
	Name    string
	CType   string
	Typ     TypeID
	Private bool
}

// Record is a C struct, boxed or plain
type Record struct {
	Version           *version.Version
	DeprecatedVersion *version.Version
	Name              string
	CType             string
	GlibGetType       string
	Fields            []Field
	Functions         []Function
	Disguised         bool // opaque typedef without fields
}

// Union is a C union
type Union struct {
	Name        string
	CType       string
	GlibGetType string
	Fields      []Field
	Functions   []Function
}

// Interface is a GObject interface
type Interface struct {
	Version           *version.Version
	DeprecatedVersion *version.Version
	Name              string
	CType             string
	GlibTypeName      string
	GlibGetType       string
	Prerequisites     []TypeID
	Functions         []Function
	Signals           []Signal
}

// Class is a GObject class
type Class struct {
	Version           *version.Version
	DeprecatedVersion *version.Version
	Parent            *TypeID
	Name              string
	CType             string
	GlibTypeName      string
	GlibGetType       string
	Implements        []TypeID
	Functions         []Function
	Signals           []Signal
	Abstract          bool
}

// Callback is a C function pointer type
type Callback struct {
	Name       string
	CType      string
	Parameters []Parameter
	Ret        Parameter
}

// Function is a free function, constructor or method
type Function struct {
	Version           *version.Version
	DeprecatedVersion *version.Version
	Name              string
	CIdentifier       string
	Parameters        []Parameter
	Ret               Parameter
	Kind              FunctionKind
	Throws            bool
}

// Signal is a GObject signal
type Signal struct {
	Version           *version.Version
	DeprecatedVersion *version.Version
	Name              string
	Parameters        []Parameter
	Ret               Parameter
	IsAction          bool
}

// Array is a GArray, GPtrArray or GByteArray
type Array struct {
	Name  string // "GLib.Array", "GLib.PtrArray", ...
	Elem  TypeID
	CType string
}

// CArray is a plain C array
type CArray struct {
	Elem           TypeID
	FixedSize      int
	ZeroTerminated bool
}

// List is a GList
type List struct {
	Elem TypeID
}

// SList is a GSList
type SList struct {
	Elem TypeID
}

// HashTable is a GHashTable
type HashTable struct {
	Key   TypeID
	Value TypeID
}

// Unresolved is a placeholder for a referenced but not yet declared type
type Unresolved struct {
	Name string
}

func (t *Fundamental) TypeName() string { return t.Name }
func (t *Alias) TypeName() string       { return t.Name }
func (t *Enumeration) TypeName() string { return t.Name }
func (t *Bitfield) TypeName() string    { return t.Name }
func (t *Record) TypeName() string      { return t.Name }
func (t *Union) TypeName() string       { return t.Name }
func (t *Interface) TypeName() string   { return t.Name }
func (t *Class) TypeName() string       { return t.Name }
func (t *Callback) TypeName() string    { return t.Name }
func (t *Function) TypeName() string    { return t.Name }
func (t *Signal) TypeName() string      { return t.Name }
func (t *Array) TypeName() string       { return t.Name }
func (t *CArray) TypeName() string      { return "CArray" }
func (t *List) TypeName() string        { return "GLib.List" }
func (t *SList) TypeName() string       { return "GLib.SList" }
func (t *HashTable) TypeName() string   { return "GLib.HashTable" }
func (t *Unresolved) TypeName() string  { return t.Name }

func (*Fundamental) isType() {}
func (*Alias) isType()       {}
func (*Enumeration) isType() {}
func (*Bitfield) isType()    {}
func (*Record) isType()      {}
func (*Union) isType()       {}
func (*Interface) isType()   {}
func (*Class) isType()       {}
func (*Callback) isType()    {}
func (*Function) isType()    {}
func (*Signal) isType()      {}
func (*Array) isType()       {}
func (*CArray) isType()      {}
func (*List) isType()        {}
func (*SList) isType()       {}
func (*HashTable) isType()   {}
func (*Unresolved) isType()  {}

// CTypeOf returns the C type name of a declaration, or "" when it has none
func CTypeOf(t Type) string {
	switch t := t.(type) {
	case *Fundamental:
		return t.CType
	case *Alias:
		return t.CType
	case *Enumeration:
		return t.CType
	case *Bitfield:
		return t.CType
	case *Record:
		return t.CType
	case *Union:
		return t.CType
	case *Interface:
		return t.CType
	case *Class:
		return t.CType
	case *Callback:
		return t.CType
	case *Array:
		return t.CType
	}
	return ""
}

// KindName returns a short lowercase description of the declaration kind
func KindName(t Type) string {
	switch t.(type) {
	case *Fundamental:
		return "fundamental"
	case *Alias:
		return "alias"
	case *Enumeration:
		return "enumeration"
	case *Bitfield:
		return "bitfield"
	case *Record:
		return "record"
	case *Union:
		return "union"
	case *Interface:
		return "interface"
	case *Class:
		return "class"
	case *Callback:
		return "callback"
	case *Function:
		return "function"
	case *Signal:
		return "signal"
	case *Array:
		return "array"
	case *CArray:
		return "c array"
	case *List:
		return "list"
	case *SList:
		return "slist"
	case *HashTable:
		return "hash table"
	case *Unresolved:
		return "unresolved"
	}
	return "unknown"
}
