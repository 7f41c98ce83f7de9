package library

import (
	"strings"
)

// ParameterDirection tells which side of a call provides the value
type ParameterDirection uint8

const (
	DirectionIn ParameterDirection = iota
	DirectionOut
	DirectionInOut
)

// ParseDirection converts a GIR direction attribute; empty means "in".
func ParseDirection(s string) (ParameterDirection, bool) {
	switch s {
	case "", "in":
		return DirectionIn, true
	case "out":
		return DirectionOut, true
	case "inout":
		return DirectionInOut, true
	}
	return DirectionIn, false
}

func (d ParameterDirection) String() string {
	switch d {
	case DirectionIn:
		return "In"
	case DirectionOut:
		return "Out"
	case DirectionInOut:
		return "InOut"
	}
	return "Unknown"
}

// Transfer describes who owns a value after the call
type Transfer uint8

const (
	TransferNone Transfer = iota
	TransferContainer
	TransferFull
)

// ParseTransfer converts a GIR transfer-ownership attribute; empty means "none".
func ParseTransfer(s string) (Transfer, bool) {
	switch s {
	case "", "none":
		return TransferNone, true
	case "container":
		return TransferContainer, true
	case "full":
		return TransferFull, true
	}
	return TransferNone, false
}

func (t Transfer) String() string {
	switch t {
	case TransferNone:
		return "None"
	case TransferContainer:
		return "Container"
	case TransferFull:
		return "Full"
	}
	return "Unknown"
}

// FunctionKind distinguishes constructors, methods and free functions
type FunctionKind uint8

const (
	FunctionKindFunction FunctionKind = iota
	FunctionKindConstructor
	FunctionKindMethod
	FunctionKindGlobal
)

func (k FunctionKind) String() string {
	switch k {
	case FunctionKindFunction:
		return "Function"
	case FunctionKindConstructor:
		return "Constructor"
	case FunctionKindMethod:
		return "Method"
	case FunctionKindGlobal:
		return "Global"
	}
	return "Unknown"
}

// Parameter is a function, signal or callback parameter, or a return value
type Parameter struct {
	Name              string
	CType             string
	Typ               TypeID
	Direction         ParameterDirection
	Transfer          Transfer
	Nullable          bool
	CallerAllocates   bool
	AllowNone         bool
	IsError           bool
	InstanceParameter bool
}

// IsVoid reports whether p is a "none" return value
func (p *Parameter) IsVoid() bool {
	return p.Typ.IsNone()
}

// IsEmptyCType reports whether a C type spelling carries no value type.
// Pointers to void are not empty.
func IsEmptyCType(cType string) bool {
	switch strings.TrimSpace(cType) {
	case "", "void", "none":
		return true
	}
	return false
}
