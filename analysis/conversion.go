package analysis

import (
	"github.com/wippyai/gir/library"
)

// ConversionType is the marshalling category of a value crossing the C boundary
type ConversionType uint8

const (
	// ConversionDirect values are passed through unchanged (integers, floats)
	ConversionDirect ConversionType = iota
	// ConversionScalar values need a value-level translation (booleans, enums)
	ConversionScalar
	// ConversionBorrow values are passed as a temporary borrowed pointer
	ConversionBorrow
	// ConversionTransfer values hand ownership across the boundary
	ConversionTransfer
	// ConversionUnknown has no mapping rule
	ConversionUnknown
)

func (c ConversionType) String() string {
	switch c {
	case ConversionDirect:
		return "Direct"
	case ConversionScalar:
		return "Scalar"
	case ConversionBorrow:
		return "Borrow"
	case ConversionTransfer:
		return "Transfer"
	case ConversionUnknown:
		return "Unknown"
	}
	return "Invalid"
}

// ConversionOf computes the conversion category of a parameter from its
// declared type and transfer annotation. It never caches: the answer depends
// on the current resolution state of the library.
func ConversionOf(lib *library.Library, par *library.Parameter) ConversionType {
	return conversionOf(lib, par.Typ, par.Transfer, 0)
}

// maxAliasDepth bounds alias chains in broken input
const maxAliasDepth = 16

func conversionOf(lib *library.Library, tid library.TypeID, transfer library.Transfer, depth int) ConversionType {
	switch t := lib.Type(tid).(type) {
	case *library.Fundamental:
		return fundamentalConversion(t.Kind, transfer)
	case *library.Alias:
		if depth >= maxAliasDepth {
			return ConversionUnknown
		}
		return conversionOf(lib, t.Target, transfer, depth+1)
	case *library.Enumeration, *library.Bitfield:
		return ConversionScalar
	case *library.Record, *library.Union, *library.Class, *library.Interface,
		*library.Array, *library.CArray, *library.List, *library.SList, *library.HashTable:
		return owned(transfer)
	case *library.Callback:
		return ConversionDirect
	case *library.Function, *library.Signal, *library.Unresolved:
		return ConversionUnknown
	}
	return ConversionUnknown
}

func fundamentalConversion(kind library.FundamentalKind, transfer library.Transfer) ConversionType {
	if kind.IsNumeric() {
		return ConversionDirect
	}
	switch kind {
	case library.FundamentalNone, library.FundamentalPointer:
		return ConversionDirect
	case library.FundamentalBoolean, library.FundamentalUniChar, library.FundamentalType:
		return ConversionScalar
	case library.FundamentalUtf8, library.FundamentalFilename:
		return owned(transfer)
	}
	// va_list and platform-dependent types
	return ConversionUnknown
}

func owned(transfer library.Transfer) ConversionType {
	if transfer == library.TransferNone {
		return ConversionBorrow
	}
	return ConversionTransfer
}
