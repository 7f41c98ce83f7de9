package analysis

import (
	"github.com/wippyai/gir/library"
)

// RefMode tells how a parameter is passed at the binding site
type RefMode uint8

const (
	RefModeNone RefMode = iota
	RefModeByRef
	RefModeByRefMut
)

func (m RefMode) String() string {
	switch m {
	case RefModeNone:
		return "None"
	case RefModeByRef:
		return "ByRef"
	case RefModeByRefMut:
		return "ByRefMut"
	}
	return "Unknown"
}

// RefModeOf computes the reference mode of a parameter.
// Borrowed values go by reference; caller-allocated out values by mutable
// reference; everything else, including transferred ownership, by value.
func RefModeOf(env *Env, par *library.Parameter) RefMode {
	conv := ConversionOf(env.Library, par)
	switch par.Direction {
	case library.DirectionOut, library.DirectionInOut:
		if par.CallerAllocates && conv == ConversionBorrow {
			return RefModeByRefMut
		}
		return RefModeNone
	}
	if conv == ConversionBorrow {
		return RefModeByRef
	}
	return RefModeNone
}
