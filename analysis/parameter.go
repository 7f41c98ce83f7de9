package analysis

import (
	"github.com/wippyai/gir/library"
)

// Parameter is a library parameter with its binding decisions attached
type Parameter struct {
	library.Parameter

	RefMode    RefMode
	Conversion ConversionType
	TargetType string // binding-site spelling, empty when the type is unmapped
}

// AnalyzeParameter attaches the reference mode, conversion and target
// spelling to par. It never fails; unmapped types leave TargetType empty.
func AnalyzeParameter(env *Env, par *library.Parameter) Parameter {
	out := Parameter{
		Parameter:  *par,
		RefMode:    RefModeOf(env, par),
		Conversion: ConversionOf(env.Library, par),
	}
	if t, err := ParameterTargetType(env, par); err == nil {
		out.TargetType = t
	}
	return out
}

// AnalyzeReturn is AnalyzeParameter for a return value
func AnalyzeReturn(env *Env, ret *library.Parameter) Parameter {
	out := Parameter{
		Parameter:  *ret,
		Conversion: ConversionOf(env.Library, ret),
	}
	if t, err := ReturnTargetType(env, ret); err == nil {
		out.TargetType = t
	}
	return out
}
