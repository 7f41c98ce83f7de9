package analysis

import (
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/version"
)

// FunctionInfo is the binding verdict for one function of a class
type FunctionInfo struct {
	Name              string
	GlibName          string // C symbol
	Kind              library.FunctionKind
	Version           *version.Version
	DeprecatedVersion *version.Version
	Parameters        []Parameter
	Ret               Parameter
	Errors            []string // classification reasons, in parameter order then return value
	Commented         bool     // emitted commented out because Errors is not empty
	Deprecated        bool
	Throws            bool
}

// AnalyzeFunctions analyzes every function of class in declaration order.
// It has no side effects.
func AnalyzeFunctions(env *Env, class *library.Class, tid library.TypeID) []FunctionInfo {
	funcs := make([]FunctionInfo, 0, len(class.Functions))
	for i := range class.Functions {
		funcs = append(funcs, analyzeFunction(env, &class.Functions[i], tid))
	}
	return funcs
}

func analyzeFunction(env *Env, fn *library.Function, owner library.TypeID) FunctionInfo {
	info := FunctionInfo{
		Name:              fn.Name,
		GlibName:          fn.CIdentifier,
		Kind:              fn.Kind,
		Version:           fn.Version,
		DeprecatedVersion: fn.DeprecatedVersion,
		Deprecated:        env.IsDeprecated(fn.DeprecatedVersion),
		Throws:            fn.Throws,
		Parameters:        make([]Parameter, 0, len(fn.Parameters)),
	}

	for i := range fn.Parameters {
		par := &fn.Parameters[i]
		if par.InstanceParameter || par.IsError {
			// the receiver is implied by the owning type, the error by Throws
			continue
		}
		if _, err := Classify(env, par); err != nil {
			info.Errors = append(info.Errors, parameterReason(env, par, err))
		}
		info.Parameters = append(info.Parameters, AnalyzeParameter(env, par))
	}

	if !fn.Ret.IsVoid() {
		ret := fn.Ret
		if fn.Kind == library.FunctionKindConstructor {
			// constructors are declared returning a base class pointer
			ret.Typ = owner
		}
		if _, err := ClassifyReturn(env, &ret); err != nil {
			info.Errors = append(info.Errors, returnReason(env, &ret, err))
		}
		info.Ret = AnalyzeReturn(env, &ret)
	} else {
		info.Ret = AnalyzeReturn(env, &fn.Ret)
	}

	info.Commented = len(info.Errors) > 0
	return info
}
