package analysis

import (
	"fmt"

	"github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/library"
)

// Reason texts of the classification taxonomy, as printed in diagnostics
const (
	ReasonOut               = "Out"
	ReasonInOut             = "InOut"
	ReasonEmptyCType        = "Empty ctype"
	ReasonUnknownConversion = "Unknown conversion"
	ReasonIgnored           = "Ignored"
	ReasonMismatch          = "Mismatch"
	ReasonUnimplemented     = "Unimplemented"
)

// Classify decides the conversion category of a parameter.
// The checks run in a fixed order and the first failure wins: direction,
// empty C type, unknown conversion, then the target type mapping.
func Classify(env *Env, par *library.Parameter) (ConversionType, error) {
	return classify(env, par, false)
}

// ClassifyReturn is Classify for a return value. The parameter-position shape
// checks are skipped.
func ClassifyReturn(env *Env, ret *library.Parameter) (ConversionType, error) {
	return classify(env, ret, true)
}

func classify(env *Env, par *library.Parameter, isReturn bool) (ConversionType, error) {
	path := []string{par.Name}
	full := env.Library.FullName(par.Typ)

	switch par.Direction {
	case library.DirectionOut, library.DirectionInOut:
		return ConversionUnknown, errors.UnsupportedDirection(par.Direction.String(), path)
	}
	if library.IsEmptyCType(par.CType) {
		return ConversionUnknown, errors.EmptyCType(path, full)
	}
	conv := ConversionOf(env.Library, par)
	if conv == ConversionUnknown {
		return ConversionUnknown, errors.UnknownConversion(path, full)
	}

	var err error
	if isReturn {
		_, err = ReturnTargetType(env, par)
	} else {
		_, err = ParameterTargetType(env, par)
	}
	if err != nil {
		if e, ok := err.(*errors.Error); ok && len(e.Path) == 0 {
			e.Path = path
		}
		return ConversionUnknown, err
	}
	return conv, nil
}

// Reason returns the diagnostic text of a classification error, e.g. "Out"
// or "Empty ctype". Errors outside the taxonomy yield their message.
func Reason(err error) string {
	e, ok := err.(*errors.Error)
	if !ok {
		return err.Error()
	}
	switch e.Kind {
	case errors.KindUnsupportedDirection:
		if s, ok := e.Value.(string); ok {
			return s
		}
		return ReasonOut
	case errors.KindEmptyCType:
		return ReasonEmptyCType
	case errors.KindUnknownConversion:
		return ReasonUnknownConversion
	case errors.KindIgnored:
		return ReasonIgnored
	case errors.KindMismatch:
		return ReasonMismatch
	case errors.KindUnimplemented:
		return ReasonUnimplemented
	}
	return e.Error()
}

// parameterReason formats "{reason} {name}: {type}"
func parameterReason(env *Env, par *library.Parameter, err error) string {
	return fmt.Sprintf("%s %s: %s", Reason(err), par.Name, env.Library.FullName(par.Typ))
}

// returnReason formats "{reason} return value {type}"
func returnReason(env *Env, ret *library.Parameter, err error) string {
	return fmt.Sprintf("%s return value %s", Reason(err), env.Library.FullName(ret.Typ))
}
