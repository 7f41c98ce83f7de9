package analysis

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/internal/nameutil"
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/version"
)

// receiverName is the implicit leading parameter of every trampoline
const receiverName = "this"

// Trampoline adapts a raw signal emission into a typed callback invocation.
// It is immutable once appended to a Trampolines collection.
type Trampoline struct {
	Name              string
	Owner             library.TypeID
	Signal            string
	Parameters        []Parameter // receiver first
	Ret               Parameter
	Bounds            Bounds
	Version           *version.Version
	DeprecatedVersion *version.Version
}

// Trampolines is the append-only output collection of signal analysis
type Trampolines []Trampoline

// Names returns trampoline names in creation order
func (ts Trampolines) Names() []string {
	names := make([]string, len(ts))
	for i := range ts {
		names[i] = ts[i].Name
	}
	return names
}

// AnalyzeTrampoline synthesizes the trampoline of signal, owned by tid.
//
// Every parameter and the non-void return value are classified first. When any
// of them fails, a warning is logged and a *errors.RejectionError carrying all
// reasons is returned; nothing is appended. Otherwise the receiver is
// prepended, used target and raw type names are appended to usedTypes, the
// trampoline is appended to trampolines and its name is returned.
//
// In trait context the receiver gets an IsA bound on the owner instead of a
// fixed type.
func AnalyzeTrampoline(env *Env, signal *library.Signal, tid library.TypeID, inTrait bool,
	trampolines *Trampolines, usedTypes *[]string,
	ver, deprecated *version.Version) (string, error) {

	if err := signalErrors(env, signal, tid); err != nil {
		Logger().Warn("can't generate trampoline for signal",
			zap.String("owner", err.Owner),
			zap.String("signal", signal.Name),
			zap.Strings("reasons", err.Reasons))
		return "", err
	}

	name := nameutil.TrampolineName(signal.Name)
	lib := env.Library
	owner := lib.Type(tid)

	params := make([]Parameter, 0, len(signal.Parameters)+1)
	this := library.Parameter{
		Name:      receiverName,
		Typ:       tid,
		CType:     library.CTypeOf(owner) + "*",
		Direction: library.DirectionIn,
		Transfer:  library.TransferNone,
	}
	params = append(params, Parameter{
		Parameter:  this,
		RefMode:    RefModeByRef,
		Conversion: ConversionBorrow,
		TargetType: "&" + qualifiedName(env, tid),
	})
	if s, ok := UsedFFIType(env, tid); ok {
		*usedTypes = append(*usedTypes, s)
	}

	var bounds Bounds
	if inTrait {
		bounds.AddParameter(receiverName, BoundsTargetType(env, tid), BoundIsA)
	}

	for i := range signal.Parameters {
		par := &signal.Parameters[i]
		params = append(params, AnalyzeParameter(env, par))
		recordUsed(env, par.Typ, usedTypes)
	}

	if !signal.Ret.IsVoid() {
		recordUsed(env, signal.Ret.Typ, usedTypes)
	}

	*trampolines = append(*trampolines, Trampoline{
		Name:              name,
		Owner:             tid,
		Signal:            signal.Name,
		Parameters:        params,
		Ret:               AnalyzeReturn(env, &signal.Ret),
		Bounds:            bounds,
		Version:           ver,
		DeprecatedVersion: deprecated,
	})
	return name, nil
}

func recordUsed(env *Env, tid library.TypeID, usedTypes *[]string) {
	if s, ok := UsedTargetType(env, tid); ok {
		*usedTypes = append(*usedTypes, s)
	}
	if s, ok := UsedFFIType(env, tid); ok {
		*usedTypes = append(*usedTypes, s)
	}
}

// signalErrors classifies every parameter and the return value, keeping all
// failures in order. It returns nil when the signal can be bound.
func signalErrors(env *Env, signal *library.Signal, tid library.TypeID) *errors.RejectionError {
	var (
		combined error
		reasons  []string
	)
	for i := range signal.Parameters {
		par := &signal.Parameters[i]
		if _, err := Classify(env, par); err != nil {
			combined = multierr.Append(combined, err)
			reasons = append(reasons, parameterReason(env, par, err))
		}
	}
	if !signal.Ret.IsVoid() {
		if _, err := ClassifyReturn(env, &signal.Ret); err != nil {
			combined = multierr.Append(combined, err)
			reasons = append(reasons, returnReason(env, &signal.Ret, err))
		}
	}
	if combined == nil {
		return nil
	}
	return &errors.RejectionError{
		Owner:   env.Library.FullName(tid),
		Name:    signal.Name,
		Reasons: reasons,
		Cause:   combined,
	}
}
