package analysis

import (
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/version"
)

// SignalInfo is the binding verdict for one signal
type SignalInfo struct {
	Name              string
	Trampoline        string // empty when rejected
	Rejection         error  // *errors.RejectionError when the signal cannot be bound
	Version           *version.Version
	DeprecatedVersion *version.Version
	Deprecated        bool
	IsAction          bool
}

// Bound reports whether a trampoline was generated
func (s *SignalInfo) Bound() bool {
	return s.Rejection == nil
}

// AnalyzeSignals runs AnalyzeTrampoline over signals in declaration order.
// A signal without its own version or deprecation falls back to the owner's.
// Rejections are recorded per signal and never stop the walk.
func AnalyzeSignals(env *Env, signals []library.Signal, tid library.TypeID, inTrait bool,
	trampolines *Trampolines, usedTypes *[]string,
	ownerVersion, ownerDeprecated *version.Version) []SignalInfo {

	infos := make([]SignalInfo, 0, len(signals))
	for i := range signals {
		signal := &signals[i]
		ver := firstVersion(signal.Version, ownerVersion)
		deprecated := firstVersion(signal.DeprecatedVersion, ownerDeprecated)

		info := SignalInfo{
			Name:              signal.Name,
			Version:           ver,
			DeprecatedVersion: deprecated,
			Deprecated:        env.IsDeprecated(deprecated),
			IsAction:          signal.IsAction,
		}
		name, err := AnalyzeTrampoline(env, signal, tid, inTrait, trampolines, usedTypes, ver, deprecated)
		if err != nil {
			info.Rejection = err
		} else {
			info.Trampoline = name
		}
		infos = append(infos, info)
	}
	return infos
}

func firstVersion(vs ...*version.Version) *version.Version {
	for _, v := range vs {
		if v != nil {
			return v
		}
	}
	return nil
}
