package analysis

import (
	"go.uber.org/zap"

	"github.com/wippyai/gir/library"
)

// Skip reasons recorded in Result.Skipped
const (
	SkipIgnoredParents            = "it has ignored parents"
	SkipAllConstructorsDeprecated = "all its constructors are deprecated"
)

// Skipped is a configured class that was analyzed but will not be emitted
type Skipped struct {
	Name   string
	Reason string
}

// Result is the output of one analysis run, ordered by namespace load order
// then declaration order.
type Result struct {
	Classes     []*ClassInfo
	Skipped     []Skipped
	Enums       []library.TypeID // configured enumerations and bitfields of the main namespace
	Trampolines Trampolines      // every class's trampolines, in class order
}

// Run analyzes every class configured with status "generate".
// The library must have passed CheckResolved.
func Run(env *Env) *Result {
	lib := env.Library
	res := &Result{}

	for _, nsID := range lib.NamespaceIDs() {
		ns := lib.Namespace(nsID)
		for id := 0; id < ns.Len(); id++ {
			tid := library.TypeID{NS: nsID, ID: uint32(id)}
			if !env.Status(tid).NeedGenerate() {
				continue
			}
			switch t := lib.Type(tid).(type) {
			case *library.Class:
				res.addClass(analyzeClass(env, t, tid))
			case *library.Enumeration, *library.Bitfield:
				if lib.IsMain(tid) {
					res.Enums = append(res.Enums, tid)
				}
			}
		}
	}

	Logger().Info("analysis finished",
		zap.Int("classes", len(res.Classes)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("trampolines", len(res.Trampolines)))
	return res
}

func (r *Result) addClass(info *ClassInfo) {
	var reason string
	switch {
	case info.HasIgnoredParents:
		reason = SkipIgnoredParents
	case info.AllConstructorsDeprecated:
		reason = SkipAllConstructorsDeprecated
	}
	if reason != "" {
		Logger().Info("skipping class", zap.String("class", info.FullName), zap.String("reason", reason))
		r.Skipped = append(r.Skipped, Skipped{Name: info.FullName, Reason: reason})
		return
	}
	r.Classes = append(r.Classes, info)
	r.Trampolines = append(r.Trampolines, info.Trampolines...)
}

// Rejections returns every rejected signal of the emitted classes
func (r *Result) Rejections() []SignalInfo {
	var out []SignalInfo
	for _, c := range r.Classes {
		for _, s := range c.Signals {
			if !s.Bound() {
				out = append(out, s)
			}
		}
	}
	return out
}
