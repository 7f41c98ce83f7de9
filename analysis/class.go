package analysis

import (
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/version"
)

// ParentInfo is one ancestor of an analyzed class
type ParentInfo struct {
	TypeID   library.TypeID
	Name     string // target spelling
	FullName string
	Ignored  bool
}

// ClassInfo is the analysis of one configured class
type ClassInfo struct {
	TypeID            library.TypeID
	Name              string
	FullName          string
	CType             string
	GlibTypeName      string
	GlibGetType       string
	Version           *version.Version
	DeprecatedVersion *version.Version

	Parents           []ParentInfo // nearest first
	HasIgnoredParents bool
	HasChildren       bool         // generated as a trait

	Functions                 []FunctionInfo
	HasConstructors           bool
	AllConstructorsDeprecated bool

	Signals     []SignalInfo
	Trampolines Trampolines
	UsedTypes   []string // sorted, de-duplicated
}

// Constructors returns the constructor infos in declaration order
func (c *ClassInfo) Constructors() []*FunctionInfo {
	return c.functionsOf(library.FunctionKindConstructor)
}

// Methods returns the instance method infos in declaration order
func (c *ClassInfo) Methods() []*FunctionInfo {
	return c.functionsOf(library.FunctionKindMethod)
}

// StaticFunctions returns the non-method, non-constructor infos
func (c *ClassInfo) StaticFunctions() []*FunctionInfo {
	return c.functionsOf(library.FunctionKindFunction)
}

func (c *ClassInfo) functionsOf(kind library.FunctionKind) []*FunctionInfo {
	var out []*FunctionInfo
	for i := range c.Functions {
		if c.Functions[i].Kind == kind {
			out = append(out, &c.Functions[i])
		}
	}
	return out
}

// InTrait reports whether the class is generated in trait context
func (c *ClassInfo) InTrait() bool {
	return c.HasChildren
}

// AnalyzeClass analyzes the class named by a qualified name such as "Gtk.Button".
func AnalyzeClass(env *Env, name string) (*ClassInfo, error) {
	lib := env.Library
	ns, _ := lib.DefaultNamespace()
	tid, ok := lib.Resolve(name, ns)
	if !ok {
		return nil, errors.NotFound(errors.PhaseAnalyze, "class", name)
	}
	class, ok := lib.Class(tid)
	if !ok {
		return nil, errors.New(errors.PhaseAnalyze, errors.KindMismatch).
			Type(name).
			Detail("expected class, got %s", library.KindName(lib.Type(tid))).
			Build()
	}
	return analyzeClass(env, class, tid), nil
}

func analyzeClass(env *Env, class *library.Class, tid library.TypeID) *ClassInfo {
	lib := env.Library
	info := &ClassInfo{
		TypeID:            tid,
		Name:              class.Name,
		FullName:          lib.FullName(tid),
		CType:             class.CType,
		GlibTypeName:      class.GlibTypeName,
		GlibGetType:       class.GlibGetType,
		Version:           class.Version,
		DeprecatedVersion: class.DeprecatedVersion,
		HasChildren:       lib.HasChildren(tid),
	}
	Logger().Debug("analyzing class", zap.String("class", info.FullName))

	for _, p := range lib.Parents(tid) {
		ignored := env.IsIgnored(p)
		info.HasIgnoredParents = info.HasIgnoredParents || ignored
		info.Parents = append(info.Parents, ParentInfo{
			TypeID:   p,
			Name:     qualifiedName(env, p),
			FullName: lib.FullName(p),
			Ignored:  ignored,
		})
	}

	info.Functions = AnalyzeFunctions(env, class, tid)
	ctors := info.Constructors()
	info.HasConstructors = len(ctors) > 0
	info.AllConstructorsDeprecated = info.HasConstructors
	for _, c := range ctors {
		if !c.Deprecated {
			info.AllConstructorsDeprecated = false
			break
		}
	}

	var used []string
	info.Signals = AnalyzeSignals(env, class.Signals, tid, info.InTrait(),
		&info.Trampolines, &used, class.Version, class.DeprecatedVersion)
	info.UsedTypes = dedup(used)

	return info
}

func dedup(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	out := sorted[:1]
	for _, n := range sorted[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}
