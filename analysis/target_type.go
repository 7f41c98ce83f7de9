package analysis

import (
	"strings"

	"github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/internal/nameutil"
	"github.com/wippyai/gir/library"
)

// glibCrate is the target module of the GLib and GObject namespaces
const glibCrate = "glib"

var fundamentalTargets = map[library.FundamentalKind]string{
	library.FundamentalNone:     "()",
	library.FundamentalBoolean:  "bool",
	library.FundamentalInt8:     "i8",
	library.FundamentalUInt8:    "u8",
	library.FundamentalInt16:    "i16",
	library.FundamentalUInt16:   "u16",
	library.FundamentalInt32:    "i32",
	library.FundamentalUInt32:   "u32",
	library.FundamentalInt64:    "i64",
	library.FundamentalUInt64:   "u64",
	library.FundamentalChar:     "i8",
	library.FundamentalUChar:    "u8",
	library.FundamentalShort:    "i16",
	library.FundamentalUShort:   "u16",
	library.FundamentalInt:      "i32",
	library.FundamentalUInt:     "u32",
	library.FundamentalLong:     "c_long",
	library.FundamentalULong:    "c_ulong",
	library.FundamentalSize:     "usize",
	library.FundamentalSSize:    "isize",
	library.FundamentalFloat:    "f32",
	library.FundamentalDouble:   "f64",
	library.FundamentalUniChar:  "char",
	library.FundamentalUtf8:     "String",
	library.FundamentalFilename: "PathBuf",
	library.FundamentalType:     "Type",
}

// TargetType maps a declared type to its target language spelling.
// Failures are classification errors of kind ignored, mismatch or unimplemented.
func TargetType(env *Env, tid library.TypeID) (string, error) {
	return targetType(env, tid, 0)
}

func targetType(env *Env, tid library.TypeID, depth int) (string, error) {
	lib := env.Library
	full := lib.FullName(tid)

	switch t := lib.Type(tid).(type) {
	case *library.Fundamental:
		if name, ok := fundamentalTargets[t.Kind]; ok {
			return name, nil
		}
		return "", errors.Unimplemented(full, "fundamental "+t.Name)
	case *library.Alias, *library.Enumeration, *library.Bitfield,
		*library.Record, *library.Class, *library.Interface:
		if env.IsIgnored(tid) {
			return "", errors.Ignored(full)
		}
		return qualifiedName(env, tid), nil
	case *library.Array:
		return containerTarget(env, t.Elem, depth)
	case *library.List:
		return containerTarget(env, t.Elem, depth)
	case *library.SList:
		return containerTarget(env, t.Elem, depth)
	case *library.Union:
		return "", errors.Unimplemented(full, "union")
	case *library.HashTable:
		return "", errors.Unimplemented(full, "hash table")
	case *library.CArray:
		return "", errors.Unimplemented(full, "c array")
	case *library.Callback:
		return "", errors.Unimplemented(full, "callback")
	case *library.Function, *library.Signal:
		return "", errors.Mismatch(full, library.KindName(t)+" in value position")
	case *library.Unresolved:
		return "", errors.Unimplemented(full, "unresolved placeholder")
	}
	return "", errors.Unimplemented(full, "unknown declaration")
}

func containerTarget(env *Env, elem library.TypeID, depth int) (string, error) {
	if depth >= maxAliasDepth {
		return "", errors.Unimplemented(env.Library.FullName(elem), "container nesting too deep")
	}
	inner, err := targetType(env, elem, depth+1)
	if err != nil {
		return "", err
	}
	return "Vec<" + inner + ">", nil
}

// qualifiedName returns the local name for main and internal types and a
// module-qualified name for every other namespace, e.g. "gdk::Window".
func qualifiedName(env *Env, tid library.TypeID) string {
	name := env.Library.TypeName(tid)
	if tid.IsInternal() || env.Library.IsMain(tid) {
		return name
	}
	return crateOf(env.Library.Namespace(tid.NS).Name) + "::" + name
}

func crateOf(namespace string) string {
	switch namespace {
	case "GLib", "GObject":
		return glibCrate
	}
	return nameutil.CrateName(namespace)
}

// ParameterTargetType maps a parameter to the spelling used at the binding site.
// It adds the shape checks that only make sense in parameter position and
// applies the reference mode and nullability.
func ParameterTargetType(env *Env, par *library.Parameter) (string, error) {
	if err := parameterShape(env, par); err != nil {
		return "", err
	}
	t, err := TargetType(env, par.Typ)
	if err != nil {
		return "", err
	}
	return decorate(t, RefModeOf(env, par), par.Nullable), nil
}

// ReturnTargetType maps a return value; "none" is the unit type there.
func ReturnTargetType(env *Env, ret *library.Parameter) (string, error) {
	t, err := TargetType(env, ret.Typ)
	if err != nil {
		return "", err
	}
	if ret.Nullable && !ret.IsVoid() {
		return "Option<" + t + ">", nil
	}
	return t, nil
}

func parameterShape(env *Env, par *library.Parameter) error {
	full := env.Library.FullName(par.Typ)
	if par.IsVoid() {
		return errors.Mismatch(full, "none in parameter position")
	}
	switch resolveAlias(env.Library, par.Typ).(type) {
	case *library.Class, *library.Interface:
		if !strings.Contains(par.CType, "*") {
			return errors.Mismatch(full, "object passed by value as "+par.CType)
		}
	}
	return nil
}

func resolveAlias(lib *library.Library, tid library.TypeID) library.Type {
	t := lib.Type(tid)
	for i := 0; i < maxAliasDepth; i++ {
		a, ok := t.(*library.Alias)
		if !ok {
			return t
		}
		t = lib.Type(a.Target)
	}
	return t
}

func decorate(t string, mode RefMode, nullable bool) string {
	switch mode {
	case RefModeByRef:
		switch {
		case t == "String":
			t = "&str"
		case t == "PathBuf":
			t = "&Path"
		case strings.HasPrefix(t, "Vec<"):
			t = "&[" + strings.TrimSuffix(strings.TrimPrefix(t, "Vec<"), ">") + "]"
		default:
			t = "&" + t
		}
	case RefModeByRefMut:
		t = "&mut " + t
	}
	if nullable {
		return "Option<" + t + ">"
	}
	return t
}

// UsedTargetType returns the path the emitted file must import for tid.
// The second result is false when nothing needs importing.
func UsedTargetType(env *Env, tid library.TypeID) (string, bool) {
	lib := env.Library
	switch t := lib.Type(tid).(type) {
	case *library.Fundamental:
		switch t.Kind {
		case library.FundamentalFilename:
			return "std::path::PathBuf", true
		case library.FundamentalType:
			return "glib::types::Type", true
		}
		return "", false
	case *library.Array:
		return UsedTargetType(env, t.Elem)
	case *library.List:
		return UsedTargetType(env, t.Elem)
	case *library.SList:
		return UsedTargetType(env, t.Elem)
	}
	name, err := TargetType(env, tid)
	if err != nil {
		return "", false
	}
	return name, true
}

// BoundsTargetType returns the type name used inside a generic bound
func BoundsTargetType(env *Env, tid library.TypeID) string {
	if name, err := TargetType(env, tid); err == nil {
		return name
	}
	return env.Library.TypeName(tid)
}
