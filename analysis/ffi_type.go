package analysis

import (
	"strings"

	"github.com/wippyai/gir/library"
)

// UsedFFIType returns the raw binding path the emitted file must import for
// tid, e.g. "ffi::GtkWidget" or "gdk_ffi::GdkWindow". Scalars need nothing.
func UsedFFIType(env *Env, tid library.TypeID) (string, bool) {
	lib := env.Library
	t := lib.Type(tid)

	if f, ok := t.(*library.Fundamental); ok {
		switch f.Kind {
		case library.FundamentalType:
			return "glib_ffi::GType", true
		case library.FundamentalPointer:
			return "glib_ffi::" + f.CType, true
		}
		return "", false
	}

	switch t.(type) {
	case *library.Alias, *library.Enumeration, *library.Bitfield, *library.Record,
		*library.Union, *library.Class, *library.Interface, *library.Callback:
	default:
		return "", false
	}

	cType := strings.TrimSpace(strings.TrimRight(library.CTypeOf(t), "*"))
	if cType == "" {
		return "", false
	}
	return ffiCrate(env, tid) + "::" + cType, true
}

func ffiCrate(env *Env, tid library.TypeID) string {
	if env.Library.IsMain(tid) {
		return "ffi"
	}
	return crateOf(env.Library.Namespace(tid.NS).Name) + "_ffi"
}
