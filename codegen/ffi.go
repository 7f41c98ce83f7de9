package codegen

import (
	"strings"
)

var rawScalars = map[string]string{
	"gboolean": "glib_ffi::gboolean",
	"gchar":    "c_char",
	"guchar":   "c_uchar",
	"gint":     "c_int",
	"guint":    "c_uint",
	"gshort":   "c_short",
	"gushort":  "c_ushort",
	"glong":    "c_long",
	"gulong":   "c_ulong",
	"gint8":    "i8",
	"guint8":   "u8",
	"gint16":   "i16",
	"guint16":  "u16",
	"gint32":   "i32",
	"guint32":  "u32",
	"gint64":   "i64",
	"guint64":  "u64",
	"gsize":    "usize",
	"gssize":   "isize",
	"gfloat":   "c_float",
	"gdouble":  "c_double",
	"gunichar": "u32",
	"gpointer": "glib_ffi::gpointer",
	"GType":    "glib_ffi::GType",
}

// rawType spells a C type for an extern signature, e.g.
// "const gchar*" -> "*const c_char" and "GtkWidget*" -> "*mut ffi::GtkWidget".
func rawType(cType string) string {
	s := strings.TrimSpace(cType)
	isConst := strings.HasPrefix(s, "const ")
	s = strings.TrimSpace(strings.TrimPrefix(s, "const "))

	depth := 0
	for strings.HasSuffix(s, "*") {
		depth++
		s = strings.TrimSpace(strings.TrimSuffix(s, "*"))
	}

	base, ok := rawScalars[s]
	if !ok {
		base = "ffi::" + s
	}
	for i := 0; i < depth; i++ {
		if i == 0 && isConst {
			base = "*const " + base
		} else {
			base = "*mut " + base
		}
	}
	return base
}
