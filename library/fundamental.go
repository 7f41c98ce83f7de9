package library

// fundamentals lists the built-in types in registration order.
// "none" must stay first so the zero TypeID refers to it.
var fundamentals = []Fundamental{
	{Name: "none", CType: "void", Kind: FundamentalNone},
	{Name: "gboolean", CType: "gboolean", Kind: FundamentalBoolean},
	{Name: "gint8", CType: "gint8", Kind: FundamentalInt8},
	{Name: "guint8", CType: "guint8", Kind: FundamentalUInt8},
	{Name: "gint16", CType: "gint16", Kind: FundamentalInt16},
	{Name: "guint16", CType: "guint16", Kind: FundamentalUInt16},
	{Name: "gint32", CType: "gint32", Kind: FundamentalInt32},
	{Name: "guint32", CType: "guint32", Kind: FundamentalUInt32},
	{Name: "gint64", CType: "gint64", Kind: FundamentalInt64},
	{Name: "guint64", CType: "guint64", Kind: FundamentalUInt64},
	{Name: "gchar", CType: "gchar", Kind: FundamentalChar},
	{Name: "guchar", CType: "guchar", Kind: FundamentalUChar},
	{Name: "gshort", CType: "gshort", Kind: FundamentalShort},
	{Name: "gushort", CType: "gushort", Kind: FundamentalUShort},
	{Name: "gint", CType: "gint", Kind: FundamentalInt},
	{Name: "guint", CType: "guint", Kind: FundamentalUInt},
	{Name: "glong", CType: "glong", Kind: FundamentalLong},
	{Name: "gulong", CType: "gulong", Kind: FundamentalULong},
	{Name: "gsize", CType: "gsize", Kind: FundamentalSize},
	{Name: "gssize", CType: "gssize", Kind: FundamentalSSize},
	{Name: "gfloat", CType: "gfloat", Kind: FundamentalFloat},
	{Name: "gdouble", CType: "gdouble", Kind: FundamentalDouble},
	{Name: "gunichar", CType: "gunichar", Kind: FundamentalUniChar},
	{Name: "gpointer", CType: "gpointer", Kind: FundamentalPointer},
	{Name: "gconstpointer", CType: "gconstpointer", Kind: FundamentalPointer},
	{Name: "va_list", CType: "va_list", Kind: FundamentalVarArgs},
	{Name: "utf8", CType: "gchar*", Kind: FundamentalUtf8},
	{Name: "filename", CType: "gchar*", Kind: FundamentalFilename},
	{Name: "GType", CType: "GType", Kind: FundamentalType},
	{Name: "long double", CType: "long double", Kind: FundamentalUnsupported},
	{Name: "guintptr", CType: "guintptr", Kind: FundamentalUnsupported},
	{Name: "gintptr", CType: "gintptr", Kind: FundamentalUnsupported},
}

// fundamentalAliases maps alternative spellings to registered fundamentals
var fundamentalAliases = map[string]string{
	"GObject.Type": "GType",
	"int":          "gint",
	"char":         "gchar",
	"double":       "gdouble",
	"float":        "gfloat",
}

// IsNumeric reports whether k is an integer or floating point kind
func (k FundamentalKind) IsNumeric() bool {
	switch k {
	case FundamentalInt8, FundamentalUInt8, FundamentalInt16, FundamentalUInt16,
		FundamentalInt32, FundamentalUInt32, FundamentalInt64, FundamentalUInt64,
		FundamentalChar, FundamentalUChar, FundamentalShort, FundamentalUShort,
		FundamentalInt, FundamentalUInt, FundamentalLong, FundamentalULong,
		FundamentalSize, FundamentalSSize, FundamentalFloat, FundamentalDouble:
		return true
	}
	return false
}
