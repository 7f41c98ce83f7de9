package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/gir/analysis"
	"github.com/wippyai/gir/config"
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/version"
)

type fixture struct {
	env                  *analysis.Env
	widget, rng, orient  library.TypeID
	gint, gdouble, gbool library.TypeID
}

func newFixture(t *testing.T, objects ...config.Object) *fixture {
	t.Helper()
	lib := library.New()
	f := &fixture{}

	gobject := lib.AddNamespace("GObject")
	gtk := lib.AddNamespace("Gtk")
	lib.SetDefaultNamespace(gtk)

	f.gint = mustResolve(t, lib, "gint")
	f.gdouble = mustResolve(t, lib, "gdouble")
	f.gbool = mustResolve(t, lib, "gboolean")

	object := lib.AddType(gobject, "Object", &library.Class{Name: "Object", CType: "GObject"})
	f.widget = lib.AddType(gtk, "Widget", &library.Class{
		Name:        "Widget",
		CType:       "GtkWidget",
		GlibGetType: "gtk_widget_get_type",
		Parent:      &object,
		Functions: []library.Function{
			{Name: "show", CIdentifier: "gtk_widget_show", Kind: library.FunctionKindMethod},
		},
		Signals: []library.Signal{{Name: "destroy"}},
	})
	f.rng = lib.AddType(gtk, "Range", &library.Class{
		Name:        "Range",
		CType:       "GtkRange",
		GlibGetType: "gtk_range_get_type",
		Parent:      &f.widget,
		Functions: []library.Function{
			{
				Name:        "get_value",
				CIdentifier: "gtk_range_get_value",
				Kind:        library.FunctionKindMethod,
				Ret:         library.Parameter{Typ: f.gdouble, CType: "gdouble"},
			},
			{
				Name:        "set_inverted",
				CIdentifier: "gtk_range_set_inverted",
				Kind:        library.FunctionKindMethod,
				Parameters: []library.Parameter{
					{Name: "setting", Typ: f.gbool, CType: "gboolean"},
				},
			},
			{
				Name:        "get_slider_range",
				CIdentifier: "gtk_range_get_slider_range",
				Kind:        library.FunctionKindMethod,
				Parameters: []library.Parameter{
					{Name: "slider_start", Typ: f.gint, CType: "gint*", Direction: library.DirectionOut},
				},
			},
		},
		Signals: []library.Signal{
			{Name: "value-changed"},
			{Name: "adjust-bounds", Parameters: []library.Parameter{
				{Name: "value", Typ: f.gdouble, CType: "gdouble", Direction: library.DirectionOut},
			}},
		},
	})
	f.orient = lib.AddType(gtk, "Orientation", &library.Enumeration{
		Name:  "Orientation",
		CType: "GtkOrientation",
		Members: []library.Member{
			{Name: "horizontal", CIdentifier: "GTK_ORIENTATION_HORIZONTAL", Value: "0"},
			{Name: "vertical", CIdentifier: "GTK_ORIENTATION_VERTICAL", Value: "1"},
			{Name: "vert", CIdentifier: "GTK_ORIENTATION_VERT", Value: "1"},
		},
	})

	if err := lib.CheckResolved(); err != nil {
		t.Fatalf("fixture unresolved: %v", err)
	}

	f.env = analysis.NewEnv(lib, &config.Config{
		AllowedDeprecatedVersion: version.Any(),
		MinCfgVersion:            version.MustParse("3.0"),
		Objects:                  config.NewObjects(objects...),
		Library:                  "Gtk",
		LibraryVersion:           "3.0",
	})
	return f
}

func mustResolve(t *testing.T, lib *library.Library, name string) library.TypeID {
	t.Helper()
	tid, ok := lib.Resolve(name, library.InternalNamespace)
	if !ok {
		t.Fatalf("fundamental %q not registered", name)
	}
	return tid
}

func vptr(s string) *version.Version {
	v := version.MustParse(s)
	return &v
}

func generateAll() []config.Object {
	return []config.Object{
		{Name: "Gtk.Widget", Status: config.StatusGenerate},
		{Name: "Gtk.Range", Status: config.StatusGenerate},
		{Name: "Gtk.Orientation", Status: config.StatusGenerate, Members: config.Members{
			{Name: "horizontal", Version: vptr("3.10")},
		}},
	}
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, s := range want {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q\n%s", s, out)
		}
	}
}

func assertNotContains(t *testing.T, out string, unwanted ...string) {
	t.Helper()
	for _, s := range unwanted {
		if strings.Contains(out, s) {
			t.Errorf("output unexpectedly contains %q\n%s", s, out)
		}
	}
}

func TestRawType(t *testing.T) {
	tests := []struct {
		cType string
		want  string
	}{
		{"gint", "c_int"},
		{"gboolean", "glib_ffi::gboolean"},
		{"GtkWidget*", "*mut ffi::GtkWidget"},
		{"const gchar*", "*const c_char"},
		{"gchar**", "*mut *mut c_char"},
		{"const gchar**", "*mut *const c_char"},
		{"GtkOrientation", "ffi::GtkOrientation"},
	}
	for _, tt := range tests {
		if got := rawType(tt.cType); got != tt.want {
			t.Errorf("rawType(%q) = %q, want %q", tt.cType, got, tt.want)
		}
	}
}

func TestVersionConditionString(t *testing.T) {
	cfg := &config.Config{MinCfgVersion: version.MustParse("3.0")}
	tests := []struct {
		name      string
		v         *version.Version
		commented bool
		indent    int
		want      string
		ok        bool
	}{
		{"nil", nil, false, 0, "", false},
		{"not newer", vptr("3.0"), false, 0, "", false},
		{"older", vptr("2.24"), false, 0, "", false},
		{"newer", vptr("3.10"), false, 0, `#[cfg(feature = "v3_10")]`, true},
		{"commented indented", vptr("3.16"), true, 1, "\t//" + `#[cfg(feature = "v3_16")]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VersionConditionString(cfg, tt.v, tt.commented, tt.indent)
			if ok != tt.ok || got != tt.want {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWriter_Line(t *testing.T) {
	w := NewWriter()
	w.Line(0, "%s", `println!("100%d")`)
	w.Line(1, "let x = %d;", 5)
	w.Line(2, "}")
	want := "println!(\"100%d\")\n\tlet x = 5;\n\t\t}\n"
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVersionCondition(t *testing.T) {
	cfg := &config.Config{MinCfgVersion: version.MustParse("3.0")}
	w := NewWriter()
	VersionCondition(w, cfg, vptr("2.0"), false, 0)
	VersionCondition(w, cfg, vptr("3.10"), true, 1)
	if got, want := w.String(), "\t//#[cfg(feature = \"v3_10\")]\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnums(t *testing.T) {
	f := newFixture(t, generateAll()...)
	w := NewWriter()
	exports := Enums(w, f.env, []library.TypeID{f.orient})
	out := w.String()

	assertContains(t, out,
		GeneratedHeader,
		"// from Gtk-3.0",
		"pub enum Orientation {",
		"\t#[cfg(feature = \"v3_10\")]\n\tHorizontal,",
		"\tVertical,",
		"Orientation::Vertical => ffi::GTK_ORIENTATION_VERTICAL,",
		"impl FromGlib<ffi::GtkOrientation> for Orientation {",
	)
	assertNotContains(t, out, "Vert,", "GTK_ORIENTATION_VERT,", "impl ErrorDomain")

	if len(exports) != 1 || exports[0] != "pub use self::enums::Orientation;" {
		t.Errorf("exports = %v", exports)
	}
}

func TestEnums_MemberAlias(t *testing.T) {
	f := newFixture(t, config.Object{
		Name:    "Gtk.Orientation",
		Status:  config.StatusGenerate,
		Members: config.Members{{Name: "vert*", Alias: true}},
	})
	w := NewWriter()
	Enums(w, f.env, []library.TypeID{f.orient})
	out := w.String()

	assertContains(t, out, "\tHorizontal,")
	assertNotContains(t, out, "\tVertical,", "\tVert,")
}

func TestEnums_ErrorDomain(t *testing.T) {
	lib := library.New()
	gtk := lib.AddNamespace("Gtk")
	lib.SetDefaultNamespace(gtk)
	tid := lib.AddType(gtk, "BuilderError", &library.Enumeration{
		Name:        "BuilderError",
		CType:       "GtkBuilderError",
		ErrorDomain: "gtk-builder-error-quark",
		Members: []library.Member{
			{Name: "invalid_type_function", CIdentifier: "GTK_BUILDER_ERROR_INVALID_TYPE_FUNCTION", Value: "0"},
		},
	})
	env := analysis.NewEnv(lib, nil)
	env.Config.GenerateSafetyAsserts = true

	w := NewWriter()
	Enums(w, env, []library.TypeID{tid})
	assertContains(t, w.String(),
		"impl ErrorDomain for BuilderError {",
		"unsafe { ffi::gtk_builder_error_quark() }",
		"x if x == ffi::GTK_BUILDER_ERROR_INVALID_TYPE_FUNCTION as i32 => Some(BuilderError::InvalidTypeFunction),",
		"_ => Some(BuilderError::__Nonexhaustive(code)),",
		"skip_assert_initialized!();",
	)
	if n := strings.Count(w.String(), "\t\tskip_assert_initialized!();\n"); n != 3 {
		t.Errorf("skip_assert_initialized count = %d, want 3", n)
	}
}

func TestClass_Impl(t *testing.T) {
	f := newFixture(t, generateAll()...)
	info, err := analysis.AnalyzeClass(f.env, "Gtk.Range")
	if err != nil {
		t.Fatalf("AnalyzeClass: %v", err)
	}

	w := NewWriter()
	Class(w, f.env.Config, info)
	out := w.String()

	assertContains(t, out,
		"pub struct Range(Object<ffi::GtkRange>): Widget, glib::Object;",
		"get_type => || ffi::gtk_range_get_type(),",
		"impl Range {",
		"\tpub fn get_value(&self) -> f64 {",
		"\t\t\tffi::gtk_range_get_value(self.to_glib_none().0)",
		"\tpub fn set_inverted(&self, setting: bool) {",
		"ffi::gtk_range_set_inverted(self.to_glib_none().0, setting.to_glib());",
		"\t// Out slider_start: gint",
		"\t//pub fn get_slider_range(&self, slider_start: ",
		"\tpub fn connect_value_changed<F: Fn(&Range) + 'static>(&self, f: F) -> u64 {",
		`connect(self.to_glib_none().0, "value-changed",`,
		"transmute(value_changed_trampoline as usize)",
		"\t// connect_adjust_bounds: ",
		"unsafe extern \"C\" fn value_changed_trampoline(this: *mut ffi::GtkRange, f: glib_ffi::gpointer)",
		"\tf(&from_glib_none(this))",
		"use glib::signal::connect;",
	)
	assertNotContains(t, out, "pub trait RangeExt", "adjust_bounds_trampoline")
}

func TestClass_Trait(t *testing.T) {
	f := newFixture(t, generateAll()...)
	info, err := analysis.AnalyzeClass(f.env, "Gtk.Widget")
	if err != nil {
		t.Fatalf("AnalyzeClass: %v", err)
	}

	w := NewWriter()
	Class(w, f.env.Config, info)
	out := w.String()

	assertContains(t, out,
		"pub struct Widget(Object<ffi::GtkWidget>): glib::Object;",
		"pub trait WidgetExt {",
		"\tfn show(&self);",
		"impl<O: IsA<Widget> + IsA<Object>> WidgetExt for O {",
		"\tfn show(&self) {",
		"\tfn connect_destroy<F: Fn(&Self) + 'static>(&self, f: F) -> u64;",
		"transmute(destroy_trampoline::<Self> as usize)",
		"unsafe extern \"C\" fn destroy_trampoline<T>(this: *mut ffi::GtkWidget, f: glib_ffi::gpointer)",
		"where T: IsA<Widget> {",
		"&Widget::from_glib_none(this).downcast_unchecked()",
	)
	assertNotContains(t, out, "impl Widget {", "pub fn show")
}

func TestFunction_Throws(t *testing.T) {
	cfg := &config.Config{}
	info := &analysis.FunctionInfo{
		Name:     "load_from_file",
		GlibName: "gtk_builder_load_from_file",
		Kind:     library.FunctionKindMethod,
		Throws:   true,
	}
	w := NewWriter()
	Function(w, cfg, info, false, false, 0)
	assertContains(t, w.String(),
		"pub fn load_from_file(&self) -> Result<(), Error> {",
		"let mut error = ptr::null_mut(); ffi::gtk_builder_load_from_file(self.to_glib_none().0, &mut error);",
		"if error.is_null() { Ok(()) } else { Err(from_glib_full(error)) }",
	)
}

func TestGenerate(t *testing.T) {
	f := newFixture(t, generateAll()...)
	res := analysis.Run(f.env)
	target := t.TempDir()

	written, err := Generate(f.env, res, target)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	auto := filepath.Join(target, AutoDir)
	want := []string{
		filepath.Join(auto, "widget.rs"),
		filepath.Join(auto, "range.rs"),
		filepath.Join(auto, "enums.rs"),
		filepath.Join(auto, "mod.rs"),
	}
	if len(written) != len(want) {
		t.Fatalf("written = %v, want %v", written, want)
	}
	for i := range want {
		if written[i] != want[i] {
			t.Errorf("written[%d] = %q, want %q", i, written[i], want[i])
		}
		if _, err := os.Stat(want[i]); err != nil {
			t.Errorf("missing %s: %v", want[i], err)
		}
	}

	mod, err := os.ReadFile(filepath.Join(auto, "mod.rs"))
	if err != nil {
		t.Fatalf("read mod.rs: %v", err)
	}
	assertContains(t, string(mod),
		"mod widget;",
		"pub use self::widget::Widget;",
		"pub use self::widget::WidgetExt;",
		"pub use self::range::Range;",
		"mod enums;",
		"pub use self::enums::Orientation;",
	)
	assertNotContains(t, string(mod), "RangeExt")
}

func TestSaveToFile_Backup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "file.rs")

	if err := SaveToFile(path, true, []byte("first")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := os.Stat(path + BackupExt); !os.IsNotExist(err) {
		t.Errorf("backup created for a new file")
	}

	if err := SaveToFile(path, true, []byte("second")); err != nil {
		t.Fatalf("second save: %v", err)
	}
	backup, err := os.ReadFile(path + BackupExt)
	if err != nil || string(backup) != "first" {
		t.Errorf("backup = %q, %v; want first", backup, err)
	}
	current, _ := os.ReadFile(path)
	if string(current) != "second" {
		t.Errorf("current = %q, want second", current)
	}

	if err := SaveToFile(path, false, []byte("third")); err != nil {
		t.Fatalf("third save: %v", err)
	}
	backup, _ = os.ReadFile(path + BackupExt)
	if string(backup) != "first" {
		t.Errorf("backup overwritten without makeBackup: %q", backup)
	}
}
