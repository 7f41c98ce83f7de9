package analysis

import (
	"testing"

	"github.com/wippyai/gir/config"
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/version"
)

// fixture is a small Gtk-like library with a three level class hierarchy
type fixture struct {
	lib *library.Library
	env *Env

	gtk, gdk library.NamespaceID

	object, widget, rng, scale, plug library.TypeID
	window, event, pixbuf            library.TypeID
	orientation                      library.TypeID
	gint, gboolean, gdouble, utf8    library.TypeID
	varArgs                          library.TypeID
}

func newFixture(t *testing.T, allowed string, objects ...config.Object) *fixture {
	t.Helper()

	r, err := version.ParseRange(allowed)
	if err != nil {
		t.Fatalf("ParseRange(%q): %v", allowed, err)
	}

	lib := library.New()
	f := &fixture{lib: lib}

	gobject := lib.AddNamespace("GObject")
	f.gdk = lib.AddNamespace("Gdk")
	pixbufNS := lib.AddNamespace("GdkPixbuf")
	f.gtk = lib.AddNamespace("Gtk")
	lib.SetDefaultNamespace(f.gtk)

	f.object = lib.AddType(gobject, "Object", &library.Class{Name: "Object", CType: "GObject"})
	f.window = lib.AddType(f.gdk, "Window", &library.Class{Name: "Window", CType: "GdkWindow", Parent: &f.object})
	f.event = lib.AddType(f.gdk, "Event", &library.Union{Name: "Event", CType: "GdkEvent"})
	f.pixbuf = lib.AddType(pixbufNS, "Pixbuf", &library.Class{Name: "Pixbuf", CType: "GdkPixbuf", Parent: &f.object})

	f.widget = lib.AddType(f.gtk, "Widget", &library.Class{Name: "Widget", CType: "GtkWidget", Parent: &f.object})
	f.rng = lib.AddType(f.gtk, "Range", &library.Class{Name: "Range", CType: "GtkRange", Parent: &f.widget})
	f.scale = lib.AddType(f.gtk, "Scale", &library.Class{Name: "Scale", CType: "GtkScale", Parent: &f.rng})
	f.plug = lib.AddType(f.gtk, "Plug", &library.Class{Name: "Plug", CType: "GtkPlug", Parent: &f.widget})
	f.orientation = lib.AddType(f.gtk, "Orientation", &library.Enumeration{Name: "Orientation", CType: "GtkOrientation"})

	f.gint = mustResolve(t, lib, "gint")
	f.gboolean = mustResolve(t, lib, "gboolean")
	f.gdouble = mustResolve(t, lib, "gdouble")
	f.utf8 = mustResolve(t, lib, "utf8")
	f.varArgs = mustResolve(t, lib, "va_list")

	if err := lib.CheckResolved(); err != nil {
		t.Fatalf("fixture library unresolved: %v", err)
	}

	f.env = NewEnv(lib, &config.Config{
		AllowedDeprecatedVersion: r,
		Objects:                  config.NewObjects(objects...),
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

func (f *fixture) rangeClass() *library.Class {
	c, _ := f.lib.Class(f.rng)
	return c
}

func mustVersion(t *testing.T, s string) *version.Version {
	t.Helper()
	v, err := version.Ptr(s)
	if err != nil {
		t.Fatalf("version %q: %v", s, err)
	}
	return v
}
