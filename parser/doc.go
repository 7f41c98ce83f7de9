// Package parser loads GObject introspection (.gir) repositories into a
// library.Library.
//
// Load reads <dir>/<name>.gir, loads every <include>d repository first (each at
// most once), then registers the namespace's declarations in document order.
// Every declared name is reserved with a placeholder before any declaration is
// decoded, so references between declarations of one namespace never depend on
// their order. References to namespaces that are never loaded stay as
// placeholders and are reported by library.CheckResolved.
//
// Example:
//
//	lib := library.New()
//	if err := parser.Load(lib, "/usr/share/gir-1.0", "Gtk-3.0"); err != nil {
//		return err
//	}
//	if err := lib.CheckResolved(); err != nil {
//		return err
//	}
package parser
