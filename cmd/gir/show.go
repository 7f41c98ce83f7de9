package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/gir/analysis"
	"github.com/wippyai/gir/library"
)

// shownKinds are the declarations listed per namespace; fundamentals,
// containers and placeholders are left out.
var shownKinds = map[string]bool{
	"class":       true,
	"interface":   true,
	"record":      true,
	"union":       true,
	"enumeration": true,
	"bitfield":    true,
	"alias":       true,
	"callback":    true,
}

// printSummary lists every loaded namespace with its names, declarations,
// constants and functions, then the configured objects.
func printSummary(w io.Writer, env *analysis.Env) {
	lib := env.Library
	for _, nsID := range lib.NamespaceIDs() {
		ns := lib.Namespace(nsID)
		marker := ""
		if lib.IsMain(library.TypeID{NS: nsID}) {
			marker = " (main)"
		}
		fmt.Fprintf(w, "Namespace: %s%s\n", ns.Name, marker)
		fmt.Fprintf(w, "\tNames: %s\n", strings.Join(ns.Names(), ", "))

		for id := 0; id < ns.Len(); id++ {
			t := ns.Type(uint32(id))
			if kind := library.KindName(t); shownKinds[kind] {
				fmt.Fprintf(w, "\t%s %s\n", kind, t.TypeName())
			}
		}
		for _, c := range ns.Constants {
			fmt.Fprintf(w, "\tconst %s = %s\n", c.Name, c.Value)
		}
		for _, f := range ns.Functions {
			fmt.Fprintf(w, "\tfunction %s\n", f.Name)
		}
	}

	fmt.Fprintf(w, "\nConfigured objects: %d\n", env.Config.Objects.Len())
	for _, name := range env.Config.Objects.Names() {
		fmt.Fprintf(w, "  %-32s %s\n", name, env.Config.Objects.Status(name))
	}
}
