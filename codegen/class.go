package codegen

import (
	"strings"

	"github.com/wippyai/gir/analysis"
	"github.com/wippyai/gir/config"
)

// Class writes the module of one analyzed class.
// Classes with children get an <Name>Ext trait implemented for every IsA
// subtype; the inherent impl carries the constructors, and the methods too
// when there is no trait.
func Class(w *Writer, cfg *config.Config, info *analysis.ClassInfo) {
	generateImpl := info.HasConstructors && !info.AllConstructorsDeprecated
	generateTrait := info.HasChildren
	if !info.HasChildren {
		generateImpl = true
	}

	StartComments(w, cfg)
	Uses(w, classUses(info))
	wrapper(w, info)

	if generateImpl {
		w.Blank()
		w.Line(0, "impl %s {", info.Name)
		for _, f := range info.Constructors() {
			Function(w, cfg, f, false, false, 1)
		}
		for _, f := range info.StaticFunctions() {
			Function(w, cfg, f, false, false, 1)
		}
		if !info.HasChildren {
			for _, f := range info.Methods() {
				Function(w, cfg, f, false, false, 1)
			}
			for i := range info.Signals {
				Signal(w, cfg, info, &info.Signals[i], false, false, 1)
			}
		}
		w.Line(0, "}")
	}

	if generateTrait {
		w.Blank()
		w.Line(0, "pub trait %sExt {", info.Name)
		for _, f := range info.Methods() {
			Function(w, cfg, f, true, true, 1)
		}
		for i := range info.Signals {
			Signal(w, cfg, info, &info.Signals[i], true, true, 1)
		}
		w.Line(0, "}")

		w.Blank()
		w.Line(0, "impl<O: IsA<%s> + IsA<Object>> %sExt for O {", info.Name, info.Name)
		for _, f := range info.Methods() {
			Function(w, cfg, f, true, false, 1)
		}
		for i := range info.Signals {
			Signal(w, cfg, info, &info.Signals[i], true, false, 1)
		}
		w.Line(0, "}")
	}

	for i := range info.Trampolines {
		Trampoline(w, cfg, info, &info.Trampolines[i])
	}
}

func wrapper(w *Writer, info *analysis.ClassInfo) {
	DeprecatedVersion(w, info.DeprecatedVersion, false, 0)
	w.Line(0, "glib_wrapper! {")
	if len(info.Parents) == 0 {
		w.Line(1, "pub struct %s(Object<ffi::%s>);", info.Name, info.CType)
	} else {
		parents := make([]string, len(info.Parents))
		for i, p := range info.Parents {
			parents[i] = p.Name
		}
		w.Line(1, "pub struct %s(Object<ffi::%s>): %s;", info.Name, info.CType, strings.Join(parents, ", "))
	}
	w.Blank()
	w.Line(1, "match fn {")
	w.Line(2, "get_type => || ffi::%s(),", info.GlibGetType)
	w.Line(1, "}")
	w.Line(0, "}")
}

func classUses(info *analysis.ClassInfo) []string {
	uses := []string{"ffi", "glib::translate::*"}
	if len(info.Trampolines) > 0 {
		uses = append(uses,
			"glib::signal::connect",
			"glib_ffi",
			"std::boxed::Box as Box_",
			"std::mem::transmute")
	}
	for _, f := range info.Functions {
		if f.Throws && !f.Commented {
			uses = append(uses, "std::ptr", "Error")
			break
		}
	}
	for _, u := range info.UsedTypes {
		if u != "glib_ffi" {
			uses = append(uses, u)
		}
	}
	return unique(uses)
}

func unique(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
