package codegen

import (
	"strings"

	"github.com/wippyai/gir/analysis"
	"github.com/wippyai/gir/config"
	"github.com/wippyai/gir/internal/nameutil"
)

// Signal writes the connect method of one signal. Rejected signals get a
// comment listing their reasons instead.
func Signal(w *Writer, cfg *config.Config, class *analysis.ClassInfo, info *analysis.SignalInfo, inTrait, onlyDeclaration bool, indent int) {
	w.Blank()
	if !info.Bound() {
		w.Line(indent, "// connect_%s: %v", nameutil.SignalToSnake(info.Name), info.Rejection)
		return
	}
	tramp, ok := findTrampoline(class.Trampolines, info.Trampoline)
	if !ok {
		return
	}

	DeprecatedVersion(w, info.DeprecatedVersion, false, indent)
	VersionCondition(w, cfg, info.Version, false, indent)

	closure := closureType(class, tramp, inTrait)
	declaration := "fn connect_" + nameutil.SignalToSnake(info.Name) +
		"<F: " + closure + " + 'static>(&self, f: F) -> u64"
	if !inTrait {
		declaration = "pub " + declaration
	}
	if onlyDeclaration {
		w.Line(indent, "%s;", declaration)
		return
	}

	trampoline := tramp.Name
	if inTrait {
		trampoline += "::<Self>"
	}
	w.Line(indent, "%s {", declaration)
	w.Line(indent+1, "unsafe {")
	w.Line(indent+2, "let f: Box_<Box_<%s + 'static>> = Box_::new(Box_::new(f));", closure)
	w.Line(indent+2, `connect(self.to_glib_none().0, "%s",`, info.Name)
	w.Line(indent+3, "transmute(%s as usize), Box_::into_raw(f) as *mut _)", trampoline)
	w.Line(indent+1, "}")
	w.Line(indent, "}")
}

// Trampoline writes the extern function forwarding a signal emission to the
// boxed closure.
func Trampoline(w *Writer, cfg *config.Config, class *analysis.ClassInfo, tramp *analysis.Trampoline) {
	inTrait := !tramp.Bounds.IsEmpty()
	w.Blank()
	VersionCondition(w, cfg, tramp.Version, false, 0)

	raw := make([]string, 0, len(tramp.Parameters)+1)
	for i := range tramp.Parameters {
		par := &tramp.Parameters[i]
		raw = append(raw, nameutil.MangleKeywords(par.Name)+": "+rawType(par.CType))
	}
	raw = append(raw, "f: glib_ffi::gpointer")

	var aliases, where []string
	for _, b := range tramp.Bounds.All() {
		aliases = append(aliases, b.Alias)
		where = append(where, b.Render())
	}
	generic := ""
	if inTrait {
		generic = "<" + strings.Join(aliases, ", ") + ">"
	}
	header := "unsafe extern \"C\" fn " + tramp.Name + generic + "(" + strings.Join(raw, ", ") + ")"
	if !tramp.Ret.IsVoid() {
		header += " -> " + rawType(tramp.Ret.CType)
	}
	w.Line(0, "%s", header)
	if inTrait {
		w.Line(0, "where %s {", strings.Join(where, ", "))
	} else {
		w.Line(0, "{")
	}

	if cfg.GenerateSafetyAsserts {
		w.Line(1, "callback_guard!();")
	}
	w.Line(1, "let f: &&(%s + 'static) = transmute(f);", closureType(class, tramp, inTrait))

	args := make([]string, 0, len(tramp.Parameters))
	for i := range tramp.Parameters {
		par := &tramp.Parameters[i]
		if i == 0 {
			args = append(args, receiverArgument(class, inTrait))
			continue
		}
		args = append(args, closureArgument(par))
	}
	call := "f(" + strings.Join(args, ", ") + ")"
	switch {
	case tramp.Ret.IsVoid():
		w.Line(1, "%s", call)
	case tramp.Ret.Conversion == analysis.ConversionScalar:
		w.Line(1, "%s.to_glib()", call)
	default:
		w.Line(1, "%s", call)
	}
	w.Line(0, "}")
}

func findTrampoline(ts analysis.Trampolines, name string) (*analysis.Trampoline, bool) {
	for i := range ts {
		if ts[i].Name == name {
			return &ts[i], true
		}
	}
	return nil, false
}

// closureType spells the callback type, e.g. "Fn(&Range, f64) -> bool"
func closureType(class *analysis.ClassInfo, tramp *analysis.Trampoline, inTrait bool) string {
	receiver := "&" + class.Name
	if inTrait {
		receiver = "&Self"
	}
	args := []string{receiver}
	for i := 1; i < len(tramp.Parameters); i++ {
		args = append(args, targetOrUnmapped(&tramp.Parameters[i]))
	}
	s := "Fn(" + strings.Join(args, ", ") + ")"
	if !tramp.Ret.IsVoid() {
		s += " -> " + targetOrUnmapped(&tramp.Ret)
	}
	return s
}

func receiverArgument(class *analysis.ClassInfo, inTrait bool) string {
	if inTrait {
		return "&" + class.Name + "::from_glib_none(this).downcast_unchecked()"
	}
	return "&from_glib_none(this)"
}

func closureArgument(par *analysis.Parameter) string {
	name := nameutil.MangleKeywords(par.Name)
	switch par.Conversion {
	case analysis.ConversionScalar:
		return "from_glib(" + name + ")"
	case analysis.ConversionBorrow:
		return "&from_glib_none(" + name + ")"
	case analysis.ConversionTransfer:
		return "from_glib_full(" + name + ")"
	}
	return name
}
