package codegen

import (
	"strings"

	"github.com/wippyai/gir/analysis"
	"github.com/wippyai/gir/config"
	"github.com/wippyai/gir/internal/nameutil"
	"github.com/wippyai/gir/library"
)

// unmappedType stands in for a parameter whose type has no target spelling
const unmappedType = "/*Unknown*/"

// Function writes one function of a class.
// With onlyDeclaration set only the trait signature is written. In trait
// context methods take their receiver through the IsA-bound O parameter.
// A commented FunctionInfo is written with every line commented out, preceded
// by the reasons it could not be bound.
func Function(w *Writer, cfg *config.Config, info *analysis.FunctionInfo, inTrait, onlyDeclaration bool, indent int) {
	commented := info.Commented
	w.Blank()
	if commented {
		for _, reason := range info.Errors {
			w.Line(indent, "// %s", reason)
		}
	}
	if info.DeprecatedVersion != nil {
		DeprecatedVersion(w, info.DeprecatedVersion, commented, indent)
	}
	VersionCondition(w, cfg, info.Version, commented, indent)

	declaration := signature(info, inTrait, onlyDeclaration)
	if onlyDeclaration {
		w.Comment(commented, indent, "%s;", declaration)
		return
	}

	w.Comment(commented, indent, "%s {", declaration)
	if cfg.GenerateSafetyAsserts && info.Kind != library.FunctionKindMethod {
		w.Comment(commented, indent+1, "assert_initialized_main_thread!();")
	}
	w.Comment(commented, indent+1, "unsafe {")
	w.Comment(commented, indent+2, "%s", body(info))
	w.Comment(commented, indent+1, "}")
	w.Comment(commented, indent, "}")
}

func signature(info *analysis.FunctionInfo, inTrait, onlyDeclaration bool) string {
	var sb strings.Builder
	if !inTrait {
		sb.WriteString("pub ")
	}
	sb.WriteString("fn ")
	sb.WriteString(nameutil.MangleKeywords(info.Name))
	sb.WriteString("(")

	var args []string
	if info.Kind == library.FunctionKindMethod {
		args = append(args, "&self")
	}
	for i := range info.Parameters {
		par := &info.Parameters[i]
		args = append(args, nameutil.MangleKeywords(par.Name)+": "+targetOrUnmapped(par))
	}
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteString(")")

	if ret := returnType(info); ret != "" {
		sb.WriteString(" -> ")
		sb.WriteString(ret)
	}
	return sb.String()
}

func returnType(info *analysis.FunctionInfo) string {
	var ret string
	if !info.Ret.IsVoid() {
		ret = targetOrUnmapped(&info.Ret)
	}
	if !info.Throws {
		return ret
	}
	if ret == "" {
		ret = "()"
	}
	return "Result<" + ret + ", Error>"
}

func targetOrUnmapped(par *analysis.Parameter) string {
	if par.TargetType == "" {
		return unmappedType
	}
	return par.TargetType
}

// body spells the foreign call with every argument converted
func body(info *analysis.FunctionInfo) string {
	var args []string
	if info.Kind == library.FunctionKindMethod {
		args = append(args, "self.to_glib_none().0")
	}
	for i := range info.Parameters {
		args = append(args, argument(&info.Parameters[i]))
	}
	if info.Throws {
		args = append(args, "&mut error")
	}
	call := "ffi::" + info.GlibName + "(" + strings.Join(args, ", ") + ")"

	if info.Throws {
		ret := "()"
		if !info.Ret.IsVoid() {
			ret = fromGlib(&info.Ret, "ret")
			call = "let ret = " + call
		}
		return "let mut error = ptr::null_mut(); " + call +
			"; if error.is_null() { Ok(" + ret + ") } else { Err(from_glib_full(error)) }"
	}
	if info.Ret.IsVoid() {
		return call + ";"
	}
	return fromGlib(&info.Ret, call)
}

// argument converts a parameter to its foreign representation
func argument(par *analysis.Parameter) string {
	name := nameutil.MangleKeywords(par.Name)
	switch par.Conversion {
	case analysis.ConversionScalar:
		return name + ".to_glib()"
	case analysis.ConversionBorrow:
		return name + ".to_glib_none().0"
	case analysis.ConversionTransfer:
		return name + ".to_glib_full()"
	}
	return name
}

// fromGlib converts a foreign expression to the return value's target type
func fromGlib(ret *analysis.Parameter, expr string) string {
	switch ret.Conversion {
	case analysis.ConversionScalar:
		return "from_glib(" + expr + ")"
	case analysis.ConversionBorrow:
		return "from_glib_none(" + expr + ")"
	case analysis.ConversionTransfer:
		return "from_glib_full(" + expr + ")"
	}
	return expr
}
