package codegen

import (
	"strings"

	"github.com/wippyai/gir/analysis"
	"github.com/wippyai/gir/config"
	"github.com/wippyai/gir/internal/nameutil"
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/version"
)

// enumMember is a member that survived alias and duplicate-value filtering
type enumMember struct {
	name    string
	cName   string
	version *version.Version
}

// Enums renders every enumeration and bitfield of ids into one file.
// It returns the module lines ("pub use self::enums::Align;") to export them.
func Enums(w *Writer, env *analysis.Env, ids []library.TypeID) []string {
	StartComments(w, env.Config)
	w.Line(0, "use ffi;")
	w.Line(0, "use glib_ffi;")
	w.Line(0, "use glib::error::ErrorDomain;")
	w.Line(0, "use glib::translate::*;")
	w.Blank()

	var exports []string
	for _, tid := range ids {
		obj, _ := env.Config.Objects.Get(env.Library.FullName(tid))
		var members config.Members
		if obj != nil {
			members = obj.Members
		}

		switch t := env.Library.Type(tid).(type) {
		case *library.Enumeration:
			if s, ok := VersionConditionString(env.Config, t.Version, false, 0); ok {
				exports = append(exports, s)
			}
			exports = append(exports, "pub use self::enums::"+t.Name+";")
			enumeration(w, env.Config, t, members)
		case *library.Bitfield:
			if s, ok := VersionConditionString(env.Config, t.Version, false, 0); ok {
				exports = append(exports, s)
			}
			exports = append(exports, "pub use self::enums::"+t.Name+";")
			bitfield(w, env.Config, t, members)
		}
	}
	return exports
}

// filterMembers drops configured aliases and members repeating an earlier
// value, and applies configured versions.
func filterMembers(all []library.Member, configured config.Members) []enumMember {
	var out []enumMember
	seen := make(map[string]bool)
	for _, m := range all {
		matched := configured.Matched(m.Name)
		alias := false
		var ver *version.Version
		for _, c := range matched {
			alias = alias || c.Alias
			if ver == nil && c.Version != nil {
				ver = c.Version
			}
		}
		if alias || seen[m.Value] {
			continue
		}
		seen[m.Value] = true
		if ver == nil {
			ver = m.Version
		}
		out = append(out, enumMember{
			name:    nameutil.ToCamel(m.Name),
			cName:   m.CIdentifier,
			version: ver,
		})
	}
	return out
}

func enumeration(w *Writer, cfg *config.Config, e *library.Enumeration, configured config.Members) {
	members := filterMembers(e.Members, configured)

	DeprecatedVersion(w, e.DeprecatedVersion, false, 0)
	VersionCondition(w, cfg, e.Version, false, 0)
	w.Line(0, "#[derive(Clone, Copy, Debug, Eq, PartialEq, Hash)]")
	w.Line(0, "pub enum %s {", e.Name)
	for _, m := range members {
		VersionCondition(w, cfg, m.version, false, 1)
		w.Line(1, "%s,", m.name)
	}
	w.Line(1, "#[doc(hidden)]")
	w.Line(1, "__Nonexhaustive(i32),")
	w.Line(0, "}")
	w.Blank()

	VersionCondition(w, cfg, e.Version, false, 0)
	w.Line(0, "#[doc(hidden)]")
	w.Line(0, "impl ToGlib for %s {", e.Name)
	w.Line(1, "type GlibType = ffi::%s;", e.CType)
	w.Blank()
	w.Line(1, "fn to_glib(&self) -> ffi::%s {", e.CType)
	w.Line(2, "match *self {")
	for _, m := range members {
		VersionCondition(w, cfg, m.version, false, 3)
		w.Line(3, "%s::%s => ffi::%s,", e.Name, m.name, m.cName)
	}
	w.Line(3, "%s::__Nonexhaustive(value) => value as ffi::%s,", e.Name, e.CType)
	w.Line(2, "}")
	w.Line(1, "}")
	w.Line(0, "}")
	w.Blank()

	assert := ""
	if cfg.GenerateSafetyAsserts {
		assert = "skip_assert_initialized!();"
	}

	VersionCondition(w, cfg, e.Version, false, 0)
	w.Line(0, "#[doc(hidden)]")
	w.Line(0, "impl FromGlib<ffi::%s> for %s {", e.CType, e.Name)
	w.Line(1, "fn from_glib(value: ffi::%s) -> Self {", e.CType)
	if assert != "" {
		w.Line(2, "%s", assert)
	}
	w.Line(2, "match value as i32 {")
	for _, m := range members {
		VersionCondition(w, cfg, m.version, false, 3)
		w.Line(3, "x if x == ffi::%s as i32 => %s::%s,", m.cName, e.Name, m.name)
	}
	w.Line(3, "value => %s::__Nonexhaustive(value),", e.Name)
	w.Line(2, "}")
	w.Line(1, "}")
	w.Line(0, "}")
	w.Blank()

	if e.ErrorDomain == "" {
		return
	}
	quark := strings.ReplaceAll(e.ErrorDomain, "-", "_")
	fallback := e.Name + "::__Nonexhaustive(code)"
	for _, m := range members {
		if m.name == "Failed" {
			fallback = e.Name + "::Failed"
		}
	}

	VersionCondition(w, cfg, e.Version, false, 0)
	w.Line(0, "impl ErrorDomain for %s {", e.Name)
	w.Line(1, "fn domain() -> glib_ffi::GQuark {")
	if assert != "" {
		w.Line(2, "%s", assert)
	}
	w.Line(2, "unsafe { ffi::%s() }", quark)
	w.Line(1, "}")
	w.Blank()
	w.Line(1, "fn code(self) -> i32 {")
	w.Line(2, "self.to_glib() as i32")
	w.Line(1, "}")
	w.Blank()
	w.Line(1, "fn from(code: i32) -> Option<Self> {")
	if assert != "" {
		w.Line(2, "%s", assert)
	}
	w.Line(2, "match code {")
	for _, m := range members {
		VersionCondition(w, cfg, m.version, false, 3)
		w.Line(3, "x if x == ffi::%s as i32 => Some(%s::%s),", m.cName, e.Name, m.name)
	}
	w.Line(3, "_ => Some(%s),", fallback)
	w.Line(2, "}")
	w.Line(1, "}")
	w.Line(0, "}")
	w.Blank()
}

func bitfield(w *Writer, cfg *config.Config, b *library.Bitfield, configured config.Members) {
	members := filterMembers(b.Members, configured)

	DeprecatedVersion(w, b.DeprecatedVersion, false, 0)
	VersionCondition(w, cfg, b.Version, false, 0)
	w.Line(0, "bitflags! {")
	w.Line(1, "pub struct %s: u32 {", b.Name)
	for _, m := range members {
		VersionCondition(w, cfg, m.version, false, 2)
		w.Line(2, "const %s = ffi::%s as u32;", strings.ToUpper(nameutil.ToSnake(m.name)), m.cName)
	}
	w.Line(1, "}")
	w.Line(0, "}")
	w.Blank()

	VersionCondition(w, cfg, b.Version, false, 0)
	w.Line(0, "#[doc(hidden)]")
	w.Line(0, "impl ToGlib for %s {", b.Name)
	w.Line(1, "type GlibType = ffi::%s;", b.CType)
	w.Blank()
	w.Line(1, "fn to_glib(&self) -> ffi::%s {", b.CType)
	w.Line(2, "ffi::%s::from_bits_truncate(self.bits())", b.CType)
	w.Line(1, "}")
	w.Line(0, "}")
	w.Blank()
}
