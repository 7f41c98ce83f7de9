package codegen

import (
	"strings"

	"github.com/wippyai/gir/config"
	"github.com/wippyai/gir/version"
)

// GeneratedHeader opens every generated file
const GeneratedHeader = "// This file was generated by gir. DO NOT EDIT"

// StartComments writes the generated-file header
func StartComments(w *Writer, cfg *config.Config) {
	w.Line(0, GeneratedHeader)
	if cfg.Library != "" {
		w.Line(0, "// from %s", cfg.GirFileName())
	}
	w.Blank()
}

// Uses writes one use line per imported path
func Uses(w *Writer, used []string) {
	if len(used) == 0 {
		return
	}
	for _, u := range used {
		w.Line(0, "use %s;", u)
	}
	w.Blank()
}

// VersionConditionString returns the feature gate attribute for v, or false
// when v is not newer than the configured minimum.
func VersionConditionString(cfg *config.Config, v *version.Version, commented bool, indent int) (string, bool) {
	if v == nil || !cfg.MinCfgVersion.Less(*v) {
		return "", false
	}
	prefix := strings.Repeat("\t", indent)
	if commented {
		prefix += "//"
	}
	return prefix + `#[cfg(feature = "` + v.Feature() + `")]`, true
}

// VersionCondition writes the feature gate attribute for v, if any
func VersionCondition(w *Writer, cfg *config.Config, v *version.Version, commented bool, indent int) {
	if s, ok := VersionConditionString(cfg, v, commented, indent); ok {
		w.Line(0, "%s", s)
	}
}

// DeprecatedVersion writes the deprecation attribute for v, if any
func DeprecatedVersion(w *Writer, v *version.Version, commented bool, indent int) {
	if v == nil {
		return
	}
	w.Comment(commented, indent, `#[cfg_attr(feature = "%s", deprecated)]`, v.Feature())
}
