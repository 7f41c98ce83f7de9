// Package nameutil converts introspection names into target identifiers.
package nameutil

import (
	"strings"
	"unicode"
)

// TrampolineSuffix is appended to the snake-case signal name of a trampoline
const TrampolineSuffix = "_trampoline"

// keywords are reserved in the target language and get a trailing underscore
var keywords = map[string]bool{
	"abstract": true, "as": true, "async": true, "await": true, "box": true,
	"break": true, "const": true, "continue": true, "crate": true, "do": true,
	"dyn": true, "else": true, "enum": true, "extern": true, "false": true,
	"final": true, "fn": true, "for": true, "if": true, "impl": true,
	"in": true, "let": true, "loop": true, "macro": true, "match": true,
	"mod": true, "move": true, "mut": true, "override": true, "priv": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"try": true, "type": true, "typeof": true, "unsafe": true, "unsized": true,
	"use": true, "virtual": true, "where": true, "while": true, "yield": true,
}

// SignalToSnake converts a kebab-case signal name to snake_case.
// Examples:
//   - "value-changed" -> "value_changed"
//   - "notify::label" -> "notify__label"
//   - "clicked" -> "clicked"
func SignalToSnake(name string) string {
	return strings.NewReplacer("-", "_", ":", "_").Replace(name)
}

// TrampolineName returns the deterministic trampoline identifier for a signal.
// Example: "value-changed" -> "value_changed_trampoline"
func TrampolineName(signal string) string {
	return SignalToSnake(signal) + TrampolineSuffix
}

// ToSnake converts CamelCase or kebab-case to snake_case.
// Examples:
//   - "NewFromFile" -> "new_from_file"
//   - "get-label" -> "get_label"
//   - "HTTPServer" -> "http_server"
func ToSnake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
		case unicode.IsUpper(r):
			if i > 0 && runes[i-1] != '_' && runes[i-1] != '-' {
				prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToCamel converts snake_case or kebab-case to CamelCase.
// Examples:
//   - "baseline_fill" -> "BaselineFill"
//   - "value-changed" -> "ValueChanged"
//   - "2big" -> "_2big"
func ToCamel(name string) string {
	var b strings.Builder
	nextUpper := true
	for _, r := range name {
		if r == '-' || r == '_' {
			nextUpper = true
			continue
		}
		if nextUpper {
			b.WriteRune(unicode.ToUpper(r))
			nextUpper = false
		} else {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		return "_" + out
	}
	return out
}

// MangleKeywords appends an underscore to reserved identifiers.
// Example: "type" -> "type_"
func MangleKeywords(name string) string {
	if keywords[name] {
		return name + "_"
	}
	return name
}

// CrateName returns the module path segment for a namespace.
// Example: "GdkPixbuf" -> "gdk_pixbuf"
func CrateName(namespace string) string {
	return ToSnake(namespace)
}

// FileName returns the emitted file name for a type name.
// Example: "ToggleButton" -> "toggle_button.rs"
func FileName(typeName string) string {
	return ToSnake(typeName) + ".rs"
}
