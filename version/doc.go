// Package version holds library versions attached to introspected declarations
// and the range predicate used to decide whether a deprecation is tolerated.
//
// Versions accept the short forms found in introspection data ("2.4", "3").
// Ranges accept the usual comparison expressions ("<2.0", ">=3.10, <4", "*").
package version
