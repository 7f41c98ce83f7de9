// Package config handles Gir.toml generation settings.
//
// The [options] table names the library to bind, where its introspection
// files live and where output goes, and holds the allowed deprecated version
// range. Each [[object]] entry selects a declaration by qualified name and
// tells the generator whether to generate it, leave it to hand-written code
// ("manual") or ignore it. Command line flags override [options] through
// Overrides.
package config
