package analysis

import (
	"github.com/wippyai/gir/config"
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/version"
)

// Env is the read-only input shared by every analysis pass of a run
type Env struct {
	Library *library.Library
	Config  *config.Config
}

// NewEnv creates an environment; a nil config behaves like an empty Gir.toml.
func NewEnv(lib *library.Library, cfg *config.Config) *Env {
	if cfg == nil {
		cfg = &config.Config{
			AllowedDeprecatedVersion: version.Any(),
			Objects:                  config.NewObjects(),
		}
	}
	return &Env{Library: lib, Config: cfg}
}

// Type dereferences tid in the environment's library
func (e *Env) Type(tid library.TypeID) library.Type {
	return e.Library.Type(tid)
}

// IsDeprecated reports whether a declaration deprecated since v must be
// treated as deprecated: v is set and outside the allowed range.
func (e *Env) IsDeprecated(v *version.Version) bool {
	if v == nil {
		return false
	}
	return !e.Config.AllowedDeprecatedVersion.Matches(*v)
}

// IsIgnored reports whether tid is configured with status "ignore"
func (e *Env) IsIgnored(tid library.TypeID) bool {
	if tid.IsInternal() {
		return false
	}
	return e.Config.Objects.IsIgnored(e.Library.FullName(tid))
}

// Status returns the configured status of tid
func (e *Env) Status(tid library.TypeID) config.Status {
	return e.Config.Objects.Status(e.Library.FullName(tid))
}
