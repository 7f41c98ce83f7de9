package version

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/wippyai/gir/errors"
)

// Version is a library version such as "3.10". The zero value means "unknown".
type Version struct {
	sv *semver.Version
}

// Parse parses a version string like "3.10" or "2.4.1"
func Parse(s string) (Version, error) {
	sv, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return Version{}, errors.InvalidVersion(errors.PhaseParse, s, err)
	}
	return Version{sv: sv}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether v carries no version
func (v Version) IsZero() bool {
	return v.sv == nil
}

func (v Version) Major() uint64 {
	if v.sv == nil {
		return 0
	}
	return v.sv.Major()
}

func (v Version) Minor() uint64 {
	if v.sv == nil {
		return 0
	}
	return v.sv.Minor()
}

func (v Version) Patch() uint64 {
	if v.sv == nil {
		return 0
	}
	return v.sv.Patch()
}

// Compare returns -1, 0 or 1. The zero version sorts before every other version.
func (v Version) Compare(o Version) int {
	switch {
	case v.sv == nil && o.sv == nil:
		return 0
	case v.sv == nil:
		return -1
	case o.sv == nil:
		return 1
	}
	return v.sv.Compare(o.sv)
}

// Less reports whether v is older than o
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Feature returns the feature gate name for v, e.g. "v3_10".
// The patch component is only included when non-zero.
func (v Version) Feature() string {
	if v.sv == nil {
		return ""
	}
	var b strings.Builder
	b.WriteByte('v')
	b.WriteString(strconv.FormatUint(v.sv.Major(), 10))
	b.WriteByte('_')
	b.WriteString(strconv.FormatUint(v.sv.Minor(), 10))
	if p := v.sv.Patch(); p != 0 {
		b.WriteByte('_')
		b.WriteString(strconv.FormatUint(p, 10))
	}
	return b.String()
}

// String returns the version as written in the introspection data
func (v Version) String() string {
	if v.sv == nil {
		return ""
	}
	return v.sv.Original()
}

// Ptr parses s into a *Version, returning nil for an empty string.
func Ptr(s string) (*Version, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
