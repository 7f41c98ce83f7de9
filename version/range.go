package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/wippyai/gir/errors"
)

// Range is a version predicate such as "<2.0" or "*".
// The zero Range matches every version.
type Range struct {
	c    *semver.Constraints
	expr string
}

// Any returns the range that matches every version
func Any() Range {
	r, _ := ParseRange("*")
	return r
}

// ParseRange parses a range expression. An empty expression means "*".
func ParseRange(expr string) (Range, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = "*"
	}
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return Range{}, errors.InvalidVersion(errors.PhaseConfig, expr, err)
	}
	return Range{c: c, expr: expr}, nil
}

// Matches reports whether v satisfies the range
func (r Range) Matches(v Version) bool {
	if r.c == nil {
		return true
	}
	if v.sv == nil {
		return false
	}
	return r.c.Check(v.sv)
}

// String returns the expression the range was parsed from
func (r Range) String() string {
	if r.c == nil {
		return "*"
	}
	return r.expr
}
