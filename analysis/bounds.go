package analysis

import (
	"strconv"
)

// BoundKind is the relation a generic parameter must satisfy
type BoundKind uint8

const (
	// BoundIsA accepts the named type or any of its subtypes
	BoundIsA BoundKind = iota
	// BoundAsRef accepts anything viewable as the named type
	BoundAsRef
)

func (k BoundKind) String() string {
	switch k {
	case BoundIsA:
		return "IsA"
	case BoundAsRef:
		return "AsRef"
	}
	return "Unknown"
}

// Bound is the generic constraint attached to one binding site
type Bound struct {
	Name     string // binding site, e.g. "this"
	Alias    string // generic parameter name, e.g. "T"
	TypeName string
	Kind     BoundKind
}

// Render returns the constraint as "T: IsA<Widget>"
func (b Bound) Render() string {
	return b.Alias + ": " + b.Kind.String() + "<" + b.TypeName + ">"
}

var boundAliases = []string{"T", "U", "V", "W", "X", "Y", "Z"}

// Bounds is an insertion-ordered set of bounds, at most one per binding site
type Bounds struct {
	used []Bound
}

// AddParameter registers a bound for name. It returns false, leaving the
// existing bound untouched, when name already has one.
func (b *Bounds) AddParameter(name, typeName string, kind BoundKind) bool {
	if _, ok := b.Get(name); ok {
		return false
	}
	b.used = append(b.used, Bound{
		Name:     name,
		Alias:    aliasFor(len(b.used)),
		TypeName: typeName,
		Kind:     kind,
	})
	return true
}

func aliasFor(i int) string {
	if i < len(boundAliases) {
		return boundAliases[i]
	}
	return "T" + strconv.Itoa(i-len(boundAliases)+1)
}

// Get returns the bound registered for name
func (b *Bounds) Get(name string) (Bound, bool) {
	for _, bound := range b.used {
		if bound.Name == name {
			return bound, true
		}
	}
	return Bound{}, false
}

// All returns the bounds in insertion order
func (b *Bounds) All() []Bound {
	return b.used
}

func (b *Bounds) Len() int {
	return len(b.used)
}

func (b *Bounds) IsEmpty() bool {
	return len(b.used) == 0
}
