package library

// Constant is a namespace-level constant
type Constant struct {
	Name  string
	CType string
	Value string
	Typ   TypeID
}

// Namespace groups the declarations of one introspection repository
type Namespace struct {
	index map[string]uint32

	Name                string
	Version             string // repository version, e.g. "3.0"
	SharedLibraries     []string
	CIdentifierPrefixes []string
	CSymbolPrefixes     []string

	types     []Type
	Constants []Constant
	Functions []Function
}

func newNamespace(name string) *Namespace {
	return &Namespace{
		Name:  name,
		index: make(map[string]uint32),
	}
}

// FindType returns the slot index registered for name
func (ns *Namespace) FindType(name string) (uint32, bool) {
	id, ok := ns.index[name]
	return id, ok
}

// Len returns the number of type slots
func (ns *Namespace) Len() int {
	return len(ns.types)
}

// Type returns the type stored in slot id, or nil when out of range
func (ns *Namespace) Type(id uint32) Type {
	if int(id) >= len(ns.types) {
		return nil
	}
	return ns.types[id]
}

// Names returns the registered names in slot order
func (ns *Namespace) Names() []string {
	names := make([]string, len(ns.types))
	for name, id := range ns.index {
		names[id] = name
	}
	return names
}

// setType stores t under name, filling an existing slot or appending a new one.
// The second result reports whether an existing declaration was superseded.
func (ns *Namespace) setType(name string, t Type) (uint32, bool) {
	if id, ok := ns.index[name]; ok {
		prev := ns.types[id]
		ns.types[id] = t
		_, wasPlaceholder := prev.(*Unresolved)
		return id, prev != nil && !wasPlaceholder
	}
	id := uint32(len(ns.types))
	ns.types = append(ns.types, t)
	ns.index[name] = id
	return id, false
}

// unresolved returns the names of placeholder slots in slot order
func (ns *Namespace) unresolved() []string {
	var names []string
	for _, t := range ns.types {
		if u, ok := t.(*Unresolved); ok {
			names = append(names, u.Name)
		}
	}
	return names
}
