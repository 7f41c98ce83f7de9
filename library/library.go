package library

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/gir/errors"
)

// internalNamespaceName is the reserved name of namespace 0
const internalNamespaceName = "*"

// Library owns every namespace of a generation run
type Library struct {
	index      map[string]NamespaceID
	namespaces []*Namespace
	defaultNS  NamespaceID
	hasDefault bool
}

// New creates a library holding only the internal namespace with the fundamentals
func New() *Library {
	lib := &Library{
		index: make(map[string]NamespaceID),
	}
	ns := lib.AddNamespace(internalNamespaceName)
	for i := range fundamentals {
		f := fundamentals[i]
		lib.AddType(ns, f.Name, &f)
	}
	return lib
}

// AddNamespace returns the id of the namespace called name, creating it on first use
func (l *Library) AddNamespace(name string) NamespaceID {
	if id, ok := l.index[name]; ok {
		return id
	}
	id := NamespaceID(len(l.namespaces))
	l.namespaces = append(l.namespaces, newNamespace(name))
	l.index[name] = id
	Logger().Debug("namespace added", zap.String("name", name), zap.Uint16("id", uint16(id)))
	return id
}

// FindNamespace returns the id of a loaded namespace
func (l *Library) FindNamespace(name string) (NamespaceID, bool) {
	id, ok := l.index[name]
	return id, ok
}

// Namespace returns the namespace with the given id. It panics for foreign ids.
func (l *Library) Namespace(id NamespaceID) *Namespace {
	if int(id) >= len(l.namespaces) {
		panic(fmt.Sprintf("library: namespace id %d out of range (%d namespaces)", id, len(l.namespaces)))
	}
	return l.namespaces[id]
}

// Namespaces returns all namespaces in load order, the internal one first
func (l *Library) Namespaces() []*Namespace {
	return l.namespaces
}

// NamespaceIDs returns every namespace id in load order, skipping the internal one
func (l *Library) NamespaceIDs() []NamespaceID {
	ids := make([]NamespaceID, 0, len(l.namespaces))
	for i := 1; i < len(l.namespaces); i++ {
		ids = append(ids, NamespaceID(i))
	}
	return ids
}

// SetDefaultNamespace sets the primary namespace used as lookup fallback
func (l *Library) SetDefaultNamespace(id NamespaceID) {
	l.Namespace(id)
	l.defaultNS = id
	l.hasDefault = true
}

// DefaultNamespace returns the primary namespace, if one was configured
func (l *Library) DefaultNamespace() (NamespaceID, bool) {
	return l.defaultNS, l.hasDefault
}

// AddType stores a declaration under name in namespace ns.
// A placeholder registered earlier under the same name is replaced in place,
// so ids handed out for forward references stay valid.
func (l *Library) AddType(ns NamespaceID, name string, t Type) TypeID {
	id, superseded := l.Namespace(ns).setType(name, t)
	if superseded {
		Logger().Debug("declaration superseded",
			zap.String("namespace", l.namespaces[ns].Name),
			zap.String("name", name))
	}
	return TypeID{NS: ns, ID: id}
}

// AddContainer registers an anonymous container type in the internal namespace.
// Identical containers share one slot.
func (l *Library) AddContainer(t Type) TypeID {
	name := l.containerName(t)
	if id, ok := l.namespaces[InternalNamespace].FindType(name); ok {
		return TypeID{NS: InternalNamespace, ID: id}
	}
	return l.AddType(InternalNamespace, name, t)
}

func (l *Library) containerName(t Type) string {
	switch c := t.(type) {
	case *Array:
		return fmt.Sprintf("%s(%s)", c.Name, l.FullName(c.Elem))
	case *CArray:
		if c.FixedSize > 0 {
			return fmt.Sprintf("[%s; %d]", l.FullName(c.Elem), c.FixedSize)
		}
		return fmt.Sprintf("[%s]", l.FullName(c.Elem))
	case *List:
		return fmt.Sprintf("GLib.List(%s)", l.FullName(c.Elem))
	case *SList:
		return fmt.Sprintf("GLib.SList(%s)", l.FullName(c.Elem))
	case *HashTable:
		return fmt.Sprintf("GLib.HashTable(%s, %s)", l.FullName(c.Key), l.FullName(c.Value))
	}
	return t.TypeName()
}

// Type dereferences tid. It panics when tid was not produced by this library.
func (l *Library) Type(tid TypeID) Type {
	ns := l.Namespace(tid.NS)
	t := ns.Type(tid.ID)
	if t == nil {
		panic(fmt.Sprintf("library: type id %d out of range in namespace %q", tid.ID, ns.Name))
	}
	return t
}

// TypeName returns the local name registered for tid
func (l *Library) TypeName(tid TypeID) string {
	return l.Type(tid).TypeName()
}

// FullName returns "Namespace.Name" for tid; internal types have no prefix.
func (l *Library) FullName(tid TypeID) string {
	name := l.TypeName(tid)
	if tid.IsInternal() {
		return name
	}
	return l.Namespace(tid.NS).Name + "." + name
}

// IsMain reports whether tid lives in the default namespace
func (l *Library) IsMain(tid TypeID) bool {
	return l.hasDefault && tid.NS == l.defaultNS
}

// Resolve looks name up and returns its id.
// Qualified names ("Gdk.Window") are looked up in their namespace. Unqualified
// names are looked up in ns, then in the default namespace, then among the
// internal fundamentals.
func (l *Library) Resolve(name string, ns NamespaceID) (TypeID, bool) {
	if alias, ok := fundamentalAliases[name]; ok {
		name = alias
	}
	if nsName, local, ok := splitQualified(name); ok {
		nsID, found := l.index[nsName]
		if !found {
			return TypeID{}, false
		}
		return l.findIn(nsID, local)
	}
	if tid, ok := l.findIn(ns, name); ok {
		return tid, true
	}
	if l.hasDefault && l.defaultNS != ns {
		if tid, ok := l.findIn(l.defaultNS, name); ok {
			return tid, true
		}
	}
	return l.findIn(InternalNamespace, name)
}

// FindOrStubType resolves a reference made from namespace ns, registering an
// Unresolved placeholder when the name is not declared yet.
// Unqualified forward references are always stubbed in ns itself: introspection
// data qualifies every reference that leaves its own namespace.
func (l *Library) FindOrStubType(ns NamespaceID, name string) TypeID {
	if alias, ok := fundamentalAliases[name]; ok {
		name = alias
	}
	if nsName, local, ok := splitQualified(name); ok {
		target := l.AddNamespace(nsName)
		if tid, found := l.findIn(target, local); found {
			return tid
		}
		return l.stub(target, local)
	}
	if tid, ok := l.findIn(ns, name); ok {
		return tid
	}
	if tid, ok := l.findIn(InternalNamespace, name); ok {
		return tid
	}
	return l.stub(ns, name)
}

func (l *Library) stub(ns NamespaceID, name string) TypeID {
	Logger().Debug("forward reference",
		zap.String("namespace", l.namespaces[ns].Name),
		zap.String("name", name))
	return l.AddType(ns, name, &Unresolved{Name: name})
}

func (l *Library) findIn(ns NamespaceID, name string) (TypeID, bool) {
	if int(ns) >= len(l.namespaces) {
		return TypeID{}, false
	}
	id, ok := l.namespaces[ns].FindType(name)
	if !ok {
		return TypeID{}, false
	}
	return TypeID{NS: ns, ID: id}, true
}

// CheckResolved reports every placeholder left after loading as an
// *errors.UnresolvedError, in namespace load order then slot order.
func (l *Library) CheckResolved() error {
	var names []string
	for _, ns := range l.namespaces {
		for _, name := range ns.unresolved() {
			if ns.Name == internalNamespaceName {
				names = append(names, name)
				continue
			}
			names = append(names, ns.Name+"."+name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	Logger().Debug("library incomplete", zap.Strings("unresolved", names))
	return errors.NewUnresolvedError(names)
}

func splitQualified(name string) (ns, local string, ok bool) {
	ns, local, ok = strings.Cut(name, ".")
	if !ok || ns == "" || local == "" {
		return "", "", false
	}
	return ns, local, true
}
