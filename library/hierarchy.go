package library

// Class returns the class stored at tid
func (l *Library) Class(tid TypeID) (*Class, bool) {
	c, ok := l.Type(tid).(*Class)
	return c, ok
}

// Parents returns the ancestors of a class, nearest first.
// A cycle in broken input data ends the walk instead of looping.
func (l *Library) Parents(tid TypeID) []TypeID {
	var parents []TypeID
	seen := map[TypeID]bool{tid: true}
	for {
		c, ok := l.Class(tid)
		if !ok || c.Parent == nil {
			return parents
		}
		p := *c.Parent
		if seen[p] {
			return parents
		}
		seen[p] = true
		parents = append(parents, p)
		tid = p
	}
}

// InheritsFrom reports whether tid is ancestor itself or one of its subclasses
func (l *Library) InheritsFrom(tid, ancestor TypeID) bool {
	if tid == ancestor {
		return true
	}
	for _, p := range l.Parents(tid) {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Children returns the direct subclasses of tid in load and declaration order
func (l *Library) Children(tid TypeID) []TypeID {
	var children []TypeID
	for nsID, ns := range l.namespaces {
		for id, t := range ns.types {
			c, ok := t.(*Class)
			if !ok || c.Parent == nil || *c.Parent != tid {
				continue
			}
			children = append(children, TypeID{NS: NamespaceID(nsID), ID: uint32(id)})
		}
	}
	return children
}

// HasChildren reports whether any loaded class derives directly from tid
func (l *Library) HasChildren(tid TypeID) bool {
	for _, ns := range l.namespaces {
		for _, t := range ns.types {
			if c, ok := t.(*Class); ok && c.Parent != nil && *c.Parent == tid {
				return true
			}
		}
	}
	return false
}
