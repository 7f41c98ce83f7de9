package library

// NamespaceID identifies a namespace within a Library
type NamespaceID uint16

// InternalNamespace holds fundamentals and anonymous containers
const InternalNamespace NamespaceID = 0

// TypeID is a weak reference to a type slot: namespace id plus slot index.
// It is comparable and copyable. The zero value refers to the internal "none" type.
type TypeID struct {
	NS NamespaceID
	ID uint32
}

// None returns the id of the internal "none" type
func None() TypeID {
	return TypeID{}
}

// IsNone reports whether tid refers to the internal "none" type
func (tid TypeID) IsNone() bool {
	return tid == TypeID{}
}

// IsInternal reports whether tid lives in the internal namespace
func (tid TypeID) IsInternal() bool {
	return tid.NS == InternalNamespace
}
