// Package library holds every introspected declaration of a generation run.
//
// Declarations live in namespaces, one per introspection repository. Each
// namespace owns an ordered list of type slots and a name index; a TypeID
// (namespace id + slot index) is a weak handle that is only meaningful for the
// Library that produced it.
//
// Loading is multi-pass. References to names that are not declared yet are
// registered as Unresolved placeholders in the referencing namespace (or in the
// named one for qualified names); the later declaration fills the same slot, so
// every TypeID handed out earlier stays valid. After all repositories are loaded,
// CheckResolved reports every placeholder that was never filled. That condition
// is fatal for the run.
//
// The namespace with id 0 is internal and holds the fundamental types
// ("gboolean", "utf8", ...) and anonymous containers. The zero TypeID is the
// internal "none" type, used as the return type of void functions.
//
// # Thread Safety
//
// A Library is populated by a single goroutine and is read-only afterwards.
package library
