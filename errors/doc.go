// Package errors provides structured error types for the binding generator.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: element path, introspected and target type
// names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseClassify, errors.KindMismatch).
//		Path("Gtk.Button", "clicked").
//		Type("Gtk.Callback").
//		Detail("callback in value position").
//		Build()
//
// Or use convenience constructors for the classification taxonomy:
//
//	err := errors.UnsupportedDirection("Out", path)
//	err := errors.EmptyCType(path, "Gtk.Widget")
//
// Two aggregate errors carry lists: UnresolvedError (fatal, every placeholder left
// after loading) and RejectionError (local, every reason a signal cannot be bound).
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
