// Package gir generates language bindings from GObject introspection data.
//
// A run reads a Gir.toml configuration, loads the configured library and its
// includes from .gir files, decides for every configured class which functions
// and signals can be bound, and writes the generated modules.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	gir/                 Root package with the high-level Generator
//	├── library/         Type arena: namespaces, declarations, forward references
//	├── parser/          GIR XML loading into the library
//	├── config/          Gir.toml loading and object status lookup
//	├── version/         Versions, feature names and allowed ranges
//	├── analysis/        Conversion classifier, function and signal analysis
//	├── codegen/         Emission of classes, enums and trampolines
//	├── errors/          Structured error types for diagnostics
//	└── cmd/gir/         Command line tool
//
// # Quick Start
//
//	cfg, err := config.Load("Gir.toml", config.Overrides{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	g, err := gir.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	files, err := g.Generate()
//
// # Resolution
//
// Introspection files reference types before declaring them and reference
// types of other namespaces. The library hands out a stable TypeID for every
// reference and fills the slot when the declaration arrives. After loading,
// any slot still unfilled makes New fail with an *errors.UnresolvedError
// listing every such name; nothing is analyzed in that case.
//
// # Rejections
//
// A signal whose parameters cannot be converted gets no trampoline. The
// reasons are logged as a warning, kept on the SignalInfo as an
// *errors.RejectionError, and the rest of the class is generated normally.
//
// # Thread Safety
//
// A Library is mutated only while loading. Analysis and generation read it
// without synchronization and must not run concurrently with a load.
package gir
