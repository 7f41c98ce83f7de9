// Package analysis decides, per introspected construct, whether and how it can
// be bound.
//
// The passes read a fully resolved library.Library together with the run
// configuration (an Env) and produce immutable descriptors for the emission
// layer:
//
//   - Classify maps a parameter to a ConversionType or a classification error
//     (unsupported direction, empty C type, unknown conversion, ignored,
//     mismatch, unimplemented), checked in that order.
//   - AnalyzeFunctions builds a FunctionInfo per function with its deprecation
//     verdict and classified parameters.
//   - AnalyzeTrampoline synthesizes a Trampoline for a signal, or rejects it
//     with every reason at once.
//   - Bounds records generic bounds for trait-based generation.
//   - AnalyzeClass and Run walk configured classes in load and declaration order.
//
// Nothing here is cached: every result is recomputed from the library on each
// run so output is deterministic for identical input.
package analysis
