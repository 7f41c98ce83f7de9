// Package codegen renders analysis results to target source files.
//
// It trusts the analysis verdicts verbatim: a function is commented out when
// its FunctionInfo says so, a signal gets a connect method only when it has a
// trampoline, and conversions come from the analyzed parameters. Nothing here
// looks at the library to decide whether something can be bound.
//
// Rendering writes into a Writer; SaveToFile puts the bytes on disk with an
// optional .bak backup of the previous file. Generate drives a whole run.
package codegen
