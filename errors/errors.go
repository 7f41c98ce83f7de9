package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // reading introspection files
	PhaseParse    Phase = "parse"    // GIR XML decoding
	PhaseResolve  Phase = "resolve"  // type reference resolution
	PhaseClassify Phase = "classify" // parameter conversion classification
	PhaseAnalyze  Phase = "analyze"  // binding analysis
	PhaseConfig   Phase = "config"   // configuration loading
	PhaseEmit     Phase = "emit"     // source emission
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedDirection Kind = "unsupported_direction"
	KindEmptyCType           Kind = "empty_ctype"
	KindUnknownConversion    Kind = "unknown_conversion"
	KindIgnored              Kind = "ignored"
	KindMismatch             Kind = "mismatch"
	KindUnimplemented        Kind = "unimplemented"
	KindUnresolved           Kind = "unresolved"
	KindInvalidVersion       Kind = "invalid_version"
	KindInvalidInput         Kind = "invalid_input"
	KindInvalidData          Kind = "invalid_data"
	KindNotFound             Kind = "not_found"
	KindRejected             Kind = "rejected"
)

// Error is the structured error type used throughout the generator
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // introspected type, e.g. "Gtk.Widget"
	Target string // target language type
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" || e.Target != "" {
		b.WriteString(": ")
		if e.Type != "" && e.Target != "" {
			b.WriteString("type ")
			b.WriteString(e.Type)
			b.WriteString(", target ")
			b.WriteString(e.Target)
		} else if e.Type != "" {
			b.WriteString("type ")
			b.WriteString(e.Type)
		} else {
			b.WriteString("target ")
			b.WriteString(e.Target)
		}
	}

	if e.Detail != "" {
		if e.Type != "" || e.Target != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the introspected type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Target sets the target language type name
func (b *Builder) Target(t string) *Builder {
	b.err.Target = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedDirection creates an error for out and inout parameters
func UnsupportedDirection(direction string, path []string) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindUnsupportedDirection,
		Path:   path,
		Detail: direction,
		Value:  direction,
	}
}

// EmptyCType creates an error for a parameter without an underlying C type
func EmptyCType(path []string, typeName string) *Error {
	return &Error{
		Phase: PhaseClassify,
		Kind:  KindEmptyCType,
		Path:  path,
		Type:  typeName,
	}
}

// UnknownConversion creates an error for types without a conversion category
func UnknownConversion(path []string, typeName string) *Error {
	return &Error{
		Phase: PhaseClassify,
		Kind:  KindUnknownConversion,
		Path:  path,
		Type:  typeName,
	}
}

// Ignored creates an error for types excluded by configuration
func Ignored(typeName string) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindIgnored,
		Type:   typeName,
		Detail: "excluded by configuration",
	}
}

// Mismatch creates an error for a type whose shape disagrees with its use
func Mismatch(typeName, detail string) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindMismatch,
		Type:   typeName,
		Detail: detail,
	}
}

// Unimplemented creates an error for a mapping rule that does not exist yet
func Unimplemented(typeName, detail string) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindUnimplemented,
		Type:   typeName,
		Detail: detail,
	}
}

// InvalidVersion creates an error for an unparseable version or range
func InvalidVersion(phase Phase, input string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidVersion,
		Detail: fmt.Sprintf("invalid version expression %q", input),
		Value:  input,
		Cause:  cause,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Load creates a file loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// UnresolvedType is a single placeholder left after loading
type UnresolvedType struct {
	Namespace string // e.g., "Gtk"
	Name      string // e.g., "Widget"
}

// String returns the qualified "Namespace.Name" form
func (u UnresolvedType) String() string {
	if u.Namespace == "" {
		return u.Name
	}
	return u.Namespace + "." + u.Name
}

// UnresolvedError is returned when type references remain unresolved after loading.
// It is fatal: every analysis pass assumes a fully resolved library.
type UnresolvedError struct {
	Types []UnresolvedType
}

// NewUnresolvedError creates an error from a list of "Namespace.Name" strings
func NewUnresolvedError(names []string) *UnresolvedError {
	result := &UnresolvedError{
		Types: make([]UnresolvedType, 0, len(names)),
	}
	for _, name := range names {
		ns, n := parseQualifiedName(name)
		result.Types = append(result.Types, UnresolvedType{
			Namespace: ns,
			Name:      n,
		})
	}
	return result
}

// internalLabel heads names that belong to no namespace
const internalLabel = "(internal)"

func parseQualifiedName(name string) (namespace, local string) {
	ns, n, found := strings.Cut(name, ".")
	if found {
		return ns, n
	}
	return "", name
}

// Names returns every unresolved type in qualified form
func (e *UnresolvedError) Names() []string {
	names := make([]string, len(e.Types))
	for i, t := range e.Types {
		names[i] = t.String()
	}
	return names
}

func (e *UnresolvedError) Error() string {
	if len(e.Types) == 0 {
		return "[resolve] unresolved: no types specified"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("incomplete library, %d unresolved type(s):\n", len(e.Types)))

	// Group by namespace for cleaner output
	byNS := make(map[string][]string)
	var nsOrder []string
	for _, t := range e.Types {
		if _, exists := byNS[t.Namespace]; !exists {
			nsOrder = append(nsOrder, t.Namespace)
		}
		byNS[t.Namespace] = append(byNS[t.Namespace], t.Name)
	}

	for _, ns := range nsOrder {
		header := ns
		if header == "" {
			header = internalLabel
		}
		b.WriteString("\n  ")
		b.WriteString(header)
		b.WriteString(":\n")
		for _, name := range byNS[ns] {
			b.WriteString("    - ")
			b.WriteString(name)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *UnresolvedError) Is(target error) bool {
	switch t := target.(type) {
	case *UnresolvedError:
		return true
	case *Error:
		return t.Phase == PhaseResolve && t.Kind == KindUnresolved
	}
	return false
}

// RejectionError reports every reason a signal or function cannot be bound.
// It is local: callers log it and continue with sibling declarations.
type RejectionError struct {
	Owner   string // e.g., "Gtk.Button"
	Name    string // signal or function name
	Reasons []string
	Cause   error // combined classification errors, if any
}

func (e *RejectionError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[analyze] rejected %s of %s: ", e.Name, e.Owner))
	b.WriteString(strings.Join(e.Reasons, "; "))
	return b.String()
}

// Unwrap returns the combined classification errors
func (e *RejectionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type
func (e *RejectionError) Is(target error) bool {
	switch t := target.(type) {
	case *RejectionError:
		return true
	case *Error:
		return t.Phase == PhaseAnalyze && t.Kind == KindRejected
	}
	return false
}
