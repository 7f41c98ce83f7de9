package parser

import (
	"encoding/xml"
)

// repository is the root element of a .gir file
type repository struct {
	XMLName   xml.Name      `xml:"repository"`
	Version   string        `xml:"version,attr"`
	Includes  []include     `xml:"include"`
	Namespace *xmlNamespace `xml:"namespace"`
}

// include is a repository dependency. C header includes share the element
// name and are told apart by namespace.
type include struct {
	XMLName xml.Name
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
}

const nsC = "http://www.gtk.org/introspection/c/1.0"

func (i include) isRepository() bool {
	return i.XMLName.Space != nsC && i.Name != "" && i.Version != ""
}

type xmlNamespace struct {
	Name                string `xml:"name,attr"`
	Version             string `xml:"version,attr"`
	SharedLibrary       string `xml:"shared-library,attr"`
	CIdentifierPrefixes string `xml:"http://www.gtk.org/introspection/c/1.0 identifier-prefixes,attr"`
	CSymbolPrefixes     string `xml:"http://www.gtk.org/introspection/c/1.0 symbol-prefixes,attr"`

	// Decls keeps every child element in document order
	Decls []decl `xml:",any"`
}

// decl is the superset of every namespace-level declaration element.
// XMLName.Local tells which fields are meaningful.
type decl struct {
	XMLName xml.Name

	Name              string `xml:"name,attr"`
	CType             string `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	CIdentifier       string `xml:"http://www.gtk.org/introspection/c/1.0 identifier,attr"`
	Parent            string `xml:"parent,attr"`
	GlibTypeName      string `xml:"http://www.gtk.org/introspection/glib/1.0 type-name,attr"`
	GlibGetType       string `xml:"http://www.gtk.org/introspection/glib/1.0 get-type,attr"`
	GlibErrorDomain   string `xml:"http://www.gtk.org/introspection/glib/1.0 error-domain,attr"`
	Abstract          string `xml:"abstract,attr"`
	Disguised         string `xml:"disguised,attr"`
	Version           string `xml:"version,attr"`
	DeprecatedVersion string `xml:"deprecated-version,attr"`
	Value             string `xml:"value,attr"`
	Throws            string `xml:"throws,attr"`
	Introspectable    string `xml:"introspectable,attr"`

	Implements    []named     `xml:"implements"`
	Prerequisites []named     `xml:"prerequisite"`
	Fields        []xmlField  `xml:"field"`
	Members       []xmlMember `xml:"member"`
	Signals       []callable  `xml:"http://www.gtk.org/introspection/glib/1.0 signal"`

	// alias target and constant type
	Type *xmlType `xml:"type"`

	// callbacks and free functions
	Return     *xmlParameter `xml:"return-value"`
	Parameters xmlParameters `xml:"parameters"`

	// constructors, methods, functions and everything ignored, in document order
	Children []callable `xml:",any"`
}

type named struct {
	Name string `xml:"name,attr"`
}

type xmlField struct {
	Name    string    `xml:"name,attr"`
	Private string    `xml:"private,attr"`
	Type    *xmlType  `xml:"type"`
	Array   *xmlArray `xml:"array"`
}

type xmlMember struct {
	Name              string
	Value             string
	CIdentifier       string
	Version           string
	DeprecatedVersion string
}

// UnmarshalXML reads member attributes by hand: members carry both "name" and
// "glib:name", and struct tags cannot tell an unprefixed attribute apart.
func (m *xmlMember) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		if a.Name.Space == nsC && a.Name.Local == "identifier" {
			m.CIdentifier = a.Value
			continue
		}
		if a.Name.Space != "" {
			continue
		}
		switch a.Name.Local {
		case "name":
			m.Name = a.Value
		case "value":
			m.Value = a.Value
		case "version":
			m.Version = a.Value
		case "deprecated-version":
			m.DeprecatedVersion = a.Value
		}
	}
	return d.Skip()
}

// callable is a function, method, constructor or signal
type callable struct {
	XMLName xml.Name

	Name              string `xml:"name,attr"`
	CIdentifier       string `xml:"http://www.gtk.org/introspection/c/1.0 identifier,attr"`
	Version           string `xml:"version,attr"`
	DeprecatedVersion string `xml:"deprecated-version,attr"`
	Throws            string `xml:"throws,attr"`
	Action            string `xml:"action,attr"`
	Introspectable    string `xml:"introspectable,attr"`

	Return     *xmlParameter `xml:"return-value"`
	Parameters xmlParameters `xml:"parameters"`
}

type xmlParameters struct {
	Instance *xmlParameter  `xml:"instance-parameter"`
	Params   []xmlParameter `xml:"parameter"`
}

type xmlParameter struct {
	Name            string    `xml:"name,attr"`
	Direction       string    `xml:"direction,attr"`
	Transfer        string    `xml:"transfer-ownership,attr"`
	Nullable        string    `xml:"nullable,attr"`
	AllowNone       string    `xml:"allow-none,attr"`
	CallerAllocates string    `xml:"caller-allocates,attr"`
	Type            *xmlType  `xml:"type"`
	Array           *xmlArray `xml:"array"`
	VarArgs         *struct{} `xml:"varargs"`
}

type xmlType struct {
	Name   string     `xml:"name,attr"`
	CType  string     `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	Types  []xmlType  `xml:"type"`
	Arrays []xmlArray `xml:"array"`
}

type xmlArray struct {
	Name           string    `xml:"name,attr"`
	CType          string    `xml:"http://www.gtk.org/introspection/c/1.0 type,attr"`
	FixedSize      int       `xml:"fixed-size,attr"`
	ZeroTerminated string    `xml:"zero-terminated,attr"`
	Type           *xmlType  `xml:"type"`
	Array          *xmlArray `xml:"array"`
}

func isTrue(s string) bool {
	return s == "1" || s == "true"
}

// introspectable reports whether a callable is usable from bindings; the
// attribute defaults to true when absent.
func introspectable(s string) bool {
	return s != "0" && s != "false"
}
