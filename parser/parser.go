package parser

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/version"
)

// FileExt is the extension of introspection repository files
const FileExt = ".gir"

type loader struct {
	lib    *library.Library
	dir    string
	loaded map[string]bool
}

// Load reads the repository name (e.g. "Gtk-3.0") from dir together with its
// includes and makes its namespace the library's default namespace.
func Load(lib *library.Library, dir, name string) error {
	l := &loader{
		lib:    lib,
		dir:    dir,
		loaded: make(map[string]bool),
	}
	nsName, err := l.load(name)
	if err != nil {
		return err
	}
	ns, _ := lib.FindNamespace(nsName)
	lib.SetDefaultNamespace(ns)
	return nil
}

func (l *loader) load(name string) (string, error) {
	l.loaded[name] = true
	path := filepath.Join(l.dir, name+FileExt)
	Logger().Debug("loading repository", zap.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(errors.PhaseLoad, errors.KindNotFound, err, "open "+path)
	}
	defer f.Close()

	var repo repository
	if err := xml.NewDecoder(f).Decode(&repo); err != nil {
		return "", errors.ParseFailed(path, err)
	}
	if repo.Namespace == nil || repo.Namespace.Name == "" {
		return "", errors.InvalidData(errors.PhaseParse, []string{path}, "repository without namespace")
	}

	for _, inc := range repo.Includes {
		if !inc.isRepository() {
			continue
		}
		dep := inc.Name + "-" + inc.Version
		if l.loaded[dep] {
			continue
		}
		if _, err := l.load(dep); err != nil {
			return "", err
		}
	}

	if err := l.namespace(repo.Namespace); err != nil {
		return "", err
	}
	return repo.Namespace.Name, nil
}

func (l *loader) namespace(x *xmlNamespace) error {
	nsID := l.lib.AddNamespace(x.Name)
	ns := l.lib.Namespace(nsID)
	ns.Version = x.Version
	ns.SharedLibraries = splitList(x.SharedLibrary)
	ns.CIdentifierPrefixes = splitList(x.CIdentifierPrefixes)
	ns.CSymbolPrefixes = splitList(x.CSymbolPrefixes)

	// reserve every declared name first so slots follow document order
	for i := range x.Decls {
		d := &x.Decls[i]
		if !isTypeDecl(d.XMLName.Local) || d.Name == "" {
			continue
		}
		if _, ok := ns.FindType(d.Name); !ok {
			l.lib.AddType(nsID, d.Name, &library.Unresolved{Name: d.Name})
		}
	}

	var errs error
	for i := range x.Decls {
		errs = multierr.Append(errs, l.decl(nsID, &x.Decls[i]))
	}

	Logger().Info("namespace loaded",
		zap.String("namespace", x.Name),
		zap.String("version", x.Version),
		zap.Int("types", ns.Len()),
		zap.Int("functions", len(ns.Functions)))
	return errs
}

func isTypeDecl(local string) bool {
	switch local {
	case "alias", "class", "interface", "record", "union", "callback", "enumeration", "bitfield":
		return true
	}
	return false
}

func (l *loader) decl(nsID library.NamespaceID, d *decl) error {
	ns := l.lib.Namespace(nsID)
	path := []string{ns.Name, d.Name}

	switch d.XMLName.Local {
	case "alias":
		l.lib.AddType(nsID, d.Name, &library.Alias{
			Name:   d.Name,
			CType:  d.CType,
			Target: l.typeRef(nsID, d.Type),
		})

	case "class":
		ver, dep, err := versions(path, d.Version, d.DeprecatedVersion)
		if err != nil {
			return err
		}
		class := &library.Class{
			Version:           ver,
			DeprecatedVersion: dep,
			Name:              d.Name,
			CType:             d.CType,
			GlibTypeName:      d.GlibTypeName,
			GlibGetType:       d.GlibGetType,
			Abstract:          isTrue(d.Abstract),
		}
		if d.Parent != "" {
			parent := l.lib.FindOrStubType(nsID, d.Parent)
			class.Parent = &parent
		}
		for _, impl := range d.Implements {
			class.Implements = append(class.Implements, l.lib.FindOrStubType(nsID, impl.Name))
		}
		if class.Functions, err = l.functions(nsID, path, d.Children); err != nil {
			return err
		}
		if class.Signals, err = l.signals(nsID, path, d.Signals); err != nil {
			return err
		}
		l.lib.AddType(nsID, d.Name, class)

	case "interface":
		ver, dep, err := versions(path, d.Version, d.DeprecatedVersion)
		if err != nil {
			return err
		}
		iface := &library.Interface{
			Version:           ver,
			DeprecatedVersion: dep,
			Name:              d.Name,
			CType:             d.CType,
			GlibTypeName:      d.GlibTypeName,
			GlibGetType:       d.GlibGetType,
		}
		for _, p := range d.Prerequisites {
			iface.Prerequisites = append(iface.Prerequisites, l.lib.FindOrStubType(nsID, p.Name))
		}
		if iface.Functions, err = l.functions(nsID, path, d.Children); err != nil {
			return err
		}
		if iface.Signals, err = l.signals(nsID, path, d.Signals); err != nil {
			return err
		}
		l.lib.AddType(nsID, d.Name, iface)

	case "record":
		ver, dep, err := versions(path, d.Version, d.DeprecatedVersion)
		if err != nil {
			return err
		}
		rec := &library.Record{
			Version:           ver,
			DeprecatedVersion: dep,
			Name:              d.Name,
			CType:             d.CType,
			GlibGetType:       d.GlibGetType,
			Fields:            l.fields(nsID, d.Fields),
			Disguised:         isTrue(d.Disguised),
		}
		if rec.Functions, err = l.functions(nsID, path, d.Children); err != nil {
			return err
		}
		l.lib.AddType(nsID, d.Name, rec)

	case "union":
		u := &library.Union{
			Name:        d.Name,
			CType:       d.CType,
			GlibGetType: d.GlibGetType,
			Fields:      l.fields(nsID, d.Fields),
		}
		var err error
		if u.Functions, err = l.functions(nsID, path, d.Children); err != nil {
			return err
		}
		l.lib.AddType(nsID, d.Name, u)

	case "callback":
		params, ret, err := l.signature(nsID, path, d.Return, d.Parameters, isTrue(d.Throws))
		if err != nil {
			return err
		}
		l.lib.AddType(nsID, d.Name, &library.Callback{
			Name:       d.Name,
			CType:      d.CType,
			Parameters: params,
			Ret:        ret,
		})

	case "enumeration", "bitfield":
		return l.enumeration(nsID, path, d)

	case "constant":
		c := library.Constant{Name: d.Name, CType: d.CType, Value: d.Value}
		if d.Type != nil {
			c.Typ = l.typeRef(nsID, d.Type)
			if d.Type.CType != "" {
				c.CType = d.Type.CType
			}
		}
		ns.Constants = append(ns.Constants, c)

	case "function":
		if !introspectable(d.Introspectable) {
			skipped(path[:1], d.Name)
			return nil
		}
		fn, err := l.function(nsID, path, &callable{
			XMLName:           d.XMLName,
			Name:              d.Name,
			CIdentifier:       d.CIdentifier,
			Version:           d.Version,
			DeprecatedVersion: d.DeprecatedVersion,
			Throws:            d.Throws,
			Return:            d.Return,
			Parameters:        d.Parameters,
		}, library.FunctionKindGlobal)
		if err != nil {
			return err
		}
		ns.Functions = append(ns.Functions, fn)
	}
	return nil
}

func (l *loader) enumeration(nsID library.NamespaceID, path []string, d *decl) error {
	ver, dep, err := versions(path, d.Version, d.DeprecatedVersion)
	if err != nil {
		return err
	}
	members := make([]library.Member, 0, len(d.Members))
	for _, m := range d.Members {
		mv, md, err := versions(append(path, m.Name), m.Version, m.DeprecatedVersion)
		if err != nil {
			return err
		}
		members = append(members, library.Member{
			Version:           mv,
			DeprecatedVersion: md,
			Name:              m.Name,
			CIdentifier:       m.CIdentifier,
			Value:             m.Value,
		})
	}
	functions, err := l.functions(nsID, path, d.Children)
	if err != nil {
		return err
	}

	if d.XMLName.Local == "bitfield" {
		l.lib.AddType(nsID, d.Name, &library.Bitfield{
			Version:           ver,
			DeprecatedVersion: dep,
			Name:              d.Name,
			CType:             d.CType,
			GlibGetType:       d.GlibGetType,
			Members:           members,
			Functions:         functions,
		})
		return nil
	}
	l.lib.AddType(nsID, d.Name, &library.Enumeration{
		Version:           ver,
		DeprecatedVersion: dep,
		Name:              d.Name,
		CType:             d.CType,
		GlibGetType:       d.GlibGetType,
		ErrorDomain:       d.GlibErrorDomain,
		Members:           members,
		Functions:         functions,
	})
	return nil
}

func (l *loader) fields(nsID library.NamespaceID, xs []xmlField) []library.Field {
	fields := make([]library.Field, 0, len(xs))
	for _, x := range xs {
		f := library.Field{Name: x.Name, Private: isTrue(x.Private)}
		switch {
		case x.Type != nil:
			f.Typ = l.typeRef(nsID, x.Type)
			f.CType = x.Type.CType
		case x.Array != nil:
			f.Typ, f.CType = l.arrayRef(nsID, x.Array)
		}
		fields = append(fields, f)
	}
	return fields
}

func (l *loader) functions(nsID library.NamespaceID, path []string, children []callable) ([]library.Function, error) {
	var funcs []library.Function
	for i := range children {
		c := &children[i]
		var kind library.FunctionKind
		switch c.XMLName.Local {
		case "constructor":
			kind = library.FunctionKindConstructor
		case "method":
			kind = library.FunctionKindMethod
		case "function":
			kind = library.FunctionKindFunction
		default:
			continue
		}
		if !introspectable(c.Introspectable) {
			skipped(path, c.Name)
			continue
		}
		fn, err := l.function(nsID, path, c, kind)
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, fn)
	}
	return funcs, nil
}

func skipped(path []string, name string) {
	Logger().Debug("skipping non-introspectable callable",
		zap.Strings("path", path), zap.String("name", name))
}

func (l *loader) function(nsID library.NamespaceID, path []string, c *callable, kind library.FunctionKind) (library.Function, error) {
	path = append(append([]string(nil), path...), c.Name)
	ver, dep, err := versions(path, c.Version, c.DeprecatedVersion)
	if err != nil {
		return library.Function{}, err
	}
	throws := isTrue(c.Throws)
	params, ret, err := l.signature(nsID, path, c.Return, c.Parameters, throws)
	if err != nil {
		return library.Function{}, err
	}
	return library.Function{
		Version:           ver,
		DeprecatedVersion: dep,
		Name:              c.Name,
		CIdentifier:       c.CIdentifier,
		Parameters:        params,
		Ret:               ret,
		Kind:              kind,
		Throws:            throws,
	}, nil
}

func (l *loader) signals(nsID library.NamespaceID, path []string, xs []callable) ([]library.Signal, error) {
	signals := make([]library.Signal, 0, len(xs))
	for i := range xs {
		c := &xs[i]
		spath := append(append([]string(nil), path...), c.Name)
		ver, dep, err := versions(spath, c.Version, c.DeprecatedVersion)
		if err != nil {
			return nil, err
		}
		params, ret, err := l.signature(nsID, spath, c.Return, c.Parameters, false)
		if err != nil {
			return nil, err
		}
		signals = append(signals, library.Signal{
			Version:           ver,
			DeprecatedVersion: dep,
			Name:              c.Name,
			Parameters:        params,
			Ret:               ret,
			IsAction:          isTrue(c.Action),
		})
	}
	return signals, nil
}

// signature converts parameters and return value. A throwing callable gets a
// trailing GError** out parameter.
func (l *loader) signature(nsID library.NamespaceID, path []string, ret *xmlParameter,
	xs xmlParameters, throws bool) ([]library.Parameter, library.Parameter, error) {

	params := make([]library.Parameter, 0, len(xs.Params)+2)
	if xs.Instance != nil {
		p, err := l.parameter(nsID, path, xs.Instance)
		if err != nil {
			return nil, library.Parameter{}, err
		}
		p.InstanceParameter = true
		params = append(params, p)
	}
	for i := range xs.Params {
		p, err := l.parameter(nsID, path, &xs.Params[i])
		if err != nil {
			return nil, library.Parameter{}, err
		}
		params = append(params, p)
	}
	if throws {
		params = append(params, library.Parameter{
			Name:      "error",
			CType:     "GError**",
			Typ:       l.lib.FindOrStubType(nsID, "GLib.Error"),
			Direction: library.DirectionOut,
			Transfer:  library.TransferFull,
			Nullable:  true,
			IsError:   true,
		})
	}

	r := library.Parameter{CType: "void"}
	if ret != nil {
		var err error
		if r, err = l.parameter(nsID, path, ret); err != nil {
			return nil, library.Parameter{}, err
		}
	}
	return params, r, nil
}

func (l *loader) parameter(nsID library.NamespaceID, path []string, x *xmlParameter) (library.Parameter, error) {
	dir, ok := library.ParseDirection(x.Direction)
	if !ok {
		return library.Parameter{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path(append(path, x.Name)...).
			Detail("unknown direction %q", x.Direction).
			Value(x.Direction).
			Build()
	}
	transfer, ok := library.ParseTransfer(x.Transfer)
	if !ok {
		return library.Parameter{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path(append(path, x.Name)...).
			Detail("unknown transfer-ownership %q", x.Transfer).
			Value(x.Transfer).
			Build()
	}

	p := library.Parameter{
		Name:            x.Name,
		Direction:       dir,
		Transfer:        transfer,
		CallerAllocates: isTrue(x.CallerAllocates),
		AllowNone:       isTrue(x.AllowNone),
		Nullable:        isTrue(x.Nullable) || (dir == library.DirectionIn && isTrue(x.AllowNone)),
	}
	switch {
	case x.VarArgs != nil:
		p.Typ = l.fundamental("va_list")
		p.CType = "va_list"
	case x.Array != nil:
		p.Typ, p.CType = l.arrayRef(nsID, x.Array)
	case x.Type != nil:
		p.Typ = l.typeRef(nsID, x.Type)
		p.CType = x.Type.CType
	default:
		p.CType = "void"
	}
	return p, nil
}

// typeRef resolves a <type> element, registering containers and stubbing
// forward references
func (l *loader) typeRef(nsID library.NamespaceID, t *xmlType) library.TypeID {
	if t == nil || t.Name == "" || t.Name == "none" {
		return library.None()
	}
	name := t.Name
	if l.lib.Namespace(nsID).Name == "GLib" && !strings.Contains(name, ".") && isGLibContainer("GLib."+name) {
		name = "GLib." + name
	}

	switch name {
	case "GLib.List":
		return l.lib.AddContainer(&library.List{Elem: l.elem(nsID, t, 0)})
	case "GLib.SList":
		return l.lib.AddContainer(&library.SList{Elem: l.elem(nsID, t, 0)})
	case "GLib.HashTable":
		return l.lib.AddContainer(&library.HashTable{Key: l.elem(nsID, t, 0), Value: l.elem(nsID, t, 1)})
	case "GLib.Array", "GLib.PtrArray", "GLib.ByteArray":
		return l.lib.AddContainer(&library.Array{Name: name, Elem: l.elem(nsID, t, 0), CType: t.CType})
	}
	return l.lib.FindOrStubType(nsID, name)
}

func isGLibContainer(name string) bool {
	switch name {
	case "GLib.List", "GLib.SList", "GLib.HashTable", "GLib.Array", "GLib.PtrArray", "GLib.ByteArray":
		return true
	}
	return false
}

// elem returns the i-th element type of a container, gpointer when absent
func (l *loader) elem(nsID library.NamespaceID, t *xmlType, i int) library.TypeID {
	if i < len(t.Types) {
		return l.typeRef(nsID, &t.Types[i])
	}
	if i < len(t.Arrays) {
		tid, _ := l.arrayRef(nsID, &t.Arrays[i])
		return tid
	}
	return l.fundamental("gpointer")
}

func (l *loader) arrayRef(nsID library.NamespaceID, a *xmlArray) (library.TypeID, string) {
	elem := l.fundamental("gpointer")
	switch {
	case a.Type != nil:
		elem = l.typeRef(nsID, a.Type)
	case a.Array != nil:
		elem, _ = l.arrayRef(nsID, a.Array)
	}

	if a.Name != "" {
		name := a.Name
		if !strings.Contains(name, ".") {
			name = "GLib." + name
		}
		return l.lib.AddContainer(&library.Array{Name: name, Elem: elem, CType: a.CType}), a.CType
	}
	return l.lib.AddContainer(&library.CArray{
		Elem:           elem,
		FixedSize:      a.FixedSize,
		ZeroTerminated: isTrue(a.ZeroTerminated) || (a.ZeroTerminated == "" && a.FixedSize == 0),
	}), a.CType
}

func (l *loader) fundamental(name string) library.TypeID {
	tid, _ := l.lib.Resolve(name, library.InternalNamespace)
	return tid
}

func versions(path []string, v, deprecated string) (*version.Version, *version.Version, error) {
	ver, err := version.Ptr(v)
	if err != nil {
		return nil, nil, errors.New(errors.PhaseParse, errors.KindInvalidVersion).
			Path(path...).Value(v).Cause(err).Detail("bad version").Build()
	}
	dep, err := version.Ptr(deprecated)
	if err != nil {
		return nil, nil, errors.New(errors.PhaseParse, errors.KindInvalidVersion).
			Path(path...).Value(deprecated).Cause(err).Detail("bad deprecated-version").Build()
	}
	return ver, dep, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
