package config

import (
	"path"

	"github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/version"
)

// Status tells the generator what to do with a configured object
type Status uint8

const (
	StatusGenerate Status = iota
	StatusManual
	StatusIgnore
)

// ParseStatus converts a status string; empty means "generate".
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "", "generate":
		return StatusGenerate, true
	case "manual":
		return StatusManual, true
	case "ignore":
		return StatusIgnore, true
	}
	return StatusGenerate, false
}

func (s Status) String() string {
	switch s {
	case StatusGenerate:
		return "generate"
	case StatusManual:
		return "manual"
	case StatusIgnore:
		return "ignore"
	}
	return "unknown"
}

// NeedGenerate reports whether code is emitted for the object
func (s Status) NeedGenerate() bool {
	return s == StatusGenerate
}

// Member overrides a single enumeration or bitfield member
type Member struct {
	Version *version.Version
	Name    string // exact name or path.Match pattern
	Alias   bool
}

// Members is an ordered list of member overrides
type Members []Member

// Matched returns every override whose name or pattern matches name
func (ms Members) Matched(name string) []Member {
	var out []Member
	for _, m := range ms {
		if m.Name == name {
			out = append(out, m)
			continue
		}
		if ok, err := path.Match(m.Name, name); err == nil && ok {
			out = append(out, m)
		}
	}
	return out
}

// Object is one [[object]] entry
type Object struct {
	Name    string // qualified, e.g. "Gtk.Button"
	Members Members
	Status  Status
}

// Objects holds configured objects in file order
type Objects struct {
	byName map[string]*Object
	order  []string
}

// NewObjects creates an object set from entries, later duplicates winning
func NewObjects(objs ...Object) *Objects {
	o := &Objects{byName: make(map[string]*Object)}
	for i := range objs {
		o.add(objs[i])
	}
	return o
}

func (o *Objects) add(obj Object) {
	if _, exists := o.byName[obj.Name]; !exists {
		o.order = append(o.order, obj.Name)
	}
	o.byName[obj.Name] = &obj
}

// Get returns the configured object for a qualified name
func (o *Objects) Get(name string) (*Object, bool) {
	if o == nil {
		return nil, false
	}
	obj, ok := o.byName[name]
	return obj, ok
}

// Status returns the status configured for name; unconfigured objects are
// not generated but are not ignored either, so they report StatusManual.
func (o *Objects) Status(name string) Status {
	if obj, ok := o.Get(name); ok {
		return obj.Status
	}
	return StatusManual
}

// IsIgnored reports whether name is configured with status "ignore"
func (o *Objects) IsIgnored(name string) bool {
	obj, ok := o.Get(name)
	return ok && obj.Status == StatusIgnore
}

// Names returns the configured names in file order
func (o *Objects) Names() []string {
	if o == nil {
		return nil
	}
	return o.order
}

// Len returns the number of configured objects
func (o *Objects) Len() int {
	if o == nil {
		return 0
	}
	return len(o.order)
}

func parseObjects(entries []objectEntry) (*Objects, error) {
	objs := NewObjects()
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseConfig, "object without name")
		}
		status, ok := ParseStatus(e.Status)
		if !ok {
			return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Path("object", e.Name).
				Detail("unknown status %q", e.Status).
				Value(e.Status).
				Build()
		}
		members := make(Members, 0, len(e.Members))
		for _, m := range e.Members {
			if _, err := path.Match(m.Name, ""); err != nil {
				return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
					Path("object", e.Name, "member").
					Detail("bad member pattern %q", m.Name).
					Cause(err).
					Build()
			}
			v, err := version.Ptr(m.Version)
			if err != nil {
				return nil, errors.InvalidVersion(errors.PhaseConfig, m.Version, err)
			}
			members = append(members, Member{Name: m.Name, Alias: m.Alias, Version: v})
		}
		objs.add(Object{Name: e.Name, Status: status, Members: members})
	}
	return objs, nil
}
