package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseClassify,
				Kind:   KindMismatch,
				Path:   []string{"Gtk.Button", "clicked", "event"},
				Type:   "Gdk.Event",
				Target: "Event",
				Detail: "union in value position",
			},
			contains: []string{"[classify]", "mismatch", "Gtk.Button.clicked.event", "Gdk.Event", "Event", "union in value position"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseResolve,
				Kind:  KindUnresolved,
			},
			contains: []string{"[resolve]", "unresolved"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindInvalidVersion,
				Detail: "bad range",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[config]", "invalid_version", "bad range", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseClassify,
		Kind:  KindEmptyCType,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseClassify, Kind: KindEmptyCType}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseAnalyze, Kind: KindEmptyCType}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseClassify, Kind: KindMismatch}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseClassify, Kind: KindEmptyCType}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseClassify, KindMismatch).
		Path("Gtk.Entry", "changed").
		Type("Gtk.EntryBuffer").
		Target("EntryBuffer").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "class", "callback").
		Build()

	if err.Phase != PhaseClassify {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseClassify)
	}
	if err.Kind != KindMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "Gtk.Entry" || err.Path[1] != "changed" {
		t.Errorf("Path = %v, want [Gtk.Entry changed]", err.Path)
	}
	if err.Type != "Gtk.EntryBuffer" {
		t.Errorf("Type = %v, want 'Gtk.EntryBuffer'", err.Type)
	}
	if err.Target != "EntryBuffer" {
		t.Errorf("Target = %v, want 'EntryBuffer'", err.Target)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected class, got callback" {
		t.Errorf("Detail = %v, want 'expected class, got callback'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"UnsupportedDirection", UnsupportedDirection("Out", []string{"p"}), PhaseClassify, KindUnsupportedDirection},
		{"EmptyCType", EmptyCType([]string{"p"}, "Gtk.Widget"), PhaseClassify, KindEmptyCType},
		{"UnknownConversion", UnknownConversion([]string{"p"}, "Gtk.Callback"), PhaseClassify, KindUnknownConversion},
		{"Ignored", Ignored("Gtk.Plug"), PhaseClassify, KindIgnored},
		{"Mismatch", Mismatch("Gtk.Func", "function"), PhaseClassify, KindMismatch},
		{"Unimplemented", Unimplemented("GLib.HashTable", "hash table"), PhaseClassify, KindUnimplemented},
		{"InvalidVersion", InvalidVersion(PhaseConfig, "<<2", nil), PhaseConfig, KindInvalidVersion},
		{"InvalidData", InvalidData(PhaseParse, []string{"class"}, "missing name"), PhaseParse, KindInvalidData},
		{"NotFound", NotFound(PhaseLoad, "gir file", "Gtk-3.0"), PhaseLoad, KindNotFound},
		{"InvalidInput", InvalidInput(PhaseConfig, "no library"), PhaseConfig, KindInvalidInput},
		{"Load", Load("read", errors.New("x")), PhaseLoad, KindInvalidData},
		{"ParseFailed", ParseFailed("Gtk-3.0.gir", errors.New("x")), PhaseParse, KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
		})
	}

	t.Run("InvalidVersion value", func(t *testing.T) {
		err := InvalidVersion(PhaseConfig, "<<2", nil)
		if err.Value != "<<2" {
			t.Errorf("Value = %v, want '<<2'", err.Value)
		}
	})
}

func TestUnresolvedError(t *testing.T) {
	t.Run("single type", func(t *testing.T) {
		err := NewUnresolvedError([]string{"Gtk.Widget"})
		if len(err.Types) != 1 {
			t.Fatalf("expected 1 type, got %d", len(err.Types))
		}
		if err.Types[0].Namespace != "Gtk" {
			t.Errorf("namespace = %q, want Gtk", err.Types[0].Namespace)
		}
		if err.Types[0].Name != "Widget" {
			t.Errorf("name = %q, want Widget", err.Types[0].Name)
		}
		if got := err.Names(); len(got) != 1 || got[0] != "Gtk.Widget" {
			t.Errorf("Names() = %v, want [Gtk.Widget]", got)
		}
	})

	t.Run("multiple namespaces grouped", func(t *testing.T) {
		err := NewUnresolvedError([]string{
			"Gtk.Widget",
			"Gdk.Window",
			"Gtk.Button",
		})
		msg := err.Error()
		if !containsSubstring(msg, "3 unresolved") {
			t.Errorf("error should contain count, got: %s", msg)
		}
		if !containsSubstring(msg, "Gtk:") {
			t.Errorf("error should group by namespace")
		}
		if !containsSubstring(msg, "Gdk:") {
			t.Errorf("error should contain second namespace")
		}
		if !containsSubstring(msg, "- Button") {
			t.Errorf("error should list type names")
		}
	})

	t.Run("internal names labelled", func(t *testing.T) {
		err := NewUnresolvedError([]string{"gint64", "Gtk.Widget"})
		msg := err.Error()
		if !containsSubstring(msg, "(internal):\n    - gint64") {
			t.Errorf("internal names should have a header, got: %s", msg)
		}
		if containsSubstring(msg, "  :\n") {
			t.Errorf("error should not contain an empty header, got: %s", msg)
		}
	})

	t.Run("empty", func(t *testing.T) {
		err := NewUnresolvedError(nil)
		if !containsSubstring(err.Error(), "no types specified") {
			t.Errorf("empty error should have specific message, got: %s", err.Error())
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		err := NewUnresolvedError([]string{"Gtk.Widget"})
		if !errors.Is(err, &UnresolvedError{}) {
			t.Error("errors.Is should match UnresolvedError")
		}
		if !errors.Is(err, &Error{Phase: PhaseResolve, Kind: KindUnresolved}) {
			t.Error("errors.Is should match resolve/unresolved")
		}
	})
}

func TestRejectionError(t *testing.T) {
	err := &RejectionError{
		Owner:   "Gtk.Range",
		Name:    "value-changed",
		Reasons: []string{"Out value: gint", "Empty ctype extra: Gtk.Widget"},
	}
	msg := err.Error()
	for _, s := range []string{"value-changed", "Gtk.Range", "Out value", "Empty ctype extra"} {
		if !containsSubstring(msg, s) {
			t.Errorf("error message %q does not contain %q", msg, s)
		}
	}
	if !errors.Is(err, &Error{Phase: PhaseAnalyze, Kind: KindRejected}) {
		t.Error("errors.Is should match analyze/rejected")
	}
	var target *RejectionError
	if !errors.As(error(err), &target) || len(target.Reasons) != 2 {
		t.Error("errors.As should recover the reasons")
	}
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
