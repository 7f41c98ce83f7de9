package analysis

import (
	"errors"
	"testing"

	"go.uber.org/multierr"

	girerrors "github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/library"
)

func TestAnalyzeTrampoline_Naming(t *testing.T) {
	f := newFixture(t, "*")
	signal := &library.Signal{Name: "value-changed"}

	for _, inTrait := range []bool{false, true} {
		var (
			trampolines Trampolines
			used        []string
		)
		name, err := AnalyzeTrampoline(f.env, signal, f.rng, inTrait, &trampolines, &used, nil, nil)
		if err != nil {
			t.Fatalf("AnalyzeTrampoline: %v", err)
		}
		if name != "value_changed_trampoline" {
			t.Errorf("name = %q, want value_changed_trampoline", name)
		}
		if len(trampolines) != 1 || trampolines[0].Name != name {
			t.Errorf("trampolines = %v, want one named %q", trampolines.Names(), name)
		}
	}
}

func TestAnalyzeTrampoline_Receiver(t *testing.T) {
	f := newFixture(t, "*")
	signal := &library.Signal{
		Name:       "change-value",
		Parameters: []library.Parameter{{Name: "value", Typ: f.gdouble, CType: "gdouble"}},
		Ret:        library.Parameter{Typ: f.gboolean, CType: "gboolean"},
	}

	var trampolines Trampolines
	var used []string
	if _, err := AnalyzeTrampoline(f.env, signal, f.rng, false, &trampolines, &used, nil, nil); err != nil {
		t.Fatalf("AnalyzeTrampoline: %v", err)
	}

	tr := trampolines[0]
	if len(tr.Parameters) != 2 {
		t.Fatalf("parameters = %d, want receiver plus 1", len(tr.Parameters))
	}
	this := tr.Parameters[0]
	if this.Name != "this" || this.Typ != f.rng {
		t.Errorf("receiver = %s %v, want this of Gtk.Range", this.Name, this.Typ)
	}
	if this.Direction != library.DirectionIn || this.Transfer != library.TransferNone {
		t.Errorf("receiver direction/transfer = %v/%v, want In/None", this.Direction, this.Transfer)
	}
	if this.RefMode != RefModeByRef {
		t.Errorf("receiver ref mode = %v, want ByRef", this.RefMode)
	}
	if this.CType != "GtkRange*" {
		t.Errorf("receiver ctype = %q, want GtkRange*", this.CType)
	}
	if tr.Ret.TargetType != "bool" {
		t.Errorf("return target = %q, want bool", tr.Ret.TargetType)
	}
	if len(used) != 1 || used[0] != "ffi::GtkRange" {
		t.Errorf("used types = %v, want [ffi::GtkRange]", used)
	}
}

func TestAnalyzeTrampoline_CollectsAllReasons(t *testing.T) {
	f := newFixture(t, "*")
	signal := &library.Signal{
		Name: "move-slider",
		Parameters: []library.Parameter{
			{Name: "scroll", Typ: f.gint, CType: "gint*", Direction: library.DirectionOut},
			{Name: "extra", Typ: f.widget, CType: ""},
		},
	}

	trampolines := Trampolines{{Name: "existing_trampoline"}}
	used := []string{"kept"}
	name, err := AnalyzeTrampoline(f.env, signal, f.rng, true, &trampolines, &used, nil, nil)
	if err == nil {
		t.Fatalf("AnalyzeTrampoline = %q, want rejection", name)
	}

	var rejection *girerrors.RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("error type = %T, want *RejectionError", err)
	}
	want := []string{"Out scroll: gint", "Empty ctype extra: Gtk.Widget"}
	if len(rejection.Reasons) != len(want) {
		t.Fatalf("reasons = %v, want %v", rejection.Reasons, want)
	}
	for i := range want {
		if rejection.Reasons[i] != want[i] {
			t.Errorf("reasons[%d] = %q, want %q", i, rejection.Reasons[i], want[i])
		}
	}
	if got := len(multierr.Errors(rejection.Cause)); got != 2 {
		t.Errorf("combined cause holds %d errors, want 2", got)
	}
	if rejection.Owner != "Gtk.Range" || rejection.Name != "move-slider" {
		t.Errorf("rejection names %s of %s", rejection.Name, rejection.Owner)
	}
	if len(trampolines) != 1 || len(used) != 1 {
		t.Error("a rejected signal must not touch the accumulators")
	}
}

func TestAnalyzeTrampoline_ReturnReason(t *testing.T) {
	f := newFixture(t, "*")
	signal := &library.Signal{
		Name: "event",
		Ret:  library.Parameter{Typ: f.event, CType: "GdkEvent*"},
	}

	var trampolines Trampolines
	var used []string
	_, err := AnalyzeTrampoline(f.env, signal, f.widget, false, &trampolines, &used, nil, nil)

	var rejection *girerrors.RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("error = %v, want *RejectionError", err)
	}
	if len(rejection.Reasons) != 1 || rejection.Reasons[0] != "Unimplemented return value Gdk.Event" {
		t.Errorf("reasons = %v", rejection.Reasons)
	}
}

func TestAnalyzeTrampoline_ReceiverBoundOnlyInTrait(t *testing.T) {
	f := newFixture(t, "*")
	signal := &library.Signal{
		Name: "adjust-bounds",
		Parameters: []library.Parameter{
			{Name: "value", Typ: f.gdouble, CType: "gdouble"},
			{Name: "child", Typ: f.widget, CType: "GtkWidget*"},
		},
	}

	analyze := func(inTrait bool) Trampoline {
		var trampolines Trampolines
		var used []string
		if _, err := AnalyzeTrampoline(f.env, signal, f.rng, inTrait, &trampolines, &used, nil, nil); err != nil {
			t.Fatalf("AnalyzeTrampoline(inTrait=%v): %v", inTrait, err)
		}
		return trampolines[0]
	}

	plain := analyze(false)
	trait := analyze(true)

	if len(plain.Parameters) != len(trait.Parameters) {
		t.Fatalf("parameter counts differ: %d vs %d", len(plain.Parameters), len(trait.Parameters))
	}
	for i := range plain.Parameters {
		a, b := plain.Parameters[i], trait.Parameters[i]
		if a.Name != b.Name || a.Typ != b.Typ || a.CType != b.CType || a.RefMode != b.RefMode || a.TargetType != b.TargetType {
			t.Errorf("parameter %d differs: %+v vs %+v", i, a, b)
		}
	}

	if !plain.Bounds.IsEmpty() {
		t.Errorf("non-trait bounds = %v, want none", plain.Bounds.All())
	}
	bound, ok := trait.Bounds.Get("this")
	if !ok {
		t.Fatal("trait context should bound the receiver")
	}
	if trait.Bounds.Len() != 1 {
		t.Errorf("trait bounds = %v, want only the receiver", trait.Bounds.All())
	}
	if bound.Kind != BoundIsA || bound.TypeName != "Range" || bound.Alias != "T" {
		t.Errorf("receiver bound = %+v, want T: IsA<Range>", bound)
	}
}
