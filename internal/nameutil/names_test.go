package nameutil

import "testing"

func TestSignalToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"value-changed", "value_changed"},
		{"clicked", "clicked"},
		{"notify::label", "notify__label"},
		{"move-cursor", "move_cursor"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SignalToSnake(tt.input); got != tt.expected {
				t.Errorf("SignalToSnake(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrampolineName(t *testing.T) {
	if got := TrampolineName("value-changed"); got != "value_changed_trampoline" {
		t.Errorf("TrampolineName = %q, want value_changed_trampoline", got)
	}
	if TrampolineName("value-changed") != TrampolineName("value-changed") {
		t.Error("TrampolineName must be deterministic")
	}
}

func TestToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NewFromFile", "new_from_file"},
		{"get-label", "get_label"},
		{"HTTPServer", "http_server"},
		{"Button", "button"},
		{"GdkPixbuf", "gdk_pixbuf"},
		{"already_snake", "already_snake"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToSnake(tt.input); got != tt.expected {
				t.Errorf("ToSnake(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"baseline_fill", "BaselineFill"},
		{"value-changed", "ValueChanged"},
		{"start", "Start"},
		{"2big", "_2big"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToCamel(tt.input); got != tt.expected {
				t.Errorf("ToCamel(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMangleKeywords(t *testing.T) {
	if got := MangleKeywords("type"); got != "type_" {
		t.Errorf("MangleKeywords(type) = %q", got)
	}
	if got := MangleKeywords("label"); got != "label" {
		t.Errorf("MangleKeywords(label) = %q", got)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("ToggleButton"); got != "toggle_button.rs" {
		t.Errorf("FileName = %q", got)
	}
}
