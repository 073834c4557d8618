package fig

import (
	"errors"
	"testing"
)

func TestStyleSetUnrecognizedOption(t *testing.T) {
	_, err := NewStyle().Set("glow", true)
	var serr *StyleError
	if !errors.As(err, &serr) || serr.Kind != UnrecognizedOption {
		t.Fatalf("err = %v, want StyleError{UnrecognizedOption}", err)
	}
	if serr.Option != "glow" {
		t.Errorf("Option = %q, want glow", serr.Option)
	}
}

func TestStyleSetInvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"bad color", "color", "notacolor"},
		{"bad type", "line_width", "wide"},
		{"bad dash", "dash", "wavy"},
		{"bad opacity", "opacity", 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStyle().Set(tt.key, tt.value)
			var serr *StyleError
			if !errors.As(err, &serr) || serr.Kind != InvalidValue {
				t.Errorf("err = %v, want StyleError{InvalidValue}", err)
			}
		})
	}
}

func TestStyleSettersRecordError(t *testing.T) {
	s := NewStyle().Color("notacolor")
	if s.Err() == nil {
		t.Fatal("bad color should record an error")
	}
	var serr *StyleError
	if !errors.As(s.Err(), &serr) || serr.Kind != InvalidValue {
		t.Errorf("err = %v, want StyleError{InvalidValue}", s.Err())
	}
}

func TestStyleIntentValueSemantics(t *testing.T) {
	base := NewStyle().Color("red")
	derived := base.LineWidth(3)

	if base.IsSet(OptLineWidth) {
		t.Error("setter mutated the receiver")
	}
	if !derived.IsSet(OptColor) || !derived.IsSet(OptLineWidth) {
		t.Error("derived intent missing options")
	}
}

func TestStyleFrom(t *testing.T) {
	s, err := StyleFrom(map[string]any{
		"fill":       "none",
		"line_width": 1,
		"dash":       "dashed",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range []Option{OptFill, OptLineWidth, OptDash} {
		if !s.IsSet(o) {
			t.Errorf("option %s not set", o)
		}
	}

	if _, err := StyleFrom(map[string]any{"glow": true}); err == nil {
		t.Error("unknown key should fail")
	}
}

func TestOptionDialectOptional(t *testing.T) {
	if !OptMarkerSize.DialectOptional() {
		t.Error("marker_size should be dialect-optional")
	}
	if OptDouble.DialectOptional() {
		t.Error("double must not be dialect-optional")
	}
}
