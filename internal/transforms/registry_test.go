package transforms

import (
	"reflect"
	"testing"
)

func TestRegistryListsBuiltins(t *testing.T) {
	registry := NewRegistry()
	want := []string{"channel", "rectangle", "red_mask", "sharpen"}
	got := registry.Names()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestRegistryCreatesTransforms(t *testing.T) {
	registry := NewRegistry()

	cases := []struct {
		name   string
		params Params
		want   string
	}{
		{"channel", Params{"channel": "red"}, "channel_red"},
		{"red_mask", Params{"threshold": 128}, "red_mask"},
		{"sharpen", nil, "sharpen"},
		{"rectangle", Params{"x1": 0, "y1": 0, "x2": 5, "y2": 5}, "rectangle"},
	}

	for _, tc := range cases {
		transform, err := registry.Create(tc.name, tc.params)
		if err != nil {
			t.Fatalf("Create(%q): %v", tc.name, err)
		}
		if transform.Name() != tc.want {
			t.Errorf("Create(%q).Name() = %q, want %q", tc.name, transform.Name(), tc.want)
		}
	}
}

func TestRegistryRejectsUnknownAction(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Create("blur", nil); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestRegistryRejectsBadParameters(t *testing.T) {
	registry := NewRegistry()

	if _, err := registry.Create("red_mask", Params{}); err == nil {
		t.Fatal("expected error for missing threshold")
	}
	if _, err := registry.Create("red_mask", Params{"threshold": 300}); err == nil {
		t.Fatal("expected error for out-of-range threshold")
	}
	if _, err := registry.Create("channel", Params{"channel": "alpha"}); err == nil {
		t.Fatal("expected error for unknown channel")
	}
	if _, err := registry.Create("rectangle", Params{"x1": 1, "y1": 2, "x2": 3}); err == nil {
		t.Fatal("expected error for missing corner coordinate")
	}
	if _, err := registry.Create("rectangle", Params{"x1": -4, "y1": 0, "x2": 3, "y2": 3}); err == nil {
		t.Fatal("expected error for negative corner")
	}
}

func TestParamsIntAcceptsJSONNumbers(t *testing.T) {
	p := Params{"threshold": float64(42)}
	got, err := p.Int("threshold")
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	if got != 42 {
		t.Fatalf("Int = %d, want 42", got)
	}
}
