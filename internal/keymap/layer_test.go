package keymap

import (
	"errors"
	"testing"
)

func sampleLayer(t *testing.T) *Layer {
	t.Helper()
	l, err := NewLayer("base", ModNone,
		Binding{Key: "q", Action: ActionLinecap},
		Binding{Key: "w", Action: ActionLinejoin},
		Binding{Key: "a", Action: ActionLine},
	)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	return l
}

func TestLayerLookup(t *testing.T) {
	l := sampleLayer(t)

	if a, ok := l.Lookup("a"); !ok || a != ActionLine {
		t.Errorf("Lookup(a) = %q, %v; want line, true", a, ok)
	}
	if a, ok := l.Lookup("z"); ok || a != NoAction {
		t.Errorf("Lookup(z) = %q, %v; want no binding", a, ok)
	}
}

func TestLayerRoundTrip(t *testing.T) {
	l := sampleLayer(t)

	for _, b := range l.Bindings() {
		a, ok := l.Lookup(b.Key)
		if !ok || a != b.Action {
			t.Errorf("Lookup(%q) = %q, %v; want %q", b.Key, a, ok, b.Action)
		}
		k, ok := l.KeyFor(a)
		if !ok || k != b.Key {
			t.Errorf("KeyFor(%q) = %q, %v; want %q", a, k, ok, b.Key)
		}
	}
}

func TestLayerBindingsKeyboardOrder(t *testing.T) {
	l := sampleLayer(t)

	got := l.Bindings()
	want := []Key{"q", "w", "a"}
	if len(got) != len(want) {
		t.Fatalf("len(Bindings) = %d, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Errorf("Bindings[%d].Key = %q, want %q", i, got[i].Key, k)
		}
	}
}

func TestNewLayerErrors(t *testing.T) {
	tests := []struct {
		name     string
		layer    string
		mod      Modifier
		bindings []Binding
		want     error
	}{
		{
			name:  "empty name",
			layer: " ",
			want:  ErrInvalidLayer,
		},
		{
			name:  "bad modifier",
			layer: "base",
			mod:   "hyper",
			want:  ErrInvalidModifier,
		},
		{
			name:     "multi rune key",
			layer:    "base",
			bindings: []Binding{{Key: "ab", Action: ActionLine}},
			want:     ErrInvalidKey,
		},
		{
			name:     "empty key",
			layer:    "base",
			bindings: []Binding{{Key: "", Action: ActionLine}},
			want:     ErrInvalidKey,
		},
		{
			name:     "control character",
			layer:    "base",
			bindings: []Binding{{Key: "\t", Action: ActionLine}},
			want:     ErrInvalidKey,
		},
		{
			name:  "duplicate key",
			layer: "base",
			bindings: []Binding{
				{Key: "a", Action: ActionLine},
				{Key: "a", Action: ActionArc},
			},
			want: ErrDuplicateKey,
		},
		{
			name:  "duplicate action",
			layer: "base",
			bindings: []Binding{
				{Key: "a", Action: ActionLine},
				{Key: "s", Action: ActionLine},
			},
			want: ErrDuplicateAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayer(tt.layer, tt.mod, tt.bindings...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewLayer error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLayerReservedKeys(t *testing.T) {
	l, err := NewLayer("base", ModNone,
		Binding{Key: "a", Action: ActionLine},
		Binding{Key: "c"},
		Binding{Key: "v"},
	)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}

	if l.Len() != 3 {
		t.Errorf("Len = %d, want 3", l.Len())
	}
	if a, ok := l.Lookup("c"); ok || a != NoAction {
		t.Errorf("Lookup(c) = %q, %v; want no binding", a, ok)
	}
	if _, ok := l.KeyFor(NoAction); ok {
		t.Error("KeyFor(NoAction) should not resolve")
	}
	got := l.Unassigned()
	if len(got) != 2 || got[0] != "c" || got[1] != "v" {
		t.Errorf("Unassigned = %v, want [c v]", got)
	}
}

func TestLayerFromActions(t *testing.T) {
	l, err := LayerFromActions("base", ModNone, map[Action]Key{
		ActionLinecap:  "q",
		ActionLinejoin: "w",
		ActionLine:     "a",
	})
	if err != nil {
		t.Fatalf("LayerFromActions: %v", err)
	}
	if a, _ := l.Lookup("w"); a != ActionLinejoin {
		t.Errorf("Lookup(w) = %q, want linejoin", a)
	}

	_, err = LayerFromActions("base", ModNone, map[Action]Key{
		ActionClose: "z",
		ActionUndo:  "z",
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("LayerFromActions with shared key error = %v, want %v", err, ErrDuplicateKey)
	}
}

func TestNilLayerLookup(t *testing.T) {
	var l *Layer
	if _, ok := l.Lookup("a"); ok {
		t.Error("nil layer should not resolve keys")
	}
	if _, ok := l.KeyFor(ActionLine); ok {
		t.Error("nil layer should not resolve actions")
	}
}
