package keymap

import (
	"errors"
	"testing"
)

func TestNewKeymapErrors(t *testing.T) {
	base := sampleLayer(t)
	other, err := NewLayer("other", ModNone)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	dup, err := NewLayer("base", ModCtrl)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}

	if _, err := New(base, dup); !errors.Is(err, ErrDuplicateLayer) {
		t.Errorf("New with duplicate name error = %v, want %v", err, ErrDuplicateLayer)
	}
	if _, err := New(base, other); !errors.Is(err, ErrDuplicateModifier) {
		t.Errorf("New with duplicate modifier error = %v, want %v", err, ErrDuplicateModifier)
	}
}

func TestKeymapResolve(t *testing.T) {
	km := Default()

	tests := []struct {
		keystroke string
		want      Action
		wantOK    bool
	}{
		{"a", ActionLine, true},
		{"z", ActionClose, true},
		{"ctrl+z", ActionUndo, true},
		{"ctrl+s", ActionExportSVG, true},
		{"c", NoAction, false},
		{"k", NoAction, false},
		{"ctrl+a", NoAction, false},
		{"alt+a", NoAction, false},
		{"not a key", NoAction, false},
	}
	for _, tt := range tests {
		got, ok := km.ResolveString(tt.keystroke)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ResolveString(%q) = %q, %v; want %q, %v", tt.keystroke, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestKeymapKeyFor(t *testing.T) {
	km := Default()

	ks, ok := km.KeyFor(ActionRedo)
	if !ok || ks.String() != "ctrl+y" {
		t.Errorf("KeyFor(redo) = %q, %v; want ctrl+y", ks, ok)
	}
	if _, ok := km.KeyFor(ActionBezierCube); ok {
		t.Error("KeyFor(bezier_cube) should not resolve in dotgrid")
	}
}

func TestBuiltinProfilesAreConsistent(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			km, err := Builtin(name)
			if err != nil {
				t.Fatalf("Builtin(%s): %v", name, err)
			}
			for _, l := range km.Layers() {
				seen := make(map[Action]Key)
				for _, b := range l.Bindings() {
					if b.Action == NoAction {
						continue
					}
					if prev, ok := seen[b.Action]; ok {
						t.Errorf("layer %s: %s bound to %q and %q", l.Name(), b.Action, prev, b.Key)
					}
					seen[b.Action] = b.Key
					if !IsKnown(b.Action) {
						t.Errorf("layer %s: unknown action %s", l.Name(), b.Action)
					}

					ks := Keystroke{Mod: l.Modifier(), Key: b.Key}
					if a, ok := km.Resolve(ks); !ok || a != b.Action {
						t.Errorf("Resolve(%s) = %q, %v; want %q", ks, a, ok, b.Action)
					}
					if k, ok := l.KeyFor(b.Action); !ok || k != b.Key {
						t.Errorf("KeyFor(%s) = %q, %v; want %q", b.Action, k, ok, b.Key)
					}
				}
			}
			if problems := Check(km.Document()); len(problems) != 0 {
				t.Errorf("Check reported %v", problems)
			}
		})
	}
}

func TestDefaultMatchesDotgrid(t *testing.T) {
	base, ok := Default().Layer(LayerBase)
	if !ok {
		t.Fatal("default keymap has no base layer")
	}
	want := []Binding{
		{"q", ActionLinecap}, {"w", ActionLinejoin}, {"e", ActionMirror}, {"r", ActionFill},
		{"a", ActionLine}, {"s", ActionArc}, {"d", ActionArcRev}, {"f", ActionBezier},
		{"z", ActionClose}, {"x", ActionRemovePoint}, {"c", NoAction}, {"v", NoAction},
	}
	got := base.Bindings()
	if len(got) != len(want) {
		t.Fatalf("len(Bindings) = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bindings[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuiltinUnknown(t *testing.T) {
	if _, err := Builtin("emacs"); err == nil {
		t.Error("Builtin(emacs) should fail")
	}
	if IsBuiltin("emacs") {
		t.Error("IsBuiltin(emacs) = true")
	}
}

func TestRebind(t *testing.T) {
	km := Default()

	next, err := km.Rebind(
		Override{Layer: LayerBase, Key: "c", Action: ActionBezierCube},
		Override{Layer: LayerBase, Key: "g", Action: ActionLine},
		Override{Layer: LayerBase, Key: "x"},
	)
	if err != nil {
		t.Fatalf("Rebind: %v", err)
	}

	tests := []struct {
		key    string
		want   Action
		wantOK bool
	}{
		{"c", ActionBezierCube, true},
		{"g", ActionLine, true},
		{"a", NoAction, false}, // moved to g
		{"x", NoAction, false}, // unbound
		{"q", ActionLinecap, true},
		{"ctrl+z", ActionUndo, true},
	}
	for _, tt := range tests {
		got, ok := next.ResolveString(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("after Rebind, ResolveString(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}

	// the receiver is untouched
	if a, _ := km.ResolveString("a"); a != ActionLine {
		t.Errorf("receiver changed: a = %q", a)
	}
}

func TestRebindErrors(t *testing.T) {
	km := Default()

	if _, err := km.Rebind(Override{Layer: "shift", Key: "a", Action: ActionLine}); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("Rebind unknown layer error = %v, want %v", err, ErrUnknownLayer)
	}
	if _, err := km.Rebind(Override{Layer: LayerBase, Key: "ab", Action: ActionLine}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Rebind invalid key error = %v, want %v", err, ErrInvalidKey)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	km := Default()

	back, err := FromDocument(km.Document())
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	layers, backLayers := km.Layers(), back.Layers()
	if len(layers) != len(backLayers) {
		t.Fatalf("layer count = %d, want %d", len(backLayers), len(layers))
	}
	for i := range layers {
		if layers[i].Name() != backLayers[i].Name() || layers[i].Modifier() != backLayers[i].Modifier() {
			t.Errorf("layer %d = %s/%s, want %s/%s", i,
				backLayers[i].Name(), backLayers[i].Modifier(), layers[i].Name(), layers[i].Modifier())
		}
		want, got := layers[i].Bindings(), backLayers[i].Bindings()
		if len(want) != len(got) {
			t.Fatalf("layer %s: %d bindings, want %d", layers[i].Name(), len(got), len(want))
		}
		for j := range want {
			if want[j] != got[j] {
				t.Errorf("layer %s binding %d = %+v, want %+v", layers[i].Name(), j, got[j], want[j])
			}
		}
	}
}

func TestFromDocumentErrors(t *testing.T) {
	_, err := FromDocument(Document{Layers: []LayerDocument{
		{Name: "base", Modifier: "shift", Bindings: map[string]string{"a": "line"}},
	}})
	if !errors.Is(err, ErrInvalidModifier) {
		t.Errorf("FromDocument error = %v, want %v", err, ErrInvalidModifier)
	}

	_, err = FromDocument(Document{Layers: []LayerDocument{
		{Name: "base", Bindings: map[string]string{"a": "line", "s": "line"}},
	}})
	if !errors.Is(err, ErrDuplicateAction) {
		t.Errorf("FromDocument error = %v, want %v", err, ErrDuplicateAction)
	}
}
