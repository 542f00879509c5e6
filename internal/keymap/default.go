package keymap

import (
	"fmt"
	"sort"
)

// Layer names used by the built-in profiles.
const (
	LayerBase = "base"
	LayerCtrl = "ctrl"
)

// Built-in profile names.
const (
	ProfileDotgrid  = "dotgrid"
	ProfileLefthand = "lefthand"
)

// ctrl layer shared by the built-in profiles
var ctrlBindings = []Binding{
	{Key: "z", Action: ActionUndo},
	{Key: "y", Action: ActionRedo},
	{Key: "s", Action: ActionExportSVG},
	{Key: "p", Action: ActionExportPNG},
	{Key: "j", Action: ActionExportJSON},
}

var builtins = map[string]func() (*Keymap, error){
	// parity with dotgrid
	ProfileDotgrid: func() (*Keymap, error) {
		base, err := LayerFromActions(LayerBase, ModNone, map[Action]Key{
			ActionLinecap:     "q",
			ActionLinejoin:    "w",
			ActionMirror:      "e",
			ActionFill:        "r",
			ActionLine:        "a",
			ActionArc:         "s",
			ActionArcRev:      "d",
			ActionBezier:      "f",
			ActionClose:       "z",
			ActionRemovePoint: "x",
		})
		if err != nil {
			return nil, err
		}
		// c and v are not assigned in dotgrid; keep them reserved
		base, err = NewLayer(base.Name(), base.Modifier(), append(base.Bindings(),
			Binding{Key: "c"},
			Binding{Key: "v"},
		)...)
		if err != nil {
			return nil, err
		}
		ctrl, err := NewLayer(LayerCtrl, ModCtrl, ctrlBindings...)
		if err != nil {
			return nil, err
		}
		return New(base, ctrl)
	},
	// everything reachable with the left hand
	ProfileLefthand: func() (*Keymap, error) {
		base, err := NewLayer(LayerBase, ModNone,
			Binding{Key: "q", Action: ActionLinecap},
			Binding{Key: "w", Action: ActionLinejoin},
			Binding{Key: "e", Action: ActionMirror},
			Binding{Key: "r", Action: ActionFill},
			Binding{Key: "a", Action: ActionLine},
			Binding{Key: "s", Action: ActionArc},
			Binding{Key: "d", Action: ActionArcRev},
			Binding{Key: "f", Action: ActionBezierQuad},
			Binding{Key: "g", Action: ActionBezierCube},
			Binding{Key: "z", Action: ActionClose},
			Binding{Key: "x", Action: ActionRemovePoint},
		)
		if err != nil {
			return nil, err
		}
		ctrl, err := NewLayer(LayerCtrl, ModCtrl, ctrlBindings...)
		if err != nil {
			return nil, err
		}
		return New(base, ctrl)
	},
}

// Default returns the dotgrid keymap.
func Default() *Keymap {
	km, err := Builtin(ProfileDotgrid)
	if err != nil {
		panic(err)
	}
	return km
}

// Builtin returns a fresh copy of a built-in profile.
func Builtin(name string) (*Keymap, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("no built-in profile %q", name)
	}
	return build()
}

// IsBuiltin reports whether name is a built-in profile.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// BuiltinNames lists the built-in profiles, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
