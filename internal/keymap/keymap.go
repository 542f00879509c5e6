package keymap

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateLayer    = errors.New("duplicate layer name")
	ErrDuplicateModifier = errors.New("modifier already has a layer")
	ErrUnknownLayer      = errors.New("unknown layer")
)

// Keymap is an ordered, immutable set of layers with at most one layer per
// modifier condition.
type Keymap struct {
	layers []*Layer
	byName map[string]*Layer
	byMod  map[Modifier]*Layer
}

// New builds a keymap from layers, kept in the given order.
func New(layers ...*Layer) (*Keymap, error) {
	km := &Keymap{
		layers: make([]*Layer, 0, len(layers)),
		byName: make(map[string]*Layer, len(layers)),
		byMod:  make(map[Modifier]*Layer, len(layers)),
	}
	for _, l := range layers {
		if l == nil {
			continue
		}
		if _, ok := km.byName[l.name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLayer, l.name)
		}
		if other, ok := km.byMod[l.mod]; ok {
			return nil, fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateModifier, l.mod, other.name, l.name)
		}
		km.layers = append(km.layers, l)
		km.byName[l.name] = l
		km.byMod[l.mod] = l
	}
	return km, nil
}

// Layers returns the layers in order.
func (km *Keymap) Layers() []*Layer {
	return append([]*Layer(nil), km.layers...)
}

// Layer returns the layer with the given name.
func (km *Keymap) Layer(name string) (*Layer, bool) {
	l, ok := km.byName[name]
	return l, ok
}

// LayerFor returns the layer active under mod.
func (km *Keymap) LayerFor(mod Modifier) (*Layer, bool) {
	l, ok := km.byMod[mod]
	return l, ok
}

// Resolve looks a keystroke up in the layer active under its modifier.
func (km *Keymap) Resolve(ks Keystroke) (Action, bool) {
	l, ok := km.byMod[ks.Mod]
	if !ok {
		return NoAction, false
	}
	return l.Lookup(ks.Key)
}

// ResolveString parses and resolves a keystroke such as "ctrl+z". Input that
// does not parse resolves to no action.
func (km *Keymap) ResolveString(s string) (Action, bool) {
	ks, err := ParseKeystroke(s)
	if err != nil {
		return NoAction, false
	}
	return km.Resolve(ks)
}

// KeyFor returns the keystroke of the first layer that binds a.
func (km *Keymap) KeyFor(a Action) (Keystroke, bool) {
	for _, l := range km.layers {
		if k, ok := l.KeyFor(a); ok {
			return Keystroke{Mod: l.mod, Key: k}, true
		}
	}
	return Keystroke{}, false
}

// Override rebinds one key of one layer. An empty Action unbinds the key.
type Override struct {
	Layer  string `mapstructure:"layer" json:"layer" yaml:"layer" toml:"layer"`
	Key    Key    `mapstructure:"key" json:"key" yaml:"key" toml:"key"`
	Action Action `mapstructure:"action" json:"action" yaml:"action" toml:"action"`
}

// Rebind returns a new keymap with the overrides applied in order. Binding an
// action that is already bound elsewhere in the layer moves it to the new key.
func (km *Keymap) Rebind(overrides ...Override) (*Keymap, error) {
	pending := make(map[string][]Override)
	for _, o := range overrides {
		if _, ok := km.byName[o.Layer]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLayer, o.Layer)
		}
		if !o.Key.Valid() {
			return nil, fmt.Errorf("layer %s: %w: %q", o.Layer, ErrInvalidKey, o.Key)
		}
		pending[o.Layer] = append(pending[o.Layer], o)
	}

	layers := make([]*Layer, 0, len(km.layers))
	for _, l := range km.layers {
		ops, ok := pending[l.name]
		if !ok {
			layers = append(layers, l)
			continue
		}
		next, err := l.rebind(ops)
		if err != nil {
			return nil, err
		}
		layers = append(layers, next)
	}
	return New(layers...)
}

func (l *Layer) rebind(ops []Override) (*Layer, error) {
	byKey := make(map[Key]Action, len(l.byKey))
	for k, a := range l.byKey {
		byKey[k] = a
	}
	for _, o := range ops {
		if o.Action == NoAction {
			delete(byKey, o.Key)
			continue
		}
		for k, a := range byKey {
			if a == o.Action && k != o.Key {
				delete(byKey, k)
			}
		}
		byKey[o.Key] = o.Action
	}

	bindings := make([]Binding, 0, len(byKey))
	for k, a := range byKey {
		bindings = append(bindings, Binding{Key: k, Action: a})
	}
	return NewLayer(l.name, l.mod, bindings...)
}
