package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidLayer    = errors.New("invalid layer")
	ErrDuplicateKey    = errors.New("key bound more than once")
	ErrDuplicateAction = errors.New("action bound to more than one key")
)

// Binding associates one key with one action. An empty action reserves the
// key without assigning it.
type Binding struct {
	Key    Key
	Action Action
}

// Layer is an immutable key to action mapping active under one modifier.
type Layer struct {
	name     string
	mod      Modifier
	byKey    map[Key]Action
	byAction map[Action]Key
	order    []Key
}

// NewLayer builds a layer from bindings. Each key may appear once and each
// non-empty action may be bound to a single key.
func NewLayer(name string, mod Modifier, bindings ...Binding) (*Layer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidLayer)
	}
	if !mod.Valid() {
		return nil, fmt.Errorf("layer %s: %w: %q", name, ErrInvalidModifier, string(mod))
	}

	l := &Layer{
		name:     name,
		mod:      mod,
		byKey:    make(map[Key]Action, len(bindings)),
		byAction: make(map[Action]Key, len(bindings)),
		order:    make([]Key, 0, len(bindings)),
	}
	for _, b := range bindings {
		if !b.Key.Valid() {
			return nil, fmt.Errorf("layer %s: %w: %q", name, ErrInvalidKey, b.Key)
		}
		if prev, ok := l.byKey[b.Key]; ok {
			return nil, fmt.Errorf("layer %s: %w: %q (%s, %s)", name, ErrDuplicateKey, b.Key, prev, b.Action)
		}
		if b.Action != NoAction {
			if prev, ok := l.byAction[b.Action]; ok {
				return nil, fmt.Errorf("layer %s: %w: %s (%q, %q)", name, ErrDuplicateAction, b.Action, prev, b.Key)
			}
			l.byAction[b.Action] = b.Key
		}
		l.byKey[b.Key] = b.Action
		l.order = append(l.order, b.Key)
	}
	sort.SliceStable(l.order, func(i, j int) bool { return keyLess(l.order[i], l.order[j]) })
	return l, nil
}

// LayerFromActions builds a layer from the inverse form, action to key.
// Two actions on the same key are rejected.
func LayerFromActions(name string, mod Modifier, actions map[Action]Key) (*Layer, error) {
	names := make([]Action, 0, len(actions))
	for a := range actions {
		names = append(names, a)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	bindings := make([]Binding, 0, len(actions))
	for _, a := range names {
		bindings = append(bindings, Binding{Key: actions[a], Action: a})
	}
	return NewLayer(name, mod, bindings...)
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Modifier returns the modifier condition that activates the layer.
func (l *Layer) Modifier() Modifier { return l.mod }

// Len returns the number of keys in the layer, reserved ones included.
func (l *Layer) Len() int { return len(l.order) }

// Lookup resolves a key. Absent and reserved keys both yield NoAction, false.
func (l *Layer) Lookup(k Key) (Action, bool) {
	if l == nil {
		return NoAction, false
	}
	a, ok := l.byKey[k]
	if !ok || a == NoAction {
		return NoAction, false
	}
	return a, true
}

// KeyFor resolves an action back to its key.
func (l *Layer) KeyFor(a Action) (Key, bool) {
	if l == nil || a == NoAction {
		return "", false
	}
	k, ok := l.byAction[a]
	return k, ok
}

// Bindings lists every binding in keyboard order.
func (l *Layer) Bindings() []Binding {
	out := make([]Binding, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, Binding{Key: k, Action: l.byKey[k]})
	}
	return out
}

// Unassigned lists the reserved keys that carry no action.
func (l *Layer) Unassigned() []Key {
	var out []Key
	for _, k := range l.order {
		if l.byKey[k] == NoAction {
			out = append(out, k)
		}
	}
	return out
}
