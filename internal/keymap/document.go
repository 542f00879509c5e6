package keymap

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

// Document is the serialisable form of a keymap. Layer order is preserved.
type Document struct {
	Layers []LayerDocument `mapstructure:"layers" json:"layers" yaml:"layers" toml:"layers"`
}

// LayerDocument is one layer of a Document. Bindings maps key to action; an
// empty action reserves the key.
type LayerDocument struct {
	Name     string            `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
	Modifier string            `mapstructure:"modifier" json:"modifier,omitempty" yaml:"modifier,omitempty" toml:"modifier,omitempty"`
	Bindings map[string]string `mapstructure:"bindings" json:"bindings" yaml:"bindings" toml:"bindings"`
}

// Document returns the serialisable form of km.
func (km *Keymap) Document() Document {
	doc := Document{Layers: make([]LayerDocument, 0, len(km.layers))}
	for _, l := range km.layers {
		ld := LayerDocument{
			Name:     l.name,
			Modifier: string(l.mod),
			Bindings: make(map[string]string, len(l.byKey)),
		}
		for k, a := range l.byKey {
			ld.Bindings[string(k)] = string(a)
		}
		doc.Layers = append(doc.Layers, ld)
	}
	return doc
}

// FromDocument builds a keymap, failing on the first broken rule.
// Use Check to collect every problem.
func FromDocument(doc Document) (*Keymap, error) {
	layers := make([]*Layer, 0, len(doc.Layers))
	for i, ld := range doc.Layers {
		mod, err := ParseModifier(ld.Modifier)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, ld.Name, err)
		}
		l, err := NewLayer(ld.Name, mod, ld.bindings()...)
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	return New(layers...)
}

func (ld LayerDocument) bindings() []Binding {
	keys := make([]string, 0, len(ld.Bindings))
	for k := range ld.Bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, Binding{Key: Key(k), Action: Action(ld.Bindings[k])})
	}
	return out
}

// layerDocumentJSON is LayerDocument with bindings left undecoded
type layerDocumentJSON struct {
	Name     string              `json:"name"`
	Modifier string              `json:"modifier"`
	Bindings jsoniter.RawMessage `json:"bindings"`
}

// UnmarshalJSON decodes a layer and rejects a key that appears twice in
// bindings. Plain map decoding would keep the last value silently.
func (ld *LayerDocument) UnmarshalJSON(data []byte) error {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	var raw layerDocumentJSON
	if err := api.Unmarshal(data, &raw); err != nil {
		return err
	}
	*ld = LayerDocument{Name: raw.Name, Modifier: raw.Modifier}
	if len(raw.Bindings) == 0 || string(raw.Bindings) == "null" {
		return nil
	}

	bindings := make(map[string]string)
	iter := jsoniter.ParseBytes(api, raw.Bindings)
	iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		if _, dup := bindings[key]; dup {
			it.ReportError("bindings", fmt.Sprintf("key %q bound more than once", key))
			return false
		}
		bindings[key] = it.ReadString()
		return it.Error == nil
	})
	if iter.Error != nil {
		return fmt.Errorf("layer %s: %w", raw.Name, iter.Error)
	}
	ld.Bindings = bindings
	return nil
}
