package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/hawkins/vecbind/internal/keymap"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", JSON},
		{".JSON", JSON},
		{"yml", YAML},
		{".yaml", YAML},
		{"toml", TOML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFormat("ini"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(ini) error = %v, want %v", err, ErrUnknownFormat)
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/tmp/profiles/dotgrid.yml")
	if err != nil || f != YAML {
		t.Errorf("FormatFromPath = %q, %v; want yaml", f, err)
	}
	if _, err := FormatFromPath("/tmp/profiles/dotgrid"); err == nil {
		t.Error("FormatFromPath without extension should fail")
	}
}

func TestUnmarshalHandwrittenYAML(t *testing.T) {
	src := `
layers:
  - name: base
    bindings:
      q: linecap
      w: linejoin
      a: line
      c: ""
  - name: ctrl
    modifier: ctrl
    bindings:
      z: undo
`
	doc, err := Unmarshal([]byte(src), YAML)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	km, err := keymap.FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if a, ok := km.ResolveString("a"); !ok || a != keymap.ActionLine {
		t.Errorf("a = %q, %v; want line", a, ok)
	}
	if _, ok := km.ResolveString("c"); ok {
		t.Error("c should be reserved, not bound")
	}
	if a, ok := km.ResolveString("ctrl+z"); !ok || a != keymap.ActionUndo {
		t.Errorf("ctrl+z = %q, %v; want undo", a, ok)
	}
}

func TestUnmarshalHandwrittenTOML(t *testing.T) {
	src := `
[[layers]]
name = "base"

[layers.bindings]
a = "line"
s = "arc"

[[layers]]
name = "ctrl"
modifier = "ctrl"

[layers.bindings]
y = "redo"
`
	doc, err := Unmarshal([]byte(src), TOML)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(doc.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(doc.Layers))
	}
	if doc.Layers[1].Modifier != "ctrl" || doc.Layers[1].Bindings["y"] != "redo" {
		t.Errorf("ctrl layer = %+v", doc.Layers[1])
	}
}

func TestMarshalPreservesLayerOrder(t *testing.T) {
	doc := keymap.Default().Document()

	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			data, err := Marshal(doc, f)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			out := string(data)
			base, ctrl := strings.Index(out, "base"), strings.Index(out, "ctrl")
			if base < 0 || ctrl < 0 || base > ctrl {
				t.Errorf("layers out of order in %s output:\n%s", f, out)
			}

			back, err := Unmarshal(data, f)
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if _, err := keymap.FromDocument(back); err != nil {
				t.Errorf("FromDocument after %s: %v", f, err)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := Marshal(keymap.Document{}, "ini"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Marshal error = %v, want %v", err, ErrUnknownFormat)
	}
	if _, err := Unmarshal(nil, "ini"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Unmarshal error = %v, want %v", err, ErrUnknownFormat)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	if _, err := Unmarshal([]byte("{"), JSON); err == nil {
		t.Error("Unmarshal of truncated JSON should fail")
	}
}

func TestUnmarshalRejectsRepeatedKey(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{JSON, `{"layers":[{"name":"base","bindings":{"a":"line","a":"arc"}}]}`},
		{YAML, "layers:\n  - name: base\n    bindings:\n      a: line\n      a: arc\n"},
		{TOML, "[[layers]]\nname = \"base\"\n[layers.bindings]\na = \"line\"\na = \"arc\"\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			doc, err := Unmarshal([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatalf("Unmarshal accepted a repeated key: %+v", doc)
			}
			msg := err.Error()
			if !strings.Contains(msg, "more than once") && !strings.Contains(msg, "already defined") {
				t.Errorf("error does not report the repeated key: %v", err)
			}
		})
	}
}

func TestUnmarshalJSONLayer(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"layers":[
		{"name":"base","bindings":{"a":"line","c":""}},
		{"name":"ctrl","modifier":"ctrl","bindings":{"z":"undo"}},
		{"name":"empty","modifier":"alt"}
	]}`), JSON)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(doc.Layers) != 3 {
		t.Fatalf("got %d layers", len(doc.Layers))
	}
	base := doc.Layers[0]
	if base.Name != "base" || base.Bindings["a"] != "line" {
		t.Errorf("base = %+v", base)
	}
	if a, ok := base.Bindings["c"]; !ok || a != "" {
		t.Errorf("reserved key c lost: %+v", base.Bindings)
	}
	if doc.Layers[1].Modifier != "ctrl" || doc.Layers[1].Bindings["z"] != "undo" {
		t.Errorf("ctrl = %+v", doc.Layers[1])
	}
	if doc.Layers[2].Bindings != nil {
		t.Errorf("empty layer bindings = %+v", doc.Layers[2].Bindings)
	}

	if _, err := Unmarshal([]byte(`{"layers":[{"name":"base","bindings":{"a":1}}]}`), JSON); err == nil {
		t.Error("non-string action should fail")
	}
}
