package bindinglist

import (
	"testing"

	"github.com/hawkins/vecbind/internal/keymap"
)

func TestItems(t *testing.T) {
	ctrl, ok := keymap.Default().Layer(keymap.LayerCtrl)
	if !ok {
		t.Fatal("no ctrl layer")
	}
	items := Items(ctrl)
	if len(items) != ctrl.Len() {
		t.Fatalf("%d items, want %d", len(items), ctrl.Len())
	}

	first := items[0]
	if first.Stroke.String() != "ctrl+y" || first.Action != keymap.ActionRedo {
		t.Errorf("first item = %s %s, want ctrl+y redo", first.Stroke, first.Action)
	}
	if got := first.Override(); got != "ctrl:y=redo" {
		t.Errorf("Override = %q", got)
	}
	if got := first.FilterValue(); got != "redo" {
		t.Errorf("FilterValue = %q", got)
	}
	if got := first.Description(); got != keymap.Describe(keymap.ActionRedo) {
		t.Errorf("Description = %q", got)
	}
}

func TestSelect(t *testing.T) {
	base, _ := keymap.Default().Layer(keymap.LayerBase)
	m := New(40, 40)
	m.SetItems(Items(base))

	if !m.Select(func(it Item) bool { return it.Action == keymap.ActionClose }) {
		t.Fatal("close not found")
	}
	if it, ok := m.SelectedItem(); !ok || it.Stroke.Key != "z" {
		t.Errorf("selected = %+v, want z", it)
	}
	if m.Select(func(it Item) bool { return it.Action == keymap.ActionUndo }) {
		t.Error("undo is not in the base layer")
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{Stroke: keymap.Keystroke{Key: "a"}, Action: keymap.ActionLine}, "a        line"},
		{Item{Stroke: keymap.Keystroke{Mod: keymap.ModCtrl, Key: "z"}, Action: keymap.ActionUndo}, "ctrl+z   undo"},
		{Item{Stroke: keymap.Keystroke{Key: "c"}}, "c        (unassigned)"},
		// wide rune takes two columns
		{Item{Stroke: keymap.Keystroke{Key: "漢"}, Action: keymap.ActionFill}, "漢       fill"},
	}
	for _, tt := range tests {
		if got := tt.item.Title(); got != tt.want {
			t.Errorf("Title() = %q, want %q", got, tt.want)
		}
	}
}
