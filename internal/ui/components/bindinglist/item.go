package bindinglist

import (
	"fmt"

	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/mattn/go-runewidth"
)

const strokeWidth = 8

// Item is one binding of the displayed layer
type Item struct {
	Layer  string
	Stroke keymap.Keystroke
	Action keymap.Action
}

// Items converts a layer into list items, keyboard order preserved
func Items(l *keymap.Layer) []Item {
	bindings := l.Bindings()
	out := make([]Item, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, Item{
			Layer:  l.Name(),
			Stroke: keymap.Keystroke{Mod: l.Modifier(), Key: b.Key},
			Action: b.Action,
		})
	}
	return out
}

// Override returns the item as a "layer:key=action" override. For a reserved
// key that text unbinds the key.
func (i Item) Override() string {
	return fmt.Sprintf("%s:%s=%s", i.Layer, i.Stroke.Key, i.Action)
}

// Title implements list.Item. Keys may be wide runes, so the stroke is padded
// by display width.
func (i Item) Title() string {
	action := string(i.Action)
	if i.Action == keymap.NoAction {
		action = "(unassigned)"
	}
	return runewidth.FillRight(i.Stroke.String(), strokeWidth) + " " + action
}

// Description implements list.Item
func (i Item) Description() string { return keymap.Describe(i.Action) }

// FilterValue implements list.Item
func (i Item) FilterValue() string { return string(i.Action) }
