// Package keymap maps keystrokes to the drawing actions of the editor.
//
// A Keymap is an ordered set of Layers. Each Layer is active under one
// modifier condition (none, ctrl, alt) and maps single-rune keys to named
// actions. Layers also keep the inverse view (action to key) used to render
// help text. Both are immutable once built; rebinding returns a new Keymap.
//
// A key with no binding in the active layer resolves to NoAction and false.
// Callers treat that as a no-op, never as a fault.
package keymap

import "sort"

// Action names an editor operation invoked via a key press.
type Action string

// NoAction marks a key that is explicitly reserved but unassigned.
const NoAction Action = ""

// Drawing tools
const (
	ActionLinecap     Action = "linecap"
	ActionLinejoin    Action = "linejoin"
	ActionMirror      Action = "mirror"
	ActionFill        Action = "fill"
	ActionLine        Action = "line"
	ActionArc         Action = "arc"
	ActionArcRev      Action = "arc_rev"
	ActionBezier      Action = "bezier"
	ActionBezierQuad  Action = "bezier_quad"
	ActionBezierCube  Action = "bezier_cube"
	ActionClose       Action = "close"
	ActionRemovePoint Action = "remove_point"
)

// History
const (
	ActionUndo Action = "undo"
	ActionRedo Action = "redo"
)

// Export formats
const (
	ActionExportSVG  Action = "svg"
	ActionExportPNG  Action = "png"
	ActionExportJSON Action = "json"
)

var descriptions = map[Action]string{
	ActionLinecap:     "Cycle the line cap of the current stroke (butt, round, square).",
	ActionLinejoin:    "Cycle the line join of the current stroke (miter, round, bevel).",
	ActionMirror:      "Cycle the mirror mode used while drawing.",
	ActionFill:        "Toggle fill for the current shape.",
	ActionLine:        "Draw a straight segment through the selected points.",
	ActionArc:         "Draw a clockwise arc through the selected points.",
	ActionArcRev:      "Draw a counter-clockwise arc through the selected points.",
	ActionBezier:      "Draw a bézier segment through the selected points.",
	ActionBezierQuad:  "Draw a quadratic bézier using one control point.",
	ActionBezierCube:  "Draw a cubic bézier using two control points.",
	ActionClose:       "Close the current path back to its first point.",
	ActionRemovePoint: "Remove the last placed control point.",
	ActionUndo:        "Undo the last change.",
	ActionRedo:        "Redo the last undone change.",
	ActionExportSVG:   "Export the drawing as SVG.",
	ActionExportPNG:   "Export the drawing as PNG.",
	ActionExportJSON:  "Export the drawing as a JSON document.",
}

// IsKnown reports whether the editor defines the action.
func IsKnown(a Action) bool {
	_, ok := descriptions[a]
	return ok
}

// KnownActions returns every action the editor defines, sorted by name.
func KnownActions() []Action {
	actions := make([]Action, 0, len(descriptions))
	for a := range descriptions {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}

// Describe returns a one-sentence description of the action.
func Describe(a Action) string {
	if a == NoAction {
		return "Reserved, not assigned."
	}
	if d, ok := descriptions[a]; ok {
		return d
	}
	return "Action defined outside the editor's built-in set."
}

func (a Action) String() string {
	if a == NoAction {
		return "(unassigned)"
	}
	return string(a)
}
