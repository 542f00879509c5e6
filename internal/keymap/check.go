package keymap

import (
	"fmt"
	"strings"
)

// Severity of a Problem.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Problem is one finding reported by Check.
type Problem struct {
	Severity Severity
	Layer    string
	Key      string
	Message  string
}

func (p Problem) String() string {
	var b strings.Builder
	b.WriteString(p.Severity.String())
	if p.Layer != "" {
		b.WriteString(" [" + p.Layer)
		if p.Key != "" {
			b.WriteString(" " + p.Key)
		}
		b.WriteString("]")
	}
	b.WriteString(": " + p.Message)
	return b.String()
}

// Problems is the result of Check.
type Problems []Problem

// HasErrors reports whether any problem is an error.
func (ps Problems) HasErrors() bool {
	for _, p := range ps {
		if p.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Check lints a document and reports every problem found, where FromDocument
// stops at the first one. Unknown actions are warnings.
func Check(doc Document) Problems {
	var ps Problems
	add := func(sev Severity, layer, key, format string, args ...any) {
		ps = append(ps, Problem{Severity: sev, Layer: layer, Key: key, Message: fmt.Sprintf(format, args...)})
	}

	if len(doc.Layers) == 0 {
		add(SeverityWarning, "", "", "document has no layers")
	}

	names := make(map[string]int)
	mods := make(map[Modifier]string)
	for i, ld := range doc.Layers {
		name := strings.TrimSpace(ld.Name)
		if name == "" {
			add(SeverityError, "", "", "layer %d has no name", i)
			name = fmt.Sprintf("#%d", i)
		} else if prev, ok := names[name]; ok {
			add(SeverityError, name, "", "layer name already used by layer %d", prev)
		} else {
			names[name] = i
		}

		mod, err := ParseModifier(ld.Modifier)
		if err != nil {
			add(SeverityError, name, "", "unknown modifier %q", ld.Modifier)
		} else if other, ok := mods[mod]; ok {
			add(SeverityError, name, "", "modifier %s already used by layer %s", mod, other)
		} else {
			mods[mod] = name
		}

		seen := make(map[Action]string)
		for _, b := range ld.bindings() {
			if !b.Key.Valid() {
				add(SeverityError, name, string(b.Key), "key must be a single printable character")
				continue
			}
			if b.Action == NoAction {
				continue
			}
			if prev, ok := seen[b.Action]; ok {
				add(SeverityError, name, string(b.Key), "action %s is also bound to %q", b.Action, prev)
				continue
			}
			seen[b.Action] = string(b.Key)
			if !IsKnown(b.Action) {
				add(SeverityWarning, name, string(b.Key), "unknown action %s", b.Action)
			}
		}
	}
	return ps
}
