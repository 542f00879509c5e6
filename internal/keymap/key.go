package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrInvalidKey      = errors.New("invalid key")
	ErrInvalidModifier = errors.New("invalid modifier")
)

// Key is a single-rune token for a physical keyboard key. Case matters.
type Key string

// Valid reports whether k is exactly one printable rune (space included).
func (k Key) Valid() bool {
	if utf8.RuneCountInString(string(k)) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(string(k))
	if r == utf8.RuneError {
		return false
	}
	if r == ' ' {
		return true
	}
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// Modifier is the condition under which a layer is active.
type Modifier string

const (
	ModNone Modifier = ""
	ModCtrl Modifier = "ctrl"
	ModAlt  Modifier = "alt"
)

// ParseModifier accepts "", "none", "base", "ctrl", "control", "c", "alt",
// "meta", "a". Matching is case-insensitive.
func ParseModifier(s string) (Modifier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "base":
		return ModNone, nil
	case "ctrl", "control", "c":
		return ModCtrl, nil
	case "alt", "meta", "a":
		return ModAlt, nil
	}
	return ModNone, fmt.Errorf("%w: %q", ErrInvalidModifier, s)
}

// Valid reports whether m is one of ModNone, ModCtrl or ModAlt.
func (m Modifier) Valid() bool {
	switch m {
	case ModNone, ModCtrl, ModAlt:
		return true
	}
	return false
}

func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	return string(m)
}

// Keystroke is a key pressed while a modifier is held.
type Keystroke struct {
	Mod Modifier
	Key Key
}

const spaceName = "space"

// String renders the keystroke the way terminals name keys: "a", "ctrl+z",
// "ctrl+space". ParseKeystroke reads every form back.
func (ks Keystroke) String() string {
	key := string(ks.Key)
	if ks.Key == " " {
		key = spaceName
	}
	if ks.Mod == ModNone {
		return key
	}
	return string(ks.Mod) + "+" + key
}

// ParseKeystroke parses "a", "space", "ctrl+z", "C-z", "alt+s" or "a-s".
func ParseKeystroke(s string) (Keystroke, error) {
	if s == "" {
		return Keystroke{}, fmt.Errorf("%w: empty keystroke", ErrInvalidKey)
	}
	// a bare key is returned as-is so "+" and "-" stay bindable
	if Key(s).Valid() {
		return Keystroke{Key: Key(s)}, nil
	}
	if s == spaceName {
		return Keystroke{Key: " "}, nil
	}

	var prefix, rest string
	if i := strings.IndexAny(s, "+-"); i > 0 {
		prefix, rest = s[:i], s[i+1:]
	} else {
		return Keystroke{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	mod, err := ParseModifier(prefix)
	if err != nil {
		return Keystroke{}, err
	}
	if mod == ModNone {
		return Keystroke{}, fmt.Errorf("%w: %q", ErrInvalidModifier, prefix)
	}
	if rest == spaceName {
		rest = " "
	}
	k := Key(rest)
	if !k.Valid() {
		return Keystroke{}, fmt.Errorf("%w: %q", ErrInvalidKey, rest)
	}
	return Keystroke{Mod: mod, Key: k}, nil
}

// keyboard rows used to list bindings in the order a user scans the keyboard
const keyboardOrder = "1234567890qwertyuiopasdfghjklzxcvbnmQWERTYUIOPASDFGHJKLZXCVBNM"

func keyRank(k Key) int {
	if i := strings.Index(keyboardOrder, string(k)); i >= 0 && len(k) == 1 {
		return i
	}
	r, _ := utf8.DecodeRuneInString(string(k))
	return len(keyboardOrder) + int(r)
}

func keyLess(a, b Key) bool {
	return keyRank(a) < keyRank(b)
}
