package term

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/termtris/tetris"
)

var namedKeys = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
}

var namedRunes = map[string]rune{
	"space": ' ',
}

// ParseKey turns a key name from the config into a tcell key. Printable keys
// come back as KeyRune with their rune; "ctrl+x" names a control key.
func ParseKey(name string) (tcell.Key, rune, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if key, ok := namedKeys[lower]; ok {
		return key, 0, nil
	}
	if r, ok := namedRunes[lower]; ok {
		return tcell.KeyRune, r, nil
	}
	if letter, ok := strings.CutPrefix(lower, "ctrl+"); ok {
		if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(letter[0]-'a'), 0, nil
		}
		return 0, 0, fmt.Errorf("unknown control key %q", name)
	}

	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) == 1 {
		r, _ := utf8.DecodeRuneInString(trimmed)
		if unicode.IsPrint(r) {
			return tcell.KeyRune, r, nil
		}
	}
	return 0, 0, fmt.Errorf("unknown key %q", name)
}

// Keymap resolves tcell key events to game actions.
type Keymap struct {
	runes *intmap.Map[rune, tetris.Action]
	keys  *intmap.Map[tcell.Key, tetris.Action]
	names map[tetris.Action][]string
}

// NewKeymap builds a keymap from per-action key names. Letter bindings match
// both cases so Caps Lock does not get in the way.
func NewKeymap(bindings map[tetris.Action][]string) (*Keymap, error) {
	km := &Keymap{
		runes: intmap.New[rune, tetris.Action](32),
		keys:  intmap.New[tcell.Key, tetris.Action](8),
		names: make(map[tetris.Action][]string, len(bindings)),
	}

	for _, action := range tetris.Actions {
		for _, name := range bindings[action] {
			key, r, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("binding for %s: %w", action, err)
			}
			km.names[action] = append(km.names[action], strings.ToLower(strings.TrimSpace(name)))

			if key != tcell.KeyRune {
				km.keys.Put(key, action)
				continue
			}
			km.runes.Put(r, action)
			if unicode.IsLetter(r) {
				km.runes.Put(unicode.ToLower(r), action)
				km.runes.Put(unicode.ToUpper(r), action)
			}
		}
	}
	return km, nil
}

// Lookup returns the action bound to ev.
func (km *Keymap) Lookup(ev *tcell.EventKey) (tetris.Action, bool) {
	if key, ok := controlKey(ev); ok {
		return km.keys.Get(key)
	}
	if ev.Key() == tcell.KeyRune {
		return km.runes.Get(ev.Rune())
	}
	return km.keys.Get(ev.Key())
}

// controlKey normalizes ctrl+letter, which some terminals report as a rune
// with the ctrl modifier rather than as a control key.
func controlKey(ev *tcell.EventKey) (tcell.Key, bool) {
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&tcell.ModCtrl == 0 {
		return 0, false
	}
	r := unicode.ToLower(ev.Rune())
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return tcell.KeyCtrlA + tcell.Key(r-'a'), true
}

// Names returns the key names bound to action, as configured.
func (km *Keymap) Names(action tetris.Action) []string {
	return km.names[action]
}
