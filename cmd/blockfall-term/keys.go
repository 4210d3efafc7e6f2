package main

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
)

// termKey identifies a key independent of modifiers. Printable keys are
// their lowercased rune; special keys are the negated tcell key code.
type termKey int32

func runeKey(r rune) termKey {
	return termKey(unicode.ToLower(r))
}

func specialKey(k tcell.Key) termKey {
	return termKey(-int32(k))
}

// keyOf maps a key event to its termKey.
func keyOf(ev *tcell.EventKey) termKey {
	if ev.Key() == tcell.KeyRune {
		return runeKey(ev.Rune())
	}
	return specialKey(ev.Key())
}

var keyAliases = map[string]termKey{
	"space":  runeKey(' '),
	"escape": specialKey(tcell.KeyEscape),
	"return": specialKey(tcell.KeyEnter),
}

var namedKeys = func() map[string]termKey {
	names := make(map[string]termKey, len(tcell.KeyNames)+len(keyAliases))
	for k, name := range tcell.KeyNames {
		names[strings.ToLower(name)] = specialKey(k)
	}
	for name, k := range keyAliases {
		names[name] = k
	}
	return names
}()

// lookupKey resolves a configured key name. Single characters name
// themselves; anything else must be a tcell key name such as "left" or
// "ctrl-c".
func lookupKey(name string) (termKey, bool) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return runeKey(r), true
	}
	k, ok := namedKeys[strings.ToLower(name)]
	return k, ok
}

// Keyboard collects the keys pressed since the last frame. Terminals report
// presses and repeats but never releases, so a key counts as down for the
// one frame after its event arrives.
type Keyboard struct {
	events  <-chan tcell.Event
	pressed *intmap.Set[termKey]
	resized bool
}

func NewKeyboard(events <-chan tcell.Event) *Keyboard {
	return &Keyboard{
		events:  events,
		pressed: intmap.NewSet[termKey](8),
	}
}

// Drain replaces the pressed set with the events queued since the last call.
func (k *Keyboard) Drain() {
	k.pressed.Clear()
	k.resized = false

	for {
		select {
		case ev := <-k.events:
			k.handle(ev)
		default:
			return
		}
	}
}

func (k *Keyboard) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k.pressed.Add(keyOf(ev))
	case *tcell.EventResize:
		k.resized = true
	}
}

// IsDown reports whether key was pressed during the last drained frame.
func (k *Keyboard) IsDown(key termKey) bool {
	return k.pressed.Has(key)
}

// Resized reports whether the terminal changed size during the last frame.
func (k *Keyboard) Resized() bool {
	return k.resized
}
