package input

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Controller receives the commands produced by a Dispatcher.
type Controller interface {
	MoveLeft()
	MoveRight()
	SoftDrop()
	Rotate()
	TogglePause()
	Reset()
	GameOver() bool
}

// Source turns one frame of device state into controller commands.
// Dispatch reports whether the player asked to quit.
type Source interface {
	Dispatch(c Controller) (quit bool)
}

// Dispatcher maps device keys of type K to actions and applies edge or level
// triggering per action.
type Dispatcher[K intmap.IntKey] struct {
	bindings *intmap.Map[K, Action]
	held     [actionCount]bool
}

func NewDispatcher[K intmap.IntKey]() *Dispatcher[K] {
	return &Dispatcher[K]{
		bindings: intmap.New[K, Action](16),
	}
}

// Bind maps key to action, replacing any earlier binding of key.
func (d *Dispatcher[K]) Bind(key K, action Action) {
	d.bindings.Put(key, action)
}

// Action returns the action bound to key, or ActionNone.
func (d *Dispatcher[K]) Action(key K) Action {
	action, _ := d.bindings.Get(key)
	return action
}

// Len returns the number of bound keys.
func (d *Dispatcher[K]) Len() int {
	return d.bindings.Len()
}

// BindNames binds every key name listed per action name, resolving names
// with lookup.
func (d *Dispatcher[K]) BindNames(names map[string][]string, lookup func(string) (K, bool)) error {
	for actionName, keyNames := range names {
		action, err := ParseAction(actionName)
		if err != nil {
			return err
		}
		for _, name := range keyNames {
			key, ok := lookup(name)
			if !ok {
				return fmt.Errorf("action %s: unknown key %q", action, name)
			}
			d.Bind(key, action)
		}
	}
	return nil
}

// Poll samples every bound key and returns the actions that fire this frame.
// Edge-triggered actions fire only on the frame their key goes down.
func (d *Dispatcher[K]) Poll(isDown func(K) bool) Actions {
	var down [actionCount]bool
	for key, action := range d.bindings.All() {
		if isDown(key) {
			down[action] = true
		}
	}

	var fired Actions
	for a := ActionMoveLeft; a < actionCount; a++ {
		if down[a] && (!a.EdgeTriggered() || !d.held[a]) {
			fired.add(a)
		}
	}
	d.held = down

	return fired
}

// Apply forwards fired actions to c in a fixed order: pause first, then
// movement, then rotation. Reset is honored only once the game is over.
func Apply(fired Actions, c Controller) (quit bool) {
	if fired.Has(ActionQuit) {
		return true
	}

	if fired.Has(ActionReset) && c.GameOver() {
		c.Reset()
	}

	if fired.Has(ActionTogglePause) {
		c.TogglePause()
	}

	if fired.Has(ActionMoveLeft) {
		c.MoveLeft()
	}
	if fired.Has(ActionMoveRight) {
		c.MoveRight()
	}
	if fired.Has(ActionSoftDrop) {
		c.SoftDrop()
	}
	if fired.Has(ActionRotate) {
		c.Rotate()
	}

	return false
}

// Source binds the dispatcher to a key state reader.
func (d *Dispatcher[K]) Source(isDown func(K) bool) Source {
	return dispatchSource[K]{d: d, isDown: isDown}
}

type dispatchSource[K intmap.IntKey] struct {
	d      *Dispatcher[K]
	isDown func(K) bool
}

func (s dispatchSource[K]) Dispatch(c Controller) bool {
	return Apply(s.d.Poll(s.isDown), c)
}
