package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// Resolver maps key strings to actions and tracks which actions are
// currently available. It implements help.KeyMap so the footer only shows
// keys that do something.
type Resolver struct {
	bindings []Binding
	byKey    map[string]Action // key -> action
	disabled map[Action]bool
}

// NewResolver creates a resolver from bindings. When a key appears in more
// than one binding the first one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: bindings,
		byKey:    make(map[string]Action),
		disabled: make(map[Action]bool),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			if _, taken := r.byKey[k]; !taken {
				r.byKey[k] = b.Action
			}
		}
	}
	return r
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}

// Resolve returns the action for a key, or empty string if the key is not
// bound or its action is disabled.
func (r *Resolver) Resolve(key string) Action {
	a := r.byKey[key]
	if r.disabled[a] {
		return ""
	}
	return a
}

// KeysFor returns the keys bound to an action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	var keys []string
	for _, b := range r.bindings {
		if b.Action != action {
			continue
		}
		for _, k := range b.Keys {
			if r.byKey[k] == action && !slices.Contains(keys, k) {
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// SetEnabled turns an action on or off.
func (r *Resolver) SetEnabled(action Action, enabled bool) {
	if enabled {
		delete(r.disabled, action)
	} else {
		r.disabled[action] = true
	}
}

// Enabled reports whether an action currently resolves.
func (r *Resolver) Enabled(action Action) bool {
	return !r.disabled[action]
}

// key converts the binding for action into a bubbles key binding.
func (r *Resolver) key(b Binding) key.Binding {
	kb := b.Key()
	kb.SetEnabled(r.Enabled(b.Action))
	return kb
}

// ShortHelp returns the bindings shown in the one-line footer.
func (r *Resolver) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(shortHelp))
	for _, a := range shortHelp {
		for _, b := range r.bindings {
			if b.Action == a {
				out = append(out, r.key(b))
				break
			}
		}
	}
	return out
}

// FullHelp returns every binding, one column per context.
func (r *Resolver) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for _, ctx := range helpContexts {
		var col []key.Binding
		for _, b := range r.bindings {
			if b.Context == ctx {
				col = append(col, r.key(b))
			}
		}
		if len(col) > 0 {
			cols = append(cols, col)
		}
	}
	return cols
}
