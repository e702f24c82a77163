package input

import (
	"sort"
	"strings"

	"github.com/vovakirdan/dash-arena/internal/core"
)

// Binding maps one key to an action for a player slot.
type Binding struct {
	Player core.PlayerID
	Action core.Action
}

// Bindings is a key-to-action table. One key may drive several bindings.
type Bindings struct {
	keys map[string][]Binding
}

// NewBindings creates an empty table.
func NewBindings() *Bindings {
	return &Bindings{keys: make(map[string][]Binding)}
}

// Bind adds a binding for key. Keys are normalized first.
func (b *Bindings) Bind(key string, player core.PlayerID, a core.Action) {
	key = NormalizeKey(key)
	if key == "" {
		return
	}
	b.keys[key] = append(b.keys[key], Binding{Player: player, Action: a})
}

// Lookup returns the bindings for a normalized key.
func (b *Bindings) Lookup(key string) []Binding {
	return b.keys[key]
}

// Bound reports whether key drives anything.
func (b *Bindings) Bound(key string) bool {
	return len(b.keys[NormalizeKey(key)]) > 0
}

// KeysFor lists the keys that drive an action for a player, sorted.
func (b *Bindings) KeysFor(player core.PlayerID, a core.Action) []string {
	var out []string
	for key, list := range b.keys {
		for _, bind := range list {
			if bind.Player == player && bind.Action == a {
				out = append(out, key)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// keyAliases folds browser-style and shorthand names onto the names the
// terminal and window frontends produce.
var keyAliases = map[string]string{
	" ":          "space",
	"arrowleft":  "left",
	"arrowright": "right",
	"arrowup":    "up",
	"arrowdown":  "down",
	"escape":     "esc",
	"return":     "enter",
}

// NormalizeKey lowercases a key name and resolves aliases.
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}
