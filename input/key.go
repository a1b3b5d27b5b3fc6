package input

import (
	"fmt"
	"strings"
)

// Key is a backend-neutral physical key
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyA // KeyA..KeyZ are contiguous
)

// Letter keys used by the default bindings
const (
	KeyD = KeyA + 'd' - 'a'
	KeyW = KeyA + 'w' - 'a'
	KeyZ = KeyA + 'z' - 'a'
)

// KeyCount is the number of distinct keys
const KeyCount = int(KeyZ) + 1

// KeyFromRune maps a letter to its key, case-insensitive; space maps to KeySpace
func KeyFromRune(r rune) (Key, bool) {
	switch {
	case r == ' ':
		return KeySpace, true
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	}
	return KeyNone, false
}

// keyToName maps keys to canonical config names
var keyToName = map[Key]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyEnter: "enter",
	KeySpace: "space",
}

// String returns the canonical config name
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + k - KeyA))
	}
	return "none"
}

// ParseKey resolves a config name ("w", "space", "up", ...) to a key
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range keyToName {
		if kn == n {
			return k, nil
		}
	}
	if len(n) == 1 {
		if k, ok := KeyFromRune(rune(n[0])); ok {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}

// KeySet is a set of held keys
type KeySet uint64

// NewKeySet builds a set from keys
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return k != KeyNone && s&(1<<k) != 0
}

// With returns the set with k added
func (s KeySet) With(k Key) KeySet {
	if k == KeyNone {
		return s
	}
	return s | 1<<k
}

// Empty reports whether no key is held
func (s KeySet) Empty() bool {
	return s == 0
}
