package settings

import "github.com/xy-planning-network/waymark"

// A ModifierKey is one keyboard key usable as the screen reader's modifier.
// The modifier-keys option stores a union of these bits, one per enabled
// key, so validate stored values with waymark.LookupBits, not Lookup.
type ModifierKey int

const (
	ModifierKeyCapsLock       ModifierKey = 1
	ModifierKeyNumpadInsert   ModifierKey = 2
	ModifierKeyExtendedInsert ModifierKey = 4
)

// Has reports whether m includes k among its enabled keys.
func (m ModifierKey) Has(k ModifierKey) bool { return waymark.HasFlag(m, k) }

// DisplayLabel resolves the key name describing m to end users.
func (m ModifierKey) DisplayLabel() string { return ModifierKeyFamily.DisplayLabel(m) }

// keyLabels names keyboard keys the way the platform layer does; the
// platform layer, not the message catalog, owns localizing them.
var keyLabels = map[string]string{
	"capslock":     "caps lock",
	"insert":       "insert",
	"numpadinsert": "numpad insert",
}

var ModifierKeyFamily = waymark.MustFlags("ModifierKey", []waymark.Def[ModifierKey]{
	{Value: ModifierKeyCapsLock, Label: waymark.Label{Key: "capslock"}},
	{Value: ModifierKeyNumpadInsert, Label: waymark.Label{Key: "numpadinsert"}},
	{Value: ModifierKeyExtendedInsert, Label: waymark.Label{Key: "insert"}},
}, waymark.WithTranslateFunc(func(key, _ string) string {
	if label, ok := keyLabels[key]; ok {
		return label
	}

	return key
}))

// A TypingEcho is when typed input echoes back: never, in editable
// controls only, or always. Both the character echo and the word echo
// options store one of these values.
type TypingEcho int

const (
	TypingEchoOff          TypingEcho = 0
	TypingEchoEditControls TypingEcho = 1
	TypingEchoAlways       TypingEcho = 2
)

// DisplayLabel resolves the localized description of t.
func (t TypingEcho) DisplayLabel() string { return TypingEchoFamily.DisplayLabel(t) }

// Valid reports whether t is a declared member.
func (t TypingEcho) Valid() error {
	_, err := TypingEchoFamily.Lookup(t)
	return err
}

var TypingEchoFamily = waymark.MustEnum("TypingEcho", []waymark.Def[TypingEcho]{
	{Value: TypingEchoOff, Label: waymark.Label{Key: "Off"}},
	{Value: TypingEchoEditControls, Label: waymark.Label{Key: "Only in edit controls"}},
	{Value: TypingEchoAlways, Label: waymark.Label{Key: "Always"}},
})
