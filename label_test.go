package waymark_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
)

func TestSetTranslator(t *testing.T) {
	// Arrange
	f := waymark.MustEnum("TypingEcho", newEchoDefs())
	t.Cleanup(func() { waymark.SetTranslator(nil) })

	// Assert: unset, labels pass through untranslated.
	require.Equal(t, "Always", f.DisplayLabel(echoAlways))

	// Act
	waymark.SetTranslator(func(key, context string) string {
		return "tr:" + key
	})

	// Assert
	require.Equal(t, "tr:Always", f.DisplayLabel(echoAlways))

	// Act
	waymark.SetTranslator(nil)

	// Assert
	require.Equal(t, "Always", f.DisplayLabel(echoAlways))
}

func TestSetTranslatorContext(t *testing.T) {
	// Arrange
	t.Cleanup(func() { waymark.SetTranslator(nil) })

	defs := []waymark.Def[echoMode]{
		{Value: echoOff, Label: waymark.Label{Key: "Off", Context: "echo setting"}},
		{Value: echoAlways, Label: waymark.Label{Key: "Always"}},
	}
	f := waymark.MustEnum("TypingEcho", defs)

	waymark.SetTranslator(func(key, context string) string {
		if context == "" {
			return key
		}
		return fmt.Sprintf("%s|%s", context, key)
	})

	// Act + Assert: the context rides along only when declared.
	require.Equal(t, "echo setting|Off", f.DisplayLabel(echoOff))
	require.Equal(t, "Always", f.DisplayLabel(echoAlways))
}

func TestWithTranslateFunc(t *testing.T) {
	// Arrange
	t.Cleanup(func() { waymark.SetTranslator(nil) })

	waymark.SetTranslator(func(key, context string) string {
		return "global:" + key
	})

	keyNames := map[string]string{"capslock": "Caps lock"}
	f := waymark.MustEnum("ModifierKey", []waymark.Def[echoMode]{
		{Value: echoOff, Label: waymark.Label{Key: "capslock"}},
	}, waymark.WithTranslateFunc(func(key, context string) string {
		return keyNames[key]
	}))

	// Act + Assert: the family override wins over the process-wide binding.
	require.Equal(t, "Caps lock", f.DisplayLabel(echoOff))
}
