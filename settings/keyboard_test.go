package settings_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/settings"
)

func TestModifierKey(t *testing.T) {
	// Assert: key names come from the platform key-label table, not the
	// message catalog.
	require.Equal(t, "caps lock", settings.ModifierKeyCapsLock.DisplayLabel())
	require.Equal(t, "numpad insert", settings.ModifierKeyNumpadInsert.DisplayLabel())
	require.Equal(t, "insert", settings.ModifierKeyExtendedInsert.DisplayLabel())

	// Arrange: both insert keys enabled, caps lock not.
	stored := settings.ModifierKeyNumpadInsert | settings.ModifierKeyExtendedInsert

	// Assert
	require.True(t, stored.Has(settings.ModifierKeyNumpadInsert))
	require.True(t, stored.Has(settings.ModifierKeyExtendedInsert))
	require.False(t, stored.Has(settings.ModifierKeyCapsLock))
}

func TestModifierKeyStoredUnions(t *testing.T) {
	// Act: the option stores unions, validated bitwise.
	v, err := waymark.LookupBits(settings.ModifierKeyFamily, settings.ModifierKey(6))

	// Assert
	require.Nil(t, err)
	require.Equal(t, settings.ModifierKey(6), v)

	// Act: an undeclared bit is not a key.
	_, err = waymark.LookupBits(settings.ModifierKeyFamily, settings.ModifierKey(8))

	// Assert
	require.ErrorIs(t, err, waymark.ErrUnknownMember)

	// Act: whole-value lookup stays strict even for valid unions.
	_, err = settings.ModifierKeyFamily.Lookup(settings.ModifierKey(6))

	// Assert
	require.ErrorIs(t, err, waymark.ErrUnknownMember)
}

func TestTypingEcho(t *testing.T) {
	// Assert
	require.Equal(t, []settings.TypingEcho{
		settings.TypingEchoOff,
		settings.TypingEchoEditControls,
		settings.TypingEchoAlways,
	}, settings.TypingEchoFamily.Members())

	require.Equal(t, "Only in edit controls", settings.TypingEchoEditControls.DisplayLabel())
	require.Nil(t, settings.TypingEchoAlways.Valid())
	require.ErrorIs(t, settings.TypingEcho(5).Valid(), waymark.ErrUnknownMember)
}
