package prefs_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/prefs"
)

type echoMode int

const (
	echoOff    echoMode = 0
	echoEdits  echoMode = 1
	echoAlways echoMode = 2
)

type modKey int

const (
	modCapsLock modKey = 1
	modNumpad   modKey = 2
	modExtended modKey = 4
)

func newEchoFamily(t *testing.T) *waymark.Family[echoMode] {
	t.Helper()
	return waymark.MustEnum("TypingEcho", []waymark.Def[echoMode]{
		{Value: echoOff, Label: waymark.Label{Key: "Off"}},
		{Value: echoEdits, Label: waymark.Label{Key: "Only in edit controls"}},
		{Value: echoAlways, Label: waymark.Label{Key: "Always"}},
	})
}

func newModKeyFamily(t *testing.T) *waymark.Family[modKey] {
	t.Helper()
	return waymark.MustFlags("ModifierKey", []waymark.Def[modKey]{
		{Value: modCapsLock, Label: waymark.Label{Key: "Caps lock"}},
		{Value: modNumpad, Label: waymark.Label{Key: "Numpad Insert"}},
		{Value: modExtended, Label: waymark.Label{Key: "Insert"}},
	})
}

func newTestLogger(b *bytes.Buffer) logger.Logger {
	color.NoColor = true
	return logger.NewLogger(logger.WithLogger(log.New(b, "", 0)))
}

func TestNewOption(t *testing.T) {
	// Arrange
	f := newEchoFamily(t)

	for _, tc := range []struct {
		name     string
		family   *waymark.Family[echoMode]
		path     prefs.Key
		def      echoMode
		expected error
	}{
		{"Valid", f, "keyboard.typingEchoCharacters", echoEdits, nil},
		{"No-Family", nil, "keyboard.typingEchoCharacters", echoEdits, waymark.ErrBadConfig},
		{"No-Section", f, "typingEchoCharacters", echoEdits, waymark.ErrBadConfig},
		{"No-Name", f, "keyboard.", echoEdits, waymark.ErrBadConfig},
		{"Undeclared-Default", f, "keyboard.typingEchoCharacters", 99, waymark.ErrBadConfig},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			o, err := prefs.NewOption(tc.family, tc.path, tc.def)

			// Assert
			if tc.expected != nil {
				require.ErrorIs(t, err, tc.expected)
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.family, o.Family())
			require.Equal(t, tc.path, o.Path())
			require.Equal(t, tc.def, o.Default())
		})
	}
}

func TestNewBitsetOption(t *testing.T) {
	// Arrange
	f := newModKeyFamily(t)

	// Act
	o, err := prefs.NewBitsetOption(f, "keyboard.modifierKeys", modNumpad|modExtended)

	// Assert
	require.Nil(t, err)
	require.Equal(t, modNumpad|modExtended, o.Default())

	// Act
	_, err = prefs.NewBitsetOption(f, "keyboard.modifierKeys", modKey(8))

	// Assert
	require.ErrorIs(t, err, waymark.ErrBadConfig)
}

func TestMustOption(t *testing.T) {
	// Arrange
	f := newEchoFamily(t)

	// Assert
	require.NotPanics(t, func() { prefs.MustOption(f, "keyboard.typingEchoWords", echoOff) })
	require.Panics(t, func() { prefs.MustOption(f, "typingEchoWords", echoOff) })
	require.Panics(t, func() { prefs.MustOption[echoMode](nil, "keyboard.typingEchoWords", echoOff) })
}

func TestOptionDecode(t *testing.T) {
	// Arrange
	o := prefs.MustOption(newEchoFamily(t), "keyboard.typingEchoCharacters", echoEdits)

	for _, tc := range []struct {
		name     string
		raw      string
		member   echoMode
		expected error
	}{
		{"Valid", "2", echoAlways, nil},
		{"Valid-Zero", "0", echoOff, nil},
		{"Garbage", "alwayss", 0, waymark.ErrUnknownMember},
		{"Undeclared", "99", 0, waymark.ErrUnknownMember},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			m, err := o.Decode(tc.raw)

			// Assert
			if tc.expected != nil {
				require.ErrorIs(t, err, tc.expected)
				require.Contains(t, err.Error(), "TypingEcho")
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.member, m)
		})
	}
}

func TestOptionEncode(t *testing.T) {
	// Arrange
	o := prefs.MustOption(newEchoFamily(t), "keyboard.typingEchoCharacters", echoEdits)

	// Act
	raw := o.Encode(echoAlways)
	m, err := o.Decode(raw)

	// Assert
	require.Equal(t, "2", raw)
	require.Nil(t, err)
	require.Equal(t, echoAlways, m)
}

func TestOptionResolve(t *testing.T) {
	// Arrange
	o := prefs.MustOption(newEchoFamily(t), "keyboard.typingEchoCharacters", echoEdits)

	t.Run("Missing-Is-Default", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		t.Setenv("SENTRY_DSN", "")
		l := newTestLogger(b)

		// Act
		m := o.Resolve(make(prefs.Values), l)

		// Assert
		require.Equal(t, echoEdits, m)
		require.Zero(t, b.Len())
	})

	t.Run("Stored-Wins", func(t *testing.T) {
		// Arrange
		vs := prefs.Values{"keyboard.typingEchoCharacters": "2"}

		// Act
		m := o.Resolve(vs, nil)

		// Assert
		require.Equal(t, echoAlways, m)
	})

	t.Run("Corrupt-Falls-Back", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		t.Setenv("SENTRY_DSN", "")
		l := newTestLogger(b)
		vs := prefs.Values{"keyboard.typingEchoCharacters": "alwayss"}

		// Act
		m := o.Resolve(vs, l)

		// Assert
		require.Equal(t, echoEdits, m)
		require.Contains(t, b.String(), "[WARN]")
		require.Contains(t, b.String(), "falling back to default")
		require.Contains(t, b.String(), "keyboard.typingEchoCharacters")
	})

	t.Run("Undeclared-Falls-Back", func(t *testing.T) {
		// Arrange
		vs := prefs.Values{"keyboard.typingEchoCharacters": "99"}

		// Act
		m := o.Resolve(vs, nil)

		// Assert
		require.Equal(t, echoEdits, m)
	})
}

func TestBitsetOptionResolve(t *testing.T) {
	// Arrange
	o := prefs.MustBitsetOption(newModKeyFamily(t), "keyboard.modifierKeys", modNumpad|modExtended)

	for _, tc := range []struct {
		name     string
		raw      string
		expected modKey
	}{
		{"Union", "6", modNumpad | modExtended},
		{"All", "7", modCapsLock | modNumpad | modExtended},
		{"Single", "1", modCapsLock},
		{"None", "0", 0},
		{"Undeclared-Bit", "8", modNumpad | modExtended},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			vs := prefs.Values{"keyboard.modifierKeys": tc.raw}

			// Act
			m := o.Resolve(vs, nil)

			// Assert
			require.Equal(t, tc.expected, m)
		})
	}
}

func TestOptionSet(t *testing.T) {
	// Arrange
	o := prefs.MustOption(newEchoFamily(t), "keyboard.typingEchoCharacters", echoEdits)
	vs := make(prefs.Values)

	// Act
	err := o.Set(vs, echoAlways)

	// Assert
	require.Nil(t, err)
	require.Equal(t, prefs.Values{"keyboard.typingEchoCharacters": "2"}, vs)

	// Act
	err = o.Set(vs, 99)

	// Assert
	require.ErrorIs(t, err, waymark.ErrUnknownMember)
	require.Equal(t, prefs.Values{"keyboard.typingEchoCharacters": "2"}, vs)
}

func TestOptionChoices(t *testing.T) {
	// Arrange
	o := prefs.MustOption(newEchoFamily(t), "keyboard.typingEchoCharacters", echoEdits)

	// Act
	cl := o.Choices()

	// Assert
	require.Len(t, cl, 3)
	require.Equal(t, echoOff, cl[0].Member)
	require.Equal(t, "Off", cl[0].Label)
	require.Equal(t, echoAlways, cl[2].Member)
}
