package settings_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/settings"
)

func TestTetherTo(t *testing.T) {
	// Assert: raw strings from storage round-trip through lookup.
	for _, raw := range []string{"auto", "focus", "review"} {
		m, err := settings.TetherToFamily.Lookup(settings.TetherTo(raw))
		require.Nil(t, err)
		require.Equal(t, raw, string(m))
	}

	require.Equal(t, "to focus", settings.TetherToFocus.DisplayLabel())
	require.ErrorIs(t, settings.TetherTo("mouse").Valid(), waymark.ErrUnknownMember)
}

func TestShowMessages(t *testing.T) {
	require.Equal(t, "Show indefinitely", settings.ShowMessagesShowIndefinitely.DisplayLabel())
	require.Nil(t, settings.ShowMessagesDisabled.Valid())
	require.ErrorIs(t, settings.ShowMessages(-1).Valid(), waymark.ErrUnknownMember)
}

func TestBrailleMode(t *testing.T) {
	require.Equal(t, "display speech output", settings.BrailleModeSpeechOutput.DisplayLabel())
	require.ErrorIs(t, settings.BrailleMode("both").Valid(), waymark.ErrUnknownMember)
}

func TestParagraphStartMarker(t *testing.T) {
	// Assert: the empty string is a real member, not a miss.
	m, err := settings.ParagraphStartMarkerFamily.Lookup(settings.ParagraphStartMarkerNone)
	require.Nil(t, err)
	require.Equal(t, settings.ParagraphStartMarkerNone, m)
	require.Equal(t, "No paragraph start marker (default)", settings.ParagraphStartMarkerNone.DisplayLabel())

	// Assert: declared members carry the disambiguation context.
	label, ok := settings.ParagraphStartMarkerFamily.Label(settings.ParagraphStartMarkerPilcrow)
	require.True(t, ok)
	require.Equal(t, "paragraphMarker", label.Context)
}
