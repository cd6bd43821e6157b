package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark/prefs"
	"github.com/xy-planning-network/waymark/settings"
)

func TestCatalogDefaults(t *testing.T) {
	// Arrange
	vs := make(prefs.Values)

	// Act + Assert
	require.Equal(t, settings.ModifierKeyNumpadInsert|settings.ModifierKeyExtendedInsert, prefs.KeyboardModifierKeys.Resolve(vs, nil))
	require.Equal(t, settings.TypingEchoEditControls, prefs.KeyboardTypingEchoCharacters.Resolve(vs, nil))
	require.Equal(t, settings.TypingEchoOff, prefs.KeyboardTypingEchoWords.Resolve(vs, nil))
	require.Equal(t, settings.ShowMessagesUseTimeout, prefs.BrailleShowMessages.Resolve(vs, nil))
	require.Equal(t, settings.TetherToAuto, prefs.BrailleTetherTo.Resolve(vs, nil))
	require.Equal(t, settings.BrailleModeFollowCursors, prefs.BrailleMode.Resolve(vs, nil))
	require.Equal(t, settings.ParagraphStartMarkerNone, prefs.BrailleParagraphStartMarker.Resolve(vs, nil))
	require.Equal(t, settings.ReportLineIndentationOff, prefs.DocumentReportLineIndentation.Resolve(vs, nil))
	require.Equal(t, settings.ReportTableHeadersRowsAndColumns, prefs.DocumentReportTableHeaders.Resolve(vs, nil))
	require.Equal(t, settings.ReportCellBordersOff, prefs.DocumentReportCellBorders.Resolve(vs, nil))
	require.Equal(t, settings.OutputModeOff, prefs.DocumentFontAttributeReporting.Resolve(vs, nil))
	require.Equal(t, settings.ReportNotSupportedLanguageSpeech, prefs.SpeechReportNotSupportedLanguage.Resolve(vs, nil))
	require.Equal(t, settings.AddonsAutomaticUpdateNotify, prefs.AddonsAutomaticUpdates.Resolve(vs, nil))
	require.Equal(t, settings.RemoteConnectionModeFollower, prefs.RemoteConnectionMode.Resolve(vs, nil))
	require.Equal(t, settings.RemoteServerTypeExisting, prefs.RemoteServerType.Resolve(vs, nil))
}

func TestCatalogPaths(t *testing.T) {
	// Arrange
	paths := []prefs.Key{
		prefs.KeyboardModifierKeys.Path(),
		prefs.KeyboardTypingEchoCharacters.Path(),
		prefs.KeyboardTypingEchoWords.Path(),
		prefs.BrailleShowMessages.Path(),
		prefs.BrailleTetherTo.Path(),
		prefs.BrailleMode.Path(),
		prefs.BrailleParagraphStartMarker.Path(),
		prefs.DocumentReportLineIndentation.Path(),
		prefs.DocumentReportTableHeaders.Path(),
		prefs.DocumentReportCellBorders.Path(),
		prefs.DocumentFontAttributeReporting.Path(),
		prefs.SpeechReportNotSupportedLanguage.Path(),
		prefs.AddonsAutomaticUpdates.Path(),
		prefs.RemoteConnectionMode.Path(),
		prefs.RemoteServerType.Path(),
	}

	// Act + Assert
	seen := make(map[prefs.Key]bool, len(paths))
	for _, p := range paths {
		require.NotEmpty(t, p.Section(), "path %q needs a section", p)
		require.NotEmpty(t, p.Name(), "path %q needs a name", p)
		require.False(t, seen[p], "path %q declared twice", p)
		seen[p] = true
	}
}

func TestCatalogWholeValueFontAttributes(t *testing.T) {
	// the font attribute option stores declared members only,
	// the composite included; arbitrary unions fall back
	for _, tc := range []struct {
		name     string
		raw      string
		expected settings.OutputMode
	}{
		{"Off", "0", settings.OutputModeOff},
		{"Speech", "1", settings.OutputModeSpeech},
		{"Braille", "2", settings.OutputModeBraille},
		{"Both", "3", settings.OutputModeSpeechAndBraille},
		{"Undeclared", "4", settings.OutputModeOff},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			vs := prefs.Values{prefs.DocumentFontAttributeReporting.Path(): tc.raw}

			// Act
			m := prefs.DocumentFontAttributeReporting.Resolve(vs, nil)

			// Assert
			require.Equal(t, tc.expected, m)
		})
	}
}
