package prefs

import "github.com/xy-planning-network/waymark/settings"

// The canonical options, one per stored configuration value the
// application reads. Each pairs its Key with the declaring family from
// [settings] and the default a fresh installation starts from.
var (
	// KeyboardModifierKeys holds the union of keys acting as the screen
	// reader's modifier. Both insert keys start enabled.
	KeyboardModifierKeys = MustBitsetOption(settings.ModifierKeyFamily,
		"keyboard.modifierKeys", settings.ModifierKeyNumpadInsert|settings.ModifierKeyExtendedInsert)

	// KeyboardTypingEchoCharacters holds when typed characters echo back.
	KeyboardTypingEchoCharacters = MustOption(settings.TypingEchoFamily,
		"keyboard.typingEchoCharacters", settings.TypingEchoEditControls)

	// KeyboardTypingEchoWords holds when completed words echo back.
	KeyboardTypingEchoWords = MustOption(settings.TypingEchoFamily,
		"keyboard.typingEchoWords", settings.TypingEchoOff)

	// BrailleShowMessages holds how long messages occupy the display.
	BrailleShowMessages = MustOption(settings.ShowMessagesFamily,
		"braille.showMessages", settings.ShowMessagesUseTimeout)

	// BrailleTetherTo holds which cursor the display follows.
	BrailleTetherTo = MustStringOption(settings.TetherToFamily,
		"braille.tetherTo", settings.TetherToAuto)

	// BrailleMode holds what drives the display, cursors or speech output.
	BrailleMode = MustStringOption(settings.BrailleModeFamily,
		"braille.mode", settings.BrailleModeFollowCursors)

	// BrailleParagraphStartMarker holds the text marking paragraph starts.
	BrailleParagraphStartMarker = MustStringOption(settings.ParagraphStartMarkerFamily,
		"braille.paragraphStartMarker", settings.ParagraphStartMarkerNone)

	// DocumentReportLineIndentation holds how line indentation reads back.
	DocumentReportLineIndentation = MustOption(settings.ReportLineIndentationFamily,
		"documentFormatting.reportLineIndentation", settings.ReportLineIndentationOff)

	// DocumentReportTableHeaders holds which table headers read back.
	DocumentReportTableHeaders = MustOption(settings.ReportTableHeadersFamily,
		"documentFormatting.reportTableHeaders", settings.ReportTableHeadersRowsAndColumns)

	// DocumentReportCellBorders holds how much cell border formatting reads back.
	DocumentReportCellBorders = MustOption(settings.ReportCellBordersFamily,
		"documentFormatting.reportCellBorders", settings.ReportCellBordersOff)

	// DocumentFontAttributeReporting holds the channels font attributes
	// report through. Stored values are declared members, the both
	// composite included, so this is a whole-value option.
	DocumentFontAttributeReporting = MustOption(settings.OutputModeFamily,
		"documentFormatting.fontAttributeReporting", settings.OutputModeOff)

	// SpeechReportNotSupportedLanguage holds how an unsupported document
	// language surfaces.
	SpeechReportNotSupportedLanguage = MustStringOption(settings.ReportNotSupportedLanguageFamily,
		"speech.reportNotSupportedLanguage", settings.ReportNotSupportedLanguageSpeech)

	// AddonsAutomaticUpdates holds what happens when add-on updates appear.
	AddonsAutomaticUpdates = MustStringOption(settings.AddonsAutomaticUpdateFamily,
		"addonStore.automaticUpdates", settings.AddonsAutomaticUpdateNotify)

	// RemoteConnectionMode holds which side of a remote session this
	// computer takes.
	RemoteConnectionMode = MustOption(settings.RemoteConnectionModeFamily,
		"remote.connectionMode", settings.RemoteConnectionModeFollower)

	// RemoteServerType holds whether sessions use an existing relay or
	// host one locally.
	RemoteServerType = MustBoolOption(settings.RemoteServerTypeFamily,
		"remote.serverType", settings.RemoteServerTypeExisting)
)
