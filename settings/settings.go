package settings

import "github.com/xy-planning-network/waymark"

// All returns every family the catalog declares, in a stable order.
// Registry sweeps range it to verify, count, or render the whole catalog.
func All() []waymark.Enumerable {
	return []waymark.Enumerable{
		AddonsAutomaticUpdateFamily,
		BrailleModeFamily,
		ModifierKeyFamily,
		OutputModeFamily,
		ParagraphStartMarkerFamily,
		RemoteConnectionModeFamily,
		RemoteServerTypeFamily,
		ReportCellBordersFamily,
		ReportLineIndentationFamily,
		ReportNotSupportedLanguageFamily,
		ReportTableHeadersFamily,
		ShowMessagesFamily,
		TetherToFamily,
		TypingEchoFamily,
	}
}

// Verify re-checks every family's declaration invariants plus the
// cross-catalog mappings. Declaration already panics on a defect; boot
// code calls Verify anyway so the whole catalog is proven sound in one
// place before settings load.
func Verify() error {
	for _, f := range All() {
		if err := f.Verify(); err != nil {
			return err
		}
	}

	return waymark.VerifyMapping(RemoteConnectionModeFamily, remoteRoles)
}
