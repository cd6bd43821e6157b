package settings

import "github.com/xy-planning-network/waymark"

// A ReportNotSupportedLanguage is what happens when text is in a language
// the active synthesizer cannot speak.
type ReportNotSupportedLanguage string

const (
	ReportNotSupportedLanguageSpeech ReportNotSupportedLanguage = "speech"
	ReportNotSupportedLanguageBeep   ReportNotSupportedLanguage = "beep"
	ReportNotSupportedLanguageOff    ReportNotSupportedLanguage = "off"
)

// DisplayLabel resolves the localized description of r.
func (r ReportNotSupportedLanguage) DisplayLabel() string {
	return ReportNotSupportedLanguageFamily.DisplayLabel(r)
}

// Valid reports whether r is a declared member.
func (r ReportNotSupportedLanguage) Valid() error {
	_, err := ReportNotSupportedLanguageFamily.Lookup(r)
	return err
}

var ReportNotSupportedLanguageFamily = waymark.MustStringEnum("ReportNotSupportedLanguage", []waymark.Def[ReportNotSupportedLanguage]{
	{Value: ReportNotSupportedLanguageSpeech, Label: waymark.Label{Key: "Speech", Context: "reportLanguage"}},
	{Value: ReportNotSupportedLanguageBeep, Label: waymark.Label{Key: "Beep", Context: "reportLanguage"}},
	{Value: ReportNotSupportedLanguageOff, Label: waymark.Label{Key: "Off", Context: "reportLanguage"}},
})
