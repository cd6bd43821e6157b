package i18n

// The Translator interface resolves the display text for a label key.
// A non-empty context disambiguates keys whose source text collides
// across settings but translates differently.
type Translator interface {
	Translate(key, context string) string
}

// Passthrough is the Translator that returns keys untranslated,
// for tests and for running before any locale is picked.
type Passthrough struct{}

// Translate returns key as-is.
func (Passthrough) Translate(key, _ string) string { return key }
