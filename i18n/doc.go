/*
Package i18n resolves label keys into display-language text.

# Overview

The rest of the module asks for text through [Translator]: a key naming the
source-language string and an optional context disambiguating keys whose
source text collides but translates differently. [Catalog] implements
Translator over message tables registered per locale, negotiating the best
supported language for a requested one. [Passthrough] implements it by
returning keys untranslated, which is also what Catalog does for any key its
tables miss, so a caller always gets renderable text back.

Bind a Catalog process-wide once locale detection has run:

	cat, err := i18n.NewCatalog(i18n.Config{Locale: "de"}, i18n.WithMessages("de", msgs...))
	if err != nil {
		// ...
	}
	waymark.SetTranslator(cat.Translate)
*/
package i18n
