package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// msgctxtSep joins a disambiguation context to a key the way gettext
// composes msgctxt with msgid, so translation tables exported from
// gettext tooling drop in unchanged.
const msgctxtSep = "\x04"

// A Message is one translated string in a locale's table.
type Message struct {
	// Key is the source-language text being translated.
	Key string

	// Context disambiguates this Message from others sharing its Key.
	// Leave empty when the Key is unambiguous.
	Context string

	// Text is the translation shown to end users.
	Text string
}

// Config configures the locale negotiation a Catalog performs.
type Config struct {
	// Locale is the BCP 47 tag of the language the end user asked for.
	// When empty or unsupported, the Catalog matches Fallback instead.
	Locale string

	// Fallback is the BCP 47 tag used when Locale cannot be served.
	// When empty, it is "en".
	Fallback string
}

// A CatalogOpt is a functional option configuring a Catalog when
// constructing a new one.
type CatalogOpt func(*Catalog) error

// A Catalog resolves label keys against per-locale message tables,
// serving the registered language closest to the one configured.
//
// A Catalog is immutable once constructed; any number of goroutines may
// call Translate concurrently.
type Catalog struct {
	builder *catalog.Builder
	printer *message.Printer
	tag     language.Tag
}

// NewCatalog constructs a Catalog from cfg and the messages registered by
// opts, then matches cfg.Locale against the registered locales.
func NewCatalog(cfg Config, opts ...CatalogOpt) (*Catalog, error) {
	fallback := language.English
	if cfg.Fallback != "" {
		var err error
		if fallback, err = language.Parse(cfg.Fallback); err != nil {
			return nil, fmt.Errorf("%w: fallback %q: %s", ErrBadLocale, cfg.Fallback, err)
		}
	}

	c := &Catalog{builder: catalog.NewBuilder(catalog.Fallback(fallback))}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	want := fallback
	if cfg.Locale != "" {
		parsed, err := language.Parse(cfg.Locale)
		if err == nil {
			want = parsed
		}
	}

	// The fallback leads the supported list so an unserved locale matches
	// it rather than whichever table registered first.
	supported := append([]language.Tag{fallback}, c.builder.Languages()...)
	tag, _, _ := language.NewMatcher(supported).Match(want)
	c.tag = tag
	c.printer = message.NewPrinter(tag, message.Catalog(c.builder))

	return c, nil
}

// WithMessages registers msgs as locale's table.
//
// Pass one WithMessages per supported locale; the first registered locale
// doubles as the match default when the configured one is unsupported.
func WithMessages(locale string, msgs ...Message) CatalogOpt {
	return func(c *Catalog) error {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("%w: %q: %s", ErrBadLocale, locale, err)
		}

		for _, m := range msgs {
			if m.Key == "" {
				return fmt.Errorf("%w: %s registers a message with no key", ErrBadMessage, locale)
			}

			key := m.Key
			if m.Context != "" {
				key = m.Context + msgctxtSep + m.Key
			}

			if err := c.builder.SetString(tag, key, m.Text); err != nil {
				return fmt.Errorf("%w: %s %q: %s", ErrBadMessage, locale, m.Key, err)
			}
		}

		return nil
	}
}

// Translate resolves key in the Catalog's matched language.
//
// A context-qualified entry wins over a bare one; a key missing from both
// tables returns unchanged, so callers always render something legible.
// Translate implements [Translator].
func (c *Catalog) Translate(key, context string) string {
	if context != "" {
		composed := context + msgctxtSep + key
		if out := c.printer.Sprintf(composed); out != composed {
			return out
		}
	}

	return c.printer.Sprintf(key)
}

// Tag returns the language the Catalog matched at construction.
func (c *Catalog) Tag() language.Tag { return c.tag }
