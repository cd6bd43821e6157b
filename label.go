package waymark

import "sync/atomic"

// A TranslateFunc resolves the display text for a label key.
// A non-empty context disambiguates keys whose source text collides
// across families but translates differently.
type TranslateFunc func(key, context string) string

// A Label is the untranslated description of a member.
//
// Key is the source-language text shown when no translator is bound.
// Resolution into the display language is deferred until the label is
// asked for, so families declare at package initialization without any
// localization machinery installed.
type Label struct {
	Key     string
	Context string
}

var translateFn atomic.Value // TranslateFunc

// SetTranslator installs fn as the process-wide label resolver.
// Passing nil restores the default, which returns keys untranslated.
//
// Bind the translator once localization is ready, before settings UI
// renders; families declared earlier pick it up on their next
// DisplayLabel call.
func SetTranslator(fn TranslateFunc) {
	if fn == nil {
		fn = passthrough
	}
	translateFn.Store(fn)
}

func translator() TranslateFunc {
	if fn, ok := translateFn.Load().(TranslateFunc); ok {
		return fn
	}
	return passthrough
}

func passthrough(key, _ string) string { return key }
