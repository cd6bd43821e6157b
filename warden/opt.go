package warden

import (
	"context"
	"fmt"

	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/i18n"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/prefs"
)

// A WardenOption configures a *Warden either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some WardenOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithCacher is an example of the first.
// An unexported field on the passed in *Warden is updated with the enclosed value.
//
// WithTranslations is an example of the second.
// The catalog is stashed immediately
// but binding it as the process-wide label resolver waits
// until the closure it returns is called,
// after every other option has had its say.
type WardenOption func(w *Warden) (OptFollowup, error)
type OptFollowup func() error

// setupLog carries the first logger an option installs so later options
// can narrate what they configure.
var setupLog logger.Logger

// WithCacher exposes the provided prefs.Cacher to the Warden.
func WithCacher(cache prefs.Cacher) WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		w.cache = cache
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using cacher %T", cache), nil)
		}

		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the Warden.
func WithContext(ctx context.Context) WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		w.ctx = ctx
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using context %T", ctx), nil)
		}

		return nil, nil
	}
}

// WithDB exposes the provided *prefs.DBStore to the Warden.
//
// WithDB assumes a connection has already been established.
func WithDB(db *prefs.DBStore) WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		w.db = db
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using db %T", db), nil)
		}

		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
// WithEnv then exposes that Environment on the Warden.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) WardenOption {
	e := waymark.Environment(envVar)
	err := e.Valid()
	if err == nil {
		return func(w *Warden) (OptFollowup, error) {
			w.env = e
			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using env %s", e), nil)
			}

			return nil, nil
		}
	}

	return func(w *Warden) (OptFollowup, error) {
		w.env = waymark.EnvVarOrEnv(envVar, waymark.Development)
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using env %s", w.env), nil)
		}

		return nil, nil
	}
}

// WithFileStore exposes the provided prefs.FileStore to the Warden.
func WithFileStore(store prefs.FileStore) WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		w.file = store
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using config file %s", store.Path()), nil)
		}

		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the Warden.
func WithLogger(l logger.Logger) WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		w.l = l
		if setupLog == nil {
			setupLog = l
		}

		setupLog.Debug(fmt.Sprintf("using logger %T", l), nil)

		return nil, nil
	}
}

// WithRegistry exposes the provided catalog of families to the Warden.
// New verifies every family in it before the Warden is handed back.
func WithRegistry(registry []waymark.Enumerable) WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		w.registry = registry
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using registry of %d families", len(registry)), nil)
		}

		return nil, nil
	}
}

// WithSessionStore exposes the prefs.SessionStorer to the Warden.
func WithSessionStore(store prefs.SessionStorer) WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		w.sessions = store
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using session store %T", store), nil)
		}

		return nil, nil
	}
}

// WithTranslations constructs a followup option that, when called,
// binds the provided *i18n.Catalog as the process-wide label resolver.
func WithTranslations(cat *i18n.Catalog) WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		w.translations = cat

		return func() error {
			if w.translations == nil {
				return nil
			}

			waymark.SetTranslator(w.translations.Translate)
			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using translations for %s", w.translations.Tag()), nil)
			}

			return nil
		}, nil
	}
}
