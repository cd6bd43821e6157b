package warden

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/i18n"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/prefs"
	"github.com/xy-planning-network/waymark/remote"
)

// A Warden manages and exposes all components of a waymark app to one another.
type Warden struct {
	cache        prefs.Cacher
	ctx          context.Context
	db           *prefs.DBStore
	env          waymark.Environment
	file         prefs.FileStore
	l            logger.Logger
	registry     []waymark.Enumerable
	sessions     prefs.SessionStorer
	translations *i18n.Catalog
}

// New constructs a Warden from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
//
// Before handing the Warden back, New verifies every family in the
// registry. A defective declaration fails construction; nothing should run
// against a catalog that cannot prove its own soundness.
func New(opts ...WardenOption) (*Warden, error) {
	w := new(Warden)
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *Warden under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Warden
	// until either (1) user supplied WardenOptions or (2) default WardenOptions
	// configure the *Warden first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(w)
		if err != nil {
			return w, fmt.Errorf("%w: %s", waymark.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", waymark.ErrBadConfig, err)
		}
	}

	for _, f := range w.registry {
		if err := f.Verify(); err != nil {
			w.l.Fatal(fmt.Sprintf("catalog failed verification: %s", err), &logger.LogContext{Error: err})
			return nil, err
		}
	}

	w.l.Debug(fmt.Sprintf("verified %d families", len(w.registry)), nil)

	return w, nil
}

func (w *Warden) EmitCacher() prefs.Cacher              { return w.cache }
func (w *Warden) EmitDB() *prefs.DBStore                { return w.db }
func (w *Warden) EmitEnv() waymark.Environment          { return w.env }
func (w *Warden) EmitFileStore() prefs.FileStore        { return w.file }
func (w *Warden) EmitLogger() logger.Logger             { return w.l }
func (w *Warden) EmitRegistry() []waymark.Enumerable    { return w.registry }
func (w *Warden) EmitSessionStore() prefs.SessionStorer { return w.sessions }
func (w *Warden) EmitTranslations() *i18n.Catalog       { return w.translations }

// Settings loads the stored configuration from the file store,
// layering any transient overrides from r's session on top.
//
// Pass a nil *http.Request when no session is in play;
// the stored configuration comes back unadorned.
func (w *Warden) Settings(r *http.Request) (prefs.Values, error) {
	vs, err := w.file.Load()
	if err != nil {
		return nil, err
	}

	if w.sessions == nil || r == nil {
		return vs, nil
	}

	session, err := w.sessions.GetSession(r)
	if err != nil {
		w.l.Warn("ignoring unreadable session", &logger.LogContext{Error: err})
		return vs, nil
	}

	return vs.Merge(session.Overrides()), nil
}

// ProfileSettings loads the named profile's stored values out of the
// database, consulting the cache first and filling it on a miss.
//
// A nil ctx falls back to the base context configured with WithContext.
func (w *Warden) ProfileSettings(ctx context.Context, name string) (prefs.Values, error) {
	ctx = w.ctxOrBase(ctx)
	if w.db == nil {
		return nil, fmt.Errorf("%w: no database configured; confer WithDB", waymark.ErrBadConfig)
	}

	if w.cache != nil {
		if vs, ok := w.cache.Get(ctx, name); ok {
			return vs, nil
		}
	}

	p, err := w.db.Profile(ctx, name)
	if err != nil {
		return nil, err
	}

	vs := p.Values()
	if w.cache != nil {
		w.cache.Set(ctx, name, vs)
	}

	return vs, nil
}

// ConnectRemote parses link as a connection URL and dials the relay it
// names. The caller owns closing the returned connection.
//
// A nil ctx falls back to the base context configured with WithContext.
func (w *Warden) ConnectRemote(ctx context.Context, link string) (*websocket.Conn, error) {
	ci, err := remote.ParseURL(link)
	if err != nil {
		return nil, err
	}

	w.l.Info(fmt.Sprintf("connecting to relay %s as %s", ci.Hostname, ci.Role), nil)

	return ci.DialContext(w.ctxOrBase(ctx))
}

func (w *Warden) ctxOrBase(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}

	return w.ctx
}
