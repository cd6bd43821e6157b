package prefs

import (
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/boj/redistore"
	gorilla "github.com/gorilla/sessions"
	"github.com/xy-planning-network/waymark"
)

const defaultMaxAge = 86400 // 1 day

// sessionValuesKey stashes a session's transient overrides.
const sessionValuesKey = "waymark-prefs-values"

// The SessionStorer defines methods for interacting with a Session for
// the given *http.Request.
type SessionStorer interface {
	GetSession(r *http.Request) (Session, error)
}

// A SessionStore wraps a gorilla.Store to manage constructing a new one
// and accessing the sessions contained in it.
//
// SessionStore implements SessionStorer.
type SessionStore struct {
	// The authentication key.
	ak []byte

	// The encryption key.
	ek []byte

	// The name this SessionStore's sessions are stored under.
	// Also used as the name of the cookie when WithCookie is used.
	sn string

	// The environment the SessionStore is operating within.
	env waymark.Environment

	// The number of seconds a session is valid.
	maxAge int

	// How the SessionStore actually implements storing sessions.
	store gorilla.Store
}

// A SessionConfig provides the required values for a SessionStore.
type SessionConfig struct {
	Env waymark.Environment

	// The name sessions are stored under.
	// Also used as the name of the cookie when WithCookie is used.
	SessionName string

	// Hex-encoded key
	AuthKey string

	// Hex-encoded key
	EncryptKey string
}

func validateSessionConfig(c SessionConfig) error {
	if err := c.Env.Valid(); err != nil {
		return err
	}

	if c.SessionName == "" {
		return fmt.Errorf("%w: SessionName cannot be %q", waymark.ErrBadConfig, c.SessionName)
	}

	return nil
}

// NewSessionStore initiates a data store for per-session preference
// overrides with the provided config.
// If no backing storage is provided through a functional option -
// like WithRedis - NewSessionStore stores sessions in cookies.
func NewSessionStore(cfg SessionConfig, opts ...SessionStoreOpt) (SessionStore, error) {
	if err := validateSessionConfig(cfg); err != nil {
		return SessionStore{}, err
	}

	var err error
	gob.Register(Values{})

	s := SessionStore{
		env:    cfg.Env,
		maxAge: defaultMaxAge,
		sn:     cfg.SessionName,
	}

	s.ak, err = hex.DecodeString(cfg.AuthKey)
	if err != nil {
		return SessionStore{}, fmt.Errorf("%w: authentication key is not valid: %s", waymark.ErrBadConfig, err)
	}

	s.ek, err = hex.DecodeString(cfg.EncryptKey)
	if err != nil {
		return SessionStore{}, fmt.Errorf("%w: encryption key is not valid: %s", waymark.ErrBadConfig, err)
	}

	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return SessionStore{}, fmt.Errorf("%w: %s", waymark.ErrBadConfig, err)
		}
	}

	if s.store == nil {
		if err := WithCookie()(&s); err != nil {
			return SessionStore{}, fmt.Errorf("%w: %s", waymark.ErrBadConfig, err)
		}
	}

	return s, nil
}

// GetSession retrieves the Session for the *http.Request,
// or creates a brand new one.
func (s SessionStore) GetSession(r *http.Request) (Session, error) {
	session, err := s.store.Get(r, s.sn)
	return Session{s: session}, err
}

// A SessionStoreOpt configures the provided *SessionStore,
// returning an error if unable to.
type SessionStoreOpt func(*SessionStore) error

// WithCookie configures the SessionStore to back session storage with cookies.
func WithCookie() SessionStoreOpt {
	var c *gorilla.CookieStore
	return func(s *SessionStore) error {
		if !s.env.IsTesting() {
			c = gorilla.NewCookieStore(s.ak, s.ek)
		} else {
			c = gorilla.NewCookieStore(s.ak)
		}

		c.Options.Secure = !(s.env.IsDevelopment() || s.env.IsTesting())
		c.Options.HttpOnly = true
		c.MaxAge(s.maxAge)
		s.store = c
		return nil
	}
}

// WithMaxAge sets the time-to-live of a session.
//
// Call before other options so this value is available.
//
// Otherwise, the SessionStore uses defaultMaxAge.
func WithMaxAge(secs int) SessionStoreOpt {
	return func(s *SessionStore) error {
		s.maxAge = secs
		return nil
	}
}

// WithRedis configures the SessionStore to back session storage with Redis.
//
// To authenticate to the Redis server, provide pass, otherwise its zero-value is acceptable.
func WithRedis(uri, pass string) SessionStoreOpt {
	var r *redistore.RediStore
	var err error
	return func(s *SessionStore) error {
		if pass == "" {
			r, err = redistore.NewRediStore(10, "tcp", uri, "", s.ak, s.ek)
		} else {
			r, err = redistore.NewRediStore(10, "tcp", uri, pass, s.ak, s.ek)
		}
		if err != nil {
			return fmt.Errorf("%w: failed initializing Redis: %s", waymark.ErrBadConfig, err)
		}
		r.Options.Secure = !(s.env.IsDevelopment() || s.env.IsTesting())
		r.Options.HttpOnly = true
		r.SetMaxAge(s.maxAge)
		s.store = r
		return nil
	}
}

// A Session carries one visitor's transient preference overrides,
// layered over their profile with Values.Merge without persisting to it.
type Session struct {
	s *gorilla.Session
}

// Overrides retrieves the Values stashed in the session.
func (s Session) Overrides() Values {
	v, ok := s.s.Values[sessionValuesKey].(Values)
	if !ok {
		return make(Values)
	}

	return v.Clone()
}

// SetOverride stores one key's transient value in the session.
func (s Session) SetOverride(w http.ResponseWriter, r *http.Request, key Key, val string) error {
	vs := s.Overrides()
	vs[key] = val
	s.s.Values[sessionValuesKey] = vs
	return s.Save(w, r)
}

// ClearOverrides drops all transient values from the session.
func (s Session) ClearOverrides(w http.ResponseWriter, r *http.Request) error {
	delete(s.s.Values, sessionValuesKey)
	return s.Save(w, r)
}

// Delete removes a session by making the MaxAge negative.
func (s Session) Delete(w http.ResponseWriter, r *http.Request) error {
	s.s.Options.MaxAge = -1
	return s.Save(w, r)
}

// Save wraps gorilla.Session.Save, saving the session in the request.
func (s Session) Save(w http.ResponseWriter, r *http.Request) error { return s.s.Save(r, w) }

// A SessionStub satisfies SessionStorer for environments that stub
// services out; cf. waymark.Environment.CanUseServiceStub.
type SessionStub struct {
	s *gorilla.Session
}

func NewSessionStub() *SessionStub {
	s := new(SessionStub)
	s.s = gorilla.NewSession(s, "stub")

	return s
}

func (s *SessionStub) GetSession(r *http.Request) (Session, error) {
	return Session{s.s}, nil
}

func (s SessionStub) Get(r *http.Request, name string) (*gorilla.Session, error)               { return s.s, nil }
func (s SessionStub) New(r *http.Request, name string) (*gorilla.Session, error)               { return s.s, nil }
func (s SessionStub) Save(r *http.Request, w http.ResponseWriter, sess *gorilla.Session) error { return nil }
