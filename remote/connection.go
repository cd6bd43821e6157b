package remote

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
)

const (
	// Scheme is the URL scheme connection links carry.
	Scheme = "waymark"

	// DefaultPort is the relay port assumed when a link names none.
	DefaultPort = 6837
)

var validate = validator.New()

// A ConnectionInfo carries everything needed to join a control session on
// a relay server. Users share it out-of-band as a URL; see ParseURL.
type ConnectionInfo struct {
	Hostname string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
	Key      string `validate:"required"`
	Role     Role   `validate:"required"`
	Insecure bool
}

// Valid checks ci describes a dialable session before any dialing happens.
func (ci ConnectionInfo) Valid() error {
	if err := validate.Struct(ci); err != nil {
		return fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	return ci.Role.Valid()
}

// URL renders ci as a shareable link:
//
//	waymark://relay.example.com:6837?key=channel&mode=leader
//
// The channel key rides in the link on purpose; the link IS the invitation.
func (ci ConnectionInfo) URL() string {
	q := url.Values{}
	q.Set("key", ci.Key)
	q.Set("mode", ci.Role.String())
	if ci.Insecure {
		q.Set("insecure", "true")
	}

	u := url.URL{
		Scheme:   Scheme,
		Host:     net.JoinHostPort(ci.Hostname, strconv.Itoa(ci.Port)),
		RawQuery: q.Encode(),
	}

	return u.String()
}

// ParseURL reverses ConnectionInfo.URL, validating the result.
func ParseURL(raw string) (ConnectionInfo, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ConnectionInfo{}, fmt.Errorf("%w: %s", ErrBadURL, err)
	}

	if u.Scheme != Scheme {
		return ConnectionInfo{}, fmt.Errorf("%w: scheme %q is not %q", ErrBadURL, u.Scheme, Scheme)
	}

	port := DefaultPort
	if p := u.Port(); p != "" {
		if port, err = strconv.Atoi(p); err != nil {
			return ConnectionInfo{}, fmt.Errorf("%w: port %q", ErrBadURL, p)
		}
	}

	q := u.Query()
	ci := ConnectionInfo{
		Hostname: u.Hostname(),
		Port:     port,
		Key:      q.Get("key"),
		Role:     Role(q.Get("mode")),
		Insecure: q.Get("insecure") == "true",
	}

	if err := ci.Valid(); err != nil {
		return ConnectionInfo{}, err
	}

	return ci, nil
}

// WSURL renders the websocket endpoint ci dials. Insecure drops TLS for
// relays on trusted local networks.
func (ci ConnectionInfo) WSURL() string {
	scheme := "wss"
	if ci.Insecure {
		scheme = "ws"
	}

	u := url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(ci.Hostname, strconv.Itoa(ci.Port)),
		Path:   "/channel",
	}

	return u.String()
}

// DialContext opens the websocket to ci's relay, honoring ctx for
// cancellation and deadline. The caller owns closing the returned
// connection.
func (ci ConnectionInfo) DialContext(ctx context.Context) (*websocket.Conn, error) {
	if err := ci.Valid(); err != nil {
		return nil, err
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, ci.WSURL(), nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("dialing %s: %s: %w", ci.WSURL(), resp.Status, err)
		}

		return nil, fmt.Errorf("dialing %s: %w", ci.WSURL(), err)
	}

	return conn, nil
}
