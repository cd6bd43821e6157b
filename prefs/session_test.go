package prefs_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/prefs"
)

func TestNewSessionStore(t *testing.T) {
	// Arrange
	notHex := "😅"
	hex := "ABCD"

	// Act
	store, err := prefs.NewSessionStore(prefs.SessionConfig{
		Env:         waymark.Testing,
		SessionName: "waymark-session",
		AuthKey:     notHex,
	})

	// Assert
	require.ErrorIs(t, err, waymark.ErrBadConfig)
	require.Zero(t, store)

	// Act
	store, err = prefs.NewSessionStore(prefs.SessionConfig{
		Env:         waymark.Testing,
		SessionName: "waymark-session",
		AuthKey:     hex,
		EncryptKey:  notHex,
	})

	// Assert
	require.ErrorIs(t, err, waymark.ErrBadConfig)
	require.Zero(t, store)

	// Act
	store, err = prefs.NewSessionStore(prefs.SessionConfig{
		Env:         "NOT-AN-ENV",
		SessionName: "waymark-session",
		AuthKey:     hex,
		EncryptKey:  hex,
	})

	// Assert
	require.ErrorIs(t, err, waymark.ErrNotValid)

	// Act
	store, err = prefs.NewSessionStore(prefs.SessionConfig{
		Env:        waymark.Testing,
		AuthKey:    hex,
		EncryptKey: hex,
	})

	// Assert
	require.ErrorIs(t, err, waymark.ErrBadConfig)

	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	store, err = prefs.NewSessionStore(prefs.SessionConfig{
		Env:         waymark.Testing,
		SessionName: "waymark-session",
		AuthKey:     hex,
		EncryptKey:  hex,
	})

	// Assert
	require.Nil(t, err)
	require.NotZero(t, store)
	require.NotPanics(t, func() { store.GetSession(r) })
}

func TestSessionOverrides(t *testing.T) {
	// Arrange
	stub := prefs.NewSessionStub()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()

	session, err := stub.GetSession(r)
	require.Nil(t, err)

	// Act + Assert
	require.Empty(t, session.Overrides())

	// Act
	err = session.SetOverride(w, r, "braille.tetherTo", "review")

	// Assert
	require.Nil(t, err)
	require.Equal(t, prefs.Values{"braille.tetherTo": "review"}, session.Overrides())

	// Act
	err = session.SetOverride(w, r, "braille.mode", "speech")

	// Assert
	require.Nil(t, err)
	require.Len(t, session.Overrides(), 2)

	// overrides layer onto a profile without persisting to it
	profile := prefs.Values{"braille.tetherTo": "focus", "remote.serverType": "false"}
	merged := profile.Merge(session.Overrides())
	require.Equal(t, "review", string(merged["braille.tetherTo"]))
	require.Equal(t, "focus", string(profile["braille.tetherTo"]))

	// Act
	err = session.ClearOverrides(w, r)

	// Assert
	require.Nil(t, err)
	require.Empty(t, session.Overrides())
}

func TestSessionOverridesIsolated(t *testing.T) {
	// Arrange
	stub := prefs.NewSessionStub()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()

	session, err := stub.GetSession(r)
	require.Nil(t, err)
	require.Nil(t, session.SetOverride(w, r, "braille.tetherTo", "review"))

	// Act
	vs := session.Overrides()
	vs["braille.tetherTo"] = "scrubbed"

	// Assert
	require.Equal(t, prefs.Values{"braille.tetherTo": "review"}, session.Overrides())
}
