package prefs_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark/prefs"
)

func TestModelExists(t *testing.T) {
	// Arrange
	var m prefs.Model

	// Assert
	require.False(t, m.Exists())

	// Arrange
	m.CreatedAt = time.Now()

	// Assert
	require.True(t, m.Exists())
}

func TestDeletedTimeIsDeleted(t *testing.T) {
	// Arrange
	var dt prefs.DeletedTime

	// Assert
	require.False(t, dt.IsDeleted())

	// Arrange
	dt.NullTime = sql.NullTime{Time: time.Now(), Valid: true}

	// Assert
	require.True(t, dt.IsDeleted())
}

func TestProfileValues(t *testing.T) {
	// Arrange
	p := prefs.Profile{
		Name: "default",
		Settings: []prefs.Setting{
			{Key: "braille.tetherTo", Value: "review"},
			{Key: "keyboard.modifierKeys", Value: "6"},
		},
	}

	// Act
	vs := p.Values()

	// Assert
	require.Equal(t, prefs.Values{
		"braille.tetherTo":      "review",
		"keyboard.modifierKeys": "6",
	}, vs)

	// Act + Assert
	require.Empty(t, prefs.Profile{}.Values())
}
