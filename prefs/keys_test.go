package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark/prefs"
)

func TestKeyParts(t *testing.T) {
	for _, tc := range []struct {
		name    string
		key     prefs.Key
		section string
		option  string
	}{
		{"Valid", "braille.tetherTo", "braille", "tetherTo"},
		{"Valid-Long-Section", "documentFormatting.reportTableHeaders", "documentFormatting", "reportTableHeaders"},
		{"No-Dot", "tetherTo", "tetherTo", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Assert
			require.Equal(t, tc.section, tc.key.Section())
			require.Equal(t, tc.option, tc.key.Name())
			require.Equal(t, string(tc.key), tc.key.String())
		})
	}
}
