package prefs

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/waymark"
)

// A Key locates one option's stored value: the configuration section and
// the option name joined by a dot, e.g. "braille.tetherTo".
//
// The canonical Keys live on the package's Option catalog; reach them
// through [Option.Path].
type Key string

// String stringifies the Key.
//
// String implements fmt.Stringer.
func (k Key) String() string { return string(k) }

// Section returns the configuration section the Key belongs to.
func (k Key) Section() string {
	section, _, _ := strings.Cut(string(k), ".")
	return section
}

// Name returns the option name within the Key's section.
func (k Key) Name() string {
	_, name, _ := strings.Cut(string(k), ".")
	return name
}

func (k Key) valid() error {
	section, name, found := strings.Cut(string(k), ".")
	if !found || section == "" || name == "" {
		return fmt.Errorf("%w: key %q must take the form section.name", waymark.ErrBadConfig, string(k))
	}

	return nil
}
