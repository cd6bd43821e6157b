package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xy-planning-network/waymark"
	"gopkg.in/yaml.v3"
)

// A FileStore reads and writes a YAML configuration file, the usual home
// of a local installation's settings.
type FileStore struct {
	path string
}

// NewFileStore constructs a FileStore over the file at path.
func NewFileStore(path string) (FileStore, error) {
	if path == "" {
		return FileStore{}, fmt.Errorf("%w: file store needs a path", waymark.ErrBadConfig)
	}

	return FileStore{path: path}, nil
}

// Path returns the file the FileStore reads and writes.
func (s FileStore) Path() string { return s.path }

// Load reads the stored configuration.
//
// A file that does not exist yet loads as empty Values, the state of a
// fresh installation before anything is saved.
func (s FileStore) Load() (Values, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(Values), nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed reading %s: %s", waymark.ErrUnexpected, s.path, err)
	}

	nested := make(map[string]map[string]string)
	if err := yaml.Unmarshal(b, &nested); err != nil {
		return nil, fmt.Errorf("%w: failed parsing %s: %s", waymark.ErrNotValid, s.path, err)
	}

	return fromSections(nested), nil
}

// Save writes vs to the file, replacing what was there.
func (s FileStore) Save(vs Values) error {
	b, err := yaml.Marshal(vs.sections())
	if err != nil {
		return fmt.Errorf("%w: failed encoding values: %s", waymark.ErrUnexpected, err)
	}

	if err := os.WriteFile(s.path, b, 0644); err != nil {
		return fmt.Errorf("%w: failed writing %s: %s", waymark.ErrUnexpected, s.path, err)
	}

	return nil
}
