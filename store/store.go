// Package store loads and saves project files on a virtual filesystem.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/plus3/gdcore/internal/utils"
	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/serial"
)

var REALM = logging.DefineRealm("gdcore/store", "project files")

var log = logging.DefaultContext().Logger(REALM)

// Format is the encoding of a project file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnsupportedFormat = errors.New("unsupported project format")

// FormatOf derives the format of a project file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// ParseFormat checks a format name given by the user.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Encode writes el in format f.
func Encode(el *serial.Element, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return serial.ToJSON(el)
	case YAML:
		return serial.ToYAML(el)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Decode reads an element tree encoded in format f.
func Decode(data []byte, f Format) (*serial.Element, error) {
	switch f {
	case JSON:
		return serial.FromJSON(data)
	case YAML:
		return serial.FromYAML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Store reads and writes project files. The format of a file follows its
// extension.
type Store struct {
	fs vfs.FileSystem
}

// New returns a store on the given filesystem, the OS filesystem by default.
func New(fss ...vfs.FileSystem) *Store {
	return &Store{fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)}
}

func (s *Store) FileSystem() vfs.FileSystem {
	return s.fs
}

// ReadElement reads and decodes the file at path.
func (s *Store) ReadElement(path string) (*serial.Element, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := vfs.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}
	el, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return el, nil
}

// WriteElement encodes el and writes it to path. It reports false without
// writing when the file already holds an equivalent tree.
func (s *Store) WriteElement(path string, el *serial.Element) (bool, error) {
	f, err := FormatOf(path)
	if err != nil {
		return false, err
	}
	hash, err := serial.Hash(el)
	if err != nil {
		return false, err
	}
	if old, err := s.ReadElement(path); err == nil {
		if oldHash, err := serial.Hash(old); err == nil && oldHash == hash {
			log.Debug("{{path}} is up to date", "path", path)
			return false, nil
		}
	} else if !errors.Is(err, vfs.ErrNotExist) {
		log.Debug("overwriting unreadable {{path}}: {{error}}", "path", path, "error", err)
	}

	data, err := Encode(el, f)
	if err != nil {
		return false, err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, vfs.ErrExist) {
			return false, err
		}
	}
	if err := vfs.WriteFile(s.fs, path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads the project at path using the given platforms for object and
// behavior creation.
func (s *Store) Load(path string, platforms ...*project.Platform) (*project.Project, error) {
	el, err := s.ReadElement(path)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	p := project.NewProject("", platforms...)
	p.UnserializeFrom(el)
	log.Info("loaded project {{name}} from {{path}}", "name", p.GetName(), "path", path)
	return p, nil
}

// Save writes p to path. It reports whether the file was changed.
func (s *Store) Save(path string, p *project.Project) (bool, error) {
	el := serial.NewElement()
	p.SerializeTo(el)
	changed, err := s.WriteElement(path, el)
	if err != nil {
		return false, fmt.Errorf("save project: %w", err)
	}
	if changed {
		log.Info("saved project {{name}} to {{path}}", "name", p.GetName(), "path", path)
	}
	return changed, nil
}
