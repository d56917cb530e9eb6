// Package config resolves jrss settings from defaults, a YAML file and the
// environment, and writes the defaults out on first run.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/tesso57/jrss/internal/application/settings"
	"gopkg.in/yaml.v3"
)

// Store holds the resolved settings and the file they came from.
type Store struct {
	Settings settings.Settings
	path     string
}

// DefaultPath returns ~/.config/jrss/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jrss", "config.yaml"), nil
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// Load resolves settings for the config file at path, or DefaultPath when
// path is empty. Keys missing from the file fall back to their JRSS_*
// variable and then to the built-in default. A missing file is created
// with the resolved values.
func Load(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil

	var opts []kong.Option
	if exists {
		opts = append(opts, kong.Configuration(yamlResolver, path))
	}

	s := &Store{path: path}
	parser, err := kong.New(&s.Settings, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(nil); err != nil {
		return nil, err
	}
	s.normalize()

	if !exists {
		if err := s.Save(); err != nil {
			return nil, fmt.Errorf("save default config: %w", err)
		}
	}
	return s, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(s.Settings); err != nil {
		return err
	}
	return enc.Close()
}

func (s *Store) normalize() {
	s.Settings.Log.File = strings.TrimSpace(s.Settings.Log.File)
	s.Settings.Journal.File = strings.TrimSpace(s.Settings.Journal.File)
	if s.Settings.Journal.File == "" {
		s.Settings.Journal.File = filepath.Join(dataHome(), "jrss", "journal.db")
	}
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// yamlResolver answers kong flags from a YAML document. Nested sections are
// flattened so the flag fetch.timeout-seconds finds fetch: {timeout_seconds}.
func yamlResolver(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	values := make(map[string]any)
	flatten("", doc, values)

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		return values[strings.ReplaceAll(flag.Name, "-", "_")], nil
	}), nil
}

func flatten(prefix string, in, out map[string]any) {
	for k, v := range in {
		if prefix != "" {
			k = prefix + "." + k
		}
		if section, ok := v.(map[string]any); ok {
			flatten(k, section, out)
			continue
		}
		out[k] = v
	}
}
