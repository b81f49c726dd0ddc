// Package settings loads and saves the user settings.
//
// Settings are read once at startup, with the precedence (highest to
// lowest): environment variables > settings file > defaults. A settings
// file is created with the defaults the first time a Manager is created for
// a directory.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	Filename  = "settings.yaml"
	EnvPrefix = "DRAGONFLY_"

	DictBackendJSON   = "json"
	DictBackendSQLite = "sqlite"
)

type Settings struct {
	// Width of a column in the text output.
	ColumnWidth int `koanf:"column_width" yaml:"column_width"`

	// Extension of the corpus files of a directory.
	FileExt string `koanf:"file_ext" yaml:"file_ext"`

	// Directories of the .anno, .eng and .cm companion files. Empty means
	// the directory of the corpus file.
	AnnotationDir  string `koanf:"annotation_dir" yaml:"annotation_dir"`
	TranslationDir string `koanf:"translation_dir" yaml:"translation_dir"`
	CharVisDir     string `koanf:"char_vis_dir" yaml:"char_vis_dir"`

	// Where .anno files are written.
	OutputDir string `koanf:"output_dir" yaml:"output_dir"`

	DictDir     string `koanf:"dict_dir" yaml:"dict_dir"`
	DictBackend string `koanf:"dict_backend" yaml:"dict_backend"`

	// Tag written for tokens without annotation.
	DefaultTag string `koanf:"default_tag" yaml:"default_tag"`

	// Number of documents loaded concurrently.
	Workers int `koanf:"workers" yaml:"workers"`

	LogLevel  string `koanf:"log_level" yaml:"log_level"`
	LogFormat string `koanf:"log_format" yaml:"log_format"`
}

// DefaultDir is the settings and dictionary directory, ~/.dragonfly.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dragonfly"
	}
	return filepath.Join(home, ".dragonfly")
}

func Defaults() Settings {
	return Settings{
		ColumnWidth: 10,
		FileExt:     ".txt",
		OutputDir:   ".",
		DictDir:     DefaultDir(),
		DictBackend: DictBackendJSON,
		DefaultTag:  "O",
		Workers:     runtime.NumCPU(),
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Validate checks the values that are not free text.
func (s Settings) Validate() error {
	if s.DictBackend != DictBackendJSON && s.DictBackend != DictBackendSQLite {
		return fmt.Errorf("dict_backend must be %q or %q, got %q", DictBackendJSON, DictBackendSQLite, s.DictBackend)
	}
	if s.ColumnWidth < 1 {
		return fmt.Errorf("column_width must be positive, got %d", s.ColumnWidth)
	}
	return nil
}

func (s Settings) toMap() map[string]interface{} {
	return map[string]interface{}{
		"column_width":    s.ColumnWidth,
		"file_ext":        s.FileExt,
		"annotation_dir":  s.AnnotationDir,
		"translation_dir": s.TranslationDir,
		"char_vis_dir":    s.CharVisDir,
		"output_dir":      s.OutputDir,
		"dict_dir":        s.DictDir,
		"dict_backend":    s.DictBackend,
		"default_tag":     s.DefaultTag,
		"workers":         s.Workers,
		"log_level":       s.LogLevel,
		"log_format":      s.LogFormat,
	}
}

// Manager reads and writes the settings file of a directory.
type Manager struct {
	dir      string
	defaults Settings
}

// NewManager creates dir and its settings file if they do not exist.
func NewManager(dir string) (*Manager, error) {
	m := &Manager{dir: dir, defaults: Defaults()}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	_, err := os.Stat(m.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return m, m.Save(m.defaults)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) Path() string {
	return filepath.Join(m.dir, Filename)
}

// SetDefaults replaces the defaults used by Load.
func (m *Manager) SetDefaults(s Settings) {
	m.defaults = s
}

// Load returns the settings. Keys missing in the file get their default.
func (m *Manager) Load() (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(m.defaults.toMap(), "."), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if _, err := os.Stat(m.Path()); err == nil {
		if err := k.Load(file.Provider(m.Path()), yaml.Parser()); err != nil {
			return Settings{}, fmt.Errorf("failed to load settings file %s: %w", m.Path(), err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", m.Path(), err)
	}
	return s, nil
}

// Save writes s to the settings file.
func (m *Manager) Save(s Settings) error {
	data, err := yamlv3.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(m.Path(), data, 0o644)
}
