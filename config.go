package foyer

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// IdleTarget names an element and the idle oscillation applied to it.
type IdleTarget struct {
	Target string     `yaml:"target"`
	Config IdleConfig `yaml:",inline"`
}

// Config is the static shell configuration: which screen starts active,
// which buttons switch to which screens, which elements idle-animate, and
// the locale dictionary to apply. Loaded once at initialization; nothing in
// it is persisted back.
type Config struct {
	// StartScreen names the initially active screen. Empty means the first
	// discovered screen.
	StartScreen string `yaml:"start_screen"`
	// Buttons are the button-to-screen mappings wired during Bind.
	Buttons []ButtonMapping `yaml:"buttons"`
	// Idle lists idle-animation targets.
	Idle []IdleTarget `yaml:"idle"`
	// Locale is an optional dictionary path, resolved against the loader's
	// filesystem.
	Locale string `yaml:"locale"`
}

// Loader reads shell configuration files from an fs.FS.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a config loader rooted at basePath on the OS filesystem.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a config loader over fsys.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadConfig loads a shell config YAML. Structural problems (unreadable
// file, bad YAML) are errors; names that fail to resolve against a tree are
// runtime warnings, surfaced during Bind.
func (l *Loader) LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDictionary loads a locale dictionary through this loader's filesystem.
func (l *Loader) LoadDictionary(path string) (Dictionary, error) {
	return LoadDictionary(l.fsys, path)
}

// LoadLayout loads a declarative element-tree layout.
func (l *Loader) LoadLayout(path string) (*Element, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	return BuildLayout(data)
}
