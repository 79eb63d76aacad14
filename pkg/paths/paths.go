// Package paths resolves the directories reactspring reads from and writes
// to: the XDG config, state and data directories, and the template root.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/types"
)

const (
	// AppDirName is the directory name below each XDG base directory
	AppDirName = "reactspring"

	// ConfigFileName is the user configuration file in the config directory
	ConfigFileName = "config.toml"

	// EnvConfigDir overrides the config directory
	EnvConfigDir = "REACTSPRING_CONFIG_DIR"
	// EnvStateDir overrides the state directory
	EnvStateDir = "REACTSPRING_STATE_DIR"
	// EnvDataDir overrides the data directory
	EnvDataDir = "REACTSPRING_DATA_DIR"
	// EnvTemplates points at a template root
	EnvTemplates = "REACTSPRING_TEMPLATES"
)

// Paths holds the resolved base directories
type Paths struct {
	configDir string
	stateDir  string
	dataDir   string
}

// New resolves the base directories, respecting environment overrides
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = expandHome(dir)
	} else {
		p.dataDir = filepath.Join(xdg.DataHome, AppDirName)
	}

	// State directory - checked manually so XDG_STATE_HOME changes after
	// process start are honored
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.stateDir = filepath.Join(stateHome, AppDirName)
	} else {
		home, _ := os.UserHomeDir()
		p.stateDir = filepath.Join(home, ".local", "state", AppDirName)
	}

	return p
}

// ConfigDir returns the configuration directory
func (p *Paths) ConfigDir() string { return p.configDir }

// ConfigFile returns the user configuration file path
func (p *Paths) ConfigFile() string { return filepath.Join(p.configDir, ConfigFileName) }

// StateDir returns the state directory
func (p *Paths) StateDir() string { return p.stateDir }

// DataDir returns the data directory
func (p *Paths) DataDir() string { return p.dataDir }

// TemplateCandidates lists where a template root is looked for, in order:
// the explicit flag value, REACTSPRING_TEMPLATES, the configured root, a
// templates directory next to the executable, and the data directory.
// Empty entries are skipped.
func (p *Paths) TemplateCandidates(flag, configured string) []string {
	var candidates []string
	add := func(dir string) {
		if dir != "" {
			candidates = append(candidates, expandHome(dir))
		}
	}

	add(flag)
	add(os.Getenv(EnvTemplates))
	add(configured)
	if exe, err := os.Executable(); err == nil {
		add(filepath.Join(filepath.Dir(exe), "templates"))
	}
	add(filepath.Join(p.dataDir, "templates"))

	return candidates
}

// ResolveTemplatesRoot returns the first candidate holding both a frontend
// and a backend directory. An explicit candidate that is not a template
// root is skipped, not fatal.
func ResolveTemplatesRoot(fsys types.FS, candidates []string) (string, error) {
	for _, dir := range candidates {
		if isDir(fsys, filepath.Join(dir, "frontend")) && isDir(fsys, filepath.Join(dir, "backend")) {
			return dir, nil
		}
	}
	return "", errors.New(errors.ErrTemplateNotFound, "no template directory found").
		WithDetail("searched", strings.Join(candidates, string(os.PathListSeparator)))
}

func isDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
		if home == "" {
			return path
		}
	}

	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}
