// Package templates locates template variants below a template root laid
// out as frontend/<variant>/ and backend/<language>[-gradle]/.
package templates

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/logging"
	"github.com/arthur-debert/reactspring/pkg/types"
)

const (
	FrontendDir = "frontend"
	BackendDir  = "backend"
)

// Catalog resolves template directories below one root
type Catalog struct {
	fs   types.FS
	root string
}

// New creates a catalog for root
func New(fsys types.FS, root string) *Catalog {
	return &Catalog{fs: fsys, root: root}
}

// Root returns the template root
func (c *Catalog) Root() string {
	return c.root
}

// Frontend returns the directory of a frontend variant
func (c *Catalog) Frontend(variant types.Frontend) (string, error) {
	return c.variant(FrontendDir, string(variant))
}

// Backend returns the backend template directory cfg selects
func (c *Catalog) Backend(cfg types.GenerationConfig) (string, error) {
	return c.variant(BackendDir, cfg.BackendTemplate())
}

func (c *Catalog) variant(kind, name string) (string, error) {
	dir := filepath.Join(c.root, kind, name)

	info, err := c.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrTemplateNotFound, "%s template %q not found", kind, name).
				WithDetail("path", dir)
		}
		return "", errors.Wrapf(err, errors.ErrTemplateRead, "failed to access %s template %q", kind, name).
			WithDetail("path", dir)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrTemplateNotFound, "%s template %q is not a directory", kind, name).
			WithDetail("path", dir)
	}

	logger := logging.GetLogger("templates")
	logger.Debug().Str("kind", kind).Str("variant", name).Str("path", dir).Msg("resolved template")
	return dir, nil
}

// Listing names the variants present below a root
type Listing struct {
	Frontends []string
	Backends  []string
}

// List returns the variants available in the catalog, sorted by name
func (c *Catalog) List() (Listing, error) {
	frontends, err := c.dirs(FrontendDir)
	if err != nil {
		return Listing{}, err
	}
	backends, err := c.dirs(BackendDir)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Frontends: frontends, Backends: backends}, nil
}

func (c *Catalog) dirs(kind string) ([]string, error) {
	dir := filepath.Join(c.root, kind)
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrTemplateRead, "failed to list %s templates", kind).
			WithDetail("path", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
