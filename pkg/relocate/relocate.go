// Package relocate maps the placeholder package directory of a backend
// template (com/example/demo) onto the package path chosen for the project.
package relocate

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/types"
)

const (
	// MarkerDir is the directory name that may open a placeholder package root
	MarkerDir = "com"

	// PlaceholderSubPath is the default package below MarkerDir
	PlaceholderSubPath = "example/demo"
)

// Target says where materialization continues for a source directory
type Target struct {
	// Source is the directory to recurse into
	Source string
	// Dest is the directory its contents are written to
	Dest string
	// Relocated is true when Source is the placeholder package
	Relocated bool
}

// Relocator resolves directory targets for one package path
type Relocator struct {
	fs          types.FS
	packagePath []string
}

// New creates a relocator writing the placeholder package to packagePath
func New(fs types.FS, packagePath []string) Relocator {
	segments := make([]string, len(packagePath))
	copy(segments, packagePath)
	return Relocator{fs: fs, packagePath: segments}
}

// Resolve decides where the directory src, found while writing destParent,
// is materialized. The placeholder root skips its intermediate directories
// and lands at destParent/<package segments>; every other directory is
// mirrored by name. A template without the placeholder is simply mirrored.
func (r Relocator) Resolve(src, destParent string) (Target, error) {
	name := filepath.Base(src)
	mirrored := Target{Source: src, Dest: filepath.Join(destParent, name)}

	if name != MarkerDir || len(r.packagePath) == 0 {
		return mirrored, nil
	}

	inner := filepath.Join(src, filepath.FromSlash(PlaceholderSubPath))
	info, err := r.fs.Stat(inner)
	if err != nil {
		if os.IsNotExist(err) {
			return mirrored, nil
		}
		return Target{}, errors.Wrapf(err, errors.ErrTemplateRead, "failed to inspect %s", inner)
	}
	if !info.IsDir() {
		return mirrored, nil
	}

	dest := filepath.Join(append([]string{destParent}, r.packagePath...)...)
	return Target{Source: inner, Dest: dest, Relocated: true}, nil
}
