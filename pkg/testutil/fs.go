package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/reactspring/pkg/filesystem"
	"github.com/arthur-debert/reactspring/pkg/types"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteTree writes files below root. Keys are slash-separated paths
// relative to root; parent directories are created as needed.
func WriteTree(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
}

// ReadTree returns every file below root keyed by its slash-separated path
// relative to root.
func ReadTree(t *testing.T, fsys types.FS, root string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	readTree(t, fsys, root, "", files)
	return files
}

func readTree(t *testing.T, fsys types.FS, dir, rel string, files map[string]string) {
	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		entryRel := entry.Name()
		if rel != "" {
			entryRel = rel + "/" + entry.Name()
		}
		if entry.IsDir() {
			readTree(t, fsys, path, entryRel, files)
			continue
		}
		data, err := fsys.ReadFile(path)
		require.NoError(t, err)
		files[entryRel] = string(data)
	}
}

// Paths returns the sorted keys of a tree read with ReadTree
func Paths(tree map[string]string) []string {
	paths := make([]string, 0, len(tree))
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Op names a filesystem operation FaultyFS can fail
type Op string

const (
	OpStat      Op = "stat"
	OpReadFile  Op = "readfile"
	OpWriteFile Op = "writefile"
	OpChmod     Op = "chmod"
	OpMkdirAll  Op = "mkdirall"
	OpReadDir   Op = "readdir"
	OpRemoveAll Op = "removeall"
)

type fault struct {
	op   Op
	path string
}

// FaultyFS wraps a filesystem and returns configured errors for specific
// operations on specific paths
type FaultyFS struct {
	types.FS
	faults map[fault]error
	calls  map[Op]int
}

// NewFaultyFS wraps fsys
func NewFaultyFS(fsys types.FS) *FaultyFS {
	return &FaultyFS{
		FS:     fsys,
		faults: make(map[fault]error),
		calls:  make(map[Op]int),
	}
}

// WithError makes op fail with err when called on path
func (f *FaultyFS) WithError(op Op, path string, err error) *FaultyFS {
	f.faults[fault{op: op, path: filepath.Clean(path)}] = err
	return f
}

// Calls returns how many times op was invoked
func (f *FaultyFS) Calls(op Op) int {
	return f.calls[op]
}

func (f *FaultyFS) check(op Op, path string) error {
	f.calls[op]++
	return f.faults[fault{op: op, path: filepath.Clean(path)}]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.check(OpReadFile, name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(OpWriteFile, name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) Chmod(name string, mode fs.FileMode) error {
	if err := f.check(OpChmod, name); err != nil {
		return err
	}
	return f.FS.Chmod(name, mode)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) RemoveAll(path string) error {
	if err := f.check(OpRemoveAll, path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}
