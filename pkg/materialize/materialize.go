// Package materialize writes a template tree into a destination directory.
//
// The walk is a plain recursion over (source, destination) pairs. Each call
// returns the report for its own subtree and the caller folds it into its
// own, so no state is shared between calls.
package materialize

import (
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/reactspring/pkg/classify"
	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/logging"
	"github.com/arthur-debert/reactspring/pkg/relocate"
	"github.com/arthur-debert/reactspring/pkg/types"
)

// ContentRewriter turns template text into project text. The path is the
// template-relative source path, used to recognize build descriptors.
type ContentRewriter interface {
	Rewrite(path string, content string) string
}

// Report summarizes one materialization
type Report struct {
	Directories int
	TextFiles   int
	BinaryFiles int
	// Relocated lists the destination directories the placeholder package
	// was written to
	Relocated []string
}

// Files returns the number of files written
func (r Report) Files() int {
	return r.TextFiles + r.BinaryFiles
}

// Add returns the sum of two reports
func (r Report) Add(other Report) Report {
	relocated := make([]string, 0, len(r.Relocated)+len(other.Relocated))
	relocated = append(relocated, r.Relocated...)
	relocated = append(relocated, other.Relocated...)
	if len(relocated) == 0 {
		relocated = nil
	}
	return Report{
		Directories: r.Directories + other.Directories,
		TextFiles:   r.TextFiles + other.TextFiles,
		BinaryFiles: r.BinaryFiles + other.BinaryFiles,
		Relocated:   relocated,
	}
}

// Materializer copies a backend template, relocating the placeholder
// package and rewriting text files on the way
type Materializer struct {
	fs        types.FS
	relocator relocate.Relocator
	rewriter  ContentRewriter
	logger    zerolog.Logger
}

// New creates a materializer
func New(fsys types.FS, relocator relocate.Relocator, rewriter ContentRewriter) *Materializer {
	return &Materializer{
		fs:        fsys,
		relocator: relocator,
		rewriter:  rewriter,
		logger:    logging.GetLogger("materialize"),
	}
}

// Materialize writes the tree at src into dest. The first error aborts the
// walk; whatever was written before it stays on disk.
func (m *Materializer) Materialize(src, dest string) (Report, error) {
	done := logging.LogOperationStart(m.logger, "materialize")
	defer done()

	report, err := m.walk(src, dest, "")
	if err != nil {
		return Report{}, err
	}

	m.logger.Info().
		Str("source", src).
		Str("dest", dest).
		Int("directories", report.Directories).
		Int("text_files", report.TextFiles).
		Int("binary_files", report.BinaryFiles).
		Msg("template materialized")
	return report, nil
}

// walk materializes the directory src into dest. rel is the template path
// of src, relative to the template root.
func (m *Materializer) walk(src, dest, rel string) (Report, error) {
	if err := makeDir(m.fs, src, dest); err != nil {
		return Report{}, err
	}
	report := Report{Directories: 1}

	entries, err := m.fs.ReadDir(src)
	if err != nil {
		return Report{}, errors.Wrapf(err, errors.ErrTemplateRead, "failed to read template directory %s", src).
			WithDetail("path", src)
	}

	for _, entry := range entries {
		path := filepath.Join(src, entry.Name())
		entryRel := filepath.Join(rel, entry.Name())

		if entry.IsDir() {
			target, err := m.relocator.Resolve(path, dest)
			if err != nil {
				return Report{}, err
			}
			if target.Relocated {
				m.logger.Debug().
					Str("source", target.Source).
					Str("dest", target.Dest).
					Msg("relocating placeholder package")
				entryRel = filepath.Join(rel, entry.Name(), filepath.FromSlash(relocate.PlaceholderSubPath))
			}

			sub, err := m.walk(target.Source, target.Dest, entryRel)
			if err != nil {
				return Report{}, err
			}
			if target.Relocated {
				sub = sub.Add(Report{Relocated: []string{target.Dest}})
			}
			report = report.Add(sub)
			continue
		}

		written, err := m.file(path, filepath.Join(dest, entry.Name()), entryRel)
		if err != nil {
			return Report{}, err
		}
		report = report.Add(written)
	}

	return report, nil
}

func (m *Materializer) file(src, dest, rel string) (Report, error) {
	data, perm, err := readFile(m.fs, src)
	if err != nil {
		return Report{}, err
	}

	if classify.IsBinary(src) {
		m.logger.Trace().Str("file", rel).Msg("copying binary file")
		if err := writeFile(m.fs, dest, data, perm); err != nil {
			return Report{}, err
		}
		return Report{BinaryFiles: 1}, nil
	}

	m.logger.Trace().Str("file", rel).Msg("rewriting text file")
	out := m.rewriter.Rewrite(rel, string(data))
	if err := writeFile(m.fs, dest, []byte(out), perm); err != nil {
		return Report{}, err
	}
	return Report{TextFiles: 1}, nil
}

// CopyTree copies src into dest byte for byte, with no relocation or
// rewriting. Every file counts as binary in the report.
func CopyTree(fsys types.FS, src, dest string) (Report, error) {
	if err := makeDir(fsys, src, dest); err != nil {
		return Report{}, err
	}
	report := Report{Directories: 1}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return Report{}, errors.Wrapf(err, errors.ErrTemplateRead, "failed to read template directory %s", src).
			WithDetail("path", src)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			sub, err := CopyTree(fsys, from, to)
			if err != nil {
				return Report{}, err
			}
			report = report.Add(sub)
			continue
		}

		data, perm, err := readFile(fsys, from)
		if err != nil {
			return Report{}, err
		}
		if err := writeFile(fsys, to, data, perm); err != nil {
			return Report{}, err
		}
		report.BinaryFiles++
	}

	return report, nil
}

func makeDir(fsys types.FS, src, dest string) error {
	perm := fs.FileMode(0755)
	if info, err := fsys.Stat(src); err == nil {
		perm = info.Mode().Perm()
	}
	if err := fsys.MkdirAll(dest, perm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dest).
			WithDetail("path", dest)
	}
	return nil
}

func readFile(fsys types.FS, path string) ([]byte, fs.FileMode, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, errors.ErrTemplateRead, "failed to stat template file %s", path).
			WithDetail("path", path)
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, errors.ErrTemplateRead, "failed to read template file %s", path).
			WithDetail("path", path)
	}
	return data, info.Mode().Perm(), nil
}

func writeFile(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	if err := fsys.WriteFile(path, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}
