// Package inject adds generated sources to a materialized backend: the
// servlet initializer for war packaging, the security configuration, and
// the JPA entity, repository and datasource settings for a database.
package inject

import (
	"path"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/logging"
	"github.com/arthur-debert/reactspring/pkg/types"
)

// DatasourceProperties is where the datasource settings go. Spring Boot
// reads classpath:config/application.properties on top of the template's
// own application.properties, so neither overwrites the other.
const DatasourceProperties = "src/main/resources/config/application.properties"

// File is one generated file, its path slash-separated and relative to the
// backend root
type File struct {
	Path    string
	Content string
}

// Plan renders the files cfg selects. mainClass names the application
// class the servlet initializer boots.
func Plan(cfg types.GenerationConfig, mainClass string) ([]File, error) {
	set := cfg.SourceSet()
	ext := cfg.SourceExt()
	pkgDir := path.Join(append([]string{"src", "main", set}, cfg.PackagePath()...)...)
	data := sourceData{Package: cfg.PackageName(), MainClass: mainClass}

	type source struct {
		kind string
		dir  string
	}
	var sources []source
	if cfg.IsWar() {
		sources = append(sources, source{kind: "ServletInitializer", dir: pkgDir})
	}
	if cfg.Security {
		sources = append(sources, source{kind: "SecurityConfig", dir: path.Join(pkgDir, "config")})
	}
	if cfg.HasDatabase() {
		sources = append(sources,
			source{kind: "User", dir: path.Join(pkgDir, "model")},
			source{kind: "UserRepository", dir: path.Join(pkgDir, "repository")},
		)
	}

	var files []File
	for _, s := range sources {
		content, err := renderSource(set, s.kind, data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: path.Join(s.dir, s.kind+"."+ext), Content: content})
	}

	if ds, ok := DatasourceFor(cfg); ok {
		content, err := renderFile("templates/datasource.properties.tmpl", ds)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: DatasourceProperties, Content: content})
	}

	return files, nil
}

// Injector writes generated files into a backend
type Injector struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates an injector
func New(fsys types.FS) *Injector {
	return &Injector{fs: fsys, logger: logging.GetLogger("inject")}
}

// Inject writes the files cfg selects below serverDir, overwriting
// existing ones, and returns their paths.
func (i *Injector) Inject(cfg types.GenerationConfig, serverDir string) ([]string, error) {
	mainClass := FallbackMainClass
	if cfg.IsWar() {
		pkgDir := filepath.Join(append([]string{serverDir, "src", "main", cfg.SourceSet()}, cfg.PackagePath()...)...)
		mainClass = DiscoverMainClass(i.fs, pkgDir, i.logger)
	}

	files, err := Plan(cfg, mainClass)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		dest := filepath.Join(serverDir, filepath.FromSlash(f.Path))
		if err := i.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", f.Path).
				WithDetail("path", dest)
		}
		if err := i.fs.WriteFile(dest, []byte(f.Content), 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", f.Path).
				WithDetail("path", dest)
		}
		i.logger.Info().Str("file", f.Path).Msg("injected file")
		written = append(written, dest)
	}

	return written, nil
}
