// Package rewrite turns backend template text into project text.
//
// Every text file goes through the ordered substitution rules. Build
// descriptors (pom.xml, build.gradle, build.gradle.kts) additionally get the
// dependency blocks of the selected features and, for war packaging, the
// war plugin.
package rewrite

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/reactspring/pkg/logging"
	"github.com/arthur-debert/reactspring/pkg/types"
)

// Rewriter applies the substitutions for one generation config
type Rewriter struct {
	cfg      types.GenerationConfig
	rules    []Rule
	features []Feature
	logger   zerolog.Logger
}

// New builds a rewriter for cfg
func New(cfg types.GenerationConfig) *Rewriter {
	return &Rewriter{
		cfg:      cfg,
		rules:    Rules(cfg),
		features: Features(cfg),
		logger:   logging.GetLogger("rewrite"),
	}
}

// Rewrite returns the project text for the template file at path
func (r *Rewriter) Rewrite(path string, content string) string {
	content = ApplyRules(r.rules, content)

	dialect, ok := DialectFor(r.cfg.BuildTool, filepath.Base(path))
	if !ok {
		return content
	}
	return r.editDescriptor(dialect, path, content)
}

func (r *Rewriter) editDescriptor(d Dialect, path, content string) string {
	var pending []Dependency
	for _, f := range r.features {
		if d.Declares(content, f.Marker()) {
			r.logger.Debug().
				Str("file", path).
				Str("feature", f.Name).
				Msg("feature already declared")
			continue
		}
		pending = append(pending, f.Dependencies...)
	}

	if len(pending) > 0 {
		edited := d.InsertDependencies(content, pending)
		if edited == content {
			r.logger.Warn().
				Str("file", path).
				Str("dialect", d.Name()).
				Msg("no dependency section found, descriptor left unchanged")
		} else {
			r.logger.Info().
				Str("file", path).
				Str("dialect", d.Name()).
				Int("dependencies", len(pending)).
				Msg("added feature dependencies")
		}
		content = edited
	}

	if r.cfg.IsWar() {
		content = d.ActivateWar(content)
	}
	return content
}
