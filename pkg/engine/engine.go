// Package engine materializes a backend template for one generation config:
// the tree walk with package relocation and text rewriting, followed by the
// injection of feature sources.
package engine

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/reactspring/pkg/inject"
	"github.com/arthur-debert/reactspring/pkg/logging"
	"github.com/arthur-debert/reactspring/pkg/materialize"
	"github.com/arthur-debert/reactspring/pkg/relocate"
	"github.com/arthur-debert/reactspring/pkg/rewrite"
	"github.com/arthur-debert/reactspring/pkg/types"
)

// Report describes what one run produced
type Report struct {
	materialize.Report
	// Injected lists the generated files, as absolute destination paths
	Injected []string
}

// Engine runs the backend pipeline for one config. It keeps no state
// between runs and is safe to reuse for different destinations.
type Engine struct {
	fs     types.FS
	cfg    types.GenerationConfig
	logger zerolog.Logger
}

// New creates an engine for cfg, which must already be validated
func New(fsys types.FS, cfg types.GenerationConfig) *Engine {
	return &Engine{
		fs:     fsys,
		cfg:    cfg,
		logger: logging.GetLogger("engine"),
	}
}

// Run materializes the backend template at src into dest and injects the
// feature sources. It stops at the first error and leaves partial output
// for the caller to clean up.
func (e *Engine) Run(src, dest string) (Report, error) {
	done := logging.LogOperationStart(e.logger, "engine")
	defer done()

	e.logger.Debug().
		Str("template", src).
		Str("dest", dest).
		Str("package", e.cfg.PackageName()).
		Msg("running backend pipeline")

	m := materialize.New(
		e.fs,
		relocate.New(e.fs, e.cfg.PackagePath()),
		rewrite.New(e.cfg),
	)
	tree, err := m.Materialize(src, dest)
	if err != nil {
		return Report{}, err
	}

	injected, err := inject.New(e.fs).Inject(e.cfg, dest)
	if err != nil {
		return Report{}, err
	}

	return Report{Report: tree, Injected: injected}, nil
}
