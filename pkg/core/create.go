package core

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/reactspring/pkg/engine"
	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/logging"
	"github.com/arthur-debert/reactspring/pkg/materialize"
	"github.com/arthur-debert/reactspring/pkg/templates"
	"github.com/arthur-debert/reactspring/pkg/types"
)

const (
	// ClientDir holds the verbatim frontend copy
	ClientDir = "client"
	// ServerDir holds the processed backend
	ServerDir = "server"
)

// Options describe one project to create
type Options struct {
	// Config is the generation config; it is validated again here
	Config types.GenerationConfig
	// TemplatesRoot contains frontend/ and backend/
	TemplatesRoot string
	// Destination is the project directory, which must not exist yet
	Destination string
	// GOOS selects the run commands and whether the wrapper is made
	// executable. Empty means the running platform.
	GOOS string
}

func (o Options) goos() string {
	if o.GOOS == "" {
		return runtime.GOOS
	}
	return o.GOOS
}

// Result describes a created, or for a dry run a planned, project
type Result struct {
	Config      types.GenerationConfig
	Destination string
	DryRun      bool

	// FrontendTemplate and BackendTemplate are the resolved template dirs
	FrontendTemplate string
	BackendTemplate  string

	Client    materialize.Report
	Server    engine.Report
	HelpFile  string
	NextSteps []string
}

// Creator builds projects on a file system
type Creator struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Creator writing through fsys
func New(fsys types.FS) *Creator {
	return &Creator{
		fs:     fsys,
		logger: logging.GetLogger("core.create"),
	}
}

// Plan validates the options without writing anything: the config must be
// valid, both templates must exist and the destination must be free.
func (c *Creator) Plan(opts Options) (*Result, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Destination == "" {
		return nil, errors.New(errors.ErrInvalidInput, "destination cannot be empty")
	}

	if _, err := c.fs.Stat(opts.Destination); err == nil {
		return nil, errors.Newf(errors.ErrAlreadyExists, "directory %s already exists", opts.Destination).
			WithDetail("path", opts.Destination)
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", opts.Destination).
			WithDetail("path", opts.Destination)
	}

	catalog := templates.New(c.fs, opts.TemplatesRoot)
	frontend, err := catalog.Frontend(cfg.Frontend)
	if err != nil {
		return nil, err
	}
	backend, err := catalog.Backend(cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Config:           cfg,
		Destination:      opts.Destination,
		DryRun:           true,
		FrontendTemplate: frontend,
		BackendTemplate:  backend,
		HelpFile:         filepath.Join(opts.Destination, HelpFileName),
		NextSteps:        NextSteps(cfg, filepath.Base(opts.Destination), opts.goos()),
	}, nil
}

// Create generates the project: the frontend is copied to client/, the
// backend template is processed into server/, the wrapper script is made
// executable and HELP.md is written. On failure the destination is removed.
func (c *Creator) Create(opts Options) (result *Result, err error) {
	done := logging.LogOperationStart(c.logger, "create")
	defer done()

	result, err = c.Plan(opts)
	if err != nil {
		return nil, err
	}
	result.DryRun = false
	cfg := result.Config
	dest := result.Destination

	c.logger.Info().
		Str("project", cfg.ProjectName).
		Str("dest", dest).
		Str("package", cfg.PackageName()).
		Msg("creating project")

	if mkErr := c.fs.MkdirAll(dest, 0755); mkErr != nil {
		return nil, errors.Wrapf(mkErr, errors.ErrDirCreate, "failed to create %s", dest).
			WithDetail("path", dest)
	}
	defer func() {
		if err != nil {
			result = nil
			err = c.cleanup(dest, err)
		}
	}()

	result.Client, err = materialize.CopyTree(c.fs, result.FrontendTemplate, filepath.Join(dest, ClientDir))
	if err != nil {
		return result, err
	}
	c.logger.Info().Str("frontend", string(cfg.Frontend)).Int("files", result.Client.Files()).Msg("copied frontend")

	serverDir := filepath.Join(dest, ServerDir)
	result.Server, err = engine.New(c.fs, cfg).Run(result.BackendTemplate, serverDir)
	if err != nil {
		return result, err
	}
	c.logger.Info().
		Str("backend", cfg.BackendTemplate()).
		Int("files", result.Server.Files()).
		Int("injected", len(result.Server.Injected)).
		Msg("processed backend")

	if opts.goos() != "windows" {
		c.makeExecutable(filepath.Join(serverDir, cfg.WrapperScript()))
	}

	help, err := HelpDocument(cfg, opts.goos())
	if err != nil {
		return result, err
	}
	if err = c.fs.WriteFile(result.HelpFile, []byte(help), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", HelpFileName).
			WithDetail("path", result.HelpFile)
	}

	return result, nil
}

// makeExecutable is best-effort: a template without a wrapper still
// produces a usable project
func (c *Creator) makeExecutable(path string) {
	if err := c.fs.Chmod(path, 0755); err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("could not make wrapper script executable")
	}
}

// cleanup removes a partial project. A failed removal is reported as a
// CLEANUP error that still wraps the original failure.
func (c *Creator) cleanup(dest string, cause error) error {
	c.logger.Warn().Err(cause).Str("dest", dest).Msg("removing partial project")
	if rmErr := c.fs.RemoveAll(dest); rmErr != nil {
		c.logger.Error().Err(rmErr).Str("dest", dest).Msg("cleanup failed")
		return errors.Wrapf(stderrors.Join(cause, rmErr), errors.ErrCleanup,
			"failed to remove partial project %s, delete it manually", dest).
			WithDetail("path", dest)
	}
	return cause
}
