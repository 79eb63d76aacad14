// Package logging configures the zerolog logger shared by every component
// of the generator. Console output goes to stderr; every run is also
// appended to reactspring.log in the state directory.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/reactspring/pkg/paths"
)

// LogFileName is the run log kept in the state directory
const LogFileName = "reactspring.log"

// logFile is the open run log, replaced on every SetupLogger call
var logFile *os.File

// LevelFor maps the -v count to a level: warn, info, debug, then trace
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// LogFilePath is the run log below the state directory
func LogFilePath() string {
	return filepath.Join(paths.New().StateDir(), LogFileName)
}

// SetupLogger installs the global logger for a run at the level the
// verbosity selects. Failing to open the run log only costs the file
// output.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	path := LogFilePath()
	file, err := openLogFile(path)
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	var out io.Writer = console
	if file != nil {
		out = zerolog.MultiLevelWriter(console, file)
	}

	ctx := zerolog.New(out).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("run log unavailable, logging to the console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("log_file", path).Msg("logger ready")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

// GetLogger returns the global logger tagged with a component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogOperationStart logs the start of a generation phase and returns a
// function that logs its duration
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("phase started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("phase finished")
	}
}
