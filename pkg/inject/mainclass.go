package inject

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/reactspring/pkg/types"
)

// FallbackMainClass is the application class every backend template ships
const FallbackMainClass = "DemoApplication"

const applicationAnnotation = "@SpringBootApplication"

var (
	publicClassPattern = regexp.MustCompile(`public\s+class\s+(\w+)`)
	classPattern       = regexp.MustCompile(`\bclass\s+(\w+)`)
)

// DiscoverMainClass returns the name of the class annotated with
// @SpringBootApplication among the files directly in packageDir. Any read
// failure or a miss yields FallbackMainClass.
func DiscoverMainClass(fsys types.FS, packageDir string, logger zerolog.Logger) string {
	entries, err := fsys.ReadDir(packageDir)
	if err != nil {
		logger.Debug().Err(err).Str("dir", packageDir).Msg("cannot scan package for main class")
		return FallbackMainClass
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fsys.ReadFile(filepath.Join(packageDir, entry.Name()))
		if err != nil {
			logger.Debug().Err(err).Str("file", entry.Name()).Msg("skipping unreadable source")
			continue
		}
		if name, ok := mainClassIn(string(data)); ok {
			logger.Debug().Str("class", name).Str("file", entry.Name()).Msg("found main class")
			return name
		}
	}

	logger.Debug().Str("dir", packageDir).Str("fallback", FallbackMainClass).Msg("no main class found")
	return FallbackMainClass
}

// mainClassIn finds the class declared after the application annotation
func mainClassIn(source string) (string, bool) {
	idx := strings.Index(source, applicationAnnotation)
	if idx < 0 {
		return "", false
	}
	rest := source[idx:]

	if m := publicClassPattern.FindStringSubmatch(rest); m != nil {
		return m[1], true
	}
	if m := classPattern.FindStringSubmatch(rest); m != nil {
		return m[1], true
	}
	return "", false
}
