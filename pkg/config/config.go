package config

import (
	_ "embed"
	goerrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/logging"
	"github.com/arthur-debert/reactspring/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes environment overrides. Sections and keys are
// separated by a double underscore: REACTSPRING_DEFAULTS__GROUP_ID.
const EnvPrefix = "REACTSPRING_"

// Settings is the effective configuration
type Settings struct {
	Templates Templates `koanf:"templates" toml:"templates"`
	Defaults  Answers   `koanf:"defaults" toml:"defaults"`
	Choices   Choices   `koanf:"choices" toml:"choices"`
	Output    Output    `koanf:"output" toml:"output"`
}

// Templates configures where templates are read from
type Templates struct {
	Root string `koanf:"root" toml:"root"`
}

// Answers holds one value per generation question. Empty strings mean the
// question is still open.
type Answers struct {
	ProjectName       string `koanf:"project_name" toml:"project_name,omitempty"`
	Frontend          string `koanf:"frontend" toml:"frontend"`
	Backend           string `koanf:"backend" toml:"backend"`
	BuildTool         string `koanf:"build_tool" toml:"build_tool"`
	Packaging         string `koanf:"packaging" toml:"packaging"`
	GroupID           string `koanf:"group_id" toml:"group_id"`
	ArtifactID        string `koanf:"artifact_id" toml:"artifact_id,omitempty"`
	JavaVersion       string `koanf:"java_version" toml:"java_version"`
	SpringBootVersion string `koanf:"spring_boot_version" toml:"spring_boot_version"`
	Database          string `koanf:"database" toml:"database"`
	Security          bool   `koanf:"security" toml:"security"`
}

// Choices lists the versions offered when prompting
type Choices struct {
	JavaVersions       []string `koanf:"java_versions" toml:"java_versions"`
	SpringBootVersions []string `koanf:"spring_boot_versions" toml:"spring_boot_versions"`
}

// Output configures console rendering
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Options selects the optional configuration layers
type Options struct {
	// ConfigFile replaces the user config file; it must exist
	ConfigFile string
	// AnswersFile is a .toml, .yaml or .yml file of answers merged over
	// the defaults section
	AnswersFile string
	// Overrides are dotted keys applied last, e.g. "defaults.frontend"
	Overrides map[string]interface{}
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}

// Load builds the effective settings from, in increasing precedence: the
// embedded defaults, the user config file, environment variables, the
// answers file and the overrides.
func Load(opts Options) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. User config
	configFile, explicit := opts.ConfigFile, opts.ConfigFile != ""
	if !explicit {
		configFile = paths.New().ConfigFile()
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", configFile).
				WithDetail("path", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", configFile).
			WithDetail("path", configFile)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Answers file
	if opts.AnswersFile != "" {
		answers, err := loadAnswers(opts.AnswersFile)
		if err != nil {
			return nil, err
		}
		if err := k.MergeAt(answers, "defaults"); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge answers")
		}
		logger.Debug().Str("path", opts.AnswersFile).Msg("loaded answers file")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 6. Unmarshal
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &s, nil
}

// envKey maps REACTSPRING_DEFAULTS__GROUP_ID to defaults.group_id. Variables
// without a section separator, like REACTSPRING_TEMPLATES, are not config
// keys and are skipped.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if !strings.Contains(key, "__") {
		return ""
	}
	return strings.ReplaceAll(key, "__", ".")
}

func loadAnswers(path string) (*koanf.Koanf, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported answers file %s: use .toml, .yaml or .yml", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "answers file %s not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse answers file %s", path).
			WithDetail("path", path)
	}
	return k, nil
}
