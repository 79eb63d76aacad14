package reactspring

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/reactspring/internal/version"
	"github.com/arthur-debert/reactspring/pkg/cobrax/topics"
	"github.com/arthur-debert/reactspring/pkg/config"
	"github.com/arthur-debert/reactspring/pkg/logging"
	"github.com/arthur-debert/reactspring/pkg/ui"
)

//go:embed topics
var topicFiles embed.FS

// globals holds the persistent flags shared by every command
type globals struct {
	verbosity  int
	configFile string
	format     string
}

// loadSettings loads the configuration layers with the global --config
// file and the given answers file and overrides
func (g *globals) loadSettings(answersFile string, overrides map[string]interface{}) (*config.Settings, error) {
	return config.Load(config.Options{
		ConfigFile:  g.configFile,
		AnswersFile: answersFile,
		Overrides:   overrides,
	})
}

// renderer builds the output renderer for cmd. --format wins over the
// configured output format.
func (g *globals) renderer(cmd *cobra.Command, settings *config.Settings) (ui.Renderer, error) {
	name := settings.Output.Format
	if cmd.Flags().Changed("format") {
		name = g.format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "reactspring",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Get().Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCreateCmd(g))
	rootCmd.AddCommand(newTemplatesCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	source, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if _, err := topics.Initialize(rootCmd, source, opts); err != nil {
			log.Warn().Err(err).Msg("help topics unavailable")
		}
	}

	return rootCmd
}
