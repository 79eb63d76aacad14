package reactspring

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/reactspring/pkg/core"
	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/filesystem"
	"github.com/arthur-debert/reactspring/pkg/paths"
	"github.com/arthur-debert/reactspring/pkg/prompt"
)

// answerFlags maps create flags to the answer keys they fix
var answerFlags = []struct {
	flag, key, usage string
}{
	{"frontend", "frontend", MsgFlagFrontend},
	{"backend", "backend", MsgFlagBackend},
	{"build-tool", "build_tool", MsgFlagBuildTool},
	{"packaging", "packaging", MsgFlagPackaging},
	{"group-id", "group_id", MsgFlagGroupID},
	{"artifact-id", "artifact_id", MsgFlagArtifactID},
	{"java-version", "java_version", MsgFlagJavaVersion},
	{"spring-boot-version", "spring_boot_version", MsgFlagSpringBootVersion},
	{"database", "database", MsgFlagDatabase},
}

type createOptions struct {
	answersFile string
	templates   string
	dir         string
	yes         bool
	dryRun      bool
	security    bool
	values      map[string]*string
}

func newCreateCmd(g *globals) *cobra.Command {
	opts := &createOptions{values: map[string]*string{}}

	cmd := &cobra.Command{
		Use:     "create [name]",
		Short:   MsgCreateShort,
		Long:    MsgCreateLong,
		Example: MsgCreateExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, g, opts, args)
		},
	}

	flags := cmd.Flags()
	for _, f := range answerFlags {
		opts.values[f.key] = flags.String(f.flag, "", f.usage)
	}
	flags.BoolVar(&opts.security, "security", false, MsgFlagSecurity)
	flags.StringVar(&opts.answersFile, "answers", "", MsgFlagAnswers)
	flags.StringVar(&opts.templates, "templates", "", MsgFlagTemplates)
	flags.StringVar(&opts.dir, "dir", ".", MsgFlagDir)
	flags.BoolVarP(&opts.yes, "yes", "y", false, MsgFlagYes)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)

	_ = cmd.RegisterFlagCompletionFunc("frontend", fixedCompletion("vite", "cra"))
	_ = cmd.RegisterFlagCompletionFunc("backend", fixedCompletion("java", "kotlin", "groovy"))
	_ = cmd.RegisterFlagCompletionFunc("build-tool", fixedCompletion("maven", "gradle"))
	_ = cmd.RegisterFlagCompletionFunc("packaging", fixedCompletion("jar", "war"))
	_ = cmd.RegisterFlagCompletionFunc("database", fixedCompletion("none", "h2", "postgresql", "mysql"))

	return cmd
}

// overrides collects the answers fixed on the command line. The returned
// set names the questions that are not asked again.
func (o *createOptions) overrides(cmd *cobra.Command, args []string) (map[string]interface{}, map[string]bool) {
	values := map[string]interface{}{}
	fixed := map[string]bool{}

	if len(args) == 1 {
		values["defaults.project_name"] = args[0]
		fixed["project_name"] = true
	}
	for _, f := range answerFlags {
		if cmd.Flags().Changed(f.flag) {
			values["defaults."+f.key] = *o.values[f.key]
			fixed[f.key] = true
		}
	}
	if cmd.Flags().Changed("security") {
		values["defaults.security"] = o.security
		fixed["security"] = true
	}
	return values, fixed
}

func runCreate(cmd *cobra.Command, g *globals, opts *createOptions, args []string) error {
	overrides, fixed := opts.overrides(cmd, args)

	settings, err := g.loadSettings(opts.answersFile, overrides)
	if err != nil {
		return err
	}
	renderer, err := g.renderer(cmd, settings)
	if err != nil {
		return err
	}

	answers := settings.Defaults
	if opts.yes {
		if answers.ProjectName == "" {
			return errors.New(errors.ErrInvalidInput, MsgErrNoProjectName)
		}
	} else {
		answers, err = prompt.New(newAsker(cmd), settings.Choices).Ask(answers, fixed)
		if err != nil {
			return err
		}
	}

	cfg, err := answers.Resolve()
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()
	candidates := paths.New().TemplateCandidates(opts.templates, settings.Templates.Root)
	root, err := paths.ResolveTemplatesRoot(fsys, candidates)
	if err != nil {
		return err
	}
	log.Debug().Str("root", root).Msg("using templates")

	createOpts := core.Options{
		Config:        cfg,
		TemplatesRoot: root,
		Destination:   filepath.Join(opts.dir, cfg.ProjectName),
	}

	creator := core.New(fsys)
	var result *core.Result
	if opts.dryRun {
		result, err = creator.Plan(createOpts)
	} else {
		result, err = creator.Create(createOpts)
	}
	if err != nil {
		return err
	}

	return renderer.RenderSummary(result.Summary())
}

// newAsker prompts with pterm on an interactive terminal and reads plain
// lines otherwise. Line prompts go to stderr so stdout stays parseable.
func newAsker(cmd *cobra.Command) prompt.Asker {
	if in, ok := cmd.InOrStdin().(*os.File); ok && in == os.Stdin && isatty.IsTerminal(in.Fd()) {
		return prompt.NewTerminalAsker()
	}
	return prompt.NewLineAsker(cmd.InOrStdin(), cmd.ErrOrStderr())
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
