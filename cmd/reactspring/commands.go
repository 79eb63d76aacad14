package reactspring

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/reactspring/internal/version"
	"github.com/arthur-debert/reactspring/pkg/config"
	"github.com/arthur-debert/reactspring/pkg/filesystem"
	"github.com/arthur-debert/reactspring/pkg/paths"
	"github.com/arthur-debert/reactspring/pkg/templates"
	"github.com/arthur-debert/reactspring/pkg/ui/view"
)

func newTemplatesCmd(g *globals) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		Long:    MsgTemplatesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := g.loadSettings("", nil)
			if err != nil {
				return err
			}
			renderer, err := g.renderer(cmd, settings)
			if err != nil {
				return err
			}

			fsys := filesystem.NewOS()
			dir, err := paths.ResolveTemplatesRoot(fsys, paths.New().TemplateCandidates(root, settings.Templates.Root))
			if err != nil {
				return err
			}
			listing, err := templates.New(fsys, dir).List()
			if err != nil {
				return err
			}
			return renderer.RenderCatalog(view.Catalog{
				Root:      dir,
				Frontends: listing.Frontends,
				Backends:  listing.Backends,
			})
		},
	}
	cmd.Flags().StringVar(&root, "templates", "", MsgFlagTemplates)
	return cmd
}

func newConfigCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := g.loadSettings("", nil)
			if err != nil {
				return err
			}
			doc, err := config.Dump(settings)
			if err != nil {
				return err
			}
			file := g.configFile
			if file == "" {
				file = paths.New().ConfigFile()
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgConfigFileNote, file)
			_, _ = fmt.Fprint(out, doc)
			return nil
		},
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.Get().String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

