package posixpath

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/posixpath/internal/version"
	"github.com/arthur-debert/posixpath/pkg/config"
	"github.com/arthur-debert/posixpath/pkg/errors"
	"github.com/arthur-debert/posixpath/pkg/logging"
	pathlib "github.com/arthur-debert/posixpath/pkg/posixpath"
)

var (
	verbosity int
	styleFlag string

	cfg *config.Config
)

// NewRootCmd builds the posixpath command tree.
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:   "posixpath",
		Short: "Lexical POSIX path manipulation",
		Long: `posixpath normalizes, joins, and decomposes POSIX-style paths purely
lexically: no filesystem access, no symlink resolution. Win32 paths are
supported through a reversible drive-root encoding (C:\x <-> //c:/x).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}

			applyColorMode(cfg.Output.Color)

			style := cfg.Normalize.Style
			if styleFlag != "" {
				style = styleFlag
			}
			switch style {
			case "standard":
				pathlib.SetDefaultStyle(pathlib.StyleStandard)
			case "full":
				pathlib.SetDefaultStyle(pathlib.StyleFull)
			default:
				return errors.Newf(errors.ErrInvalidInput,
					"unknown normalization style %q (want %q or %q)", style, "standard", "full")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&styleFlag, "style", "",
		"Normalization style: standard or full (overrides config)")

	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newJoinCmd())
	rootCmd.AddCommand(newComponentsCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newWin32Cmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(manCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "posixpath version %s\n", version.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(posixpath completion bash)

Zsh:
  $ posixpath completion zsh > "${fpath[1]}/_posixpath"

Fish:
  $ posixpath completion fish | source

PowerShell:
  PS> posixpath completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}

var manCmd = &cobra.Command{
	Use:    "man",
	Short:  "Generate man page",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		header := &doc.GenManHeader{
			Title:   "POSIXPATH",
			Section: "1",
		}
		return doc.GenManTree(cmd.Root(), header, "/tmp")
	},
}
