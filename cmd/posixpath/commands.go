package posixpath

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/posixpath/pkg/config"
	"github.com/arthur-debert/posixpath/pkg/errors"
	"github.com/arthur-debert/posixpath/pkg/logging"
	"github.com/arthur-debert/posixpath/pkg/output/styles"
	pathlib "github.com/arthur-debert/posixpath/pkg/posixpath"
)

func newNormalizeCmd() *cobra.Command {
	var (
		full     bool
		absolute bool
		cwdFlag  string
	)

	cmd := &cobra.Command{
		Use:   "normalize [paths...]",
		Short: "Normalize paths lexically",
		Long: `Normalize collapses redundant separators and resolves "." and ".."
components without touching the filesystem. With --absolute, relative
paths are first anchored at --cwd (or the working directory).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.normalize")

			if full {
				pathlib.SetDefaultStyle(pathlib.StyleFull)
			}

			var cwd pathlib.Path
			if absolute {
				var err error
				cwd, err = resolveCwd(cwdFlag)
				if err != nil {
					return err
				}
			}

			for _, arg := range args {
				p := pathlib.New(arg)
				var result pathlib.Path
				if absolute {
					result = p.Absonormed(cwd)
				} else {
					result = p.Normalized()
				}
				logger.Debug().
					Str("input", arg).
					Str("output", result.String()).
					Msg("Normalized path")
				fmt.Fprintln(cmd.OutOrStdout(), result.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&full, "full", "f", false,
		"Use full normalization (drop trailing separators, \".\" becomes empty)")
	cmd.Flags().BoolVarP(&absolute, "absolute", "a", false,
		"Anchor relative paths at the working directory before normalizing")
	cmd.Flags().StringVar(&cwdFlag, "cwd", "",
		"Absolute directory to anchor relative paths at (default: working directory)")

	return cmd
}

// resolveCwd turns the --cwd flag (or the process working directory) into
// an absolute Path. Win32-style values are accepted and translated.
func resolveCwd(flag string) (pathlib.Path, error) {
	raw := flag
	if raw == "" {
		wd, err := os.Getwd()
		if err != nil {
			return pathlib.Path{}, errors.Wrap(err, errors.ErrInternal, "failed to get working directory")
		}
		raw = wd
	}

	cwd := pathlib.FromOSNative(raw)
	if !cwd.IsAbsolute() {
		return pathlib.Path{}, errors.Newf(errors.ErrInvalidInput, "cwd must be absolute, got %q", raw)
	}
	return cwd, nil
}

func newJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join <base> [paths...]",
		Short: "Join path components",
		Long: `Join appends each path to the base. An absolute component replaces
everything before it, matching filesystem append semantics.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := pathlib.New(args[0])
			for _, arg := range args[1:] {
				result = result.JoinString(arg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
	return cmd
}

// segmentDoc is the yaml shape of one path segment.
type segmentDoc struct {
	Section string `yaml:"section"`
	Text    string `yaml:"text"`
}

// componentList is the yaml shape for the components command.
type componentList struct {
	Path     string       `yaml:"path"`
	Segments []segmentDoc `yaml:"segments"`
}

func newComponentsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "components <path>",
		Short: "Split a path into its typed components",
		Long: `Components splits a path the way iteration over it would: root name,
root directory, then each filename, with a trailing separator component
when the path ends in one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = cfg.Output.Format
			}

			p := pathlib.New(args[0])
			segs := p.Segments()
			docs := make([]segmentDoc, 0, len(segs))
			for _, seg := range segs {
				docs = append(docs, segmentDoc{Section: seg.Section.String(), Text: seg.Str})
			}

			switch format {
			case "text":
				for _, doc := range docs {
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", doc.Section, doc.Text)
				}
			case "yaml":
				out, err := yaml.Marshal(componentList{Path: p.String(), Segments: docs})
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "failed to marshal components")
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			default:
				return errors.Newf(errors.ErrInvalidInput,
					"unknown format %q (want %q or %q)", format, "text", "yaml")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: text or yaml (default from config)")
	return cmd
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <path>",
		Short: "Show a path's decomposition",
		Long: `Info prints every lexical property of a path: root, parent, filename,
stem, extension, and whether it is absolute or normalized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pathlib.New(args[0])
			out := cmd.OutOrStdout()

			render := func(name, value string) {
				label := styles.GetStyle("Label").Render(name)
				fmt.Fprintf(out, "%s %s\n", label, value)
			}

			fmt.Fprintln(out, styles.GetStyle("Header").Render(p.String()))
			render("absolute", fmt.Sprintf("%t", p.IsAbsolute()))
			render("normalized", p.Normalized().String())
			render("root name", p.RootName())
			render("root dir", p.RootDirectory())
			render("root path", p.RootPath())
			render("relative", p.RelativePath())
			render("parent", p.ParentPath().String())
			render("filename", p.Filename())
			render("stem", p.Stem())
			render("extension", p.Extension())
			return nil
		},
	}
	return cmd
}

func newGenconfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Print or write the default configuration",
		Long: `Genconfig prints the annotated default configuration. With --write it
is saved to the user config path instead, ready for editing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return nil
			}

			path := config.UserConfigPath()
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrInvalidInput, "config file already exists at %s", path)
			}
			if err := cfg.Write(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the configuration to the user config path")
	return cmd
}

func newWin32Cmd() *cobra.Command {
	var from bool

	cmd := &cobra.Command{
		Use:   "win32 <path>",
		Short: "Translate between POSIX and Win32 path forms",
		Long: `Win32 renders a path with backslashes, expanding the //c:/ drive-root
encoding to C:\. With --from, the translation runs the other way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from {
				fmt.Fprintln(cmd.OutOrStdout(), pathlib.FromWin32(args[0]).String())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), pathlib.ToWin32(pathlib.New(args[0])))
			return nil
		},
	}

	cmd.Flags().BoolVar(&from, "from", false, "Translate a Win32 path to POSIX form")
	return cmd
}
