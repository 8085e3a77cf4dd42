// Package cli wires the cobra commands to configuration, logging and the
// settings screen.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/settings/internal/config"
	"github.com/idilsaglam/settings/internal/logging"
	"github.com/idilsaglam/settings/internal/settings"
	"github.com/idilsaglam/settings/internal/store"
	"github.com/idilsaglam/settings/internal/tui"
	"github.com/idilsaglam/settings/internal/ui"
	"github.com/idilsaglam/settings/internal/version"
)

// Options tune behaviour from root flags.
type Options struct {
	ConfigPath string
	Theme      string
	Color      bool
	NoColor    bool
	LogLevel   string
}

// NewRootCmd builds the command tree. runTUI starts the interactive screen;
// tests swap it out.
func NewRootCmd(runTUI func(*settings.Screen) error) *cobra.Command {
	opt := &Options{}
	if runTUI == nil {
		runTUI = tui.Run
	}

	root := &cobra.Command{
		Use:   "settings",
		Short: "A sectioned settings list for the terminal",
		Long: `Browse collapsible sections of settings, search them, and add or
remove sections and items.

Keys: / search, a new section, i add item, e edit (then d deletes),
enter expand/collapse, q quit.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := setup(opt)
			if err != nil {
				return err
			}
			defer logging.Sync()
			logging.Info("starting tui")
			if err := runTUI(screen); err != nil {
				logging.Error("tui exited with error", zap.Error(err))
				return err
			}
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&opt.ConfigPath, "config", "", "config file (default: <config dir>/settings/config.yaml)")
	pf.StringVar(&opt.Theme, "theme", "", "theme: classic, neon or mono")
	pf.BoolVar(&opt.Color, "color", false, "force colour output even when stdout is not a terminal")
	pf.BoolVar(&opt.NoColor, "no-color", false, "disable colour output")
	pf.StringVar(&opt.LogLevel, "log-level", "", "log level: debug, info, warn, error (default: silent)")

	root.AddCommand(newListCmd(opt), newVersionCmd())
	return root
}

func newListCmd(opt *Options) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the settings tree",
		Example: `  settings list
  settings list --filter priv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := setup(opt)
			if err != nil {
				return err
			}
			defer logging.Sync()
			if !opt.Color && !ui.IsTTY() {
				ui.SetColorForcing(false, true)
			}
			screen.OnSearchTextChanged(filter)
			printList(cmd.OutOrStdout(), screen, ui.Width())
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only show items whose title contains this text")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "settings %s (commit: %s)\n", version.Version, version.Commit)
		},
	}
}

// setup loads config, applies theme and logging, and seeds the store.
func setup(opt *Options) (*settings.Screen, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return nil, err
	}

	theme := cfg.Theme
	if opt.Theme != "" {
		theme = opt.Theme
	}
	ui.SetTheme(theme)
	ui.SetColorForcing(opt.Color, opt.NoColor)

	level := cfg.LogLevel
	if opt.LogLevel != "" {
		level = opt.LogLevel
	}
	if level != "" {
		if err := config.EnsureDir(); err != nil {
			return nil, err
		}
	}
	logOpts := logging.Options{Level: level, File: cfg.LogFile}
	if err := logging.Initialize(logOpts); err != nil {
		return nil, err
	}
	logging.Info("config loaded",
		zap.String("theme", theme),
		zap.String("filter_mode", cfg.FilterMode),
		zap.String("log", logOpts.Describe()),
	)

	seed := cfg.Sections
	if len(seed) == 0 {
		seed = store.DefaultSections()
	}
	st := store.Seed(seed, store.WithMatcher(store.MatcherFor(cfg.FilterMode)))
	return settings.New(st), nil
}

func printList(w io.Writer, screen *settings.Screen, width int) {
	sections, items := screen.Counts()
	lines := []string{ui.Summary(sections, items)}
	if q := screen.Query(); q != "" {
		lines = append(lines, ui.Current().Muted.Render("filter: "+q))
	}
	lines = append(lines, "")
	lines = append(lines, ui.Tree(screen.Render(), width-4)...)
	fmt.Fprintln(w, ui.Panel(strings.Join(lines, "\n")))
}
