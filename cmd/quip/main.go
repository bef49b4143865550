package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pders01/quip/internal/config"
	"github.com/pders01/quip/internal/debuglog"
	"github.com/pders01/quip/internal/quotes"
	"github.com/pders01/quip/internal/source"
	"github.com/pders01/quip/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs root and reports any error on its error output. Search
// errors are skipped since the commands already printed the user message.
func execute(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	if err == nil {
		return nil
	}
	if cmd == nil {
		cmd = root
	}
	if !isUserFacing(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func isUserFacing(err error) bool {
	return errors.Is(err, quotes.ErrTopicTooShort) ||
		errors.Is(err, quotes.ErrNotFound) ||
		errors.Is(err, quotes.ErrLoad)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quip",
		Short:         "Search motivational quotes by topic",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer debuglog.Close()

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet && isatty.IsTerminal(os.Stdout.Fd()) {
				tui.ShowBanner(Version)
			}

			src, err := openSource(cfg)
			if err != nil {
				return err
			}

			app := tui.NewApp(quotes.NewSearcher(src), cfg)
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = p.Run()
			return err
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to configuration file")
	cmd.PersistentFlags().String("source", "", "Quote document location (overrides config)")
	cmd.Flags().Bool("quiet", false, "Skip startup banner")

	cmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newLookupCmd(),
		newImportCmd(),
		newFindCmd(),
		newTopicsCmd(),
		newExportCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", tui.AppName, Version)
			fmt.Fprintln(out, "Motivational quote search")
			fmt.Fprintln(out, "github.com/pders01/quip")

			var names []string
			for _, p := range source.DefaultRegistry(source.Options{}).Providers() {
				names = append(names, p.Name())
			}
			sort.Strings(names)
			fmt.Fprintf(out, "Sources: %s\n", strings.Join(names, ", "))
		},
	}
}

// loadConfig reads the configuration named by --config, applies --source
// and sets up logging and colors from it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if location, _ := cmd.Flags().GetString("source"); location != "" {
		cfg.Source.Location = location
	}

	if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.File); err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	tui.ApplyTheme(cfg.UI.Colors)
	return cfg, nil
}

func sourceOptions(cfg *config.Config) source.Options {
	return source.Options{
		HTTPTimeout:  cfg.Source.HTTPTimeout,
		UserAgent:    cfg.Source.UserAgent,
		AllowPrivate: cfg.Source.AllowPrivate,
		DBTimeout:    cfg.Database.Timeout,
	}
}

func openSource(cfg *config.Config) (quotes.Source, error) {
	src, err := source.DefaultRegistry(sourceOptions(cfg)).Open(cfg.Source.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	debuglog.Infof("using quote source %s", src.Location())
	return src, nil
}
