package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pders01/quip/internal/config"
	"github.com/pders01/quip/internal/debuglog"
	"github.com/pders01/quip/internal/quotes"
	"github.com/pders01/quip/internal/search"
	"github.com/pders01/quip/internal/source"
	"github.com/pders01/quip/internal/storage"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	generate := &cobra.Command{
		Use:   "generate [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.GenerateDefaultConfig(path); err != nil {
				return fmt.Errorf("failed to generate config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated default configuration at: %s\n", path)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer debuglog.Close()

			out, err := config.Render(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(generate, show)
	return cmd
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <topic>",
		Short: "Print the quotes for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer debuglog.Close()

			src, err := openSource(cfg)
			if err != nil {
				return err
			}

			records, err := quotes.NewSearcher(src).Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				printUserError(cmd.ErrOrStderr(), quotes.UserMessage(err))
				return err
			}
			printQuotes(cmd.OutOrStdout(), records)
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <location>",
		Short: "Store a quote document in the local database",
		Long: `Import loads a quote document from a file path or http(s) URL and
stores it in the database at database.path. Set source.location to
bolt://<database.path> to search the stored copy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer debuglog.Close()

			if cfg.Database.Path == "" {
				return errors.New("database.path is not set")
			}

			src, err := source.DefaultRegistry(sourceOptions(cfg)).Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			doc, err := src.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", src.Location(), err)
			}

			store, err := storage.NewStore(cfg.Database.Path, cfg.Database.Timeout)
			if err != nil {
				return err
			}
			defer store.Close()

			if prev, err := store.Info(); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Replacing %s imported %s\n",
					prev.Origin, prev.ImportedAt.Format(time.RFC3339))
			}

			info, err := store.ImportDocument(doc, src.Location())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d quotes across %d topics into %s\n",
				info.Quotes, info.Topics, cfg.Database.Path)
			return nil
		},
	}
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <words...>",
		Short: "Full-text search over quote text, authors and topics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer debuglog.Close()

			limit, _ := cmd.Flags().GetInt("limit")

			doc, err := loadDocument(cmd, cfg)
			if err != nil {
				return err
			}

			engine, err := search.NewEngine(doc)
			if err != nil {
				return err
			}
			defer engine.Close()

			hits, err := findQuotes(engine, strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			if len(hits) == 0 {
				printUserError(cmd.ErrOrStderr(), quotes.MsgNotFound)
				return quotes.ErrNotFound
			}
			printHits(cmd.OutOrStdout(), hits)
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of results")
	return cmd
}

func findQuotes(s search.Searcher, query string, limit int) ([]search.Hit, error) {
	if stats, ok := s.(search.DebugStatser); ok {
		if n, err := stats.DocCount(); err == nil {
			debuglog.Debugf("searching %d indexed quotes for %q", n, query)
		}
	}
	return s.Search(query, limit)
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the topics in the quote document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer debuglog.Close()

			doc, err := loadDocument(cmd, cfg)
			if err != nil {
				return err
			}
			for _, topic := range doc.Topics() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", topic, len(doc[topic]))
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the quote document as JSON to stdout",
		Long: `Export loads the document from source.location and writes it as JSON.
Combined with --source bolt://<path> it dumps a previously imported copy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer debuglog.Close()

			doc, err := loadDocument(cmd, cfg)
			if err != nil {
				return err
			}
			return quotes.Encode(cmd.OutOrStdout(), doc)
		},
	}
}

// loadDocument loads the whole document from the configured source. A
// failure prints the load message and wraps quotes.ErrLoad.
func loadDocument(cmd *cobra.Command, cfg *config.Config) (quotes.Document, error) {
	src, err := openSource(cfg)
	if err != nil {
		return nil, err
	}
	doc, err := src.Load(cmd.Context())
	if err != nil {
		debuglog.WithFields(map[string]interface{}{"location": src.Location()}).
			Errorf("failed to load quotes: %v", err)
		printUserError(cmd.ErrOrStderr(), quotes.MsgLoadFailed)
		return nil, fmt.Errorf("%w: %w", quotes.ErrLoad, err)
	}
	return doc, nil
}
