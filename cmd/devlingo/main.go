package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/japaniel/devlingo/pkg/config"
	"github.com/japaniel/devlingo/pkg/corpus"
	"github.com/japaniel/devlingo/pkg/db"
	"github.com/japaniel/devlingo/pkg/generate"
	"github.com/japaniel/devlingo/pkg/phrase"
	"github.com/japaniel/devlingo/pkg/reading"
	"github.com/japaniel/devlingo/pkg/writer"
)

// cli carries flag values and shared state between commands.
type cli struct {
	configPath string
	verbose    bool
	outDir     string
	pattern    string
	catalog    string
	fromDir    string
	force      bool

	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer

	// registry is swapped in tests.
	registry func() *corpus.Registry
}

func newRootCmd(out io.Writer) *cobra.Command {
	root, _ := buildRoot(out)
	return root
}

func buildRoot(out io.Writer) (*cobra.Command, *cli) {
	c := &cli{out: out, registry: corpus.Default}

	root := &cobra.Command{
		Use:   "devlingo",
		Short: "Generate DevLingo phrase JSON files",
		Long: `devlingo writes the built-in workplace phrase corpus (English phrase,
usage context and ten translations per record) to one JSON file per category.

Run without a subcommand to generate.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runGenerate,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultPath, "Path to YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	addOutputFlags(root, c)
	root.Flags().StringVar(&c.catalog, "catalog", "", "Also export the corpus to this SQLite file")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Validate the corpus and write category files",
		Args:  cobra.NoArgs,
		RunE:  c.runGenerate,
	}
	addOutputFlags(generateCmd, c)
	generateCmd.Flags().StringVar(&c.catalog, "catalog", "", "Also export the corpus to this SQLite file")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the corpus without writing anything",
		Args:  cobra.NoArgs,
		RunE:  c.runValidate,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print phrase counts per category and difficulty",
		Long: `Print phrase counts per category and difficulty for the built-in corpus,
or, with --from, for the category files already written to a directory,
or, with --catalog, for an exported SQLite catalog.`,
		Args: cobra.NoArgs,
		RunE: c.runStats,
	}
	statsCmd.Flags().StringVar(&c.fromDir, "from", "", "Read counts from generated files in this directory")
	statsCmd.Flags().StringVar(&c.pattern, "pattern", "", "File name pattern of the generated files")
	statsCmd.Flags().StringVar(&c.catalog, "catalog", "", "Read counts from an exported SQLite catalog")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		Args:  cobra.NoArgs,
		RunE:  c.runInit,
	}
	initCmd.Flags().BoolVar(&c.force, "force", false, "Overwrite an existing config file")

	root.AddCommand(generateCmd, validateCmd, statsCmd, initCmd)
	return root, c
}

func addOutputFlags(cmd *cobra.Command, c *cli) {
	cmd.Flags().StringVarP(&c.outDir, "out", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&c.pattern, "pattern", "", `Category file name pattern, e.g. "phrases_%s.json"`)
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.outDir != "" {
		cfg.OutputDir = c.outDir
	}
	if c.pattern != "" {
		cfg.FilePattern = c.pattern
	}
	if c.catalog != "" {
		cfg.Catalog.Path = c.catalog
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.cfg = cfg

	c.logger, err = newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if lc.Level != "" {
		lvl, err := zapcore.ParseLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc.Build()
}

func (c *cli) runGenerate(cmd *cobra.Command, args []string) error {
	w := writer.New(c.cfg.OutputDir, c.cfg.FilePattern)
	w.Logger = c.logger

	g := generate.NewGenerator(c.registry(), w)
	g.Logger = c.logger

	if path := c.cfg.Catalog.Path; path != "" {
		g.OpenCatalog = func() (*sql.DB, error) {
			conn, err := db.Open(path)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return conn, nil
		}

		if c.cfg.Catalog.Readings {
			a, err := reading.NewAnnotator()
			if err != nil {
				return fmt.Errorf("create reading annotator: %w", err)
			}
			g.Reading = a.Reading
		}
	}

	res, err := g.Run(cmd.Context())
	if err != nil {
		return err
	}
	for _, f := range res.Files {
		fmt.Fprintf(c.out, "Wrote %d %s phrases to %s\n", f.Records, f.Category, f.Path)
	}
	if res.CatalogExported {
		fmt.Fprintf(c.out, "Exported catalog to %s\n", c.cfg.Catalog.Path)
	}
	fmt.Fprintf(c.out, "Generation complete. %d phrases in %d files.\n", res.Records, len(res.Files))
	return nil
}

func (c *cli) runValidate(cmd *cobra.Command, args []string) error {
	reg := c.registry()
	if err := corpus.Validate(reg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	fmt.Fprintf(c.out, "Corpus valid: %d phrases in %d categories.\n", reg.Len(), len(reg.Categories()))
	return nil
}

func (c *cli) runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(c.configPath); err == nil && !c.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", c.configPath)
	}
	if err := c.cfg.Save(c.configPath); err != nil {
		return fmt.Errorf("write config %s: %w", c.configPath, err)
	}
	fmt.Fprintf(c.out, "Wrote config to %s\n", c.configPath)
	return nil
}

func (c *cli) runStats(cmd *cobra.Command, args []string) error {
	counts := make(map[phrase.Category]map[phrase.Difficulty]int)
	var order []phrase.Category

	switch {
	case c.catalog != "":
		if _, err := os.Stat(c.catalog); err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		conn, err := db.Open(c.catalog)
		if err != nil {
			return fmt.Errorf("open catalog %s: %w", c.catalog, err)
		}
		defer conn.Close()
		for _, cat := range phrase.Categories() {
			byDiff, err := db.CountByDifficulty(conn, string(cat))
			if err != nil {
				return err
			}
			if len(byDiff) == 0 {
				continue
			}
			m := make(map[phrase.Difficulty]int)
			for d, n := range byDiff {
				m[phrase.Difficulty(d)] = n
			}
			order = append(order, cat)
			counts[cat] = m
		}
	case c.fromDir != "":
		w := writer.New(c.fromDir, c.cfg.FilePattern)
		for _, cat := range phrase.Categories() {
			records, err := writer.ReadCategory(w.Path(cat))
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return err
			}
			order = append(order, cat)
			counts[cat] = countDifficulties(records)
		}
	default:
		reg := c.registry()
		for _, cat := range reg.Categories() {
			order = append(order, cat)
			counts[cat] = countDifficulties(reg.Records(cat))
		}
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tEASY\tMEDIUM\tHARD\tTOTAL")
	total := 0
	for _, cat := range order {
		m := counts[cat]
		sum := m[phrase.Easy] + m[phrase.Medium] + m[phrase.Hard]
		total += sum
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", cat, m[phrase.Easy], m[phrase.Medium], m[phrase.Hard], sum)
	}
	fmt.Fprintf(tw, "all\t\t\t\t%d\n", total)
	return tw.Flush()
}

func countDifficulties(records []phrase.Record) map[phrase.Difficulty]int {
	m := make(map[phrase.Difficulty]int)
	for _, r := range records {
		m[r.Difficulty]++
	}
	return m
}

func main() {
	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		reportError(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// reportError prints err, one line per combined validation problem.
func reportError(w io.Writer, err error) {
	var multi interface{ Errors() []error }
	if errors.As(err, &multi) {
		errs := multi.Errors()
		fmt.Fprintf(w, "Error: %d problems found\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(w, "  %v\n", e)
		}
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
