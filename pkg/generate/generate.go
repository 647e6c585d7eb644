package generate

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/japaniel/devlingo/pkg/corpus"
	"github.com/japaniel/devlingo/pkg/db"
	"github.com/japaniel/devlingo/pkg/phrase"
	"github.com/japaniel/devlingo/pkg/writer"
)

// File describes one written category file.
type File struct {
	Category phrase.Category
	Path     string
	Records  int
}

// Result summarizes a generation run.
type Result struct {
	Files   []File
	Records int
	// CatalogExported is true when the SQLite catalog was replaced.
	CatalogExported bool
}

// Generator validates the registry and writes it out.
type Generator struct {
	Registry *corpus.Registry
	Writer   *writer.Writer
	// Catalog is an optional SQLite export target. nil disables it unless
	// OpenCatalog is set.
	Catalog *sql.DB
	// OpenCatalog opens the export target once every category file is
	// written, so a failed run never creates it. The connection is closed
	// before Run returns.
	OpenCatalog func() (*sql.DB, error)
	// Reading annotates ja translations in the catalog. nil stores no readings.
	Reading db.ReadingFunc
	// Logger is used for informational messages. nil means no logging.
	Logger *zap.Logger
	// OnProgress is called after each category file with files done and total.
	OnProgress func(current, total int)
}

// NewGenerator creates a Generator writing reg through w.
func NewGenerator(reg *corpus.Registry, w *writer.Writer) *Generator {
	return &Generator{
		Registry: reg,
		Writer:   w,
		Logger:   zap.NewNop(),
	}
}

// Run validates the whole registry and, only if it is clean, writes every
// category file in registry order followed by the optional catalog export.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	log := g.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var res Result
	if err := corpus.Validate(g.Registry); err != nil {
		return res, fmt.Errorf("validation failed: %w", err)
	}
	log.Debug("registry valid", zap.Int("records", g.Registry.Len()))

	categories := g.Registry.Categories()
	for i, c := range categories {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		records := g.Registry.Records(c)
		path, err := g.Writer.WriteCategory(c, records)
		if err != nil {
			return res, fmt.Errorf("write %s: %w", c, err)
		}
		res.Files = append(res.Files, File{Category: c, Path: path, Records: len(records)})
		res.Records += len(records)
		log.Info("category written",
			zap.String("category", string(c)),
			zap.String("path", path),
			zap.Int("records", len(records)))
		if g.OnProgress != nil {
			g.OnProgress(i+1, len(categories))
		}
	}

	conn := g.Catalog
	if conn == nil && g.OpenCatalog != nil {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var err error
		conn, err = g.OpenCatalog()
		if err != nil {
			return res, fmt.Errorf("open catalog: %w", err)
		}
		defer conn.Close()
	}
	if conn != nil {
		if err := db.ReplaceCorpus(ctx, conn, g.Registry.All(), g.Reading); err != nil {
			return res, fmt.Errorf("export catalog: %w", err)
		}
		res.CatalogExported = true
		log.Info("catalog exported", zap.Int("records", res.Records))
	}
	return res, nil
}
