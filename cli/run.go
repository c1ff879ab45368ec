package cli

import (
	"context"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/abiiranathan/cnabsearch/cnab"
	"github.com/abiiranathan/cnabsearch/export"
	"github.com/abiiranathan/cnabsearch/search"
)

// LoadRecords reads the configured CNAB file, or the bundled example when no path is set.
func LoadRecords(ctx context.Context, config *Config) ([]cnab.Record, error) {
	if timeout := config.LoadTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if config.Path == "" {
		return cnab.LoadBytes(config.Example, config.Encoding, ExampleName)
	}
	return cnab.LoadFile(ctx, config.Path, config.Encoding)
}

// Search loads the CNAB file, runs the requested queries, prints the results
// to out and exports the name matches when asked to.
func Search(ctx context.Context, config *Config, out io.Writer) error {
	start := time.Now()

	records, err := LoadRecords(ctx, config)
	if err != nil {
		return err
	}

	q := config.Query()
	results, err := search.Run(ctx, records, q)
	if err != nil {
		return err
	}

	p := NewPrinter(out, config.NoColor)
	p.Segments(results.Segments)
	p.Names(results.Names)

	if config.Export {
		if !q.HasName() {
			log.Println("Nothing to export: no name was given")
		} else {
			format, filename, err := export.Resolve(config.Format, config.Output)
			if err != nil {
				return err
			}
			if err := export.Write(filename, format, results.Names); err != nil {
				return err
			}
			p.Exported(filename, len(results.Names))
		}
	}

	logger := slog.New(slog.NewTextHandler(log.Writer(), &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Info("",
		"latency", time.Since(start).String(),
		"records", len(records),
		"segments", len(results.Segments),
		"names", len(results.Names))
	return nil
}

// Layout prints the field table used by the name query.
func Layout(config *Config, out io.Writer) {
	NewPrinter(out, config.NoColor).Layout(cnab.Layout())
}
