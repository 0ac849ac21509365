// Package ioload implements lifecycle.Loader. It reads datasets with a
// dataset.Reader and creates store records through GORM.
// Loading is sequential, later loaders resolve records created by
// earlier ones.
package ioload

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/opendata/pkg/config"
	"github.com/gnames/opendata/pkg/dataset"
	"github.com/gnames/opendata/pkg/db"
	"github.com/gnames/opendata/pkg/lifecycle"
	"gorm.io/gorm"
)

type loader struct {
	cfg      *config.Config
	operator db.Operator
	reader   dataset.Reader

	// progress turns on progress bars.
	progress bool
}

// Option customizes a Loader.
type Option func(*loader)

// OptProgress shows progress bars on stderr while loading.
func OptProgress(b bool) Option {
	return func(l *loader) {
		l.progress = b
	}
}

// New creates a Loader.
func New(
	cfg *config.Config,
	op db.Operator,
	r dataset.Reader,
	opts ...Option,
) lifecycle.Loader {
	res := &loader{cfg: cfg, operator: op, reader: r}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Load runs all loaders in dependency order.
func (l *loader) Load(ctx context.Context) (*lifecycle.Report, error) {
	report := lifecycle.NewReport()
	if l.operator.DB() == nil {
		return report, NotConnectedError()
	}

	start := time.Now()
	slog.Info("Starting data load",
		"run_id", report.RunID.String(),
		"data_dir", l.cfg.DataDir,
	)

	steps := []func(context.Context) (lifecycle.Summary, error){
		l.Provinces,
		l.Universities,
		l.Faculties,
		l.Courses,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, CancelledError(err)
		}
		sum, err := step(ctx)
		report.Summaries = append(report.Summaries, sum)
		if err != nil {
			report.Duration = time.Since(start)
			return report, err
		}
	}

	report.Duration = time.Since(start)
	slog.Info("Data load complete",
		"run_id", report.RunID.String(),
		"duration", gnfmt.TimeString(report.Duration.Seconds()),
	)
	return report, nil
}

// db returns a GORM session bound to the context.
func (l *loader) db(ctx context.Context) (*gorm.DB, error) {
	gdb := l.operator.DB()
	if gdb == nil {
		return nil, NotConnectedError()
	}
	return gdb.WithContext(ctx), nil
}

func (l *loader) finish(sum lifecycle.Summary, start time.Time) {
	dur := time.Since(start)
	slog.Info("Loaded dataset",
		"entity", sum.Entity,
		"created", sum.Created,
		"skipped", sum.Skipped,
		"links", sum.Links,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(
		"Created <em>%s</em> %s, skipped %s (%s)",
		humanize.Comma(int64(sum.Created)),
		sum.Entity,
		humanize.Comma(int64(sum.Skipped)),
		gnfmt.TimeString(dur.Seconds()),
	)
}

// diagnose records a lookup problem for the run summary and reports it
// right away.
func diagnose(o *lifecycle.Outcome, diag string) {
	o.Diagnostics = append(o.Diagnostics, diag)
	slog.Warn("Lookup failed", "diagnostic", diag)
	gn.Warn("%s", diag)
}
