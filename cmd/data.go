/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/opendata/internal/iodataset"
	"github.com/gnames/opendata/internal/iodb"
	"github.com/gnames/opendata/internal/iofs"
	"github.com/gnames/opendata/internal/ioload"
	"github.com/gnames/opendata/internal/ioreport"
	"github.com/gnames/opendata/internal/ioschema"
	"github.com/gnames/opendata/pkg/db"
	"github.com/gnames/opendata/pkg/errcode"
	"github.com/gnames/opendata/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// Actions accepted by --data.
const (
	actionLoad    = "load"
	actionDisplay = "display"
	actionDelete  = "delete"
)

func runRoot(cmd *cobra.Command, data string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Actions are case-sensitive, --data LOAD is an unknown action.
	switch data {
	case "":
		slog.Info("No action given, nothing to do")
		return nil
	case actionLoad:
		return runLoad(ctx, cmd)
	case actionDisplay:
		return runDisplay(ctx, cmd)
	case actionDelete:
		return runDelete(ctx, cmd)
	default:
		return unknownActionError(data)
	}
}

// connect opens the store and creates missing tables.
func connect(ctx context.Context) (db.Operator, error) {
	op := iodb.NewOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	if err := ioschema.NewManager(op).Create(ctx); err != nil {
		op.Close()
		return nil, err
	}
	return op, nil
}

func runLoad(ctx context.Context, cmd *cobra.Command) error {
	paths := cfg.DatasetPaths()
	if err := iofs.CheckDataDir(paths.Dir); err != nil {
		return err
	}

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Loading datasets from <em>%s</em>", cfg.DataDir)
	r := iodataset.New(paths, cfg.JobsNumber)
	l := ioload.New(cfg, op, r, ioload.OptProgress(true))

	report, err := l.Load(ctx)
	if report != nil {
		printReport(report)
	}
	return err
}

func runDisplay(ctx context.Context, cmd *cobra.Command) error {
	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	_, err = ioreport.New(op, cmd.OutOrStdout()).Display(ctx)
	return err
}

func runDelete(ctx context.Context, cmd *cobra.Command) error {
	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	_, err = ioreport.New(op, cmd.OutOrStdout()).Delete(ctx)
	return err
}

func printReport(r *lifecycle.Report) {
	var lines []string
	for _, s := range r.Summaries {
		line := fmt.Sprintf("  %-13s created %s, skipped %s, links %s",
			s.Entity+":",
			humanize.Comma(int64(s.Created)),
			humanize.Comma(int64(s.Skipped)),
			humanize.Comma(int64(s.Links)),
		)
		lines = append(lines, line)
	}
	var diags int
	for _, s := range r.Summaries {
		diags += len(s.Diagnostics)
	}

	gn.Info(`Load summary (run <em>%s</em>)
%s
Diagnostics: %s. Elapsed time: <em>%s</em>`,
		r.RunID.String(),
		strings.Join(lines, "\n"),
		humanize.Comma(int64(diags)),
		gnfmt.TimeString(r.Duration.Seconds()),
	)
}

func unknownActionError(action string) error {
	msg := "Unknown action <em>%s</em>, use one of: %s, %s, %s"
	vars := []any{action, actionLoad, actionDisplay, actionDelete}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.CLIUnknownActionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown action %q",
			fn.Name(), action),
	}
}

