// Package ioreport implements lifecycle.Reporter: row counts and
// wiping of loaded data.
package ioreport

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gnames/opendata/pkg/db"
	"github.com/gnames/opendata/pkg/lifecycle"
	"github.com/gnames/opendata/pkg/schema"
	"gorm.io/gorm"
)

type reporter struct {
	operator db.Operator
	w        io.Writer
}

// New creates a Reporter that prints to w.
func New(op db.Operator, w io.Writer) lifecycle.Reporter {
	return &reporter{operator: op, w: w}
}

// kind is one reported entity. Order of kinds is the order of output and
// of deletion.
type kind struct {
	label string
	model any
	set   func(*lifecycle.Counts, int64)
}

var kinds = []kind{
	{
		label: "provinces",
		model: &schema.Province{},
		set:   func(c *lifecycle.Counts, n int64) { c.Provinces = n },
	},
	{
		label: "universities",
		model: &schema.University{},
		set:   func(c *lifecycle.Counts, n int64) { c.Universities = n },
	},
	{
		label: "faculties",
		model: &schema.Faculty{},
		set:   func(c *lifecycle.Counts, n int64) { c.Faculties = n },
	},
	{
		label: "courses",
		model: &schema.Course{},
		set:   func(c *lifecycle.Counts, n int64) { c.Courses = n },
	},
}

// Display prints `Total <kind> <n>` lines. It does not change the store.
func (r *reporter) Display(ctx context.Context) (lifecycle.Counts, error) {
	var res lifecycle.Counts
	gdb, err := r.db(ctx)
	if err != nil {
		return res, err
	}

	for _, k := range kinds {
		n, err := countRows(gdb, k)
		if err != nil {
			return res, err
		}
		k.set(&res, n)
		fmt.Fprintf(r.w, "Total %s %d\n", k.label, n)
	}
	return res, nil
}

// Delete removes all rows of every kind. Dependent rows go away through
// cascading foreign keys, Field and Profession rows stay.
func (r *reporter) Delete(ctx context.Context) (lifecycle.Counts, error) {
	var res lifecycle.Counts
	gdb, err := r.db(ctx)
	if err != nil {
		return res, err
	}

	for _, k := range kinds {
		n, err := countRows(gdb, k)
		if err != nil {
			return res, err
		}
		fmt.Fprintf(r.w, "Deleting %d %s...\n", n, k.label)

		q := gdb.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(k.model)
		if q.Error != nil {
			return res, DeleteError(k.label, q.Error)
		}
		slog.Info("Deleted rows", "kind", k.label, "rows", q.RowsAffected)

		n, err = countRows(gdb, k)
		if err != nil {
			return res, err
		}
		k.set(&res, n)
		fmt.Fprintf(r.w, "Total %s after delete %d\n", k.label, n)
	}
	return res, nil
}

func (r *reporter) db(ctx context.Context) (*gorm.DB, error) {
	gdb := r.operator.DB()
	if gdb == nil {
		return nil, NotConnectedError()
	}
	return gdb.WithContext(ctx), nil
}

func countRows(gdb *gorm.DB, k kind) (int64, error) {
	var res int64
	if err := gdb.Model(k.model).Count(&res).Error; err != nil {
		return 0, CountError(k.label, err)
	}
	return res, nil
}
