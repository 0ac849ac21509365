package ioload

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gnames/opendata/pkg/dataset"
	"github.com/gnames/opendata/pkg/lifecycle"
	"github.com/gnames/opendata/pkg/schema"
	"gorm.io/gorm"
)

// Universities creates universities and links each of them to the cities
// it lists. A city that is not in the store is reported and skipped,
// the university is created anyway.
func (l *loader) Universities(ctx context.Context) (lifecycle.Summary, error) {
	sum := lifecycle.NewSummary("universities")
	start := time.Now()

	gdb, err := l.db(ctx)
	if err != nil {
		return sum, err
	}
	univs, err := l.reader.Universities()
	if err != nil {
		return sum, err
	}

	bar := l.newProgressBar(len(univs), "universities ")
	defer bar.Finish()

	for _, u := range univs {
		if err = ctx.Err(); err != nil {
			return sum, CancelledError(err)
		}
		o, err := createUniversity(gdb, u)
		if err != nil {
			return sum, err
		}
		sum.Add(o)
		bar.Increment()
	}

	l.finish(sum, start)
	return sum, nil
}

func createUniversity(
	gdb *gorm.DB,
	u dataset.University,
) (lifecycle.Outcome, error) {
	o := lifecycle.Outcome{Kind: lifecycle.Created}
	univ := schema.University{
		ShortName: u.ShortName,
		LongName:  u.Name,
		Address:   u.Address,
		Phone:     u.Phone,
		Email:     u.Email,
		URL:       u.URL,
		Status:    u.Type,
	}
	if err := gdb.Create(&univ).Error; err != nil {
		return o, CreateError("university", u.ShortName, err)
	}

	for _, name := range u.Cities {
		city, ok, err := findCity(gdb, name)
		if err != nil {
			return o, err
		}
		if !ok {
			diagnose(&o, fmt.Sprintf(
				"university %s: city %s isn't in the database yet",
				u.ShortName, name,
			))
			continue
		}
		err = gdb.Model(&univ).Association("Cities").Append(&city)
		if err != nil {
			return o, CreateError("university city link", u.ShortName, err)
		}
		o.Links++
		slog.Info("City is in the database",
			"university", u.ShortName, "city", city.Name)
	}
	return o, nil
}
