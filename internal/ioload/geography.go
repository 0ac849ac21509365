package ioload

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/opendata/pkg/dataset"
	"github.com/gnames/opendata/pkg/lifecycle"
	"github.com/gnames/opendata/pkg/schema"
	"gorm.io/gorm"
)

// geoCounts keeps numbers of created geography rows.
type geoCounts struct {
	cities, districts, neighborhoods int
}

// Provinces creates provinces with their cities, districts and
// neighborhoods. Every run creates a new tree, nothing is deduplicated.
func (l *loader) Provinces(ctx context.Context) (lifecycle.Summary, error) {
	sum := lifecycle.NewSummary("provinces")
	start := time.Now()

	gdb, err := l.db(ctx)
	if err != nil {
		return sum, err
	}
	provs, err := l.reader.Provinces()
	if err != nil {
		return sum, err
	}

	bar := l.newProgressBar(len(provs), "provinces ")
	defer bar.Finish()

	var counts geoCounts
	for _, p := range provs {
		if err = ctx.Err(); err != nil {
			return sum, CancelledError(err)
		}
		if err = l.createProvince(gdb, p, &counts); err != nil {
			return sum, err
		}
		sum.Add(lifecycle.Outcome{Kind: lifecycle.Created})
		bar.Increment()
	}

	slog.Info("Created geography",
		"provinces", sum.Created,
		"cities", counts.cities,
		"districts", counts.districts,
		"neighborhoods", counts.neighborhoods,
	)
	l.finish(sum, start)
	return sum, nil
}

// createProvince stores parents before children so that every foreign
// key points to an existing row.
func (l *loader) createProvince(
	gdb *gorm.DB,
	p dataset.Province,
	counts *geoCounts,
) error {
	prov := schema.Province{Name: p.Name}
	if err := gdb.Create(&prov).Error; err != nil {
		return CreateError("province", p.Name, err)
	}

	for _, c := range p.Communes {
		city := schema.City{Name: c.Name, ProvinceID: prov.ID}
		if err := gdb.Create(&city).Error; err != nil {
			return CreateError("city", c.Name, err)
		}
		counts.cities++

		for _, a := range c.Arrondissements {
			dist := schema.District{Name: a.Name, CityID: city.ID}
			if err := gdb.Create(&dist).Error; err != nil {
				return CreateError("district", a.Name, err)
			}
			counts.districts++

			if len(a.Quartiers) == 0 {
				continue
			}
			hoods := make([]schema.Neighborhood, len(a.Quartiers))
			for i, q := range a.Quartiers {
				hoods[i] = schema.Neighborhood{Name: q.Name, DistrictID: dist.ID}
			}
			err := gdb.CreateInBatches(&hoods, l.cfg.Database.BatchSize).Error
			if err != nil {
				return CreateError("neighborhoods of district", a.Name, err)
			}
			counts.neighborhoods += len(hoods)
		}
	}
	return nil
}
