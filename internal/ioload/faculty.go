package ioload

import (
	"context"
	"fmt"
	"time"

	"github.com/gnames/opendata/pkg/dataset"
	"github.com/gnames/opendata/pkg/lifecycle"
	"github.com/gnames/opendata/pkg/schema"
	"gorm.io/gorm"
)

// Faculties creates faculties of every faculties.yml entry. The first
// faculty with an unknown city or university stops its entry: it and the
// rest of the entry's faculties are skipped. Other entries are not
// affected.
func (l *loader) Faculties(ctx context.Context) (lifecycle.Summary, error) {
	sum := lifecycle.NewSummary("faculties")
	start := time.Now()

	gdb, err := l.db(ctx)
	if err != nil {
		return sum, err
	}
	groups, err := l.reader.Faculties()
	if err != nil {
		return sum, err
	}

	bar := l.newProgressBar(len(groups), "faculties ")
	defer bar.Finish()

	for _, g := range groups {
		if err = ctx.Err(); err != nil {
			return sum, CancelledError(err)
		}
		outcomes, err := createFacultyGroup(gdb, g)
		for _, o := range outcomes {
			sum.Add(o)
		}
		if err != nil {
			return sum, err
		}
		bar.Increment()
	}

	l.finish(sum, start)
	return sum, nil
}

// createFacultyGroup returns one outcome per faculty of the entry.
func createFacultyGroup(
	gdb *gorm.DB,
	g dataset.FacultyGroup,
) ([]lifecycle.Outcome, error) {
	res := make([]lifecycle.Outcome, 0, len(g.Faculties))
	for i, f := range g.Faculties {
		o, err := createFaculty(gdb, g.University, f)
		if err != nil {
			return res, err
		}
		res = append(res, o)
		if o.Kind == lifecycle.Skipped {
			for range g.Faculties[i+1:] {
				res = append(res, lifecycle.Outcome{Kind: lifecycle.Skipped})
			}
			break
		}
	}
	return res, nil
}

// createFaculty resolves the city first and the university second, the
// first miss decides the diagnostic.
func createFaculty(
	gdb *gorm.DB,
	univName string,
	f dataset.Faculty,
) (lifecycle.Outcome, error) {
	var o lifecycle.Outcome

	city, ok, err := findCity(gdb, f.City)
	if err != nil {
		return o, err
	}
	if !ok {
		o.Kind = lifecycle.Skipped
		diagnose(&o, fmt.Sprintf(
			"faculty %s of %s: city %s isn't in the database yet",
			f.ShortName, univName, f.City,
		))
		return o, nil
	}

	univ, ok, err := findUniversity(gdb, univName)
	if err != nil {
		return o, err
	}
	if !ok {
		o.Kind = lifecycle.Skipped
		diagnose(&o, fmt.Sprintf(
			"faculty %s: university %s isn't in the database yet",
			f.ShortName, univName,
		))
		return o, nil
	}

	fac := schema.Faculty{
		ShortName:    f.ShortName,
		LongName:     f.Name,
		CityID:       city.ID,
		UniversityID: univ.ID,
		Fields:       fields(f.Fields),
	}
	if err = gdb.Create(&fac).Error; err != nil {
		return o, CreateError("faculty", f.ShortName, err)
	}

	o.Kind = lifecycle.Created
	o.Links = len(fac.Fields)
	return o, nil
}
