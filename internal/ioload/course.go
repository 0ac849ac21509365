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

// Courses creates courses of all formations files. A course of an
// unknown university is skipped alone.
func (l *loader) Courses(ctx context.Context) (lifecycle.Summary, error) {
	sum := lifecycle.NewSummary("courses")
	start := time.Now()

	gdb, err := l.db(ctx)
	if err != nil {
		return sum, err
	}
	courses, err := l.reader.Courses(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return sum, CancelledError(err)
		}
		return sum, err
	}

	bar := l.newProgressBar(len(courses), "courses ")
	defer bar.Finish()

	for _, c := range courses {
		if err = ctx.Err(); err != nil {
			return sum, CancelledError(err)
		}
		o, err := createCourse(gdb, c)
		if err != nil {
			return sum, err
		}
		sum.Add(o)
		bar.Increment()
	}

	l.finish(sum, start)
	return sum, nil
}

func createCourse(
	gdb *gorm.DB,
	c dataset.Course,
) (lifecycle.Outcome, error) {
	var o lifecycle.Outcome

	univ, ok, err := findUniversity(gdb, c.University)
	if err != nil {
		return o, err
	}
	if !ok {
		o.Kind = lifecycle.Skipped
		diagnose(&o, fmt.Sprintf(
			"course %q: university %s isn't in the database yet",
			c.Name, c.University,
		))
		return o, nil
	}

	course := schema.Course{
		Name:         c.Name,
		Description:  c.Description,
		Prerequisite: c.Prerequisite,
		YearsOfStudy: c.YearsOfStudy,
		Faculty:      c.Faculty,
		UniversityID: univ.ID,
		Fields:       fields(c.Fields),
		Professions:  professions(c.Roles),
	}
	if err = gdb.Create(&course).Error; err != nil {
		return o, CreateError("course", c.Name, err)
	}

	o.Kind = lifecycle.Created
	o.Links = len(course.Fields) + len(course.Professions)
	return o, nil
}
