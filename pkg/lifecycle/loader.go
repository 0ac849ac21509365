package lifecycle

import (
	"context"
)

// Loader imports datasets into the store.
type Loader interface {
	// Load runs Provinces, Universities, Faculties and Courses in this
	// order and returns a report with their summaries. It stops at the
	// first fatal error.
	Load(ctx context.Context) (*Report, error)

	// Provinces creates the geographic hierarchy from provinces.yml.
	Provinces(ctx context.Context) (Summary, error)

	// Universities creates universities and links them to cities.
	Universities(ctx context.Context) (Summary, error)

	// Faculties creates faculties linked to cities and universities.
	Faculties(ctx context.Context) (Summary, error)

	// Courses creates courses from the formations directory.
	Courses(ctx context.Context) (Summary, error)
}

// Reporter shows and wipes loaded data.
type Reporter interface {
	// Display writes total counts of provinces, universities, faculties
	// and courses.
	Display(ctx context.Context) (Counts, error)

	// Delete removes all provinces, universities, faculties and courses
	// together with their dependent rows. It returns counts after
	// deletion.
	Delete(ctx context.Context) (Counts, error)
}
