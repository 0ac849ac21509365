package lifecycle

import (
	"time"

	"github.com/google/uuid"
)

// OutcomeKind tells if an item was stored.
type OutcomeKind int

const (
	Created OutcomeKind = iota
	Skipped
)

// String implements fmt.Stringer.
func (k OutcomeKind) String() string {
	switch k {
	case Created:
		return "created"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome is the result of one resolve-and-create step.
type Outcome struct {
	Kind OutcomeKind

	// Diagnostics explain a skipped item or missing links.
	// Created items can have them too.
	Diagnostics []string

	// Links is the number of associations made for the item.
	Links int
}

// Summary aggregates outcomes of one loader.
type Summary struct {
	// Entity is the plural name of loaded records, e.g. "faculties".
	Entity      string
	Created     int
	Skipped     int
	Links       int
	Diagnostics []string
}

// NewSummary creates an empty summary for an entity.
func NewSummary(entity string) Summary {
	return Summary{Entity: entity}
}

// Add records an outcome.
func (s *Summary) Add(o Outcome) {
	switch o.Kind {
	case Created:
		s.Created++
	case Skipped:
		s.Skipped++
	}
	s.Links += o.Links
	s.Diagnostics = append(s.Diagnostics, o.Diagnostics...)
}

// Report is the result of a whole load run.
type Report struct {
	RunID     uuid.UUID
	Summaries []Summary
	Duration  time.Duration
}

// NewReport creates a report with a fresh run ID.
func NewReport() *Report {
	return &Report{RunID: uuid.New()}
}

// Counts holds row totals of the four reported kinds.
type Counts struct {
	Provinces    int64
	Universities int64
	Faculties    int64
	Courses      int64
}
