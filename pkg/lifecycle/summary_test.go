package lifecycle_test

import (
	"testing"

	"github.com/gnames/opendata/pkg/lifecycle"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSummaryAdd(t *testing.T) {
	s := lifecycle.NewSummary("universities")
	outcomes := []lifecycle.Outcome{
		{Kind: lifecycle.Created, Links: 2},
		{
			Kind:  lifecycle.Created,
			Links: 1,
			Diagnostics: []string{
				"city KRIBI isn't in the database yet",
				"city EDEA isn't in the database yet",
			},
		},
		{
			Kind:        lifecycle.Skipped,
			Diagnostics: []string{"university UBDA isn't in the database yet"},
		},
		{Kind: lifecycle.Skipped},
	}
	for _, v := range outcomes {
		s.Add(v)
	}

	assert.Equal(t, "universities", s.Entity)
	assert.Equal(t, 2, s.Created)
	assert.Equal(t, 2, s.Skipped)
	assert.Equal(t, 3, s.Links)
	assert.Len(t, s.Diagnostics, 3)
}

func TestOutcomeKindString(t *testing.T) {
	tests := []struct {
		kind lifecycle.OutcomeKind
		res  string
	}{
		{lifecycle.Created, "created"},
		{lifecycle.Skipped, "skipped"},
		{lifecycle.OutcomeKind(42), "unknown"},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, v.kind.String())
	}
}

func TestNewReport(t *testing.T) {
	r1 := lifecycle.NewReport()
	r2 := lifecycle.NewReport()
	assert.NotEqual(t, uuid.Nil, r1.RunID)
	assert.NotEqual(t, r1.RunID, r2.RunID)
	assert.Empty(t, r1.Summaries)
}
