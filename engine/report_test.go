package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ ReportStore = (*InMemoryReportStore)(nil)

func TestInMemoryReportStore_SaveGet(t *testing.T) {
	s := NewInMemoryReportStore()

	_, err := s.Get("missing")
	require.ErrorIs(t, err, ErrReportNotFound)

	report := &Report{RunID: "r1", Steps: 10, Duration: time.Second, Population: 5, Live: 3, Outcome: OutcomeCompleted}
	require.NoError(t, s.Save(report))

	got, err := s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, report, got)

	// Clones both ways: mutating either side leaves the store untouched.
	got.Steps = 99
	report.Steps = 77
	again, err := s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, 10, again.Steps)
}

func TestInMemoryReportStore_ListKeepsSaveOrder(t *testing.T) {
	s := NewInMemoryReportStore()
	require.NoError(t, s.Save(&Report{RunID: "a", Outcome: OutcomeCompleted}))
	require.NoError(t, s.Save(&Report{RunID: "b", Outcome: OutcomeStopped}))
	require.NoError(t, s.Save(&Report{RunID: "a", Outcome: OutcomeFailed})) // overwrite keeps slot

	reports := s.List()
	require.Len(t, reports, 2)
	assert.Equal(t, "a", reports[0].RunID)
	assert.Equal(t, OutcomeFailed, reports[0].Outcome)
	assert.Equal(t, "b", reports[1].RunID)
}
