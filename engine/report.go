package engine

import (
	"fmt"
	"sync"
	"time"
)

// ErrReportNotFound is returned by ReportStore.Get for an unknown run id.
var ErrReportNotFound = fmt.Errorf("report not found")

// Outcome classifies how a run ended.
type Outcome string

const (
	// OutcomeCompleted means the run reached MaxSteps.
	OutcomeCompleted Outcome = "completed"

	// OutcomeStopped means the stop condition ended the run early.
	OutcomeStopped Outcome = "stopped"

	// OutcomeCanceled means the context was canceled mid-run.
	OutcomeCanceled Outcome = "canceled"

	// OutcomeFailed means a hook terminated the run with an error.
	OutcomeFailed Outcome = "failed"
)

// Report is the summary of one run. It records how the run ended, not the
// simulation state itself; state persistence stays out of scope.
type Report struct {
	// RunID identifies the run.
	RunID string

	// Steps is the number of completed steps.
	Steps int

	// Duration is the wall-clock time the run took.
	Duration time.Duration

	// Population is the final registry size, dead agents included.
	Population int

	// Live is the final live-agent count.
	Live int

	// Outcome classifies the ending.
	Outcome Outcome

	// Err is the terminal error for canceled or failed runs, nil otherwise.
	Err error
}

// Clone returns a copy of the report.
func (r *Report) Clone() *Report {
	cp := *r
	return &cp
}

// ReportStore persists run reports.
type ReportStore interface {
	// Save stores a report under its run id, overwriting any previous one.
	Save(report *Report) error

	// Get returns the report for a run id, or ErrReportNotFound.
	Get(runID string) (*Report, error)

	// List returns all stored reports in save order.
	List() []*Report
}

// InMemoryReportStore is a volatile ReportStore keeping reports in a process
// local map. It is safe for concurrent access and returns clones so callers
// cannot mutate stored state.
type InMemoryReportStore struct {
	mu      sync.RWMutex
	reports map[string]*Report
	order   []string
}

// NewInMemoryReportStore constructs an empty in-memory report store.
func NewInMemoryReportStore() *InMemoryReportStore {
	return &InMemoryReportStore{reports: make(map[string]*Report)}
}

// Save stores a clone of the report.
func (s *InMemoryReportStore) Save(report *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[report.RunID]; !ok {
		s.order = append(s.order, report.RunID)
	}
	s.reports[report.RunID] = report.Clone()
	return nil
}

// Get returns a clone of the report for runID.
func (s *InMemoryReportStore) Get(runID string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[runID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, runID)
	}
	return report.Clone(), nil
}

// List returns clones of all reports in save order.
func (s *InMemoryReportStore) List() []*Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Report, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.reports[id].Clone())
	}
	return out
}
