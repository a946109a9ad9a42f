package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/agentscape/core"
	"github.com/hupe1980/agentscape/logging"
)

// ErrRunNotFound is returned by Cancel for an unknown run id.
var ErrRunNotFound = fmt.Errorf("run not found")

// StepEvent is emitted once per completed step of a run.
type StepEvent struct {
	// RunID identifies the run the event belongs to.
	RunID string

	// Step is the 1-based step number within the run.
	Step int

	// Time is the world's global clock after the step.
	Time int64

	// Population is the registry size after the step, dead agents included.
	Population int

	// Live is the number of live agents after the step.
	Live int
}

// Options holds configuration overrides passed to New().
type Options struct {
	// MaxSteps caps the number of steps per run.
	MaxSteps int

	// EventBufferSize sets channel buffering for step events.
	EventBufferSize int

	// StopCondition, when set, is checked after every step; a true result
	// ends the run with OutcomeStopped.
	StopCondition func(w *core.World) bool

	// Hooks are registered with the runner's hook manager in order.
	Hooks []Hook

	// Reports receives the summary of every run.
	Reports ReportStore

	// Logger receives runner lifecycle logging.
	Logger logging.Logger
}

// Runner drives worlds through their steps. Public methods are safe for
// concurrent use; each run confines its world to a single goroutine, so the
// lock-free core keeps its single-threaded contract per model instance.
type Runner struct {
	maxSteps        int
	eventBufferSize int
	stopCondition   func(w *core.World) bool
	hooks           *HookManager
	reports         ReportStore
	logger          logging.Logger

	activeRuns map[string]context.CancelFunc
	mu         sync.RWMutex
}

// New constructs a Runner with optional overrides.
func New(optFns ...func(o *Options)) *Runner {
	opts := Options{
		MaxSteps:        100,
		EventBufferSize: 64,
		Reports:         NewInMemoryReportStore(),
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	hooks := NewHookManager()
	for _, h := range opts.Hooks {
		hooks.Register(h)
	}

	return &Runner{
		maxSteps:        opts.MaxSteps,
		eventBufferSize: opts.EventBufferSize,
		stopCondition:   opts.StopCondition,
		hooks:           hooks,
		reports:         opts.Reports,
		logger:          opts.Logger,
		activeRuns:      make(map[string]context.CancelFunc),
	}
}

// Reports returns the runner's report store.
func (r *Runner) Reports() ReportStore { return r.reports }

// Hooks returns the runner's hook manager for late registration. Register
// before starting runs; the manager is not synchronized.
func (r *Runner) Hooks() *HookManager { return r.hooks }

// Run starts an asynchronous run of w and returns its id together with the
// step event stream and a terminal error channel. The events channel closes
// when the run ends; the errors channel then yields at most one error.
func (r *Runner) Run(ctx context.Context, w *core.World) (string, <-chan StepEvent, <-chan error, error) {
	if w == nil {
		return "", nil, nil, fmt.Errorf("nil world")
	}

	runID := uuid.NewString()

	eventsCh := make(chan StepEvent, r.eventBufferSize)
	errorsCh := make(chan error, 1)

	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.activeRuns[runID] = cancel
	r.mu.Unlock()

	r.logger.Debug("run started", "run_id", runID, "population", w.Size(), "max_steps", r.maxSteps)

	go func() {
		defer func() {
			// Deregister before closing so a drained stream implies the run
			// is no longer active.
			r.mu.Lock()
			delete(r.activeRuns, runID)
			r.mu.Unlock()
			close(eventsCh)
			close(errorsCh)
			cancel()
		}()

		report := r.drive(ctx, w, runID, eventsCh)

		if err := r.reports.Save(report); err != nil {
			r.logger.Warn("saving report failed", "run_id", runID, "error", err)
		}
		if report.Err != nil {
			errorsCh <- report.Err
		}

		r.logger.Info("run finished",
			"run_id", runID,
			"outcome", string(report.Outcome),
			"steps", report.Steps,
			"duration", report.Duration,
			"live", report.Live,
		)
	}()

	return runID, eventsCh, errorsCh, nil
}

// RunSync runs w to completion and returns the stored report. The step
// stream is drained internally; the report is returned even when the run
// ended with an error.
func (r *Runner) RunSync(ctx context.Context, w *core.World) (*Report, error) {
	runID, eventsCh, errorsCh, err := r.Run(ctx, w)
	if err != nil {
		return nil, err
	}

	for range eventsCh {
	}
	runErr := <-errorsCh

	report, getErr := r.reports.Get(runID)
	if getErr != nil {
		return nil, getErr
	}
	return report, runErr
}

// Cancel aborts a running run by id. The run ends with OutcomeCanceled.
func (r *Runner) Cancel(runID string) error {
	r.mu.RLock()
	cancel, ok := r.activeRuns[runID]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	cancel()
	return nil
}

// ActiveRuns returns the ids of runs currently in flight.
func (r *Runner) ActiveRuns() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.activeRuns))
	for id := range r.activeRuns {
		ids = append(ids, id)
	}
	return ids
}

// drive owns the stepping loop for one run. It returns the run's report;
// the caller persists it and signals the terminal error, if any.
func (r *Runner) drive(ctx context.Context, w *core.World, runID string, events chan<- StepEvent) *Report {
	start := time.Now()
	report := &Report{RunID: runID, Outcome: OutcomeCompleted}

loop:
	for step := 1; step <= r.maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			report.Outcome = OutcomeCanceled
			report.Err = err
			break
		}

		hc := &HookContext{RunID: runID, Step: step, World: w}

		if err := r.hooks.Execute(ctx, HookBeforeStep, hc); err != nil {
			report.Outcome = OutcomeFailed
			report.Err = fmt.Errorf("before_step hook: %w", err)
			break
		}

		t := w.Tick()
		report.Steps = step

		select {
		case events <- StepEvent{RunID: runID, Step: step, Time: t, Population: w.Size(), Live: w.LiveCount()}:
		case <-ctx.Done():
			report.Outcome = OutcomeCanceled
			report.Err = ctx.Err()
			break loop
		}

		if err := r.hooks.Execute(ctx, HookAfterStep, hc); err != nil {
			report.Outcome = OutcomeFailed
			report.Err = fmt.Errorf("after_step hook: %w", err)
			break
		}

		if r.stopCondition != nil && r.stopCondition(w) {
			report.Outcome = OutcomeStopped
			break
		}
	}

	report.Duration = time.Since(start)
	report.Population = w.Size()
	report.Live = w.LiveCount()

	if err := r.hooks.Execute(ctx, HookOnStop, &HookContext{RunID: runID, Step: report.Steps, World: w}); err != nil {
		r.logger.Warn("on_stop hook failed", "run_id", runID, "error", err)
	}

	return report
}
