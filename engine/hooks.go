package engine

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentscape/core"
	"github.com/hupe1980/agentscape/logging"
)

// ErrPopulationCollapsed is returned by PopulationGuardHook once the live
// population falls below its floor, terminating the run.
var ErrPopulationCollapsed = fmt.Errorf("live population collapsed")

// HookType defines the lifecycle points where hooks run.
//
// Hooks are the engine's extension mechanism: they let callers observe or
// steer a run without touching the stepping loop. They execute synchronously
// inside the run's goroutine, so they may read the world freely; an error
// returned from a before_step or after_step hook terminates the run with
// OutcomeFailed.
type HookType string

const (
	// HookBeforeStep runs before each world tick.
	HookBeforeStep HookType = "before_step"

	// HookAfterStep runs after each world tick and its step event.
	HookAfterStep HookType = "after_step"

	// HookOnStop runs once when the run ends, whatever the outcome.
	// Errors from on_stop hooks are logged, not propagated.
	HookOnStop HookType = "on_stop"
)

// HookContext carries the state a hook may inspect.
type HookContext struct {
	// RunID identifies the run.
	RunID string

	// Step is the current (or, for on_stop, final) step number.
	Step int

	// World is the stepped world. Hooks run inside the run's goroutine, so
	// reading it is safe; mutating it is the hook's responsibility to keep
	// consistent with the model's rules.
	World *core.World
}

// Hook is a lifecycle extension point.
//
// Implementations should be fast (they block the stepping loop) and must not
// retain the world beyond the call.
type Hook interface {
	// Type returns the lifecycle point this hook handles.
	Type() HookType

	// Execute performs the hook logic. A non-nil error terminates the run.
	Execute(ctx context.Context, hc *HookContext) error
}

// FunctionHook wraps a plain function as a Hook.
type FunctionHook struct {
	hookType HookType
	fn       func(ctx context.Context, hc *HookContext) error
}

// NewFunctionHook creates a hook from a function.
//
// Example:
//
//	hook := NewFunctionHook(HookAfterStep, func(ctx context.Context, hc *HookContext) error {
//		fmt.Printf("step %d: %d live\n", hc.Step, hc.World.LiveCount())
//		return nil
//	})
func NewFunctionHook(hookType HookType, fn func(ctx context.Context, hc *HookContext) error) *FunctionHook {
	return &FunctionHook{hookType: hookType, fn: fn}
}

// Type returns the lifecycle point this hook handles.
func (h *FunctionHook) Type() HookType { return h.hookType }

// Execute calls the wrapped function.
func (h *FunctionHook) Execute(ctx context.Context, hc *HookContext) error {
	return h.fn(ctx, hc)
}

// HookManager routes hook execution by type. Registration order is execution
// order; the first error stops the chain. The manager is not synchronized:
// register everything before starting runs.
type HookManager struct {
	hooks map[HookType][]Hook
}

// NewHookManager creates an empty manager.
func NewHookManager() *HookManager {
	return &HookManager{hooks: make(map[HookType][]Hook)}
}

// Register adds a hook under its declared type.
func (m *HookManager) Register(h Hook) {
	m.hooks[h.Type()] = append(m.hooks[h.Type()], h)
}

// Execute runs every hook registered for hookType in order, stopping at the
// first error.
func (m *HookManager) Execute(ctx context.Context, hookType HookType, hc *HookContext) error {
	for _, h := range m.hooks[hookType] {
		if err := h.Execute(ctx, hc); err != nil {
			return err
		}
	}
	return nil
}

// LoggingHook logs the world's state at its lifecycle point.
type LoggingHook struct {
	hookType HookType
	logger   logging.Logger
}

// NewLoggingHook creates a hook that logs run progress through logger.
func NewLoggingHook(hookType HookType, logger logging.Logger) *LoggingHook {
	return &LoggingHook{hookType: hookType, logger: logger}
}

// Type returns the lifecycle point this hook handles.
func (h *LoggingHook) Type() HookType { return h.hookType }

// Execute logs the current step and population.
func (h *LoggingHook) Execute(_ context.Context, hc *HookContext) error {
	h.logger.Debug("hook",
		"type", string(h.hookType),
		"run_id", hc.RunID,
		"step", hc.Step,
		"world_time", hc.World.Time(),
		"population", hc.World.Size(),
		"live", hc.World.LiveCount(),
	)
	return nil
}

// PopulationGuardHook aborts a run once the live population falls below a
// floor. Registered as an after_step hook, it turns a dying model into a
// terminated run instead of letting it idle to MaxSteps.
type PopulationGuardHook struct {
	floor int
}

// NewPopulationGuardHook creates a guard with the given live-population floor.
func NewPopulationGuardHook(floor int) *PopulationGuardHook {
	return &PopulationGuardHook{floor: floor}
}

// Type returns HookAfterStep.
func (h *PopulationGuardHook) Type() HookType { return HookAfterStep }

// Execute fails once the live population is below the floor.
func (h *PopulationGuardHook) Execute(_ context.Context, hc *HookContext) error {
	if live := hc.World.LiveCount(); live < h.floor {
		return fmt.Errorf("%w: %d live, floor %d", ErrPopulationCollapsed, live, h.floor)
	}
	return nil
}
