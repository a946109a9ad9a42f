// Package agentscape provides a high-level façade over the simulation core
// (worlds, spaces, agents) and the engine layer enabling rapid construction
// of agent-based models. Most applications interact with this package by:
//  1. Creating an AgentScape via New() (optionally overriding the report
//     store or logger)
//  2. Loading or declaring a Scenario (topology, seed, initial population)
//  3. Running it synchronously (RunScenario / RunScenarioFile) or building
//     a runner for streaming runs (NewRunner)
//
// The façade delegates stepping to engine.Runner while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; hosts wanting observability supply a structured logger.
package agentscape

import (
	"context"

	"github.com/hupe1980/agentscape/engine"
	"github.com/hupe1980/agentscape/logging"
)

// Options configures the AgentScape instance.
type Options struct {
	// Reports receives every run's summary. Defaults to an in-memory store
	// shared by all runners created through this instance.
	Reports engine.ReportStore

	// Logger is used by the engine and the spawned behaviors.
	// Defaults to NoOpLogger.
	Logger logging.Logger

	// Loader resolves scenario files. Defaults to an OS filesystem loader.
	Loader *ScenarioLoader
}

// AgentScape is the high-level façade aggregating the engine layer and the
// scenario loader behind shared defaults.
type AgentScape struct {
	reports engine.ReportStore
	logger  logging.Logger
	loader  *ScenarioLoader
}

// New creates a new AgentScape instance with optional overrides.
func New(optFns ...func(o *Options)) *AgentScape {
	opts := Options{
		Reports: engine.NewInMemoryReportStore(),
		Logger:  logging.NoOpLogger{},
		Loader:  NewScenarioLoader(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &AgentScape{reports: opts.Reports, logger: opts.Logger, loader: opts.Loader}
}

// Reports returns the shared report store.
func (m *AgentScape) Reports() engine.ReportStore { return m.reports }

// NewRunner builds an engine runner pre-wired with the instance's report
// store and logger. Further overrides apply on top.
func (m *AgentScape) NewRunner(optFns ...func(o *engine.Options)) *engine.Runner {
	base := func(o *engine.Options) {
		o.Reports = m.reports
		o.Logger = m.logger
	}
	return engine.New(append([]func(o *engine.Options){base}, optFns...)...)
}

// RunScenario materializes and runs a scenario to completion, returning the
// stored report. The scenario's steps value caps the run; zero falls back to
// the engine default.
func (m *AgentScape) RunScenario(ctx context.Context, sc *Scenario) (*engine.Report, error) {
	w, err := BuildWorld(sc, func(o *BuildOptions) {
		o.Logger = m.logger
	})
	if err != nil {
		return nil, err
	}

	r := m.NewRunner(func(o *engine.Options) {
		if sc.Steps > 0 {
			o.MaxSteps = sc.Steps
		}
	})

	return r.RunSync(ctx, w)
}

// RunScenarioFile loads the scenario at path and runs it to completion.
func (m *AgentScape) RunScenarioFile(ctx context.Context, path string) (*engine.Report, error) {
	sc, err := m.loader.Load(path)
	if err != nil {
		return nil, err
	}
	return m.RunScenario(ctx, sc)
}
