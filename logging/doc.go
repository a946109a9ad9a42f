// Package logging provides a minimal logging interface and adapters for AgentScape.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the engine and scenario layers use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	runner := engine.New(func(o *engine.Options) { o.Logger = logger })
//
// The simulation core (core, space) stays log-free; observability is layered
// around it. The design intentionally keeps the interface minimal to avoid
// vendor lock-in while supporting structured logging where available.
package logging
