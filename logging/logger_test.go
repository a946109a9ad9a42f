package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var (
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = (*AgentScapeLogger)(nil)
	_ Logger = NoOpLogger{}
)

func newBufferLogger(level LogLevel) (*AgentScapeLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &LoggerConfig{
		Level:       level,
		Format:      "json",
		Output:      &buf,
		CustomAttrs: map[string]interface{}{},
	}
	return NewLogger(cfg), &buf
}

func TestAgentScapeLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)

	l.Debug("too quiet")
	assert.Empty(t, buf.String())

	l.Info("loud enough")
	assert.Contains(t, buf.String(), "loud enough")
}

func TestAgentScapeLogger_ContextualAttrs(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)

	l.WithComponent("engine").WithRun("w1", "r1").WithContext("model", "walkers").Info("placed")

	out := buf.String()
	assert.Contains(t, out, `"component":"engine"`)
	assert.Contains(t, out, `"world_id":"w1"`)
	assert.Contains(t, out, `"run_id":"r1"`)
	assert.Contains(t, out, `"model":"walkers"`)

	// The clones do not leak back into the parent.
	buf.Reset()
	l.Info("bare")
	assert.NotContains(t, buf.String(), "engine")
}

func TestAgentScapeLogger_LogStep(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)
	l.LogStep(3, 3, 10, 7)

	out := buf.String()
	assert.Contains(t, out, "Step completed")
	assert.Contains(t, out, `"step":3`)
	assert.Contains(t, out, `"live":7`)

	// Step logging is debug-gated.
	quiet, qbuf := newBufferLogger(LogLevelInfo)
	quiet.LogStep(3, 3, 10, 7)
	assert.Empty(t, qbuf.String())
}

func TestAgentScapeLogger_LogRun(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)

	l.LogRun("r1", 20, 5*time.Millisecond, true, nil)
	assert.Contains(t, buf.String(), "Run completed")
	assert.Contains(t, buf.String(), `"step_count":20`)

	buf.Reset()
	l.LogRun("r2", 4, time.Millisecond, false, errors.New("population collapsed"))
	assert.Contains(t, buf.String(), "Run failed")
	assert.Contains(t, buf.String(), "population collapsed")
}

func TestAgentScapeLogger_ErrorWithStack(t *testing.T) {
	l, buf := newBufferLogger(LogLevelError)
	l.ErrorWithStack(errors.New("boom"), "run blew up")

	out := buf.String()
	assert.Contains(t, out, "run blew up")
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, "stack_trace")
}

func TestAgentScapeLogger_LogPerformance(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	l.LogPerformance("tick", 2*time.Millisecond, map[string]interface{}{"agents": 50})

	out := buf.String()
	assert.Contains(t, out, "Performance metrics")
	assert.Contains(t, out, `"metric_agents":50`)
}

func TestAgentScapeLogger_StartTimer(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	done := l.StartTimer("build world")
	done()
	assert.Contains(t, buf.String(), "Operation completed")
}

func TestNewSlogLogger_FormatSelection(t *testing.T) {
	l := NewSlogLogger(LogLevelWarn, "text", false)
	require.NotNil(t, l)
	assert.Equal(t, LogLevelWarn, l.level)
}

func TestNoOpLogger_Silent(t *testing.T) {
	// Must not panic with or without args.
	l := NoOpLogger{}
	l.Debug("d")
	l.Info("i", "k", "v")
	l.Warn("w")
	l.Error("e", errors.New("x"))
}
